// Package view bridges templ components and gomponents nodes so either kind
// can be embedded in a tree built from the other.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
)

type templNode struct {
	c templ.Component
}

// Render renders the component with a background context; gomponents nodes
// carry no context of their own.
func (n templNode) Render(w io.Writer) error {
	return n.c.Render(context.Background(), w)
}

// Templ wraps a templ component as a gomponents node. A nil component renders
// nothing.
func Templ(c templ.Component) cmp.Node {
	if c == nil {
		return nil
	}
	return templNode{c: c}
}

// Component wraps a gomponents node as a templ component.
func Component(n cmp.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if n == nil {
			return nil
		}
		return n.Render(w)
	})
}
