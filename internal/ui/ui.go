// Package ui holds the view composer state: which language and which root
// view are shown, and which Terminal OS page is active. State values are
// immutable; setters return the next state.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hlabs/hlabs-web/internal/content"
	"github.com/hlabs/hlabs-web/internal/terminal"
)

// ErrUnknownViewMode is returned by ParseViewMode for unsupported modes.
var ErrUnknownViewMode = errors.New("unknown view mode")

// ViewMode selects the root subtree.
type ViewMode uint8

const (
	ViewLanding ViewMode = iota
	ViewTerminal

	viewModeCount
)

var viewModeNames = [viewModeCount]string{
	ViewLanding:  "landing",
	ViewTerminal: "terminal",
}

func (m ViewMode) String() string {
	return viewModeNames[m]
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewLanding {
		return ViewTerminal
	}
	return ViewLanding
}

// ParseViewMode converts external input into a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, candidate := range viewModeNames {
		if name == candidate {
			return ViewMode(i), nil
		}
	}
	return ViewLanding, fmt.Errorf("%w: %q", ErrUnknownViewMode, s)
}

// Root is the top-level composer state.
type Root struct {
	Language content.Language
	View     ViewMode
}

// NewRoot returns the state of a fresh page load.
func NewRoot() Root {
	return Root{Language: content.DefaultLanguage, View: ViewLanding}
}

// SetLanguage returns r with only the language replaced.
func (r Root) SetLanguage(l content.Language) Root {
	r.Language = l
	return r
}

// SetViewMode returns r with only the view mode replaced.
func (r Root) SetViewMode(m ViewMode) Root {
	r.View = m
	return r
}

// Terminal is the Terminal OS composer state. It lives only while the
// terminal view is shown; entering the terminal always starts from
// NewTerminal.
type Terminal struct {
	Active terminal.Page
}

// NewTerminal returns the state shown when the Terminal OS opens.
func NewTerminal() Terminal {
	return Terminal{Active: terminal.DefaultPage}
}

// SetActivePage selects p. Any page is reachable from any other.
func (t Terminal) SetActivePage(p terminal.Page) Terminal {
	t.Active = p
	return t
}

// Panel builds the panel for the active page.
func (t Terminal) Panel() terminal.Panel {
	return terminal.PanelFor(t.Active)
}
