// Package scroll computes in-page anchor navigation. The browser runs the
// same rule in web/static/app.js; the navbar carries HeaderOffset as
// data-scroll-offset so both sides agree on the value.
package scroll

import "strings"

// HeaderOffset is the height of the fixed navbar in CSS pixels.
const HeaderOffset = 80

// TopAnchor scrolls to the very top of the page regardless of layout.
const TopAnchor = "top"

// Viewport is the part of a scrolling document the helper needs.
type Viewport interface {
	// ElementTop returns the top of the element with the given id relative
	// to the current viewport, and whether the element exists.
	ElementTop(id string) (float64, bool)
	// ScrollY returns the current vertical scroll position.
	ScrollY() float64
	// ScrollTo moves the document to the absolute position top.
	ScrollTo(top float64)
}

// AnchorID strips the leading '#' from an in-page href. It returns false for
// hrefs that do not point into the page.
func AnchorID(href string) (string, bool) {
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Target returns the absolute scroll position that puts the element with id
// just below the header, and false when the element is absent.
func Target(vp Viewport, id string) (float64, bool) {
	if id == TopAnchor {
		return 0, true
	}
	top, ok := vp.ElementTop(id)
	if !ok {
		return 0, false
	}
	return top + vp.ScrollY() - HeaderOffset, true
}

// Navigate scrolls vp to the section named by href. A missing target is not
// an error: nothing scrolls and Navigate reports false.
func Navigate(vp Viewport, href string) bool {
	id, ok := AnchorID(href)
	if !ok {
		return false
	}
	top, ok := Target(vp, id)
	if !ok {
		return false
	}
	vp.ScrollTo(top)
	return true
}
