package terminal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPage is returned by ParsePage for identifiers outside the sidebar.
var ErrUnknownPage = errors.New("unknown terminal page")

// Page identifies one Terminal OS panel. Sidebar order is declaration order.
type Page uint8

const (
	Dashboard Page = iota
	Academy
	Bounty
	Delivery
	Media
	Assets
	Intelligence

	pageCount
)

// DefaultPage is the panel shown when the Terminal OS opens.
const DefaultPage = Dashboard

var (
	pageIDs = [pageCount]string{
		Dashboard:    "dashboard",
		Academy:      "academy",
		Bounty:       "bounty",
		Delivery:     "delivery",
		Media:        "media",
		Assets:       "assets",
		Intelligence: "intelligence",
	}
	pageLabels = [pageCount]string{
		Dashboard:    "生态看板",
		Academy:      "WEB3学院",
		Bounty:       "賞金大厅",
		Delivery:     "交付工程",
		Media:        "媒体矩阵",
		Assets:       "资管引擎",
		Intelligence: "情报追踪",
	}
)

// Pages returns all pages in sidebar order.
func Pages() []Page {
	out := make([]Page, pageCount)
	for i := range out {
		out[i] = Page(i)
	}
	return out
}

// String returns the URL identifier of the page.
func (p Page) String() string {
	return pageIDs[p]
}

// Label returns the sidebar label. Terminal OS copy is not translated.
func (p Page) Label() string {
	return pageLabels[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Page) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Page) UnmarshalText(text []byte) error {
	parsed, err := ParsePage(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePage converts a URL identifier into a Page.
func ParsePage(s string) (Page, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	for i, candidate := range pageIDs {
		if id == candidate {
			return Page(i), nil
		}
	}
	return DefaultPage, fmt.Errorf("%w: %q", ErrUnknownPage, s)
}
