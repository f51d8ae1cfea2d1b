package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// layout is an in-memory document: absolute element offsets plus a scroll
// position.
type layout struct {
	offsets map[string]float64
	y       float64
	scrolls int
}

func (l *layout) ElementTop(id string) (float64, bool) {
	abs, ok := l.offsets[id]
	return abs - l.y, ok
}

func (l *layout) ScrollY() float64 { return l.y }

func (l *layout) ScrollTo(top float64) {
	l.y = top
	l.scrolls++
}

func landingLayout() *layout {
	return &layout{offsets: map[string]float64{
		"about":      900,
		"incubation": 1800,
		"capital":    4200,
	}}
}

func TestNavigate_PresentAnchor(t *testing.T) {
	tests := []struct {
		name    string
		startY  float64
		href    string
		wantTop float64
	}{
		{"from top", 0, "#about", 900 - HeaderOffset},
		{"from middle", 2500, "#incubation", 1800 - HeaderOffset},
		{"further down", 100, "#capital", 4200 - HeaderOffset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := landingLayout()
			vp.y = tt.startY

			assert.True(t, Navigate(vp, tt.href))
			assert.Equal(t, tt.wantTop, vp.y)

			top, ok := vp.ElementTop(tt.href[1:])
			assert.True(t, ok)
			assert.Equal(t, float64(HeaderOffset), top, "section top sits just below the header")
		})
	}
}

func TestNavigate_AbsentAnchorIsNoop(t *testing.T) {
	vp := landingLayout()
	vp.y = 321

	assert.False(t, Navigate(vp, "#media"))
	assert.Equal(t, 321.0, vp.y)
	assert.Zero(t, vp.scrolls)
}

func TestNavigate_TerminalViewHasNoSections(t *testing.T) {
	vp := &layout{offsets: map[string]float64{}}
	for _, href := range []string{"#about", "#incubation", "#cases"} {
		assert.False(t, Navigate(vp, href))
	}
	assert.Zero(t, vp.scrolls)
}

func TestNavigate_Top(t *testing.T) {
	vp := landingLayout()
	vp.y = 2000
	assert.True(t, Navigate(vp, "#top"))
	assert.Zero(t, vp.y)
}

func TestAnchorID(t *testing.T) {
	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{"#about", "about", true},
		{" #cases ", "cases", true},
		{"#", "", false},
		{"about", "", false},
		{"https://t.me/hlabs_ai", "", false},
	}
	for _, tt := range tests {
		got, ok := AnchorID(tt.href)
		assert.Equal(t, tt.wantOK, ok, tt.href)
		assert.Equal(t, tt.want, got, tt.href)
	}
}
