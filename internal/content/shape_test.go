package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestShapeOf_IgnoresTextValues(t *testing.T) {
	a := &Bundle{Hero: Hero{Headline: "你好"}, Nav: []NavLink{{Key: "about", Label: "关于", Href: "#about"}}}
	b := &Bundle{Hero: Hero{Headline: "Hello"}, Nav: []NavLink{{Key: "about", Label: "About", Href: "#about"}}}

	if diff := cmp.Diff(ShapeOf(a), ShapeOf(b)); diff != "" {
		t.Errorf("shape mismatch (-cn +en):\n%s", diff)
	}
	assert.NoError(t, CheckParity(a, b))
}

func TestShapeOf_RecordsNumbersAndLengths(t *testing.T) {
	b := &Bundle{Capital: Capital{Fund: Fund{Allocation: []FundAllocation{{Name: "a", Value: 80}}}}}
	shape := ShapeOf(b)

	assert.Contains(t, shape, "capital.fund.allocation#len=1")
	assert.Contains(t, shape, "capital.fund.allocation[0].value=80")
	assert.Contains(t, shape, "capital.fund.allocation[0].name")
}

func TestCheckParity(t *testing.T) {
	base := func() *Bundle {
		return &Bundle{
			Metrics: []Metric{{Label: "x", Value: "10"}},
			Capital: Capital{Fund: Fund{Allocation: []FundAllocation{{Name: "a", Value: 80}}}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Bundle)
		wantErr bool
	}{
		{name: "identical", mutate: func(*Bundle) {}},
		{name: "text differs", mutate: func(b *Bundle) { b.Metrics[0].Label = "y" }},
		{name: "extra list item", mutate: func(b *Bundle) { b.Metrics = append(b.Metrics, Metric{}) }, wantErr: true},
		{name: "number differs", mutate: func(b *Bundle) { b.Capital.Fund.Allocation[0].Value = 70 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base()
			tt.mutate(other)
			err := CheckParity(base(), other)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrShapeMismatch)
				return
			}
			assert.NoError(t, err)
		})
	}
}
