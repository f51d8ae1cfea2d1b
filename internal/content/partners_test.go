package content

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRows(t *testing.T) {
	mk := func(n int) []Partner {
		out := make([]Partner, n)
		for i := range out {
			out[i] = Partner{Name: string(rune('A' + i)), Domain: "example.com"}
		}
		return out
	}

	tests := []struct {
		name            string
		count           int
		wantTop, wantBt int
	}{
		{"even", 14, 7, 7},
		{"odd", 5, 3, 2},
		{"single", 1, 1, 0},
		{"empty", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, bottom := SplitRows(mk(tt.count))
			assert.Len(t, top, tt.wantTop)
			assert.Len(t, bottom, tt.wantBt)
		})
	}
}

func TestLoop(t *testing.T) {
	in := []Partner{{Name: "Aave", Domain: "aave.com"}, {Name: "Curve", Domain: "curve.fi"}}
	out := Loop(in)
	require.Len(t, out, 4)
	assert.Equal(t, in, out[:2])
	assert.Equal(t, in, out[2:])
}

func TestReadPartners_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing domain", "strategic:\n  - { name: \"Aave\" }\nmedia:\n  - { name: \"X\", domain: \"x.com\" }\n"},
		{"bad domain", "strategic:\n  - { name: \"Aave\", domain: \"not a domain\" }\nmedia:\n  - { name: \"X\", domain: \"x.com\" }\n"},
		{"empty media", "strategic:\n  - { name: \"Aave\", domain: \"aave.com\" }\nmedia: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, partnersFile, []byte(tt.body), 0o644))

			_, _, err := readPartners(fsys)
			assert.ErrorIs(t, err, ErrInvalidPartner)
		})
	}
}
