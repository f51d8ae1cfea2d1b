package app

import (
	"testing"

	"github.com/hlabs/hlabs-web/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModules(t *testing.T) {
	mounts := NewModules(Dependencies{Config: &config.Config{RateLimit: 5}})
	require.Len(t, mounts, 2)

	names := map[string]string{}
	for _, m := range mounts {
		names[m.Module.Name()] = m.Prefix
	}
	assert.Equal(t, map[string]string{"landing": "", "terminal": "/terminal"}, names)
}

func TestLandingDeps(t *testing.T) {
	assert.Equal(t, float64(5), landingDeps(Dependencies{Config: &config.Config{RateLimit: 5}}).RateLimit)
	assert.Zero(t, landingDeps(Dependencies{}).RateLimit)
}
