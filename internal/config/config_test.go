package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	assert.Equal(t, "accrue", cfg.Database.Name)
	assert.False(t, cfg.Defaults.SeedDemo)
	assert.Equal(t, 365, cfg.Interest.DaysInYear)
	assert.Equal(t, int32(2), cfg.Interest.Scale)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.ConfigPath)
}
