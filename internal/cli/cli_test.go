// Package cli — cli_test.go contains unit tests for the pure decision and
// formatting functions used by the build, list, and versions commands.
//
// These tests verify flag/environment folding and table rendering without
// touching the filesystem or launching a viewer.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisplayEnabled verifies how the --no-display flag, the --all flag,
// and the CLAY_HIDE_DISPLAY environment variable fold into the explicit
// display decision.
func TestDisplayEnabled(t *testing.T) {
	t.Run("default is display on", func(t *testing.T) {
		t.Setenv(hideDisplayEnv, "")
		assert.True(t, displayEnabled(false, false))
	})

	t.Run("no-display flag wins", func(t *testing.T) {
		t.Setenv(hideDisplayEnv, "")
		assert.False(t, displayEnabled(true, false))
	})

	t.Run("all builds never display", func(t *testing.T) {
		t.Setenv(hideDisplayEnv, "")
		assert.False(t, displayEnabled(false, true))
	})

	t.Run("env suppresses display", func(t *testing.T) {
		t.Setenv(hideDisplayEnv, "1")
		assert.False(t, displayEnabled(false, false))
	})

	t.Run("any non-empty env value suppresses", func(t *testing.T) {
		t.Setenv(hideDisplayEnv, "false")
		assert.False(t, displayEnabled(false, false))
	})
}

// TestFormatLatest verifies rendering of the latest-export column,
// including the never-exported sentinel.
func TestFormatLatest(t *testing.T) {
	assert.Equal(t, "-", formatLatest(0))
	assert.Equal(t, "v1", formatLatest(1))
	assert.Equal(t, "v12", formatLatest(12))
}

// TestCheckmark verifies artifact presence rendering in the versions table.
func TestCheckmark(t *testing.T) {
	assert.Equal(t, "yes", checkmark(true))
	assert.Equal(t, "missing", checkmark(false))
}

// TestFormatViews verifies SVG view list rendering in the versions table.
func TestFormatViews(t *testing.T) {
	assert.Equal(t, "-", formatViews(nil))
	assert.Equal(t, "front", formatViews([]string{"front"}))
	assert.Equal(t, "front,side", formatViews([]string{"front", "side"}))
}
