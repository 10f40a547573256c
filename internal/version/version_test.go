package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGet tests the Get function.
func TestGet(t *testing.T) {
	t.Parallel()

	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, Commit, info.Commit)
	assert.Equal(t, BuildTime, info.BuildTime)
}

// TestShortAndFull tests the Short and Full functions.
func TestShortAndFull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
	assert.Equal(t, "version: "+Version+", commit: "+Commit+", built at: "+BuildTime, Full())
	assert.Contains(t, Short(), ".")
	assert.NotContains(t, Short(), " ")
}
