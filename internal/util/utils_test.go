package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(-3), 1, 45))
	assert.Equal(t, float32(45), Clamp(float32(60), 1, 45))
	assert.Equal(t, 7, Clamp(7, 0, 10))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "b.txt")))
}

func TestFrameClock(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	clock := newFrameClock(func() time.Time { return now })

	now = base.Add(16 * time.Millisecond)
	assert.InDelta(t, 0.016, clock.Tick(), 1e-9)

	now = now.Add(time.Second)
	assert.InDelta(t, 1.0, clock.Tick(), 1e-9)
}
