// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	segs := Defaults()
	require.Len(t, segs, 10)
	for i, s := range segs {
		assert.NotEmpty(t, s.Title, "segment %d title", i)
		assert.NotEmpty(t, s.Description, "segment %d description", i)
	}

	// Mutating the returned slice must not affect later callers.
	segs[0].Title = "changed"
	assert.NotEqual(t, "changed", Defaults()[0].Title)
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segments.yaml")
	require.NoError(t, WriteFile(path, Defaults()))

	segs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), segs)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("segments: [unclosed"), 0o644))
		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "parsing segments file")
	})

	t.Run("empty list", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("segments: []\n"), 0o644))
		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "no segments")
	})

	t.Run("untitled segment", func(t *testing.T) {
		path := filepath.Join(dir, "untitled.yaml")
		content := "segments:\n  - title: \"\"\n    description: something\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "has no title")
	})
}
