// Copyright (c) 2025, Stencil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileYieldsDefaults(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestSaveOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	s := Defaults()
	s.Grid.Enabled = false
	s.Zoom.FitMargin = 32
	s.Theme.TextPrimary = "#222222"
	require.NoError(t, s.Save(path))

	got, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestOpenSparseFileBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  enabled: true\n"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	def := Defaults()
	assert.Equal(t, def.Zoom, s.Zoom)
	assert.Equal(t, def.Resize, s.Resize)
	assert.Equal(t, def.Grid.CellSize, s.Grid.CellSize)
	assert.Equal(t, def.Theme, s.Theme)
	assert.True(t, s.Grid.Enabled)
}

func TestOpenMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zoom: ["), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}
