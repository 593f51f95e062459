package cliutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verbose": true, "color_count_notice": 64}`), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.True(t, p.Verbose)
	assert.Equal(t, 64, p.ColorCountNotice)
}

func TestLoadProfilePartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verbose": true}`), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.True(t, p.Verbose)
	assert.Equal(t, DefaultProfile().ColorCountNotice, p.ColorCountNotice)
}

func TestLoadProfileRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

	_, err := LoadProfile(path)
	assert.Error(t, err)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
