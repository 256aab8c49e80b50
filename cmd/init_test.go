package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_WritesConfigFile(t *testing.T) {
	originalWd, err := os.Getwd()
	require.NoError(t, err)

	tmpDir := t.TempDir()
	require.NoError(t, os.Chdir(tmpDir))

	defer func() {
		require.NoError(t, os.Chdir(originalWd))
	}()

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	configPath := filepath.Join(tmpDir, configFileName)
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "corpus")
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	originalWd, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, os.Chdir(t.TempDir()))

	defer func() {
		require.NoError(t, os.Chdir(originalWd))
	}()

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	// A second init must not clobber the existing file.
	err = cmd.Execute()
	require.Error(t, err)
}
