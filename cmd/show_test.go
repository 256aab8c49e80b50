package cmd

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShowCmd(t *testing.T) {
	cmd := newShowCmd()

	assert.Equal(t, "show", cmd.Name())

	flag := cmd.Flags().Lookup(contextFlagName)
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, strconv.Itoa(defaultDiffContext), flag.DefValue)
}

func TestShowCmd_RequiresScenarioID(t *testing.T) {
	cmd := newShowCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}
