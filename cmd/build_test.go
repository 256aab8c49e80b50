package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildCmd(t *testing.T) {
	cmd := newBuildCmd()

	assert.Equal(t, "build", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	flag := cmd.Flags().Lookup(dryRunFlagName)
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
