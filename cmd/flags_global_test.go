package cmd_test

import (
	"testing"

	"github.com/nanovms/genboot/types"

	"github.com/nanovms/genboot/cmd"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestCreateGlobalFlags(t *testing.T) {

	flagSet := pflag.NewFlagSet("test", 0)

	cmd.PersistGlobalCommandFlags(flagSet)

	flagSet.Set("show-debug", "true")
	flagSet.Set("show-errors", "false")

	globalFlags := cmd.NewGlobalCommandFlags(flagSet)

	assert.Equal(t, globalFlags.ShowDebug, true)
	assert.Equal(t, globalFlags.ShowErrors, false)
	assert.Equal(t, globalFlags.ShowWarnings, true)
}

func TestGlobalFlagsMergeToConfig(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", 0)

	cmd.PersistGlobalCommandFlags(flagSet)

	flagSet.Set("show-warnings", "false")

	globalFlags := cmd.NewGlobalCommandFlags(flagSet)

	options := &types.Options{}

	err := globalFlags.MergeToConfig(options)

	assert.Nil(t, err)

	assert.Equal(t, options, &types.Options{
		ShowDebug:    false,
		ShowErrors:   true,
		ShowWarnings: false,
	})
}

func TestOutputFlags(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", 0)

	cmd.PersistOutputCommandFlags(flagSet)

	flagSet.Set("output", " boot.cmd ")

	assert.Equal(t, "boot.cmd", cmd.NewOutputCommandFlags(flagSet).Output)
}
