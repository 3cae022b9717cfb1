package cmd

import (
	"github.com/nanovms/genboot/types"

	"github.com/spf13/pflag"
)

// GlobalCommandFlags are flags accepted by every command
type GlobalCommandFlags struct {
	ShowWarnings bool
	ShowErrors   bool
	ShowDebug    bool
}

// MergeToConfig copies the diagnostics flags to options
func (flags *GlobalCommandFlags) MergeToConfig(options *types.Options) (err error) {
	options.ShowWarnings = flags.ShowWarnings
	options.ShowErrors = flags.ShowErrors
	options.ShowDebug = flags.ShowDebug

	return
}

// NewGlobalCommandFlags returns an instance of GlobalCommandFlags
func NewGlobalCommandFlags(cmdFlags *pflag.FlagSet) (flags *GlobalCommandFlags) {
	flags = &GlobalCommandFlags{}

	flags.ShowWarnings, _ = cmdFlags.GetBool("show-warnings")
	flags.ShowErrors, _ = cmdFlags.GetBool("show-errors")
	flags.ShowDebug, _ = cmdFlags.GetBool("show-debug")

	return flags
}

// PersistGlobalCommandFlags append the global flags to a command
func PersistGlobalCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.Bool("show-warnings", true, "display warning messages")
	cmdFlags.Bool("show-errors", true, "display error messages")
	cmdFlags.Bool("show-debug", false, "display debug messages")
}
