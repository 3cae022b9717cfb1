package cmd

import (
	"github.com/nanovms/genboot/log"
	"github.com/nanovms/genboot/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const usage = `Usage:
  genboot <yaml_file> <directory>
  genboot <directory>  # YAML is read from stdin`

// GetRootCommand provides the genboot command on the host filesystem
func GetRootCommand() *cobra.Command {
	return NewRootCommand(afero.NewOsFs())
}

// NewRootCommand provides the genboot command reading configuration and
// artifacts from fs
func NewRootCommand(fs afero.Fs) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "genboot [yaml_file] <directory>",
		Short: "Generate a u-boot script that boots xen with dom0-less domains",
		Long: "Generate a u-boot script that loads xen, its device tree and every\n" +
			"domain artifact found in <directory>, then describes the domains\n" +
			"under /chosen.\n\n" + usage,
		Args:          inputArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			options := &types.Options{}

			globalFlags := NewGlobalCommandFlags(cmd.Flags())
			if err := globalFlags.MergeToConfig(options); err != nil {
				return err
			}

			log.InitDefault(cmd.ErrOrStderr(), options)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCommandHandler(cmd, fs, args)
		},
	}

	// persist flags transversal to every command
	PersistGlobalCommandFlags(rootCmd.PersistentFlags())
	PersistOutputCommandFlags(rootCmd.Flags())

	rootCmd.AddCommand(LayoutCommand(fs))
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}

// Execute runs genboot and exits with status 1 on failure
func Execute() {
	rootCmd := GetRootCommand()
	if err := rootCmd.Execute(); err != nil {
		exitWithError(rootCmd, err)
	}
}
