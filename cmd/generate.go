package cmd

import (
	"github.com/nanovms/genboot/uboot"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// generateCommandHandler writes the script only once it is fully generated
func generateCommandHandler(cmd *cobra.Command, fs afero.Fs, args []string) error {
	config, in, err := loadInput(cmd, fs, args)
	if err != nil {
		return err
	}

	script, err := uboot.Compile(config, uboot.NewFileSizer(fs, in.Dir, nil))
	if err != nil {
		return errors.Wrap(err, "generating script")
	}

	outputFlags := NewOutputCommandFlags(cmd.Flags())
	return outputFlags.Write(fs, cmd.OutOrStdout(), script)
}
