package cmd

import (
	"bytes"
	"io"
	"strings"

	"github.com/nanovms/genboot/log"
	"github.com/nanovms/genboot/uboot"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// OutputCommandFlags selects where the generated script is written
type OutputCommandFlags struct {
	Output string
}

// Write writes the script to the output file, or to stdout when no file was
// given
func (flags *OutputCommandFlags) Write(fs afero.Fs, stdout io.Writer, script *uboot.Script) error {
	if flags.Output == "" {
		_, err := script.WriteTo(stdout)
		return err
	}

	var b bytes.Buffer
	if _, err := script.WriteTo(&b); err != nil {
		return err
	}

	err := afero.WriteFile(fs, flags.Output, b.Bytes(), 0644)
	if err != nil {
		return errors.Wrapf(err, "writing %s", flags.Output)
	}
	log.Infof("Script written to %s", flags.Output)
	return nil
}

// NewOutputCommandFlags returns an instance of OutputCommandFlags
func NewOutputCommandFlags(cmdFlags *pflag.FlagSet) (flags *OutputCommandFlags) {
	flags = &OutputCommandFlags{}

	flags.Output, _ = cmdFlags.GetString("output")
	flags.Output = strings.TrimSpace(flags.Output)

	return
}

// PersistOutputCommandFlags append the output flags to a command
func PersistOutputCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("output", "o", "", "write the script to a file instead of stdout")
}
