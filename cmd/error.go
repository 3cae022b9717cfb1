package cmd

import (
	"errors"
	"fmt"
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/nanovms/genboot/log"
	"github.com/spf13/cobra"
)

func exitWithError(cmd *cobra.Command, err error) {
	reportError(cmd, err)
	os.Exit(1)
}

// reportError writes err to the diagnostic stream. Usage errors print the
// usage message instead; the stack of generation failures is printed in
// debug mode.
func reportError(cmd *cobra.Command, err error) {
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(cmd.ErrOrStderr(), usage)
		return
	}

	log.Errorf("Error: %v", err)

	var stackErr *goerrors.Error
	if log.Default().DebugEnabled() && errors.As(err, &stackErr) {
		log.Debugf("%s", stackErr.ErrorStack())
	}
}
