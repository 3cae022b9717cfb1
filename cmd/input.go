package cmd

import (
	"io"

	"github.com/moby/term"
	"github.com/nanovms/genboot/types"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// ErrUsage is returned for a wrong number of arguments
	ErrUsage = errors.New("expected [yaml_file] <directory>")
	// ErrConfigNotFound is returned when the YAML file does not exist
	ErrConfigNotFound = errors.New("YAML file not found")
	// ErrNoConfigInput is returned when the YAML should come from a terminal
	ErrNoConfigInput = errors.New("No YAML input provided on stdin")
	// ErrDirectoryNotFound is returned when the artifact directory does not exist
	ErrDirectoryNotFound = errors.New("directory not found")
)

func inputArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	return nil
}

// Input names the configuration and the artifact directory. An empty
// ConfigFile means the configuration is read from stdin.
type Input struct {
	ConfigFile string
	Dir        string
}

// NewInput maps positional arguments to an Input
func NewInput(args []string) Input {
	if len(args) == 2 {
		return Input{ConfigFile: args[0], Dir: args[1]}
	}
	return Input{Dir: args[0]}
}

// Load reads and parses the configuration, then checks the artifact
// directory exists
func (in Input) Load(fs afero.Fs, stdin io.Reader) (*types.Config, error) {
	data, err := in.read(fs, stdin)
	if err != nil {
		return nil, err
	}

	config, err := types.ParseConfig(data)
	if err != nil {
		return nil, err
	}

	isDir, err := afero.DirExists(fs, in.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", in.Dir)
	}
	if !isDir {
		return nil, errors.Wrap(ErrDirectoryNotFound, in.Dir)
	}

	return config, nil
}

func (in Input) read(fs afero.Fs, stdin io.Reader) ([]byte, error) {
	if in.ConfigFile == "" {
		if _, isTerminal := term.GetFdInfo(stdin); isTerminal {
			return nil, ErrNoConfigInput
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return data, nil
	}

	exists, err := afero.Exists(fs, in.ConfigFile)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", in.ConfigFile)
	}
	if !exists {
		return nil, errors.Wrap(ErrConfigNotFound, in.ConfigFile)
	}

	data, err := afero.ReadFile(fs, in.ConfigFile)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", in.ConfigFile)
	}
	return data, nil
}

func loadInput(cmd *cobra.Command, fs afero.Fs, args []string) (*types.Config, Input, error) {
	in := NewInput(args)
	config, err := in.Load(fs, cmd.InOrStdin())
	return config, in, err
}
