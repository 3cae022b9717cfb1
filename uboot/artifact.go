package uboot

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/nanovms/genboot/constants"
	"github.com/nanovms/genboot/log"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

//go:generate mockgen -source=$GOFILE -destination=../mocks/size_resolver.go -package=mocks

// SizeResolver returns the byte length of a named artifact
type SizeResolver interface {
	Size(name string) (uint64, error)
}

// FileSizer resolves artifact sizes from a directory
type FileSizer struct {
	fs     afero.Fs
	dir    string
	logger *log.Logger
}

// NewFileSizer returns a FileSizer reading dir on fs. Warnings and debug
// output go to logger, or to the package logger when logger is nil.
func NewFileSizer(fs afero.Fs, dir string, logger *log.Logger) *FileSizer {
	if logger == nil {
		logger = log.Default()
	}
	return &FileSizer{fs: fs, dir: dir, logger: logger}
}

// Size returns the length of dir/name. An empty name, or a name that does not
// resolve to a file in the directory, is DefaultArtifactSize; the latter logs a
// warning.
func (s *FileSizer) Size(name string) (uint64, error) {
	if name == "" {
		return constants.DefaultArtifactSize, nil
	}

	path := filepath.Join(s.dir, name)
	fi, err := s.fs.Stat(path)
	if err != nil {
		if isMissing(err) {
			s.logger.Warnf("Warning: File %s not found, using default size 0x%x", path, constants.DefaultArtifactSize)
			return constants.DefaultArtifactSize, nil
		}
		return 0, errors.Wrapf(err, "reading size of %s", path)
	}

	size := uint64(fi.Size())
	s.logger.Debugf("%s: %d bytes (%s)", path, size, humanize.IBytes(size))
	return size, nil
}

// isMissing reports whether a stat error means the path does not resolve,
// including a path component that is a regular file.
func isMissing(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}
