package testutils

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// NewArtifactDir creates dir on fs holding zero filled files of the given
// sizes, the way a boot partition holds xen, device trees and kernels.
func NewArtifactDir(fs afero.Fs, dir string, sizes map[string]int) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for name, size := range sizes {
		err := afero.WriteFile(fs, filepath.Join(dir, name), make([]byte, size), 0644)
		if err != nil {
			return err
		}
	}
	return nil
}

// NewMemArtifactDir is NewArtifactDir on a fresh in-memory filesystem
func NewMemArtifactDir(dir string, sizes map[string]int) (afero.Fs, error) {
	fs := afero.NewMemMapFs()
	return fs, NewArtifactDir(fs, dir, sizes)
}
