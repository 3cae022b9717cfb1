package uboot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nanovms/genboot/log"
	"github.com/nanovms/genboot/testutils"
	"github.com/nanovms/genboot/types"
	"github.com/stretchr/testify/require"
)

const artifactDir = "/boot"

func loadFixture(t *testing.T, name string) *types.Config {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	c, err := types.ParseConfig(data)
	require.NoError(t, err)
	return c
}

func parseConfig(t *testing.T, doc string) *types.Config {
	t.Helper()

	c, err := types.ParseConfig([]byte(doc))
	require.NoError(t, err)
	return c
}

// newSizer returns a FileSizer over an in-memory artifact directory and the
// buffer its warnings are written to.
func newSizer(t *testing.T, sizes map[string]int) (*FileSizer, *bytes.Buffer) {
	t.Helper()

	fs, err := testutils.NewMemArtifactDir(artifactDir, sizes)
	require.NoError(t, err)

	var diag bytes.Buffer
	logger := log.New(&diag)
	logger.SetWarn(true)

	return NewFileSizer(fs, artifactDir, logger), &diag
}

func compileLines(t *testing.T, c *types.Config, sizes map[string]int) []string {
	t.Helper()

	sizer, _ := newSizer(t, sizes)
	script, err := Compile(c, sizer)
	require.NoError(t, err)
	return script.Lines()
}
