package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/mojowgpu/mojo"
)

var testFiles = []mojo.Artifact{
	{Name: mojo.EnumsFileName, Contents: "# enums\n"},
	{Name: mojo.BitflagsFileName, Contents: "# bitflags\n"},
	{Name: mojo.ConstantsFileName, Contents: "# constants\n"},
	{Name: mojo.DeclarationsFileName, Contents: "# declarations\n"},
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wgpu")
	require.NoError(t, Write(OS, dir, testFiles))
	for _, file := range testFiles {
		contents, err := os.ReadFile(filepath.Join(dir, file.Name))
		require.NoError(t, err)
		assert.Equal(t, file.Contents, string(contents))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(testFiles), "temporary files left behind")

	// Overwrites previous output.
	updated := []mojo.Artifact{{Name: mojo.EnumsFileName, Contents: "# enums v2\n"}}
	require.NoError(t, Write(OS, dir, updated))
	contents, err := os.ReadFile(filepath.Join(dir, mojo.EnumsFileName))
	require.NoError(t, err)
	assert.Equal(t, "# enums v2\n", string(contents))
}

// failingFS records the operations on an in-memory file system, and fails the operation on the given file.
type failingFS struct {
	files    map[string]string
	failOn   string
	failWith string // "write" or "rename"
}

var errInjected = errors.New("injected failure")

func (fs *failingFS) MkdirAll(string, os.FileMode) error { return nil }

func (fs *failingFS) WriteFile(name string, data []byte, _ os.FileMode) error {
	if fs.failWith == "write" && name == fs.failOn {
		return errInjected
	}
	fs.files[name] = string(data)
	return nil
}

func (fs *failingFS) Rename(oldPath, newPath string) error {
	if fs.failWith == "rename" && oldPath == fs.failOn {
		return errInjected
	}
	fs.files[newPath] = fs.files[oldPath]
	delete(fs.files, oldPath)
	return nil
}

func (fs *failingFS) Remove(name string) error {
	if _, found := fs.files[name]; !found {
		return os.ErrNotExist
	}
	delete(fs.files, name)
	return nil
}

func TestWrite_FailedWrite(t *testing.T) {
	fs := &failingFS{
		files:    make(map[string]string),
		failOn:   filepath.Join("out", mojo.ConstantsFileName+TempSuffix),
		failWith: "write",
	}
	err := Write(fs, "out", testFiles)
	require.ErrorIs(t, err, errInjected)
	assert.Empty(t, fs.files, "no file should be left after a failed write")
}

func TestWrite_FailedRename(t *testing.T) {
	fs := &failingFS{
		files:    make(map[string]string),
		failOn:   filepath.Join("out", mojo.EnumsFileName+TempSuffix),
		failWith: "rename",
	}
	err := Write(fs, "out", testFiles)
	require.ErrorIs(t, err, errInjected)
	assert.Empty(t, fs.files, "no file should be left after a failed rename")
}
