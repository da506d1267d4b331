// Package artifacts writes generated files to a directory, all or nothing.
package artifacts

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/mojowgpu/mojo"
)

// FileSystem is the set of file operations used by Write.
type FileSystem interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
	Rename(oldPath, newPath string) error
	Remove(name string) error
}

// OS implements FileSystem with the os package.
var OS FileSystem = osFileSystem{}

type osFileSystem struct{}

func (osFileSystem) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
func (osFileSystem) Rename(oldPath, newPath string) error { return os.Rename(oldPath, newPath) }
func (osFileSystem) Remove(name string) error             { return os.Remove(name) }

// TempSuffix is appended to the name of the files while they are being written.
const TempSuffix = ".tmp"

// Write writes the files under dir, creating it if needed.
//
// Every file is first written to "<name>.tmp", and only once all of them were written successfully they are
// renamed to their final name. On failure the temporary files are removed, and files already renamed are
// left in place.
func Write(fs FileSystem, dir string, files []mojo.Artifact) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %q", dir)
	}

	var pending []string
	cleanup := func() {
		for _, tmpPath := range pending {
			if err := fs.Remove(tmpPath); err != nil {
				klog.Warningf("Failed to remove temporary file %q: %v", tmpPath, err)
			}
		}
	}

	for _, file := range files {
		tmpPath := filepath.Join(dir, file.Name+TempSuffix)
		if err := fs.WriteFile(tmpPath, []byte(file.Contents), 0644); err != nil {
			pending = append(pending, tmpPath)
			cleanup()
			return errors.Wrapf(err, "failed to write %q", tmpPath)
		}
		pending = append(pending, tmpPath)
	}

	for len(pending) > 0 {
		tmpPath := pending[0]
		finalPath := tmpPath[:len(tmpPath)-len(TempSuffix)]
		if err := fs.Rename(tmpPath, finalPath); err != nil {
			cleanup()
			return errors.Wrapf(err, "failed to rename %q to %q", tmpPath, finalPath)
		}
		pending = pending[1:]
		klog.V(1).Infof("Wrote %q", finalPath)
	}
	return nil
}
