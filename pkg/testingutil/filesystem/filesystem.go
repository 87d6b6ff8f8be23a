// Package filesystem abstracts the file operations of the commands so they can run on an in-memory filesystem in tests
package filesystem

import (
	"os"

	devfilefs "github.com/devfile/library/v2/pkg/testingutil/filesystem"
)

// Filesystem is the subset of file operations used by the commands
type Filesystem interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultFs implements Filesystem on the operating system filesystem
type DefaultFs struct {
	devfilefs.DefaultFs
}

var _ Filesystem = DefaultFs{}
