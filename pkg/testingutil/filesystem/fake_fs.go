package filesystem

import (
	"github.com/spf13/afero"
)

// fakeFs implements Filesystem in memory
type fakeFs struct {
	afero.Afero
}

// NewFakeFs returns an empty in-memory Filesystem
func NewFakeFs() Filesystem {
	return &fakeFs{
		Afero: afero.Afero{Fs: afero.NewMemMapFs()},
	}
}
