package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/alx/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS adapts an afero.Fs to types.FS. Stat, Chmod, Rename, MkdirAll,
// Remove and RemoveAll come straight from the embedded Fs.
type aferoFS struct {
	afero.Fs
}

// NewOS returns the real filesystem
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewAferoFS wraps base, typically afero.NewMemMapFs() in tests
func NewAferoFS(base afero.Fs) types.FS {
	return aferoFS{Fs: base}
}

// ReadFile rejects directories, which MemMapFs would otherwise read as empty
func (a aferoFS) ReadFile(name string) ([]byte, error) {
	if info, err := a.Fs.Stat(name); err != nil {
		return nil, err
	} else if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.Fs, name)
}

func (a aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.Fs, name, data, perm)
}

func (a aferoFS) CreateTemp(dir, pattern string) (types.File, error) {
	return afero.TempFile(a.Fs, dir, pattern)
}

func (a aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.Fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}
