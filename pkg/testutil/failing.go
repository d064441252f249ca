package testutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/alx/pkg/types"
)

// Op names a filesystem operation for error injection
type Op string

const (
	OpStat       Op = "stat"
	OpRead       Op = "read"
	OpWrite      Op = "write"
	OpCreateTemp Op = "createtemp"
	OpChmod      Op = "chmod"
	OpRename     Op = "rename"
	OpMkdir      Op = "mkdir"
	OpReadDir    Op = "readdir"
	OpRemove     Op = "remove"
)

// ErrInjected is returned by FailingFS when no explicit error was given
var ErrInjected = errors.New("injected failure")

// FailingFS wraps a filesystem and fails selected operations. Paths are
// matched exactly after cleaning; Rename matches its target path and
// CreateTemp its directory.
type FailingFS struct {
	types.FS

	mu       sync.Mutex
	failures map[Op]map[string]error
	calls    map[Op]int
}

// NewFailingFS wraps inner
func NewFailingFS(inner types.FS) *FailingFS {
	return &FailingFS{
		FS:       inner,
		failures: make(map[Op]map[string]error),
		calls:    make(map[Op]int),
	}
}

// Fail makes op on path return err, or ErrInjected when err is nil
func (f *FailingFS) Fail(op Op, path string, err error) *FailingFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		err = ErrInjected
	}
	if f.failures[op] == nil {
		f.failures[op] = make(map[string]error)
	}
	f.failures[op][filepath.Clean(path)] = err
	return f
}

// Reset clears every injected failure
func (f *FailingFS) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = make(map[Op]map[string]error)
}

// Calls returns how many times op was attempted
func (f *FailingFS) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FailingFS) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if err, ok := f.failures[op][filepath.Clean(path)]; ok {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (f *FailingFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpRead, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWrite, name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) CreateTemp(dir, pattern string) (types.File, error) {
	if err := f.check(OpCreateTemp, dir); err != nil {
		return nil, err
	}
	return f.FS.CreateTemp(dir, pattern)
}

func (f *FailingFS) Chmod(name string, mode fs.FileMode) error {
	if err := f.check(OpChmod, name); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

func (f *FailingFS) Rename(oldpath, newpath string) error {
	if err := f.check(OpRename, newpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdir, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FailingFS) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}
