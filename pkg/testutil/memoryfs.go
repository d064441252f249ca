package testutil

import (
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/spf13/afero"
)

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}
