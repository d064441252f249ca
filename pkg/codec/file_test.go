// pkg/codec/file_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test loading and saving the store file

package codec_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/alx/pkg/codec"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePath = "/home/user/.config/alx/aliases.toml"

func TestSaveLoad(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	s := sampleStore(t)
	require.True(t, s.Dirty())

	require.NoError(t, codec.Save(fsys, s, storePath))
	assert.False(t, s.Dirty())

	data, err := fsys.ReadFile(storePath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# alx alias store"))

	loaded, err := codec.Load(fsys, storePath)
	require.NoError(t, err)
	assert.Equal(t, s.Export(""), loaded.Export(""))
}

func TestLoad_Missing(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	_, err := codec.Load(fsys, storePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestLoad_Corrupt(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/home/user/.config/alx", 0755))
	require.NoError(t, fsys.WriteFile(storePath, []byte("[[aliases]\nname = 'x'\n"), 0644))

	_, err := codec.Load(fsys, storePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCorruptFile))
	assert.Equal(t, storePath, errors.GetErrorDetails(err)["path"])
}

func TestSave_ReadOnlyFSLeavesStoreDirty(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	s := sampleStore(t)

	err := codec.Save(fsys, s, storePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIOFailure))
	assert.True(t, s.Dirty())
}
