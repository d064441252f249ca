// pkg/backup/backup_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test snapshot naming, listing and rotation

package backup_test

import (
	"testing"
	"time"

	"github.com/arthur-debert/alx/pkg/backup"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	script    = "/cfg/alx/shell/aliases.sh"
	backupDir = "/cfg/alx/backups"
)

var t0 = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T, content string) types.FS {
	t.Helper()
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/cfg/alx/shell", 0755))
	require.NoError(t, fsys.WriteFile(script, []byte(content), 0644))
	return fsys
}

func paths(entries []backup.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestSnapshot(t *testing.T) {
	fsys := setup(t, "alias gs='git status'\n")

	path, err := backup.Snapshot(fsys, script, backupDir, t0)
	require.NoError(t, err)
	assert.Equal(t, "/cfg/alx/backups/20261014T090000Z-aliases.sh", path)

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alias gs='git status'\n", string(data))
}

func TestSnapshot_SameSecondCollision(t *testing.T) {
	fsys := setup(t, "v1")

	first, err := backup.Snapshot(fsys, script, backupDir, t0)
	require.NoError(t, err)
	second, err := backup.Snapshot(fsys, script, backupDir, t0.Add(500*time.Millisecond))
	require.NoError(t, err)
	third, err := backup.Snapshot(fsys, script, backupDir, t0)
	require.NoError(t, err)

	assert.Equal(t, "/cfg/alx/backups/20261014T090000Z-aliases.sh", first)
	assert.Equal(t, "/cfg/alx/backups/20261014T090000Z.1-aliases.sh", second)
	assert.Equal(t, "/cfg/alx/backups/20261014T090000Z.2-aliases.sh", third)

	entries, err := backup.List(fsys, backupDir, "aliases.sh")
	require.NoError(t, err)
	assert.Equal(t, []string{first, second, third}, paths(entries))
}

func TestSnapshot_MissingSource(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	_, err := backup.Snapshot(fsys, script, backupDir, t0)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestList(t *testing.T) {
	fsys := setup(t, "x")
	require.NoError(t, fsys.MkdirAll(backupDir, 0755))
	for _, name := range []string{"notes.txt", "20261014T090000Z-other.sh", "garbage-aliases.sh"} {
		require.NoError(t, fsys.WriteFile(backupDir+"/"+name, nil, 0644))
	}

	late, err := backup.Snapshot(fsys, script, backupDir, t0.Add(time.Hour))
	require.NoError(t, err)
	early, err := backup.Snapshot(fsys, script, backupDir, t0)
	require.NoError(t, err)

	entries, err := backup.List(fsys, backupDir, "aliases.sh")
	require.NoError(t, err)
	assert.Equal(t, []string{early, late}, paths(entries))
	assert.Equal(t, t0, entries[0].Time)
}

func TestList_MissingDir(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	entries, err := backup.List(fsys, backupDir, "aliases.sh")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRotate(t *testing.T) {
	fsys := setup(t, "x")

	var taken []string
	for i := 0; i < 5; i++ {
		path, err := backup.Snapshot(fsys, script, backupDir, t0.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		taken = append(taken, path)
	}

	removed, err := backup.Rotate(fsys, backupDir, "aliases.sh", 2)
	require.NoError(t, err)
	assert.Equal(t, taken[:3], removed)

	entries, err := backup.List(fsys, backupDir, "aliases.sh")
	require.NoError(t, err)
	assert.Equal(t, taken[3:], paths(entries))
}

func TestRotate_Unlimited(t *testing.T) {
	fsys := setup(t, "x")
	for i := 0; i < 3; i++ {
		_, err := backup.Snapshot(fsys, script, backupDir, t0.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	removed, err := backup.Rotate(fsys, backupDir, "aliases.sh", 0)
	require.NoError(t, err)
	assert.Empty(t, removed)

	entries, err := backup.List(fsys, backupDir, "aliases.sh")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
