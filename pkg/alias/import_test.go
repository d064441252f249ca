package alias_test

import (
	"testing"
	"time"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Import_SkipExisting(t *testing.T) {
	s, _ := newStore(t)
	seedExample(t, s)
	s.MarkClean()

	report := s.Import([]types.Alias{
		{Name: "gs", Command: "git status --short"},
		{Name: "gp", Command: "git push", Group: "git"},
		{Name: "", Command: "echo nameless"},
		{Name: "bad", Command: ""},
		{Name: "gp", Command: "git pull"},
	}, alias.SkipExisting)

	assert.Equal(t, []string{"gp"}, report.Added)
	assert.Equal(t, []string{"gs"}, report.Skipped)
	assert.Empty(t, report.Overwritten)
	require.Len(t, report.Rejected, 3)
	assert.Equal(t, "", report.Rejected[0].Name)
	assert.True(t, errors.IsErrorCode(report.Rejected[0].Reason, errors.ErrInvalidName))
	assert.True(t, errors.IsErrorCode(report.Rejected[1].Reason, errors.ErrInvalidCommand))
	assert.True(t, errors.IsErrorCode(report.Rejected[2].Reason, errors.ErrDuplicateName))

	gs, _ := s.Get("gs")
	assert.Equal(t, "git status", gs.Command, "existing alias is kept")
	gp, _ := s.Get("gp")
	assert.Equal(t, "git push", gp.Command)
	assert.Equal(t, baseTime, gp.CreatedAt, "missing timestamps are stamped")
	assert.True(t, s.Dirty())

	err := report.Err()
	assert.True(t, errors.IsErrorCode(err, errors.ErrImportRejected))
	assert.Contains(t, err.Error(), "3 record(s) rejected")
	assert.Contains(t, err.Error(), "<unnamed>")
}

func TestStore_Import_Overwrite(t *testing.T) {
	s, _ := newStore(t)
	seedExample(t, s)

	created := baseTime.Add(-24 * time.Hour)
	report := s.Import([]types.Alias{
		{Name: "gs", Command: "git status -sb", Group: "git", CreatedAt: created, UpdatedAt: created},
	}, alias.Overwrite)

	assert.Equal(t, []string{"gs"}, report.Overwritten)
	assert.Empty(t, report.Added)
	assert.NoError(t, report.Err())

	gs, _ := s.Get("gs")
	assert.Equal(t, "git status -sb", gs.Command)
	assert.Equal(t, created, gs.CreatedAt, "imported timestamps are preserved")
}

func TestStore_Import_OverwriteIdenticalIsSkipped(t *testing.T) {
	s, _ := newStore(t)
	seedExample(t, s)
	s.MarkClean()
	before, _ := s.Get("ll")

	report := s.Import([]types.Alias{
		{Name: "ll", Command: "ls -la", Description: " long listing ", Group: "general"},
		{Name: "gs", Command: "git status", Group: "git", Disabled: true},
	}, alias.Overwrite)

	assert.Equal(t, []string{"ll"}, report.Skipped)
	assert.Equal(t, []string{"gs"}, report.Overwritten)

	after, _ := s.Get("ll")
	assert.Equal(t, before, after, "identical record keeps its timestamps")
	assert.True(t, s.Dirty())

	s.MarkClean()
	report = s.Import([]types.Alias{{Name: "ll", Command: "ls -la", Description: "long listing"}}, alias.Overwrite)
	assert.False(t, report.Changed())
	assert.False(t, s.Dirty())
}

func TestStore_Import_NothingChanged(t *testing.T) {
	s, _ := newStore(t)
	seedExample(t, s)
	s.MarkClean()

	report := s.Import([]types.Alias{{Name: "ll", Command: "ls"}}, alias.SkipExisting)
	assert.False(t, report.Changed())
	assert.False(t, s.Dirty())
}

func TestParseImportPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    alias.ImportPolicy
		wantErr bool
	}{
		{"", alias.SkipExisting, false},
		{"skip-existing", alias.SkipExisting, false},
		{"Overwrite", alias.Overwrite, false},
		{"merge", alias.SkipExisting, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := alias.ParseImportPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}
