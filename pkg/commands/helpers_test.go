package commands_test

import (
	"testing"

	"github.com/arthur-debert/alx/pkg/commands"
	"github.com/arthur-debert/alx/pkg/shell"
	"github.com/arthur-debert/alx/pkg/testutil"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, dialect shell.Dialect) (commands.Env, *testutil.TestEnvironment) {
	t.Helper()
	te := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly, dialect)
	env := commands.Env{
		Config: te.Config,
		FS:     te.FS,
		Now:    te.Clock.Now,
		Home:   te.HomeDir,
	}
	return env, te
}

func mustAdd(t *testing.T, env commands.Env, name, command, group string) {
	t.Helper()
	_, err := commands.Add(env, commands.AddOptions{Name: name, Command: command, Group: group})
	require.NoError(t, err)
}

func names(records []types.Alias) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func ptr(s string) *string { return &s }
