// Package commands provides high-level command implementations for alx.
//
// This package is the orchestration layer between the CLI and the alias
// store. Each command takes an Options struct, returns a Result struct
// and never prints: rendering is left to the caller. Commands that change
// the store run through the sync pipeline, so the store file and the
// generated script are written together.
package commands

import (
	"time"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/config"
	alxsync "github.com/arthur-debert/alx/pkg/sync"
	"github.com/arthur-debert/alx/pkg/types"
)

// Env carries the dependencies shared by every command
type Env struct {
	Config *config.Config
	FS     types.FS
	// Now defaults to time.Now
	Now func() time.Time
	// Home is the user's home directory, used to find startup files
	Home string
}

func (e Env) clock() func() time.Time {
	if e.Now == nil {
		return time.Now
	}
	return e.Now
}

func (e Env) syncer() *alxsync.Syncer {
	return alxsync.New(e.FS, e.Config, alxsync.WithClock(e.clock()))
}

// load reads the store for read-only commands
func (e Env) load() (*alias.Store, error) {
	return e.syncer().Load()
}
