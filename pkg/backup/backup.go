// Package backup keeps timestamped copies of generated scripts.
//
// Snapshots live in a single directory and are named
// <YYYYMMDDTHHMMSSZ>-<base>, or <YYYYMMDDTHHMMSSZ>.<n>-<base> when more
// than one snapshot is taken within the same second.
package backup

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/types"
)

// TimestampLayout is the time format used in snapshot names
const TimestampLayout = "20060102T150405Z"

// Entry describes one snapshot file
type Entry struct {
	Path string
	Time time.Time
	// Seq orders snapshots taken within the same second
	Seq int
}

// Snapshot copies src into dir and returns the snapshot path
func Snapshot(fsys types.FS, src, dir string, now time.Time) (string, error) {
	log := logging.GetLogger("backup")

	data, err := fsys.ReadFile(src)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrapf(err, errors.ErrNotFound, "nothing to back up at %s", src).
				WithDetail("path", src)
		}
		return "", errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", src).
			WithDetail("path", src)
	}

	perm := fs.FileMode(0644)
	if info, err := fsys.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}

	base := filepath.Base(src)
	stamp := now.UTC().Format(TimestampLayout)
	target := filepath.Join(dir, stamp+"-"+base)
	for seq := 1; ; seq++ {
		exists, err := filesystem.Exists(fsys, target)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrIOFailure, "failed to inspect %s", target)
		}
		if !exists {
			break
		}
		target = filepath.Join(dir, fmt.Sprintf("%s.%d-%s", stamp, seq, base))
	}

	if err := filesystem.WriteFileAtomic(fsys, target, data, perm); err != nil {
		return "", errors.Wrapf(err, errors.ErrIOFailure, "failed to write backup %s", target).
			WithDetail("path", target)
	}

	log.Debug().Str("src", src).Str("backup", target).Msg("Snapshot taken")
	return target, nil
}

// List returns the snapshots of base in dir, oldest first. A missing
// directory has no snapshots.
func List(fsys types.FS, dir, base string) ([]Entry, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to list backups in %s", dir).
			WithDetail("path", dir)
	}

	var snapshots []Entry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		snap, ok := parseName(entry.Name(), base)
		if !ok {
			continue
		}
		snap.Path = filepath.Join(dir, entry.Name())
		snapshots = append(snapshots, snap)
	}

	slices.SortFunc(snapshots, func(a, b Entry) int {
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
		return a.Seq - b.Seq
	})
	return snapshots, nil
}

// Rotate deletes the oldest snapshots of base until at most keep remain.
// keep <= 0 keeps everything. It returns the removed paths.
func Rotate(fsys types.FS, dir, base string, keep int) ([]string, error) {
	log := logging.GetLogger("backup")

	if keep <= 0 {
		return nil, nil
	}
	snapshots, err := List(fsys, dir, base)
	if err != nil {
		return nil, err
	}
	if len(snapshots) <= keep {
		return nil, nil
	}

	var removed []string
	for _, snap := range snapshots[:len(snapshots)-keep] {
		if err := fsys.Remove(snap.Path); err != nil {
			return removed, errors.Wrapf(err, errors.ErrIOFailure, "failed to remove backup %s", snap.Path).
				WithDetail("path", snap.Path)
		}
		removed = append(removed, snap.Path)
	}

	log.Debug().Str("dir", dir).Int("removed", len(removed)).Int("kept", keep).Msg("Backups rotated")
	return removed, nil
}

func parseName(name, base string) (Entry, bool) {
	prefix, ok := strings.CutSuffix(name, "-"+base)
	if !ok {
		return Entry{}, false
	}

	stamp, seqPart, hasSeq := strings.Cut(prefix, ".")
	t, err := time.Parse(TimestampLayout, stamp)
	if err != nil {
		return Entry{}, false
	}

	seq := 0
	if hasSeq {
		seq, err = strconv.Atoi(seqPart)
		if err != nil || seq < 1 {
			return Entry{}, false
		}
	}
	return Entry{Time: t, Seq: seq}, true
}
