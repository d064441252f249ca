package alx

import (
	"fmt"

	alxsync "github.com/arthur-debert/alx/pkg/sync"
	"github.com/arthur-debert/alx/pkg/ui"
)

// output wraps a renderer with the resolved format. Mutating commands print
// confirmation lines, except in JSON mode where the result itself is
// rendered.
type output struct {
	ui.Renderer
	format ui.Format
}

func (o *output) json() bool {
	return o.format == ui.FormatJSON
}

// report renders result in JSON mode and the lines otherwise
func (o *output) report(result interface{}, lines ...string) error {
	if o.json() {
		return o.RenderResult(result)
	}
	for _, line := range lines {
		if err := o.RenderMessage(line); err != nil {
			return err
		}
	}
	return nil
}

// warn prints a notice; JSON results already carry the same information
func (o *output) warn(msg string) error {
	if o.json() {
		return nil
	}
	return o.RenderWarning(msg)
}

// syncLines describes what a sync run wrote
func syncLines(res *alxsync.Result) []string {
	if res == nil || !res.Changed() {
		return nil
	}
	if !res.Synced() {
		return []string{MsgSyncPending}
	}
	lines := []string{fmt.Sprintf(MsgSynced, res.Rendered, res.ScriptPath)}
	if res.BackupPath != "" {
		lines = append(lines, fmt.Sprintf(MsgSyncBackup, res.BackupPath))
	}
	return lines
}

// pendingLines warns when a change was saved without regenerating the script
func pendingLines(res *alxsync.Result) []string {
	if res != nil && res.Changed() && !res.Synced() {
		return []string{MsgSyncPending}
	}
	return nil
}
