// Package view shapes command results into rows shared by the renderers
package view

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/alx/pkg/commands"
	"github.com/arthur-debert/alx/pkg/types"
)

// Section is a run of aliases sharing a group
type Section struct {
	Group   string
	Aliases []types.Alias
}

// Sections splits aliases into consecutive groups, keeping their order
func Sections(aliases []types.Alias) []Section {
	var sections []Section
	for _, a := range aliases {
		group := a.EffectiveGroup()
		if n := len(sections); n > 0 && sections[n-1].Group == group {
			sections[n-1].Aliases = append(sections[n-1].Aliases, a)
			continue
		}
		sections = append(sections, Section{Group: group, Aliases: []types.Alias{a}})
	}
	return sections
}

// Row is a label and value pair
type Row struct {
	Label string
	Value string
}

// InfoRows lists the fields of an info result in display order
func InfoRows(info *commands.InfoResult) []Row {
	lastBackup := "never"
	if !info.LastBackup.IsZero() {
		lastBackup = info.LastBackup.Format("2006-01-02 15:04:05 MST")
	}

	return []Row{
		{"Root", info.Root},
		{"Shell", info.Shell},
		{"Config", withPresence(info.ConfigPath, info.ConfigExists)},
		{"Store", withPresence(info.AliasesPath, info.StoreExists)},
		{"Script", withPresence(info.ScriptPath, info.ScriptExists)},
		{"Backups", fmt.Sprintf("%s (%d, last %s)", info.BackupDir, info.Backups, lastBackup)},
		{"Aliases", fmt.Sprintf("%d in %d group(s), %d disabled", info.Aliases, info.Groups, info.Disabled)},
		{"Auto sync", onOff(info.Settings.AutoSync)},
		{"Backup", fmt.Sprintf("%s, keep %s", onOff(info.Settings.BackupEnabled), keepLabel(info.Settings.BackupKeep))},
		{"Startup file", withPresence(info.RCFile, info.SnippetInstalled)},
	}
}

// Snippet returns the setup hint shown when the script is not sourced yet
func Snippet(info *commands.InfoResult) string {
	if info.SnippetInstalled {
		return ""
	}
	return strings.TrimSpace(info.Snippet)
}

func withPresence(path string, present bool) string {
	if present {
		return path
	}
	return path + " (missing)"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func keepLabel(keep int) string {
	if keep == 0 {
		return "all"
	}
	return fmt.Sprintf("%d", keep)
}
