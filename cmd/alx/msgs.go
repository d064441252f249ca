package alx

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage shell aliases from one store"
	MsgInitShort       = "Create the alx root and the first alias script"
	MsgAddShort        = "Add a new alias"
	MsgAddLong         = "Add stores a new alias and regenerates the shell script."
	MsgEditShort       = "Change an existing alias"
	MsgRemoveShort     = "Remove one or more aliases"
	MsgListShort       = "List aliases by group"
	MsgSearchShort     = "Find aliases by name, command or description"
	MsgGroupsShort     = "List groups with alias counts"
	MsgEnableShort     = "Put a disabled alias back into the script"
	MsgDisableShort    = "Keep an alias in the store but out of the script"
	MsgExportShort     = "Write aliases as json, toml or yaml"
	MsgImportShort     = "Merge aliases from a json, toml or yaml file"
	MsgMigrateShort    = "Import alias definitions from a shell startup file"
	MsgSyncShort       = "Regenerate the shell script from the store"
	MsgInfoShort       = "Show paths, settings and counts"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Result messages
	MsgAdded           = "Added %s"
	MsgReserved        = "%s shadows a shell keyword or builtin"
	MsgEdited          = "Updated %s"
	MsgUnchanged       = "Nothing to change for %s"
	MsgRemoved         = "Removed %s"
	MsgEnabled         = "Enabled %s"
	MsgDisabled        = "Disabled %s"
	MsgAlreadyEnabled  = "%s is already enabled"
	MsgAlreadyDisabled = "%s is already disabled"
	MsgImported        = "Imported %d alias(es), overwrote %d, skipped %d"
	MsgMigrated        = "Found %d alias(es) in %s: added %d, skipped %d"
	MsgSynced          = "Wrote %d alias(es) to %s"
	MsgSyncBackup      = "Previous script saved to %s"
	MsgSyncPending     = "Store saved. Run `alx sync` to update the shell script"
	MsgInitDone        = "Initialized alx in %s"
	MsgSnippetAdded    = "Added the loader to %s"
	MsgSnippetHint     = "Add this to %s to load your aliases:\n\n  %s"
	MsgManWritten      = "Man pages written to %s"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot           = "alx root directory (default $ALX_ROOT or ~/.config/alx)"
	MsgFlagShell          = "Target shell: bash, zsh or fish (default from config or $SHELL)"
	MsgFlagNoColor        = "Disable colored output"
	MsgFlagFormat         = "Output format: auto, term, text or json"
	MsgFlagDescription    = "Description shown in listings"
	MsgFlagGroup          = "Group to file the alias under"
	MsgFlagGroupFilter    = "Only include aliases in this group"
	MsgFlagCommand        = "New command"
	MsgFlagOutput         = "Write to this file instead of stdout"
	MsgFlagEnabledOnly    = "Hide disabled aliases"
	MsgFlagExportFormat   = "Payload format: json, toml or yaml"
	MsgFlagImportFormat   = "Payload format (default from the file extension)"
	MsgFlagOverwrite      = "Replace aliases that already exist"
	MsgFlagFrom           = "Startup file to scan (default for the configured shell)"
	MsgFlagMigrateGroup   = "Group to file migrated aliases under"
	MsgFlagInstallSnippet = "Append the loader line to the shell startup file"
	MsgFlagManDir         = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/edit-long.txt
	msgEditLongRaw string
	MsgEditLong    = strings.TrimSpace(msgEditLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/migrate-long.txt
	msgMigrateLongRaw string
	MsgMigrateLong    = strings.TrimSpace(msgMigrateLongRaw)

	//go:embed msgs/migrate-example.txt
	msgMigrateExampleRaw string
	MsgMigrateExample    = strings.TrimRight(msgMigrateExampleRaw, "\n")

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
