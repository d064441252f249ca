package alx

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/commands"
	"github.com/spf13/cobra"
)

type completionFunc func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

// aliasNamesCompletion completes existing alias names
func aliasNamesCompletion(opts *globalOptions) completionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		env, err := opts.env()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		result, err := commands.List(env, commands.ListOptions{})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, a := range result.Aliases {
			if !slices.Contains(args, a.Name) && strings.HasPrefix(a.Name, toComplete) {
				names = append(names, a.Name)
			}
		}
		slices.Sort(names)
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// groupCompletion completes existing group names for --group flags
func groupCompletion(opts *globalOptions) completionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		env, err := opts.env()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		result, err := commands.Groups(env)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var groups []string
		for _, g := range result.Groups {
			groups = append(groups, g.Name)
		}
		return groups, cobra.ShellCompDirectiveNoFileComp
	}
}

func newAddCmd(opts *globalOptions) *cobra.Command {
	var description, group string

	cmd := &cobra.Command{
		Use:     "add <name> <command...>",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		GroupID: "aliases",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Add(env, commands.AddOptions{
				Name:        args[0],
				Command:     strings.Join(args[1:], " "),
				Description: description,
				Group:       group,
			})
			if err != nil {
				return err
			}

			if result.Reserved {
				if err := out.warn(fmt.Sprintf(MsgReserved, result.Alias.Name)); err != nil {
					return err
				}
			}
			lines := append([]string{fmt.Sprintf(MsgAdded, result.Alias.Name)}, pendingLines(result.Sync)...)
			return out.report(result, lines...)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", MsgFlagDescription)
	cmd.Flags().StringVarP(&group, "group", "g", "", MsgFlagGroup)
	_ = cmd.RegisterFlagCompletionFunc("group", groupCompletion(opts))
	return cmd
}

func newEditCmd(opts *globalOptions) *cobra.Command {
	var command, description, group string

	cmd := &cobra.Command{
		Use:               "edit <name>",
		Short:             MsgEditShort,
		Long:              MsgEditLong,
		GroupID:           "aliases",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: aliasNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			editOpts := commands.EditOptions{Name: args[0]}
			if cmd.Flags().Changed("command") {
				editOpts.Command = &command
			}
			if cmd.Flags().Changed("description") {
				editOpts.Description = &description
			}
			if cmd.Flags().Changed("group") {
				editOpts.Group = &group
			}

			result, err := commands.Edit(env, editOpts)
			if err != nil {
				return err
			}
			if !result.Changed {
				return out.report(result, fmt.Sprintf(MsgUnchanged, result.Alias.Name))
			}
			lines := append([]string{fmt.Sprintf(MsgEdited, result.Alias.Name)}, pendingLines(result.Sync)...)
			return out.report(result, lines...)
		},
	}
	cmd.Flags().StringVarP(&command, "command", "c", "", MsgFlagCommand)
	cmd.Flags().StringVarP(&description, "description", "d", "", MsgFlagDescription)
	cmd.Flags().StringVarP(&group, "group", "g", "", MsgFlagGroup)
	_ = cmd.RegisterFlagCompletionFunc("group", groupCompletion(opts))
	return cmd
}

func newRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "remove <name...>",
		Aliases:           []string{"rm"},
		Short:             MsgRemoveShort,
		GroupID:           "aliases",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: aliasNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, missing := commands.Remove(env, commands.RemoveOptions{Names: args})
			if result == nil {
				return missing
			}

			var lines []string
			if len(result.Removed) > 0 {
				lines = append(lines, fmt.Sprintf(MsgRemoved, strings.Join(result.Removed, ", ")))
			}
			lines = append(lines, pendingLines(result.Sync)...)
			if err := out.report(result, lines...); err != nil {
				return err
			}
			return missing
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var group string
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Example: MsgListExample,
		GroupID: "aliases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := commands.List(env, commands.ListOptions{Group: group, EnabledOnly: enabledOnly})
			if err != nil {
				return err
			}
			return out.RenderResult(result)
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", MsgFlagGroupFilter)
	cmd.Flags().BoolVarP(&enabledOnly, "enabled-only", "e", false, MsgFlagEnabledOnly)
	_ = cmd.RegisterFlagCompletionFunc("group", groupCompletion(opts))
	return cmd
}

func newSearchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "search <keyword>",
		Short:   MsgSearchShort,
		GroupID: "aliases",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Search(env, commands.SearchOptions{Keyword: args[0]})
			if err != nil {
				return err
			}
			return out.RenderResult(result)
		},
	}
}

func newGroupsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "groups",
		Short:   MsgGroupsShort,
		GroupID: "aliases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Groups(env)
			if err != nil {
				return err
			}
			return out.RenderResult(result)
		},
	}
}

func newEnableCmd(opts *globalOptions) *cobra.Command {
	return newToggleCmd(opts, "enable", MsgEnableShort, commands.Enable, MsgEnabled, MsgAlreadyEnabled)
}

func newDisableCmd(opts *globalOptions) *cobra.Command {
	return newToggleCmd(opts, "disable", MsgDisableShort, commands.Disable, MsgDisabled, MsgAlreadyDisabled)
}

type toggleFunc func(commands.Env, commands.ToggleOptions) (*commands.ToggleResult, error)

func newToggleCmd(opts *globalOptions, use, short string, run toggleFunc, done, already string) *cobra.Command {
	return &cobra.Command{
		Use:               use + " <name>",
		Short:             short,
		GroupID:           "aliases",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: aliasNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := run(env, commands.ToggleOptions{Name: args[0]})
			if err != nil {
				return err
			}
			if !result.Changed {
				return out.report(result, fmt.Sprintf(already, result.Alias.Name))
			}
			lines := append([]string{fmt.Sprintf(done, result.Alias.Name)}, pendingLines(result.Sync)...)
			return out.report(result, lines...)
		},
	}
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	var output, format, group string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		GroupID: "transfer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Export(env, commands.ExportOptions{Output: output, Format: format, Group: group})
			if err != nil {
				return err
			}
			return out.RenderResult(result)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVarP(&format, "as", "a", "", MsgFlagExportFormat)
	cmd.Flags().StringVarP(&group, "group", "g", "", MsgFlagGroupFilter)
	_ = cmd.RegisterFlagCompletionFunc("as", cobra.FixedCompletions([]string{"json", "toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("group", groupCompletion(opts))
	return cmd
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	var format string
	var overwrite bool

	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		GroupID: "transfer",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, rejected := commands.Import(env, commands.ImportOptions{Path: args[0], Format: format, Overwrite: overwrite})
			if result == nil {
				return rejected
			}

			report := result.Report
			if err := warnRejected(out, report); err != nil {
				return err
			}
			lines := append([]string{fmt.Sprintf(MsgImported, len(report.Added), len(report.Overwritten), len(report.Skipped))}, pendingLines(result.Sync)...)
			if err := out.report(result, lines...); err != nil {
				return err
			}
			return rejected
		},
	}
	cmd.Flags().StringVarP(&format, "as", "a", "", MsgFlagImportFormat)
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, MsgFlagOverwrite)
	_ = cmd.RegisterFlagCompletionFunc("as", cobra.FixedCompletions([]string{"json", "toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newMigrateCmd(opts *globalOptions) *cobra.Command {
	var from, group string

	cmd := &cobra.Command{
		Use:     "migrate",
		Short:   MsgMigrateShort,
		Long:    MsgMigrateLong,
		Example: MsgMigrateExample,
		GroupID: "transfer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, rejected := commands.Migrate(env, commands.MigrateOptions{Source: from, Group: group})
			if result == nil {
				return rejected
			}

			report := result.Report
			if err := warnRejected(out, report); err != nil {
				return err
			}
			lines := append([]string{fmt.Sprintf(MsgMigrated, len(result.Candidates), result.Source, len(report.Added), len(report.Skipped))}, pendingLines(result.Sync)...)
			if err := out.report(result, lines...); err != nil {
				return err
			}
			return rejected
		},
	}
	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	cmd.Flags().StringVarP(&group, "group", "g", "", MsgFlagMigrateGroup)
	return cmd
}

func warnRejected(out *output, report alias.ImportReport) error {
	for _, r := range report.Rejected {
		if err := out.warn(fmt.Sprintf("%s: %v", r.Name, r.Reason)); err != nil {
			return err
		}
	}
	return nil
}

func newInitCmd(opts *globalOptions) *cobra.Command {
	var installSnippet bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Init(env, commands.InitOptions{InstallSnippet: installSnippet})
			if err != nil {
				return err
			}

			lines := []string{fmt.Sprintf(MsgInitDone, result.Layout.Root)}
			lines = append(lines, syncLines(result.Sync)...)
			switch {
			case result.SnippetInstalled:
				lines = append(lines, fmt.Sprintf(MsgSnippetAdded, result.RCFile))
			case !installSnippet:
				lines = append(lines, fmt.Sprintf(MsgSnippetHint, result.RCFile, result.Snippet))
			}
			return out.report(result, lines...)
		},
	}
	cmd.Flags().BoolVar(&installSnippet, "install-snippet", false, MsgFlagInstallSnippet)
	return cmd
}

func newSyncCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Sync(env)
			if err != nil {
				return err
			}
			return out.report(result, syncLines(result)...)
		},
	}
}

func newInfoCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "info",
		Short:   MsgInfoShort,
		GroupID: "setup",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			out, err := opts.output(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Info(env)
			if err != nil {
				return err
			}
			return out.RenderResult(result)
		},
	}
}
