// Package alx is the cobra command tree of the alx binary
package alx

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/alx/internal/version"
	"github.com/arthur-debert/alx/pkg/cobrax/topics"
	"github.com/arthur-debert/alx/pkg/commands"
	"github.com/arthur-debert/alx/pkg/config"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags
type globalOptions struct {
	verbosity int
	root      string
	shell     string
	noColor   bool
	format    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "alx",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			if opts.noColor || os.Getenv("NO_COLOR") != "" {
				pterm.DisableColor()
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&opts.shell, "shell", "", MsgFlagShell)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(
		&cobra.Group{ID: "aliases", Title: "Aliases:"},
		&cobra.Group{ID: "transfer", Title: "Import and export:"},
		&cobra.Group{ID: "setup", Title: "Setup:"},
		&cobra.Group{ID: "misc", Title: "Misc:"},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(
		newAddCmd(opts),
		newEditCmd(opts),
		newRemoveCmd(opts),
		newListCmd(opts),
		newSearchCmd(opts),
		newGroupsCmd(opts),
		newEnableCmd(opts),
		newDisableCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newMigrateCmd(opts),
		newInitCmd(opts),
		newSyncCmd(opts),
		newInfoCmd(opts),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(),
	)

	topicsFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.Markdown(0),
			GroupID:    "misc",
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// env loads the configuration and builds the command environment
func (g *globalOptions) env() (commands.Env, error) {
	cfg, err := config.Load(config.LoadOptions{Root: g.root, Shell: g.shell})
	if err != nil {
		return commands.Env{}, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return commands.Env{}, errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
	}

	log.Debug().Str("root", cfg.Root).Str("shell", cfg.Dialect.String()).Msg("Environment ready")
	return commands.Env{Config: cfg, FS: filesystem.NewOS(), Home: home}, nil
}

// output builds the renderer for the command's stdout
func (g *globalOptions) output(cmd *cobra.Command) (*output, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}

	w := cmd.OutOrStdout()
	if file, ok := w.(*os.File); ok {
		format = ui.Resolve(format, file, g.noColor)
	} else if format == ui.FormatAuto || (g.noColor && format == ui.FormatTerminal) {
		format = ui.FormatText
	}

	renderer, err := ui.NewRenderer(format, w)
	if err != nil {
		return nil, err
	}
	return &output{Renderer: renderer, format: format}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "alx version %s\n  commit: %s\n  built:  %s\n",
				version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrIOFailure, "cannot create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "ALX",
				Section: "1",
				Source:  "alx " + version.Version,
				Manual:  "alx manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrIOFailure, "failed to generate man pages")
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}
