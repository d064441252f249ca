// Package topics adds topic-based help to a Cobra command tree. Topics are
// markdown or text files read from an fs.FS, usually an embedded directory,
// and shown with `<root> help <topic>`.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/spf13/cobra"
)

// TopicManager holds the loaded topics of one command tree
type TopicManager struct {
	source     fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is one help page
type Topic struct {
	Name string
	// Ext is the file extension, used by renderers to pick a format
	Ext     string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions lists the file extensions read as topics. Defaults to
	// .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to Plain.
	Renderer Renderer

	// GroupID places the help command in a command group
	GroupID string
}

// New creates a TopicManager reading from source
func New(source fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		source:     source,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = Plain
	}
	return tm
}

// Load reads every topic file in the source. A source with no topics is
// not an error.
func (tm *TopicManager) Load() error {
	return fs.WalkDir(tm.source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !slices.Contains(tm.extensions, ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.source, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
}

// GetTopic looks a topic up by name. Flag-style names ("--format") also
// match "option-format".
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics["option-"+name]
	return topic, ok
}

// ListTopics returns topic names in sorted order
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render returns the formatted content of topic
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, topic.Ext)
}

// writeList prints the topic index
func (tm *TopicManager) writeList(w io.Writer, rootName string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, "option-"); ok {
			options = append(options, opt)
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", rootName)
}

// Initialize loads topics from source and replaces the help command of
// rootCmd with one that also knows about topics
func Initialize(rootCmd *cobra.Command, source fs.FS, opts Options) (*TopicManager, error) {
	log := logging.GetLogger("cobrax.topics")

	tm := New(source, opts)
	if err := tm.Load(); err != nil {
		return nil, fmt.Errorf("failed to load help topics: %w", err)
	}
	log.Debug().Int("topics", len(tm.topics)).Msg("Help topics loaded")

	originalHelp := rootCmd.HelpFunc()
	rootName := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:     "help [command or topic]",
		Short:   "Help about any command or topic",
		GroupID: opts.GroupID,
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootName + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootName + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				originalHelp(rootCmd, nil)
				return
			}
			if args[0] == "topics" {
				tm.writeList(out, rootName)
				return
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				fmt.Fprint(out, tm.Render(topic))
				return
			}

			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				originalHelp(rootCmd, args)
				return
			}
			originalHelp(target, nil)
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)
	rootCmd.SetHelpCommand(helpCmd)

	return tm, nil
}
