package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardforge/internal/card"
	"github.com/arcanaland/cardforge/internal/checklist"
	"github.com/arcanaland/cardforge/internal/config"
	"github.com/arcanaland/cardforge/internal/editor"
	"github.com/arcanaland/cardforge/internal/prompt"
	"github.com/arcanaland/cardforge/internal/stub"
)

type createOptions struct {
	editor        string
	cardsDir      string
	checklist     string
	noEdit        bool
	dryRun        bool
	uncollectible bool
}

var createOpts createOptions

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Describe a card and write its stub",
	Long: `Create asks for the fields of one card, writes the stub and opens it in your editor.
Answer 'back', 'exit', 'quit' or 'stop' at any prompt to cancel without writing anything.

The editor is taken from --editor, then CARDFORGE_EDITOR, then EDITOR,
then the config file, and defaults to vim.`,
	Args: cobra.NoArgs,
	RunE: runCreateCmd,
}

func init() {
	RootCmd.AddCommand(createCmd)
	addCreateFlags(createCmd)
}

func addCreateFlags(c *cobra.Command) {
	c.Flags().StringVarP(&createOpts.editor, "editor", "e", "", "Editor command used to open the stub")
	c.Flags().StringVarP(&createOpts.cardsDir, "cards-dir", "C", "", "Directory the card tree is written to")
	c.Flags().StringVar(&createOpts.checklist, "checklist", "", "Keyword checklist file (defaults to the built-in one)")
	c.Flags().BoolVar(&createOpts.noEdit, "no-edit", false, "Do not open the stub in an editor")
	c.Flags().BoolVarP(&createOpts.dryRun, "dry-run", "n", false, "Print the stub and its path without writing anything")
	c.Flags().BoolVarP(&createOpts.uncollectible, "uncollectible", "u", false, "Mark the card as uncollectible")
}

func runCreateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	g := &generator{
		cardsDir:      cfg.ResolveCardsDir(createOpts.cardsDir),
		checklist:     cfg.ResolveChecklist(createOpts.checklist),
		dryRun:        createOpts.dryRun,
		uncollectible: createOpts.uncollectible,
		in:            cmd.InOrStdin(),
		out:           cmd.OutOrStdout(),
		errOut:        cmd.ErrOrStderr(),
		width:         terminalWidth(),
	}
	if !createOpts.noEdit && !createOpts.dryRun {
		command := cfg.ResolveEditor(createOpts.editor)
		slog.Debug("resolved editor", "command", command)
		g.editor = editor.New(command)
	}

	return g.run(cmd.Context())
}

// opener opens a written stub for manual completion
type opener interface {
	Open(ctx context.Context, path string) error
}

// generator runs one card through prompts, rendering, writing and editing
type generator struct {
	cardsDir      string
	checklist     string
	editor        opener // nil skips the editor
	dryRun        bool   // print instead of writing
	uncollectible bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	width  int
}

func (g *generator) run(ctx context.Context) error {
	d, err := card.Collect(prompt.New(g.in, g.out))
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(g.out)
		fmt.Fprintln(g.out, "Cancelled, nothing was written.")
		return nil
	}
	if err != nil {
		return err
	}
	d.Uncollectible = g.uncollectible

	// Show what would be written and stop
	if g.dryRun {
		fmt.Fprintf(g.out, "\nWould be path: %s\n", d.Path(g.cardsDir))
		fmt.Fprintf(g.out, "Content:\n%s", stub.Render(d))
		g.warnKeywords(d)
		return nil
	}

	// Write the stub
	slog.Debug("writing stub", "dir", g.cardsDir, "file", d.Filename())
	path, err := stub.NewWriter(g.cardsDir).Write(d)
	if err != nil {
		return err
	}

	fmt.Fprintln(g.out, d.Directory(g.cardsDir)+string(filepath.Separator))
	displayDraft(g.out, d, path, g.width)
	g.warnKeywords(d)

	// Open it for the behaviour to be filled in
	if g.editor == nil {
		return nil
	}
	return g.editor.Open(ctx, path)
}

// warnKeywords points out keywords the engine does not implement yet
func (g *generator) warnKeywords(d *card.Draft) {
	if len(d.Keywords) == 0 {
		return
	}

	c, err := checklist.Load(g.checklist)
	if err != nil {
		slog.Debug("skipping keyword check", "error", err)
		return
	}

	for _, k := range c.Unimplemented(d.Keywords) {
		msg := fmt.Sprintf("warning: keyword %s is not implemented yet (%s)", k.Name, k.Status.Label())
		if k.Note != "" {
			msg += ": " + strings.TrimSuffix(k.Note, ".")
		}
		fmt.Fprintln(g.errOut, colorize.YellowString("%s", msg))
	}
}
