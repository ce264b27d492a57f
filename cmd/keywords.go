package cmd

import (
	"fmt"
	"io"
	"log/slog"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardforge/internal/checklist"
	"github.com/arcanaland/cardforge/internal/config"
	"github.com/arcanaland/cardforge/internal/validator"
)

var (
	keywordsFile   string
	keywordsStatus string
)

// keywordsCmd represents the keywords command group
var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Track which keywords the engine implements",
	Long: `Commands for the keyword checklist, which records the implementation
progress of keyword mechanics (Battlecry, Taunt, Windfury, ...) in the engine.`,
}

// keywordsListCmd represents the keywords ls command
var keywordsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List keywords and their status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChecklist()
		if err != nil {
			return err
		}

		if keywordsStatus != "" {
			status, err := checklist.ParseStatus(keywordsStatus)
			if err != nil {
				return err
			}
			c = c.Filter(status)
		}

		printChecklist(cmd.OutOrStdout(), c)
		return nil
	},
}

// keywordsShowCmd represents the keywords show command
var keywordsShowCmd = &cobra.Command{
	Use:   "show [keyword]",
	Short: "Show the status of one keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChecklist()
		if err != nil {
			return err
		}

		k, err := c.Find(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, colorize.CyanString("Keyword: ")+colorize.HiWhiteString("%s", k.Name))
		fmt.Fprintln(out, colorize.CyanString("Status:  ")+statusString(k.Status))
		if k.Note != "" {
			fmt.Fprintln(out, colorize.CyanString("Note:    ")+k.Note)
		}
		return nil
	},
}

// keywordsValidateCmd represents the keywords validate command
var keywordsValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a keyword checklist file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		results, err := validator.NewValidator(path).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Checklist '%s' is valid.\n", path)
		} else {
			fmt.Fprintf(out, "❌ Checklist '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(keywordsCmd)
	keywordsCmd.AddCommand(keywordsListCmd)
	keywordsCmd.AddCommand(keywordsShowCmd)
	keywordsCmd.AddCommand(keywordsValidateCmd)

	keywordsCmd.PersistentFlags().StringVarP(&keywordsFile, "file", "f", "", "Checklist file (defaults to the configured or built-in one)")
	keywordsListCmd.Flags().StringVarP(&keywordsStatus, "status", "s", "", "Only list keywords with this status (done, wip, todo)")
}

func loadChecklist() (*checklist.Checklist, error) {
	path := keywordsFile
	if path == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		path = cfg.ResolveChecklist("")
	}

	slog.Debug("loading checklist", "path", path)
	return checklist.Load(path)
}

func statusString(s checklist.Status) string {
	switch s {
	case checklist.StatusDone:
		return colorize.GreenString("%s", s.Label())
	case checklist.StatusWIP:
		return colorize.YellowString("%s", s.Label())
	default:
		return colorize.RedString("%s", s.Label())
	}
}

// printChecklist prints every group followed by a status tally
func printChecklist(w io.Writer, c *checklist.Checklist) {
	if len(c.Groups) == 0 {
		fmt.Fprintln(w, "No keywords found.")
		return
	}

	for i, g := range c.Groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header := g.Name
		if g.Note != "" {
			header += " (" + g.Note + ")"
		}
		fmt.Fprintln(w, colorize.CyanString("--- %s ---", header))

		for _, k := range g.Keywords {
			line := fmt.Sprintf("%-18s %s", k.Name, statusString(k.Status))
			if k.Note != "" {
				line += " [" + k.Note + "]"
			}
			fmt.Fprintln(w, line)
		}
	}

	counts := c.Counts()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d done, %d in progress, %d not implemented\n",
		counts[checklist.StatusDone], counts[checklist.StatusWIP], counts[checklist.StatusTodo])
}
