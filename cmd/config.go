package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardforge/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cardforge settings",
	Long:  `Commands for managing the cardforge config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		checklist := cfg.ResolveChecklist("")
		if checklist == "" {
			checklist = "built-in"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, colorize.CyanString("Config:    ")+config.GetConfigFilePath())
		fmt.Fprintln(out, colorize.CyanString("Editor:    ")+cfg.ResolveEditor(""))
		fmt.Fprintln(out, colorize.CyanString("Cards dir: ")+cfg.ResolveCardsDir(""))
		fmt.Fprintln(out, colorize.CyanString("Checklist: ")+checklist)
		return nil
	},
}

// configSetEditorCmd represents the config set-editor command
var configSetEditorCmd = &cobra.Command{
	Use:   "set-editor [command]",
	Short: "Set the editor used to open new stubs",
	Example: `  cardforge config set-editor vim
  cardforge config set-editor "code --wait"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetEditor(args[0]); err != nil {
			return fmt.Errorf("error setting editor: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Editor set to: %s\n", args[0])
		return nil
	},
}

// configSetCardsDirCmd represents the config set-cards-dir command
var configSetCardsDirCmd = &cobra.Command{
	Use:   "set-cards-dir [dir]",
	Short: "Set the directory card stubs are written to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetCardsDir(args[0]); err != nil {
			return fmt.Errorf("error setting cards directory: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Cards directory set to: %s\n", args[0])
		return nil
	},
}

// configSetChecklistCmd represents the config set-checklist command
var configSetChecklistCmd = &cobra.Command{
	Use:   "set-checklist [path]",
	Short: "Set the keyword checklist file (empty string for the built-in one)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetChecklist(args[0]); err != nil {
			return fmt.Errorf("error setting checklist: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Checklist set to: %q\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetEditorCmd)
	configCmd.AddCommand(configSetCardsDirCmd)
	configCmd.AddCommand(configSetChecklistCmd)
}
