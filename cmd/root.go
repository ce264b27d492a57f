package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardforge",
	Short: "Generate card stubs for the game engine",
	Long: `Cardforge asks for the fields of a card (name, stats, description, mana cost, class, ...),
writes a source stub to cards/<Neutral|Classes/Class>/<Type>s/<Mana> Cost/<name>.js
and opens it in your editor so you can fill in its behaviour.

Running cardforge without a subcommand is the same as 'cardforge create'.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		// .env is optional
		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file loaded", "error", err)
		} else {
			slog.Debug("loaded .env file")
		}
	},
	RunE: runCreateCmd,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug information")
	addCreateFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
