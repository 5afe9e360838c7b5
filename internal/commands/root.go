package commands

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newRootCmd builds the command tree. Running zentime without a subcommand opens the timer.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zentime",
		Short: "A focused Pomodoro timer for the terminal",
		Long: `zentime is a Pomodoro timer that alternates focus sessions with short and long breaks.
Every fourth completed focus session earns a long break. Tips for the current mode are
fetched from Gemini when GEMINI_API_KEY is set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTimer,
	}

	// Persistent flags shared by every subcommand
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./zentime.yaml, then $XDG_CONFIG_HOME/zentime/config.yaml)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug level logging")

	addTimerFlags(rootCmd)

	helpCmd := newHelpCmd()
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.SetHelpCommand(helpCmd)

	return rootCmd
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}
