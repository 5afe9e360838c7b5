package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Show comprehensive help for zentime",
		Long:  `Display detailed help for zentime keys, commands and flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			showCustomHelp(cmd.OutOrStdout())
		},
	}
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
 ____ ____ _  _ ___ _ _  _ ____
   /  |___ |\ |  |  | |\/| |___
  /__ |___ | \|  |  | |  | |___

zentime - Pomodoro timer for the terminal

USAGE:

  zentime [flags]         Open the timer
    --focus               Focus length (25, 25m, 1h)
    --short               Short break length
    --long                Long break length
    --auto-breaks         Start breaks automatically
    --auto-focus          Start focus automatically after a break
    --mute                Start with the completion sound off
    --no-tips             Built-in tips only, never call Gemini
    --theme               latte | frappe | macchiato | mocha
    --metrics-addr        Serve Prometheus metrics (e.g. :9090)
    --no-ui               Line mode: type commands, press enter
    --config              Config file path
    --log-file            Write logs to a file
    -v, --verbose         Debug logging

  Timer keys:
      space/p       Start / pause
      r             Reset the current mode
      1 2 3         Focus, short break, long break
      tab           Next mode
      s             Settings
      m             Mute / unmute
      esc/q         Quit and show the summary

  config                  Print the effective configuration
  version                 Print version information
  help                    Show this help

Every fourth completed focus session is followed by a long break.
Set GEMINI_API_KEY (or API_KEY, or put it in .env) for generated tips.

`)
}
