package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration zentime would start with, after the config file
and command-line flags are applied. The API key is never printed.

Examples:
  zentime config
  zentime config --focus 50m --theme latte`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out, err := cfg.Marshal()
			if err != nil {
				return err
			}

			source := "defaults"
			if cfg.Path != "" {
				source = cfg.Path
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# source: %s\n", source)
			fmt.Fprint(w, string(out))

			key := "not set (built-in tips)"
			if cfg.Tips.APIKey != "" {
				key = "set"
			}
			fmt.Fprintf(w, "# gemini api key: %s\n", key)
			return nil
		},
	}
}
