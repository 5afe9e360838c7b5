package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/zentime/internal/config"
	"github.com/balkashynov/zentime/internal/parser"
)

func addTimerFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("focus", "", "Focus length (25, 25m, 1h)")
	flags.String("short", "", "Short break length")
	flags.String("long", "", "Long break length")
	flags.Bool("auto-breaks", false, "Start breaks automatically after focus")
	flags.Bool("auto-focus", false, "Start focus automatically after a break")
	flags.Bool("mute", false, "Start with the completion sound off")
	flags.Bool("no-tips", false, "Use built-in tips instead of Gemini")
	flags.String("theme", "", "Color flavor: latte, frappe, macchiato, mocha")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	flags.Bool("no-ui", false, "Plain line-based interface reading commands from stdin")
}

// loadConfig reads the config file and applies every flag the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	minutes := []struct {
		name   string
		target *int
	}{
		{"focus", &cfg.Timer.FocusMinutes},
		{"short", &cfg.Timer.ShortBreakMinutes},
		{"long", &cfg.Timer.LongBreakMinutes},
	}
	for _, m := range minutes {
		if !flags.Changed(m.name) {
			continue
		}
		raw, _ := flags.GetString(m.name)
		value, err := parser.ParseMinutes(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", m.name, err)
		}
		*m.target = value
	}

	if flags.Changed("auto-breaks") {
		cfg.Timer.AutoStartBreaks, _ = flags.GetBool("auto-breaks")
	}
	if flags.Changed("auto-focus") {
		cfg.Timer.AutoStartFocus, _ = flags.GetBool("auto-focus")
	}
	if flags.Changed("mute") {
		cfg.Muted, _ = flags.GetBool("mute")
	}
	if noTips, _ := flags.GetBool("no-tips"); noTips {
		cfg.Tips.Enabled = false
	}
	if flags.Changed("theme") {
		theme, _ := flags.GetString("theme")
		theme = strings.ToLower(strings.TrimSpace(theme))
		if !config.ValidTheme(theme) {
			return fmt.Errorf("--theme: unknown flavor %q (latte, frappe, macchiato, mocha)", theme)
		}
		cfg.Theme = theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	return nil
}
