package logfields

import "log/slog"

// Canonical log field names shared by every package.
const (
	KeyRunID     = "run_id"
	KeyMode      = "mode"
	KeyNextMode  = "next_mode"
	KeyRemaining = "remaining_s"
	KeyTally     = "focus_tally"
	KeyRunning   = "running"
	KeySource    = "source"
	KeyAddr      = "addr"
	KeyPath      = "path"
	KeyError     = "error"
)

func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func Mode(m string) slog.Attr { return slog.String(KeyMode, m) }
func NextMode(m string) slog.Attr { return slog.String(KeyNextMode, m) }
func Remaining(s int) slog.Attr { return slog.Int(KeyRemaining, s) }
func Tally(n int) slog.Attr { return slog.Int(KeyTally, n) }
func Running(r bool) slog.Attr { return slog.Bool(KeyRunning, r) }
func Source(s string) slog.Attr { return slog.String(KeySource, s) }
func Addr(a string) slog.Attr { return slog.String(KeyAddr, a) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
