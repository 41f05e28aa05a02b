package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	mu          sync.Mutex
	verboseMode bool
	out         io.Writer = os.Stderr
	level                 = new(slog.LevelVar)
	sl          *slog.Logger
)

func init() {
	// stdout is reserved for the report, everything else goes to stderr
	level.Set(slog.LevelInfo)
	sl = slog.New(newHandler(out))
}

func newHandler(w io.Writer) slog.Handler {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return tint.NewHandler(w, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && level.Level() > slog.LevelDebug {
					return slog.Attr{}
				}
				return a
			},
		})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetOutput redirects all log output. Used by tests to capture diagnostics.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	sl = slog.New(newHandler(w))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = verbose
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verboseMode
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return sl
}

// Command echoes an external command line before it is executed.
// Nothing is printed unless verbose mode is enabled.
func Command(args []string) {
	mu.Lock()
	defer mu.Unlock()
	if verboseMode {
		fmt.Fprintln(out, strings.Join(args, " "))
	}
}

// Debugf logs a formatted debug message if verbose mode is enabled.
func Debugf(format string, v ...interface{}) {
	current().Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, v...))
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	current().Log(context.Background(), slog.LevelError, fmt.Sprintf(format, v...))
}
