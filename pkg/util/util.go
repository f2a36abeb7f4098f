package util

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xplshn/fixlua/pkg/config"
	"github.com/xplshn/fixlua/pkg/lexer"
	"golang.org/x/term"
)

// Program prefixes messages that have no source location.
var Program = "fixlua"

var (
	Stderr   io.Writer = os.Stderr
	exitFunc           = os.Exit
	useColor           = term.IsTerminal(int(os.Stderr.Fd()))
)

// SetColor forces ANSI colors on or off.
func SetColor(on bool) { useColor = on }

const (
	red    = "\033[31m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	reset  = "\033[0m"
)

func paint(color, s string) string {
	if !useColor {
		return s
	}
	return color + s + reset
}

// FormatError renders err as "source:line: error: msg near tok" when it is
// a scanning error, and "program: error: msg" otherwise.
func FormatError(err error) string {
	var le *lexer.Error
	if errors.As(err, &le) {
		msg := fmt.Sprintf("%s:%d: %s %s", le.Source, le.Line, paint(red, "error:"), le.Msg)
		if le.Near != "" {
			msg += " near " + le.Near
		}
		return msg
	}
	return fmt.Sprintf("%s: %s %v", Program, paint(red, "error:"), err)
}

// Error prints err and exits the program.
func Error(err error) {
	fmt.Fprintln(Stderr, FormatError(err))
	exitFunc(1)
}

// FormatWarning renders w with the flag that controls it.
func FormatWarning(cfg *config.Config, w lexer.Warning) string {
	return fmt.Sprintf("%s:%d: %s %s [-W%s]", w.Source, w.Line, paint(yellow, "warning:"), w.Msg, cfg.Warnings[w.Kind].Name)
}

// Warn prints every warning that is still enabled in cfg.
func Warn(cfg *config.Config, ws []lexer.Warning) {
	for _, w := range ws {
		if cfg.IsWarningEnabled(w.Kind) {
			fmt.Fprintln(Stderr, FormatWarning(cfg, w))
		}
	}
}

func Info(format string, args ...any) {
	fmt.Fprintf(Stderr, "%s: %s %s\n", Program, paint(cyan, "info:"), fmt.Sprintf(format, args...))
}
