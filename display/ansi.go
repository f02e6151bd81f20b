package display

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiUnderline = "\x1b[4m"
)

// styled gates ANSI escapes on stdout being a terminal so piped or
// redirected help text stays clean.
var styled = term.IsTerminal(int(os.Stdout.Fd()))

// ansiHelp wraps text in the given styles when styling is enabled.
func ansiHelp(text string, styles ...string) string {
	if !styled || len(styles) == 0 {
		return text
	}
	return strings.Join(styles, "") + text + ansiReset
}
