package display

import (
	"fmt"
	"io"
	"strings"
)

// Fallback messages used when the caller never supplied text.
const (
	DefaultHelpText    = "No help text has been set."
	DefaultVersionText = "No version text has been set."
)

// WriteHelp emits the caller-provided help text verbatim, or the default
// placeholder when text is empty.
func WriteHelp(w io.Writer, text string) {
	if text == "" {
		text = DefaultHelpText
	}
	fmt.Fprintln(w, text)
}

// WriteVersion emits the caller-provided version text, or the default
// placeholder when text is empty.
func WriteVersion(w io.Writer, text string) {
	if text == "" {
		text = DefaultVersionText
	}
	fmt.Fprintln(w, text)
}

// Option is one row of a generated usage listing.
type Option struct {
	Flags string // comma-separated aliases, e.g. "--path, --p"
	Hint  string // value placeholder, e.g. "[PATH]"; empty for flags
	Desc  string
}

// BuildUsage renders a usage header and an aligned option listing for the
// given command name.
func BuildUsage(name string, options []Option) string {
	var builder strings.Builder
	builder.WriteString(ansiHelp("Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(name, ansiBold))
	if len(options) > 0 {
		builder.WriteString(" [OPTIONS]")
	}
	builder.WriteString("\n")

	if len(options) == 0 {
		return builder.String()
	}

	flags := make([]string, len(options))
	maxLen := 0
	for i, opt := range options {
		flag := "  " + opt.Flags
		if opt.Hint != "" {
			flag += " " + opt.Hint
		}
		if len(flag) > maxLen {
			maxLen = len(flag)
		}
		flags[i] = flag
	}

	builder.WriteString("\n" + ansiHelp("Options:", ansiBold, ansiUnderline) + "\n")
	for i, opt := range options {
		padding := strings.Repeat(" ", maxLen-len(flags[i]))
		builder.WriteString(fmt.Sprintf("%s%s  %s\n", flags[i], padding, opt.Desc))
	}
	return builder.String()
}
