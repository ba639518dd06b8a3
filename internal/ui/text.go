package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter is a colour plus the plain-text decoration used in its place
// when colour is off.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func style(prefix, suffix string, attrs ...color.Attribute) Formatter {
	return Formatter{color: color.New(attrs...), prefix: prefix, suffix: suffix}
}

func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if colorDisabled() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline terminates spinner final messages so the next prompt starts
// on its own line.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// Mask hides a secret for listings without revealing its length.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	return strings.Repeat("•", 8)
}

func colorDisabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

var (
	// Code marks commands the user can run next.
	Code = style("`", "`", color.FgYellow)

	Path = style("", "", color.FgYellow)
	Flag = style("", "", color.FgYellow)

	Success = style("", "", color.FgGreen)
	Error   = style("", "", color.FgRed)
	Warning = style("", "", color.FgYellow)
	Info    = style("", "", color.FgCyan)

	// Highlight marks values taken from an entry: service, username, id.
	Highlight = style("'", "'", color.FgCyan)

	// Muted marks empty or absent fields, e.g. an entry without a url.
	Muted = style("(", ")", color.FgHiBlack)

	// Secret is reserved for revealed passwords.
	Secret = style("", "", color.FgMagenta, color.Bold)
)
