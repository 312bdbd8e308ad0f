package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	boldStyle   = lipgloss.NewStyle().Bold(true)
	italicStyle = lipgloss.NewStyle().Italic(true)

	codeStyle = lipgloss.NewStyle().
			Foreground(cyanColor)

	aliasStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	echoStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
	aliasRe  = regexp.MustCompile(`~([^~]+)~`)
)

// Render styles command output. Headings, bold, italic, code spans and
// numeric alias markers are recognised; a trailing backslash is a hard line
// break and is dropped.
func Render(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, `\`)
		if heading, ok := strings.CutPrefix(line, "# "); ok {
			lines[i] = headingStyle.Render(heading)
			continue
		}
		lines[i] = renderInline(line)
	}
	return strings.Join(lines, "\n")
}

func renderInline(line string) string {
	line = codeRe.ReplaceAllStringFunc(line, func(m string) string {
		return codeStyle.Render(codeRe.FindStringSubmatch(m)[1])
	})
	line = boldRe.ReplaceAllStringFunc(line, func(m string) string {
		return boldStyle.Render(boldRe.FindStringSubmatch(m)[1])
	})
	line = italicRe.ReplaceAllStringFunc(line, func(m string) string {
		return italicStyle.Render(italicRe.FindStringSubmatch(m)[1])
	})
	return aliasRe.ReplaceAllStringFunc(line, func(m string) string {
		return aliasStyle.Render(aliasRe.FindStringSubmatch(m)[1])
	})
}
