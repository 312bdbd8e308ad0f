package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/lorekeeper/internal/command"
)

// maxVisible bounds the dropdown height.
const maxVisible = 5

// Suggestions holds the autocomplete candidates for the current input.
type Suggestions struct {
	items       []command.Suggestion
	selectedIdx int
}

// NewSuggestions creates an empty dropdown.
func NewSuggestions() *Suggestions {
	return &Suggestions{}
}

// Set replaces the candidates and resets the selection.
func (s *Suggestions) Set(items []command.Suggestion) {
	s.items = items
	s.selectedIdx = 0
}

// Clear hides the dropdown.
func (s *Suggestions) Clear() {
	s.Set(nil)
}

// Len returns the number of candidates.
func (s *Suggestions) Len() int {
	return len(s.items)
}

// Next moves to the next suggestion
func (s *Suggestions) Next() {
	if len(s.items) == 0 {
		return
	}
	s.selectedIdx = (s.selectedIdx + 1) % len(s.items)
}

// Prev moves to the previous suggestion
func (s *Suggestions) Prev() {
	if len(s.items) == 0 {
		return
	}
	s.selectedIdx--
	if s.selectedIdx < 0 {
		s.selectedIdx = len(s.items) - 1
	}
}

// Selected returns the currently selected suggestion
func (s *Suggestions) Selected() *command.Suggestion {
	if len(s.items) == 0 || s.selectedIdx >= len(s.items) {
		return nil
	}
	return &s.items[s.selectedIdx]
}

// IsVisible returns whether suggestions are currently visible
func (s *Suggestions) IsVisible() bool {
	return len(s.items) > 0
}

// Render renders the suggestions dropdown
func (s *Suggestions) Render(width int) string {
	if !s.IsVisible() {
		return ""
	}

	var b strings.Builder

	suggestionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Padding(0, 1)
	if width > 4 {
		suggestionStyle = suggestionStyle.Width(width - 4)
	}

	itemStyle := lipgloss.NewStyle().
		Foreground(fgColor)

	descStyle := lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true)

	// Keep the selection inside the visible window.
	start := 0
	if s.selectedIdx >= maxVisible {
		start = s.selectedIdx - maxVisible + 1
	}
	end := min(start+maxVisible, len(s.items))

	for i := start; i < end; i++ {
		item := s.items[i]
		var line string
		if i == s.selectedIdx {
			line = selectedStyle.Render("▶ " + item.Label)
			if item.Summary != "" {
				line += " " + selectedStyle.Render(item.Summary)
			}
		} else {
			line = itemStyle.Render("  " + item.Label)
			if item.Summary != "" {
				line += " " + descStyle.Render(item.Summary)
			}
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if more := len(s.items) - end; more > 0 {
		b.WriteString("\n" + descStyle.Render(fmt.Sprintf("  ... and %d more", more)))
	}

	return suggestionStyle.Render(b.String())
}
