// Package tui provides the interactive terminal UI for Lorekeeper.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/lorekeeper/internal/command"
	"github.com/fentz26/lorekeeper/internal/engine"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#6366F1")
	successColor   = lipgloss.Color("#10B981")
	warningColor   = lipgloss.Color("#F59E0B")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	fgColor        = lipgloss.Color("#F9FAFB")
	cyanColor      = lipgloss.Color("#06B6D4")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

// Engine is the part of the command engine the UI drives.
type Engine interface {
	Command(ctx context.Context, input string) (string, error)
	Autocomplete(ctx context.Context, input string) []command.Suggestion
}

// App is the main TUI application model.
type App struct {
	ctx         context.Context
	engine      Engine
	input       textinput.Model
	viewport    viewport.Model
	width       int
	height      int
	output      []string
	commands    int
	suggestions *Suggestions
}

// New creates a new TUI application. Commands run synchronously inside
// Update, so the engine is only ever touched from one goroutine.
func New(ctx context.Context, eng Engine) *App {
	ti := textinput.New()
	ti.Placeholder = "Type: npc | elf | spell Fireball | save | journal | help"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 80

	vp := viewport.New(80, 20)

	a := &App{
		ctx:         ctx,
		engine:      eng,
		input:       ti,
		viewport:    vp,
		suggestions: NewSuggestions(),
	}
	a.print(Render("# Lorekeeper\nType *help* for a list of commands."))
	return a
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit

		case "esc":
			a.suggestions.Clear()
			return a, nil

		case "up":
			if a.suggestions.IsVisible() {
				a.suggestions.Prev()
			} else {
				a.viewport.LineUp(1)
			}
			return a, nil

		case "down":
			if a.suggestions.IsVisible() {
				a.suggestions.Next()
			} else {
				a.viewport.LineDown(1)
			}
			return a, nil

		case "pgup":
			a.viewport.HalfViewUp()
			return a, nil

		case "pgdown":
			a.viewport.HalfViewDown()
			return a, nil

		case "tab":
			if selected := a.suggestions.Selected(); selected != nil {
				a.input.SetValue(selected.Label)
				a.input.CursorEnd()
				a.refreshSuggestions()
			}
			return a, nil

		case "enter":
			a.execute(a.input.Value())
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(msg.Width-6, 10)
		a.viewport.Width = msg.Width
		a.viewport.Height = max(msg.Height-8, 3)
		a.viewport.GotoBottom()
		return a, nil
	}

	var cmd tea.Cmd
	before := a.input.Value()
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		a.refreshSuggestions()
	}
	return a, cmd
}

// execute runs one line and appends the echoed input and its result to the
// output pane.
func (a *App) execute(line string) {
	line = strings.TrimSpace(line)
	a.input.SetValue("")
	a.suggestions.Clear()
	if line == "" {
		return
	}

	a.commands++
	echo := echoStyle.Render("> " + line)
	out, err := a.engine.Command(a.ctx, line)
	if err != nil {
		a.print(echo + "\n" + errorStyle.Render(fmt.Sprintf("! Unknown command: %q", line)))
		return
	}
	a.print(echo + "\n" + Render(out))
}

func (a *App) print(block string) {
	a.output = append(a.output, block)
	a.viewport.SetContent(strings.Join(a.output, "\n\n"))
	a.viewport.GotoBottom()
}

func (a *App) refreshSuggestions() {
	a.suggestions.Set(a.engine.Autocomplete(a.ctx, a.input.Value()))
}

// View implements tea.Model
func (a *App) View() string {
	var b strings.Builder

	header := titleStyle.Render("📜 Lorekeeper")
	header += "  " + lipgloss.NewStyle().Foreground(successColor).Render(fmt.Sprintf("[%d commands]", a.commands))
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("─", a.width) + "\n")

	b.WriteString(a.viewport.View())
	b.WriteString("\n")

	b.WriteString(inputBoxStyle.Render(a.input.View()))

	// Suggestions dropdown renders below the input
	if a.suggestions.IsVisible() {
		b.WriteString("\n")
		b.WriteString(a.suggestions.Render(a.width))
	}
	b.WriteString("\n")

	status := " Enter:run | Tab:complete | ↑↓:select | PgUp/PgDn:scroll | Ctrl+C:quit"
	if a.width > 0 {
		b.WriteString(statusBarStyle.Width(a.width).Render(status))
	} else {
		b.WriteString(helpStyle.Render(status))
	}

	return b.String()
}

var _ Engine = (*engine.Engine)(nil)
