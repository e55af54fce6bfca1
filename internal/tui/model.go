// Package tui runs the calculator in a terminal with BubbleTea. It renders the
// same app.State the desktop window uses and feeds it the same actions.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calc-tool/internal/app"
)

type field int

const (
	fieldWeight field = iota
	fieldHeight
)

// Model is the root BubbleTea model.
type Model struct {
	state *app.State
	focus field
	alert *app.Alert
}

// NewModel creates a model over a fresh calculator state.
func NewModel() Model {
	return Model{state: app.NewState()}
}

// State exposes the underlying calculator state.
func (m Model) State() *app.State {
	return m.state
}

// Alert returns the alert being shown, if any.
func (m Model) Alert() *app.Alert {
	return m.alert
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Any key dismisses an alert.
	if m.alert != nil {
		m.alert = nil
		return m, nil
	}

	if key.Type == tea.KeyTab || key.Type == tea.KeyShiftTab {
		next := app.TabBMI
		if m.state.Tab == app.TabBMI {
			next = app.TabCalculator
		}
		m.dispatch(app.SelectTab(next))
		return m, nil
	}

	if m.state.Tab == app.TabBMI {
		return m.updateBMI(key)
	}
	return m.updateCalculator(key)
}

func (m Model) updateCalculator(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		m.dispatch(app.Equals())
	case tea.KeyBackspace:
		m.dispatch(app.Backspace())
	case tea.KeyEsc:
		m.dispatch(app.Clear())
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r == 'q' {
				return m, tea.Quit
			}
			if a, ok := app.KeyAction(r); ok {
				m.dispatch(a)
			}
		}
	}
	return m, nil
}

func (m Model) updateBMI(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	text := m.focusedText()
	switch key.Type {
	case tea.KeyUp, tea.KeyDown:
		m.focus = 1 - m.focus
	case tea.KeyEnter:
		m.dispatch(app.CalculateBMI())
	case tea.KeyBackspace:
		if len(*text) > 0 {
			r := []rune(*text)
			*text = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		*text += " "
	case tea.KeyRunes:
		*text += string(key.Runes)
	}
	return m, nil
}

func (m *Model) focusedText() *string {
	if m.focus == fieldHeight {
		return &m.state.BMI.Height
	}
	return &m.state.BMI.Weight
}

func (m *Model) dispatch(a app.Action) {
	if alert := m.state.Dispatch(a); alert != nil {
		m.alert = alert
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.alert != nil {
		b.WriteString(alertStyle.Render(
			alertTitleStyle.Render(m.alert.Title) + "\n\n" + m.alert.Message,
		))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("press any key"))
		return b.String()
	}

	if m.state.Tab == app.TabBMI {
		b.WriteString(m.renderBMI())
	} else {
		b.WriteString(m.renderCalculator())
	}
	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, t := range app.Tabs() {
		style := tabStyle
		if t == m.state.Tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderCalculator() string {
	display := m.state.Display()
	if display == "" {
		display = " "
	}

	var rows []string
	rows = append(rows, displayStyle.Render(display))
	for _, row := range app.Keypad() {
		var keys []string
		for _, k := range row {
			style := keyStyle
			if k.Role != app.RoleDigit {
				style = operatorKeyStyle
			}
			if len(row) == 1 {
				style = style.Width(24)
			}
			keys = append(keys, style.Render(k.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	rows = append(rows, "", hintStyle.Render("enter =  esc clear  tab switch  q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderBMI() string {
	weight, height := fieldStyle, fieldStyle
	if m.focus == fieldWeight {
		weight = focusedFieldStyle
	} else {
		height = focusedFieldStyle
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Render("Weight (kg):"), weight.Render(m.state.BMI.Weight)),
		lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Render("Height (cm):"), height.Render(m.state.BMI.Height)),
		"",
		resultStyle.Render(m.state.BMI.ValueLine()),
		m.state.BMI.CategoryLine(),
		"",
		hintStyle.Render("enter calculate  ↑/↓ field  tab switch  ctrl+c quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Run starts the terminal UI and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
