package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     = lipgloss.Color("#e6edf3")
	colorTextDim  = lipgloss.Color("#8b949e")
	colorAmber    = lipgloss.Color("#f59e0b")
	colorRed      = lipgloss.Color("#f85149")
	colorDivider  = lipgloss.Color("#30363d")
	colorSurface  = lipgloss.Color("#1c2128")
	colorSelected = lipgloss.Color("#ffffff")
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSelected).
			Background(colorSurface).
			Padding(0, 2)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Foreground(colorText).
			Align(lipgloss.Right).
			Width(26).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Width(6).
			Align(lipgloss.Center)

	operatorKeyStyle = keyStyle.
				Foreground(colorAmber).
				Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Width(13)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDivider).
			Width(14)

	focusedFieldStyle = fieldStyle.
				BorderForeground(colorAmber)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorRed).
			Padding(1, 2)

	alertTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)
