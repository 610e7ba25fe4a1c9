package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared by the widgets and the UI.
type Styles struct {
	Button           *lipgloss.Style
	ButtonDisabled   *lipgloss.Style
	ButtonChecked    *lipgloss.Style
	Cursor           *lipgloss.Style
	Divider          *lipgloss.Style
	Section          *lipgloss.Style
	Header           *lipgloss.Style
	Footer           *lipgloss.Style
	Tooltip          *lipgloss.Style
	Error            *lipgloss.Style
	Info             *lipgloss.Style
	SliderFill       *lipgloss.Style
	SliderTrack      *lipgloss.Style
	Input            *lipgloss.Style
	InputPlaceholder *lipgloss.Style
	Filter           *lipgloss.Style
	FilterPrompt     *lipgloss.Style
}

var defaultStyles = Styles{
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
	),
	ButtonChecked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Underline(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Tooltip: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SliderFill: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	SliderTrack: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	InputPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set without any decoration. Tests use it to compare
// rendered text.
func Plain() *Styles {
	plain := func() *lipgloss.Style { return ptr(lipgloss.NewStyle()) }
	return &Styles{
		Button:           plain(),
		ButtonDisabled:   plain(),
		ButtonChecked:    plain(),
		Cursor:           plain(),
		Divider:          plain(),
		Section:          plain(),
		Header:           plain(),
		Footer:           plain(),
		Tooltip:          plain(),
		Error:            plain(),
		Info:             plain(),
		SliderFill:       plain(),
		SliderTrack:      plain(),
		Input:            plain(),
		InputPlaceholder: plain(),
		Filter:           plain(),
		FilterPrompt:     plain(),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
