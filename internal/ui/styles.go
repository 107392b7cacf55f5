package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorLow      = lipgloss.Color("196")
	ColorModerate = lipgloss.Color("208")
	ColorHigh     = lipgloss.Color("46")
)

var (
	// Base styles
	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	// Header styles
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Underline(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Margin(0, 1)

	ActiveTabStyle = TabStyle.
			Foreground(lipgloss.Color("36")).
			Bold(true).
			Underline(true)

	InactiveTabStyle = TabStyle.
				Foreground(lipgloss.Color("241"))

	// Data styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Status styles
	LowStyle      = lipgloss.NewStyle().Foreground(ColorLow)
	ModerateStyle = lipgloss.NewStyle().Foreground(ColorModerate)
	HighStyle     = lipgloss.NewStyle().Foreground(ColorHigh)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("12")).
				Bold(true)
)
