package main

import "github.com/charmbracelet/lipgloss"

const (
	red     = "#FF6188"
	orange  = "#FC9867"
	green   = "#A9DC76"
	comment = "#727072"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(red))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(orange))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(green))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(comment))
	pathStyle    = lipgloss.NewStyle().Bold(true)
)
