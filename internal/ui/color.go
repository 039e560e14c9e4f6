package ui

import (
	"github.com/pterm/pterm"

	"github.com/noritama/dakoku/internal/models"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Status colors a status label the way the service renders it: working is
// green, break is blue, not started is yellow, and inconsistent data is red
// so it stands out without being treated as an error.
func Status(s models.Status, label string) string {
	switch s {
	case models.StatusOpen:
		return Green(label)
	case models.StatusOnBreak:
		return Blue(label)
	case models.StatusNotStarted:
		return Yellow(label)
	case models.StatusInconsistent:
		return Red(label)
	default:
		return label
	}
}
