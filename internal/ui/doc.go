// Package ui provides the color themes shared by the console transcript and
// the plot viewer. Console output uses ANSI escape codes from Theme; the
// viewer uses lipgloss colors from TUITheme.
package ui
