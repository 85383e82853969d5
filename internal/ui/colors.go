package ui

import "os"

// ANSI color and style constants for CLI output
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"

	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorWhite  = "\033[97m"
	ColorRed    = "\033[31m"
)

// Enabled reports whether styled output is wanted. NO_COLOR (https://no-color.org) turns it off.
var Enabled = os.Getenv("NO_COLOR") == ""

// Colorize wraps s in the given style when colors are enabled
func Colorize(style, s string) string {
	if !Enabled || style == "" {
		return s
	}
	return style + s + ColorReset
}

func Bold(s string) string {
	return Colorize(ColorBold+ColorWhite, s)
}

func Success(s string) string {
	return Colorize(ColorGreen, s)
}

func Info(s string) string {
	return Colorize(ColorDim+ColorYellow, s)
}

func Error(s string) string {
	return Colorize(ColorRed, s)
}
