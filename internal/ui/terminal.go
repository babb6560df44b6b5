package ui

import (
	"io"
	"os"
	"strings"

	"github.com/alfredjeanlab/classkit/internal/config"
	"golang.org/x/term"
)

// ShouldUseColor reports whether ANSI colors should be written to w.
// ColorAlways and ColorNever are absolute. In auto mode it respects
// NO_COLOR, CLICOLOR_FORCE, CLICOLOR and TTY detection.
func ShouldUseColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	// https://no-color.org — any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR")) == "0" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
