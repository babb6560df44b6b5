package ui

import "fmt"

// ANSI256 color codes matching the Ayu palette.
const (
	colorAccent = 74  // blue
	colorHigh   = 114 // green
	colorCmd    = 250 // light gray
	colorMuted  = 245 // medium gray
)

// Styler renders text with ANSI colors. The zero value renders plain text.
type Styler struct {
	enabled bool
}

// NewStyler returns a Styler that colors output only when enabled is true.
func NewStyler(enabled bool) Styler {
	return Styler{enabled: enabled}
}

func (s Styler) render(code int, text string) string {
	if !s.enabled {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, text)
}

// Accent returns text in the accent (blue) color.
func (s Styler) Accent(text string) string { return s.render(colorAccent, text) }

// Muted returns text in the muted (gray) color.
func (s Styler) Muted(text string) string { return s.render(colorMuted, text) }

// Command returns text styled as a command name (light gray).
func (s Styler) Command(text string) string { return s.render(colorCmd, text) }

// Bit renders a 0/1 cell: ones in green, zeros muted.
func (s Styler) Bit(high bool, text string) string {
	if high {
		return s.render(colorHigh, text)
	}
	return s.render(colorMuted, text)
}
