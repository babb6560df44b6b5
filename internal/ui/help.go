package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alfredjeanlab/classkit/internal/config"
	"github.com/spf13/cobra"
)

// Patterns used to colorize Cobra's default help output.
var (
	// Section headers: unindented line ending with ":" (e.g. "Flags:").
	reGroupHeader = regexp.MustCompile(`(?m)^([A-Z][^\n]*:)\s*$`)

	// Command names: two-space indent, then a word, then two-or-more spaces
	// before the description.
	reCommand = regexp.MustCompile(`(?m)^(  )(\S+)(  )`)

	// Flag type annotations: e.g. "--format string".
	reFlagType = regexp.MustCompile(`(--?\S+\s+)(string|int|duration|stringSlice)`)

	reDefault = regexp.MustCompile(`\(default "[^"]*"\)`)
)

// HelpFunc returns a Cobra help function that colors the default help text
// when ShouldUseColor allows it. mode is called after flag parsing, since
// PersistentPreRunE does not run for help.
func HelpFunc(mode func() config.ColorMode) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		orig := cmd.OutOrStdout()
		if !ShouldUseColor(mode(), orig) {
			_ = cmd.Usage()
			return
		}

		var buf bytes.Buffer
		cmd.SetOut(&buf)
		_ = cmd.Usage()
		cmd.SetOut(orig)

		fmt.Fprint(orig, ColorizeHelp(NewStyler(true), buf.String()))
	}
}

// ColorizeHelp applies s to Cobra's plain-text help.
func ColorizeHelp(s Styler, help string) string {
	help = reGroupHeader.ReplaceAllStringFunc(help, func(match string) string {
		return s.Accent(strings.TrimSpace(match))
	})

	help = reCommand.ReplaceAllStringFunc(help, func(match string) string {
		parts := reCommand.FindStringSubmatch(match)
		if len(parts) == 4 {
			return parts[1] + s.Command(parts[2]) + parts[3]
		}
		return match
	})

	help = reFlagType.ReplaceAllStringFunc(help, func(match string) string {
		parts := reFlagType.FindStringSubmatch(match)
		if len(parts) == 3 {
			return parts[1] + s.Muted(parts[2])
		}
		return match
	})

	return reDefault.ReplaceAllStringFunc(help, s.Muted)
}
