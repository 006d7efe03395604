package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + glyphs.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor

	SymDone, SymPending string // completion glyphs in list lines
	SymOK, SymFail      string // prefixes for status messages
}

// Themes by name. "classic" is the default.
var themes = map[string]Theme{
	"classic": {
		Name:  "classic",
		Title: lipgloss.Color("14"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
		Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
		SymDone: "✓", SymPending: "✗",
		SymOK: "✔", SymFail: "❌",
	},
	"neon": {
		Name:  "neon",
		Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
		Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
		SymDone: "◼", SymPending: "◻",
		SymOK: "✔", SymFail: "✖",
	},
	"mono": {
		Name:  "mono",
		Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
		Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{}, Pending: lipgloss.NoColor{},
		SymDone: "[x]", SymPending: "[ ]",
		SymOK: "ok:", SymFail: "error:",
	},
}

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "classic"

// LookupTheme returns the named theme. Empty means DefaultTheme.
func LookupTheme(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultTheme
	}
	t, ok := themes[name]
	if !ok {
		return themes[DefaultTheme], fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}
