package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/idilsaglam/todoloop/internal/ui"
)

// command is one normalized line of menu input.
type command string

func (c command) String() string { return string(c) }

func parseCommand(line string) command {
	return command(strings.ToLower(strings.TrimSpace(line)))
}

type keyMap struct {
	Add, List, Remove, Quit key.Binding
}

var keys = keyMap{
	Add:    key.NewBinding(key.WithKeys("1", "add"), key.WithHelp("1", "Add Todo")),
	List:   key.NewBinding(key.WithKeys("2", "list"), key.WithHelp("2", "List Todos")),
	Remove: key.NewBinding(key.WithKeys("3", "remove"), key.WithHelp("3", "Remove Todo")),
	Quit:   key.NewBinding(key.WithKeys("4", "quit", "exit"), key.WithHelp("4", "Quit")),
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Add, k.List, k.Remove, k.Quit}
}

// menu turns the bindings' help text into menu entries.
func (k keyMap) menu() []ui.MenuEntry {
	bs := k.bindings()
	out := make([]ui.MenuEntry, 0, len(bs))
	for _, b := range bs {
		h := b.Help()
		out = append(out, ui.MenuEntry{Key: h.Key, Label: h.Desc})
	}
	return out
}
