package ui

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoloop/internal/model"
)

func classic(t *testing.T) Theme {
	t.Helper()
	th, err := LookupTheme("")
	require.NoError(t, err)
	return th
}

func TestLookupTheme(t *testing.T) {
	th, err := LookupTheme(" MONO ")
	require.NoError(t, err)
	assert.Equal(t, "mono", th.Name)

	th, err = LookupTheme("sparkly")
	assert.Error(t, err)
	assert.Equal(t, DefaultTheme, th.Name, "unknown names fall back to the default")
}

func TestFormatItem(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, classic(t))
	created := time.Date(2026, 10, 17, 9, 5, 0, 0, time.UTC)

	got := p.FormatItem(model.Item{ID: 1, Description: "Buy milk", CreatedAt: created})
	want := "#1 ✗ [" + created.Local().Format(TimeLayout) + "] Buy milk"
	assert.Equal(t, want, got)

	got = p.FormatItem(model.Item{ID: 12, Description: "done\nthing", Completed: true, CreatedAt: created})
	assert.True(t, strings.HasPrefix(got, "#12 ✓ ["), got)
	assert.True(t, strings.HasSuffix(got, "] done thing"), got)
	assert.Empty(t, buf.String(), "formatting does not print")
}

func TestFormatItemMono(t *testing.T) {
	th, err := LookupTheme("mono")
	require.NoError(t, err)
	p := NewPrinter(&bytes.Buffer{}, th)

	got := p.FormatItem(model.Item{ID: 3, Description: "x", CreatedAt: time.Now()})
	assert.True(t, strings.HasPrefix(got, "#3 [ ] ["), got)
}

func TestLinesIsLazyAndRestartable(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, classic(t))
	items := []model.Item{
		{ID: 1, Description: "A"},
		{ID: 2, Description: "B"},
		{ID: 3, Description: "C"},
	}

	pulled := 0
	src := func(yield func(model.Item) bool) {
		for _, it := range items {
			pulled++
			if !yield(it) {
				return
			}
		}
	}
	lines := p.Lines(src)
	assert.Zero(t, pulled, "nothing is formatted before iteration")

	for range lines {
		break
	}
	assert.Equal(t, 1, pulled)

	all := slices.Collect(lines)
	require.Len(t, all, 3)
	assert.Contains(t, all[2], "#3")
	assert.Equal(t, all, slices.Collect(lines))
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, classic(t))

	p.OK("Todo added!")
	p.Fail("Description cannot be empty!")
	p.Info("No todos yet!")
	p.Prompt("Choose an option:")

	assert.Equal(t, "✔ Todo added!\n❌ Description cannot be empty!\nNo todos yet!\nChoose an option: ", buf.String())
}

func TestMenu(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, classic(t))
	p.Menu([]MenuEntry{{Key: "1", Label: "Add Todo"}, {Key: "4", Label: "Quit"}})

	assert.Equal(t, "\nMenu:\n1. Add Todo\n4. Quit\nChoose an option: ", buf.String())
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, classic(t))
	p.Banner("Welcome")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "╭─────────╮", lines[0])
	assert.Equal(t, "│ Welcome │", lines[1])
	assert.Equal(t, "╰─────────╯", lines[2])
}

func TestSummary(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, classic(t))
	assert.Equal(t, "✓ 1  ✗ 2  Total 3", p.Summary(1, 2))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 5))
	assert.Equal(t, "██░░░  50%", ProgressBar(1, 2, 5))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 1))
}
