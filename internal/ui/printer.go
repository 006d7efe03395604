package ui

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todoloop/internal/model"
)

// TimeLayout is how creation timestamps appear in list lines.
const TimeLayout = "2006-01-02 15:04"

type styles struct {
	title, heading, muted, accent, success, pending, fail lipgloss.Style
	banner                                                 lipgloss.Style
}

// Printer renders console text for one writer. Color output depends on the
// writer: anything that is not a terminal gets plain text.
type Printer struct {
	w     io.Writer
	theme Theme
	st    styles
}

// NewPrinter returns a Printer writing to w with theme t.
func NewPrinter(w io.Writer, t Theme) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		theme: t,
		st: styles{
			title:   r.NewStyle().Bold(true).Foreground(t.Title),
			heading: r.NewStyle().Underline(true).Foreground(t.Accent),
			muted:   r.NewStyle().Faint(true).Foreground(t.Muted),
			accent:  r.NewStyle().Foreground(t.Accent),
			success: r.NewStyle().Foreground(t.Success),
			pending: r.NewStyle().Foreground(t.Pending),
			fail:    r.NewStyle().Foreground(t.Error),
			banner: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(t.Muted).
				Padding(0, 1),
		},
	}
}

// Theme reports the active theme.
func (p *Printer) Theme() Theme { return p.theme }

func (p *Printer) println(s string) { fmt.Fprintln(p.w, s) }

// Banner prints the framed welcome title.
func (p *Printer) Banner(title string) {
	p.println(p.st.banner.Render(p.st.title.Render(title)))
}

// Heading prints an underlined section title preceded by a blank line.
func (p *Printer) Heading(s string) {
	p.println("")
	p.println(p.st.heading.Render(s))
}

// Prompt prints s without a trailing newline.
func (p *Printer) Prompt(s string) {
	fmt.Fprint(p.w, p.st.accent.Render(s)+" ")
}

// OK prints a success message.
func (p *Printer) OK(msg string) {
	p.println(p.st.success.Render(p.theme.SymOK + " " + msg))
}

// Fail prints a user-facing error message.
func (p *Printer) Fail(msg string) {
	p.println(p.st.fail.Render(p.theme.SymFail + " " + msg))
}

// Info prints a neutral message.
func (p *Printer) Info(msg string) {
	p.println(p.st.accent.Render(msg))
}

// Line prints s as is.
func (p *Printer) Line(s string) { p.println(s) }

// MenuEntry is one numbered menu option.
type MenuEntry struct {
	Key, Label string
}

// Menu prints the numbered option list followed by the choice prompt.
func (p *Printer) Menu(entries []MenuEntry) {
	p.Heading("Menu:")
	for _, e := range entries {
		p.println(fmt.Sprintf("%s. %s", e.Key, p.st.accent.Render(e.Label)))
	}
	p.Prompt("Choose an option:")
}

// Summary renders the "✔ 1  ✗ 2  Total 3" counter line.
func (p *Printer) Summary(done, pending int) string {
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		p.st.success.Render(p.theme.SymDone), done,
		p.st.pending.Render(p.theme.SymPending), pending,
		p.st.muted.Render("Total"), done+pending,
	)
}

// FormatItem renders one list line: id, glyph, creation time, description.
func (p *Printer) FormatItem(it model.Item) string {
	glyph := p.st.pending.Render(p.theme.SymPending)
	if it.Completed {
		glyph = p.st.success.Render(p.theme.SymDone)
	}
	desc := strings.ReplaceAll(it.Description, "\n", " ")
	return fmt.Sprintf("%s %s [%s] %s",
		p.st.accent.Render(fmt.Sprintf("#%d", it.ID)),
		glyph,
		p.st.muted.Render(it.CreatedAt.Local().Format(TimeLayout)),
		desc,
	)
}

// Lines maps items to formatted list lines lazily. Ranging over the result
// again walks items again.
func (p *Printer) Lines(items iter.Seq[model.Item]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for it := range items {
			if !yield(p.FormatItem(it)) {
				return
			}
		}
	}
}
