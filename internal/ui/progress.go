package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a Unicode bar of the given width plus a percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, done*100/total)
}

// Progress renders ProgressBar in the muted style.
func (p *Printer) Progress(done, total int) string {
	return p.st.muted.Render(ProgressBar(done, total, 20))
}
