package views

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"slidedeck/internal/domain"
	"slidedeck/internal/notify"
)

const (
	toastMaxWidth = 44
	toastMaxLines = 4
)

// renderToast draws a notification box no wider than width cells
func (r *Renderer) renderToast(t notify.Toast, width int) string {
	if width > toastMaxWidth {
		width = toastMaxWidth
	}
	inner := width - 4 // border and padding
	if inner < 8 {
		return ""
	}

	lines := strings.Split(wordwrap.String(t.Message, inner), "\n")
	if len(lines) > toastMaxLines {
		lines = lines[:toastMaxLines]
		lines[toastMaxLines-1] = truncate.StringWithTail(lines[toastMaxLines-1], uint(inner-1), "") + "…"
	}
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(inner), "…")
	}
	text := strings.Join(lines, "\n")

	style := r.styles.ToastInfo
	if t.Kind == domain.KindSuccess {
		style = r.styles.ToastSuccess
	}
	if t.Phase != notify.PhaseVisible {
		style = r.styles.ToastFading
	}
	return style.Render(text)
}
