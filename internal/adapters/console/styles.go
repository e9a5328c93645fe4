package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
)

// Kind selects the style of a status line
type Kind int

const (
	KindSuccess Kind = iota
	KindStale
	KindError
)

func style(r *lipgloss.Renderer, kind Kind) lipgloss.Style {
	switch kind {
	case KindStale:
		return r.NewStyle().Bold(true).Foreground(Warning)
	case KindError:
		return r.NewStyle().Foreground(Error)
	default:
		return r.NewStyle().Foreground(Secondary)
	}
}

// Status writes one styled status line to w.
// Colors are dropped when w is not a terminal.
func Status(w io.Writer, kind Kind, message string) {
	r := lipgloss.NewRenderer(w)
	fmt.Fprintln(w, style(r, kind).Render(message))
}
