package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/weegames/internal/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// menuView renders the directory or mode menu.
func menuView(m session.MenuView, width int) string {
	var b strings.Builder

	title := "  " + strings.Join(strings.Split(strings.ToUpper(m.Title), ""), " ") + "  "
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle.Render(title), len(title), width))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		line := "  " + opt + "  "
		if i == m.Cursor {
			b.WriteString(centerStyled(cursorStyle.Render(line), len(line), width))
		} else {
			b.WriteString(centerText(line, width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  B: Back  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle.Render(controls), len(controls), width))
	b.WriteString("\n")

	return b.String()
}

// loadingView is shown while the games root is scanned.
func loadingView(width int) string {
	return "\n" + centerText("Loading games...", width) + "\n"
}

// messageView renders the Error and Fatal screens.
func messageView(st session.State, message string, width int) string {
	var b strings.Builder

	heading := "Something went wrong"
	footer := "Enter: Back to menu"
	if st == session.StateFatal {
		heading = "Cannot continue"
		footer = "Enter/Q: Quit"
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(errorStyle.Render(heading), len(heading), width))
	b.WriteString("\n\n")
	for _, line := range wrap(message, max(20, width-8)) {
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerStyled(dimStyle.Render(footer), len(footer), width))
	b.WriteString("\n")
	return b.String()
}

// statusLine summarises the run below the playfield.
func statusLine(p session.Progress, paused bool) string {
	line := fmt.Sprintf("score %d  lives %d  speed %.2fx  difficulty %d", p.Score, p.Lives, p.PlaybackRate, p.Difficulty)
	if paused {
		line += "  [paused]"
	}
	return dimStyle.Render(line)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len(text), width)
}

// centerStyled centers styled text whose visible length is n.
func centerStyled(text string, n, width int) string {
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// wrap breaks text into lines of at most width bytes on spaces.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
