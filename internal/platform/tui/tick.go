// Package tui provides the Bubble Tea host for a weegames session.
// It maps terminal keys and mouse cells to session input, rasterises the
// draw list into coloured cells and runs the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a session tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// The session's scheduler decides how many frames each tick runs, so a
// late tick only means a catch-up frame.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
