package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/session"
)

// statusRows are the terminal rows below the playfield.
const statusRows = 1

// Model is the Bubble Tea model for running a weegames session.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	keys       *KeyMapper
	pointer    pointer
	inputFrame core.InputFrame
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(s *session.Session, keys *KeyMapper, width, height int) Model {
	if keys == nil {
		keys = NewKeyMapper(nil)
	}
	return Model{
		session:    s,
		screen:     core.NewScreen(width, max(1, height-statusRows)),
		keys:       keys,
		inputFrame: core.NewInputFrame(),
		width:      width,
		height:     height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(core.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.update(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-statusRows))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleTick advances the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Mouse = m.pointer.sample(m.screen.Width(), m.screen.Height())
	m.session.Tick(now, m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.session.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(core.FPS)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".weegames", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	state := strings.ToLower(m.session.State().String())
	filename := fmt.Sprintf("%s_%s.txt", state, time.Now().Format("20060102_150405"))

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// render rasterises the current scene, if any, into the screen buffer.
func (m *Model) render() bool {
	g := m.session.Scene()
	if g == nil {
		m.screen.Clear()
		return false
	}
	Rasterise(m.screen, g.DrawList(), g.Assets())
	return true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch st := m.session.State(); st {
	case session.StateLoading:
		return loadingView(m.width)
	case session.StateMenu, session.StateModeSelect:
		return menuView(m.session.Menu(), m.width)
	case session.StateError, session.StateFatal:
		return messageView(st, m.session.Message(), m.width)
	}

	if !m.render() {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + statusLine(m.session.Progress(), m.session.Paused())
}

// Run starts the Bubble Tea program for the session and blocks until the
// player quits.
func Run(s *session.Session, keys *KeyMapper, width, height int) error {
	model := NewModel(s, keys, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Microgames are played with the mouse
	)

	_, err := p.Run()
	return err
}
