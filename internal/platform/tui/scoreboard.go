package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/weegames/internal/storage"
)

// historyLimit is how many past runs the detail pane lists.
const historyLimit = 10

// ScoreboardDir is one games directory on the scoreboard.
type ScoreboardDir struct {
	Name string
	Path string // key passed to the store
}

// scoreHistory is implemented by stores that keep every finished session.
type scoreHistory interface {
	TopScores(dir string, limit int) ([]storage.ScoreEntry, error)
	AllStats() (map[string]*storage.Stats, error)
}

// dirRecord is what the store knows about one directory.
type dirRecord struct {
	top    storage.HighScores
	played int
	stats  *storage.Stats // nil without a history
}

type scoreboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "prev directory")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next directory")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// ScoreboardModel lists every directory with its top three. The selected
// directory's best runs are shown below when the store keeps a history.
type ScoreboardModel struct {
	dirs    []ScoreboardDir
	records []dirRecord
	store   storage.Store
	history scoreHistory
	recent  []storage.ScoreEntry
	err     error // first store failure, shown under the table

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel reads every directory's records from store.
func NewScoreboardModel(dirs []ScoreboardDir, store storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		dirs:   dirs,
		store:  store,
		help:   help.New(),
		keys:   defaultScoreboardKeys(),
		width:  width,
		height: height,
	}
	if h, ok := store.(scoreHistory); ok {
		m.history = h
	}
	m.loadRecords()
	m.table = m.newTable()
	m.loadRecent()
	return m
}

func (m *ScoreboardModel) loadRecords() {
	m.records = make([]dirRecord, len(m.dirs))
	if m.store == nil {
		return
	}
	var stats map[string]*storage.Stats
	if m.history != nil {
		var err error
		stats, err = m.history.AllStats()
		m.noteErr(err)
	}
	for i, d := range m.dirs {
		r := &m.records[i]
		top, err := m.store.HighScores(d.Path)
		m.noteErr(err)
		r.top = top
		played, err := m.store.PlayedGames(d.Path)
		m.noteErr(err)
		r.played = len(played)
		r.stats = stats[d.Name]
	}
}

func (m *ScoreboardModel) noteErr(err error) {
	if err != nil && m.err == nil {
		m.err = err
	}
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Directory", Width: 16},
		{Title: "1st", Width: 6},
		{Title: "2nd", Width: 6},
		{Title: "3rd", Width: 6},
		{Title: "Played", Width: 7},
	}
	if m.history != nil {
		columns = append(columns, table.Column{Title: "Runs", Width: 6}, table.Column{Title: "Avg", Width: 7})
	}

	rows := make([]table.Row, len(m.dirs))
	for i, d := range m.dirs {
		r := m.records[i]
		row := table.Row{d.Name, scoreCell(r.top[0]), scoreCell(r.top[1]), scoreCell(r.top[2]), strconv.Itoa(r.played)}
		if m.history != nil {
			runs, avg := "0", "-"
			if r.stats != nil {
				runs, avg = strconv.Itoa(r.stats.Sessions), fmt.Sprintf("%.1f", r.stats.AvgScore)
			}
			row = append(row, runs, avg)
		}
		rows[i] = row
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, min(len(rows)+1, m.height/2))),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func scoreCell(score int) string {
	if score == 0 {
		return "-"
	}
	return strconv.Itoa(score)
}

// selected returns the index of the highlighted directory, or -1.
func (m ScoreboardModel) selected() int {
	if len(m.dirs) == 0 {
		return -1
	}
	return m.table.Cursor()
}

// loadRecent reads the selected directory's best runs.
func (m *ScoreboardModel) loadRecent() {
	m.recent = nil
	i := m.selected()
	if m.history == nil || i < 0 {
		return
	}
	entries, err := m.history.TopScores(m.dirs[i].Path, historyLimit)
	m.noteErr(err)
	m.recent = entries
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, min(len(m.dirs)+1, m.height/2)))
		return m, nil
	}

	before := m.table.Cursor()
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != before {
		m.loadRecent()
	}
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	if len(m.dirs) == 0 {
		b.WriteString(boardEmptyStyle.Render("No games directories."))
	} else {
		b.WriteString(centerText(boardBoxStyle.Render(m.table.View()), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(boardBoxStyle.Render(m.detailView()), m.width))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(boardErrStyle.Render(fmt.Sprintf("Some scores could not be read: %v", m.err)))
	}

	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// detailView describes the selected directory.
func (m ScoreboardModel) detailView() string {
	i := m.selected()
	d, r := m.dirs[i], m.records[i]

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d games played)\n", d.Name, r.played)

	if m.history == nil {
		if r.top[0] == 0 {
			b.WriteString(boardEmptyStyle.Render("No scores recorded yet.\nFinish a shuffle run to set a high score!"))
		} else {
			fmt.Fprintf(&b, "Best %d", r.top[0])
		}
		return b.String()
	}

	if len(m.recent) == 0 {
		b.WriteString(boardEmptyStyle.Render("No scores recorded yet.\nFinish a shuffle run to set a high score!"))
		return b.String()
	}
	for n, e := range m.recent {
		fmt.Fprintf(&b, "#%-3d %6d  %s\n", n+1, e.Score, formatDate(e))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDate(s storage.ScoreEntry) string {
	if s.CreatedAt.IsZero() {
		return "-"
	}
	return s.CreatedAt.Format("Jan 02 15:04")
}

// IsGoingBack returns true if user wants to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back, false if quitting.
func RunScoreboard(dirs []ScoreboardDir, store storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(dirs, store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
