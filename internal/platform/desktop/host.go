// Package desktop runs weegames in an ebiten window: the full session host,
// and a single-game runner for authoring with hot reload and recording.
package desktop

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/session"
)

// WindowOptions configures the ebiten window.
type WindowOptions struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

func (o WindowOptions) apply() {
	title := o.Title
	if title == "" {
		title = "Weegames"
	}
	ebiten.SetWindowTitle(title)
	if o.Width > 0 && o.Height > 0 {
		ebiten.SetWindowSize(o.Width, o.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(o.Fullscreen)
}

// uiFace loads the Go Regular face used by menus and modals.
func uiFace(size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("desktop: load ui font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// Host is the ebiten game that drives a session.
type Host struct {
	session *session.Session
	render  *Renderer
	keys    Bindings
	logger  *log.Logger
	face    text.Face
	window  core.Size

	modal    *ebitenui.UI
	modalFor string
	pending  core.InputFrame
}

// NewHost creates a host for s.
func NewHost(s *session.Session, keys Bindings, logger *log.Logger) (*Host, error) {
	face, err := uiFace(28)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		session: s,
		render:  NewRenderer(),
		keys:    keys,
		logger:  logger,
		face:    face,
		pending: core.NewInputFrame(),
	}, nil
}

// Update advances the session by one host refresh.
func (h *Host) Update() error {
	frame := h.pending
	h.pending = core.NewInputFrame()

	h.keys.Read(&frame, inpututil.IsKeyJustPressed)
	x, y := ebiten.CursorPosition()
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.Mouse = cursor(x, y, h.window, held)

	if st := h.session.State(); st == session.StateError || st == session.StateFatal {
		h.syncModal(st)
		h.modal.Update()
	} else {
		h.modal = nil
	}

	h.session.Tick(time.Now(), frame)
	if h.session.Done() {
		return ebiten.Termination
	}
	return nil
}

// syncModal rebuilds the error modal when the message changes.
func (h *Host) syncModal(st session.State) {
	key := st.String() + "\x00" + h.session.Message()
	if h.modal != nil && h.modalFor == key {
		return
	}
	title := "Something went wrong"
	buttons := []modalButton{{"OK", core.ActionConfirm}}
	if st == session.StateFatal {
		title = "Weegames cannot continue"
		buttons = []modalButton{{"OK", core.ActionConfirm}, {"Quit", core.ActionQuit}}
	}
	h.modal = newModal(h.face, title, h.session.Message(), buttons, func(a core.Action) {
		h.pending.Set(a)
	})
	h.modalFor = key
}

// Draw renders the current screen.
func (h *Host) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	h.window = core.Size{W: float32(b.Dx()), H: float32(b.Dy())}
	screen.Fill(color.Black)

	switch h.session.State() {
	case session.StateLoading:
		h.drawLines(screen, []string{"Loading games..."}, -1)
		return
	case session.StateMenu, session.StateModeSelect:
		m := h.session.Menu()
		h.drawLines(screen, append([]string{m.Title, ""}, m.Options...), m.Cursor+2)
		return
	case session.StateError, session.StateFatal:
		if h.modal != nil {
			h.modal.Draw(screen)
		}
		return
	}

	if g := h.session.Scene(); g != nil {
		h.render.Draw(screen, g.DrawList(), g.Assets())
	}
}

// drawLines centres lines on the screen, highlighting one.
func (h *Host) drawLines(screen *ebiten.Image, lines []string, highlight int) {
	m := h.face.Metrics()
	lineHeight := (m.HAscent + m.HDescent) * 1.4
	top := float64(h.window.H)/2 - lineHeight*float64(len(lines))/2

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(float64(h.window.W)/2, top+lineHeight*float64(i))
		c := color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
		if i == highlight {
			c = color.NRGBA{R: 0xff, G: 0xee, B: 0x88, A: 0xff}
			line = "> " + line + " <"
		}
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, line, h.face, op)
	}
}

// Layout uses the window size as the screen size, so cursor positions are
// window pixels.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the session quits.
func Run(s *session.Session, keys Bindings, window WindowOptions, logger *log.Logger) error {
	h, err := NewHost(s, keys, logger)
	if err != nil {
		return err
	}
	window.apply()
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
