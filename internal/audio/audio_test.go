package audio

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/weegames/internal/assets"
	"github.com/vovakirdan/weegames/internal/session"
)

var _ session.Audio = (*Player)(nil)

var testFormat = beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2}

func newPlayer() *Player {
	return New(Options{MusicVolume: 1, SoundVolume: 1})
}

func silence(n int) *beep.Buffer {
	buf := beep.NewBuffer(testFormat)
	buf.Append(generators.Silence(n))
	return buf
}

func writeWAV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	buf := silence(4410)
	if err := wav.Encode(f, buf.Streamer(0, buf.Len()), testFormat); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlaySound(t *testing.T) {
	p := newPlayer()

	err := p.PlaySound("boom", nil, 1)
	var aerr *Error
	if !errors.As(err, &aerr) || !errors.Is(err, ErrNoBuffer) {
		t.Errorf("PlaySound(nil) error = %v, expected an audio error", err)
	}

	for _, rate := range []float64{1, 1.5} {
		if err := p.PlaySound("boom", silence(100), rate); err != nil {
			t.Fatalf("PlaySound() error: %v", err)
		}
	}
	if sounds, _ := p.Playing(); sounds != 2 {
		t.Errorf("Playing() sounds = %d, expected 2", sounds)
	}

	p.StopAllSounds()
	if sounds, _ := p.Playing(); sounds != 0 {
		t.Errorf("Playing() sounds after StopAllSounds = %d", sounds)
	}
}

func TestMusic(t *testing.T) {
	p := newPlayer()
	m := &assets.Music{Name: "theme", Path: writeWAV(t), Looped: true}

	if err := p.PlayMusic(m, 1.2); err != nil {
		t.Fatalf("PlayMusic() error: %v", err)
	}
	if _, music := p.Playing(); music != 1 {
		t.Errorf("Playing() music = %d, expected 1", music)
	}

	// A new track replaces the old one.
	if err := p.PlayMusic(m, 1); err != nil {
		t.Fatalf("PlayMusic() error: %v", err)
	}
	if _, music := p.Playing(); music != 1 {
		t.Errorf("Playing() music after replacing = %d, expected 1", music)
	}

	p.PauseMusic()
	if !p.MusicPaused() {
		t.Error("MusicPaused() = false after PauseMusic")
	}
	p.ResumeMusic()
	if p.MusicPaused() {
		t.Error("MusicPaused() = true after ResumeMusic")
	}

	p.StopMusic()
	p.StopMusic()
	if _, music := p.Playing(); music != 0 {
		t.Errorf("Playing() music after StopMusic = %d", music)
	}
	p.PauseMusic() // no track; must not panic
}

func TestPlayMusicMissingFile(t *testing.T) {
	p := newPlayer()
	err := p.PlayMusic(&assets.Music{Name: "gone", Path: filepath.Join(t.TempDir(), "gone.wav")}, 1)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("PlayMusic() error = %v, expected not exist", err)
	}
}

type constant float64

func (c constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{float64(c), float64(c)}
	}
	return len(samples), true
}

func (c constant) Err() error { return nil }

func TestVolume(t *testing.T) {
	tests := []struct {
		volume   float64
		expected float64
	}{
		{1, 0.8},
		{0.5, 0.4},
		{0, 0},
	}

	for _, tt := range tests {
		samples := make([][2]float64, 4)
		Volume(constant(0.8), tt.volume).Stream(samples)
		if math.Abs(samples[3][0]-tt.expected) > 1e-9 {
			t.Errorf("Volume(%v) sample = %v, expected %v", tt.volume, samples[3][0], tt.expected)
		}
	}
}
