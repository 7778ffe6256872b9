// Package audio plays scene sounds and music through the beep speaker.
// Sound effects overlap in one mixer; music is a single paused-or-playing
// track in a second mixer so stopping effects never touches it.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/weegames/internal/assets"
)

// DefaultSampleRate is the speaker rate used when none is configured.
const DefaultSampleRate = beep.SampleRate(44100)

// resampleQuality trades CPU for fidelity when changing playback rate.
const resampleQuality = 4

// Error reports a failed audio operation.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("audio: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrNoBuffer is returned when a sound has no decoded samples.
var ErrNoBuffer = errors.New("no sound buffer")

// Options configures a Player.
type Options struct {
	SampleRate  int
	MusicVolume float64 // 0.0 = silent, 1.0 = unchanged
	SoundVolume float64
}

// Player manages all scene audio.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	opts    Options
	sounds  *beep.Mixer
	music   *beep.Mixer
	track   *beep.Ctrl
	decoder beep.StreamSeekCloser
	started bool
}

// New creates a player. It is silent until Start.
func New(opts Options) *Player {
	rate := DefaultSampleRate
	if opts.SampleRate > 0 {
		rate = beep.SampleRate(opts.SampleRate)
	}
	return &Player{
		rate:   rate,
		opts:   opts,
		sounds: &beep.Mixer{},
		music:  &beep.Mixer{},
	}
}

var initOnce sync.Once

// Start opens the audio device.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}

	var err error
	initOnce.Do(func() {
		// Initialize speaker with sample rate and buffer size
		err = speaker.Init(p.rate, p.rate.N(time.Millisecond*100))
	})
	if err != nil {
		return &Error{Op: "open speaker", Err: err}
	}

	speaker.Play(p.sounds, p.music)
	p.started = true
	return nil
}

// Close stops everything the player is playing.
func (p *Player) Close() {
	p.StopMusic()
	p.StopAllSounds()
}

// PlaySound starts an effect. rate scales speed and pitch.
func (p *Player) PlaySound(name string, buf *beep.Buffer, rate float64) error {
	if buf == nil {
		return &Error{Op: "play " + name, Err: ErrNoBuffer}
	}
	s := p.adapt(buf.Streamer(0, buf.Len()), buf.Format().SampleRate, rate, p.opts.SoundVolume)

	speaker.Lock()
	p.sounds.Add(s)
	speaker.Unlock()
	return nil
}

// PlayMusic replaces the current track. Music is streamed from disk.
func (p *Player) PlayMusic(m *assets.Music, rate float64) error {
	if m == nil {
		return nil
	}
	f, err := os.Open(m.Path)
	if err != nil {
		return &Error{Op: "open music " + m.Name, Err: err}
	}
	dec, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return &Error{Op: "decode music " + m.Name, Err: err}
	}

	p.StopMusic()

	var s beep.Streamer = dec
	if m.Looped {
		s = beep.Loop(-1, dec)
	}
	track := &beep.Ctrl{Streamer: p.adapt(s, format.SampleRate, rate, p.opts.MusicVolume)}

	p.mu.Lock()
	p.track = track
	p.decoder = dec
	p.mu.Unlock()

	speaker.Lock()
	p.music.Add(track)
	speaker.Unlock()
	return nil
}

// StopMusic ends the current track. Stopping twice is harmless.
func (p *Player) StopMusic() {
	p.mu.Lock()
	dec := p.decoder
	p.track = nil
	p.decoder = nil
	p.mu.Unlock()

	speaker.Lock()
	p.music.Clear()
	speaker.Unlock()

	if dec != nil {
		dec.Close()
	}
}

// PauseMusic holds the current track at its position.
func (p *Player) PauseMusic() { p.setPaused(true) }

// ResumeMusic continues a paused track.
func (p *Player) ResumeMusic() { p.setPaused(false) }

func (p *Player) setPaused(paused bool) {
	p.mu.Lock()
	track := p.track
	p.mu.Unlock()
	if track == nil {
		return
	}
	speaker.Lock()
	track.Paused = paused
	speaker.Unlock()
}

// StopAllSounds cuts every playing effect.
func (p *Player) StopAllSounds() {
	speaker.Lock()
	p.sounds.Clear()
	speaker.Unlock()
}

// MusicPaused reports whether a track is loaded and paused.
func (p *Player) MusicPaused() bool {
	p.mu.Lock()
	track := p.track
	p.mu.Unlock()
	if track == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return track.Paused
}

// Playing returns the number of effects and tracks still in the mixers.
func (p *Player) Playing() (sounds, music int) {
	speaker.Lock()
	defer speaker.Unlock()
	return p.sounds.Len(), p.music.Len()
}

// adapt converts s to the speaker rate, applies the playback rate and sets
// its volume.
func (p *Player) adapt(s beep.Streamer, from beep.SampleRate, rate, volume float64) beep.Streamer {
	if rate <= 0 {
		rate = 1
	}
	if ratio := float64(from) / float64(p.rate) * rate; ratio != 1 {
		s = beep.ResampleRatio(resampleQuality, ratio, s)
	}
	return Volume(s, volume)
}

// Volume scales s linearly; 0 or less is silent.
func Volume(s beep.Streamer, volume float64) beep.Streamer {
	if volume == 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-9)),
		Silent:   volume <= 0,
	}
}
