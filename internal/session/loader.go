package session

import (
	"context"
	"path/filepath"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/weegames/internal/assets"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

// Scene is a loaded game document with its assets.
type Scene struct {
	Path   string
	Data   *gamedata.GameData
	Assets *assets.Assets
}

// Close releases the scene's assets.
func (s *Scene) Close() {
	if s != nil && s.Assets != nil {
		s.Assets.Close()
	}
}

// Loader loads scenes by document path.
type Loader interface {
	Load(ctx context.Context, path string) (*Scene, error)
}

// FileLoader reads documents from disk. Asset paths are relative to the
// document's directory.
type FileLoader struct{}

// Load reads and decodes a document and its asset files.
func (FileLoader) Load(ctx context.Context, path string) (*Scene, error) {
	data, err := gamedata.Load(path)
	if err != nil {
		return nil, err
	}
	a, err := assets.Load(ctx, filepath.Dir(path), data.AssetFiles)
	if err != nil {
		return nil, err
	}
	return &Scene{Path: path, Data: data, Assets: a}, nil
}

// Audio is the sound back-end a session drives. rate is the playback rate,
// which also shifts pitch.
type Audio interface {
	PlaySound(name string, buf *beep.Buffer, rate float64) error
	PlayMusic(m *assets.Music, rate float64) error
	StopMusic()
	PauseMusic()
	ResumeMusic()
	StopAllSounds()
}

// silence is used when no audio back-end is configured.
type silence struct{}

func (silence) PlaySound(string, *beep.Buffer, float64) error { return nil }
func (silence) PlayMusic(*assets.Music, float64) error        { return nil }
func (silence) StopMusic()                                    {}
func (silence) PauseMusic()                                   {}
func (silence) ResumeMusic()                                  {}
func (silence) StopAllSounds()                                {}
