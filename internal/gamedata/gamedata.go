// Package gamedata defines the on-disk microgame document and its
// trigger/action/motion vocabulary.
//
// Documents are JSON. Every enumeration is externally tagged, unknown fields
// are rejected, and missing optional fields take their zero values.
package gamedata

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/weegames/internal/core"
)

// GameData is one microgame, boss game or system scene.
type GameData struct {
	GameType    GameType         `json:"game_type"`
	Objects     []Object         `json:"objects"`
	Background  []BackgroundPart `json:"background"`
	AssetFiles  AssetFiles       `json:"asset_files"`
	Length      Length           `json:"length"`
	IntroText   *string          `json:"intro_text"`
	Attribution string           `json:"attribution"`
	Published   bool             `json:"published"`
	Difficulty  uint32           `json:"difficulty"`
}

// Object is the serialised form of a scene entity.
type Object struct {
	Name          string        `json:"name"`
	Sprite        Sprite        `json:"sprite"`
	Position      core.Vec2     `json:"position"`
	Size          core.Size     `json:"size"`
	Angle         float32       `json:"angle"`
	Origin        *core.Vec2    `json:"origin"`
	CollisionArea *core.AABB    `json:"collision_area"`
	Flip          core.Flip     `json:"flip"`
	Layer         uint8         `json:"layer"`
	Instructions  []Instruction `json:"instructions"`
}

// Instruction runs its actions when every trigger holds.
// An empty trigger list holds every frame.
type Instruction struct {
	Triggers []Trigger `json:"triggers"`
	Actions  []Action  `json:"actions"`
}

// BackgroundPart is drawn before any object.
type BackgroundPart struct {
	Sprite Sprite    `json:"sprite"`
	Area   core.AABB `json:"area"`
}

// AssetFiles maps logical asset names to files relative to the document.
type AssetFiles struct {
	Images map[string]string   `json:"images"`
	Audio  map[string]string   `json:"audio"`
	Music  *Music              `json:"music"`
	Fonts  map[string]FontInfo `json:"fonts"`
}

// Music is the scene's background track.
type Music struct {
	Filename string `json:"filename"`
	Looped   bool   `json:"looped"`
}

// FontInfo is a font file and the point size to load it at.
type FontInfo struct {
	Filename string  `json:"filename"`
	Size     float32 `json:"size"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid game data")

// Validate checks the constraints the decoder cannot express.
func (g *GameData) Validate() error {
	if !g.Length.Infinite && g.Length.Seconds <= 0 {
		return fmt.Errorf("%w: length must be positive, got %v seconds", ErrInvalid, g.Length.Seconds)
	}
	seen := make(map[string]bool, len(g.Objects))
	for i, o := range g.Objects {
		if o.Name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalid, i)
		}
		if seen[o.Name] {
			return fmt.Errorf("%w: duplicate object name %q", ErrInvalid, o.Name)
		}
		seen[o.Name] = true
		if o.Size.W <= 0 || o.Size.H <= 0 {
			return fmt.Errorf("%w: object %q has non-positive size %vx%v", ErrInvalid, o.Name, o.Size.W, o.Size.H)
		}
		for j, ins := range o.Instructions {
			if err := validateInstruction(ins); err != nil {
				return fmt.Errorf("%w: object %q instruction %d: %v", ErrInvalid, o.Name, j, err)
			}
		}
	}
	return nil
}

func validateInstruction(ins Instruction) error {
	for _, t := range ins.Triggers {
		switch t.Kind {
		case TriggerRandom:
			if t.Chance < 0 || t.Chance > 1 {
				return fmt.Errorf("random chance %v outside [0, 1]", t.Chance)
			}
		case TriggerTime:
			if t.When.Kind == WhenRandom && t.When.Start > t.When.End {
				return fmt.Errorf("random time start %d after end %d", t.When.Start, t.When.End)
			}
		}
	}
	return validateActions(ins.Actions)
}

func validateActions(actions []Action) error {
	for _, a := range actions {
		switch a.Kind {
		case ActionAnimate:
			if len(a.Animation.Sprites) == 0 {
				return fmt.Errorf("animation has no sprites")
			}
		case ActionRandom:
			if len(a.RandomActions) == 0 {
				return fmt.Errorf("random action has no choices")
			}
			if err := validateActions(a.RandomActions); err != nil {
				return err
			}
		case ActionMotion:
			if a.Motion.Kind == MotionRoam || a.Motion.Kind == MotionGoStraight {
				d := a.Motion.Direction
				if a.Motion.Kind == MotionRoam {
					d = a.Motion.Movement.Direction
				}
				if d.Compass && len(d.Possible) == 0 && (a.Motion.Kind == MotionGoStraight || a.Motion.Movement.Kind == Reflect) {
					return fmt.Errorf("direction has no possible compass points")
				}
			}
		}
	}
	return nil
}

// ObjectNames returns the object names in scene order.
func (g *GameData) ObjectNames() []string {
	names := make([]string, len(g.Objects))
	for i, o := range g.Objects {
		names[i] = o.Name
	}
	return names
}

// Intro returns the intro text or "".
func (g *GameData) Intro() string {
	if g.IntroText == nil {
		return ""
	}
	return *g.IntroText
}
