package gamedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/weegames/internal/core"
)

func sampleGame() *GameData {
	intro := "Click!"
	left := BounceLeft
	origin := core.V(10, 10)
	area := core.NewAABB(0, 0, 20, 20)
	return &GameData{
		GameType:    Minigame,
		Length:      Seconds(4),
		IntroText:   &intro,
		Attribution: "Sprites by someone",
		Published:   true,
		Difficulty:  1,
		AssetFiles: AssetFiles{
			Images: map[string]string{"cat": "images/cat.png"},
			Audio:  map[string]string{"meow": "audio/meow.wav"},
			Music:  &Music{Filename: "music/theme.wav", Looped: true},
			Fonts:  map[string]FontInfo{"big": {Filename: "fonts/a.ttf", Size: 48}},
		},
		Background: []BackgroundPart{
			{Sprite: Colour(core.RGB(0.2, 0.3, 0.4)), Area: core.NewAABB(0, 0, 1600, 900)},
		},
		Objects: []Object{
			{
				Name:          "Button",
				Sprite:        Colour(core.Red),
				Position:      core.V(800, 450),
				Size:          core.Size{W: 200, H: 200},
				Origin:        &origin,
				CollisionArea: &area,
				Layer:         3,
				Instructions: []Instruction{
					{
						Triggers: []Trigger{{
							Kind: TriggerInput,
							Input: Input{
								Over:        MouseOver{Kind: OverObject, Name: "Button"},
								Interaction: MouseInteraction{State: core.ButtonPress},
							},
						}},
						Actions: []Action{{Kind: ActionWin}},
					},
					{
						Triggers: []Trigger{
							{Kind: TriggerTime, When: When{Kind: WhenRandom, Start: 10, End: 20}},
							{Kind: TriggerCheckProperty, Name: "Cat", Check: PropertyCheck{Kind: CheckSwitch, Switch: SwitchedOn}},
							{Kind: TriggerWinStatus, WinStatus: HasBeenWon},
							{Kind: TriggerRandom, Chance: 0.5},
							{Kind: TriggerDifficultyLevel, Level: 2},
						},
						Actions: []Action{
							{Kind: ActionSetProperty, Setter: PropertySetter{Kind: SetAngle, Angle: AngleSetter{Kind: AngleClamp, Min: -10, Max: 10}}},
							{Kind: ActionSetProperty, Setter: PropertySetter{Kind: SetSize, Size: SizeSetter{Kind: SizeGrow, Diff: SizeDifference{Percent: true, Size: core.Size{W: 10, H: 10}}}}},
							{Kind: ActionSetProperty, Setter: PropertySetter{Kind: SetFlipVertical, Flip: FlipSetter{Set: true, Value: true}}},
							{Kind: ActionSetProperty, Setter: PropertySetter{Kind: SetLayer, Layer: LayerSetter{Kind: LayerIncrease}}},
							{Kind: ActionAnimate, Animation: Animation{Type: OneShot, Sprites: []Sprite{Image("cat"), Colour(core.Blue)}, Speed: SpeedOf(Fast)}},
							{Kind: ActionDrawText, Text: DrawText{Text: "hi", Font: "big", Colour: core.White, Resize: MatchObject, Justify: JustifyCentre}},
							{Kind: ActionRandom, RandomActions: []Action{{Kind: ActionLose}, {Kind: ActionPlaySound, Name: "meow"}}},
						},
					},
				},
			},
			{
				Name:     "Cat",
				Sprite:   Image("cat"),
				Position: core.V(100, 100),
				Size:     core.Size{W: 50, H: 50},
				Flip:     core.Flip{Horizontal: true},
				Instructions: []Instruction{{
					Actions: []Action{
						{Kind: ActionMotion, Motion: Motion{Kind: MotionRoam, Movement: MovementType{Kind: Bounce, Bounce: &left}, Area: core.NewAABB(0, 0, 1600, 900), Speed: SpeedOfValue(3.5)}},
						{Kind: ActionMotion, Motion: Motion{Kind: MotionRoam, Movement: MovementType{Kind: Reflect, Direction: CompassDirections(Up, DownLeft), Handling: TryNotToOverlap}, Area: core.NewAABB(0, 0, 100, 100), Speed: SpeedOf(Slow)}},
						{Kind: ActionMotion, Motion: Motion{Kind: MotionTarget, Target: Target{Mouse: true}, TargetType: StopWhenReached, Offset: core.V(1, 2), Speed: SpeedOf(VeryFast)}},
						{Kind: ActionMotion, Motion: Motion{Kind: MotionJumpTo, Jump: JumpLocation{Kind: JumpRelative, To: CurrentAngle, Distance: core.V(5, 0)}}},
						{Kind: ActionMotion, Motion: Motion{Kind: MotionAccelerate, Accelerate: Acceleration{Direction: AngleDirection(Angle{Kind: AngleRandom, Min: 0, Max: 90}), Speed: SpeedOf(Normal)}}},
						{Kind: ActionEffect, Effect: EffectFreeze},
						{Kind: ActionEndEarly},
					},
				}},
			},
		},
	}
}

func TestGameDataRoundTrip(t *testing.T) {
	g := sampleGame()

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	back, err := Decode(&buf, "sample.json")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !reflect.DeepEqual(g, back) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", back, g)
	}
}

func TestExternallyTaggedEncoding(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"unit action", Action{Kind: ActionWin}, `"Win"`},
		{"image sprite", Image("cat"), `{"Image":{"name":"cat"}}`},
		{"infinite length", InfiniteLength, `"Infinite"`},
		{"finite length", Seconds(4), `{"Seconds":4}`},
		{"exact time", When{Kind: WhenExact, Time: 30}, `{"Exact":{"time":30}}`},
		{"named speed", SpeedOf(VerySlow), `"VerySlow"`},
		{"speed value", SpeedOfValue(2.5), `{"Value":2.5}`},
		{"anywhere", MouseOver{Kind: OverAnywhere}, `"Anywhere"`},
		{"button", MouseInteraction{State: core.ButtonRelease}, `{"Button":{"state":"Release"}}`},
		{"swap", Motion{Kind: MotionSwap, Name: "B"}, `{"Swap":{"name":"B"}}`},
		{"switch setter", PropertySetter{Kind: SetSwitch, Switch: On}, `{"Switch":"On"}`},
		{"effect", Action{Kind: ActionEffect, Effect: EffectFreeze}, `{"Effect":"Freeze"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.value)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(got) != tc.expected {
				t.Errorf("Marshal() = %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestDecodeAcceptsPlayOnce(t *testing.T) {
	var a AnimationType
	if err := json.Unmarshal([]byte(`"PlayOnce"`), &a); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if a != OneShot {
		t.Errorf("PlayOnce decoded as %v, expected OneShot", a)
	}
}

const minimalDoc = `{
  "game_type": "Minigame",
  "length": {"Seconds": 4.0},
  "intro_text": null,
  "published": false,
  "attribution": "",
  "difficulty": 1,
  "asset_files": {"images": {}, "audio": {}, "music": null, "fonts": {}},
  "background": [],
  "objects": [
    {"name": "A", "sprite": {"Colour": {"r": 1, "g": 0, "b": 0, "a": 1}},
     "position": {"x": 800, "y": 450}, "size": {"width": 200, "height": 200},
     "angle": 0, "origin": null, "collision_area": null,
     "flip": {"horizontal": false, "vertical": false}, "layer": 0,
     "instructions": [{"triggers": [{"Time": "End"}], "actions": ["Lose"]}]}
  ]
}`

func TestDecodeMinimal(t *testing.T) {
	g, err := Decode(strings.NewReader(minimalDoc), "minimal.json")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if n, ok := g.Length.Frames(); !ok || n != 240 {
		t.Errorf("Frames() = %d, %v, expected 240, true", n, ok)
	}
	ins := g.Objects[0].Instructions[0]
	if ins.Triggers[0].Kind != TriggerTime || ins.Triggers[0].When.Kind != WhenEnd {
		t.Errorf("trigger = %+v, expected Time(End)", ins.Triggers[0])
	}
	if ins.Actions[0].Kind != ActionLose {
		t.Errorf("action = %+v, expected Lose", ins.Actions[0])
	}
}

func TestDecodeMissingOptionalFields(t *testing.T) {
	doc := `{"game_type": "Other", "length": "Infinite",
	  "objects": [{"name": "A", "sprite": {"Image": {"name": "x"}},
	    "position": {"x": 1, "y": 2}, "size": {"width": 3, "height": 4}}]}`

	g, err := Decode(strings.NewReader(doc), "partial.json")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if g.Objects[0].Origin != nil || g.Objects[0].Layer != 0 || g.Intro() != "" {
		t.Errorf("optional fields not defaulted: %+v", g.Objects[0])
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown top-level field", strings.Replace(minimalDoc, `"published"`, `"colour_scheme": 1, "published"`, 1)},
		{"unknown field in tagged content", strings.Replace(minimalDoc, `"a": 1}`, `"a": 1, "z": 0}`, 1)},
		{"unknown action", strings.Replace(minimalDoc, `"Lose"`, `"Explode"`, 1)},
		{"unit variant with content", strings.Replace(minimalDoc, `"Lose"`, `{"Lose": 1}`, 1)},
		{"two keys in tagged value", strings.Replace(minimalDoc, `{"Time": "End"}`, `{"Time": "End", "Random": {"chance": 1}}`, 1)},
		{"zero size", strings.Replace(minimalDoc, `"width": 200`, `"width": 0`, 1)},
		{"layer out of range", strings.Replace(minimalDoc, `"layer": 0`, `"layer": 300`, 1)},
		{"non-positive length", strings.Replace(minimalDoc, `{"Seconds": 4.0}`, `{"Seconds": 0}`, 1)},
		{"not json", `{`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc), "bad.json")
			var invalid *InvalidDataError
			if !errors.As(err, &invalid) {
				t.Errorf("Decode() error = %v, expected InvalidDataError", err)
			}
		})
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	g := sampleGame()
	g.Objects[1].Name = "Button"

	if err := g.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Validate() = %v, expected ErrInvalid", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Errorf("Load() error = %v, expected LoadError", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games", "g.json")
	g := sampleGame()

	if err := Save(path, g); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(g, back) {
		t.Error("Load(Save(g)) != g")
	}
}

func TestBundle(t *testing.T) {
	b := NewBundle()
	g := sampleGame()
	b.Add("b/second.json", g)
	other := sampleGame()
	other.Attribution = ""
	b.Add("a/first.json", other)

	var buf bytes.Buffer
	if err := b.Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	back, err := ReadBundle(&buf)
	if err != nil {
		t.Fatalf("ReadBundle() error: %v", err)
	}
	if got := back.Paths(); !reflect.DeepEqual(got, []string{"a/first.json", "b/second.json"}) {
		t.Errorf("Paths() = %v", got)
	}
	if got := back.Attributions(); got != "b/second.json\nSprites by someone" {
		t.Errorf("Attributions() = %q", got)
	}
}

func TestPlaythroughRoundTrip(t *testing.T) {
	p := &Playthrough{
		Path:       "games/yeah/click.json",
		Inputs:     []core.Mouse{{Position: core.V(1, 2), State: core.ButtonPress}, {State: core.ButtonUp}},
		Difficulty: 2,
		Seed:       99,
		HasBeenWon: true,
	}
	path := filepath.Join(t.TempDir(), "click.rec")
	if err := SavePlaythrough(path, p); err != nil {
		t.Fatalf("SavePlaythrough() error: %v", err)
	}
	back, err := LoadPlaythrough(path)
	if err != nil {
		t.Fatalf("LoadPlaythrough() error: %v", err)
	}
	if !reflect.DeepEqual(p, back) {
		t.Errorf("LoadPlaythrough() = %+v, expected %+v", back, p)
	}
}
