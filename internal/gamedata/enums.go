package gamedata

// GameType classifies a document.
type GameType int

const (
	Minigame GameType = iota
	BossGame
	Other
)

var gameTypeNames = []string{"Minigame", "BossGame", "Other"}

func (t GameType) String() string { return enumString(gameTypeNames, int(t)) }
func (t GameType) MarshalText() ([]byte, error) {
	return enumText(gameTypeNames, "game type", int(t))
}
func (t *GameType) UnmarshalText(b []byte) error {
	return parseEnum(gameTypeNames, "game type", b, t)
}

// WinStatus is both the runtime outcome of a scene and the vocabulary of the
// WinStatus trigger. JustWon and JustLost only exist for one frame.
type WinStatus int

const (
	NotYetWon WinStatus = iota
	NotYetLost
	Won
	Lost
	HasBeenWon
	HasBeenLost
	JustWon
	JustLost
)

var winStatusNames = []string{
	"NotYetWon", "NotYetLost", "Won", "Lost",
	"HasBeenWon", "HasBeenLost", "JustWon", "JustLost",
}

func (w WinStatus) String() string { return enumString(winStatusNames, int(w)) }
func (w WinStatus) MarshalText() ([]byte, error) {
	return enumText(winStatusNames, "win status", int(w))
}
func (w *WinStatus) UnmarshalText(b []byte) error {
	return parseEnum(winStatusNames, "win status", b, w)
}

// SwitchState is what a CheckProperty trigger compares against.
// On and Off are levels, SwitchedOn and SwitchedOff one-frame edges.
type SwitchState int

const (
	StateOn SwitchState = iota
	StateOff
	SwitchedOn
	SwitchedOff
)

var switchStateNames = []string{"On", "Off", "SwitchedOn", "SwitchedOff"}

func (s SwitchState) String() string { return enumString(switchStateNames, int(s)) }
func (s SwitchState) MarshalText() ([]byte, error) {
	return enumText(switchStateNames, "switch state", int(s))
}
func (s *SwitchState) UnmarshalText(b []byte) error {
	return parseEnum(switchStateNames, "switch state", b, s)
}

// Switch is the level of an object's switch.
type Switch int

const (
	Off Switch = iota
	On
)

var switchNames = []string{"Off", "On"}

func (s Switch) String() string { return enumString(switchNames, int(s)) }
func (s Switch) MarshalText() ([]byte, error) {
	return enumText(switchNames, "switch", int(s))
}
func (s *Switch) UnmarshalText(b []byte) error {
	return parseEnum(switchNames, "switch", b, s)
}

// Effect is an object-level modifier.
type Effect int

const (
	EffectNone Effect = iota
	EffectFreeze
)

var effectNames = []string{"None", "Freeze"}

func (e Effect) String() string { return enumString(effectNames, int(e)) }
func (e Effect) MarshalText() ([]byte, error) {
	return enumText(effectNames, "effect", int(e))
}
func (e *Effect) UnmarshalText(b []byte) error {
	return parseEnum(effectNames, "effect", b, e)
}

// AnimationType selects looping or one-shot playback.
type AnimationType int

const (
	Loop AnimationType = iota
	OneShot
)

var animationTypeNames = []string{"Loop", "OneShot"}

func (a AnimationType) String() string { return enumString(animationTypeNames, int(a)) }
func (a AnimationType) MarshalText() ([]byte, error) {
	return enumText(animationTypeNames, "animation type", int(a))
}
func (a *AnimationType) UnmarshalText(b []byte) error {
	// Older documents call one-shot playback PlayOnce.
	if string(b) == "PlayOnce" {
		*a = OneShot
		return nil
	}
	return parseEnum(animationTypeNames, "animation type", b, a)
}

// TextResize decides how DrawText affects the object's size.
type TextResize int

const (
	MatchText TextResize = iota
	MatchObject
)

var textResizeNames = []string{"MatchText", "MatchObject"}

func (r TextResize) MarshalText() ([]byte, error) {
	return enumText(textResizeNames, "text resize", int(r))
}
func (r *TextResize) UnmarshalText(b []byte) error {
	return parseEnum(textResizeNames, "text resize", b, r)
}

// JustifyText anchors drawn text.
type JustifyText int

const (
	JustifyLeft JustifyText = iota
	JustifyCentre
)

var justifyNames = []string{"Left", "Centre"}

func (j JustifyText) MarshalText() ([]byte, error) {
	return enumText(justifyNames, "justify", int(j))
}
func (j *JustifyText) UnmarshalText(b []byte) error {
	return parseEnum(justifyNames, "justify", b, j)
}

// CompassDirection is one of the eight movement directions.
type CompassDirection int

const (
	Up CompassDirection = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

var compassNames = []string{"Up", "UpRight", "Right", "DownRight", "Down", "DownLeft", "Left", "UpLeft"}

func (c CompassDirection) String() string { return enumString(compassNames, int(c)) }
func (c CompassDirection) MarshalText() ([]byte, error) {
	return enumText(compassNames, "compass direction", int(c))
}
func (c *CompassDirection) UnmarshalText(b []byte) error {
	return parseEnum(compassNames, "compass direction", b, c)
}

// TargetType decides whether a Target motion keeps chasing.
type TargetType int

const (
	Follow TargetType = iota
	StopWhenReached
)

var targetTypeNames = []string{"Follow", "StopWhenReached"}

func (t TargetType) MarshalText() ([]byte, error) {
	return enumText(targetTypeNames, "target type", int(t))
}
func (t *TargetType) UnmarshalText(b []byte) error {
	return parseEnum(targetTypeNames, "target type", b, t)
}

// MovementHandling controls how Reflect roaming treats other objects.
type MovementHandling int

const (
	Anywhere MovementHandling = iota
	TryNotToOverlap
)

var movementHandlingNames = []string{"Anywhere", "TryNotToOverlap"}

func (m MovementHandling) MarshalText() ([]byte, error) {
	return enumText(movementHandlingNames, "movement handling", int(m))
}
func (m *MovementHandling) UnmarshalText(b []byte) error {
	return parseEnum(movementHandlingNames, "movement handling", b, m)
}

// BounceDirection is the initial horizontal drift of a Bounce roam.
type BounceDirection int

const (
	BounceLeft BounceDirection = iota
	BounceRight
)

var bounceDirectionNames = []string{"Left", "Right"}

func (d BounceDirection) MarshalText() ([]byte, error) {
	return enumText(bounceDirectionNames, "bounce direction", int(d))
}
func (d *BounceDirection) UnmarshalText(b []byte) error {
	return parseEnum(bounceDirectionNames, "bounce direction", b, d)
}

// RelativeTo is the reference frame of a relative jump.
type RelativeTo int

const (
	CurrentPosition RelativeTo = iota
	CurrentAngle
)

var relativeToNames = []string{"CurrentPosition", "CurrentAngle"}

func (r RelativeTo) MarshalText() ([]byte, error) {
	return enumText(relativeToNames, "relative to", int(r))
}
func (r *RelativeTo) UnmarshalText(b []byte) error {
	return parseEnum(relativeToNames, "relative to", b, r)
}
