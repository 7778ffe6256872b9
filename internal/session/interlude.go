package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/weegames/internal/gamedata"
	"github.com/vovakirdan/weegames/internal/registry"
)

// Objects of the interlude scene switched on at its start when the
// matching fact holds. life-1 .. life-N follow the number of lives.
const (
	WonObject        = "won"
	LostObject       = "lost"
	LifeGainedObject = "life-gained"
	BossNextObject   = "boss-next"
	SpeedUpObject    = "speed-up"
)

// LifeObject names the interlude object shown while at least n lives remain.
func LifeObject(n int) string {
	return fmt.Sprintf("life-%d", n)
}

func (s *Session) interludeSwitches() []string {
	var on []string
	for n := 1; n <= s.rules.MaxLives; n++ {
		if s.progress.Lives >= n {
			on = append(on, LifeObject(n))
		}
	}
	if last := s.progress.LastGame; last != nil {
		if last.HasWon {
			on = append(on, WonObject)
		} else {
			on = append(on, LostObject)
		}
		if last.WasLifeGained {
			on = append(on, LifeGainedObject)
		}
		if last.SpeedUp {
			on = append(on, SpeedUpObject)
		}
	}
	if s.next != nil && s.nextBoss {
		on = append(on, BossNextObject)
	}
	return on
}

// placeholders fills the text of system scenes.
func (s *Session) placeholders() *strings.Replacer {
	next := ""
	if s.next != nil {
		next = registry.GameName(s.nextPath)
	}
	return strings.NewReplacer(
		"{score}", strconv.Itoa(s.progress.Score),
		"{lives}", strconv.Itoa(s.progress.Lives),
		"{difficulty}", strconv.Itoa(int(s.progress.Difficulty)),
		"{next}", next,
		"{directory}", s.dir.Name,
		"{best}", strconv.Itoa(s.highScores[0]),
	)
}

func replaceText(data *gamedata.GameData, r *strings.Replacer) {
	for i := range data.Objects {
		for j := range data.Objects[i].Instructions {
			replaceActions(data.Objects[i].Instructions[j].Actions, r)
		}
	}
}

func replaceActions(actions []gamedata.Action, r *strings.Replacer) {
	for i := range actions {
		a := &actions[i]
		switch a.Kind {
		case gamedata.ActionDrawText:
			a.Text.Text = r.Replace(a.Text.Text)
		case gamedata.ActionRandom:
			replaceActions(a.RandomActions, r)
		}
	}
}
