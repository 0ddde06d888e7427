package ui

import (
	"time"

	"bearpet/internal/pet"
	"bearpet/internal/stage"
)

const sfxFlash = 300 * time.Millisecond

// screen is what the simulation draws on. It implements every display hook
// and is shared by all copies of Model.
type screen struct {
	now   time.Time
	stage *stage.Stage
	anim  player

	night   bool
	message string
	stats   pet.Stats

	sfx   string
	sfxAt time.Time

	gameOver bool
	reason   pet.Reason
}

func newScreen(now time.Time) *screen {
	return &screen{now: now, stage: stage.New(now)}
}

func (s *screen) hooks() pet.Hooks {
	return pet.Hooks{
		Renderer:   s,
		Positioner: s.stage,
		Notifier:   s,
		Audio:      s,
		Stats:      s,
		GameOver:   s,
	}
}

// setTime moves the screen clock ahead of a simulation step.
func (s *screen) setTime(now time.Time) {
	s.now = now
	s.stage.SetTime(now)
}

// animate steps the current animation and runs a completion it reports.
func (s *screen) animate() {
	if done := s.anim.advance(s.now); done != nil {
		done()
	}
}

func (s *screen) PlayBehavior(b pet.Behavior, onFrame func(int), onComplete func()) {
	s.anim = newPlayer(b, s.now, onFrame, onComplete)
}

func (s *screen) PlacePoop(p pet.Poop) { s.stage.PlacePoop(p) }

func (s *screen) RemovePoop(id int) { s.stage.RemovePoop(id) }

func (s *screen) Hearts(int) { s.stage.AddHeart() }

func (s *screen) PhaseChanged(night bool) { s.night = night }

func (s *screen) ShowMessage(text string) { s.message = text }

func (s *screen) PlaySfx(name string) {
	s.sfx = name
	s.sfxAt = s.now
}

func (s *screen) Render(st pet.Stats) { s.stats = st }

func (s *screen) OnTerminal(r pet.Reason) {
	s.gameOver = true
	s.reason = r
}

// sfxShowing reports whether a sound effect was played a moment ago.
func (s *screen) sfxShowing() bool {
	return s.sfx != "" && s.now.Sub(s.sfxAt) < sfxFlash
}

// reset readies the screen for a new pet.
func (s *screen) reset() {
	s.stage.Reset()
	s.gameOver = false
	s.reason = pet.ReasonNone
	s.message = ""
	s.sfx = ""
}
