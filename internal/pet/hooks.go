package pet

import "time"

// Stats is what the stat bars show.
type Stats struct {
	Hunger    float64 `json:"hunger"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`
	Health    float64 `json:"health"`
}

// Renderer draws behaviors and floor objects. onFrame and onComplete may be
// called at any later time; stale calls are ignored. onComplete is nil for
// looping behaviors. Hearts is called once per heart of a burst with the
// heart's index.
type Renderer interface {
	PlayBehavior(b Behavior, onFrame func(frame int), onComplete func())
	PlacePoop(p Poop)
	RemovePoop(id int)
	Hearts(n int)
	PhaseChanged(night bool)
}

// Positioner moves the pet around the playfield.
type Positioner interface {
	Relocate(target Point, d time.Duration)
	CurrentPosition() Point
}

// Notifier shows a transient message bubble.
type Notifier interface {
	ShowMessage(text string)
}

// AudioHook plays a named sound effect.
type AudioHook interface {
	PlaySfx(name string)
}

// StatsDisplay receives the bars after every batch of mutations.
type StatsDisplay interface {
	Render(s Stats)
}

// GameOverSink is told once when the pet is gone.
type GameOverSink interface {
	OnTerminal(r Reason)
}

// Snapshot is the state at the end of one tick.
type Snapshot struct {
	Tick  uint64    `json:"tick"`
	At    time.Time `json:"at"`
	State State     `json:"state"`
}

// TickObserver sees every completed tick.
type TickObserver interface {
	ObserveTick(s Snapshot)
}

// Hooks bundles the collaborators. Any nil field is a no-op.
type Hooks struct {
	Renderer   Renderer
	Positioner Positioner
	Notifier   Notifier
	Audio      AudioHook
	Stats      StatsDisplay
	GameOver   GameOverSink
}

func (h Hooks) withDefaults() Hooks {
	if h.Renderer == nil {
		h.Renderer = nopRenderer{}
	}
	if h.Positioner == nil {
		h.Positioner = &InstantPositioner{At: Home}
	}
	if h.Notifier == nil {
		h.Notifier = nopNotifier{}
	}
	if h.Audio == nil {
		h.Audio = nopAudio{}
	}
	if h.Stats == nil {
		h.Stats = nopStats{}
	}
	if h.GameOver == nil {
		h.GameOver = nopGameOver{}
	}
	return h
}

type nopRenderer struct{}

func (nopRenderer) PlayBehavior(Behavior, func(int), func()) {}
func (nopRenderer) PlacePoop(Poop)                           {}
func (nopRenderer) RemovePoop(int)                           {}
func (nopRenderer) Hearts(int)                               {}
func (nopRenderer) PhaseChanged(bool)                        {}

type nopNotifier struct{}

func (nopNotifier) ShowMessage(string) {}

type nopAudio struct{}

func (nopAudio) PlaySfx(string) {}

type nopStats struct{}

func (nopStats) Render(Stats) {}

type nopGameOver struct{}

func (nopGameOver) OnTerminal(Reason) {}

// InstantPositioner teleports to every target.
type InstantPositioner struct {
	At Point
}

func (p *InstantPositioner) Relocate(target Point, _ time.Duration) { p.At = target }

func (p *InstantPositioner) CurrentPosition() Point { return p.At }
