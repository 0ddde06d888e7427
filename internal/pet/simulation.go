package pet

import (
	"log"
	"time"

	"bearpet/internal/sched"
	"bearpet/internal/tuning"
)

// Config wires a Simulation. Zero values pick the defaults.
type Config struct {
	Tuning   tuning.Tuning
	Rand     Rand
	Hooks    Hooks
	Observer TickObserver
	Logger   *log.Logger
}

// Simulation owns one pet and every timer acting on it. It is not safe for
// concurrent use; drive it from a single goroutine.
type Simulation struct {
	cfg   tuning.Tuning
	rng   Rand
	hooks Hooks
	obs   TickObserver
	log   *log.Logger
	sched *sched.Scheduler

	st   State
	tick uint64

	behaviorTimer sched.ID
	restoreTimer  sched.ID
	messageTimer  sched.ID
	afterLocked   func(time.Time)
}

// New hatches a pet at start and schedules its first tick.
func New(cfg Config, start time.Time) *Simulation {
	if cfg.Tuning == (tuning.Tuning{}) {
		cfg.Tuning = tuning.Default()
	}
	if cfg.Rand == nil {
		cfg.Rand = NewRand(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	s := &Simulation{
		cfg:   cfg.Tuning,
		rng:   cfg.Rand,
		hooks: cfg.Hooks.withDefaults(),
		obs:   cfg.Observer,
		log:   cfg.Logger,
		sched: sched.New(start),
	}
	s.begin()
	return s
}

func (s *Simulation) begin() {
	now := s.sched.Now()
	s.st = NewState(now)
	s.tick = 0
	s.behaviorTimer, s.restoreTimer, s.messageTimer = 0, 0, 0
	s.afterLocked = nil

	s.hooks.Positioner.Relocate(Home, 0)
	s.hooks.Renderer.PhaseChanged(false)
	s.render()
	s.emitStats()
	s.sched.Every(s.cfg.TickPeriod, s.step)
}

// Advance runs everything due up to now.
func (s *Simulation) Advance(now time.Time) {
	s.sched.Advance(now)
}

// Now returns the simulation clock.
func (s *Simulation) Now() time.Time { return s.sched.Now() }

// State returns a copy of the pet.
func (s *Simulation) State() State { return s.st.clone() }

// Alive reports whether the pet is still around.
func (s *Simulation) Alive() bool { return s.st.Alive }

// Tuning returns the knobs the simulation runs with.
func (s *Simulation) Tuning() tuning.Tuning { return s.cfg }

// Restart drops every pending timer and hatches a new pet.
func (s *Simulation) Restart() {
	for _, p := range s.st.Poops {
		s.hooks.Renderer.RemovePoop(p.ID)
	}
	s.sched.Reset()
	s.begin()
	s.log.Printf("Pet restarted")
}

// step is one tick of the loop.
func (s *Simulation) step(now time.Time) {
	if !s.st.Alive {
		return
	}
	s.tick++

	s.decay(now)
	s.advancePhase(now)
	s.digest(now)
	s.rollPoop(now)
	s.st.recomputeCleanliness()
	s.trackSickness(now)
	s.penalizeDirt(now)
	s.damageHealth()
	s.trackExhaustion(now)

	if s.st.Health <= MinStat {
		s.terminate(now, ReasonSick)
		return
	}
	if s.st.Critical() {
		if s.holdCritical(now) {
			return
		}
	} else {
		s.reconcileMood(now)
	}

	s.emitStats()
	s.rollBehaviors(now)
	s.complain(now)
	s.rollFlavor(now)
	s.observe(now)
}

func (s *Simulation) terminate(now time.Time, r Reason) {
	s.st.Alive = false
	s.st.Reason = r
	s.sched.Reset()
	s.behaviorTimer, s.restoreTimer, s.messageTimer = 0, 0, 0
	s.afterLocked = nil

	s.log.Printf("Pet is gone (reason: %s) after %d ticks: %s", r, s.tick, s.st)
	s.emitStats()
	s.hooks.GameOver.OnTerminal(r)
	s.observe(now)
}

// showMessage puts text up for the message duration. A newer message
// replaces the older one and restarts the clock.
func (s *Simulation) showMessage(text string) {
	s.st.ShowingMessage = true
	s.hooks.Notifier.ShowMessage(text)
	s.cancelTimer(&s.messageTimer)
	s.messageTimer = s.sched.After(s.cfg.Dialogue.MessageDuration, func(time.Time) {
		s.messageTimer = 0
		s.st.ShowingMessage = false
	})
}

func (s *Simulation) emitStats() {
	s.hooks.Stats.Render(s.st.Stats())
}

func (s *Simulation) observe(now time.Time) {
	if s.obs == nil {
		return
	}
	s.obs.ObserveTick(Snapshot{Tick: s.tick, At: now, State: s.st.clone()})
}

func (s *Simulation) cancelTimer(id *sched.ID) {
	if *id != 0 {
		s.sched.Cancel(*id)
		*id = 0
	}
}
