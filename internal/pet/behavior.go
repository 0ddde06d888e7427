package pet

import (
	"fmt"
	"time"

	"bearpet/internal/sched"
)

// Behavior is the one activity the pet is currently doing.
type Behavior int

const (
	Idle Behavior = iota
	Walk
	Eat
	PoopBehavior
	Sad
	Sleep
	Happy
	Sick
	Silly
)

var behaviorNames = [...]string{
	Idle:         "idle",
	Walk:         "walk",
	Eat:          "eat",
	PoopBehavior: "poop",
	Sad:          "sad",
	Sleep:        "sleep",
	Happy:        "happy",
	Sick:         "sick",
	Silly:        "silly",
}

func (b Behavior) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return "unknown"
	}
	return behaviorNames[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b Behavior) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Behavior) UnmarshalText(text []byte) error {
	for i, name := range behaviorNames {
		if name == string(text) {
			*b = Behavior(i)
			return nil
		}
	}
	return fmt.Errorf("unknown behavior %q", text)
}

// Locked reports whether b runs to completion once started.
func (b Behavior) Locked() bool {
	switch b {
	case Eat, PoopBehavior, Sleep, Silly:
		return true
	}
	return false
}

// OneShot reports whether the renderer plays b once and reports completion.
// Sleep is locked but loops until the core ends it.
func (b Behavior) OneShot() bool {
	switch b {
	case Eat, PoopBehavior, Silly:
		return true
	}
	return false
}

// Behaviors lists every behavior in declaration order.
func Behaviors() []Behavior {
	return []Behavior{Idle, Walk, Eat, PoopBehavior, Sad, Sleep, Happy, Sick, Silly}
}

// switchBehavior makes b current and asks the renderer to play it. Any
// completion or restore timer belonging to the previous behavior is dropped.
func (s *Simulation) switchBehavior(b Behavior, now time.Time) {
	s.cancelTimer(&s.behaviorTimer)
	s.cancelTimer(&s.restoreTimer)
	s.afterLocked = nil

	s.st.Behavior = b
	s.st.BehaviorSeq++
	s.st.Frame = 0
	s.st.BehaviorSince = now
	s.render()
}

func (s *Simulation) render() {
	epoch, seq := s.sched.Epoch(), s.st.BehaviorSeq
	onFrame := func(frame int) {
		if s.stale(epoch, seq) {
			return
		}
		s.st.Frame = frame
	}
	var onComplete func()
	if s.st.Behavior.OneShot() {
		onComplete = func() {
			if s.stale(epoch, seq) {
				return
			}
			s.finishBehavior(s.sched.Now())
		}
	}
	s.hooks.Renderer.PlayBehavior(s.st.Behavior, onFrame, onComplete)
}

func (s *Simulation) stale(epoch, seq uint64) bool {
	return !s.st.Alive || s.sched.Epoch() != epoch || s.st.BehaviorSeq != seq
}

// startLocked runs a non-interruptible behavior for d, then returns to idle
// and calls after.
func (s *Simulation) startLocked(b Behavior, d time.Duration, now time.Time, after func(time.Time)) {
	s.switchBehavior(b, now)
	s.lockFor(d, after)
}

func (s *Simulation) lockFor(d time.Duration, after func(time.Time)) {
	s.afterLocked = after
	seq := s.st.BehaviorSeq
	s.behaviorTimer = s.sched.After(d, func(now time.Time) {
		s.behaviorTimer = 0
		if s.st.BehaviorSeq != seq {
			return
		}
		s.finishBehavior(now)
	})
}

func (s *Simulation) finishBehavior(now time.Time) {
	after := s.afterLocked
	s.switchBehavior(Idle, now)
	if after != nil {
		after(now)
	}
	s.emitStats()
}

// performSleep puts the pet to bed. A collapse is the long exhaustion sleep.
func (s *Simulation) performSleep(now time.Time, collapse bool) {
	d, restore := s.cfg.Sleep.DayDuration, s.cfg.Sleep.RestorePerSecond
	if s.st.Night {
		d = s.cfg.Sleep.NightDuration
	}
	if collapse {
		d, restore = s.cfg.Sleep.CollapseDuration, s.cfg.Sleep.CollapseRestore
	}

	s.switchBehavior(Sleep, now)
	seq := s.st.BehaviorSeq
	// Registered before the wake-up timer so the last restore lands first.
	var id sched.ID
	id = s.sched.Every(SleepRestoreStep, func(time.Time) {
		if s.st.BehaviorSeq != seq || s.st.Behavior != Sleep {
			s.sched.Cancel(id)
			return
		}
		s.st.Energy = clampStat(s.st.Energy + restore)
		s.emitStats()
	})
	s.restoreTimer = id
	s.lockFor(d, nil)
	s.log.Printf("Pet fell asleep for %s (collapse: %t, energy: %.1f)", d, collapse, s.st.Energy)
}

// relocate walks to a new spot. far picks a point well away from the current
// one instead of anywhere on the field.
func (s *Simulation) relocate(now time.Time, far bool) {
	cur := s.hooks.Positioner.CurrentPosition()
	var target Point
	if far {
		dir := 1.0
		if s.rng.Float64() < 0.5 {
			dir = -1
		}
		target.X = cur.X + dir*(FarMoveMin+s.rng.Float64()*FarMoveSpread)
	} else {
		target.X = uniform(s.rng, FieldMinX, FieldMaxX)
	}
	target.X = max(FieldMinX, min(target.X, FieldMaxX))
	target.Y = uniform(s.rng, FieldMinY, FieldMaxY)

	s.switchBehavior(Walk, now)
	s.hooks.Positioner.Relocate(target, WalkDuration)
	seq := s.st.BehaviorSeq
	s.behaviorTimer = s.sched.After(WalkDuration, func(now time.Time) {
		s.behaviorTimer = 0
		if s.st.BehaviorSeq == seq {
			s.switchBehavior(Idle, now)
		}
	})
}

func (s *Simulation) startHappy(now time.Time) {
	s.switchBehavior(Happy, now)
	seq := s.st.BehaviorSeq
	s.behaviorTimer = s.sched.After(HappyDuration, func(now time.Time) {
		s.behaviorTimer = 0
		if s.st.BehaviorSeq == seq {
			s.relocate(now, false)
		}
	})
}

func (s *Simulation) hearts(n int) {
	for i := 0; i < n; i++ {
		i := i
		s.sched.After(time.Duration(i)*HeartStagger, func(time.Time) {
			s.hooks.Renderer.Hearts(i)
		})
	}
}

// mood is the interruptible behavior the pet should settle into.
func (s *Simulation) mood() Behavior {
	switch {
	case s.st.Sick:
		return Sick
	case s.st.Low():
		return Sad
	default:
		return Idle
	}
}

// rollBehaviors may start a spontaneous walk, nap or happy dance.
func (s *Simulation) rollBehaviors(now time.Time) {
	if s.st.Busy() || s.st.ShowingMessage {
		return
	}
	if s.st.Behavior != Idle && s.st.Behavior != Sad {
		return
	}
	b := s.cfg.Behavior
	if chance(s.rng, b.WalkChance) {
		s.relocate(now, false)
	}
	if s.st.Energy <= DrowsyThreshold && chance(s.rng, b.SleepChance) {
		s.showMessage(msgSleep)
		s.performSleep(now, false)
		return
	}
	if s.st.Behavior == Idle && s.st.Happiness >= ElatedThreshold && chance(s.rng, b.HappyChance) {
		s.startHappy(now)
	}
}
