package pet

import "time"

// Action is a user command.
type Action int

const (
	ActionFeed Action = iota
	ActionPlay
	ActionClean
	ActionSleep
	ActionMedicate
	ActionScoop
)

func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionClean:
		return "clean"
	case ActionSleep:
		return "sleep"
	case ActionMedicate:
		return "medicate"
	case ActionScoop:
		return "scoop"
	}
	return "unknown"
}

// Result classifies how an action resolved.
type Result int

const (
	// Accepted means the action ran.
	Accepted Result = iota
	// Refused means a precondition failed; some refusals cost stats.
	Refused
	// NoOp means there was nothing to do.
	NoOp
	// Busy means a message or a locked behavior is in the way.
	Busy
	// Terminal means the pet is gone.
	Terminal
)

func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Refused:
		return "refused"
	case NoOp:
		return "noop"
	case Busy:
		return "busy"
	case Terminal:
		return "terminal"
	}
	return "unknown"
}

// Outcome is what happened to an action. Message is what the pet said, empty
// when nothing was shown.
type Outcome struct {
	Action  Action
	Result  Result
	Message string
}

// Sound effect names passed to AudioHook.
const (
	SfxClick  = "click"
	SfxClick2 = "click2"
	SfxTick   = "tick"
)

// Do dispatches a by value. Scoop needs an id; use Scoop directly.
func (s *Simulation) Do(a Action) Outcome {
	switch a {
	case ActionFeed:
		return s.Feed()
	case ActionPlay:
		return s.Play()
	case ActionClean:
		return s.Clean()
	case ActionSleep:
		return s.Sleep()
	case ActionMedicate:
		return s.Medicate()
	}
	return Outcome{Action: a, Result: NoOp}
}

// gate runs the checks shared by every action. ok is false when the action
// must stop with out.
func (s *Simulation) gate(a Action, sfx string) (out Outcome, ok bool) {
	if !s.st.Alive {
		return Outcome{Action: a, Result: Terminal}, false
	}
	if s.st.ShowingMessage {
		return Outcome{Action: a, Result: Busy}, false
	}
	s.hooks.Audio.PlaySfx(sfx)
	if s.st.Busy() {
		s.showMessage(msgWait)
		return Outcome{Action: a, Result: Busy, Message: msgWait}, false
	}
	return Outcome{}, true
}

func (s *Simulation) reply(a Action, r Result, msg string) Outcome {
	s.showMessage(msg)
	if r != NoOp {
		s.emitStats()
	}
	s.log.Printf("Action %s: %s (%s)", a, r, msg)
	return Outcome{Action: a, Result: r, Message: msg}
}

// Feed fills hunger and starts eating. Feeding again inside the overeating
// window raises the poop multiplier.
func (s *Simulation) Feed() Outcome {
	if out, ok := s.gate(ActionFeed, SfxClick); !ok {
		return out
	}
	now := s.sched.Now()
	if s.st.Hunger >= FullThreshold {
		s.st.Health = clampStat(s.st.Health - OverfeedPenalty)
		return s.reply(ActionFeed, Refused, msgTooFull)
	}

	s.st.Hunger = clampStat(s.st.Hunger + FeedHungerGain)
	if s.st.LastMeal != nil && now.Sub(*s.st.LastMeal) < s.cfg.Poop.OvereatWindow {
		s.st.PoopMultiplier = clampMultiplier(s.st.PoopMultiplier + s.cfg.Poop.OvereatBonus)
	}
	s.st.LastMeal = timePtr(now)
	s.st.LastHungerDecay = now

	s.startLocked(Eat, EatDuration, now, s.afterMeal)
	return s.reply(ActionFeed, Accepted, msgYum)
}

// afterMeal runs when eating ends: a full belly forces a poop, otherwise a
// happy pet may get silly.
func (s *Simulation) afterMeal(now time.Time) {
	if s.st.PoopMultiplier >= s.cfg.Poop.PressureThreshold && s.spawnPoop(now) {
		return
	}
	if s.st.Happiness > SillyThreshold && chance(s.rng, s.cfg.Behavior.SillyChance) {
		s.startLocked(Silly, SillyDuration, now, nil)
	}
}

// Play cheers the pet up at the cost of energy and hunger.
func (s *Simulation) Play() Outcome {
	if out, ok := s.gate(ActionPlay, SfxClick); !ok {
		return out
	}
	now := s.sched.Now()
	if s.st.Energy <= TiredThreshold {
		s.st.Health = clampStat(s.st.Health - TiredPlayHealth)
		s.st.Energy = clampStat(s.st.Energy - TiredPlayEnergy)
		return s.reply(ActionPlay, Refused, msgTooTired)
	}
	if s.st.Happiness >= NoPlayThreshold {
		return s.reply(ActionPlay, Refused, msgNoPlay)
	}

	s.st.Happiness = clampStat(s.st.Happiness + PlayHappinessGain)
	s.st.Energy = clampStat(s.st.Energy - PlayEnergyCost)
	s.st.Hunger = clampStat(s.st.Hunger - PlayHungerCost)
	s.st.LastHappinessDecay = now

	s.hearts(3 + int(s.rng.Float64()*3))
	s.startHappy(now)
	return s.reply(ActionPlay, Accepted, msgPlay)
}

// Clean removes every poop. It stops the sickness timer but does not cure.
func (s *Simulation) Clean() Outcome {
	if out, ok := s.gate(ActionClean, SfxTick); !ok {
		return out
	}
	if s.st.PoopCount == 0 {
		return s.reply(ActionClean, NoOp, msgAlreadyClean)
	}

	gain := CleanHappinessGain
	if s.st.PoopCount >= FilthyPoops {
		gain = DeepCleanGain
	}
	for _, p := range s.st.Poops {
		s.hooks.Renderer.RemovePoop(p.ID)
	}
	s.st.Poops = nil
	s.st.PoopCount = 0
	s.st.recomputeCleanliness()
	s.st.Happiness = clampStat(s.st.Happiness + gain)
	s.st.SicknessStart = nil

	if s.st.Sick {
		return s.reply(ActionClean, Accepted, msgCleanSick)
	}
	return s.reply(ActionClean, Accepted, msgClean)
}

// Sleep sends the pet to bed if it is tired enough.
func (s *Simulation) Sleep() Outcome {
	if out, ok := s.gate(ActionSleep, SfxClick2); !ok {
		return out
	}
	if s.st.Energy > s.cfg.Sleep.MaxEnergyToSleep {
		s.st.Happiness = clampStat(s.st.Happiness - RestlessPenalty)
		return s.reply(ActionSleep, Refused, msgNotSleepy)
	}
	s.performSleep(s.sched.Now(), false)
	return s.reply(ActionSleep, Accepted, msgSleep)
}

// Medicate cures sickness, or tops up health when merely hurt.
func (s *Simulation) Medicate() Outcome {
	if out, ok := s.gate(ActionMedicate, SfxClick2); !ok {
		return out
	}
	if s.st.Health >= HealthyThreshold && !s.st.Sick {
		return s.reply(ActionMedicate, NoOp, msgNoMedicine)
	}

	if !s.st.Sick {
		s.st.Health = clampStat(s.st.Health + TonicHealthGain)
		s.st.Happiness = clampStat(s.st.Happiness - TonicHappinessCost)
		return s.reply(ActionMedicate, Accepted, msgMedicine)
	}

	s.st.Sick = false
	s.st.SicknessStart = nil
	s.st.Health = clampStat(s.st.Health + CureHealthGain)
	s.st.Happiness = clampStat(s.st.Happiness - CureHappinessCost)
	if s.st.Behavior == Sick {
		s.switchBehavior(s.mood(), s.sched.Now())
	}
	s.log.Printf("Pet was cured")
	return s.reply(ActionMedicate, Accepted, msgCured)
}
