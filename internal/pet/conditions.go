package pet

import "time"

// decay drains hunger, happiness and energy on their own clocks. Sleep
// stretches the first two and suspends the third.
func (s *Simulation) decay(now time.Time) {
	d := s.cfg.Decay
	slow := 1.0
	if s.st.Sleeping() {
		slow = d.SleepSlowdown
	}

	if now.Sub(s.st.LastHungerDecay) >= scale(d.HungerEvery, slow) {
		s.st.Hunger = clampStat(s.st.Hunger - d.HungerAmount)
		s.st.LastHungerDecay = now
	}
	if now.Sub(s.st.LastHappinessDecay) >= scale(d.HappinessEvery, slow) {
		s.st.Happiness = clampStat(s.st.Happiness - d.HappinessAmount)
		s.st.LastHappinessDecay = now
	}

	if s.st.Sleeping() {
		s.st.LastEnergyDecay = now
		return
	}
	if now.Sub(s.st.LastEnergyDecay) >= d.EnergyEvery {
		amount := d.EnergyDayAmount
		if s.st.Night {
			amount = d.EnergyNightAmount
		}
		s.st.Energy = clampStat(s.st.Energy - amount)
		s.st.LastEnergyDecay = now
	}
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

func (s *Simulation) advancePhase(now time.Time) {
	if now.Sub(s.st.LastPhaseChange) < s.cfg.DayNightPeriod {
		return
	}
	s.st.Night = !s.st.Night
	s.st.LastPhaseChange = now
	s.hooks.Renderer.PhaseChanged(s.st.Night)
	if s.st.Night {
		s.showMessage(msgNight)
	} else {
		s.showMessage(msgMorning)
	}
	s.log.Printf("Phase changed (night: %t)", s.st.Night)
}

func (s *Simulation) digest(now time.Time) {
	if now.Sub(s.st.LastDigest) < s.cfg.Poop.DigestEvery {
		return
	}
	s.st.PoopMultiplier = clampMultiplier(s.st.PoopMultiplier - s.cfg.Poop.DigestAmount)
	s.st.LastDigest = now
}

// rollPoop draws this tick's spawn interval. A spawn that is due while a
// locked behavior runs waits for a later tick.
func (s *Simulation) rollPoop(now time.Time) {
	p := s.cfg.Poop
	interval := uniform(s.rng, float64(p.IntervalMin), float64(p.IntervalMax)) / s.st.PoopMultiplier
	if now.Sub(s.st.LastPoop) < time.Duration(interval) {
		return
	}
	if s.st.PoopCount >= MaxPoops || s.st.Busy() {
		return
	}
	s.spawnPoop(now)
}

// trackSickness runs the onset timer. Fewer poops stop the timer but never
// cure.
func (s *Simulation) trackSickness(now time.Time) {
	if s.st.PoopCount < s.cfg.Sickness.OnsetPoops {
		s.st.SicknessStart = nil
		return
	}
	if s.st.SicknessStart == nil {
		s.st.SicknessStart = timePtr(now)
		return
	}
	if !s.st.Sick && now.Sub(*s.st.SicknessStart) > s.cfg.Sickness.OnsetDelay {
		s.st.Sick = true
		s.log.Printf("Pet got sick after %s with %d poops around", now.Sub(*s.st.SicknessStart), s.st.PoopCount)
	}
}

// penalizeDirt applies every reached dirtiness tier once per penalty period.
func (s *Simulation) penalizeDirt(now time.Time) {
	if s.st.PoopCount < dirtTiers[0].poops {
		s.st.LastDirtPenalty = now
		return
	}
	if now.Sub(s.st.LastDirtPenalty) < s.cfg.Sickness.DirtPenaltyEvery {
		return
	}
	for _, t := range dirtTiers {
		if s.st.PoopCount < t.poops {
			break
		}
		s.st.Happiness = clampStat(s.st.Happiness - t.happiness)
		s.st.Energy = clampStat(s.st.Energy - t.energy)
		s.st.Hunger = clampStat(s.st.Hunger - t.hunger)
	}
	s.st.LastDirtPenalty = now
}

// damageHealth sums every damage source for this tick. Nothing caps the
// total.
func (s *Simulation) damageHealth() {
	dmg := 0.0
	if s.st.Hunger < StarvingThreshold {
		dmg += StarvingDamage
	}
	if s.st.PoopCount >= 3 {
		dmg += DirtyDamage
	}
	if s.st.PoopCount >= 4 {
		dmg += FilthyDamage
	}
	if s.st.PoopCount >= 5 {
		dmg += SqualidDamage
	}
	if s.st.Sick {
		dmg += SicknessDamage
	}
	s.st.Health = clampStat(s.st.Health - dmg)
}

func (s *Simulation) trackExhaustion(now time.Time) {
	e := s.cfg.Exhaustion
	if now.Sub(s.st.LastCollapseReset) >= e.Window {
		s.st.CollapseCount = 0
		s.st.LastCollapseReset = now
	}

	if s.st.Energy > MinStat || s.st.Sleeping() {
		s.st.EnergyDepleted = nil
		return
	}
	if s.st.EnergyDepleted == nil {
		s.st.EnergyDepleted = timePtr(now)
		return
	}
	if now.Sub(*s.st.EnergyDepleted) < e.Delay || s.st.Busy() {
		return
	}

	s.st.EnergyDepleted = nil
	s.st.CollapseCount++
	s.log.Printf("Pet collapsed from exhaustion (%d in this window)", s.st.CollapseCount)
	if s.st.CollapseCount >= e.SickAfter && !s.st.Sick && chance(s.rng, e.SickChance) {
		s.st.Sick = true
		s.log.Printf("Pet got sick from repeated collapses")
	}
	s.showMessage(msgCollapse)
	s.performSleep(now, true)
}

// holdCritical handles a tick where a primary need is empty. It reports
// whether the pet died.
func (s *Simulation) holdCritical(now time.Time) bool {
	first := s.st.SadnessStart == nil
	if first {
		s.st.SadnessStart = timePtr(now)
		s.log.Printf("Pet is in a critical state: %s", s.st)
	}

	want := Sad
	if s.st.Sick {
		want = Sick
	}
	b := s.st.Behavior
	if !b.Locked() && b != want && (first || b == Idle || b == Sad || b == Sick) {
		s.switchBehavior(want, now)
	}

	timeout, reason := s.cfg.Death.NeedTimeout, ReasonSad
	switch {
	case s.st.Cleanliness == MinStat:
		timeout, reason = s.cfg.Death.DirtyTimeout, ReasonDirty
	case s.st.Hunger == MinStat:
		reason = ReasonHungry
	}
	if now.Sub(*s.st.SadnessStart) < timeout {
		return false
	}
	s.terminate(now, reason)
	return true
}

// reconcileMood settles an interruptible behavior on a non-critical tick:
// sick over sad over idle.
func (s *Simulation) reconcileMood(now time.Time) {
	s.st.SadnessStart = nil
	b := s.st.Behavior
	switch want := s.mood(); want {
	case Sick:
		if !b.Locked() && b != Sick {
			s.switchBehavior(Sick, now)
		}
	case Sad:
		if b == Idle || b == Sick {
			s.switchBehavior(Sad, now)
		}
	default:
		if b == Sad || b == Sick {
			s.switchBehavior(Idle, now)
		}
	}
}
