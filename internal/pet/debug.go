package pet

// Debug helpers back the frontend's cheat menu. They bypass the action gates
// but still go through the normal tick rules afterwards.

// DebugDrainEnergy empties energy.
func (s *Simulation) DebugDrainEnergy() {
	if !s.st.Alive {
		return
	}
	s.st.Energy = MinStat
	s.log.Printf("Debug: energy drained")
	s.emitStats()
}

// DebugStarve empties hunger.
func (s *Simulation) DebugStarve() {
	if !s.st.Alive {
		return
	}
	s.st.Hunger = MinStat
	s.log.Printf("Debug: hunger emptied")
	s.emitStats()
}

// DebugSicken makes the pet sick right away.
func (s *Simulation) DebugSicken() {
	if !s.st.Alive || s.st.Sick {
		return
	}
	s.st.Sick = true
	s.log.Printf("Debug: pet made sick")
	if !s.st.Busy() {
		s.switchBehavior(Sick, s.sched.Now())
	}
}

// DebugKill ends the game with the default reason.
func (s *Simulation) DebugKill() {
	if !s.st.Alive {
		return
	}
	s.terminate(s.sched.Now(), ReasonDefault)
}
