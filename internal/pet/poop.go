package pet

import "time"

// SpawnPoop makes the pet poop now if nothing is in the way. It reports
// whether the poop behavior started.
func (s *Simulation) SpawnPoop() bool {
	if !s.st.Alive {
		return false
	}
	return s.spawnPoop(s.sched.Now())
}

func (s *Simulation) spawnPoop(now time.Time) bool {
	if s.st.PoopCount >= MaxPoops || s.st.Busy() {
		return false
	}
	at := s.hooks.Positioner.CurrentPosition()
	s.st.PoopMultiplier = clampMultiplier(s.st.PoopMultiplier - s.cfg.Poop.SpawnRelief)
	s.st.LastPoop = now

	s.startLocked(PoopBehavior, PoopDuration, now, func(now time.Time) {
		s.dropPoop(now, at)
	})
	s.showMessage(msgOops)
	return true
}

// dropPoop lands the poop behind where the pet squatted, then sends the pet
// far away from it.
func (s *Simulation) dropPoop(now time.Time, at Point) {
	if s.st.PoopCount >= MaxPoops {
		return
	}
	s.st.NextPoopID++
	p := Poop{
		ID:       s.st.NextPoopID,
		Position: Point{X: at.X, Y: at.Y + PoopOffsetY},
	}
	s.st.Poops = append(s.st.Poops, p)
	s.st.PoopCount++
	s.st.recomputeCleanliness()
	s.hooks.Renderer.PlacePoop(p)
	s.log.Printf("Pet pooped (%d on the floor)", s.st.PoopCount)

	s.sched.After(PostPoopDelay, func(now time.Time) {
		if s.st.Busy() {
			return
		}
		s.relocate(now, true)
	})
}

// Scoop removes a single poop by id.
func (s *Simulation) Scoop(id int) Outcome {
	if !s.st.Alive {
		return Outcome{Action: ActionScoop, Result: Terminal}
	}
	i := s.poopIndex(id)
	if i < 0 {
		return s.reply(ActionScoop, NoOp, msgNoPoop)
	}
	s.st.Poops = append(s.st.Poops[:i], s.st.Poops[i+1:]...)
	s.st.PoopCount--
	s.st.recomputeCleanliness()
	s.hooks.Renderer.RemovePoop(id)
	return s.reply(ActionScoop, Accepted, msgScooped)
}

// OldestPoop returns the id of the poop that has been around longest.
func (s *Simulation) OldestPoop() (int, bool) {
	if len(s.st.Poops) == 0 {
		return 0, false
	}
	return s.st.Poops[0].ID, true
}

func (s *Simulation) poopIndex(id int) int {
	for i, p := range s.st.Poops {
		if p.ID == id {
			return i
		}
	}
	return -1
}
