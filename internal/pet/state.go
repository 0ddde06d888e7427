package pet

import (
	"fmt"
	"time"
)

// Point is a location on the playfield. X runs left to right in percent of
// the field width; Y is the distance from the bottom edge.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Poop is one independently removable mess on the floor.
type Poop struct {
	ID       int   `json:"id"`
	Position Point `json:"position"`
}

// Reason is why the simulation ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonHungry
	ReasonSad
	ReasonSick
	ReasonDirty
	ReasonDefault
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonHungry:
		return "hungry"
	case ReasonSad:
		return "sad"
	case ReasonSick:
		return "sick"
	case ReasonDirty:
		return "dirty"
	default:
		return "default"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(b []byte) error {
	for c := ReasonNone; c <= ReasonDefault; c++ {
		if c.String() == string(b) {
			*r = c
			return nil
		}
	}
	return fmt.Errorf("unknown reason %q", b)
}

// State is the whole pet. It is owned by a Simulation; callers only ever see
// copies.
type State struct {
	Hunger      float64 `json:"hunger"`
	Happiness   float64 `json:"happiness"`
	Cleanliness float64 `json:"cleanliness"`
	Energy      float64 `json:"energy"`
	Health      float64 `json:"health"`

	PoopCount      int     `json:"poop_count"`
	Poops          []Poop  `json:"poops,omitempty"`
	NextPoopID     int     `json:"-"`
	PoopMultiplier float64 `json:"poop_multiplier"`

	Alive  bool   `json:"alive"`
	Reason Reason `json:"reason,omitempty"`

	Behavior      Behavior  `json:"behavior"`
	BehaviorSeq   uint64    `json:"behavior_seq"`
	Frame         int       `json:"frame"`
	BehaviorSince time.Time `json:"behavior_since"`

	ShowingMessage bool `json:"showing_message"`

	Sick           bool       `json:"sick"`
	SicknessStart  *time.Time `json:"sickness_start,omitempty"`
	SadnessStart   *time.Time `json:"sadness_start,omitempty"`
	EnergyDepleted *time.Time `json:"energy_depleted,omitempty"`
	CollapseCount  int        `json:"collapse_count"`
	Night          bool       `json:"night"`

	LastHungerDecay    time.Time  `json:"-"`
	LastHappinessDecay time.Time  `json:"-"`
	LastEnergyDecay    time.Time  `json:"-"`
	LastMeal           *time.Time `json:"-"`
	LastPoop           time.Time  `json:"-"`
	LastPhaseChange    time.Time  `json:"-"`
	LastComplaint      time.Time  `json:"-"`
	LastFlavor         time.Time  `json:"-"`
	LastDigest         time.Time  `json:"-"`
	LastDirtPenalty    time.Time  `json:"-"`
	LastCollapseReset  time.Time  `json:"-"`
}

// NewState returns a freshly hatched pet: every stat full, every timer
// anchored at now.
func NewState(now time.Time) State {
	return State{
		Hunger:      MaxStat,
		Happiness:   MaxStat,
		Cleanliness: MaxStat,
		Energy:      MaxStat,
		Health:      MaxStat,

		PoopMultiplier: MinPoopMultiplier,
		Alive:          true,
		Behavior:       Idle,
		BehaviorSince:  now,

		LastHungerDecay:    now,
		LastHappinessDecay: now,
		LastEnergyDecay:    now,
		LastPoop:           now,
		LastPhaseChange:    now,
		LastComplaint:      now,
		LastFlavor:         now,
		LastDigest:         now,
		LastDirtPenalty:    now,
		LastCollapseReset:  now,
	}
}

// Sleeping reports whether the pet is asleep.
func (st State) Sleeping() bool { return st.Behavior == Sleep }

// Busy reports whether a non-interruptible behavior is running.
func (st State) Busy() bool { return st.Behavior.Locked() }

// Critical reports whether any primary need is fully depleted.
func (st State) Critical() bool {
	return st.Hunger == MinStat || st.Happiness == MinStat || st.Cleanliness == MinStat
}

// Low reports whether any primary need is below the sadness threshold.
func (st State) Low() bool {
	return st.Hunger < LowStatThreshold || st.Happiness < LowStatThreshold || st.Cleanliness < LowStatThreshold
}

// Stats returns the four displayed bars.
func (st State) Stats() Stats {
	return Stats{
		Hunger:    st.Hunger,
		Happiness: st.Happiness,
		Energy:    st.Energy,
		Health:    st.Health,
	}
}

func (st State) String() string {
	return fmt.Sprintf("hunger=%.1f happiness=%.1f clean=%.0f energy=%.1f health=%.1f poops=%d behavior=%s sick=%t",
		st.Hunger, st.Happiness, st.Cleanliness, st.Energy, st.Health, st.PoopCount, st.Behavior, st.Sick)
}

func (st State) clone() State {
	c := st
	if st.Poops != nil {
		c.Poops = append([]Poop(nil), st.Poops...)
	}
	c.SicknessStart = cloneTime(st.SicknessStart)
	c.SadnessStart = cloneTime(st.SadnessStart)
	c.EnergyDepleted = cloneTime(st.EnergyDepleted)
	c.LastMeal = cloneTime(st.LastMeal)
	return c
}

// recomputeCleanliness derives cleanliness from the poop count.
func (st *State) recomputeCleanliness() {
	st.Cleanliness = CleanlinessFor(st.PoopCount)
}

// CleanlinessFor is max(0, 100 - poops*20).
func CleanlinessFor(poops int) float64 {
	return clampStat(MaxStat - float64(poops)*CleanPerPoop)
}

func clampStat(v float64) float64 {
	return max(MinStat, min(v, MaxStat))
}

func clampMultiplier(v float64) float64 {
	return max(MinPoopMultiplier, min(v, MaxPoopMultiplier))
}

func timePtr(t time.Time) *time.Time { return &t }

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return timePtr(*t)
}
