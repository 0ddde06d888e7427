package pet

import "time"

// Complaint is a need the pet speaks up about.
type Complaint struct {
	Message   string
	Condition func(st *State) bool
}

// Complaints are checked in order; the first whose condition holds is said.
var Complaints = []Complaint{
	{
		Message:   "I don't feel well...",
		Condition: func(st *State) bool { return st.Sick },
	},
	{
		Message:   "I feel sick!",
		Condition: func(st *State) bool { return st.Health < SicklyThreshold },
	},
	{
		Message:   "It's so dirty here!",
		Condition: func(st *State) bool { return st.PoopCount >= FilthyPoops },
	},
	{
		Message:   "I'm so hungry!",
		Condition: func(st *State) bool { return st.Hunger < LowStatThreshold },
	},
	{
		Message:   "I'm so tired!",
		Condition: func(st *State) bool { return st.Energy < LowStatThreshold },
	},
	{
		Message:   "I'm bored!",
		Condition: func(st *State) bool { return st.Happiness < LowStatThreshold },
	},
}

// ComplaintFor returns the most pressing complaint, or "".
func ComplaintFor(st State) string {
	for _, c := range Complaints {
		if c.Condition(&st) {
			return c.Message
		}
	}
	return ""
}

// FlavorGroup is a pool of idle chatter available while Condition holds.
type FlavorGroup struct {
	Name      string
	Lines     []string
	Condition func(st *State) bool
}

// FlavorGroups is the chatter the pet picks from when nothing is wrong.
var FlavorGroups = []FlavorGroup{
	{
		Name: "day",
		Lines: []string{
			"What a beautiful day!",
			"The sun feels nice...",
			"I love sunny days!",
			"Perfect weather today!",
			"The birds are singing!",
		},
		Condition: func(st *State) bool { return !st.Night },
	},
	{
		Name: "night",
		Lines: []string{
			"The stars are pretty...",
			"It's so peaceful at night",
			"I can see the moon!",
			"Night time is cozy",
			"The crickets are chirping",
		},
		Condition: func(st *State) bool { return st.Night },
	},
	{
		Name: "nature",
		Lines: []string{
			"I can smell flowers!",
			"The wind feels nice",
			"I hear leaves rustling",
			"Nature is wonderful",
			"The grass is soft here",
		},
		Condition: func(*State) bool { return true },
	},
	{
		Name: "happy",
		Lines: []string{
			"I'm having so much fun!",
			"Life is good!",
			"I feel great today!",
			"This is amazing!",
			"I'm so happy!",
		},
		Condition: func(st *State) bool { return st.Happiness > 70 },
	},
	{
		Name: "tired",
		Lines: []string{
			"I could use a nap...",
			"Feeling a bit sleepy",
			"My eyes are heavy...",
			"Maybe I should rest",
			"Yawn... so tired",
		},
		Condition: func(st *State) bool { return st.Energy > 40 && st.Energy < 70 },
	},
	{
		Name: "hungry_mild",
		Lines: []string{
			"I could eat something",
			"Getting a bit hungry",
			"A snack would be nice",
			"My tummy is rumbling",
			"Food sounds good right now",
		},
		Condition: func(st *State) bool { return st.Hunger > 40 && st.Hunger < 70 },
	},
	{
		Name: "content",
		Lines: []string{
			"Everything is just right",
			"I'm feeling good!",
			"This is nice",
			"Life is peaceful",
			"I'm comfortable here",
		},
		Condition: func(st *State) bool {
			return st.Health > 60 && st.Happiness > 60 && st.Hunger > 60 && st.Energy > 60
		},
	},
}

// FlavorPool collects every line whose group applies to st.
func FlavorPool(st State) []string {
	var pool []string
	for _, g := range FlavorGroups {
		if g.Condition(&st) {
			pool = append(pool, g.Lines...)
		}
	}
	return pool
}

func (s *Simulation) complain(now time.Time) {
	if s.st.Busy() || now.Sub(s.st.LastComplaint) < s.cfg.Dialogue.ComplaintEvery {
		return
	}
	msg := ComplaintFor(s.st)
	if msg == "" {
		return
	}
	s.showMessage(msg)
	s.st.LastComplaint = now
}

func (s *Simulation) rollFlavor(now time.Time) {
	d := s.cfg.Dialogue
	if !chance(s.rng, d.FlavorChance) {
		return
	}
	if s.st.Busy() || s.st.ShowingMessage || now.Sub(s.st.LastFlavor) < d.FlavorGap {
		return
	}
	pool := FlavorPool(s.st)
	if len(pool) == 0 {
		return
	}
	i := min(int(s.rng.Float64()*float64(len(pool))), len(pool)-1)
	s.showMessage(pool[i])
	s.st.LastFlavor = now
}
