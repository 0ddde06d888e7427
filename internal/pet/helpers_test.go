package pet

import (
	"io"
	"log"
	"math"
	"testing"
	"time"

	"bearpet/internal/tuning"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// recorder implements every hook and remembers what it was told.
type recorder struct {
	messages []string
	sfx      []string
	reasons  []Reason
	renders  int
	placed   []Poop
	removed  []int
	played   []Behavior
	hearts   []int
	phases   []bool
	complete func()
}

func (r *recorder) PlayBehavior(b Behavior, _ func(int), onComplete func()) {
	r.played = append(r.played, b)
	r.complete = onComplete
}
func (r *recorder) PlacePoop(p Poop)         { r.placed = append(r.placed, p) }
func (r *recorder) RemovePoop(id int)        { r.removed = append(r.removed, id) }
func (r *recorder) Hearts(n int)             { r.hearts = append(r.hearts, n) }
func (r *recorder) PhaseChanged(night bool)  { r.phases = append(r.phases, night) }
func (r *recorder) ShowMessage(text string)  { r.messages = append(r.messages, text) }
func (r *recorder) PlaySfx(name string)      { r.sfx = append(r.sfx, name) }
func (r *recorder) Render(Stats)             { r.renders++ }
func (r *recorder) OnTerminal(reason Reason) { r.reasons = append(r.reasons, reason) }

func (r *recorder) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

// quietTuning turns off every random event so tests only see what they cause.
func quietTuning() tuning.Tuning {
	tn := tuning.Default()
	tn.Poop.IntervalMin = time.Hour
	tn.Poop.IntervalMax = time.Hour
	tn.Behavior = tuning.Behavior{}
	tn.Dialogue.FlavorChance = 0
	return tn
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func newTestSim(t *testing.T, tn tuning.Tuning, r Rand) (*Simulation, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := New(Config{
		Tuning: tn,
		Rand:   r,
		Hooks: Hooks{
			Renderer: rec,
			Notifier: rec,
			Audio:    rec,
			Stats:    rec,
			GameOver: rec,
		},
		Logger: quietLogger(),
	}, t0)
	return s, rec
}

func (s *Simulation) advanceTo(d time.Duration) {
	s.Advance(t0.Add(d))
}

func addPoops(s *Simulation, n int) {
	for i := 0; i < n; i++ {
		s.dropPoop(s.Now(), Home)
	}
}

// spawnThree lays three poops through the normal spawn path, finishing the
// third at 5.6s.
func spawnThree(t *testing.T, s *Simulation) {
	t.Helper()
	for i, at := range []time.Duration{0, 2 * time.Second, 4 * time.Second} {
		s.advanceTo(at)
		if !s.SpawnPoop() {
			t.Fatalf("SpawnPoop() #%d at %s = false (behavior %s)", i+1, at, s.State().Behavior)
		}
	}
	s.advanceTo(6 * time.Second)
	if got := s.State().PoopCount; got != 3 {
		t.Fatalf("PoopCount = %d after three spawns, want 3", got)
	}
}
