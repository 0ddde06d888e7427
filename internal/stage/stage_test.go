package stage

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"bearpet/internal/pet"
)

var start = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRelocateInterpolates(t *testing.T) {
	s := New(start)
	s.Relocate(pet.Point{X: 62.5, Y: 150}, 2*time.Second)

	tests := []struct {
		after time.Duration
		want  pet.Point
	}{
		{0, pet.Home},
		{500 * time.Millisecond, pet.Point{X: 47.5, Y: 187.5}},
		{time.Second, pet.Point{X: 52.5, Y: 175}},
		{2 * time.Second, pet.Point{X: 62.5, Y: 150}},
		{5 * time.Second, pet.Point{X: 62.5, Y: 150}},
	}
	for _, tt := range tests {
		s.SetTime(start.Add(tt.after))
		if got := s.CurrentPosition(); got != tt.want {
			t.Errorf("position after %v = %+v, want %+v", tt.after, got, tt.want)
		}
	}
	if s.Moving() {
		t.Error("still moving after the walk finished")
	}
	if s.FacingLeft() {
		t.Error("walked right but facing left")
	}
}

func TestRelocateMidWalk(t *testing.T) {
	s := New(start)
	s.Relocate(pet.Point{X: 62.5, Y: 200}, 2*time.Second)
	s.SetTime(start.Add(time.Second))
	if !s.Moving() {
		t.Fatal("not moving halfway through a walk")
	}

	// A new target starts from where the pet is now.
	s.Relocate(pet.Point{X: 22.5, Y: 200}, time.Second)
	if got := s.CurrentPosition(); got != (pet.Point{X: 52.5, Y: 200}) {
		t.Errorf("new walk starts at %+v", got)
	}
	if !s.FacingLeft() {
		t.Error("walking left but not facing left")
	}
}

func TestRelocateClampsToField(t *testing.T) {
	s := New(start)
	s.Relocate(pet.Point{X: 500, Y: -20}, 0)
	if got := s.CurrentPosition(); got != (pet.Point{X: pet.FieldMaxX, Y: pet.FieldMinY}) {
		t.Errorf("position = %+v, want clamped to the field corner", got)
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		name  string
		p     pet.Point
		wantX int
		wantY int
	}{
		{"back left corner", pet.Point{X: pet.FieldMinX, Y: pet.FieldMaxY}, 0, 0},
		{"front right corner", pet.Point{X: pet.FieldMaxX, Y: pet.FieldMinY}, 10, 4},
		{"home", pet.Home, 5, 2},
		{"poop behind the back wall", pet.Point{X: 42.5, Y: 300}, 5, 0},
		{"left of the field", pet.Point{X: 0, Y: 200}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Cell(tt.p, 11, 5)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Cell() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestVisibleRows(t *testing.T) {
	if got := VisibleRows(0, 10); got != 0 {
		t.Errorf("VisibleRows(0) = %d, want 0", got)
	}
	if got := VisibleRows(30, 10); got != 20 {
		t.Errorf("VisibleRows(30) = %d, want 20", got)
	}
	if got := VisibleRows(12, 10); got != minVisibleRows {
		t.Errorf("VisibleRows(12) = %d, want %d", got, minVisibleRows)
	}
}

func TestRender(t *testing.T) {
	s := New(start)
	s.PlacePoop(pet.Poop{ID: 1, Position: pet.Point{X: pet.FieldMinX, Y: pet.FieldMinY}})
	s.PlacePoop(pet.Poop{ID: 2, Position: pet.Point{X: pet.FieldMaxX, Y: pet.FieldMinY}})
	s.AddHeart()
	s.AddHeart()

	out := s.Render("🐻", 20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("rendered %d rows, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Errorf("row %d width = %d, want 20", i, w)
		}
	}
	if !strings.Contains(lines[2], "🐻") {
		t.Errorf("pet not on the middle row: %q", lines[2])
	}
	if !strings.Contains(lines[1], HeartGlyph+HeartGlyph) {
		t.Errorf("hearts not above the pet: %q", lines[1])
	}
	if got := strings.Count(lines[4], PoopGlyph); got != 2 {
		t.Errorf("front row has %d poops, want 2: %q", got, lines[4])
	}

	s.RemovePoop(1)
	s.SetTime(start.Add(2 * time.Second))
	out = s.Render("🐻", 20, 5)
	if got := strings.Count(out, PoopGlyph); got != 1 {
		t.Errorf("%d poops drawn after removing one, want 1", got)
	}
	if strings.Contains(out, HeartGlyph) {
		t.Error("hearts outlived their time")
	}
}

func TestRenderOverlap(t *testing.T) {
	s := New(start)
	// The poop starts one cell left of the pet, so the two overlap.
	s.PlacePoop(pet.Poop{ID: 1, Position: pet.Point{X: 39.75, Y: 200}})
	out := s.Render("🐻", 21, 3)
	lines := strings.Split(out, "\n")
	if w := lipgloss.Width(lines[1]); w != 21 {
		t.Errorf("overlapping row width = %d, want 21: %q", w, lines[1])
	}
	if !strings.Contains(lines[1], "🐻") {
		t.Errorf("pet hidden by the poop: %q", lines[1])
	}
}

func TestReset(t *testing.T) {
	s := New(start)
	s.PlacePoop(pet.Poop{ID: 1, Position: pet.Home})
	s.AddHeart()
	s.Relocate(pet.Point{X: 20, Y: 160}, 0)
	s.Reset()
	if s.Poops() != 0 || s.Hearts() != 0 {
		t.Errorf("poops=%d hearts=%d after reset", s.Poops(), s.Hearts())
	}
	if s.CurrentPosition() != pet.Home {
		t.Errorf("position = %+v after reset, want home", s.CurrentPosition())
	}
}
