// Package stage places the pet, its poops and hearts on the playfield and
// lays them out on a terminal grid.
package stage

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"bearpet/internal/pet"
)

const (
	minVisibleRows = 6
	heartLife      = 1200 * time.Millisecond
)

// Glyphs drawn on the field.
const (
	PoopGlyph  = "💩"
	HeartGlyph = "❤"
)

// Stage implements pet.Positioner. Moves are linear from wherever the pet is
// when Relocate is called to the target, over the duration hint. The clock
// only moves through SetTime.
type Stage struct {
	now   time.Time
	from  pet.Point
	to    pet.Point
	start time.Time
	dur   time.Duration

	poops  map[int]pet.Point
	hearts []time.Time
}

// New returns a stage with the pet standing at home.
func New(now time.Time) *Stage {
	return &Stage{
		now:   now,
		from:  pet.Home,
		to:    pet.Home,
		poops: make(map[int]pet.Point),
	}
}

// SetTime moves the stage clock. Expired hearts are dropped.
func (s *Stage) SetTime(now time.Time) {
	s.now = now
	live := s.hearts[:0]
	for _, until := range s.hearts {
		if now.Before(until) {
			live = append(live, until)
		}
	}
	s.hearts = live
}

// Relocate implements pet.Positioner.
func (s *Stage) Relocate(target pet.Point, d time.Duration) {
	s.from = s.CurrentPosition()
	s.to = clampPoint(target)
	s.start = s.now
	s.dur = d
}

// CurrentPosition implements pet.Positioner.
func (s *Stage) CurrentPosition() pet.Point {
	elapsed := s.now.Sub(s.start)
	if s.dur <= 0 || elapsed >= s.dur {
		return s.to
	}
	if elapsed <= 0 {
		return s.from
	}
	f := float64(elapsed) / float64(s.dur)
	return pet.Point{
		X: s.from.X + (s.to.X-s.from.X)*f,
		Y: s.from.Y + (s.to.Y-s.from.Y)*f,
	}
}

// Moving reports whether a walk is in progress.
func (s *Stage) Moving() bool {
	return s.dur > 0 && s.now.Sub(s.start) < s.dur && s.from != s.to
}

// FacingLeft reports the direction of the last move.
func (s *Stage) FacingLeft() bool { return s.to.X < s.from.X }

// PlacePoop puts a poop on the floor.
func (s *Stage) PlacePoop(p pet.Poop) { s.poops[p.ID] = p.Position }

// RemovePoop takes one off the floor.
func (s *Stage) RemovePoop(id int) { delete(s.poops, id) }

// Poops returns how many poops are drawn.
func (s *Stage) Poops() int { return len(s.poops) }

// AddHeart floats a heart over the pet for a moment.
func (s *Stage) AddHeart() { s.hearts = append(s.hearts, s.now.Add(heartLife)) }

// Hearts returns how many hearts are showing.
func (s *Stage) Hearts() int { return len(s.hearts) }

// Reset clears the floor and puts the pet back home.
func (s *Stage) Reset() {
	s.poops = make(map[int]pet.Point)
	s.hearts = nil
	s.from, s.to = pet.Home, pet.Home
	s.dur = 0
}

// Cell maps a playfield point onto a grid of cols x rows. Larger Y is further
// back, so it sits higher on screen.
func Cell(p pet.Point, cols, rows int) (x, y int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	fx := (p.X - pet.FieldMinX) / (pet.FieldMaxX - pet.FieldMinX)
	fy := (p.Y - pet.FieldMinY) / (pet.FieldMaxY - pet.FieldMinY)
	x = int(fx*float64(cols-1) + 0.5)
	y = rows - 1 - int(fy*float64(rows-1)+0.5)
	return clampInt(x, 0, cols-1), clampInt(y, 0, rows-1)
}

// VisibleRows is how many rows the field gets in a terminal of the given
// height once reserved rows are taken by the panels around it.
func VisibleRows(height, reserved int) int {
	if height <= 0 {
		return 0
	}
	return max(height-reserved, minVisibleRows)
}

// Render draws the field with the pet shown as glyph.
func (s *Stage) Render(glyph string, cols, rows int) string {
	if cols <= 2 || rows <= 0 {
		return ""
	}
	g := newGrid(cols, rows)

	ids := make([]int, 0, len(s.poops))
	for id := range s.poops {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		x, y := Cell(s.poops[id], cols, rows)
		g.put(x, y, PoopGlyph)
	}

	px, py := Cell(s.CurrentPosition(), cols, rows)
	g.put(px, py, glyph)

	if n := len(s.hearts); n > 0 {
		hy := max(py-1, 0)
		g.put(px, hy, strings.Repeat(HeartGlyph, n))
	}
	return g.String()
}

type grid struct {
	cols  int
	cells [][]string
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, cells: make([][]string, rows)}
	for y := range g.cells {
		g.cells[y] = make([]string, cols)
		for x := range g.cells[y] {
			g.cells[y][x] = " "
		}
	}
	return g
}

// put writes text starting at x. Wide glyphs swallow the cells they cover, and
// text is shifted left rather than cut at the right edge.
func (g *grid) put(x, y int, text string) {
	w := lipgloss.Width(text)
	if w == 0 || w > g.cols {
		return
	}
	x = clampInt(x, 0, g.cols-w)
	row := g.cells[y]
	// Blank out any wide glyph the new text cuts through.
	if row[x] == "" {
		i := x - 1
		for i > 0 && row[i] == "" {
			row[i] = " "
			i--
		}
		row[i] = " "
	}
	for i := x + w; i < g.cols && row[i] == ""; i++ {
		row[i] = " "
	}
	row[x] = text
	for i := 1; i < w; i++ {
		row[x+i] = ""
	}
}

func (g *grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteString(c)
		}
	}
	return b.String()
}

func clampPoint(p pet.Point) pet.Point {
	return pet.Point{
		X: min(max(p.X, pet.FieldMinX), pet.FieldMaxX),
		Y: min(max(p.Y, pet.FieldMinY), pet.FieldMaxY),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
