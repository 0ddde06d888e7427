package ui

import (
	"testing"
	"time"

	"bearpet/internal/pet"
)

func TestEveryBehaviorHasAnimation(t *testing.T) {
	for _, b := range pet.Behaviors() {
		t.Run(b.String(), func(t *testing.T) {
			a, ok := AnimationFrames[b]
			if !ok {
				t.Fatalf("no animation for %s", b)
			}
			if a.Frames <= 0 || a.FPS <= 0 || len(a.Glyphs) == 0 {
				t.Errorf("animation %+v is empty", a)
			}
			if a.Loop == b.OneShot() {
				t.Errorf("Loop = %t but OneShot() = %t", a.Loop, b.OneShot())
			}
			for i, g := range a.Glyphs {
				if g == "" {
					t.Errorf("empty glyph at index %d", i)
				}
			}
		})
	}
}

func TestOneShotLengthsMatchLocks(t *testing.T) {
	tests := []struct {
		behavior pet.Behavior
		want     time.Duration
	}{
		{pet.Eat, pet.EatDuration},
		{pet.PoopBehavior, pet.PoopDuration},
		{pet.Silly, pet.SillyDuration},
	}
	for _, tt := range tests {
		a := AnimationFrames[tt.behavior]
		if got := time.Duration(AnimationTotalFrames(tt.behavior)) * a.FrameDuration(); got != tt.want {
			t.Errorf("%s animation runs %v, want %v", tt.behavior, got, tt.want)
		}
	}
}

func TestAnimationGlyph(t *testing.T) {
	a := Animation{Frames: 4, FPS: 10, Glyphs: []string{"a", "b"}}
	tests := []struct {
		frame int
		want  string
	}{
		{-1, "a"},
		{0, "a"},
		{1, "a"},
		{2, "b"},
		{3, "b"},
		{100, "b"},
	}
	for _, tt := range tests {
		if got := a.Glyph(tt.frame); got != tt.want {
			t.Errorf("Glyph(%d) = %q, want %q", tt.frame, got, tt.want)
		}
	}
	if got := (Animation{}).Glyph(0); got != "" {
		t.Errorf("empty animation glyph = %q", got)
	}
}

func TestPlayerLoops(t *testing.T) {
	var frames []int
	p := newPlayer(pet.Idle, start, func(f int) { frames = append(frames, f) }, nil)

	if done := p.advance(start.Add(50 * time.Millisecond)); done != nil {
		t.Fatal("looping animation completed")
	}
	if len(frames) != 0 {
		t.Errorf("frames reported before the first step: %v", frames)
	}
	p.advance(start.Add(500 * time.Millisecond))
	if p.frame != 5 {
		t.Errorf("frame = %d after 500ms, want 5", p.frame)
	}
	if done := p.advance(start.Add(3600 * time.Millisecond)); done != nil {
		t.Fatal("looping animation completed")
	}
	if p.frame != 0 {
		t.Errorf("frame = %d after a full loop, want 0", p.frame)
	}
	if got := frames[len(frames)-1]; got != 0 {
		t.Errorf("last reported frame = %d, want 0", got)
	}
}

func TestPlayerCompletesOnce(t *testing.T) {
	completed := 0
	var last int
	p := newPlayer(pet.Eat, start, func(f int) { last = f }, func() { completed++ })

	if done := p.advance(start.Add(2700 * time.Millisecond)); done != nil {
		t.Fatal("eat finished early")
	}
	if last != 27 {
		t.Errorf("reported frame = %d, want 27", last)
	}
	done := p.advance(start.Add(2800 * time.Millisecond))
	if done == nil {
		t.Fatal("eat did not finish after 28 frames")
	}
	done()
	if p.Glyph() != AnimationFrames[pet.Eat].Glyphs[3] {
		t.Errorf("finished animation shows %q, want the last glyph", p.Glyph())
	}
	if done := p.advance(start.Add(5 * time.Second)); done != nil {
		t.Error("completion reported twice")
	}
	if completed != 1 {
		t.Errorf("completed %d times, want 1", completed)
	}
}
