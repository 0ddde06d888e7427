package ui

import (
	"time"

	"bearpet/internal/pet"
)

// Animation describes how a behavior is drawn: a frame count played at fps,
// with the glyphs spread evenly over the frames.
type Animation struct {
	Frames int
	FPS    int
	Loop   bool
	Glyphs []string
}

// AnimationFrames holds one animation per behavior.
var AnimationFrames = map[pet.Behavior]Animation{
	pet.Idle:         {Frames: 36, FPS: 10, Loop: true, Glyphs: []string{"🐻", "🐻", "🐻", "🐼"}},
	pet.Walk:         {Frames: 36, FPS: 12, Loop: true, Glyphs: []string{"🐻", "🐾"}},
	pet.Eat:          {Frames: 28, FPS: 10, Glyphs: []string{"🐻🍯", "😋🍯", "😋", "🐻"}},
	pet.PoopBehavior: {Frames: 16, FPS: 10, Glyphs: []string{"🐻", "😣", "😖", "😌"}},
	pet.Sad:          {Frames: 36, FPS: 8, Loop: true, Glyphs: []string{"🐻", "😢"}},
	pet.Sleep:        {Frames: 36, FPS: 8, Loop: true, Glyphs: []string{"😴", "😴z", "😴zZ"}},
	pet.Happy:        {Frames: 15, FPS: 10, Loop: true, Glyphs: []string{"🐻", "🤗"}},
	pet.Sick:         {Frames: 36, FPS: 8, Loop: true, Glyphs: []string{"🤢", "🤒"}},
	pet.Silly:        {Frames: 24, FPS: 10, Glyphs: []string{"🐻", "🤪", "🙃", "🤪"}},
}

// FrameDuration is how long each frame of the animation stays up.
func (a Animation) FrameDuration() time.Duration {
	if a.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(a.FPS)
}

// Glyph returns what to draw for a frame. Frames past the end hold the last
// glyph.
func (a Animation) Glyph(frame int) string {
	if len(a.Glyphs) == 0 || a.Frames <= 0 {
		return ""
	}
	frame = min(max(frame, 0), a.Frames-1)
	return a.Glyphs[frame*len(a.Glyphs)/a.Frames]
}

// AnimationTotalFrames returns the number of frames for a behavior.
func AnimationTotalFrames(b pet.Behavior) int {
	return AnimationFrames[b].Frames
}

// player runs the frame cursor of the current behavior and reports progress
// back to the simulation.
type player struct {
	behavior   pet.Behavior
	frame      int
	last       time.Time
	done       bool
	onFrame    func(int)
	onComplete func()
}

func newPlayer(b pet.Behavior, now time.Time, onFrame func(int), onComplete func()) player {
	return player{behavior: b, last: now, onFrame: onFrame, onComplete: onComplete}
}

func (p *player) animation() Animation { return AnimationFrames[p.behavior] }

// Glyph is the glyph for the current frame.
func (p *player) Glyph() string { return p.animation().Glyph(p.frame) }

// advance steps the cursor up to now. It returns the completion callback when
// a one-shot animation has just run out; the caller invokes it after the
// player is no longer in use, since completion starts the next behavior.
func (p *player) advance(now time.Time) func() {
	a := p.animation()
	if p.done || a.Frames == 0 {
		return nil
	}
	step := a.FrameDuration()
	moved := false
	for now.Sub(p.last) >= step {
		p.last = p.last.Add(step)
		p.frame++
		moved = true
		if p.frame < a.Frames {
			continue
		}
		if a.Loop || p.onComplete == nil {
			p.frame = 0
			continue
		}
		p.frame = a.Frames - 1
		p.done = true
		if p.onFrame != nil {
			p.onFrame(p.frame)
		}
		return p.onComplete
	}
	if moved && p.onFrame != nil {
		p.onFrame(p.frame)
	}
	return nil
}
