// Package eyes animates a pair of rounded robot eyes on a monochrome panel.
package eyes

import (
	"image"
	"math/rand"
	"time"

	"github.com/BeatGlow/oled/gfx"
)

// Reference eye geometry, in pixels.
const (
	RefWidth  = 40
	RefHeight = 40
	RefSpace  = 10
	RefRadius = 10
)

// Default timings.
const (
	DefaultFrameDelay = time.Millisecond
	DefaultHoldDelay  = time.Second
)

// Canvas is the drawing surface, satisfied by *gfx.Device.
type Canvas interface {
	Bounds() image.Rectangle
	Clear() error
	Update() error
	FillRoundRect(x, y, w, h, r int, c gfx.Color) error
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c gfx.Color) error
}

// Eye is a single eye; X and Y are its center.
type Eye struct {
	X, Y int
	W, H int
}

// Rect is the eye's bounding box.
func (e Eye) Rect() image.Rectangle {
	return image.Rect(e.X-e.W/2, e.Y-e.H/2, e.X-e.W/2+e.W, e.Y-e.H/2+e.H)
}

// Face is a pair of eyes on a canvas.
type Face struct {
	Left, Right Eye
	Radius      int

	// FrameDelay is the pause after every animation frame, HoldDelay the pause on a held pose.
	FrameDelay time.Duration
	HoldDelay  time.Duration

	// Pause waits between frames, defaults to time.Sleep.
	Pause func(time.Duration)

	// Rand picks saccade directions.
	Rand *rand.Rand

	canvas Canvas
}

// New returns a face with centered reference eyes. Nothing is drawn.
func New(canvas Canvas) *Face {
	f := &Face{
		FrameDelay: DefaultFrameDelay,
		HoldDelay:  DefaultHoldDelay,
		Pause:      time.Sleep,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		canvas:     canvas,
	}
	f.reset()
	return f
}

func (f *Face) reset() {
	b := f.canvas.Bounds()
	cx, cy := b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2
	f.Left = Eye{X: cx - RefWidth/2 - RefSpace/2, Y: cy, W: RefWidth, H: RefHeight}
	f.Right = Eye{X: cx + RefWidth/2 + RefSpace/2, Y: cy, W: RefWidth, H: RefHeight}
	f.Radius = RefRadius
}

func (f *Face) pause(d time.Duration) {
	if f.Pause != nil && d > 0 {
		f.Pause(d)
	}
}

func (f *Face) fillEye(e Eye) error {
	r := e.Rect()
	return f.canvas.FillRoundRect(r.Min.X, r.Min.Y, e.W, e.H, f.Radius, gfx.On)
}

// Draw clears the canvas, draws both eyes and updates the panel.
func (f *Face) Draw() error {
	if err := f.canvas.Clear(); err != nil {
		return err
	}
	if err := f.fillEye(f.Left); err != nil {
		return err
	}
	if err := f.fillEye(f.Right); err != nil {
		return err
	}
	return f.canvas.Update()
}

// frame draws the eyes and waits one frame.
func (f *Face) frame() error {
	if err := f.Draw(); err != nil {
		return err
	}
	f.pause(f.FrameDelay)
	return nil
}

// Center moves the eyes back to their reference pose, drawing it if update is set.
func (f *Face) Center(update bool) error {
	f.reset()
	if update {
		return f.Draw()
	}
	return nil
}

// Blink closes and opens both eyes, speed pixels per frame.
func (f *Face) Blink(speed int) error {
	if err := f.Draw(); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		f.Left.H -= speed
		f.Right.H -= speed
		if err := f.frame(); err != nil {
			return err
		}
	}
	for i := 0; i < 3; i++ {
		f.Left.H += speed
		f.Right.H += speed
		if err := f.frame(); err != nil {
			return err
		}
	}
	return nil
}

// Sleep collapses both eyes to a slit.
func (f *Face) Sleep() error {
	f.Left.H = 2
	f.Right.H = 2
	return f.Draw()
}

// Wakeup opens the eyes from a slit to full height.
func (f *Face) Wakeup() error {
	if err := f.Sleep(); err != nil {
		return err
	}
	for h := 0; h <= RefHeight; h += 2 {
		f.Left.H = h
		f.Right.H = h
		if err := f.Draw(); err != nil {
			return err
		}
	}
	return nil
}

// Happy cuts the lower half of centered eyes with rising triangles.
func (f *Face) Happy() error {
	if err := f.Center(false); err != nil {
		return err
	}
	if err := f.Draw(); err != nil {
		return err
	}

	l, r := f.Left, f.Right
	offset := RefHeight / 2
	for i := 0; i < 10; i++ {
		if err := f.canvas.FillTriangle(
			l.X-l.W/2-1, l.Y+offset,
			l.X+l.W/2+1, l.Y+5+offset,
			l.X-l.W/2-1, l.Y+l.H+offset,
			gfx.Off); err != nil {
			return err
		}
		if err := f.canvas.FillTriangle(
			r.X+r.W/2+1, r.Y+offset,
			r.X-r.W/2-1, r.Y+5+offset,
			r.X+r.W/2+1, r.Y+r.H+offset,
			gfx.Off); err != nil {
			return err
		}
		offset -= 2
		if err := f.canvas.Update(); err != nil {
			return err
		}
		f.pause(f.FrameDelay)
	}
	f.pause(f.HoldDelay)
	return nil
}

// Saccade makes a quick jump in direction (dx,dy), each -1, 0 or 1, with a half blink.
func (f *Face) Saccade(dx, dy int) error {
	const (
		amplitudeX = 8
		amplitudeY = 6
		blink      = 8
	)

	f.move(amplitudeX*dx, amplitudeY*dy)
	f.Left.H -= blink
	f.Right.H -= blink
	if err := f.frame(); err != nil {
		return err
	}

	f.move(amplitudeX*dx, amplitudeY*dy)
	f.Left.H += blink
	f.Right.H += blink
	return f.frame()
}

// SaccadeRandom jumps in a random direction and back.
func (f *Face) SaccadeRandom() error {
	var dx, dy int
	for dx == 0 && dy == 0 {
		dx, dy = f.Rand.Intn(3)-1, f.Rand.Intn(3)-1
	}
	if err := f.Saccade(dx, dy); err != nil {
		return err
	}
	return f.Saccade(-dx, -dy)
}

func (f *Face) move(dx, dy int) {
	f.Left.X += dx
	f.Right.X += dx
	f.Left.Y += dy
	f.Right.Y += dy
}

// MoveBigEye looks to the right (dir 1) or left (dir -1) growing the eye on that side, holds,
// and returns to center.
func (f *Face) MoveBigEye(dir int) error {
	const (
		oversize  = 1
		amplitude = 2
		blink     = 5
	)

	grow := func(n int) {
		if dir > 0 {
			f.Right.W += n
			f.Right.H += n
		} else {
			f.Left.W += n
			f.Left.H += n
		}
	}
	step := func(move, blinkDelta, growDelta int) error {
		for i := 0; i < 3; i++ {
			f.move(move, 0)
			f.Left.H += blinkDelta
			f.Right.H += blinkDelta
			grow(growDelta)
			if err := f.frame(); err != nil {
				return err
			}
		}
		return nil
	}

	if err := step(amplitude*dir, -blink, oversize); err != nil {
		return err
	}
	if err := step(amplitude*dir, blink, oversize); err != nil {
		return err
	}
	f.pause(f.HoldDelay)
	if err := step(-amplitude*dir, -blink, -oversize); err != nil {
		return err
	}
	if err := step(-amplitude*dir, blink, -oversize); err != nil {
		return err
	}
	return f.Center(true)
}
