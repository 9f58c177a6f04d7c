package eyes

import (
	"errors"
	"image"
	"math/rand"
	"testing"
	"time"

	"github.com/BeatGlow/oled/gfx"
)

type testOp struct {
	Name  string
	Args  []int
	Color gfx.Color
}

type testCanvas struct {
	ops []testOp
	err error
}

func (c *testCanvas) Bounds() image.Rectangle { return image.Rect(0, 0, 128, 64) }

func (c *testCanvas) Clear() error {
	c.ops = append(c.ops, testOp{Name: "clear"})
	return c.err
}

func (c *testCanvas) Update() error {
	c.ops = append(c.ops, testOp{Name: "update"})
	return c.err
}

func (c *testCanvas) FillRoundRect(x, y, w, h, r int, color gfx.Color) error {
	c.ops = append(c.ops, testOp{Name: "rect", Args: []int{x, y, w, h, r}, Color: color})
	return c.err
}

func (c *testCanvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, color gfx.Color) error {
	c.ops = append(c.ops, testOp{Name: "triangle", Args: []int{x0, y0, x1, y1, x2, y2}, Color: color})
	return c.err
}

func (c *testCanvas) count(name string) (n int) {
	for _, op := range c.ops {
		if op.Name == name {
			n++
		}
	}
	return
}

func newTestFace() (*Face, *testCanvas) {
	c := new(testCanvas)
	f := New(c)
	f.Pause = nil
	f.Rand = rand.New(rand.NewSource(1))
	return f, c
}

func testCentered(t *testing.T, f *Face) {
	t.Helper()
	if want := (Eye{X: 39, Y: 32, W: 40, H: 40}); f.Left != want {
		t.Errorf("expected left eye %+v, got %+v", want, f.Left)
	}
	if want := (Eye{X: 89, Y: 32, W: 40, H: 40}); f.Right != want {
		t.Errorf("expected right eye %+v, got %+v", want, f.Right)
	}
}

func TestNew(t *testing.T) {
	f, c := newTestFace()
	testCentered(t, f)
	if f.Radius != RefRadius {
		t.Errorf("expected radius %d, got %d", RefRadius, f.Radius)
	}
	if len(c.ops) != 0 {
		t.Errorf("expected no drawing, got %d ops", len(c.ops))
	}
	if v := f.Left.Rect(); v != image.Rect(19, 12, 59, 52) {
		t.Errorf("expected left eye at (19,12)-(59,52), got %s", v)
	}
	if gap := f.Right.Rect().Min.X - f.Left.Rect().Max.X; gap != RefSpace {
		t.Errorf("expected %d px between the eyes, got %d", RefSpace, gap)
	}
}

func TestDraw(t *testing.T) {
	f, c := newTestFace()
	if err := f.Draw(); err != nil {
		t.Fatal(err)
	}
	want := []testOp{
		{Name: "clear"},
		{Name: "rect", Args: []int{19, 12, 40, 40, 10}, Color: gfx.On},
		{Name: "rect", Args: []int{69, 12, 40, 40, 10}, Color: gfx.On},
		{Name: "update"},
	}
	if len(c.ops) != len(want) {
		t.Fatalf("expected %d ops, got %d", len(want), len(c.ops))
	}
	for i, op := range c.ops {
		if op.Name != want[i].Name || op.Color != want[i].Color || len(op.Args) != len(want[i].Args) {
			t.Errorf("op %d: expected %+v, got %+v", i, want[i], op)
			continue
		}
		for j := range op.Args {
			if op.Args[j] != want[i].Args[j] {
				t.Errorf("op %d: expected %+v, got %+v", i, want[i], op)
				break
			}
		}
	}
}

func TestBlink(t *testing.T) {
	for _, speed := range []int{10, 20} {
		f, c := newTestFace()
		if err := f.Blink(speed); err != nil {
			t.Fatal(err)
		}
		if v := c.count("update"); v != 7 {
			t.Errorf("speed %d: expected 7 frames, got %d", speed, v)
		}
		testCentered(t, f)
	}
}

func TestSleepWakeup(t *testing.T) {
	f, c := newTestFace()
	if err := f.Sleep(); err != nil {
		t.Fatal(err)
	}
	if f.Left.H != 2 || f.Right.H != 2 {
		t.Errorf("expected 2 px eyes, got %d and %d", f.Left.H, f.Right.H)
	}

	c.ops = nil
	if err := f.Wakeup(); err != nil {
		t.Fatal(err)
	}
	testCentered(t, f)
	// one sleeping frame, then heights 0 to 40 in steps of 2
	if v := c.count("update"); v != 22 {
		t.Errorf("expected 22 frames, got %d", v)
	}
}

func TestHappy(t *testing.T) {
	f, c := newTestFace()
	f.Left.X += 5
	if err := f.Happy(); err != nil {
		t.Fatal(err)
	}
	testCentered(t, f)
	if v := c.count("triangle"); v != 20 {
		t.Errorf("expected 20 triangles, got %d", v)
	}
	for _, op := range c.ops {
		if op.Name == "triangle" && op.Color != gfx.Off {
			t.Errorf("expected triangles to erase, got %s", op.Color)
		}
	}
	if c.ops[0].Name != "clear" {
		t.Errorf("expected to start from a clear canvas, got %s", c.ops[0].Name)
	}
}

func TestMoveBigEye(t *testing.T) {
	for _, dir := range []int{1, -1} {
		f, c := newTestFace()
		var paused []time.Duration
		f.Pause = func(d time.Duration) { paused = append(paused, d) }

		if err := f.MoveBigEye(dir); err != nil {
			t.Fatal(err)
		}
		testCentered(t, f)
		if v := c.count("update"); v != 13 {
			t.Errorf("dir %d: expected 13 frames, got %d", dir, v)
		}
		var held bool
		for _, d := range paused {
			held = held || d == DefaultHoldDelay
		}
		if !held {
			t.Errorf("dir %d: expected the pose to be held", dir)
		}
	}
}

func TestMoveBigEyeGrows(t *testing.T) {
	f, c := newTestFace()
	f.HoldDelay = 0
	if err := f.MoveBigEye(1); err != nil {
		t.Fatal(err)
	}
	// 6th frame: the right eye is 6 px larger than the left one
	var rects []testOp
	for _, op := range c.ops {
		if op.Name == "rect" {
			rects = append(rects, op)
		}
	}
	left, right := rects[10], rects[11]
	if v := right.Args[2] - left.Args[2]; v != 6 {
		t.Errorf("expected right eye 6 px wider, got %d", v)
	}
	if v := left.Args[0] - 19; v != 12 {
		t.Errorf("expected eyes moved 12 px right, got %d", v)
	}
}

func TestSaccade(t *testing.T) {
	f, c := newTestFace()
	if err := f.Saccade(1, -1); err != nil {
		t.Fatal(err)
	}
	if f.Left.X != 39+16 || f.Left.Y != 32-12 {
		t.Errorf("expected left eye at (55,20), got (%d,%d)", f.Left.X, f.Left.Y)
	}
	if f.Left.H != RefHeight {
		t.Errorf("expected eye height restored, got %d", f.Left.H)
	}
	if v := c.count("update"); v != 2 {
		t.Errorf("expected 2 frames, got %d", v)
	}
}

func TestSaccadeRandom(t *testing.T) {
	f, _ := newTestFace()
	for i := 0; i < 16; i++ {
		if err := f.SaccadeRandom(); err != nil {
			t.Fatal(err)
		}
		testCentered(t, f)
	}
}

func TestPlay(t *testing.T) {
	for _, a := range Animations() {
		t.Run(a.String(), func(it *testing.T) {
			f, c := newTestFace()
			f.HoldDelay = 0
			if err := f.Play(a); err != nil {
				it.Fatal(err)
			}
			if c.count("update") == 0 {
				it.Error("expected at least one frame")
			}
		})
	}

	f, _ := newTestFace()
	if err := f.Play(Animation(9)); !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("expected ErrUnknownAnimation, got %v", err)
	}
}

func TestPlayError(t *testing.T) {
	f, c := newTestFace()
	c.err = errors.New("bus error")
	if err := f.Play(BlinkLong); err != c.err {
		t.Fatalf("expected bus error, got %v", err)
	}
	if len(c.ops) != 1 {
		t.Errorf("expected to stop at the first failure, got %d ops", len(c.ops))
	}
}

func TestAnimation(t *testing.T) {
	tests := []struct {
		In   string
		Want Animation
	}{
		{"0", Wakeup},
		{"1", Reset},
		{"8", SaccadeRandom},
		{"happy", Happy},
		{"move_left_big", MoveLeftBig},
	}
	for _, test := range tests {
		v, err := ParseAnimation(test.In)
		if err != nil {
			t.Errorf("%q: %v", test.In, err)
		} else if v != test.Want {
			t.Errorf("%q: expected %s, got %s", test.In, test.Want, v)
		}
	}

	for _, in := range []string{"9", "-1", "", "dance"} {
		if _, err := ParseAnimation(in); !errors.Is(err, ErrUnknownAnimation) {
			t.Errorf("%q: expected ErrUnknownAnimation, got %v", in, err)
		}
	}

	if v := Animations(); len(v) != 9 {
		t.Errorf("expected 9 animations, got %d", len(v))
	}
	if v := Animation(12).String(); v != "animation(12)" {
		t.Errorf("unexpected name %q", v)
	}
}
