package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y), clipped to dst.
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	b := dst.Bounds()
	if w <= 0 || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x, end := max(x, b.Min.X), min(x+w, b.Max.X); x < end; x++ {
		dst.Set(x, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1), clipped to dst.
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	b := dst.Bounds()
	if h <= 0 || x < b.Min.X || x >= b.Max.X {
		return
	}
	for y, end := max(y, b.Min.Y), min(y+h, b.Max.Y); y < end; y++ {
		dst.Set(x, y, c)
	}
}

// Rectangle draws the outline of rect. Max is exclusive, as with [image.Rectangle].
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// RoundedRectangle draws a rectangle outline with radius pixels rounded corners.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		r = clampRadius(rect, radius)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, x+r, y, w-2*r, c)
	HorizontalLine(dst, x+r, y+h-1, w-2*r, c)
	VerticalLine(dst, x, y+r, h-2*r, c)
	VerticalLine(dst, x+w-1, y+r, h-2*r, c)
	roundedCorner(dst, x+r, y+r, r, 1, c)
	roundedCorner(dst, x+w-r-1, y+r, r, 2, c)
	roundedCorner(dst, x+w-r-1, y+h-r-1, r, 4, c)
	roundedCorner(dst, x+r, y+h-r-1, r, 8, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	fill(dst, rect, c)
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
//
// The radius is clamped to half of the shorter side.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		r = clampRadius(rect, radius)
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	Box(dst, image.Rect(x+r, y, x+w-r, y+h), c)
	filledRoundedCorner(dst, x+w-r-1, y+r, r, 1, h-2*r-1, c)
	filledRoundedCorner(dst, x+r, y+r, r, 2, h-2*r-1, c)
}

// Triangle draws the outline of the triangle a, b, c.
func Triangle(dst Image, a, b, c image.Point, col color.Color) {
	Line(dst, a, b, col)
	Line(dst, b, c, col)
	Line(dst, c, a, col)
}

// FillTriangle draws a filled triangle.
//
// Triangles with collinear vertices have no area and draw nothing.
func FillTriangle(dst Image, a, b, c image.Point, col color.Color) {
	if (b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y) == 0 {
		return
	}

	// Sort by Y: a.Y <= b.Y <= c.Y.
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	var (
		dxAB   = b.X - a.X
		dyAB   = b.Y - a.Y
		dxAC   = c.X - a.X
		dyAC   = c.Y - a.Y
		dxBC   = c.X - b.X
		dyBC   = c.Y - b.Y
		bounds = dst.Bounds()
	)

	// Upper part, scanlines a.Y to b.Y; include b.Y only if the lower part is flat.
	last := b.Y - 1
	if b.Y == c.Y {
		last = b.Y
	}
	for y := max(a.Y, bounds.Min.Y); y <= min(last, bounds.Max.Y-1); y++ {
		span(dst, a.X+dxAB*(y-a.Y)/dyAB, a.X+dxAC*(y-a.Y)/dyAC, y, col)
	}

	// Lower part, the rest down to c.Y.
	for y := max(last+1, bounds.Min.Y); y <= min(c.Y, bounds.Max.Y-1); y++ {
		span(dst, b.X+dxBC*(y-b.Y)/dyBC, a.X+dxAC*(y-a.Y)/dyAC, y, col)
	}
}

func span(dst Image, x0, x1, y int, c color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	HorizontalLine(dst, x0, y, x1-x0+1, c)
}

func clampRadius(rect image.Rectangle, radius int) int {
	m := rect.Dx()
	if h := rect.Dy(); h < m {
		m = h
	}
	m /= 2
	switch {
	case radius < 0:
		return 0
	case radius > m:
		return m
	default:
		return radius
	}
}

func roundedCorner(dst Image, x0, y0, radius, quadrant int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			dst.Set(x0+x, y0+y, c)
			dst.Set(x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			dst.Set(x0+x, y0-y, c)
			dst.Set(x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			dst.Set(x0-y, y0+x, c)
			dst.Set(x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			dst.Set(x0-y, y0-x, c)
			dst.Set(x0-x, y0-y, c)
		}
	}
}

// filledRoundedCorner fills the left (quadrant 2) or right (quadrant 1) half disc around
// (x0,y0), stretched vertically by delta pixels.
func filledRoundedCorner(dst Image, x0, y0, radius, quadrant, delta int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
		px   = x
		py   = y
	)
	delta++ // avoid some +1's in the loop

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		// These checks avoid double-drawing certain lines.
		if x < y+1 {
			if quadrant&1 != 0 {
				VerticalLine(dst, x0+x, y0-y, 2*y+delta, c)
			}
			if quadrant&2 != 0 {
				VerticalLine(dst, x0-x, y0-y, 2*y+delta, c)
			}
		}
		if y != py {
			if quadrant&1 != 0 {
				VerticalLine(dst, x0+py, y0-px, 2*px+delta, c)
			}
			if quadrant&2 != 0 {
				VerticalLine(dst, x0-py, y0-px, 2*px+delta, c)
			}
			py = y
		}
		px = x
	}
}

// bresenham draws a line between (x1,y1) and (x2,y2), both ends inclusive. Lines whose
// bounding box misses dst are skipped.
func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	var dx, dy, e, slope int

	box := image.Rect(x1, y1, x2, y2).Canon()
	box.Max = box.Max.Add(image.Pt(1, 1))
	if !box.Overlaps(dst.Bounds()) {
		return
	}

	// Drawing p1 -> p2 is equivalent to drawing p2 -> p1, so sort points in x-axis order to
	// handle only half of the possible cases.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy = x2-x1, y2-y1
	// Because points are x-axis ordered, dx cannot be negative
	if dy < 0 {
		dy = -dy
	}

	switch {

	// Is line a point ?
	case x1 == x2 && y1 == y2:
		dst.Set(x1, y1, c)

	// Is line an horizontal ?
	case y1 == y2:
		for ; dx != 0; dx-- {
			dst.Set(x1, y1, c)
			x1++
		}
		dst.Set(x1, y1, c)

	// Is line a vertical ?
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for ; dy != 0; dy-- {
			dst.Set(x1, y1, c)
			y1++
		}
		dst.Set(x1, y1, c)

	// Is line a diagonal ?
	case dx == dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		for ; dx != 0; dx-- {
			dst.Set(x1, y1, c)
			x1++
			y1 += step
		}
		dst.Set(x1, y1, c)

	// wider than high ?
	case dx > dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dy, e, slope = 2*dy, dx, 2*dx
		for ; dx != 0; dx-- {
			dst.Set(x1, y1, c)
			x1++
			e -= dy
			if e < 0 {
				y1 += step
				e += slope
			}
		}
		dst.Set(x2, y2, c)

	// higher than wide.
	default:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dx, e, slope = 2*dx, dy, 2*dy
		for ; dy != 0; dy-- {
			dst.Set(x1, y1, c)
			y1 += step
			e -= dx
			if e < 0 {
				x1++
				e += slope
			}
		}
		dst.Set(x2, y2, c)
	}
}
