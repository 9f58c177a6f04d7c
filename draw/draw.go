// Package draw rasterises the basic shapes used on small monochrome panels.
//
// Every shape writes through the destination's Set method, so clipping is whatever the
// destination image does for out-of-bounds pixels.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = draw.Over

	// Src specifies ``src in mask''.
	Src Op = draw.Src
)

// Draw calls [image/draw.Draw].
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

func fill(dst Image, r image.Rectangle, c color.Color) {
	r = r.Canon().Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	Draw(dst, r, image.NewUniform(c), image.Point{}, Src)
}
