package pixel

import "image/color"

// MonoModel converts any color to Mono using a luma threshold.
var MonoModel color.Model = color.ModelFunc(monoModel)

// Pixel states.
var (
	Off = Mono{false}
	On  = Mono{true}
)

// Mono represents a 1-bit monochrome color.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func (c Mono) String() string {
	if c.On {
		return "on"
	}
	return "off"
}

func monoModel(c color.Color) color.Color {
	return toMono(c)
}

func toMono(c color.Color) Mono {
	if m, ok := c.(Mono); ok {
		return m
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}

	// JFIF luma coefficients, 19595 + 38470 + 7471 = 65536. Shifting by 31 keeps
	// the top bit of the 16-bit luma, so anything from mid-gray up is lit.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 31

	return Mono{On: y != 0}
}
