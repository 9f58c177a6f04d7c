package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestMonoImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewMonoImage(size.X, size.Y)
	})
}

func TestMonoVerticalLSBImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewMonoVerticalLSBImage(size.X, size.Y)
	})
}

func TestMonoVerticalLSBImageLayout(t *testing.T) {
	i := NewMonoVerticalLSBImage(128, 64)
	if v := i.Pages(); v != 8 {
		t.Fatalf("expected 8 pages, got %d", v)
	}
	if v := len(i.Pix); v != 1024 {
		t.Fatalf("expected 1024 bytes, got %d", v)
	}

	i.Set(3, 0, On)
	i.Set(3, 7, On)
	i.Set(5, 9, On)
	if v := i.Page(0)[3]; v != 0x81 {
		t.Errorf("expected page 0 column 3 to be 0x81, got %#02x", v)
	}
	if v := i.Page(1)[5]; v != 0x02 {
		t.Errorf("expected page 1 column 5 to be 0x02, got %#02x", v)
	}

	i.Set(3, 7, Off)
	if v := i.Page(0)[3]; v != 0x01 {
		t.Errorf("expected page 0 column 3 to be 0x01, got %#02x", v)
	}
}

func TestMonoImageLayout(t *testing.T) {
	i := NewMonoImage(12, 2)
	if i.Stride != 2 {
		t.Fatalf("expected stride 2, got %d", i.Stride)
	}
	i.Set(9, 1, On)
	if v := i.Pix[i.PixOffset(9, 1)]; v != 0x02 {
		t.Errorf("expected byte %#02x, got %#02x", 0x02, v)
	}
}

func testImage(t *testing.T, f func(image.Point) Image) {
	t.Helper()
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(13, 11),
		image.Pt(128, 32),
		image.Pt(128, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected mono color model, got %T", v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := MonoModel.Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y - 1; y < test.Y*2+1; y++ {
					for x := -test.X - 1; x < test.X*2+1; x++ {
						if (image.Point{X: x, Y: y}).In(i.Bounds()) {
							continue
						}
						i.Set(x, y, On)
						if v := i.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							return
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(On)
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if v := i.At(x, y); v != On {
							itt.Fatalf("pixel (%d,%d) is %v after fill", x, y, v)
						}
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if v := i.At(x, y); v != Off {
							itt.Fatalf("pixel (%d,%d) is not black", x, y)
						}
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
