package resample

import "github.com/gogpu/pixproc/pixel"

// newRamp creates the 4x4 gray ramp 0, 4, 8, ..., 60 with opaque alpha.
func newRamp() pixel.View[uint8] {
	v := pixel.NewView(make([]pixel.RGBA8, 16), 4, 4)
	for i := range v.Pix() {
		c := uint8(i * 4)
		v.Pix()[i] = pixel.RGBA8{R: c, G: c, B: c, A: 255}
	}
	return v
}

// newPattern creates a w x h RGBA8 view with a deterministic pattern.
func newPattern(w, h int) pixel.View[uint8] {
	v := pixel.NewView(make([]pixel.RGBA8, w*h), w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			*v.At(x, y) = pixel.RGBA8{
				R: uint8((x * 37) ^ (y * 11)),
				G: uint8(x*y + 3*x),
				B: uint8((x + y) * 9),
				A: uint8(255 - (x+y)%7),
			}
		}
	}
	return v
}

// newBlank creates a zeroed w x h RGBA8 view.
func newBlank(w, h int) pixel.View[uint8] {
	return pixel.NewView(make([]pixel.RGBA8, w*h), w, h)
}

// gray returns the opaque gray pixel c.
func gray(c uint8) pixel.RGBA8 {
	return pixel.RGBA8{R: c, G: c, B: c, A: 255}
}
