package pixproc

import "github.com/gogpu/pixproc/pixel"

// newPattern creates a w x h RGBA8 view with a deterministic pattern.
func newPattern(w, h int) pixel.View[uint8] {
	v := NewRGBA8(w, h)
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

// clone copies the pixels of v into a new buffer.
func clone[T pixel.Channel](v pixel.View[T]) pixel.View[T] {
	buf := make([]pixel.Pixel[T], v.Len())
	copy(buf, v.Pix())
	return pixel.NewView(buf, v.Width(), v.Height())
}

// equalViews reports whether a and b have the same size and pixels.
func equalViews[T pixel.Channel](a, b pixel.View[T]) bool {
	if !pixel.SameSize(a, b) {
		return false
	}
	for i := range a.Pix() {
		if a.Pix()[i] != b.Pix()[i] {
			return false
		}
	}
	return true
}

// useEngine installs e as the default engine for the duration of a test.
func useEngine(t interface{ Cleanup(func()) }, e *Engine) {
	prev := SetDefault(e)
	t.Cleanup(func() {
		SetDefault(prev)
		e.Close()
	})
}
