package filter

import "github.com/gogpu/pixproc/pixel"

// Test helper functions shared across filter tests.

// newUniform creates a w x h RGBA8 view filled with p.
func newUniform(w, h int, p pixel.RGBA8) pixel.View[uint8] {
	v := pixel.NewView(make([]pixel.RGBA8, w*h), w, h)
	v.Fill(p)
	return v
}

// newPattern creates a w x h RGBA8 view with a deterministic, non-uniform
// pattern in every channel.
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

// cloneView copies the pixels of v into a new buffer.
func cloneView[T pixel.Channel](v pixel.View[T]) pixel.View[T] {
	buf := make([]pixel.Pixel[T], v.Len())
	copy(buf, v.Pix())
	return pixel.NewView(buf, v.Width(), v.Height())
}

// absDiff returns |a - b| for 8-bit channels.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// formatFloat formats a float for benchmark names.
func formatFloat(f float64) string {
	if f == float64(int(f)) {
		return formatInt(int(f))
	}
	intPart := int(f)
	fracPart := int((f - float64(intPart)) * 100)
	if fracPart < 0 {
		fracPart = -fracPart
	}
	return formatInt(intPart) + "." + formatInt(fracPart)
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
