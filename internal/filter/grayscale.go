package filter

import (
	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

// ITU-R BT.601 luma weights.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luma returns 0.299*r + 0.587*g + 0.114*b.
//
// The weights are applied as integers over 1000 in float64. For r = g = b = v
// the numerator is exactly 1000*v, so achromatic pixels map to themselves and
// grayscale is idempotent even after truncation to an integer kind.
func Luma(r, g, b float64) float64 {
	return (299*r + 587*g + 114*b) / 1000
}

// Grayscale replaces R, G and B of every pixel with its luma, in place.
// Alpha is unchanged.
func Grayscale[T pixel.Channel](img pixel.View[T], pool *parallel.WorkerPool) {
	if img.IsEmpty() {
		return
	}
	pool.ParallelFor(img.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := img.Row(y)
			for x := range row {
				p := &row[x]
				gray := T(Luma(float64(p.R), float64(p.G), float64(p.B)))
				p.R, p.G, p.B = gray, gray, gray
			}
		}
	})
}
