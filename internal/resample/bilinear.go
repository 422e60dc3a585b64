package resample

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

// Bilinear resamples src into dst by bilinear interpolation.
//
// Output coordinate x maps to input coordinate x*(inW-1)/(outW-1), so the
// corner pixels of both views line up exactly. The ratio is 0 when the
// output dimension is 1, which samples the first row or column. The four
// neighbours are floor and ceil of the mapped coordinate on each axis.
//
// All four channels are interpolated. Weights are accumulated in float32
// and narrowed once per pixel, so equal sizes reproduce src exactly.
func Bilinear[T pixel.Channel](src, dst pixel.View[T], pool *parallel.WorkerPool) {
	if src.IsEmpty() || dst.IsEmpty() {
		return
	}

	srcW, srcH := src.Bounds()
	dstW, dstH := dst.Bounds()
	ratioX := ratio(srcW, dstW)
	ratioY := ratio(srcH, dstH)

	pool.ParallelFor(dstH, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			top, bottom, ty := neighbours(float32(y)*ratioY, srcH)
			topRow := src.Row(top)
			bottomRow := src.Row(bottom)
			dstRow := dst.Row(y)

			for x := range dstRow {
				left, right, tx := neighbours(float32(x)*ratioX, srcW)
				v := lerp2D(
					pixel.Convert[float32](topRow[left]),
					pixel.Convert[float32](topRow[right]),
					pixel.Convert[float32](bottomRow[left]),
					pixel.Convert[float32](bottomRow[right]),
					tx, ty,
				)
				dstRow[x] = pixel.Convert[T](v)
			}
		}
	})
}

// ratio returns the corner-aligned input step per output pixel.
func ratio(in, out int) float32 {
	if out <= 1 {
		return 0
	}
	return float32(in-1) / float32(out-1)
}

// neighbours returns the floor and ceil of f, both clamped to [0, n-1], and
// the fractional weight of the ceil sample.
func neighbours(f float32, n int) (lo, hi int, t float32) {
	fl := math32.Floor(f)
	lo = min(int(fl), n-1)
	hi = min(int(math32.Ceil(f)), n-1)
	return lo, hi, f - fl
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(p00, p10, p01, p11 pixel.RGBA32F, tx, ty float32) pixel.RGBA32F {
	return p00.Scale((1 - tx) * (1 - ty)).
		Add(p10.Scale(tx * (1 - ty))).
		Add(p01.Scale((1 - tx) * ty)).
		Add(p11.Scale(tx * ty))
}
