package resample

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

// Area resamples src into dst by averaging, for each output pixel, the
// ceil(stepX) x ceil(stepY) block of input pixels starting at
// (int(x*stepX), int(y*stepY)), where step = in/out per axis.
//
// Input pixels past the right or bottom edge are skipped, but the sum is
// always divided by the full footprint area. Alpha is averaged like the
// color channels. The accumulator is float32, which holds any realistic
// footprint of 8- or 16-bit samples exactly.
func Area[T pixel.Channel](src, dst pixel.View[T], pool *parallel.WorkerPool) {
	if src.IsEmpty() || dst.IsEmpty() {
		return
	}

	srcW, srcH := src.Bounds()
	dstW, dstH := dst.Bounds()
	stepX := float32(srcW) / float32(dstW)
	stepY := float32(srcH) / float32(dstH)
	kw := int(math32.Ceil(stepX))
	kh := int(math32.Ceil(stepY))
	footprint := float32(kw * kh)

	pool.ParallelFor(dstH, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			dstRow := dst.Row(y)
			for x := range dstRow {
				var acc pixel.RGBA32F
				for j := range kh {
					sy := int(float32(y)*stepY + float32(j))
					if sy >= srcH {
						continue
					}
					srcRow := src.Row(sy)
					for i := range kw {
						sx := int(float32(x)*stepX + float32(i))
						if sx >= srcW {
							continue
						}
						acc = acc.Add(pixel.Convert[float32](srcRow[sx]))
					}
				}
				dstRow[x] = pixel.Convert[T](acc.Div(footprint))
			}
		}
	})
}

// Nearest resamples src into dst by picking, for each output pixel, the
// input pixel at (int(x*stepX), int(y*stepY)) with step = in/out per axis.
func Nearest[T pixel.Channel](src, dst pixel.View[T], pool *parallel.WorkerPool) {
	if src.IsEmpty() || dst.IsEmpty() {
		return
	}

	srcW, srcH := src.Bounds()
	dstW, dstH := dst.Bounds()
	stepX := float32(srcW) / float32(dstW)
	stepY := float32(srcH) / float32(dstH)

	pool.ParallelFor(dstH, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			srcRow := src.Row(min(int(float32(y)*stepY), srcH-1))
			dstRow := dst.Row(y)
			for x := range dstRow {
				dstRow[x] = srcRow[min(int(float32(x)*stepX), srcW-1)]
			}
		}
	})
}
