package filter

import (
	"sync"

	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

// Convolve applies the separable kernel pair (kx, ky) to src and writes the
// result to dst, which must have the same dimensions. The two 1D passes
// achieve O(w*h*(kx+ky)) instead of O(w*h*kx*ky):
//  1. Horizontal pass: src rows convolved with kx into a float32 scratch buffer
//  2. Vertical pass: scratch columns convolved with ky, divided by div, into dst
//
// Taps that fall outside the image are dropped, never clamped, mirrored or
// wrapped. With unnormalized kernels this darkens the borders, since edge
// pixels sum fewer taps but are still divided by the full div.
//
// The alpha of every dst pixel is copied from the same src pixel. src and
// dst may be the same view.
func Convolve[T pixel.Channel](src, dst pixel.View[T], kx, ky Kernel, div float32, pool *parallel.WorkerPool) {
	width, height := src.Bounds()
	if width <= 0 || height <= 0 {
		return
	}

	temp := getTempBuffer(width * height)
	defer putTempBuffer(temp)
	scratch := pixel.NewView(temp, width, height)

	// The first ParallelFor returns only after every row is done, so the
	// vertical pass sees a fully materialized scratch buffer.
	pool.ParallelFor(height, func(y0, y1 int) {
		convolveRows(src, scratch, kx, y0, y1)
	})
	pool.ParallelFor(height, func(y0, y1 int) {
		convolveColumns(scratch, src, dst, ky, div, y0, y1)
	})
}

// convolveRows runs the horizontal pass for rows [y0, y1).
func convolveRows[T pixel.Channel](src pixel.View[T], temp pixel.View[float32], kernel Kernel, y0, y1 int) {
	width := src.Width()
	half := kernel.Center()

	for y := y0; y < y1; y++ {
		srcRow := src.Row(y)
		tempRow := temp.Row(y)

		for x := range tempRow {
			var acc pixel.RGBA32F
			for k, w := range kernel {
				sx := x + k - half
				if sx < 0 || sx >= width {
					continue
				}
				acc = acc.Add(pixel.Convert[float32](srcRow[sx]).Scale(w))
			}
			tempRow[x] = acc
		}
	}
}

// convolveColumns runs the vertical pass for output rows [y0, y1).
func convolveColumns[T pixel.Channel](temp pixel.View[float32], src, dst pixel.View[T], kernel Kernel, div float32, y0, y1 int) {
	height := temp.Height()
	half := kernel.Center()

	for y := y0; y < y1; y++ {
		srcRow := src.Row(y)
		dstRow := dst.Row(y)

		for x := range dstRow {
			var acc pixel.RGBA32F
			for k, w := range kernel {
				sy := y + k - half
				if sy < 0 || sy >= height {
					continue
				}
				acc = acc.Add(temp.At(x, sy).Scale(w))
			}

			// Read alpha before the write: src and dst may alias.
			a := srcRow[x].A
			dstRow[x] = pixel.Convert[T](acc.Div(div)).WithAlpha(a)
		}
	}
}

// BoxBlur blurs src into dst with a size x size box.
// The sum of in-range taps is divided by size*size.
func BoxBlur[T pixel.Channel](src, dst pixel.View[T], size int, pool *parallel.WorkerPool) {
	k := BoxKernel(size)
	n := float32(k.Len())
	Convolve(src, dst, k, k, n*n, pool)
}

// GaussianBlur5 blurs src into dst with the fixed 5-tap binomial kernel.
func GaussianBlur5[T pixel.Channel](src, dst pixel.View[T], pool *parallel.WorkerPool) {
	k := Gaussian5()
	Convolve(src, dst, k, k, Gaussian5Norm, pool)
}

// GaussianBlur blurs src into dst with a normalized Gaussian of std. deviation
// sigma. kernels may be nil, in which case the package cache is used.
func GaussianBlur[T pixel.Channel](src, dst pixel.View[T], sigma float32, kernels *KernelCache, pool *parallel.WorkerPool) {
	var k Kernel
	if kernels != nil {
		k = kernels.Gaussian(sigma)
	} else {
		k = CachedGaussianKernel(sigma)
	}
	Convolve(src, dst, k, k, 1, pool)
}

// pixelBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type pixelBuffer struct {
	data []pixel.RGBA32F
}

// Scratch buffer pool for the horizontal pass.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &pixelBuffer{data: make([]pixel.RGBA32F, 512*512)}
	},
}

// getTempBuffer retrieves a scratch buffer of exactly n pixels.
// Every element is overwritten by the horizontal pass, so it is not cleared.
func getTempBuffer(n int) []pixel.RGBA32F {
	wrapper := tempBufferPool.Get().(*pixelBuffer)

	if len(wrapper.data) < n {
		// Need larger buffer - return old one and allocate new
		tempBufferPool.Put(wrapper)
		return make([]pixel.RGBA32F, n)
	}

	return wrapper.data[:n]
}

// putTempBuffer returns a scratch buffer to the pool.
func putTempBuffer(buf []pixel.RGBA32F) {
	// Only pool reasonably-sized buffers (4096x4096 RGBA32F = 256MB)
	if cap(buf) <= 4096*4096 {
		tempBufferPool.Put(&pixelBuffer{data: buf[:cap(buf)]})
	}
}
