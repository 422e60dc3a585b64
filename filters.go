package pixproc

import (
	"log/slog"
	"time"

	"github.com/gogpu/pixproc/internal/filter"
	"github.com/gogpu/pixproc/internal/resample"
	"github.com/gogpu/pixproc/pixel"
)

// Generic counterparts of the Engine methods, for any channel kind.
// They run on Default.

// Grayscale converts img to BT.601 luma in place. Alpha is unchanged.
// Gray pixels (r = g = b) are left exactly as they are.
func Grayscale[T pixel.Channel](img pixel.View[T]) {
	defer trace("grayscale", img.Width(), img.Height(), time.Now())
	filter.Grayscale(img, Default().pool)
}

// Sepia applies the sepia matrix to img in place, saturating to [0, 255].
// The clamp range is 8-bit for every T, so wider channel kinds are clipped.
func Sepia[T pixel.Channel](img pixel.View[T]) {
	defer trace("sepia", img.Width(), img.Height(), time.Now())
	filter.Sepia(img, Default().pool)
}

// ApplyColorMatrix transforms img in place by m, saturating to [0, 255].
// The clamp range is 8-bit for every T, so wider channel kinds are clipped.
func ApplyColorMatrix[T pixel.Channel](img pixel.View[T], m ColorMatrix) {
	defer trace("colormatrix", img.Width(), img.Height(), time.Now())
	filter.ApplyColorMatrix(img, m, Default().pool)
}

// BoxBlur writes the size x size box blur of in to out. Border pixels
// darken because out-of-range taps are dropped and the sum is still
// divided by size*size.
func BoxBlur[T pixel.Channel](in, out pixel.View[T], size int) {
	defer trace("boxblur", in.Width(), in.Height(), time.Now(), slog.Int("size", size))
	filter.BoxBlur(in, out, size, Default().pool)
}

// GaussianBlur5 writes the blur of in by the binomial kernel {1,4,6,4,1}
// on both axes, divided by 256, to out.
func GaussianBlur5[T pixel.Channel](in, out pixel.View[T]) {
	defer trace("gaussianblur5", in.Width(), in.Height(), time.Now())
	filter.GaussianBlur5(in, out, Default().pool)
}

// GaussianBlur writes the Gaussian blur of in with std. deviation sigma
// to out.
func GaussianBlur[T pixel.Channel](in, out pixel.View[T], sigma float32) {
	defer trace("gaussianblur", in.Width(), in.Height(), time.Now(), slog.Float64("sigma", float64(sigma)))
	e := Default()
	filter.GaussianBlur(in, out, sigma, e.kernels, e.pool)
}

// Convolve applies the separable kernel pair (kx, ky) to in, divides by div
// and writes the result to out. Alpha is copied from in.
func Convolve[T pixel.Channel](in, out pixel.View[T], kx, ky Kernel, div float32) {
	defer trace("convolve", in.Width(), in.Height(), time.Now(), slog.Int("kx", kx.Len()), slog.Int("ky", ky.Len()))
	filter.Convolve(in, out, kx, ky, div, Default().pool)
}

// DownsampleBilinear resamples in onto out by bilinear interpolation.
func DownsampleBilinear[T pixel.Channel](in, out pixel.View[T]) {
	Resample(in, out, Bilinear)
}

// DownsampleArea resamples in onto out by area averaging.
func DownsampleArea[T pixel.Channel](in, out pixel.View[T]) {
	Resample(in, out, Area)
}

// DownsampleNearest resamples in onto out by nearest neighbour.
func DownsampleNearest[T pixel.Channel](in, out pixel.View[T]) {
	Resample(in, out, Nearest)
}

// Resample resamples in onto out with method m.
func Resample[T pixel.Channel](in, out pixel.View[T], m ResampleMethod) {
	defer trace("resample", out.Width(), out.Height(), time.Now(),
		slog.String("method", m.String()),
		slog.Int("src_width", in.Width()),
		slog.Int("src_height", in.Height()))
	resample.Resample(m, in, out, Default().pool)
}

// Mipmaps builds the chain of 2:1 area-averaged levels of img.
// Returns nil if img is empty.
func Mipmaps[T pixel.Channel](img pixel.View[T]) *MipmapChain[T] {
	defer trace("mipmaps", img.Width(), img.Height(), time.Now())
	e := Default()
	// Only RGBA8 levels are pooled.
	bufs, _ := any(e.levels).(*resample.BufferPool[T])
	return resample.GenerateMipmaps(img, bufs, e.pool)
}
