package pixproc

import (
	"log/slog"
	"time"

	"github.com/gogpu/pixproc/internal/filter"
	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/internal/resample"
	"github.com/gogpu/pixproc/pixel"
)

// Engine runs filters on a persistent worker pool.
//
// An Engine owns its workers, a Gaussian kernel cache and a buffer pool for
// RGBA8 mipmap levels. It holds no per-image state, so one Engine can serve
// any number of goroutines at once. Operations started after Close still
// complete, on the calling goroutine.
//
// Methods operate on RGBA8 views. For other channel kinds use the
// package-level generic functions, which run on Default.
type Engine struct {
	pool    *parallel.WorkerPool
	kernels *filter.KernelCache
	levels  *resample.BufferPool[uint8]
}

// NewEngine creates an engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		kernels: filter.NewKernelCache(o.kernelCacheSize),
		levels:  resample.NewBufferPool[uint8](8),
	}
	if !o.sequential {
		e.pool = parallel.NewWorkerPool(o.workers)
	}

	Logger().Debug("pixproc: engine created",
		slog.Int("workers", e.pool.Workers()),
		slog.Int("kernel_cache", o.kernelCacheSize))
	return e
}

// Close stops the engine's workers. It is safe to call more than once but
// must not race with operations still running on the engine.
func (e *Engine) Close() {
	if e.pool.IsRunning() {
		Logger().Debug("pixproc: engine closed", slog.Int("workers", e.pool.Workers()))
	}
	e.pool.Close()
}

// Workers returns the number of goroutines an operation is split across.
func (e *Engine) Workers() int {
	return e.pool.Workers()
}

// KernelStats returns statistics of the Gaussian kernel cache.
func (e *Engine) KernelStats() CacheStats {
	return e.kernels.Stats()
}

// Grayscale converts img to BT.601 luma in place. Alpha is unchanged.
func (e *Engine) Grayscale(img pixel.View[uint8]) {
	defer trace("grayscale", img.Width(), img.Height(), time.Now())
	filter.Grayscale(img, e.pool)
}

// Sepia applies the sepia matrix to img in place, saturating to [0, 255].
func (e *Engine) Sepia(img pixel.View[uint8]) {
	defer trace("sepia", img.Width(), img.Height(), time.Now())
	filter.Sepia(img, e.pool)
}

// ApplyColorMatrix transforms img in place by m.
func (e *Engine) ApplyColorMatrix(img pixel.View[uint8], m ColorMatrix) {
	defer trace("colormatrix", img.Width(), img.Height(), time.Now())
	filter.ApplyColorMatrix(img, m, e.pool)
}

// BoxBlur writes the size x size box blur of in to out.
// in and out must have the same dimensions and may be the same view.
func (e *Engine) BoxBlur(in, out pixel.View[uint8], size int) {
	defer trace("boxblur", in.Width(), in.Height(), time.Now(), slog.Int("size", size))
	filter.BoxBlur(in, out, size, e.pool)
}

// GaussianBlur5 writes the fixed 5-tap Gaussian blur of in to out.
func (e *Engine) GaussianBlur5(in, out pixel.View[uint8]) {
	defer trace("gaussianblur5", in.Width(), in.Height(), time.Now())
	filter.GaussianBlur5(in, out, e.pool)
}

// GaussianBlur writes the Gaussian blur of in with std. deviation sigma to
// out. sigma <= 0 copies the color channels unchanged.
func (e *Engine) GaussianBlur(in, out pixel.View[uint8], sigma float32) {
	defer trace("gaussianblur", in.Width(), in.Height(), time.Now(), slog.Float64("sigma", float64(sigma)))
	filter.GaussianBlur(in, out, sigma, e.kernels, e.pool)
}

// Convolve applies the separable kernel pair (kx, ky) to in, divides by div
// and writes the result to out. Alpha is copied from in.
func (e *Engine) Convolve(in, out pixel.View[uint8], kx, ky Kernel, div float32) {
	defer trace("convolve", in.Width(), in.Height(), time.Now(), slog.Int("kx", kx.Len()), slog.Int("ky", ky.Len()))
	filter.Convolve(in, out, kx, ky, div, e.pool)
}

// DownsampleBilinear resamples in onto out by bilinear interpolation.
// Despite the name, out may be larger than in.
func (e *Engine) DownsampleBilinear(in, out pixel.View[uint8]) {
	e.Resample(in, out, Bilinear)
}

// DownsampleArea resamples in onto out by area averaging.
func (e *Engine) DownsampleArea(in, out pixel.View[uint8]) {
	e.Resample(in, out, Area)
}

// DownsampleNearest resamples in onto out by nearest neighbour.
func (e *Engine) DownsampleNearest(in, out pixel.View[uint8]) {
	e.Resample(in, out, Nearest)
}

// Resample resamples in onto out with method m.
func (e *Engine) Resample(in, out pixel.View[uint8], m ResampleMethod) {
	defer trace("resample", out.Width(), out.Height(), time.Now(),
		slog.String("method", m.String()),
		slog.Int("src_width", in.Width()),
		slog.Int("src_height", in.Height()))
	resample.Resample(m, in, out, e.pool)
}

// Mipmaps builds the chain of 2:1 area-averaged levels of img.
// Call Release on the result to recycle the level buffers.
// Returns nil if img is empty.
func (e *Engine) Mipmaps(img pixel.View[uint8]) *MipmapChain[uint8] {
	defer trace("mipmaps", img.Width(), img.Height(), time.Now())
	return resample.GenerateMipmaps(img, e.levels, e.pool)
}
