package filter

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/pixproc/internal/cache"
)

// Kernel is a 1D convolution kernel. The center tap is at index len/2.
//
// Kernels are immutable once built. Kernels returned by CachedGaussianKernel
// are shared between callers and must never be modified.
type Kernel []float32

// Len returns the number of taps.
func (k Kernel) Len() int {
	return len(k)
}

// Center returns the index of the center tap.
func (k Kernel) Center() int {
	return KernelCenter(len(k))
}

// Sum returns the sum of all weights, accumulated in float64.
func (k Kernel) Sum() float64 {
	var sum float64
	for _, w := range k {
		sum += float64(w)
	}
	return sum
}

// identityKernel is the single-tap kernel that leaves the image unchanged.
func identityKernel() Kernel {
	return Kernel{1}
}

// BoxKernel returns a box kernel of size taps, all weighted 1.
//
// The kernel is unnormalized: a 2D box blur divides the separable result by
// size*size once at the end. For size <= 1 the identity kernel is returned.
func BoxKernel(size int) Kernel {
	if size <= 1 {
		return identityKernel()
	}

	kernel := make(Kernel, size)
	for i := range kernel {
		kernel[i] = 1
	}
	return kernel
}

// Gaussian5Norm is the divisor for two passes of Gaussian5 (16 * 16).
const Gaussian5Norm = 256

// Gaussian5 returns the fixed binomial approximation {1, 4, 6, 4, 1}.
// Each 1D pass sums to 16; divide the 2D result by Gaussian5Norm.
func Gaussian5() Kernel {
	return Kernel{1, 4, 6, 4, 1}
}

// GaussianKernel generates a 1D Gaussian kernel for standard deviation sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel radius is ceil(sigma), giving 2*ceil(sigma)+1 taps. Each tap is
//
//	exp(-(i-c)²/(2σ²)) / (2πσ²)
//
// and the whole kernel is then divided by its sum, which corrects for the
// mass cut off by the finite radius.
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float32) Kernel {
	if !(sigma > 0) { // also rejects NaN
		return identityKernel()
	}

	radius := int(math32.Ceil(sigma))
	size := radius*2 + 1
	center := KernelCenter(size)

	twoSigmaSq := 2 * sigma * sigma
	scale := 1 / (math32.Pi * twoSigmaSq)

	kernel := make(Kernel, size)
	var sum float64
	for i := range kernel {
		x := float32(i - center)
		w := math32.Exp(-(x*x)/twoSigmaSq) * scale
		kernel[i] = w
		sum += float64(w)
	}

	if sum > 0 {
		for i := range kernel {
			kernel[i] = float32(float64(kernel[i]) / sum)
		}
	}

	return kernel
}

// KernelSize returns the number of taps GaussianKernel produces for sigma.
func KernelSize(sigma float32) int {
	if !(sigma > 0) {
		return 1
	}
	return int(math32.Ceil(sigma))*2 + 1
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}

// KernelCache memoizes Gaussian kernels by the exact bit pattern of sigma.
// Two sigmas share an entry only when they are the same float32.
type KernelCache struct {
	kernels *cache.Cache[uint32, Kernel]
}

// NewKernelCache creates a kernel cache holding at most capacity kernels.
func NewKernelCache(capacity int) *KernelCache {
	return &KernelCache{kernels: cache.New[uint32, Kernel](capacity)}
}

// Gaussian returns the cached kernel for sigma, building it on first use.
func (c *KernelCache) Gaussian(sigma float32) Kernel {
	if c == nil || !(sigma > 0) {
		return GaussianKernel(sigma)
	}
	return c.kernels.GetOrCreate(math.Float32bits(sigma), func() Kernel {
		return GaussianKernel(sigma)
	})
}

// Stats returns hit/miss statistics of the underlying cache.
func (c *KernelCache) Stats() cache.Stats {
	return c.kernels.Stats()
}

var defaultKernelCache = NewKernelCache(64)

// CachedGaussianKernel returns a cached Gaussian kernel for sigma.
// This is more efficient when the same sigma is used repeatedly.
func CachedGaussianKernel(sigma float32) Kernel {
	return defaultKernelCache.Gaussian(sigma)
}
