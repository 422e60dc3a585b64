package pixproc

import (
	"github.com/gogpu/pixproc/internal/cache"
	"github.com/gogpu/pixproc/internal/filter"
	"github.com/gogpu/pixproc/internal/resample"
	"github.com/gogpu/pixproc/pixel"
)

// ColorMatrix is a 3x4 RGB transform with an offset column.
// See ApplyColorMatrix.
type ColorMatrix = filter.ColorMatrix

// Kernel is a 1D convolution kernel with its center tap at index len/2.
type Kernel = filter.Kernel

// MipmapChain holds successively halved copies of an image.
// Level 0 is the view passed to Mipmaps.
type MipmapChain[T pixel.Channel] = resample.MipmapChain[T]

// ResampleMethod selects a resampling algorithm for Resample.
type ResampleMethod = resample.Method

// Resampling methods.
const (
	Nearest  = resample.MethodNearest
	Bilinear = resample.MethodBilinear
	Area     = resample.MethodArea
)

// CacheStats reports the occupancy and hit rate of an engine's kernel cache.
type CacheStats = cache.Stats

// ParseResampleMethod parses "nearest", "bilinear" or "area".
func ParseResampleMethod(s string) (ResampleMethod, error) {
	return resample.ParseMethod(s)
}

// IdentityMatrix passes colors through unchanged.
func IdentityMatrix() ColorMatrix { return filter.IdentityMatrix() }

// SepiaMatrix returns the classic sepia tone matrix.
func SepiaMatrix() ColorMatrix { return filter.SepiaMatrix() }

// InvertMatrix maps each color channel c to 255 - c.
func InvertMatrix() ColorMatrix { return filter.InvertMatrix() }

// BrightnessMatrix scales every color channel by factor.
func BrightnessMatrix(factor float32) ColorMatrix { return filter.BrightnessMatrix(factor) }

// ContrastMatrix scales color channels around mid-gray by factor.
func ContrastMatrix(factor float32) ColorMatrix { return filter.ContrastMatrix(factor) }

// SaturationMatrix blends between luma (0) and the original colors (1).
func SaturationMatrix(factor float32) ColorMatrix { return filter.SaturationMatrix(factor) }

// GaussianKernel returns the normalized Gaussian kernel for sigma, with
// radius ceil(sigma). sigma <= 0 gives the identity kernel.
func GaussianKernel(sigma float32) Kernel { return filter.GaussianKernel(sigma) }

// BoxKernel returns size unit weights. size <= 1 gives the identity kernel.
func BoxKernel(size int) Kernel { return filter.BoxKernel(size) }
