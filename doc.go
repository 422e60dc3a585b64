// Package pixproc provides CPU image filtering and resampling over
// caller-owned RGBA buffers.
//
// # Overview
//
// pixproc operates on [pixel.View] values: non-owning, row-major windows
// onto pixel slices the caller allocates. No operation copies its input or
// keeps a reference to it after returning. Channel storage is a type
// parameter, so the same filters run on 8-bit, 16-bit and floating point
// images without runtime dispatch.
//
// # Quick Start
//
//	import "github.com/gogpu/pixproc"
//
//	img, err := pixproc.ViewBytes(buf, width, height)
//	if err != nil {
//		return err
//	}
//
//	out := pixel.NewView(make([]pixel.RGBA8, width*height), width, height)
//	pixproc.GaussianBlur(img, out, 2.5)
//	pixproc.Grayscale(out)
//
// # Operations
//
//   - Color: Grayscale, Sepia, ApplyColorMatrix (in place)
//   - Blur: BoxBlur, GaussianBlur5, GaussianBlur (separable, two passes)
//   - Resampling: DownsampleBilinear, DownsampleArea, DownsampleNearest, Mipmaps
//
// Blur filters copy alpha from the source. Resamplers treat alpha like any
// other channel. Narrowing to integer channels truncates, except for color
// matrices which saturate to [0, 255] first.
//
// # Borders
//
// Convolution taps outside the image are dropped, not clamped or mirrored,
// and the result is still divided by the full kernel weight. A box blur of a
// uniform image therefore darkens its outer rows and columns.
//
// # Engines
//
// An [Engine] owns a worker pool and a Gaussian kernel cache. The
// package-level functions run on [Default]. Create a dedicated engine with
// [NewEngine] to control the number of workers.
package pixproc

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
