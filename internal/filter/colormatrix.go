package filter

import (
	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

// ColorMatrix is a 3x4 RGB transformation matrix. The transformation is:
//
//	[R']   [a00 a01 a02 a03]   [R]
//	[G'] = [a10 a11 a12 a13] * [G]
//	[B']   [a20 a21 a22 a23]   [B]
//	                           [1]
//
// The fourth column provides bias/offset values. Color values are in the
// [0, 255] range during transformation and each result is saturated back
// to [0, 255]. Alpha is never touched.
type ColorMatrix [12]float32

// IdentityMatrix passes colors through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// SepiaMatrix returns the classic sepia tone matrix.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0,
		0.349, 0.686, 0.168, 0,
		0.272, 0.534, 0.131, 0,
	}
}

// InvertMatrix returns a matrix mapping each channel c to 255 - c.
func InvertMatrix() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 255,
		0, -1, 0, 255,
		0, 0, -1, 255,
	}
}

// BrightnessMatrix scales every color channel.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func BrightnessMatrix(factor float32) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0,
		0, factor, 0, 0,
		0, 0, factor, 0,
	}
}

// ContrastMatrix adjusts contrast around mid-gray.
// factor: 0.0 = gray, 1.0 = unchanged, 2.0 = high contrast
func ContrastMatrix(factor float32) ColorMatrix {
	// (color - 128) * factor + 128
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, offset,
		0, factor, 0, offset,
		0, 0, factor, offset,
	}
}

// SaturationMatrix blends between BT.601 luma (0) and the identity (1).
// factor: 0.0 = grayscale, 1.0 = unchanged, 2.0 = oversaturated
func SaturationMatrix(factor float32) ColorMatrix {
	inv := 1 - factor
	return ColorMatrix{
		LumaR*inv + factor, LumaG * inv, LumaB * inv, 0,
		LumaR * inv, LumaG*inv + factor, LumaB * inv, 0,
		LumaR * inv, LumaG * inv, LumaB*inv + factor, 0,
	}
}

// Multiply returns the matrix that applies m first, then other.
func (m ColorMatrix) Multiply(other ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := range 3 {
		for col := range 3 {
			var sum float32
			for k := range 3 {
				sum += other[row*4+k] * m[k*4+col]
			}
			r[row*4+col] = sum
		}
		r[row*4+3] = other[row*4+0]*m[3] + other[row*4+1]*m[7] +
			other[row*4+2]*m[11] + other[row*4+3]
	}
	return r
}

// Transform applies m to a single pixel, saturating each color channel to
// [0, 255]. Alpha is returned unchanged.
func (m *ColorMatrix) Transform(p pixel.RGBA32F) pixel.RGBA32F {
	return pixel.RGBA32F{
		R: pixel.Saturate(m[0]*p.R+m[1]*p.G+m[2]*p.B+m[3], 0, 255),
		G: pixel.Saturate(m[4]*p.R+m[5]*p.G+m[6]*p.B+m[7], 0, 255),
		B: pixel.Saturate(m[8]*p.R+m[9]*p.G+m[10]*p.B+m[11], 0, 255),
		A: p.A,
	}
}

// ApplyColorMatrix transforms every pixel of img in place.
// Results saturate to [0, 255] whatever T is, so uint16 and float data are
// clipped to the 8-bit range.
func ApplyColorMatrix[T pixel.Channel](img pixel.View[T], m ColorMatrix, pool *parallel.WorkerPool) {
	if img.IsEmpty() {
		return
	}
	pool.ParallelFor(img.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := img.Row(y)
			for x, p := range row {
				out := m.Transform(pixel.Convert[float32](p))
				row[x] = pixel.Convert[T](out).WithAlpha(p.A)
			}
		}
	})
}

// Sepia applies SepiaMatrix to img in place.
// Like ApplyColorMatrix it clamps to [0, 255] for every channel kind.
func Sepia[T pixel.Channel](img pixel.View[T], pool *parallel.WorkerPool) {
	ApplyColorMatrix(img, SepiaMatrix(), pool)
}
