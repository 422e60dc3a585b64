// Package pixel provides the generic RGBA pixel type and the non-owning
// image view that every pixproc operation reads from and writes to.
//
// A Pixel stores four channels of one numeric kind. The kind is a type
// parameter, so an 8-bit storage pixel and a float32 working pixel are
// distinct types and cannot be mixed without Convert:
//
//	var acc pixel.RGBA32F
//	acc = acc.Add(pixel.Convert[float32](src).Scale(w))
//	out := pixel.Convert[uint8](acc.Div(n))
//
// Narrowing conversions truncate toward zero and never saturate. Values must
// already be in range for the destination kind before narrowing.
package pixel

// Channel is the set of numeric kinds a pixel channel may have.
type Channel interface {
	~uint8 | ~uint16 | ~uint32 | ~int32 | ~float32 | ~float64
}

// Pixel is a four-channel RGBA value. All channels share the kind T.
type Pixel[T Channel] struct {
	R, G, B, A T
}

// Storage and working kinds used throughout the engine.
type (
	// RGBA8 is the storage pixel of an RGBA8888 buffer.
	RGBA8 = Pixel[uint8]

	// RGBA16 is a 16-bit integer pixel, wide enough for small 8-bit sums.
	RGBA16 = Pixel[uint16]

	// RGBA32F is the floating point accumulator pixel.
	RGBA32F = Pixel[float32]
)

// Splat returns a pixel with all four channels set to v.
func Splat[T Channel](v T) Pixel[T] {
	return Pixel[T]{R: v, G: v, B: v, A: v}
}

// Add returns the channel-wise sum p + q.
// Integer kinds wrap on overflow; accumulate in a wider kind instead.
func (p Pixel[T]) Add(q Pixel[T]) Pixel[T] {
	return Pixel[T]{
		R: p.R + q.R,
		G: p.G + q.G,
		B: p.B + q.B,
		A: p.A + q.A,
	}
}

// Scale multiplies every channel, alpha included, by f.
// The product is computed in float32 and truncated back to T.
func (p Pixel[T]) Scale(f float32) Pixel[T] {
	return Pixel[T]{
		R: T(float32(p.R) * f),
		G: T(float32(p.G) * f),
		B: T(float32(p.B) * f),
		A: T(float32(p.A) * f),
	}
}

// Div divides every channel, alpha included, by d.
// The quotient is computed in float32 and truncated back to T.
func (p Pixel[T]) Div(d float32) Pixel[T] {
	return Pixel[T]{
		R: T(float32(p.R) / d),
		G: T(float32(p.G) / d),
		B: T(float32(p.B) / d),
		A: T(float32(p.A) / d),
	}
}

// WithAlpha returns p with its alpha channel replaced by a.
func (p Pixel[T]) WithAlpha(a T) Pixel[T] {
	p.A = a
	return p
}

// Convert changes the channel kind of p. Widening is exact; narrowing
// truncates and wraps like a Go numeric conversion.
func Convert[O, T Channel](p Pixel[T]) Pixel[O] {
	return Pixel[O]{
		R: O(p.R),
		G: O(p.G),
		B: O(p.B),
		A: O(p.A),
	}
}

// Saturate clamps v to [lo, hi].
func Saturate(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
