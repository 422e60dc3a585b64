package pixel

import "unsafe"

// View is a non-owning, row-major window onto a caller-supplied pixel buffer.
//
// A View never allocates, copies or frees. The buffer it wraps belongs to
// the caller and must stay valid for as long as any operation is using the
// view. Construction does not check that the buffer holds width*height
// pixels; that is the caller's contract.
//
// View is a small value type and is meant to be passed by value.
type View[T Channel] struct {
	pix    []Pixel[T]
	width  int
	height int
}

// NewView wraps pix as a width x height image. No validation is performed.
func NewView[T Channel](pix []Pixel[T], width, height int) View[T] {
	return View[T]{
		pix:    pix,
		width:  width,
		height: height,
	}
}

// FromBytes reinterprets an RGBA8888 byte buffer as a View without copying.
// The view aliases b; writes through the view are visible in b.
func FromBytes(b []byte, width, height int) View[uint8] {
	n := len(b) / 4
	if n == 0 {
		return View[uint8]{width: width, height: height}
	}
	pix := unsafe.Slice((*Pixel[uint8])(unsafe.Pointer(unsafe.SliceData(b))), n) //nolint:gosec // RGBA8 is four packed bytes
	return View[uint8]{
		pix:    pix,
		width:  width,
		height: height,
	}
}

// Bytes returns the RGBA8888 bytes backing v, aliasing the same memory.
func Bytes(v View[uint8]) []byte {
	if len(v.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v.pix))), len(v.pix)*4) //nolint:gosec // RGBA8 is four packed bytes
}

// Width returns the image width in pixels.
func (v View[T]) Width() int {
	return v.width
}

// Height returns the image height in pixels.
func (v View[T]) Height() int {
	return v.height
}

// Bounds returns the image dimensions as (width, height).
func (v View[T]) Bounds() (int, int) {
	return v.width, v.height
}

// Len returns width*height.
func (v View[T]) Len() int {
	return v.width * v.height
}

// IsEmpty reports whether the view covers no pixels.
func (v View[T]) IsEmpty() bool {
	return v.width <= 0 || v.height <= 0
}

// Pix returns the wrapped buffer.
func (v View[T]) Pix() []Pixel[T] {
	return v.pix
}

// At returns a pointer to the pixel at (x, y).
// The coordinate is not checked beyond the slice bounds check of the buffer.
func (v View[T]) At(x, y int) *Pixel[T] {
	return &v.pix[y*v.width+x]
}

// Row returns the pixels of row y.
func (v View[T]) Row(y int) []Pixel[T] {
	start := y * v.width
	return v.pix[start : start+v.width]
}

// SameSize reports whether a and b have identical dimensions.
func SameSize[T, U Channel](a View[T], b View[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Fill sets every pixel of the view to p.
func (v View[T]) Fill(p Pixel[T]) {
	if v.IsEmpty() {
		return
	}
	for i := range v.pix[:v.Len()] {
		v.pix[i] = p
	}
}
