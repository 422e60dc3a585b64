package pixproc

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixproc/pixel"
)

// ViewBytes wraps an RGBA8888 byte buffer as a width x height view without
// copying. b must hold at least width*height*4 bytes and must stay valid
// while the view is in use.
func ViewBytes(b []byte, width, height int) (pixel.View[uint8], error) {
	if width < 0 || height < 0 {
		return pixel.View[uint8]{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	need := width * height * 4
	if len(b) < need {
		return pixel.View[uint8]{}, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(b), need)
	}
	return pixel.FromBytes(b[:need], width, height), nil
}

// ViewRGBA wraps the pixels of img as a view without copying.
//
// The view aliases img.Pix. Rows must be contiguous (Stride == 4*width),
// which holds for any image from image.NewRGBA but not for most
// sub-images. image.RGBA stores premultiplied alpha; filters treat the
// stored values as they are.
func ViewRGBA(img *image.RGBA) (pixel.View[uint8], error) {
	if img == nil {
		return pixel.View[uint8]{}, fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return pixel.NewView[uint8](nil, w, h), nil
	}
	if h > 1 && img.Stride != 4*w {
		return pixel.View[uint8]{}, fmt.Errorf("%w: stride %d for width %d", ErrNotContiguous, img.Stride, w)
	}

	off := img.PixOffset(b.Min.X, b.Min.Y)
	return ViewBytes(img.Pix[off:], w, h)
}

// ToRGBA returns img as a contiguous *image.RGBA with bounds starting at
// (0, 0). An *image.RGBA that already qualifies is returned as is;
// anything else is converted into a new image.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// FromImage converts img with ToRGBA and wraps the result as a view.
// The view aliases img's pixels when no conversion was needed.
func FromImage(img image.Image) pixel.View[uint8] {
	// ToRGBA output always has Stride == 4*width.
	v, _ := ViewRGBA(ToRGBA(img))
	return v
}

// ToImage wraps v as an *image.RGBA sharing the same memory.
func ToImage(v pixel.View[uint8]) *image.RGBA {
	w, h := v.Bounds()
	return &image.RGBA{
		Pix:    pixel.Bytes(v),
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// NewRGBA8 allocates a zeroed width x height RGBA8 view.
func NewRGBA8(width, height int) pixel.View[uint8] {
	return pixel.NewView(make([]pixel.RGBA8, width*height), width, height)
}
