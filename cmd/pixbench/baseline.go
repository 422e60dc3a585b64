package main

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// filterBaselines returns the closest equivalents of the pixproc filters in
// imaging and bild.
func filterBaselines(img *image.RGBA, box int, sigma float64) []baseline {
	// bild divides each pass by the kernel sum instead of once at the end.
	k := convolution.NewKernel(box, 1)
	for i := range k.Matrix {
		k.Matrix[i] = 1
	}
	boxK := k.Normalized()
	opts := &convolution.Options{Bias: 0, Wrap: false, KeepAlpha: true}

	return []baseline{
		{"grayscale", "imaging", func() { _ = imaging.Grayscale(img) }},
		{"sepia", "bild", func() { _ = effect.Sepia(img) }},
		{fmt.Sprintf("boxblur k=%d", box), "bild", func() {
			tmp := convolution.Convolve(img, boxK, opts)
			_ = convolution.Convolve(tmp, boxK.Transposed(), opts)
		}},
		{fmt.Sprintf("gaussianblur s=%g", sigma), "imaging", func() { _ = imaging.Blur(img, sigma) }},
	}
}

// resampleBaselines returns resizers from imaging and x/image/draw.
func resampleBaselines(img *image.RGBA, w, h int) []baseline {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	return []baseline{
		{"nearest", "imaging", func() { _ = imaging.Resize(img, w, h, imaging.NearestNeighbor) }},
		{"bilinear", "imaging", func() { _ = imaging.Resize(img, w, h, imaging.Linear) }},
		{"bilinear", "x/image", func() {
			xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		}},
		{"area", "imaging", func() { _ = imaging.Resize(img, w, h, imaging.Box) }},
	}
}
