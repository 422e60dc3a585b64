// Package filter provides the convolution and color filters of pixproc.
//
// This package contains:
//   - Kernel factories: box, fixed 5-tap binomial, continuous-sigma Gaussian
//   - Separable convolution (two 1D passes with a barrier in between)
//   - Grayscale (BT.601 luma) and color matrix transforms such as sepia
//
// All filters are generic over the pixel channel kind and run on a
// parallel.WorkerPool, one contiguous block of rows per worker. A nil pool
// runs on the calling goroutine.
//
// # Border Handling
//
// Convolution taps outside the image are dropped. Kernels whose weights do
// not sum to one (the box kernel, which is divided by size² afterwards)
// therefore darken the outermost rows and columns. Pad the image first when
// edges must keep their brightness.
package filter
