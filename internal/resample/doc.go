// Package resample maps an image view onto a view of a different size.
//
// Three methods are provided:
//
//   - Bilinear: corner-aligned interpolation between the four neighbours of
//     each sample point; works for upsampling and mild downsampling
//   - Area: average of a ceil(step) x ceil(step) footprint; the preferred
//     choice for large downsampling factors
//   - Nearest: the source pixel containing the sample point
//
// All methods run over output rows on a parallel.WorkerPool (nil runs
// sequentially) and do nothing when either view is empty.
//
// # Borders
//
// Area skips footprint taps that would fall past the right or bottom edge,
// never clamping or mirroring them, and always divides by the full
// footprint area. Bilinear clamps its ceil neighbour to the last row and
// column.
package resample
