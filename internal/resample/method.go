package resample

import (
	"fmt"
	"strings"

	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

// Method selects a resampling algorithm.
type Method uint8

const (
	// MethodNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	MethodNearest Method = iota

	// MethodBilinear interpolates between 4 neighboring pixels.
	MethodBilinear

	// MethodArea averages the footprint of each output pixel.
	// Best for large downscaling factors.
	MethodArea
)

// String returns a string representation of the method.
func (m Method) String() string {
	switch m {
	case MethodNearest:
		return "nearest"
	case MethodBilinear:
		return "bilinear"
	case MethodArea:
		return "area"
	default:
		return "unknown"
	}
}

// ParseMethod parses the name returned by Method.String, ignoring case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return MethodNearest, nil
	case "bilinear":
		return MethodBilinear, nil
	case "area":
		return MethodArea, nil
	}
	return 0, fmt.Errorf("resample: unknown method %q", s)
}

// Resample resamples src into dst with the given method.
// Unknown methods leave dst untouched.
func Resample[T pixel.Channel](m Method, src, dst pixel.View[T], pool *parallel.WorkerPool) {
	switch m {
	case MethodNearest:
		Nearest(src, dst, pool)
	case MethodBilinear:
		Bilinear(src, dst, pool)
	case MethodArea:
		Area(src, dst, pool)
	}
}
