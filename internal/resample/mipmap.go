package resample

import (
	"math"

	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

// MipmapChain holds pre-computed downscaled versions of an image.
//
// Each level is half the size of the previous level (both width and height,
// never below 1). Level 0 is the caller's full-resolution view. The chain
// continues until the larger dimension reaches 1 pixel.
type MipmapChain[T pixel.Channel] struct {
	levels []pixel.View[T] // Level 0 = original size
	pool   *BufferPool[T]
}

// GenerateMipmaps creates a mipmap chain from src.
//
// Each level is produced from the previous one with Area, which for even
// sizes is an exact 2x2 average. src becomes level 0 and is not copied.
// Level buffers are taken from bufs; bufs may be nil.
//
// Returns nil if src is empty.
func GenerateMipmaps[T pixel.Channel](src pixel.View[T], bufs *BufferPool[T], pool *parallel.WorkerPool) *MipmapChain[T] {
	if src.IsEmpty() {
		return nil
	}

	maxDim := max(src.Width(), src.Height())
	numLevels := 1 + int(math.Floor(math.Log2(float64(maxDim))))

	chain := &MipmapChain[T]{
		levels: make([]pixel.View[T], numLevels),
		pool:   bufs,
	}
	chain.levels[0] = src

	for i := 1; i < numLevels; i++ {
		prev := chain.levels[i-1]
		w := max(1, prev.Width()/2)
		h := max(1, prev.Height()/2)

		var buf []pixel.Pixel[T]
		if bufs != nil {
			buf = bufs.Get(w * h)
		} else {
			buf = make([]pixel.Pixel[T], w*h)
		}

		level := pixel.NewView(buf, w, h)
		Area(prev, level, pool)
		chain.levels[i] = level
	}

	return chain
}

// Level returns the mipmap at the specified level.
// Level 0 is the original image. Returns an empty view if n is out of range.
func (m *MipmapChain[T]) Level(n int) pixel.View[T] {
	if m == nil || n < 0 || n >= len(m.levels) {
		return pixel.View[T]{}
	}
	return m.levels[n]
}

// NumLevels returns the total number of mipmap levels in the chain.
// Returns 0 if the chain is nil.
func (m *MipmapChain[T]) NumLevels() int {
	if m == nil {
		return 0
	}
	return len(m.levels)
}

// LevelIndexForScale returns the level to sample for a given scale factor.
//
// The scale parameter represents the ratio of displayed size to original size:
//   - scale = 1.0: original size (level 0)
//   - scale = 0.5: half size (level 1)
//   - scale = 0.25: quarter size (level 2)
//
// The level is floor(-log2(scale)) clamped to [0, NumLevels-1].
func (m *MipmapChain[T]) LevelIndexForScale(scale float64) int {
	if m == nil || len(m.levels) == 0 || scale >= 1 {
		return 0
	}
	if !(scale > 0) {
		return len(m.levels) - 1
	}

	level := int(math.Floor(-math.Log2(scale)))
	return min(max(level, 0), len(m.levels)-1)
}

// LevelForScale returns the mipmap for a given scale factor.
// See LevelIndexForScale.
func (m *MipmapChain[T]) LevelForScale(scale float64) pixel.View[T] {
	return m.Level(m.LevelIndexForScale(scale))
}

// Release returns all generated levels to the buffer pool. Level 0 belongs
// to the caller and is left alone. The chain must not be used afterwards.
func (m *MipmapChain[T]) Release() {
	if m == nil {
		return
	}

	for i := 1; i < len(m.levels); i++ {
		if m.pool != nil {
			m.pool.Put(m.levels[i].Pix())
		}
		m.levels[i] = pixel.View[T]{}
	}
	m.levels = m.levels[:min(len(m.levels), 1)]
}
