package resample

import (
	"sync"

	"github.com/gogpu/pixproc/pixel"
)

// BufferPool is a thread-safe pool for reusing pixel buffers.
//
// Buffers are grouped by pixel count, so a 64x32 buffer can be reused for a
// 32x64 level. This reduces GC pressure when mipmap chains of similar
// images are built and released repeatedly.
type BufferPool[T pixel.Channel] struct {
	mu      sync.Mutex
	buckets map[int][][]pixel.Pixel[T]
	maxSize int // max buffers per bucket
}

// NewBufferPool creates a pool retaining at most maxPerBucket buffers of
// each size. A maxPerBucket of 0 means unlimited.
func NewBufferPool[T pixel.Channel](maxPerBucket int) *BufferPool[T] {
	return &BufferPool[T]{
		buckets: make(map[int][][]pixel.Pixel[T]),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of exactly n pixels, reused when possible.
func (p *BufferPool[T]) Get(n int) []pixel.Pixel[T] {
	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]pixel.Pixel[T], n)
}

// Put returns buf to the pool. Empty buffers and buffers for a full bucket
// are discarded.
func (p *BufferPool[T]) Put(buf []pixel.Pixel[T]) {
	if len(buf) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(buf)
	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf)
}

// Len returns the number of buffers currently held.
func (p *BufferPool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
