package pixproc

import "sync/atomic"

// defaultEngine is created on first use by Default.
var defaultEngine atomic.Pointer[Engine]

// Default returns the engine used by the package-level functions, creating
// it with default options on first use.
func Default() *Engine {
	for {
		if e := defaultEngine.Load(); e != nil {
			return e
		}
		e := NewEngine()
		if defaultEngine.CompareAndSwap(nil, e) {
			return e
		}
		e.Close()
	}
}

// SetDefault replaces the engine used by the package-level functions and
// returns the previous one, which may be nil. The previous engine is not
// closed. Passing nil makes the next Default call create a fresh engine.
func SetDefault(e *Engine) *Engine {
	return defaultEngine.Swap(e)
}
