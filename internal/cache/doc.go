// Package cache provides a small generic LRU cache.
//
// pixproc uses it to memoize gaussian kernels, which are rebuilt from exp()
// on every call otherwise:
//
//	kernels := cache.New[uint32, filter.Kernel](64)
//	k := kernels.GetOrCreate(math.Float32bits(sigma), func() filter.Kernel {
//		return build(sigma)
//	})
//
// Entries are linked into a recency ring owned by the Cache, so eviction and
// promotion never allocate.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
