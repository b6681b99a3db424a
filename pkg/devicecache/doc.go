// Package devicecache memoises user agent classification.
//
// Results are keyed by a hash of the agent string (see Key) and kept in a
// Store: MemoryStore is a bounded in-process LRU, RedisStore shares results
// between instances through Redis. Detector ties an engine to a store:
//
//	store, _ := devicecache.NewMemoryStore(10_000, 24*time.Hour)
//	detector := devicecache.NewDetector(categorizr.New(), store)
//	device := detector.Detect(ctx, r.UserAgent())
//
// Devices are immutable values, so cached entries are safe to hand out to
// concurrent callers. A failing store never fails a detection; the error is
// logged and the engine result is returned.
package devicecache
