// Package cache provides the sharded LRU cache behind the font cache.
//
// Sharded spreads keys over 16 independently locked shards, each with its
// own LRU list, so lookups of different fonts rarely contend:
//
//	c := cache.NewSharded[string, *Font](64, cache.StringHasher)
//	f, err := c.GetOrCreate(name, func() (*Font, error) { return open(name) })
//
// Sharded is safe for concurrent use and must not be copied after creation.
package cache
