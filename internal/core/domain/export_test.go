package domain

// CacheState exposes the big-block hash cache to tests. The second return
// reports whether a hash has been stored.
func (v StringValue) CacheState() (uint32, bool) {
	if v.big == nil {
		return 0, false
	}
	c := v.big.cache.Load()
	return uint32(c), c&cacheReady != 0
}
