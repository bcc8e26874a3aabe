package repository

import "tombraider-hub/domain/dto"

// ICache is a fixed-TTL key-value cache. It never returns errors; a miss or
// an expired entry is reported as absent.
type ICache interface {
	Get(key string) (interface{}, bool)
	// Set replaces any existing entry and restarts its TTL.
	Set(key string, value interface{})
	Has(key string) bool
	Delete(key string)
	Clear()
	// Cleanup removes every expired entry and returns how many were removed.
	Cleanup() int
	Stats() dto.CacheStats
}
