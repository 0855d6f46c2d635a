package cache

import "time"

// Store is a TTL key-value abstraction. It replaces the in-process global
// dictionaries the platform used to keep for sessions and quote caching;
// injecting it keeps the core testable and lets deployments swap in a
// distributed backend.
type Store interface {
	Get(key string) (value []byte, ok bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}
