package cache

import "hash/fnv"

// Fingerprint hashes SQL or template text into a cache key.
func Fingerprint(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
