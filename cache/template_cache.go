package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultTemplateCacheSize = 512

type parsedEntry[T any] struct {
	text   string
	parsed T
}

// ParseCache memoizes the parsed form of template text. Parsed values are
// shared between callers and must not be mutated.
type ParseCache[T any] struct {
	cache *lru.Cache[uint64, parsedEntry[T]]
}

func NewParseCache[T any](size int) *ParseCache[T] {
	if size <= 0 {
		size = DefaultTemplateCacheSize
	}
	c, _ := lru.New[uint64, parsedEntry[T]](size)
	return &ParseCache[T]{cache: c}
}

// GetOrParse returns the cached parse of text, calling parse on a miss.
// Concurrent misses may parse the same text twice; the result is identical.
func (c *ParseCache[T]) GetOrParse(text string, parse func(string) T) T {
	key := Fingerprint(text)
	if e, ok := c.cache.Get(key); ok && e.text == text {
		return e.parsed
	}
	parsed := parse(text)
	c.cache.Add(key, parsedEntry[T]{text: text, parsed: parsed})
	return parsed
}

func (c *ParseCache[T]) Len() int {
	return c.cache.Len()
}
