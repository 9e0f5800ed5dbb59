package parser

import (
	"context"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/reqs/internal/core/ports"
)

var _ ports.ImportExtractor = (*CachingExtractor)(nil)

// DefaultCacheSize is the number of files whose specifiers are kept between runs.
const DefaultCacheSize = 4096

// CachingExtractor remembers the specifiers of recently parsed sources.
// Entries are keyed by path and content hash, so an edited file is parsed again.
type CachingExtractor struct {
	next  ports.ImportExtractor
	cache *lru.Cache[string, []string]
}

// NewCachingExtractor wraps next with a cache holding up to size entries.
func NewCachingExtractor(next ports.ImportExtractor, size int) (*CachingExtractor, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &CachingExtractor{next: next, cache: cache}, nil
}

// Extract returns the cached specifiers for src or delegates to the wrapped extractor.
func (c *CachingExtractor) Extract(ctx context.Context, path string, src []byte) ([]string, error) {
	key := path + "\x00" + strconv.FormatUint(xxhash.Sum64(src), 16)

	if specs, ok := c.cache.Get(key); ok {
		return slices.Clone(specs), nil
	}

	specs, err := c.next.Extract(ctx, path, src)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, slices.Clone(specs))
	return specs, nil
}

// Len returns the number of cached sources.
func (c *CachingExtractor) Len() int {
	return c.cache.Len()
}
