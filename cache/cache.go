package cache

import (
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"

	"github.com/xeptore/spotid/spotify"
)

var DefaultParsedURITTL = 1 * time.Hour

type Cache struct {
	ParsedURIs ParsedURIsCache
}

func New() *Cache {
	parsedURIsCache := ccache.New(
		ccache.Configure[spotify.URI]().
			MaxSize(10_000).
			GetsPerPromote(3).
			ItemsToPrune(100),
	)

	return &Cache{
		ParsedURIs: ParsedURIsCache{
			c:   parsedURIsCache,
			mux: sync.Mutex{},
		},
	}
}

type ParsedURIsCache struct {
	c   *ccache.Cache[spotify.URI]
	mux sync.Mutex
}

func (c *ParsedURIsCache) Fetch(k string, ttl time.Duration, fetch func() (spotify.URI, error)) (*ccache.Item[spotify.URI], error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.c.Fetch(k, ttl, fetch)
}
