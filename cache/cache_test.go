package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/spotid/cache"
	"github.com/xeptore/spotid/spotify"
)

func TestParsedURIsFetch(t *testing.T) {
	t.Parallel()
	c := cache.New()

	const src = "spotify:track:5sWHDYs0csV6RS48xBl0tH"
	var calls int
	fetch := func() (spotify.URI, error) {
		calls++
		return spotify.Parse(src)
	}

	item, err := c.ParsedURIs.Fetch(src, cache.DefaultParsedURITTL, fetch)
	require.NoError(t, err)
	assert.Equal(t, src, item.Value().String())

	item, err = c.ParsedURIs.Fetch(src, cache.DefaultParsedURITTL, fetch)
	require.NoError(t, err)
	assert.Equal(t, src, item.Value().String())
	assert.Equal(t, 1, calls)
}

func TestParsedURIsFetchError(t *testing.T) {
	t.Parallel()
	c := cache.New()

	errFetch := errors.New("fetch failed")
	_, err := c.ParsedURIs.Fetch("k", cache.DefaultParsedURITTL, func() (spotify.URI, error) {
		return nil, errFetch
	})
	require.ErrorIs(t, err, errFetch)
}
