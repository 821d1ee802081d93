package services

import (
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/cache"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// filterKey discriminates cached book listings by their filter set. The
// canonical url.Values encoding gives a stable order; an empty filter set
// keeps the bare base key so both shapes live in the same family.
func filterKey(base cache.Key, f models.BookFilters) cache.Key {
	v := url.Values{}
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	if f.Sort != "" {
		v.Set("sort", f.Sort)
	}
	if f.Genre != "" {
		v.Set("genre", f.Genre)
	}
	if f.Distance > 0 {
		v.Set("distance", strconv.Itoa(f.Distance))
	}
	if f.Rating > 0 {
		v.Set("rating", strconv.Itoa(f.Rating))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return paramsKey(base, v)
}

// paramsKey appends an encoded parameter segment to base, or returns base
// unchanged when there are no parameters. The encoding never contains '/',
// so the segment cannot bleed into another key family.
func paramsKey(base cache.Key, v url.Values) cache.Key {
	enc := v.Encode()
	if enc == "" {
		return base
	}
	return cache.NewKey(string(base), enc)
}
