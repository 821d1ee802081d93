package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/cache"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

func keyReference(parts ...string) cache.Key {
	return cache.NewKey(append([]string{"reference"}, parts...)...)
}

type ReferenceAPI interface {
	Genres(ctx context.Context) ([]models.Genre, error)
	Genre(ctx context.Context, genreID int) (models.Genre, error)
	Authors(ctx context.Context) ([]models.Author, error)
	Author(ctx context.Context, authorID int) (models.Author, error)
	Languages(ctx context.Context) ([]models.Language, error)
	Cities(ctx context.Context) ([]models.City, error)
	ExchangeLocations(ctx context.Context, filterByDistance bool) ([]models.ExchangeLocation, error)
	NearestExchangeLocation(ctx context.Context) (*models.ExchangeLocation, error)
}

var _ ReferenceAPI = (*api.Client)(nil)

// Reference caches the lookup tables used by book creation and onboarding.
// These change rarely server-side; no mutation in this client invalidates
// them, only the TTL and the wholesale clear on logout.
type Reference struct {
	api   ReferenceAPI
	cache *cache.Cache
	gate  Gate
}

func NewReference(a ReferenceAPI, c *cache.Cache, gate Gate) *Reference {
	return &Reference{api: a, cache: c, gate: gate}
}

func (s *Reference) Genres(ctx context.Context) ([]models.Genre, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyReference("genres"), func(ctx context.Context) ([]models.Genre, error) {
		return s.api.Genres(ctx)
	})
}

func (s *Reference) Genre(ctx context.Context, genreID int) (models.Genre, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Genre{}, err
	}
	return cache.Fetch(ctx, s.cache, keyReference("genres", strconv.Itoa(genreID)), func(ctx context.Context) (models.Genre, error) {
		return s.api.Genre(ctx, genreID)
	})
}

func (s *Reference) Authors(ctx context.Context) ([]models.Author, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyReference("authors"), func(ctx context.Context) ([]models.Author, error) {
		return s.api.Authors(ctx)
	})
}

func (s *Reference) Author(ctx context.Context, authorID int) (models.Author, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Author{}, err
	}
	return cache.Fetch(ctx, s.cache, keyReference("authors", strconv.Itoa(authorID)), func(ctx context.Context) (models.Author, error) {
		return s.api.Author(ctx, authorID)
	})
}

func (s *Reference) Languages(ctx context.Context) ([]models.Language, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyReference("languages"), func(ctx context.Context) ([]models.Language, error) {
		return s.api.Languages(ctx)
	})
}

func (s *Reference) Cities(ctx context.Context) ([]models.City, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyReference("cities"), func(ctx context.Context) ([]models.City, error) {
		return s.api.Cities(ctx)
	})
}

func (s *Reference) ExchangeLocations(ctx context.Context, filterByDistance bool) ([]models.ExchangeLocation, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	key := keyReference("locations", strconv.FormatBool(filterByDistance))
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.ExchangeLocation, error) {
		return s.api.ExchangeLocations(ctx, filterByDistance)
	})
}

// NearestExchangeLocation returns the closest handover point, nil when the
// user has no location set. The nil answer is cached too; it depends on the
// user's profile location, which only changes through a profile update and a
// fresh session.
func (s *Reference) NearestExchangeLocation(ctx context.Context) (*models.ExchangeLocation, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyReference("locations", "nearest"), func(ctx context.Context) (*models.ExchangeLocation, error) {
		return s.api.NearestExchangeLocation(ctx)
	})
}
