package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/cache"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

var keyProfile = cache.NewKey("profile")

func keyNearbyUsers(radiusKm int) cache.Key {
	return cache.NewKey("users", "nearby", strconv.Itoa(radiusKm))
}

type ProfileAPI interface {
	Me(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, payload models.UpdateProfilePayload) (models.Profile, error)
	UpdateFavoriteGenres(ctx context.Context, genreIDs []int) (models.Profile, error)
	UpdateProfilePicture(ctx context.Context, files map[string][]byte) (models.Profile, error)
	NearbyUsers(ctx context.Context, radiusKm int) ([]models.NearbyUser, error)
}

var _ ProfileAPI = (*api.Client)(nil)

// Profiles caches the current user's profile, the single source for both the
// onboarding state the navigation gates read and the role list the
// authorization resolver reads. The cache entry doubles as the resolver's
// memoization, so roles are fetched at most once per session.
type Profiles struct {
	api   ProfileAPI
	cache *cache.Cache
	gate  Gate
}

func NewProfiles(a ProfileAPI, c *cache.Cache, gate Gate) *Profiles {
	return &Profiles{api: a, cache: c, gate: gate}
}

func (s *Profiles) Me(ctx context.Context) (models.Profile, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Profile{}, err
	}
	return cache.Fetch(ctx, s.cache, keyProfile, func(ctx context.Context) (models.Profile, error) {
		return s.api.Me(ctx)
	})
}

// Roles returns the current user's roles for authorization decisions.
func (s *Profiles) Roles(ctx context.Context) ([]string, error) {
	p, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	return p.Roles, nil
}

// Onboarded reports whether the user has completed onboarding.
func (s *Profiles) Onboarded(ctx context.Context) (bool, error) {
	p, err := s.Me(ctx)
	if err != nil {
		return false, err
	}
	return p.IsOnboarded, nil
}

// Update patches the profile and re-caches the response. Onboarding and role
// state may have changed, so the fresh copy replaces the old one immediately.
func (s *Profiles) Update(ctx context.Context, payload models.UpdateProfilePayload) (models.Profile, error) {
	return s.mutate(func() (models.Profile, error) {
		return s.api.UpdateProfile(ctx, payload)
	})
}

func (s *Profiles) UpdateFavoriteGenres(ctx context.Context, genreIDs []int) (models.Profile, error) {
	profile, err := s.mutate(func() (models.Profile, error) {
		return s.api.UpdateFavoriteGenres(ctx, genreIDs)
	})
	if err != nil {
		return models.Profile{}, err
	}
	// The personalized feed is ranked by favorite genres.
	s.cache.InvalidatePrefix(cache.NewKey("books", "for-you"))
	return profile, nil
}

func (s *Profiles) UpdatePicture(ctx context.Context, files map[string][]byte) (models.Profile, error) {
	return s.mutate(func() (models.Profile, error) {
		return s.api.UpdateProfilePicture(ctx, files)
	})
}

// Nearby lists public profiles around the user, cached per radius.
func (s *Profiles) Nearby(ctx context.Context, radiusKm int) ([]models.NearbyUser, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyNearbyUsers(radiusKm), func(ctx context.Context) ([]models.NearbyUser, error) {
		return s.api.NearbyUsers(ctx, radiusKm)
	})
}

func (s *Profiles) mutate(call func() (models.Profile, error)) (models.Profile, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Profile{}, err
	}
	profile, err := call()
	if err != nil {
		return models.Profile{}, err
	}
	s.cache.Set(keyProfile, profile)
	return profile, nil
}
