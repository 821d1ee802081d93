package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

type fakeProfileAPI struct {
	meCalls int
	profile models.Profile
}

func (f *fakeProfileAPI) Me(ctx context.Context) (models.Profile, error) {
	f.meCalls++
	return f.profile, nil
}

func (f *fakeProfileAPI) UpdateProfile(ctx context.Context, payload models.UpdateProfilePayload) (models.Profile, error) {
	return f.profile, nil
}

func (f *fakeProfileAPI) UpdateFavoriteGenres(ctx context.Context, genreIDs []int) (models.Profile, error) {
	return f.profile, nil
}

func (f *fakeProfileAPI) UpdateProfilePicture(ctx context.Context, files map[string][]byte) (models.Profile, error) {
	return f.profile, nil
}

func (f *fakeProfileAPI) NearbyUsers(ctx context.Context, radiusKm int) ([]models.NearbyUser, error) {
	return nil, nil
}

func TestProfiles_MeCachedOnce(t *testing.T) {
	api := &fakeProfileAPI{profile: models.Profile{Username: "ann", Roles: []string{"admin"}}}
	s := NewProfiles(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.Me(ctx)
	require.NoError(t, err)

	// Roles and Onboarded ride on the same cached profile.
	roles, err := s.Roles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, roles)

	_, err = s.Onboarded(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.meCalls)
}

func TestProfiles_UpdateRecachesProfile(t *testing.T) {
	api := &fakeProfileAPI{profile: models.Profile{Username: "ann", IsOnboarded: true}}
	s := NewProfiles(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.Update(ctx, models.UpdateProfilePayload{})
	require.NoError(t, err)

	onboarded, err := s.Onboarded(ctx)
	require.NoError(t, err)
	assert.True(t, onboarded)
	assert.Equal(t, 0, api.meCalls)
}

func TestProfiles_FavoriteGenresInvalidateFeed(t *testing.T) {
	c := newTestCache()
	api := &fakeProfileAPI{profile: models.Profile{Username: "ann"}}
	s := NewProfiles(api, c, openGate())
	ctx := context.Background()

	feedKey := keyBooksForYou(models.BookFilters{})
	c.Set(feedKey, []models.Book{{ID: "b1"}})
	c.Set(keyBooksMine, []models.Book{{ID: "b2"}})

	_, err := s.UpdateFavoriteGenres(ctx, []int{1, 2})
	require.NoError(t, err)

	_, ok := c.Get(feedKey)
	assert.False(t, ok)
	// Owned books are not ranked by favorite genres.
	_, ok = c.Get(keyBooksMine)
	assert.True(t, ok)
}

func TestProfiles_GateClosed(t *testing.T) {
	s := NewProfiles(&fakeProfileAPI{}, newTestCache(), &fakeGate{ready: false})

	_, err := s.Roles(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotReady)
}
