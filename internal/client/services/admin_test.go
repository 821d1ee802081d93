package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

type fakeAdminAPI struct {
	booksCalls int
	statsCalls int
}

func (f *fakeAdminAPI) AdminBooks(ctx context.Context, params models.AdminListBooksParams) ([]models.Book, error) {
	f.booksCalls++
	return []models.Book{{ID: "b1"}}, nil
}

func (f *fakeAdminAPI) AdminAcceptBook(ctx context.Context, bookID string) error { return nil }

func (f *fakeAdminAPI) AdminRejectBook(ctx context.Context, bookID string, reason string) error {
	return nil
}

func (f *fakeAdminAPI) AdminUsers(ctx context.Context, params models.AdminListUsersParams) (models.CursorPage[models.Profile], error) {
	return models.CursorPage[models.Profile]{}, nil
}

func (f *fakeAdminAPI) AdminSetUserBan(ctx context.Context, userID int, banned bool) (models.Profile, error) {
	return models.Profile{ID: userID, Banned: banned}, nil
}

func (f *fakeAdminAPI) AdminActiveUserStats(ctx context.Context, days int) ([]models.StatsPoint, error) {
	f.statsCalls++
	return []models.StatsPoint{{Date: "2025-01-01", Count: 3}}, nil
}

func (f *fakeAdminAPI) AdminRegistrationStats(ctx context.Context, days int) ([]models.StatsPoint, error) {
	f.statsCalls++
	return nil, nil
}

func (f *fakeAdminAPI) AdminBookStats(ctx context.Context, days int) ([]models.BookStatsPoint, error) {
	f.statsCalls++
	return nil, nil
}

func (f *fakeAdminAPI) AdminBookStatsByID(ctx context.Context, bookID string, days int) ([]models.BookStatsPoint, error) {
	f.statsCalls++
	return nil, nil
}

func (f *fakeAdminAPI) AdminExchanges(ctx context.Context, cursor string, limit int) (models.CursorPage[models.Exchange], error) {
	return models.CursorPage[models.Exchange]{}, nil
}

func (f *fakeAdminAPI) AdminExchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	return models.Exchange{ID: exchangeID}, nil
}

func (f *fakeAdminAPI) AdminForceFinishExchange(ctx context.Context, exchangeID int) error {
	return nil
}

func (f *fakeAdminAPI) AdminForceCancelExchange(ctx context.Context, exchangeID int) error {
	return nil
}

func TestAdmin_BooksCachedPerParams(t *testing.T) {
	api := &fakeAdminAPI{}
	s := NewAdmin(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.Books(ctx, models.AdminListBooksParams{Status: "pending"})
	require.NoError(t, err)
	_, err = s.Books(ctx, models.AdminListBooksParams{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.booksCalls)

	_, err = s.Books(ctx, models.AdminListBooksParams{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, 2, api.booksCalls)
}

func TestAdmin_AcceptBookInvalidatesPublicCatalog(t *testing.T) {
	c := newTestCache()
	s := NewAdmin(&fakeAdminAPI{}, c, openGate())
	ctx := context.Background()

	c.Set(keyBooksAll(models.BookFilters{}), []models.Book{})
	c.Set(paramsKey(keyAdminBooks, nil), []models.Book{})
	c.Set(keyProfile, models.Profile{Username: "ann"})

	require.NoError(t, s.AcceptBook(ctx, "b1"))

	_, ok := c.Get(keyBooksAll(models.BookFilters{}))
	assert.False(t, ok)
	_, ok = c.Get(paramsKey(keyAdminBooks, nil))
	assert.False(t, ok)
	_, ok = c.Get(keyProfile)
	assert.True(t, ok)
}

func TestAdmin_StatsCachedPerWindow(t *testing.T) {
	api := &fakeAdminAPI{}
	s := NewAdmin(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.ActiveUserStats(ctx, 30)
	require.NoError(t, err)
	_, err = s.ActiveUserStats(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, api.statsCalls)

	_, err = s.ActiveUserStats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, api.statsCalls)
}

func TestAdmin_ForceFinishInvalidatesBothViews(t *testing.T) {
	c := newTestCache()
	s := NewAdmin(&fakeAdminAPI{}, c, openGate())
	ctx := context.Background()

	c.Set(paramsKey(keyAdminExchanges, nil), models.CursorPage[models.Exchange]{})
	c.Set(keyExchangeList("all", true), []models.Exchange{})

	require.NoError(t, s.ForceFinishExchange(ctx, 7))

	_, ok := c.Get(paramsKey(keyAdminExchanges, nil))
	assert.False(t, ok)
	_, ok = c.Get(keyExchangeList("all", true))
	assert.False(t, ok)
}

func TestAdmin_GateClosed(t *testing.T) {
	s := NewAdmin(&fakeAdminAPI{}, newTestCache(), &fakeGate{ready: false})

	_, err := s.Users(context.Background(), models.AdminListUsersParams{})
	assert.ErrorIs(t, err, ErrSessionNotReady)
}
