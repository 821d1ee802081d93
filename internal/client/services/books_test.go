package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

type fakeBooksAPI struct {
	listCalls   int
	detailCalls int
	book        models.Book
}

func (f *fakeBooksAPI) BooksForYou(ctx context.Context, filters models.BookFilters) ([]models.Book, error) {
	f.listCalls++
	return []models.Book{f.book}, nil
}

func (f *fakeBooksAPI) Books(ctx context.Context, filters models.BookFilters) ([]models.Book, error) {
	f.listCalls++
	return []models.Book{f.book}, nil
}

func (f *fakeBooksAPI) MyBooks(ctx context.Context) ([]models.Book, error) {
	f.listCalls++
	return []models.Book{f.book}, nil
}

func (f *fakeBooksAPI) Book(ctx context.Context, bookID string) (models.Book, error) {
	f.detailCalls++
	return f.book, nil
}

func (f *fakeBooksAPI) CreateBook(ctx context.Context, payload models.CreateBookPayload) (models.Book, error) {
	return f.book, nil
}

func (f *fakeBooksAPI) UpdateBook(ctx context.Context, bookID string, payload models.UpdateBookPayload) (models.Book, error) {
	return f.book, nil
}

func (f *fakeBooksAPI) UploadBookPhotos(ctx context.Context, bookID string, files map[string][]byte) (models.Book, error) {
	return f.book, nil
}

func (f *fakeBooksAPI) ToggleBookLike(ctx context.Context, bookID string) error { return nil }

func (f *fakeBooksAPI) ReserveBook(ctx context.Context, bookID string, payload models.ReserveBookPayload) error {
	return nil
}

func (f *fakeBooksAPI) RecordBookClick(ctx context.Context, bookID string) error { return nil }

func TestBooks_GateClosed(t *testing.T) {
	s := NewBooks(&fakeBooksAPI{}, newTestCache(), &fakeGate{ready: false})

	_, err := s.All(context.Background(), models.BookFilters{})
	assert.ErrorIs(t, err, ErrSessionNotReady)

	s = NewBooks(&fakeBooksAPI{}, newTestCache(), &fakeGate{ready: true})
	_, err = s.Mine(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestBooks_ListCachedPerFilterSet(t *testing.T) {
	api := &fakeBooksAPI{book: models.Book{ID: "b1", Title: "Solaris"}}
	s := NewBooks(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.All(ctx, models.BookFilters{})
	require.NoError(t, err)
	_, err = s.All(ctx, models.BookFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCalls)

	// A different filter set is a different cache entry.
	_, err = s.All(ctx, models.BookFilters{Genre: "sci-fi"})
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestBooks_ToggleLikeInvalidatesFamily(t *testing.T) {
	api := &fakeBooksAPI{book: models.Book{ID: "b1"}}
	s := NewBooks(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.All(ctx, models.BookFilters{})
	require.NoError(t, err)
	_, err = s.ByID(ctx, "b1")
	require.NoError(t, err)

	require.NoError(t, s.ToggleLike(ctx, "b1"))

	_, err = s.All(ctx, models.BookFilters{})
	require.NoError(t, err)
	_, err = s.ByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
	assert.Equal(t, 2, api.detailCalls)
}

func TestBooks_UpdateRecachesDetail(t *testing.T) {
	api := &fakeBooksAPI{book: models.Book{ID: "b1", Title: "Updated"}}
	s := NewBooks(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.Update(ctx, "b1", models.UpdateBookPayload{})
	require.NoError(t, err)

	// The detail view comes straight from the mutation response.
	book, err := s.ByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Updated", book.Title)
	assert.Equal(t, 0, api.detailCalls)
}

func TestBooks_InvalidationLeavesOtherFamiliesAlone(t *testing.T) {
	c := newTestCache()
	api := &fakeBooksAPI{book: models.Book{ID: "b1"}}
	s := NewBooks(api, c, openGate())
	ctx := context.Background()

	c.Set(keyProfile, models.Profile{Username: "ann"})
	_, err := s.Create(ctx, models.CreateBookPayload{Title: "New"})
	require.NoError(t, err)

	_, ok := c.Get(keyProfile)
	assert.True(t, ok)
}

func TestBooks_ReserveInvalidatesExchanges(t *testing.T) {
	c := newTestCache()
	s := NewBooks(&fakeBooksAPI{}, c, openGate())
	ctx := context.Background()

	c.Set(keyExchangeList("all", true), []models.Exchange{})
	require.NoError(t, s.Reserve(ctx, "b1", models.ReserveBookPayload{}))

	_, ok := c.Get(keyExchangeList("all", true))
	assert.False(t, ok)
}
