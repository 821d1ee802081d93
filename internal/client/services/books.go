package services

import (
	"context"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/cache"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// Book cache keys. Every book query lives under keyBooks, so invalidating
// the root after a mutation reaches listings and details alike.
var keyBooks = cache.NewKey("books")

func keyBooksForYou(f models.BookFilters) cache.Key {
	return filterKey(cache.NewKey("books", "for-you"), f)
}

func keyBooksAll(f models.BookFilters) cache.Key {
	return filterKey(cache.NewKey("books", "all"), f)
}

var keyBooksMine = cache.NewKey("books", "mine")

func keyBookDetail(bookID string) cache.Key {
	return cache.NewKey("books", "detail", bookID)
}

// BooksAPI is the slice of the HTTP client the service uses.
type BooksAPI interface {
	BooksForYou(ctx context.Context, filters models.BookFilters) ([]models.Book, error)
	Books(ctx context.Context, filters models.BookFilters) ([]models.Book, error)
	MyBooks(ctx context.Context) ([]models.Book, error)
	Book(ctx context.Context, bookID string) (models.Book, error)
	CreateBook(ctx context.Context, payload models.CreateBookPayload) (models.Book, error)
	UpdateBook(ctx context.Context, bookID string, payload models.UpdateBookPayload) (models.Book, error)
	UploadBookPhotos(ctx context.Context, bookID string, files map[string][]byte) (models.Book, error)
	ToggleBookLike(ctx context.Context, bookID string) error
	ReserveBook(ctx context.Context, bookID string, payload models.ReserveBookPayload) error
	RecordBookClick(ctx context.Context, bookID string) error
}

var _ BooksAPI = (*api.Client)(nil)

type Books struct {
	api   BooksAPI
	cache *cache.Cache
	gate  Gate
}

func NewBooks(a BooksAPI, c *cache.Cache, gate Gate) *Books {
	return &Books{api: a, cache: c, gate: gate}
}

// ForYou returns the personalized feed, cached per filter set.
func (s *Books) ForYou(ctx context.Context, filters models.BookFilters) ([]models.Book, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyBooksForYou(filters), func(ctx context.Context) ([]models.Book, error) {
		return s.api.BooksForYou(ctx, filters)
	})
}

// All returns the general catalog, cached per filter set.
func (s *Books) All(ctx context.Context, filters models.BookFilters) ([]models.Book, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyBooksAll(filters), func(ctx context.Context) ([]models.Book, error) {
		return s.api.Books(ctx, filters)
	})
}

// Mine returns the current user's books.
func (s *Books) Mine(ctx context.Context) ([]models.Book, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyBooksMine, func(ctx context.Context) ([]models.Book, error) {
		return s.api.MyBooks(ctx)
	})
}

// ByID returns one book.
func (s *Books) ByID(ctx context.Context, bookID string) (models.Book, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Book{}, err
	}
	return cache.Fetch(ctx, s.cache, keyBookDetail(bookID), func(ctx context.Context) (models.Book, error) {
		return s.api.Book(ctx, bookID)
	})
}

// Create lists a new book; every cached book view may now be stale.
func (s *Books) Create(ctx context.Context, payload models.CreateBookPayload) (models.Book, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Book{}, err
	}
	book, err := s.api.CreateBook(ctx, payload)
	if err != nil {
		return models.Book{}, err
	}
	s.cache.InvalidatePrefix(keyBooks)
	return book, nil
}

// Update patches a book; listings are invalidated and the fresh detail is
// re-cached from the response.
func (s *Books) Update(ctx context.Context, bookID string, payload models.UpdateBookPayload) (models.Book, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Book{}, err
	}
	book, err := s.api.UpdateBook(ctx, bookID, payload)
	if err != nil {
		return models.Book{}, err
	}
	s.cache.InvalidatePrefix(keyBooks)
	s.cache.Set(keyBookDetail(book.ID), book)
	return book, nil
}

// UploadPhotos replaces a book's photo set; only the detail view changes.
func (s *Books) UploadPhotos(ctx context.Context, bookID string, files map[string][]byte) (models.Book, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Book{}, err
	}
	book, err := s.api.UploadBookPhotos(ctx, bookID, files)
	if err != nil {
		return models.Book{}, err
	}
	s.cache.Invalidate(keyBookDetail(bookID))
	return book, nil
}

// ToggleLike flips the like state; like counters appear in every listing.
func (s *Books) ToggleLike(ctx context.Context, bookID string) error {
	if err := gateEnabled(s.gate); err != nil {
		return err
	}
	if err := s.api.ToggleBookLike(ctx, bookID); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(keyBooks)
	return nil
}

// Reserve asks the owner for an exchange; availability appears in every
// listing, and a new exchange comes into existence.
func (s *Books) Reserve(ctx context.Context, bookID string, payload models.ReserveBookPayload) error {
	if err := gateEnabled(s.gate); err != nil {
		return err
	}
	if err := s.api.ReserveBook(ctx, bookID, payload); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(keyBooks)
	s.cache.InvalidatePrefix(keyExchanges)
	return nil
}

// RecordClick reports a detail view; pure telemetry, nothing cached changes.
func (s *Books) RecordClick(ctx context.Context, bookID string) error {
	if err := gateEnabled(s.gate); err != nil {
		return err
	}
	return s.api.RecordBookClick(ctx, bookID)
}
