package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// bookFilterValues maps the allowed filter set onto query parameters; unset
// fields are omitted, except query which the backend expects even when empty.
func bookFilterValues(f models.BookFilters) url.Values {
	v := url.Values{}
	v.Set("query", f.Query)
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
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
	return v
}

// BooksForYou returns the personalized feed.
func (c *Client) BooksForYou(ctx context.Context, filters models.BookFilters) ([]models.Book, error) {
	var out []models.Book
	err := c.doPrivate(ctx, http.MethodGet, "/books/for_you", bookFilterValues(filters), nil, &out)
	return out, err
}

// Books returns the general catalog.
func (c *Client) Books(ctx context.Context, filters models.BookFilters) ([]models.Book, error) {
	var out []models.Book
	err := c.doPrivate(ctx, http.MethodGet, "/books/", bookFilterValues(filters), nil, &out)
	return out, err
}

// MyBooks returns books owned by the current user.
func (c *Client) MyBooks(ctx context.Context) ([]models.Book, error) {
	var out []models.Book
	err := c.doPrivate(ctx, http.MethodGet, "/books/my", nil, nil, &out)
	return out, err
}

func (c *Client) Book(ctx context.Context, bookID string) (models.Book, error) {
	var out models.Book
	err := c.doPrivate(ctx, http.MethodGet, "/books/"+bookID+"/", nil, nil, &out)
	return out, err
}

func (c *Client) CreateBook(ctx context.Context, payload models.CreateBookPayload) (models.Book, error) {
	var out models.Book
	err := c.doPrivate(ctx, http.MethodPost, "/books/create", nil, payload, &out)
	return out, err
}

func (c *Client) UpdateBook(ctx context.Context, bookID string, payload models.UpdateBookPayload) (models.Book, error) {
	var out models.Book
	err := c.doPrivate(ctx, http.MethodPatch, "/books/"+bookID+"/", nil, payload, &out)
	return out, err
}

// UploadBookPhotos replaces the photo set of a book; files maps file names to
// contents.
func (c *Client) UploadBookPhotos(ctx context.Context, bookID string, files map[string][]byte) (models.Book, error) {
	var out models.Book
	err := c.doMultipart(ctx, http.MethodPut, "/books/"+bookID+"/photos", "photos", files, &out)
	return out, err
}

// ToggleBookLike flips the like state of a book for the current user.
func (c *Client) ToggleBookLike(ctx context.Context, bookID string) error {
	return c.doPrivate(ctx, http.MethodPost, "/books/"+bookID+"/like", nil, struct{}{}, nil)
}

// ReserveBook asks the owner for an exchange.
func (c *Client) ReserveBook(ctx context.Context, bookID string, payload models.ReserveBookPayload) error {
	return c.doPrivate(ctx, http.MethodPost, "/books/"+bookID+"/reserve", nil, payload, nil)
}

// RecordBookClick reports a detail view for engagement stats. Fire-and-forget
// from the caller's perspective.
func (c *Client) RecordBookClick(ctx context.Context, bookID string) error {
	return c.doPrivate(ctx, http.MethodPost, "/books/"+bookID+"/click", nil, struct{}{}, nil)
}
