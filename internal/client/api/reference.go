package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	var out []models.Genre
	err := c.doPrivate(ctx, http.MethodGet, "/books/genres/", nil, nil, &out)
	return out, err
}

func (c *Client) Genre(ctx context.Context, genreID int) (models.Genre, error) {
	var out models.Genre
	err := c.doPrivate(ctx, http.MethodGet, "/books/genres/"+strconv.Itoa(genreID)+"/", nil, nil, &out)
	return out, err
}

func (c *Client) Authors(ctx context.Context) ([]models.Author, error) {
	var out []models.Author
	err := c.doPrivate(ctx, http.MethodGet, "/books/authors/", nil, nil, &out)
	return out, err
}

func (c *Client) Author(ctx context.Context, authorID int) (models.Author, error) {
	var out models.Author
	err := c.doPrivate(ctx, http.MethodGet, "/books/authors/"+strconv.Itoa(authorID)+"/", nil, nil, &out)
	return out, err
}

func (c *Client) Languages(ctx context.Context) ([]models.Language, error) {
	var out []models.Language
	err := c.doPrivate(ctx, http.MethodGet, "/languages/", nil, nil, &out)
	return out, err
}

func (c *Client) Cities(ctx context.Context) ([]models.City, error) {
	var out []models.City
	err := c.doPrivate(ctx, http.MethodGet, "/geo/cities/", nil, nil, &out)
	return out, err
}

// ExchangeLocations lists handover points; filterByDistance asks the server
// to restrict the list to the user's area.
func (c *Client) ExchangeLocations(ctx context.Context, filterByDistance bool) ([]models.ExchangeLocation, error) {
	query := url.Values{"filter": []string{strconv.FormatBool(filterByDistance)}}
	var out []models.ExchangeLocation
	err := c.doPrivate(ctx, http.MethodGet, "/geo/exchange_locations/", query, nil, &out)
	return out, err
}

// NearestExchangeLocation returns the closest handover point, or nil when the
// backend answers 412 — its non-standard way of saying "no result" (for
// instance when the user has no location set).
func (c *Client) NearestExchangeLocation(ctx context.Context) (*models.ExchangeLocation, error) {
	var out models.ExchangeLocation
	err := c.doPrivate(ctx, http.MethodGet, "/geo/exchange_locations/nearest", nil, nil, &out)
	if err != nil {
		if IsStatus(err, http.StatusPreconditionFailed) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
