package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

func TestEndpoint_PreservesTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL+"/api/v1")

	assert.Equal(t, srv.URL+"/api/v1/books/", c.endpoint("/books/", nil))
	assert.Equal(t, srv.URL+"/api/v1/users/me/", c.endpoint("/users/me/", nil))
	assert.Equal(t, srv.URL+"/api/v1/books/my", c.endpoint("/books/my", nil))

	q := url.Values{"query": []string{"solaris"}}
	assert.Equal(t, srv.URL+"/api/v1/books/?query=solaris", c.endpoint("/books/", q))
}

func TestDo_TransportErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, _ := newTestClient(t, srv.URL)
	srv.Close()

	_, err := c.MyBooks(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDo_Non2xxBecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"book not found"}`))
	}))
	defer srv.Close()

	c, tokens := newTestClient(t, srv.URL)
	tokens.Set("tok")

	_, err := c.Book(context.Background(), "missing")
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Contains(t, se.Body, "book not found")
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(err, http.StatusUnauthorized))
}

func TestStatusError_MatchesUnauthorized(t *testing.T) {
	assert.ErrorIs(t, &StatusError{Code: 401}, ErrUnauthorized)
	assert.ErrorIs(t, &StatusError{Code: 403}, ErrUnauthorized)
	assert.NotErrorIs(t, &StatusError{Code: 404}, ErrUnauthorized)
}

func TestNearestExchangeLocation_412MeansNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
	}))
	defer srv.Close()

	c, tokens := newTestClient(t, srv.URL)
	seedCSRF(c, "csrf-1")
	tokens.Set("tok")

	loc, err := c.NearestExchangeLocation(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestBookFilterValues(t *testing.T) {
	v := bookFilterValues(models.BookFilters{})
	// The backend expects the query parameter even when empty.
	assert.Equal(t, "query=", v.Encode())

	v = bookFilterValues(models.BookFilters{Query: "lem", Genre: "sci-fi", Distance: 10, Limit: 20})
	assert.Equal(t, "lem", v.Get("query"))
	assert.Equal(t, "sci-fi", v.Get("genre"))
	assert.Equal(t, "10", v.Get("distance"))
	assert.Equal(t, "20", v.Get("limit"))
	assert.Empty(t, v.Get("sort"))
}
