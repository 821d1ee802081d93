package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// Admin endpoints. The server enforces the admin role on every one of these;
// the client-side Admin guard only spares users a round trip that would 403.

func (c *Client) AdminBooks(ctx context.Context, params models.AdminListBooksParams) ([]models.Book, error) {
	v := url.Values{}
	if params.Status != "" {
		v.Set("status", params.Status)
	}
	if params.Limit > 0 {
		v.Set("limit", strconv.Itoa(params.Limit))
	}
	var out []models.Book
	err := c.doPrivate(ctx, http.MethodGet, "/admins/books/", v, nil, &out)
	return out, err
}

// AdminAcceptBook approves a pending book for the public catalog.
func (c *Client) AdminAcceptBook(ctx context.Context, bookID string) error {
	return c.doPrivate(ctx, http.MethodPost, "/admins/books/"+bookID+"/accept", nil, struct{}{}, nil)
}

// AdminRejectBook declines a pending book, optionally with a reason shown to
// the owner.
func (c *Client) AdminRejectBook(ctx context.Context, bookID string, reason string) error {
	payload := models.RejectBookPayload{Reason: reason}
	return c.doPrivate(ctx, http.MethodPost, "/admins/books/"+bookID+"/reject", nil, payload, nil)
}

func (c *Client) AdminUsers(ctx context.Context, params models.AdminListUsersParams) (models.CursorPage[models.Profile], error) {
	v := url.Values{}
	if params.Limit > 0 {
		v.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Cursor != "" {
		v.Set("cursor", params.Cursor)
	}
	if params.Search != "" {
		v.Set("search", params.Search)
	}
	if params.Banned != nil {
		v.Set("banned", strconv.FormatBool(*params.Banned))
	}
	var out models.CursorPage[models.Profile]
	err := c.doPrivate(ctx, http.MethodGet, "/admins/users/", v, nil, &out)
	return out, err
}

func (c *Client) AdminSetUserBan(ctx context.Context, userID int, banned bool) (models.Profile, error) {
	var out models.Profile
	payload := models.SetUserBanPayload{Banned: banned}
	err := c.doPrivate(ctx, http.MethodPost, "/admins/users/"+strconv.Itoa(userID)+"/ban", nil, payload, &out)
	return out, err
}

func (c *Client) AdminActiveUserStats(ctx context.Context, days int) ([]models.StatsPoint, error) {
	var out []models.StatsPoint
	err := c.doPrivate(ctx, http.MethodGet, "/admins/stats/active-users", daysValues(days), nil, &out)
	return out, err
}

func (c *Client) AdminRegistrationStats(ctx context.Context, days int) ([]models.StatsPoint, error) {
	var out []models.StatsPoint
	err := c.doPrivate(ctx, http.MethodGet, "/admins/stats/registrations", daysValues(days), nil, &out)
	return out, err
}

func (c *Client) AdminBookStats(ctx context.Context, days int) ([]models.BookStatsPoint, error) {
	var out []models.BookStatsPoint
	err := c.doPrivate(ctx, http.MethodGet, "/admins/stats/books/stats", daysValues(days), nil, &out)
	return out, err
}

func (c *Client) AdminBookStatsByID(ctx context.Context, bookID string, days int) ([]models.BookStatsPoint, error) {
	var out []models.BookStatsPoint
	err := c.doPrivate(ctx, http.MethodGet, "/admins/stats/books/"+bookID+"/stats", daysValues(days), nil, &out)
	return out, err
}

func (c *Client) AdminExchanges(ctx context.Context, cursor string, limit int) (models.CursorPage[models.Exchange], error) {
	v := url.Values{}
	if cursor != "" {
		v.Set("cursor", cursor)
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out models.CursorPage[models.Exchange]
	err := c.doPrivate(ctx, http.MethodGet, "/admins/exchanges/", v, nil, &out)
	return out, err
}

func (c *Client) AdminExchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	var out models.Exchange
	err := c.doPrivate(ctx, http.MethodGet, "/admins/exchanges/"+strconv.Itoa(exchangeID)+"/", nil, nil, &out)
	return out, err
}

// AdminForceFinishExchange completes a stuck exchange on behalf of both sides.
func (c *Client) AdminForceFinishExchange(ctx context.Context, exchangeID int) error {
	return c.doPrivate(ctx, http.MethodPost, "/admins/exchanges/"+strconv.Itoa(exchangeID)+"/force-finish", nil, struct{}{}, nil)
}

// AdminForceCancelExchange aborts a stuck exchange on behalf of both sides.
func (c *Client) AdminForceCancelExchange(ctx context.Context, exchangeID int) error {
	return c.doPrivate(ctx, http.MethodPost, "/admins/exchanges/"+strconv.Itoa(exchangeID)+"/force-cancel", nil, struct{}{}, nil)
}

func daysValues(days int) url.Values {
	if days <= 0 {
		days = 30
	}
	return url.Values{"days": []string{strconv.Itoa(days)}}
}
