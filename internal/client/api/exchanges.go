package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

func onlyActiveValues(onlyActive bool) url.Values {
	v := url.Values{}
	v.Set("only_active", strconv.FormatBool(onlyActive))
	return v
}

// Exchanges returns every exchange the user participates in.
func (c *Client) Exchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	var out []models.Exchange
	err := c.doPrivate(ctx, http.MethodGet, "/exchanges/", onlyActiveValues(onlyActive), nil, &out)
	return out, err
}

// OwnedExchanges returns exchanges where the user is the book owner.
func (c *Client) OwnedExchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	var out []models.Exchange
	err := c.doPrivate(ctx, http.MethodGet, "/exchanges/owned", onlyActiveValues(onlyActive), nil, &out)
	return out, err
}

// RequestedExchanges returns exchanges where the user is the requester.
func (c *Client) RequestedExchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	var out []models.Exchange
	err := c.doPrivate(ctx, http.MethodGet, "/exchanges/requested", onlyActiveValues(onlyActive), nil, &out)
	return out, err
}

func (c *Client) Exchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	var out models.Exchange
	err := c.doPrivate(ctx, http.MethodGet, "/exchanges/"+strconv.Itoa(exchangeID)+"/", nil, nil, &out)
	return out, err
}

// EditExchange updates the meeting time.
func (c *Client) EditExchange(ctx context.Context, exchangeID int, payload models.EditExchangePayload) (models.Exchange, error) {
	var out models.Exchange
	err := c.doPrivate(ctx, http.MethodPatch, "/exchanges/"+strconv.Itoa(exchangeID)+"/", nil, payload, &out)
	return out, err
}

func (c *Client) AcceptExchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	return c.exchangeAction(ctx, exchangeID, "accept", nil)
}

func (c *Client) DeclineExchange(ctx context.Context, exchangeID int, payload *models.ExchangeActionPayload) (models.Exchange, error) {
	return c.exchangeAction(ctx, exchangeID, "decline", payload)
}

func (c *Client) CancelExchange(ctx context.Context, exchangeID int, payload *models.ExchangeActionPayload) (models.Exchange, error) {
	return c.exchangeAction(ctx, exchangeID, "cancel", payload)
}

func (c *Client) FinishExchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	return c.exchangeAction(ctx, exchangeID, "finish", nil)
}

func (c *Client) exchangeAction(ctx context.Context, exchangeID int, action string, payload *models.ExchangeActionPayload) (models.Exchange, error) {
	var body any
	if payload != nil {
		body = payload
	}
	var out models.Exchange
	err := c.doPrivate(ctx, http.MethodPatch, "/exchanges/"+strconv.Itoa(exchangeID)+"/"+action, nil, body, &out)
	return out, err
}
