package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/cache"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

var keyExchanges = cache.NewKey("exchanges")

func keyExchangeList(scope string, onlyActive bool) cache.Key {
	state := "all"
	if onlyActive {
		state = "active"
	}
	return cache.NewKey("exchanges", scope, state)
}

func keyExchangeDetail(exchangeID int) cache.Key {
	return cache.NewKey("exchanges", "detail", strconv.Itoa(exchangeID))
}

type ExchangesAPI interface {
	Exchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error)
	OwnedExchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error)
	RequestedExchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error)
	Exchange(ctx context.Context, exchangeID int) (models.Exchange, error)
	EditExchange(ctx context.Context, exchangeID int, payload models.EditExchangePayload) (models.Exchange, error)
	AcceptExchange(ctx context.Context, exchangeID int) (models.Exchange, error)
	DeclineExchange(ctx context.Context, exchangeID int, payload *models.ExchangeActionPayload) (models.Exchange, error)
	CancelExchange(ctx context.Context, exchangeID int, payload *models.ExchangeActionPayload) (models.Exchange, error)
	FinishExchange(ctx context.Context, exchangeID int) (models.Exchange, error)
}

var _ ExchangesAPI = (*api.Client)(nil)

// Exchanges caches exchange listings and invalidates the whole family after
// any lifecycle transition: every action changes the exchange's progress,
// which appears in all three listing scopes and in the counterparty's view.
type Exchanges struct {
	api   ExchangesAPI
	cache *cache.Cache
	gate  Gate
}

func NewExchanges(a ExchangesAPI, c *cache.Cache, gate Gate) *Exchanges {
	return &Exchanges{api: a, cache: c, gate: gate}
}

func (s *Exchanges) All(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyExchangeList("all", onlyActive), func(ctx context.Context) ([]models.Exchange, error) {
		return s.api.Exchanges(ctx, onlyActive)
	})
}

func (s *Exchanges) Owned(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyExchangeList("owned", onlyActive), func(ctx context.Context) ([]models.Exchange, error) {
		return s.api.OwnedExchanges(ctx, onlyActive)
	})
}

func (s *Exchanges) Requested(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	return cache.Fetch(ctx, s.cache, keyExchangeList("requested", onlyActive), func(ctx context.Context) ([]models.Exchange, error) {
		return s.api.RequestedExchanges(ctx, onlyActive)
	})
}

func (s *Exchanges) ByID(ctx context.Context, exchangeID int) (models.Exchange, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Exchange{}, err
	}
	return cache.Fetch(ctx, s.cache, keyExchangeDetail(exchangeID), func(ctx context.Context) (models.Exchange, error) {
		return s.api.Exchange(ctx, exchangeID)
	})
}

// Edit updates the meeting time.
func (s *Exchanges) Edit(ctx context.Context, exchangeID int, payload models.EditExchangePayload) (models.Exchange, error) {
	return s.mutate(func() (models.Exchange, error) {
		return s.api.EditExchange(ctx, exchangeID, payload)
	})
}

func (s *Exchanges) Accept(ctx context.Context, exchangeID int) (models.Exchange, error) {
	return s.mutate(func() (models.Exchange, error) {
		return s.api.AcceptExchange(ctx, exchangeID)
	})
}

func (s *Exchanges) Decline(ctx context.Context, exchangeID int, payload *models.ExchangeActionPayload) (models.Exchange, error) {
	return s.mutate(func() (models.Exchange, error) {
		return s.api.DeclineExchange(ctx, exchangeID, payload)
	})
}

func (s *Exchanges) Cancel(ctx context.Context, exchangeID int, payload *models.ExchangeActionPayload) (models.Exchange, error) {
	return s.mutate(func() (models.Exchange, error) {
		return s.api.CancelExchange(ctx, exchangeID, payload)
	})
}

// Finish completes the exchange; the book changes hands, so book listings
// become stale along with the exchange views.
func (s *Exchanges) Finish(ctx context.Context, exchangeID int) (models.Exchange, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Exchange{}, err
	}
	exchange, err := s.api.FinishExchange(ctx, exchangeID)
	if err != nil {
		return models.Exchange{}, err
	}
	s.cache.InvalidatePrefix(keyExchanges)
	s.cache.InvalidatePrefix(keyBooks)
	return exchange, nil
}

func (s *Exchanges) mutate(call func() (models.Exchange, error)) (models.Exchange, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Exchange{}, err
	}
	exchange, err := call()
	if err != nil {
		return models.Exchange{}, err
	}
	s.cache.InvalidatePrefix(keyExchanges)
	return exchange, nil
}
