package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

type fakeExchangesAPI struct {
	listCalls int
	exchange  models.Exchange
}

func (f *fakeExchangesAPI) Exchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	f.listCalls++
	return []models.Exchange{f.exchange}, nil
}

func (f *fakeExchangesAPI) OwnedExchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	f.listCalls++
	return []models.Exchange{f.exchange}, nil
}

func (f *fakeExchangesAPI) RequestedExchanges(ctx context.Context, onlyActive bool) ([]models.Exchange, error) {
	f.listCalls++
	return []models.Exchange{f.exchange}, nil
}

func (f *fakeExchangesAPI) Exchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	return f.exchange, nil
}

func (f *fakeExchangesAPI) EditExchange(ctx context.Context, exchangeID int, payload models.EditExchangePayload) (models.Exchange, error) {
	return f.exchange, nil
}

func (f *fakeExchangesAPI) AcceptExchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	return f.exchange, nil
}

func (f *fakeExchangesAPI) DeclineExchange(ctx context.Context, exchangeID int, payload *models.ExchangeActionPayload) (models.Exchange, error) {
	return f.exchange, nil
}

func (f *fakeExchangesAPI) CancelExchange(ctx context.Context, exchangeID int, payload *models.ExchangeActionPayload) (models.Exchange, error) {
	return f.exchange, nil
}

func (f *fakeExchangesAPI) FinishExchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	return f.exchange, nil
}

func TestExchanges_ListingsCachedPerScopeAndState(t *testing.T) {
	api := &fakeExchangesAPI{exchange: models.Exchange{ID: 7}}
	s := NewExchanges(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.All(ctx, true)
	require.NoError(t, err)
	_, err = s.All(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCalls)

	_, err = s.All(ctx, false)
	require.NoError(t, err)
	_, err = s.Owned(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 3, api.listCalls)
}

func TestExchanges_AcceptInvalidatesListings(t *testing.T) {
	api := &fakeExchangesAPI{exchange: models.Exchange{ID: 7}}
	s := NewExchanges(api, newTestCache(), openGate())
	ctx := context.Background()

	_, err := s.Requested(ctx, true)
	require.NoError(t, err)

	_, err = s.Accept(ctx, 7)
	require.NoError(t, err)

	_, err = s.Requested(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestExchanges_FinishInvalidatesBooksToo(t *testing.T) {
	c := newTestCache()
	api := &fakeExchangesAPI{exchange: models.Exchange{ID: 7, Progress: models.ExchangeFinished}}
	s := NewExchanges(api, c, openGate())
	ctx := context.Background()

	c.Set(keyBooksMine, []models.Book{{ID: "b1"}})
	c.Set(keyExchangeDetail(7), models.Exchange{ID: 7})

	_, err := s.Finish(ctx, 7)
	require.NoError(t, err)

	_, ok := c.Get(keyBooksMine)
	assert.False(t, ok)
	_, ok = c.Get(keyExchangeDetail(7))
	assert.False(t, ok)
}

func TestExchanges_GateClosed(t *testing.T) {
	s := NewExchanges(&fakeExchangesAPI{}, newTestCache(), &fakeGate{ready: true})

	_, err := s.Cancel(context.Background(), 7, nil)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}
