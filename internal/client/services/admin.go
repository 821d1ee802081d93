package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/cache"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

var (
	keyAdminBooks     = cache.NewKey("admin", "books")
	keyAdminUsers     = cache.NewKey("admin", "users")
	keyAdminExchanges = cache.NewKey("admin", "exchanges")
)

func keyAdminStats(parts ...string) cache.Key {
	return cache.NewKey(append([]string{"admin", "stats"}, parts...)...)
}

type AdminAPI interface {
	AdminBooks(ctx context.Context, params models.AdminListBooksParams) ([]models.Book, error)
	AdminAcceptBook(ctx context.Context, bookID string) error
	AdminRejectBook(ctx context.Context, bookID string, reason string) error
	AdminUsers(ctx context.Context, params models.AdminListUsersParams) (models.CursorPage[models.Profile], error)
	AdminSetUserBan(ctx context.Context, userID int, banned bool) (models.Profile, error)
	AdminActiveUserStats(ctx context.Context, days int) ([]models.StatsPoint, error)
	AdminRegistrationStats(ctx context.Context, days int) ([]models.StatsPoint, error)
	AdminBookStats(ctx context.Context, days int) ([]models.BookStatsPoint, error)
	AdminBookStatsByID(ctx context.Context, bookID string, days int) ([]models.BookStatsPoint, error)
	AdminExchanges(ctx context.Context, cursor string, limit int) (models.CursorPage[models.Exchange], error)
	AdminExchange(ctx context.Context, exchangeID int) (models.Exchange, error)
	AdminForceFinishExchange(ctx context.Context, exchangeID int) error
	AdminForceCancelExchange(ctx context.Context, exchangeID int) error
}

var _ AdminAPI = (*api.Client)(nil)

// Admin is the back-office surface: moderation queue, user management, stats
// and exchange oversight. Moderation decisions also touch the public catalog,
// so those mutations invalidate the regular book family as well.
type Admin struct {
	api   AdminAPI
	cache *cache.Cache
	gate  Gate
}

func NewAdmin(a AdminAPI, c *cache.Cache, gate Gate) *Admin {
	return &Admin{api: a, cache: c, gate: gate}
}

func (s *Admin) Books(ctx context.Context, params models.AdminListBooksParams) ([]models.Book, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	v := url.Values{}
	if params.Status != "" {
		v.Set("status", params.Status)
	}
	if params.Limit > 0 {
		v.Set("limit", strconv.Itoa(params.Limit))
	}
	return cache.Fetch(ctx, s.cache, paramsKey(keyAdminBooks, v), func(ctx context.Context) ([]models.Book, error) {
		return s.api.AdminBooks(ctx, params)
	})
}

// AcceptBook approves a pending book; it enters the public catalog.
func (s *Admin) AcceptBook(ctx context.Context, bookID string) error {
	if err := gateEnabled(s.gate); err != nil {
		return err
	}
	if err := s.api.AdminAcceptBook(ctx, bookID); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(keyAdminBooks)
	s.cache.InvalidatePrefix(keyBooks)
	return nil
}

// RejectBook declines a pending book, optionally with a reason for the owner.
func (s *Admin) RejectBook(ctx context.Context, bookID string, reason string) error {
	if err := gateEnabled(s.gate); err != nil {
		return err
	}
	if err := s.api.AdminRejectBook(ctx, bookID, reason); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(keyAdminBooks)
	s.cache.InvalidatePrefix(keyBooks)
	return nil
}

func (s *Admin) Users(ctx context.Context, params models.AdminListUsersParams) (models.CursorPage[models.Profile], error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.CursorPage[models.Profile]{}, err
	}
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
	return cache.Fetch(ctx, s.cache, paramsKey(keyAdminUsers, v), func(ctx context.Context) (models.CursorPage[models.Profile], error) {
		return s.api.AdminUsers(ctx, params)
	})
}

func (s *Admin) SetUserBan(ctx context.Context, userID int, banned bool) (models.Profile, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Profile{}, err
	}
	profile, err := s.api.AdminSetUserBan(ctx, userID, banned)
	if err != nil {
		return models.Profile{}, err
	}
	s.cache.InvalidatePrefix(keyAdminUsers)
	return profile, nil
}

func (s *Admin) ActiveUserStats(ctx context.Context, days int) ([]models.StatsPoint, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	key := keyAdminStats("active-users", strconv.Itoa(days))
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.StatsPoint, error) {
		return s.api.AdminActiveUserStats(ctx, days)
	})
}

func (s *Admin) RegistrationStats(ctx context.Context, days int) ([]models.StatsPoint, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	key := keyAdminStats("registrations", strconv.Itoa(days))
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.StatsPoint, error) {
		return s.api.AdminRegistrationStats(ctx, days)
	})
}

func (s *Admin) BookStats(ctx context.Context, days int) ([]models.BookStatsPoint, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	key := keyAdminStats("books", strconv.Itoa(days))
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.BookStatsPoint, error) {
		return s.api.AdminBookStats(ctx, days)
	})
}

func (s *Admin) BookStatsByID(ctx context.Context, bookID string, days int) ([]models.BookStatsPoint, error) {
	if err := gateEnabled(s.gate); err != nil {
		return nil, err
	}
	key := keyAdminStats("books", bookID, strconv.Itoa(days))
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.BookStatsPoint, error) {
		return s.api.AdminBookStatsByID(ctx, bookID, days)
	})
}

func (s *Admin) Exchanges(ctx context.Context, cursor string, limit int) (models.CursorPage[models.Exchange], error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.CursorPage[models.Exchange]{}, err
	}
	v := url.Values{}
	if cursor != "" {
		v.Set("cursor", cursor)
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return cache.Fetch(ctx, s.cache, paramsKey(keyAdminExchanges, v), func(ctx context.Context) (models.CursorPage[models.Exchange], error) {
		return s.api.AdminExchanges(ctx, cursor, limit)
	})
}

func (s *Admin) Exchange(ctx context.Context, exchangeID int) (models.Exchange, error) {
	if err := gateEnabled(s.gate); err != nil {
		return models.Exchange{}, err
	}
	key := cache.NewKey("admin", "exchanges", "detail", strconv.Itoa(exchangeID))
	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (models.Exchange, error) {
		return s.api.AdminExchange(ctx, exchangeID)
	})
}

// ForceFinishExchange completes a stuck exchange on behalf of both sides.
func (s *Admin) ForceFinishExchange(ctx context.Context, exchangeID int) error {
	return s.forceAction(func() error { return s.api.AdminForceFinishExchange(ctx, exchangeID) })
}

// ForceCancelExchange aborts a stuck exchange on behalf of both sides.
func (s *Admin) ForceCancelExchange(ctx context.Context, exchangeID int) error {
	return s.forceAction(func() error { return s.api.AdminForceCancelExchange(ctx, exchangeID) })
}

// forceAction invalidates both the admin view and the participants' own
// exchange listings, since the affected users may be browsing this client.
func (s *Admin) forceAction(call func() error) error {
	if err := gateEnabled(s.gate); err != nil {
		return err
	}
	if err := call(); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(keyAdminExchanges)
	s.cache.InvalidatePrefix(keyExchanges)
	return nil
}
