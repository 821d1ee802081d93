// Package cli is the interactive BookSwap client. A REPL plays the role a
// router plays in a browser: every command is bound to a route and a chain
// of navigation gates, and runs only when the chain allows it.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/authz"
	"github.com/dmitrijs2005/bookswap/internal/client/cache"
	"github.com/dmitrijs2005/bookswap/internal/client/config"
	"github.com/dmitrijs2005/bookswap/internal/client/guard"
	"github.com/dmitrijs2005/bookswap/internal/client/services"
	"github.com/dmitrijs2005/bookswap/internal/client/session"
	"github.com/dmitrijs2005/bookswap/internal/client/token"
	"github.com/dmitrijs2005/bookswap/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	session *session.Controller
	authz   *authz.Resolver

	books     *services.Books
	exchanges *services.Exchanges
	profiles  *services.Profiles
	reference *services.Reference
	admin     *services.Admin

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logging.NewDefault(cfg.LogLevel)

	tokens := token.NewStore()
	apiClient, err := api.New(cfg, tokens, log)
	if err != nil {
		return nil, err
	}

	c := cache.New(cfg.CacheSize, cfg.CacheTTL)
	sess := session.NewController(tokens, apiClient, c, log)
	profiles := services.NewProfiles(apiClient, c, sess)

	return &App{
		config:    cfg,
		log:       log,
		session:   sess,
		authz:     authz.NewResolver(sess, profiles),
		books:     services.NewBooks(apiClient, c, sess),
		exchanges: services.NewExchanges(apiClient, c, sess),
		profiles:  profiles,
		reference: services.NewReference(apiClient, c, sess),
		admin:     services.NewAdmin(apiClient, c, sess),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run bootstraps the session (silent restore when a previous one left its
// cookies behind) and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.session.Close()
	a.session.Bootstrap(ctx)
	a.repl(ctx, bufio.NewScanner(os.Stdin))
}

// guardContext assembles the snapshot the navigation gates decide over.
// The profile lookup reads through the cache, so building a snapshot per
// command costs a request at most once per session.
func (a *App) guardContext(ctx context.Context) guard.Context {
	gc := guard.Context{
		SessionReady: a.session.Ready(),
		Token:        a.session.Token(),
	}
	if gc.SessionReady && gc.Token != "" {
		onboarded, err := a.profiles.Onboarded(ctx)
		// A profile that failed to load counts as not onboarded.
		gc.ProfileKnown = true
		gc.Onboarded = err == nil && onboarded
	}
	state := a.authz.Resolve(ctx)
	gc.AuthzReady = state.IsReady
	gc.IsAdmin = state.Has(authz.RoleAdmin)
	return gc
}

func (a *App) status() string {
	if claims, ok := a.session.TokenClaims(); ok && claims.Subject != "" {
		return "(" + claims.Subject + ") "
	}
	if a.session.Token() != "" {
		return "(signed in) "
	}
	return ""
}
