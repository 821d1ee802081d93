package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookswap/internal/client/authz"
	"github.com/dmitrijs2005/bookswap/internal/client/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// command binds a REPL verb to a route and the gate chain protecting it.
// Gates run in declaration order; Protected always comes first so the later
// gates can assume a resolved token.
type command struct {
	route  string
	guards []guard.Guard
	help   string
	run    func(ctx context.Context, args []string) error
}

var protected = []guard.Guard{guard.Protected, guard.Onboarding}
var adminOnly = []guard.Guard{guard.Protected, guard.Onboarding, guard.Admin}

func (a *App) commands() map[string]*command {
	return map[string]*command{
		// Account.
		"login":    {help: "login — authenticate", run: a.login},
		"register": {help: "register — create an account", run: a.register},
		"logout":   {route: guard.RouteHome, guards: []guard.Guard{guard.Protected}, help: "logout — end the session", run: a.logout},
		"whoami":   {help: "whoami — show the current session", run: a.whoami},

		// Onboarding: the two-way gate lets this through only while the
		// profile is incomplete.
		"onboard": {route: guard.RouteOnboarding, guards: []guard.Guard{guard.Protected, guard.Onboarding}, help: "onboard — set up the profile", run: a.onboard},

		// Books.
		"feed":     {route: "/books/feed", guards: protected, help: "feed [query] — personalized book feed", run: a.feed},
		"books":    {route: "/books", guards: protected, help: "books [query] — browse the catalog", run: a.browse},
		"mybooks":  {route: "/books/my", guards: protected, help: "mybooks — list your books", run: a.myBooks},
		"book":     {route: "/books", guards: protected, help: "book <id> — show one book", run: a.showBook},
		"addbook":  {route: "/books/new", guards: protected, help: "addbook — list a new book", run: a.addBook},
		"editbook": {route: "/books", guards: protected, help: "editbook <id> — update a book", run: a.editBook},
		"photos":   {route: "/books", guards: protected, help: "photos <id> <file>... — replace a book's photos", run: a.uploadPhotos},
		"like":     {route: "/books", guards: protected, help: "like <id> — toggle a like", run: a.likeBook},
		"reserve":  {route: "/books", guards: protected, help: "reserve <id> — request an exchange", run: a.reserveBook},

		// Exchanges.
		"exchanges": {route: "/exchanges", guards: protected, help: "exchanges [owned|requested] — list exchanges", run: a.listExchanges},
		"exchange":  {route: "/exchanges", guards: protected, help: "exchange <id> — show one exchange", run: a.showExchange},
		"accept":    {route: "/exchanges", guards: protected, help: "accept <id> — accept a request", run: a.acceptExchange},
		"decline":   {route: "/exchanges", guards: protected, help: "decline <id> — decline a request", run: a.declineExchange},
		"cancel":    {route: "/exchanges", guards: protected, help: "cancel <id> — cancel an exchange", run: a.cancelExchange},
		"finish":    {route: "/exchanges", guards: protected, help: "finish <id> — mark an exchange finished", run: a.finishExchange},
		"meet":      {route: "/exchanges", guards: protected, help: "meet <id> <time> — set the meeting time", run: a.editMeetingTime},

		// Profile and reference data.
		"profile":     {route: "/profile", guards: protected, help: "profile — show your profile", run: a.showProfile},
		"editprofile": {route: "/profile", guards: protected, help: "editprofile — update your profile", run: a.editProfile},
		"picture":     {route: "/profile", guards: protected, help: "picture <file> — upload a profile picture", run: a.uploadPicture},
		"genres":      {route: "/reference", guards: protected, help: "genres — list genres", run: a.listGenres},
		"authors":     {route: "/reference", guards: protected, help: "authors — list authors", run: a.listAuthors},
		"languages":   {route: "/reference", guards: protected, help: "languages — list supported languages", run: a.listLanguages},
		"cities":      {route: "/reference", guards: protected, help: "cities — list cities", run: a.listCities},
		"locations":   {route: "/reference", guards: protected, help: "locations — list exchange locations", run: a.listLocations},
		"nearby":      {route: "/profile", guards: protected, help: "nearby [km] — readers around you", run: a.listNearby},

		// Back office.
		"admin": {route: "/admin", guards: adminOnly, help: "admin <books|approve|reject|users|ban|unban|stats|exchanges|force-finish|force-cancel>", run: a.adminCommand},
	}
}

// dispatch runs one command line. It reports false when the verb is unknown;
// gate refusals and handler errors are reported to the user and count as
// handled.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	c, ok := a.commands()[cmd]
	if !ok {
		return false
	}
	if len(c.guards) > 0 {
		switch d := guard.Chain(a.guardContext(ctx), c.route, c.guards...); d.Action {
		case guard.Pending:
			printlnFn("Session is still starting, try again in a moment.")
			return true
		case guard.Redirect:
			printlnFn(redirectHint(d))
			return true
		}
	}
	if err := c.run(ctx, args); err != nil {
		printlnFn("Error:", err.Error())
	}
	return true
}

// redirectHint translates a gate redirect into the CLI's equivalent of
// navigation: a pointer at the command that unblocks the user.
func redirectHint(d guard.Decision) string {
	switch {
	case d.Target == guard.RouteLogin:
		return "You need to be signed in for that. Run 'login' first."
	case d.Target == guard.RouteOnboarding:
		return "Finish setting up your profile first. Run 'onboard'."
	case d.From == guard.RouteOnboarding:
		return "Your profile is already set up."
	default:
		return "Admin access is required for that."
	}
}

func (a *App) repl(ctx context.Context, scanner *bufio.Scanner) {
	printlnFn("BookSwap CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "bookswap %s> ", a.status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			a.printHelp(ctx)
		default:
			if !a.dispatch(ctx, cmd, args) {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

func (a *App) printHelp(ctx context.Context) {
	if a.session.Token() == "" {
		printlnFn("Available commands: login, register, whoami, exit")
		return
	}
	printlnFn("Available commands: feed, books, mybooks, book, addbook, editbook, photos, like, reserve,")
	printlnFn("  exchanges, exchange, accept, decline, cancel, finish, meet,")
	printlnFn("  profile, editprofile, picture, genres, authors, languages, cities, locations, nearby,")
	printlnFn("  whoami, logout, exit")
	if a.authz.HasRole(ctx, authz.RoleAdmin) {
		printlnFn("Admin commands: admin books|approve|reject|users|ban|unban|stats|exchanges|force-finish|force-cancel")
	}
}
