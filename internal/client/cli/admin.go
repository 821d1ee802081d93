package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

const adminUsage = "Usage: admin <books|approve|reject|users|ban|unban|stats|exchanges|force-finish|force-cancel>"

// adminCommand multiplexes the back-office verbs. The Admin gate has already
// run by the time this executes; the server still enforces the role on every
// request.
func (a *App) adminCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn(adminUsage)
		return nil
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "books":
		return a.adminBooks(ctx, rest)
	case "approve":
		return a.adminApprove(ctx, rest)
	case "reject":
		return a.adminReject(ctx, rest)
	case "users":
		return a.adminUsers(ctx, rest)
	case "ban":
		return a.adminSetBan(ctx, rest, true)
	case "unban":
		return a.adminSetBan(ctx, rest, false)
	case "stats":
		return a.adminStats(ctx, rest)
	case "exchanges":
		return a.adminExchanges(ctx, rest)
	case "force-finish":
		return a.adminForce(ctx, rest, a.admin.ForceFinishExchange, "finished")
	case "force-cancel":
		return a.adminForce(ctx, rest, a.admin.ForceCancelExchange, "canceled")
	default:
		printlnFn(adminUsage)
		return nil
	}
}

// adminBooks lists the moderation queue; pass a status to see other slices.
func (a *App) adminBooks(ctx context.Context, args []string) error {
	status := "pending"
	if len(args) > 0 {
		status = args[0]
	}
	books, err := a.admin.Books(ctx, models.AdminListBooksParams{Status: status})
	if err != nil {
		return err
	}
	if len(books) == 0 {
		printlnFn("No", status, "books.")
		return nil
	}
	for _, b := range books {
		printlnFn(formatBookLine(b))
	}
	return nil
}

func (a *App) adminApprove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: admin approve <book-id>")
		return nil
	}
	if err := a.admin.AcceptBook(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("Approved.")
	return nil
}

func (a *App) adminReject(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: admin reject <book-id>")
		return nil
	}
	reason, err := GetSimpleText(a.reader, "Reason shown to the owner (optional)", a.out)
	if err != nil {
		return err
	}
	if err := a.admin.RejectBook(ctx, args[0], reason); err != nil {
		return err
	}
	printlnFn("Rejected.")
	return nil
}

func (a *App) adminUsers(ctx context.Context, args []string) error {
	params := models.AdminListUsersParams{Search: strings.Join(args, " ")}
	for {
		page, err := a.admin.Users(ctx, params)
		if err != nil {
			return err
		}
		for _, u := range page.Items {
			banned := ""
			if u.Banned {
				banned = "  [banned]"
			}
			printlnFn(fmt.Sprintf("%d  %s <%s>%s", u.ID, u.Username, u.Email, banned))
		}
		if page.NextCursor == nil {
			return nil
		}
		more, err := GetSimpleText(a.reader, "More? (y/n)", a.out)
		if err != nil || more != "y" {
			return err
		}
		params.Cursor = *page.NextCursor
	}
}

func (a *App) adminSetBan(ctx context.Context, args []string, banned bool) error {
	if len(args) == 0 {
		printlnFn("Usage: admin ban|unban <user-id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: admin ban|unban <user-id>")
		return nil
	}
	u, err := a.admin.SetUserBan(ctx, id, banned)
	if err != nil {
		return err
	}
	state := "unbanned"
	if u.Banned {
		state = "banned"
	}
	printlnFn("User", u.Username, "is now", state+".")
	return nil
}

// adminStats prints the platform time-series for the given window (days).
func (a *App) adminStats(ctx context.Context, args []string) error {
	days := 30
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Usage: admin stats [days]")
			return nil
		}
		days = d
	}

	active, err := a.admin.ActiveUserStats(ctx, days)
	if err != nil {
		return err
	}
	registrations, err := a.admin.RegistrationStats(ctx, days)
	if err != nil {
		return err
	}
	books, err := a.admin.BookStats(ctx, days)
	if err != nil {
		return err
	}

	printlnFn("Active users:")
	for _, p := range active {
		printlnFn(fmt.Sprintf("  %s  %d", p.Date, p.Count))
	}
	printlnFn("Registrations:")
	for _, p := range registrations {
		printlnFn(fmt.Sprintf("  %s  %d", p.Date, p.Count))
	}
	printlnFn("Book engagement:")
	for _, p := range books {
		printlnFn(fmt.Sprintf("  %s  views=%d likes=%d reserves=%d", p.Date, p.Views, p.Likes, p.Reserves))
	}
	return nil
}

func (a *App) adminExchanges(ctx context.Context, args []string) error {
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Usage: admin exchanges [id]")
			return nil
		}
		e, err := a.admin.Exchange(ctx, id)
		if err != nil {
			return err
		}
		printlnFn(formatExchangeLine(e))
		return nil
	}

	page, err := a.admin.Exchanges(ctx, "", 0)
	if err != nil {
		return err
	}
	for _, e := range page.Items {
		printlnFn(formatExchangeLine(e))
	}
	return nil
}

func (a *App) adminForce(ctx context.Context, args []string, action func(context.Context, int) error, verb string) error {
	if len(args) == 0 {
		printlnFn("Usage: admin force-finish|force-cancel <exchange-id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: admin force-finish|force-cancel <exchange-id>")
		return nil
	}
	if err := action(ctx, id); err != nil {
		return err
	}
	printlnFn("Exchange", args[0], verb+".")
	return nil
}
