package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

func (a *App) listExchanges(ctx context.Context, args []string) error {
	scope := "all"
	if len(args) > 0 {
		scope = args[0]
	}

	var list []models.Exchange
	var err error
	switch scope {
	case "all":
		list, err = a.exchanges.All(ctx, true)
	case "owned":
		list, err = a.exchanges.Owned(ctx, true)
	case "requested":
		list, err = a.exchanges.Requested(ctx, true)
	default:
		printlnFn("Usage: exchanges [owned|requested]")
		return nil
	}
	if err != nil {
		return err
	}

	if len(list) == 0 {
		printlnFn("No active exchanges.")
		return nil
	}
	for _, e := range list {
		printlnFn(formatExchangeLine(e))
	}
	return nil
}

func (a *App) showExchange(ctx context.Context, args []string) error {
	id, ok := exchangeID(args, "exchange <id>")
	if !ok {
		return nil
	}
	e, err := a.exchanges.ByID(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(formatExchangeLine(e))
	printlnFn("  owner:", e.Owner.Username, " requester:", e.Requester.Username)
	if e.MeetingTime != nil {
		printlnFn("  meeting:", *e.MeetingTime)
	}
	if e.CancelReason != nil {
		printlnFn("  cancel reason:", *e.CancelReason)
	}
	return nil
}

func (a *App) acceptExchange(ctx context.Context, args []string) error {
	id, ok := exchangeID(args, "accept <id>")
	if !ok {
		return nil
	}
	e, err := a.exchanges.Accept(ctx, id)
	if err != nil {
		return err
	}
	printlnFn("Accepted. Agree on a meeting time with 'meet", strconv.Itoa(e.ID), "<time>'.")
	return nil
}

func (a *App) declineExchange(ctx context.Context, args []string) error {
	id, ok := exchangeID(args, "decline <id>")
	if !ok {
		return nil
	}
	if _, err := a.exchanges.Decline(ctx, id, nil); err != nil {
		return err
	}
	printlnFn("Declined.")
	return nil
}

func (a *App) cancelExchange(ctx context.Context, args []string) error {
	id, ok := exchangeID(args, "cancel <id>")
	if !ok {
		return nil
	}
	reason, err := GetOptionalText(a.reader, "Reason", a.out)
	if err != nil {
		return err
	}
	var payload *models.ExchangeActionPayload
	if reason != nil {
		payload = &models.ExchangeActionPayload{CancelReason: reason}
	}
	if _, err := a.exchanges.Cancel(ctx, id, payload); err != nil {
		return err
	}
	printlnFn("Canceled.")
	return nil
}

func (a *App) finishExchange(ctx context.Context, args []string) error {
	id, ok := exchangeID(args, "finish <id>")
	if !ok {
		return nil
	}
	if _, err := a.exchanges.Finish(ctx, id); err != nil {
		return err
	}
	printlnFn("Finished. Happy reading!")
	return nil
}

func (a *App) editMeetingTime(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: meet <id> <time>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: meet <id> <time>")
		return nil
	}
	meeting := args[1]
	if _, err := a.exchanges.Edit(ctx, id, models.EditExchangePayload{MeetingTime: &meeting}); err != nil {
		return err
	}
	printlnFn("Meeting time set.")
	return nil
}

func exchangeID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		printlnFn("Usage:", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage:", usage)
		return 0, false
	}
	return id, true
}

func formatExchangeLine(e models.Exchange) string {
	return fmt.Sprintf("#%d  %q  %s -> %s  [%s]",
		e.ID, e.Book.Title, e.Owner.Username, e.Requester.Username, e.Progress)
}
