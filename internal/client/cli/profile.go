package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

func (a *App) showProfile(ctx context.Context, _ []string) error {
	p, err := a.profiles.Me(ctx)
	if err != nil {
		return err
	}
	printlnFn("Username:", p.Username)
	printlnFn("Email:   ", p.Email)
	if p.Bio != nil {
		printlnFn("Bio:     ", *p.Bio)
	}
	if p.City != nil {
		printlnFn("City:    ", p.City.Name)
	}
	if len(p.FavoriteGenres) > 0 {
		names := make([]string, 0, len(p.FavoriteGenres))
		for _, g := range p.FavoriteGenres {
			names = append(names, g.Name)
		}
		printlnFn("Genres:  ", strings.Join(names, ", "))
	}
	if len(p.Roles) > 0 {
		printlnFn("Roles:   ", strings.Join(p.Roles, ", "))
	}
	if !p.IsOnboarded {
		printlnFn("Profile incomplete, run 'onboard'.")
	}
	return nil
}

func (a *App) editProfile(ctx context.Context, _ []string) error {
	var payload models.UpdateProfilePayload
	var err error

	if payload.Username, err = GetOptionalText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if payload.Bio, err = GetOptionalText(a.reader, "Bio", a.out); err != nil {
		return err
	}
	if payload.CityID, err = a.promptCity(ctx); err != nil {
		return err
	}

	if _, err := a.profiles.Update(ctx, payload); err != nil {
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

// onboard walks a fresh account through the minimum the platform needs: a
// city for distance-based listings and a favorite-genre set for the feed.
func (a *App) onboard(ctx context.Context, _ []string) error {
	printlnFn("Let's set up your profile.")

	cityID, err := a.promptCity(ctx)
	if err != nil {
		return err
	}
	var payload models.UpdateProfilePayload
	payload.CityID = cityID
	if payload.Bio, err = GetOptionalText(a.reader, "A few words about yourself", a.out); err != nil {
		return err
	}
	if _, err := a.profiles.Update(ctx, payload); err != nil {
		return err
	}

	if err := a.listGenres(ctx, nil); err != nil {
		return err
	}
	raw, err := GetSimpleText(a.reader, "Favorite genre ids (comma-separated)", a.out)
	if err != nil {
		return err
	}
	ids, err := parseIDList(raw)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		if _, err := a.profiles.UpdateFavoriteGenres(ctx, ids); err != nil {
			return err
		}
	}

	printlnFn("All set. Try 'feed' to see books picked for you.")
	return nil
}

func (a *App) promptCity(ctx context.Context) (*int, error) {
	cities, err := a.reference.Cities(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cities {
		printlnFn(fmt.Sprintf("%d  %s", c.ID, c.Name))
	}
	raw, err := GetOptionalText(a.reader, "City id", a.out)
	if err != nil || raw == nil {
		return nil, err
	}
	id, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, fmt.Errorf("expected a city id, got %q", *raw)
	}
	return &id, nil
}

func (a *App) uploadPicture(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: picture <file>")
		return nil
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	files := map[string][]byte{filepath.Base(args[0]): content}
	if _, err := a.profiles.UpdatePicture(ctx, files); err != nil {
		return err
	}
	printlnFn("Picture updated.")
	return nil
}

func (a *App) listNearby(ctx context.Context, args []string) error {
	radius := 0
	if len(args) > 0 {
		r, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Usage: nearby [km]")
			return nil
		}
		radius = r
	}
	users, err := a.profiles.Nearby(ctx, radius)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		printlnFn("Nobody nearby. Set your city with 'editprofile' to widen the search.")
		return nil
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%s  %.1f km", u.Username, u.Distance))
	}
	return nil
}

func (a *App) listGenres(ctx context.Context, _ []string) error {
	genres, err := a.reference.Genres(ctx)
	if err != nil {
		return err
	}
	for _, g := range genres {
		printlnFn(fmt.Sprintf("%d  %s", g.ID, g.Name))
	}
	return nil
}

func (a *App) listAuthors(ctx context.Context, _ []string) error {
	authors, err := a.reference.Authors(ctx)
	if err != nil {
		return err
	}
	for _, au := range authors {
		printlnFn(fmt.Sprintf("%d  %s", au.ID, au.Name))
	}
	return nil
}

func (a *App) listLanguages(ctx context.Context, _ []string) error {
	languages, err := a.reference.Languages(ctx)
	if err != nil {
		return err
	}
	for _, l := range languages {
		printlnFn(fmt.Sprintf("%s  %s", l.Code, l.Name))
	}
	return nil
}

func (a *App) listCities(ctx context.Context, _ []string) error {
	cities, err := a.reference.Cities(ctx)
	if err != nil {
		return err
	}
	for _, c := range cities {
		printlnFn(fmt.Sprintf("%d  %s", c.ID, c.Name))
	}
	return nil
}

func (a *App) listLocations(ctx context.Context, _ []string) error {
	locations, err := a.reference.ExchangeLocations(ctx, false)
	if err != nil {
		return err
	}
	for _, l := range locations {
		printlnFn(fmt.Sprintf("%d  %s (%s)", l.ID, l.Name, l.Address))
	}
	if nearest, err := a.reference.NearestExchangeLocation(ctx); err == nil && nearest != nil {
		printlnFn("Nearest to you:", nearest.Name)
	}
	return nil
}

func parseIDList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("expected numeric ids, got %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
