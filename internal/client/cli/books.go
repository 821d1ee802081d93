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

func (a *App) feed(ctx context.Context, args []string) error {
	books, err := a.books.ForYou(ctx, models.BookFilters{Query: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	a.printBooks(books)
	return nil
}

func (a *App) browse(ctx context.Context, args []string) error {
	books, err := a.books.All(ctx, models.BookFilters{Query: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	a.printBooks(books)
	return nil
}

func (a *App) myBooks(ctx context.Context, _ []string) error {
	books, err := a.books.Mine(ctx)
	if err != nil {
		return err
	}
	a.printBooks(books)
	return nil
}

func (a *App) showBook(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: book <id>")
		return nil
	}
	book, err := a.books.ByID(ctx, args[0])
	if err != nil {
		return err
	}

	// Viewing a detail page counts toward engagement stats; failures here
	// must not disturb the user.
	_ = a.books.RecordClick(ctx, book.ID)

	printlnFn(formatBookLine(book))
	if book.Description != nil {
		printlnFn(" ", *book.Description)
	}
	printlnFn("  condition:", book.Condition, " language:", book.LanguageCode)
	printlnFn("  location:", book.ExchangeLocation.Name)
	if book.Owner != nil {
		printlnFn("  owner:", book.Owner.Username)
	}
	printlnFn("  likes:", book.TotalLikes, " views:", book.TotalViews)
	return nil
}

func (a *App) addBook(ctx context.Context, _ []string) error {
	payload, err := a.promptNewBook(ctx)
	if err != nil {
		return err
	}
	book, err := a.books.Create(ctx, payload)
	if err != nil {
		return err
	}
	printlnFn("Listed:", book.Title, "(pending moderator approval)")
	return nil
}

func (a *App) promptNewBook(ctx context.Context) (models.CreateBookPayload, error) {
	var p models.CreateBookPayload
	var err error

	if p.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return p, err
	}
	if p.Description, err = GetSimpleText(a.reader, "Description", a.out); err != nil {
		return p, err
	}

	// Show the lookup tables so the user can answer with ids.
	if err := a.listAuthors(ctx, nil); err != nil {
		return p, err
	}
	if p.AuthorID, err = GetInt(a.reader, "Author id", a.out); err != nil {
		return p, err
	}
	if err := a.listGenres(ctx, nil); err != nil {
		return p, err
	}
	if p.GenreID, err = GetInt(a.reader, "Genre id", a.out); err != nil {
		return p, err
	}
	if p.LanguageCode, err = GetSimpleText(a.reader, "Language code (e.g. en)", a.out); err != nil {
		return p, err
	}
	if p.Condition, err = GetSimpleText(a.reader, "Condition (new/good/used)", a.out); err != nil {
		return p, err
	}
	if err := a.listLocations(ctx, nil); err != nil {
		return p, err
	}
	if p.ExchangeLocationID, err = GetInt(a.reader, "Exchange location id", a.out); err != nil {
		return p, err
	}
	return p, nil
}

// editBook collects a partial patch; skipped answers leave fields unchanged.
func (a *App) editBook(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: editbook <id>")
		return nil
	}

	var p models.UpdateBookPayload
	var err error
	if p.Title, err = GetOptionalText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if p.Description, err = GetOptionalText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if p.Condition, err = GetOptionalText(a.reader, "Condition (new/good/used)", a.out); err != nil {
		return err
	}
	if p.ExtraTerms, err = GetOptionalText(a.reader, "Extra terms", a.out); err != nil {
		return err
	}

	book, err := a.books.Update(ctx, args[0], p)
	if err != nil {
		return err
	}
	printlnFn("Updated:", book.Title)
	return nil
}

func (a *App) uploadPhotos(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: photos <id> <file>...")
		return nil
	}
	files := make(map[string][]byte, len(args)-1)
	for _, path := range args[1:] {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.Base(path)] = content
	}
	if _, err := a.books.UploadPhotos(ctx, args[0], files); err != nil {
		return err
	}
	printlnFn("Uploaded", strconv.Itoa(len(files)), "photo(s).")
	return nil
}

func (a *App) likeBook(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: like <id>")
		return nil
	}
	if err := a.books.ToggleLike(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("Done.")
	return nil
}

func (a *App) reserveBook(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: reserve <id>")
		return nil
	}
	comment, err := GetSimpleText(a.reader, "Message to the owner (optional)", a.out)
	if err != nil {
		return err
	}
	if err := a.books.Reserve(ctx, args[0], models.ReserveBookPayload{Comment: comment}); err != nil {
		return err
	}
	printlnFn("Reserved. The owner will see your request under 'exchanges'.")
	return nil
}

func (a *App) printBooks(books []models.Book) {
	if len(books) == 0 {
		printlnFn("No books found.")
		return
	}
	for _, b := range books {
		printlnFn(formatBookLine(b))
	}
}

func formatBookLine(b models.Book) string {
	status := "available"
	if !b.IsAvailable {
		status = "reserved"
	}
	liked := ""
	if b.IsLikedByUser {
		liked = " ♥"
	}
	return fmt.Sprintf("%s  %q by %s [%s, %s]%s", b.ID, b.Title, b.Author.Name, b.Genre.Name, status, liked)
}
