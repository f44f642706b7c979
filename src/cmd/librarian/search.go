package main

import (
	"fmt"

	"librarian/src/internal/menu"
	"librarian/src/internal/render"
	"librarian/src/internal/schema"
	"librarian/src/internal/screen"
)

// searchBook looks up the first record whose title exactly matches the
// entered text. A miss is a normal outcome, reported as a message.
func searchBook(ctx *menu.Context) (menu.Signal, error) {
	screen.Clear(ctx.Out)
	title, err := ctx.In.Validated("Enter book title: ", schema.FreeText)
	if err != nil {
		return menu.Exit, err
	}
	book, found := ctx.Shelf.FindByTitle(title)
	screen.Clear(ctx.Out)
	if found {
		_, _ = fmt.Fprintf(ctx.Out, "Book found.\n\n")
		render.Table(ctx.Out, []schema.Book{book})
	} else {
		_, _ = fmt.Fprintln(ctx.Out, "Book not found.")
	}
	ctx.In.Pause()
	return menu.Continue, nil
}
