package main

import (
	"fmt"

	"librarian/src/internal/menu"
	"librarian/src/internal/schema"
)

// addBook prompts for the three book fields and appends the record to the
// shelf. Each field is re-prompted until it matches its pattern, so the
// constructed book is always valid.
func addBook(ctx *menu.Context) (menu.Signal, error) {
	b, err := readBook(ctx)
	if err != nil {
		return menu.Exit, err
	}
	ctx.Shelf.Append(b)
	return menu.Continue, nil
}

func readBook(ctx *menu.Context) (schema.Book, error) {
	_, _ = fmt.Fprintf(ctx.Out, "Enter book details: \n\n")
	title, err := ctx.In.Validated("Enter title: ", schema.FreeText)
	if err != nil {
		return schema.Book{}, err
	}
	author, err := ctx.In.Validated("Enter author: ", schema.FreeText)
	if err != nil {
		return schema.Book{}, err
	}
	year, err := ctx.In.Validated("Enter year: ", schema.YearDigits)
	if err != nil {
		return schema.Book{}, err
	}
	return schema.Book{Title: title, Author: author, Year: year}, nil
}
