package main

import (
	"librarian/src/internal/menu"
	"librarian/src/internal/render"
)

// displayBooks lists every record in insertion order, or the empty banner
// when nothing has been added yet.
func displayBooks(ctx *menu.Context) (menu.Signal, error) {
	if ctx.Shelf.Len() == 0 {
		render.Empty(ctx.Out)
	} else {
		render.Table(ctx.Out, ctx.Shelf.All())
	}
	ctx.In.Pause()
	return menu.Continue, nil
}
