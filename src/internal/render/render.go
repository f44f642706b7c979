// Package render draws the fixed-width tables shown by the search and
// display actions.
package render

import (
	"fmt"
	"io"
	"strings"

	"librarian/src/internal/schema"
)

// Column widths in characters, left-justified. Values longer than the
// column are not truncated; they push the border right, same as the
// original fixed-width console layout.
const (
	titleWidth  = 20
	authorWidth = 20
	yearWidth   = 10
)

var widths = [...]int{titleWidth, authorWidth, yearWidth}

const emptyMsg = "No books to display"

// Table renders books as a bordered three-column table. The header row and
// every data row use the same cell layout, so a single found record and a
// full listing look identical apart from row count.
func Table(w io.Writer, books []schema.Book) {
	_, _ = fmt.Fprintln(w, border("┌", "┬", "┐"))
	writeRow(w, "Title", "Author", "Year")
	_, _ = fmt.Fprintln(w, border("├", "┼", "┤"))
	for _, b := range books {
		writeRow(w, b.Title, b.Author, b.Year)
	}
	_, _ = fmt.Fprintln(w, border("└", "┴", "┘"))
}

// Empty renders the placeholder banner shown when there are no books. Its
// outer width matches the table so the two line up on screen.
func Empty(w io.Writer) {
	inner := titleWidth + authorWidth + yearWidth + 5
	pad := inner - len(emptyMsg)
	left := pad / 2
	_, _ = fmt.Fprintln(w, "┌"+strings.Repeat("─", inner)+"┐")
	_, _ = fmt.Fprintln(w, "│"+strings.Repeat(" ", left)+emptyMsg+strings.Repeat(" ", pad-left)+"│")
	_, _ = fmt.Fprintln(w, "└"+strings.Repeat("─", inner)+"┘")
}

func writeRow(w io.Writer, title, author, year string) {
	_, _ = fmt.Fprintf(w, "│ %-*s│ %-*s│ %-*s│\n", titleWidth, title, authorWidth, author, yearWidth, year)
}

// border joins per-column runs of box-drawing dashes with the given corner
// and junction characters. Each run is one wider than its column to cover
// the leading cell space.
func border(left, mid, right string) string {
	segs := make([]string, len(widths))
	for i, cw := range widths {
		segs[i] = strings.Repeat("─", cw+1)
	}
	return left + strings.Join(segs, mid) + right
}
