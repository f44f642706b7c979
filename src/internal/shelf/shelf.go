// Package shelf holds the in-memory, insertion-ordered collection of book
// records for a single session. Nothing is persisted; the shelf dies with
// the process.
package shelf

import "librarian/src/internal/schema"

// Shelf is an ordered sequence of books. Duplicate titles are permitted;
// lookups return the first match in insertion order. The zero value is an
// empty shelf ready for use.
type Shelf struct {
	books []schema.Book
}

// New returns an empty shelf.
func New() *Shelf { return &Shelf{} }

// Append adds a book to the end of the sequence.
func (s *Shelf) Append(b schema.Book) { s.books = append(s.books, b) }

// FindByTitle scans in insertion order and returns the first book whose
// title is exactly equal to title (case-sensitive, no trimming). The second
// return is false when no book matches.
func (s *Shelf) FindByTitle(title string) (schema.Book, bool) {
	for _, b := range s.books {
		if b.Title == title {
			return b, true
		}
	}
	return schema.Book{}, false
}

// All returns a copy of the full ordered sequence.
func (s *Shelf) All() []schema.Book {
	out := make([]schema.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Len reports the number of books on the shelf.
func (s *Shelf) Len() int { return len(s.books) }
