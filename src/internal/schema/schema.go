package schema

import (
	"errors"
	"fmt"
	"regexp"
)

// Book represents a single book record held in memory for the session.
// All fields are text; Year is stored as the four digits the user typed,
// not parsed into an integer.
type Book struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	Year   string `yaml:"year" json:"year"`
}

// FreeText matches one or more letters, digits, or spaces. Title and
// author input must match it in full.
var FreeText = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// YearDigits matches exactly four ASCII digits.
var YearDigits = regexp.MustCompile(`^[0-9]{4}$`)

// Validate applies the field rules enforced at input time. A Book built
// through the interactive prompts always passes; this exists for records
// constructed directly (fixtures, tests).
func (b Book) Validate() error {
	if !FreeText.MatchString(b.Title) {
		return errors.New("title must be non-empty letters, digits, or spaces")
	}
	if !FreeText.MatchString(b.Author) {
		return errors.New("author must be non-empty letters, digits, or spaces")
	}
	if !YearDigits.MatchString(b.Year) {
		return fmt.Errorf("year must be exactly four digits, got %q", b.Year)
	}
	return nil
}
