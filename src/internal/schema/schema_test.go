package schema

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFreeTextPattern(t *testing.T) {
	accept := []string{"Dune", "dune messiah", "1984", "A", "War and Peace 2"}
	for _, s := range accept {
		if !FreeText.MatchString(s) {
			t.Errorf("FreeText rejected %q", s)
		}
	}
	reject := []string{"", "Dune!", "a-b", "tab\there", "naïve", "semi;colon", " \n"}
	for _, s := range reject {
		if FreeText.MatchString(s) {
			t.Errorf("FreeText accepted %q", s)
		}
	}
}

func TestYearPattern(t *testing.T) {
	accept := []string{"1965", "0000", "9999"}
	for _, s := range accept {
		if !YearDigits.MatchString(s) {
			t.Errorf("YearDigits rejected %q", s)
		}
	}
	reject := []string{"", "196", "19655", "196x", " 1965", "1965 ", "-196"}
	for _, s := range reject {
		if YearDigits.MatchString(s) {
			t.Errorf("YearDigits accepted %q", s)
		}
	}
}

func TestValidate(t *testing.T) {
	ok := Book{Title: "Dune", Author: "Herbert", Year: "1965"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid book rejected: %v", err)
	}
	cases := []struct {
		name string
		b    Book
	}{
		{"empty title", Book{Author: "Herbert", Year: "1965"}},
		{"punctuated author", Book{Title: "Dune", Author: "F. Herbert", Year: "1965"}},
		{"short year", Book{Title: "Dune", Author: "Herbert", Year: "65"}},
	}
	for _, tc := range cases {
		if err := tc.b.Validate(); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestBookYAMLShape(t *testing.T) {
	b := Book{Title: "Dune", Author: "Herbert", Year: "1965"}
	out, err := yaml.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(out)
	for _, want := range []string{"title: Dune", "author: Herbert", "year: \"1965\""} {
		if !strings.Contains(s, want) {
			t.Errorf("yaml output missing %q:\n%s", want, s)
		}
	}
}
