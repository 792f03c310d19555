package gilded_test

import (
	"testing"

	"github.com/gilded-go/gilded"
)

func TestToCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"school_id", "schoolId"},
		{"author_id", "authorId"},
		{"camel_attribute", "camelAttribute"},
		{"wizard_college", "wizardCollege"},
		{"name", "name"},
		{"formulae", "formulae"},
		{"", ""},
		{"_foo", "Foo"},
		{"foo_", "foo"},
		{"a__b", "aB"},
		{"foo_BAR", "fooBar"},
		{"one_two_three", "oneTwoThree"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := gilded.ToCamel(tt.in); got != tt.want {
				t.Errorf("ToCamel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"schoolId", "school_id"},
		{"authorId", "author_id"},
		{"camelAttribute", "camel_attribute"},
		{"wizardCollege", "wizard_college"},
		{"name", "name"},
		{"Name", "name"},
		{"SchoolID", "school_id"},
		{"school_id", "school_id"},
		{"", ""},
		// Runs of capitals collapse; the conversion is a heuristic, not a
		// lossless inverse.
		{"APIKey", "apikey"},
		{"systemA", "systema"},
		{"aBcDe", "a_bcde"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := gilded.ToSnake(tt.in); got != tt.want {
				t.Errorf("ToSnake(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCaseRoundTrip(t *testing.T) {
	names := []string{
		"school_id",
		"author_id",
		"wizard_college",
		"camel_attribute",
		"attr_one",
		"name",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if got := gilded.ToSnake(gilded.ToCamel(name)); got != name {
				t.Errorf("ToSnake(ToCamel(%q)) = %q", name, got)
			}
		})
	}
}
