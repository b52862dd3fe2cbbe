package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Index holds the distinct values offered by the filter controls.
type Index struct {
	Genres  []string `json:"genres"`
	Members []string `json:"members"`
}

func BuildIndex(bands []Band) Index {
	return Index{
		Genres:  UniqueGenres(bands),
		Members: UniqueMembers(bands),
	}
}

// UniqueGenres returns every band-level genre once, in natural order.
func UniqueGenres(bands []Band) []string {
	seen := make(map[string]struct{})
	for _, b := range bands {
		for _, g := range b.Genres {
			seen[g] = struct{}{}
		}
	}
	return naturalKeys(seen)
}

// UniqueMembers returns every member name once, in natural order. Members
// are keyed by name only; role and joined year do not make a name distinct.
func UniqueMembers(bands []Band) []string {
	seen := make(map[string]struct{})
	for _, b := range bands {
		for _, m := range b.Members {
			seen[m.Name] = struct{}{}
		}
	}
	return naturalKeys(seen)
}

func naturalKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	NaturalSort(keys)
	return keys
}

// NaturalSort orders s case-insensitively with embedded numbers compared by
// value ("Track 2" before "track 10"). Keys the collator considers equal fall
// back to byte order so the result never depends on input order.
func NaturalSort(s []string) {
	// A Collator keeps internal buffers, so each call gets its own.
	c := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	sort.Slice(s, func(i, j int) bool {
		if cmp := c.CompareString(s[i], s[j]); cmp != 0 {
			return cmp < 0
		}
		return strings.Compare(s[i], s[j]) < 0
	})
}
