package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the records matching every active criterion of q, in input
// order. Page is ignored. The input slice is never modified.
func Filter(records []AlbumRecord, q Query) []AlbumRecord {
	m := newMatcher(q)
	out := make([]AlbumRecord, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

type matcher struct {
	genre  string
	member string
	term   string
	fold   cases.Caser
}

func newMatcher(q Query) *matcher {
	m := &matcher{fold: cases.Lower(language.Und)}
	if selects(q.Genre) {
		m.genre = q.Genre
	}
	if selects(q.Member) {
		m.member = q.Member
	}
	m.term = m.normalize(q.Q)
	return m
}

func (m *matcher) match(r AlbumRecord) bool {
	if m.genre != "" && !r.Band.HasGenre(m.genre) {
		return false
	}
	if m.member != "" && !r.Band.HasMember(m.member) {
		return false
	}
	if m.term != "" && !m.matchText(r) {
		return false
	}
	return true
}

// matchText searches the band name, the album title and the song titles.
// Member names and origin are not searched.
func (m *matcher) matchText(r AlbumRecord) bool {
	if m.contains(r.Band.Name) || m.contains(r.Title) {
		return true
	}
	for _, s := range r.Songs {
		if m.contains(s.Title) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(haystack string) bool {
	return strings.Contains(m.normalize(haystack), m.term)
}

func (m *matcher) normalize(s string) string {
	return m.fold.String(strings.TrimSpace(s))
}
