// Package view holds the presentation helpers for the browse page. Every
// function takes its inputs explicitly so it can be tested without a request.
package view

import (
	"net/url"
	"strconv"
	"strings"

	"bandcatalog/internal/catalog"
)

// PagerWindow is how many page links are shown on each side of the current page.
const PagerWindow = 2

// PageURL builds the link for page p, keeping every other parameter. Page 1
// carries no page parameter. The result is never empty.
func PageURL(basePath string, params url.Values, p int) string {
	if basePath == "" {
		basePath = "/"
	}

	next := url.Values{}
	for k, vs := range params {
		if k == "page" {
			continue
		}
		next[k] = append([]string(nil), vs...)
	}
	if p > 1 {
		next.Set("page", strconv.Itoa(p))
	}

	query := encodeRFC3986(next)
	if query == "" {
		return basePath
	}
	return basePath + "?" + query
}

// encodeRFC3986 is url.Values.Encode with spaces written as %20.
func encodeRFC3986(v url.Values) string {
	return strings.ReplaceAll(v.Encode(), "+", "%20")
}

// PagerItemKind distinguishes the entries of a pager.
type PagerItemKind int

const (
	PagerPage PagerItemKind = iota
	PagerPrev
	PagerNext
	PagerGap
)

type PagerItem struct {
	Kind   PagerItemKind
	Page   int
	Label  string
	Active bool
}

// Pager lays out a compact pager: previous, the first page, a gap, a window
// around current, a gap, the last page, next. It is empty for a single page.
func Pager(current, pageCount, window int) []PagerItem {
	if pageCount <= 1 {
		return nil
	}
	current = min(max(current, 1), pageCount)

	var items []PagerItem
	if current > 1 {
		items = append(items, PagerItem{Kind: PagerPrev, Page: current - 1, Label: "Previous"})
	}

	start := max(1, current-window)
	end := min(pageCount, current+window)

	if start > 1 {
		items = append(items, pageItem(1, current))
		if start > 2 {
			items = append(items, PagerItem{Kind: PagerGap, Label: "…"})
		}
	}
	for p := start; p <= end; p++ {
		items = append(items, pageItem(p, current))
	}
	if end < pageCount {
		if end < pageCount-1 {
			items = append(items, PagerItem{Kind: PagerGap, Label: "…"})
		}
		items = append(items, pageItem(pageCount, current))
	}

	if current < pageCount {
		items = append(items, PagerItem{Kind: PagerNext, Page: current + 1, Label: "Next"})
	}
	return items
}

// IsGap reports whether the item is an ellipsis rather than a link.
func (p PagerItem) IsGap() bool { return p.Kind == PagerGap }

func pageItem(p, current int) PagerItem {
	return PagerItem{Kind: PagerPage, Page: p, Label: strconv.Itoa(p), Active: p == current}
}

// SplitSongs returns the first limit songs and the rest.
func SplitSongs(songs []catalog.Song, limit int) (shown, rest []catalog.Song) {
	if limit < 0 || len(songs) <= limit {
		return songs, nil
	}
	return songs[:limit], songs[limit:]
}

type Link struct {
	Label string
	URL   string
}

// PrimaryLinks lists the band's non-empty links in display order.
func PrimaryLinks(l catalog.Links) []Link {
	all := []Link{
		{Label: "Website", URL: l.Website},
		{Label: "Wikipedia", URL: l.Wikipedia},
		{Label: "Spotify", URL: l.Spotify},
		{Label: "YouTube", URL: l.YouTube},
	}
	out := all[:0]
	for _, link := range all {
		if link.URL != "" {
			out = append(out, link)
		}
	}
	return out
}

// MemberLabel renders "name (role)", or just the name without a role.
func MemberLabel(m catalog.Member) string {
	name := m.Name
	if name == "" {
		name = "?"
	}
	if m.Role == "" {
		return name
	}
	return name + " (" + m.Role + ")"
}

// MemberList joins the labels of all members.
func MemberList(members []catalog.Member) string {
	labels := make([]string, len(members))
	for i, m := range members {
		labels[i] = MemberLabel(m)
	}
	return strings.Join(labels, ", ")
}

// YearLabel renders a year, or a dash when it is unknown.
func YearLabel(year int) string {
	if year == 0 {
		return "–"
	}
	return strconv.Itoa(year)
}

// LengthLabel renders a song length, or a placeholder when it is unknown.
func LengthLabel(length string) string {
	if length == "" {
		return "–:–"
	}
	return length
}

// OrDefault returns s, or fallback when s is empty.
func OrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
