package view

import (
	"net/url"
	"testing"

	"bandcatalog/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestPageURL(t *testing.T) {
	params := url.Values{"q": {"black metal"}, "genre": {"Rock"}, "page": {"4"}}

	tests := []struct {
		name     string
		basePath string
		params   url.Values
		page     int
		want     string
	}{
		{name: "first page drops page", basePath: "/", params: params, page: 1, want: "/?genre=Rock&q=black%20metal"},
		{name: "later page", basePath: "/", params: params, page: 3, want: "/?genre=Rock&page=3&q=black%20metal"},
		{name: "no params", basePath: "/albums", params: nil, page: 1, want: "/albums"},
		{name: "only page", basePath: "/albums", params: url.Values{"page": {"2"}}, page: 2, want: "/albums?page=2"},
		{name: "empty base path", basePath: "", params: nil, page: 1, want: "/"},
		{name: "reserved characters", basePath: "/", params: url.Values{"q": {"a+b&c"}}, page: 1, want: "/?q=a%2Bb%26c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageURL(tt.basePath, tt.params, tt.page))
		})
	}
}

func TestPageURL_DoesNotModifyParams(t *testing.T) {
	params := url.Values{"q": {"x"}, "page": {"2"}}

	_ = PageURL("/", params, 5)

	assert.Equal(t, url.Values{"q": {"x"}, "page": {"2"}}, params)
}

func labels(items []PagerItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
		if it.Active {
			out[i] = "[" + it.Label + "]"
		}
	}
	return out
}

func TestPager(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		pageCount int
		want      []string
	}{
		{name: "single page", current: 1, pageCount: 1, want: []string{}},
		{name: "two pages", current: 1, pageCount: 2, want: []string{"[1]", "2", "Next"}},
		{name: "start of many", current: 1, pageCount: 10, want: []string{"[1]", "2", "3", "…", "10", "Next"}},
		{name: "middle", current: 5, pageCount: 10, want: []string{"Previous", "1", "…", "3", "4", "[5]", "6", "7", "…", "10", "Next"}},
		{name: "no gap next to first", current: 4, pageCount: 10, want: []string{"Previous", "1", "2", "3", "[4]", "5", "6", "…", "10", "Next"}},
		{name: "end", current: 10, pageCount: 10, want: []string{"Previous", "1", "…", "8", "9", "[10]"}},
		{name: "out of range current", current: 50, pageCount: 3, want: []string{"Previous", "1", "2", "[3]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(Pager(tt.current, tt.pageCount, PagerWindow)))
		})
	}
}

func TestPager_Targets(t *testing.T) {
	items := Pager(5, 10, PagerWindow)

	assert.Equal(t, PagerPrev, items[0].Kind)
	assert.Equal(t, 4, items[0].Page)
	assert.True(t, items[2].IsGap())
	last := items[len(items)-1]
	assert.Equal(t, PagerNext, last.Kind)
	assert.Equal(t, 6, last.Page)
}

func TestSplitSongs(t *testing.T) {
	songs := []catalog.Song{{Title: "1"}, {Title: "2"}, {Title: "3"}}

	shown, rest := SplitSongs(songs, 2)
	assert.Equal(t, songs[:2], shown)
	assert.Equal(t, songs[2:], rest)

	shown, rest = SplitSongs(songs, 3)
	assert.Equal(t, songs, shown)
	assert.Nil(t, rest)

	shown, rest = SplitSongs(nil, 8)
	assert.Empty(t, shown)
	assert.Nil(t, rest)
}

func TestPrimaryLinks(t *testing.T) {
	got := PrimaryLinks(catalog.Links{Website: "https://w", YouTube: "https://y"})

	assert.Equal(t, []Link{{Label: "Website", URL: "https://w"}, {Label: "YouTube", URL: "https://y"}}, got)
	assert.Empty(t, PrimaryLinks(catalog.Links{}))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Anna (vocals)", MemberLabel(catalog.Member{Name: "Anna", Role: "vocals"}))
	assert.Equal(t, "Ben", MemberLabel(catalog.Member{Name: "Ben"}))
	assert.Equal(t, "?", MemberLabel(catalog.Member{}))
	assert.Equal(t, "Anna (vocals), Ben", MemberList([]catalog.Member{{Name: "Anna", Role: "vocals"}, {Name: "Ben"}}))
	assert.Equal(t, "", MemberList(nil))

	assert.Equal(t, "–", YearLabel(0))
	assert.Equal(t, "1999", YearLabel(1999))
	assert.Equal(t, "–:–", LengthLabel(""))
	assert.Equal(t, "3:45", LengthLabel("3:45"))
	assert.Equal(t, "(album)", OrDefault("", "(album)"))
	assert.Equal(t, "Alpha", OrDefault("Alpha", "(album)"))
}
