package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"bandcatalog/internal/catalog"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Renderer writes the HTML browse page.
type Renderer struct {
	tmpl      *template.Template
	showSongs int
}

// NewRenderer parses the embedded templates. showSongs is how many songs an
// album card lists before collapsing the rest.
func NewRenderer(showSongs int) (*Renderer, error) {
	tmpl, err := template.New("browse.html.tmpl").ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, showSongs: showSongs}, nil
}

type pagerLink struct {
	PagerItem
	Href string
}

type albumCard struct {
	ID         string
	Title      string
	Band       string
	Genre      string
	Year       string
	Origin     string
	BandGenres []string
	Members    string
	Songs      []songRow
	MoreSongs  []songRow
	MoreStart  int
	Links      []Link
}

type songRow struct {
	Title  string
	Length string
}

type browsePage struct {
	Query         catalog.Query
	Genres        []string
	Members       []string
	Total         int
	Page          int
	PageCount     int
	FiltersActive bool
	Cards         []albumCard
	Pager         []pagerLink
}

// Render writes the page for res. basePath and params are the request path
// and query, used to build pager links.
func (r *Renderer) Render(w io.Writer, basePath string, params url.Values, res catalog.Result) error {
	page := browsePage{
		Query:         res.Query,
		Genres:        res.Index.Genres,
		Members:       res.Index.Members,
		Total:         res.Total,
		Page:          res.Page,
		PageCount:     res.PageCount,
		FiltersActive: res.Query.FiltersActive(),
		Cards:         make([]albumCard, 0, len(res.Albums)),
	}
	for _, a := range res.Albums {
		page.Cards = append(page.Cards, r.card(a))
	}
	for _, item := range Pager(res.Page, res.PageCount, PagerWindow) {
		link := pagerLink{PagerItem: item}
		if item.Kind != PagerGap {
			link.Href = PageURL(basePath, params, item.Page)
		}
		page.Pager = append(page.Pager, link)
	}
	return r.tmpl.Execute(w, page)
}

func (r *Renderer) card(a catalog.AlbumRecord) albumCard {
	shown, rest := SplitSongs(a.Songs, r.showSongs)
	return albumCard{
		ID:         a.ID,
		Title:      OrDefault(a.Title, "(album)"),
		Band:       OrDefault(a.Band.Name, "(band)"),
		Genre:      a.Genre,
		Year:       YearLabel(a.ReleaseYear),
		Origin:     a.Band.Origin,
		BandGenres: a.Band.Genres,
		Members:    MemberList(a.Band.Members),
		Songs:      songRows(shown),
		MoreSongs:  songRows(rest),
		MoreStart:  len(shown) + 1,
		Links:      PrimaryLinks(a.Band.Links),
	}
}

func songRows(songs []catalog.Song) []songRow {
	rows := make([]songRow, len(songs))
	for i, s := range songs {
		rows[i] = songRow{Title: OrDefault(s.Title, "(song)"), Length: LengthLabel(s.Length)}
	}
	return rows
}
