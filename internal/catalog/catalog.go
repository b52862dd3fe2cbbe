package catalog

// Catalog is the in-memory band collection for a single request.
type Catalog struct {
	Bands []Band `json:"bands"`
}

// Band is a catalog entry. Its identity is its position in Catalog.Bands.
type Band struct {
	Name    string   `json:"name"`
	Origin  string   `json:"origin,omitempty"`
	Founded int      `json:"founded,omitempty"`
	Genres  []string `json:"genres"`
	Members []Member `json:"members"`
	Albums  []Album  `json:"albums"`
	Links   Links    `json:"links"`
}

type Album struct {
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Songs       []Song `json:"songs"`
}

// Song length is display text such as "4:21", not a duration.
type Song struct {
	Title  string `json:"title"`
	Length string `json:"length"`
}

type Member struct {
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	Joined int    `json:"joined,omitempty"`
}

type Links struct {
	Website   string `json:"website,omitempty"`
	Wikipedia string `json:"wikipedia,omitempty"`
	Spotify   string `json:"spotify,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// BandSnapshot is the band context copied onto every album of that band.
type BandSnapshot struct {
	Name    string   `json:"name"`
	Genres  []string `json:"genres"`
	Origin  string   `json:"origin,omitempty"`
	Founded int      `json:"founded,omitempty"`
	Members []Member `json:"members"`
	Links   Links    `json:"links"`
}

// AlbumRecord is a flattened album carrying its band context and a
// "{bandIndex}-{albumIndex}" identifier.
type AlbumRecord struct {
	Album
	Band BandSnapshot `json:"_band"`
	ID   string       `json:"_id"`
}

// HasMember reports whether the band lists a member with exactly this name.
func (s BandSnapshot) HasMember(name string) bool {
	for _, m := range s.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}

// HasGenre reports whether the band lists exactly this genre.
func (s BandSnapshot) HasGenre(genre string) bool {
	for _, g := range s.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
