package catalog

// scenarioCatalog is the two band catalog used across the pipeline tests.
func scenarioCatalog() *Catalog {
	return &Catalog{Bands: []Band{
		{
			Name:    "Band A",
			Genres:  []string{"Rock"},
			Members: []Member{{Name: "Anna", Role: "vocals", Joined: 2001}, {Name: "Ben"}},
			Albums: []Album{
				{Title: "Alpha", ReleaseYear: 2003, Genre: "Rock", Songs: []Song{{Title: "Intro", Length: "1:02"}, {Title: "Drive", Length: "3:45"}}},
				{Title: "Beta"},
			},
		},
		{
			Name:    "Band B",
			Origin:  "Helsinki",
			Founded: 1999,
			Genres:  []string{"Jazz"},
			Members: []Member{{Name: "Cleo", Role: "sax"}},
			Albums: []Album{
				{Title: "Gamma", Songs: []Song{{Title: "Blue", Length: "5:10"}}},
			},
			Links: Links{Website: "https://b.example"},
		},
	}}
}

func recordTitles(records []AlbumRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func recordIDs(records []AlbumRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
