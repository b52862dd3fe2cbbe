package main

import (
	"fmt"
	"math/rand"

	"bandcatalog/internal/catalog"
)

var (
	seedGenres = []string{"Rock", "Jazz", "Metal", "Folk", "Punk", "Blues", "Synthpop", "Shoegaze", "Hip Hop", "Ambient"}
	seedCities = []string{"Helsinki", "Berlin", "Lagos", "Osaka", "Austin", "Glasgow", "Montreal", "Reykjavík", "São Paulo", "Melbourne"}
	seedNames  = []string{"Anna", "Ben", "Cleo", "Dmitri", "Eve", "Farid", "Greta", "Hiro", "Ines", "Jonas", "Kalle", "Lena", "Mika", "Noor", "Otto", "Pia"}
	seedRoles  = []string{"vocals", "guitar", "bass", "drums", "keys", "sax", ""}
	seedWords  = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Nature", "History", "Future", "Past", "Light",
		"Darkness", "World", "Time", "Space", "Mind", "Soul", "Static", "Echo",
	}
)

// generateCatalog builds a random catalog of count bands. The same seed
// always yields the same catalog.
func generateCatalog(count int, seed int64) catalog.Catalog {
	rnd := rand.New(rand.NewSource(seed))
	word := func() string { return seedWords[rnd.Intn(len(seedWords))] }

	bands := make([]catalog.Band, 0, count)
	for i := 0; i < count; i++ {
		founded := 1960 + rnd.Intn(60)
		genres := pickDistinct(rnd, seedGenres, 1+rnd.Intn(2))

		members := make([]catalog.Member, 0, 4)
		for _, name := range pickDistinct(rnd, seedNames, 2+rnd.Intn(3)) {
			members = append(members, catalog.Member{
				Name:   name,
				Role:   seedRoles[rnd.Intn(len(seedRoles))],
				Joined: founded + rnd.Intn(5),
			})
		}

		albumCount := 1 + rnd.Intn(4)
		albums := make([]catalog.Album, 0, albumCount)
		for a := 0; a < albumCount; a++ {
			songCount := 3 + rnd.Intn(10)
			songs := make([]catalog.Song, 0, songCount)
			for s := 0; s < songCount; s++ {
				songs = append(songs, catalog.Song{
					Title:  fmt.Sprintf("%s of %s", word(), word()),
					Length: fmt.Sprintf("%d:%02d", 2+rnd.Intn(6), rnd.Intn(60)),
				})
			}
			albums = append(albums, catalog.Album{
				Title:       fmt.Sprintf("%s %s", word(), word()),
				ReleaseYear: founded + 1 + a*2,
				Genre:       genres[0],
				Songs:       songs,
			})
		}

		name := fmt.Sprintf("The %s %s", word(), word())
		bands = append(bands, catalog.Band{
			Name:    name,
			Origin:  seedCities[rnd.Intn(len(seedCities))],
			Founded: founded,
			Genres:  genres,
			Members: members,
			Albums:  albums,
			Links:   catalog.Links{Website: fmt.Sprintf("https://band-%d.example", i+1)},
		})
	}
	return catalog.Catalog{Bands: bands}
}

func pickDistinct(rnd *rand.Rand, from []string, n int) []string {
	n = min(n, len(from))
	out := make([]string, 0, n)
	for _, i := range rnd.Perm(len(from))[:n] {
		out = append(out, from[i])
	}
	return out
}
