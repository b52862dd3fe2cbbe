package catalog

import "strconv"

// Flatten turns the band/album hierarchy into one record per album, in
// band-major, album-minor order.
func Flatten(bands []Band) []AlbumRecord {
	total := 0
	for _, b := range bands {
		total += len(b.Albums)
	}

	out := make([]AlbumRecord, 0, total)
	for bandIdx, band := range bands {
		snapshot := BandSnapshot{
			Name:    band.Name,
			Genres:  orEmpty(band.Genres),
			Origin:  band.Origin,
			Founded: band.Founded,
			Members: orEmpty(band.Members),
			Links:   band.Links,
		}
		for albumIdx, album := range band.Albums {
			album.Songs = orEmpty(album.Songs)
			out = append(out, AlbumRecord{
				Album: album,
				Band:  snapshot,
				ID:    recordID(bandIdx, albumIdx),
			})
		}
	}
	return out
}

func recordID(bandIdx, albumIdx int) string {
	return strconv.Itoa(bandIdx) + "-" + strconv.Itoa(albumIdx)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
