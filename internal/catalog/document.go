package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrSourceNotFound   = errors.New("catalog source not found")
	ErrSourceUnreadable = errors.New("catalog source unreadable")
	ErrInvalidDocument  = errors.New("invalid catalog document")
	ErrMissingBands     = errors.New("catalog document has no \"bands\" key")
	ErrBandsNotArray    = errors.New("catalog \"bands\" is not an array")
)

// DecodeDocument parses a catalog document of the form {"bands": [...]}.
// Absent optional fields are resolved here: numbers to 0, strings to "",
// lists to empty lists. A document with zero bands is valid.
func DecodeDocument(data []byte) (*Catalog, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	raw, ok := top["bands"]
	if !ok {
		return nil, ErrMissingBands
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrBandsNotArray
	}

	var bands []Band
	if err := json.Unmarshal(raw, &bands); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	for i := range bands {
		applyBandDefaults(&bands[i])
	}
	return &Catalog{Bands: orEmpty(bands)}, nil
}

func applyBandDefaults(b *Band) {
	b.Genres = orEmpty(b.Genres)
	b.Members = orEmpty(b.Members)
	b.Albums = orEmpty(b.Albums)
	for i := range b.Albums {
		b.Albums[i].Songs = orEmpty(b.Albums[i].Songs)
	}
}
