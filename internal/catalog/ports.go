package catalog

import (
	"context"
)

// Source loads a fresh Catalog. Implementations must not hand out a Catalog
// that another caller may still modify.
//
//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=catalog
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}
