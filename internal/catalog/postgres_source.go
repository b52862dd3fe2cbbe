package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource loads the newest revision of a named catalog document
// stored in catalog_documents. It never writes.
type PostgresSource struct {
	db      *pgxpool.Pool
	name    string
	timeout time.Duration
	log     logger.Logger
}

func NewPostgresSource(db *pgxpool.Pool, name string, timeout time.Duration) *PostgresSource {
	return &PostgresSource{
		db:      db,
		name:    name,
		timeout: timeout,
		log:     logger.New("catalog").File("postgres_source"),
	}
}

func (s *PostgresSource) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	const query = `
		SELECT document
		FROM catalog_documents
		WHERE name = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`
	log := s.log.Function("Load")

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	var document []byte
	err := s.db.QueryRow(timeoutCtx, query, s.name).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("catalog document missing", "name", s.name)
			return nil, fmt.Errorf("%w: document %q", ErrSourceNotFound, s.name)
		}
		log.Er("failed to query catalog document", err, "name", s.name)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	c, err := DecodeDocument(document)
	if err != nil {
		log.Er("failed to decode catalog document", err, "name", s.name)
		return nil, err
	}
	return c, nil
}

// Ping checks that the database is reachable.
func (s *PostgresSource) Ping(ctx context.Context) error {
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.db.Ping(timeoutCtx)
}
