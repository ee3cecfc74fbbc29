package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docindex.CollectionService = (*CollectionService)(nil)

// CollectionService implements docindex.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

const collectionColumns = "id, name, source, checksum, entry_count, created_at, updated_at"

// CreateCollection creates a new collection.
func (s *CollectionService) CreateCollection(ctx context.Context, c *docindex.Collection) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM collections WHERE name = ?", c.Name).Scan(&exists); err != nil {
		return err
	}
	if exists > 0 {
		return docindex.Errorf(docindex.ECONFLICT, "collection %q already exists", c.Name)
	}

	c.ID = uuid.New().String()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.EntryCount = 0

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, source, checksum, entry_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Source, c.Checksum, c.EntryCount,
		c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindCollectionByID retrieves a collection by ID.
func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*docindex.Collection, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+collectionColumns+" FROM collections WHERE id = ?", id)

	c, err := scanCollection(row)
	if err == sql.ErrNoRows {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "collection not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindCollections retrieves collections matching the filter, ordered by name.
func (s *CollectionService) FindCollections(ctx context.Context, filter docindex.CollectionFilter) ([]*docindex.Collection, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + collectionColumns + " FROM collections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*docindex.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	return collections, rows.Err()
}

// DeleteCollection permanently removes a collection and, through the
// foreign key cascade, its entries.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docindex.Errorf(docindex.ENOTFOUND, "collection not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCollection(row scanner) (*docindex.Collection, error) {
	var c docindex.Collection
	var createdAt, updatedAt string

	if err := row.Scan(&c.ID, &c.Name, &c.Source, &c.Checksum, &c.EntryCount, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &c, nil
}
