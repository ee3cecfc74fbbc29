package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docindex"
)

// Compile-time interface verification.
var _ docindex.EntryService = (*EntryService)(nil)

// EntryService implements docindex.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// CreateEntries appends entries to a collection in a single transaction and
// updates the collection's entry count.
func (s *EntryService) CreateEntries(ctx context.Context, collectionID string, entries []*docindex.Entry) error {
	for i, e := range entries {
		if e == nil {
			return docindex.Errorf(docindex.EINVALID, "entry %d is nil", i)
		}
		if err := e.Validate(); err != nil {
			return docindex.Errorf(docindex.EINVALID, "entry %d: %s", i, docindex.ErrorMessage(err))
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE((SELECT MAX(position) + 1 FROM entries WHERE collection_id = c.id), 0)
		FROM collections c
		WHERE c.id = ?
	`, collectionID).Scan(&next)
	if err == sql.ErrNoRows {
		return docindex.Errorf(docindex.ENOTFOUND, "collection not found")
	}
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (collection_id, position, location, page, title, text, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, collectionID, next+i,
			e.Location, e.Page, e.Title, e.Text, string(e.Category)); err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE collections
		SET entry_count = entry_count + ?, updated_at = ?
		WHERE id = ?
	`, len(entries), time.Now().UTC().Format(time.RFC3339), collectionID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// FindEntries retrieves entries matching the filter, ordered by collection
// and insertion position.
func (s *EntryService) FindEntries(ctx context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT location, page, title, text, category FROM entries WHERE 1=1")

	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Location != nil {
		query.WriteString(" AND location = ?")
		args = append(args, *filter.Location)
	}

	query.WriteString(" ORDER BY collection_id, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docindex.Entry
	for rows.Next() {
		var e docindex.Entry
		var category string
		if err := rows.Scan(&e.Location, &e.Page, &e.Title, &e.Text, &category); err != nil {
			return nil, err
		}
		e.Category = docindex.Category(category)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
