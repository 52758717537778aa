package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cartsense/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresStore is the persistent Store implementation, selected with
// STORE_DRIVER=postgres. Schema:
//
//	list_items(id bigserial, name text unique, quantity int, category text, added_at timestamptz)
//	add_events(name text primary key, count int)
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to PostgreSQL and verifies the connection.
func NewPostgresStore(dsn string, maxConn, maxIdleConn int) (*PostgresStore, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement
	// does not exist" errors behind pgbouncer.
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// AddOrIncrement upserts a list entry, bumping quantity on conflict.
func (s *PostgresStore) AddOrIncrement(ctx context.Context, name string, qty int, category string) (model.ListItem, error) {
	name = normalizeName(name)
	if qty <= 0 {
		qty = 1
	}
	if category == "" {
		category = CategoryFor(name)
	}

	var item model.ListItem
	err := s.db.GetContext(ctx, &item, `
		INSERT INTO list_items (name, quantity, category, added_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name)
		DO UPDATE SET quantity = list_items.quantity + EXCLUDED.quantity
		RETURNING id, name, quantity, category, added_at`,
		name, qty, category)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("failed to upsert list item: %w", err)
	}
	return item, nil
}

// Remove deletes an entry by name; nil result means it was not on the list.
func (s *PostgresStore) Remove(ctx context.Context, name string) (*model.ListItem, error) {
	name = normalizeName(name)

	var item model.ListItem
	err := s.db.GetContext(ctx, &item, `
		DELETE FROM list_items WHERE name = $1
		RETURNING id, name, quantity, category, added_at`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to remove list item: %w", err)
	}
	return &item, nil
}

// Search returns entries matching by substring containment in either direction.
func (s *PostgresStore) Search(ctx context.Context, name string) ([]model.ListItem, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, nil
	}

	var items []model.ListItem
	err := s.db.SelectContext(ctx, &items, `
		SELECT id, name, quantity, category, added_at
		FROM list_items
		WHERE name LIKE '%' || $1 || '%' OR $1 LIKE '%' || name || '%'
		ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search list: %w", err)
	}
	return items, nil
}

// Snapshot returns a copy of the list in insertion order.
func (s *PostgresStore) Snapshot(ctx context.Context) ([]model.ListItem, error) {
	var items []model.ListItem
	err := s.db.SelectContext(ctx, &items, `
		SELECT id, name, quantity, category, added_at
		FROM list_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot list: %w", err)
	}
	return items, nil
}

// RecordAdd notes a historical add event for name.
func (s *PostgresStore) RecordAdd(ctx context.Context, name string) error {
	name = normalizeName(name)
	if name == "" {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO add_events (name, count) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET count = add_events.count + 1`, name)
	if err != nil {
		return fmt.Errorf("failed to record add event: %w", err)
	}
	return nil
}

// RunningLow returns names added at least twice historically that are not on
// the current list.
func (s *PostgresStore) RunningLow(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.SelectContext(ctx, &names, `
		SELECT e.name FROM add_events e
		WHERE e.count >= 2
		  AND NOT EXISTS (SELECT 1 FROM list_items l WHERE l.name = e.name)
		ORDER BY e.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query running-low items: %w", err)
	}
	return names, nil
}

var _ Store = (*PostgresStore)(nil)
