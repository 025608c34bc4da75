package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/count/internal/drill"
)

// Setting is a single stored key-value pair.
type Setting struct {
	Key   string
	Value string
}

// SettingsRepo stores key-value settings in the settings table.
type SettingsRepo struct {
	db      *sql.DB
	builder *entsql.DialectBuilder
}

var _ drill.Settings = (*SettingsRepo)(nil)

// Get returns the value stored under key and whether it exists.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := r.builder.Select("value").
		From(r.builder.Table("settings")).
		Where(entsql.EQ("key", key)).
		Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	query, args := r.builder.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *SettingsRepo) Delete(ctx context.Context, key string) error {
	query, args := r.builder.Delete("settings").
		Where(entsql.EQ("key", key)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}

// All returns every stored setting ordered by key.
func (r *SettingsRepo) All(ctx context.Context) ([]Setting, error) {
	query, args := r.builder.Select("key", "value").
		From(r.builder.Table("settings")).
		OrderBy("key").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var out []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
