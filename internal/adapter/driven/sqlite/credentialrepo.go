package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port.
// The record-set contract makes Save a wholesale replace, so it runs as a
// delete-then-insert inside one transaction.
type CredentialRepo struct {
	db *DB
}

// NewCredentialRepo creates a CredentialRepo backed by the given DB.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Load returns the full name→secret record set. An empty table yields an
// empty non-nil map.
func (r *CredentialRepo) Load(ctx context.Context) (map[string]string, error) {
	const query = `SELECT name, secret FROM credentials`

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	defer rows.Close()

	entries := map[string]string{}
	for rows.Next() {
		var name, secret string
		if err := rows.Scan(&name, &secret); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		entries[name] = secret
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w", err)
	}

	return entries, nil
}

// Save replaces the stored record set with entries in one transaction, so a
// failure partway leaves the prior record set intact.
func (r *CredentialRepo) Save(ctx context.Context, entries map[string]string) error {
	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save credentials: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	const insert = `INSERT INTO credentials (name, secret) VALUES (?, ?)`
	for name, secret := range entries {
		if _, err := tx.ExecContext(ctx, insert, name, secret); err != nil {
			return fmt.Errorf("insert credential %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save credentials: %w", err)
	}
	return nil
}
