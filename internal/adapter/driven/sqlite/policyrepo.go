package sqlite

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PolicyStore = (*PolicyRepo)(nil)

// Policy table keys. Stored as key/value rows so a partially written table
// overlays defaults the same way a partial settings file does.
const (
	keyMinLength      = "min_length"
	keyMaxLength      = "max_length"
	keyRequireSpecial = "require_special"
	keyRequireCapital = "require_capital"
	keyRequireNumber  = "require_number"
)

// PolicyRepo is the SQLite implementation of the PolicyStore port.
type PolicyRepo struct {
	db *DB
}

// NewPolicyRepo creates a PolicyRepo backed by the given DB.
func NewPolicyRepo(db *DB) *PolicyRepo {
	return &PolicyRepo{db: db}
}

// Load returns the defaults overlaid with any stored rows. Rows with keys or
// values this version does not understand are ignored.
func (r *PolicyRepo) Load(ctx context.Context) (model.Policy, error) {
	const query = `SELECT key, value FROM policy`

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return model.Policy{}, fmt.Errorf("load policy: %w", err)
	}
	defer rows.Close()

	policy := model.DefaultPolicy()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.Policy{}, fmt.Errorf("scan policy row: %w", err)
		}

		switch key {
		case keyMinLength:
			if n, err := strconv.Atoi(value); err == nil {
				policy.MinLength = n
			}
		case keyMaxLength:
			if n, err := strconv.Atoi(value); err == nil {
				policy.MaxLength = n
			}
		case keyRequireSpecial:
			if b, err := strconv.ParseBool(value); err == nil {
				policy.RequireSpecial = b
			}
		case keyRequireCapital:
			if b, err := strconv.ParseBool(value); err == nil {
				policy.RequireCapital = b
			}
		case keyRequireNumber:
			if b, err := strconv.ParseBool(value); err == nil {
				policy.RequireNumber = b
			}
		}
	}
	if err := rows.Err(); err != nil {
		return model.Policy{}, fmt.Errorf("iterate policy rows: %w", err)
	}

	return policy, nil
}

// Save replaces the stored policy, every key present, in one transaction.
func (r *PolicyRepo) Save(ctx context.Context, policy model.Policy) error {
	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save policy: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM policy`); err != nil {
		return fmt.Errorf("clear policy: %w", err)
	}

	const insert = `INSERT INTO policy (key, value) VALUES (?, ?)`
	values := map[string]string{
		keyMinLength:      strconv.Itoa(policy.MinLength),
		keyMaxLength:      strconv.Itoa(policy.MaxLength),
		keyRequireSpecial: strconv.FormatBool(policy.RequireSpecial),
		keyRequireCapital: strconv.FormatBool(policy.RequireCapital),
		keyRequireNumber:  strconv.FormatBool(policy.RequireNumber),
	}
	for key, value := range values {
		if _, err := tx.ExecContext(ctx, insert, key, value); err != nil {
			return fmt.Errorf("insert policy key %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save policy: %w", err)
	}
	return nil
}
