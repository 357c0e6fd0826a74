package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Register inserts a new user and reports whether the username was free.
// A taken username collapses to false — it is never surfaced as a distinct
// error kind. Passwords are stored as given; comparison is exact and
// case-sensitive (parity with the system this replaces, not a recommendation).
func (s *Store) Register(ctx context.Context, username, password string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (username, password) VALUES (?, ?)`,
		username, password)
	if err != nil {
		return false, fmt.Errorf("failed to insert user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return n == 1, nil
}

// Authenticate reports whether an exact (username, password) row exists.
func (s *Store) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE username = ? AND password = ?`,
		username, password).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query user: %w", err)
	}
	return true, nil
}
