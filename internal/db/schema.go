package db

import "context"

// EnsureSchema creates the tables on startup when they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			token TEXT,
			refresh_token TEXT,
			token_expired_at BIGINT,
			refresh_token_expired_at BIGINT
		)
		`,
		`CREATE INDEX IF NOT EXISTS users_token_idx ON users(token)`,
		`CREATE INDEX IF NOT EXISTS users_refresh_token_idx ON users(refresh_token)`,
		`
		CREATE TABLE IF NOT EXISTS contacts (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT ''
		)
		`,
		`CREATE INDEX IF NOT EXISTS contacts_username_idx ON contacts(username)`,
		`
		CREATE TABLE IF NOT EXISTS addresses (
			id TEXT PRIMARY KEY,
			contact_id TEXT NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
			street TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			province TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL,
			postal_code TEXT NOT NULL DEFAULT ''
		)
		`,
		`CREATE INDEX IF NOT EXISTS addresses_contact_id_idx ON addresses(contact_id)`,
	}

	for _, query := range queries {
		if _, err := s.pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
