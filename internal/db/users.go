package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/contactbook/backend/internal/model"
)

const userColumns = `username, password_hash, name, token, refresh_token, token_expired_at, refresh_token_expired_at`

func scanUser(row pgx.Row) (*model.UserAccount, error) {
	var u model.UserAccount
	err := row.Scan(
		&u.Username,
		&u.PasswordHash,
		&u.Name,
		&u.Token,
		&u.RefreshToken,
		&u.TokenExpiredAt,
		&u.RefreshTokenExpiredAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *model.UserAccount) error {
	query := `
		INSERT INTO users (username, password_hash, name)
		VALUES ($1, $2, $3)
	`
	_, err := s.pool.Exec(ctx, query, u.Username, u.PasswordHash, u.Name)
	return err
}

func (s *Store) GetUser(ctx context.Context, username string) (*model.UserAccount, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(s.pool.QueryRow(ctx, query, username))
}

func (s *Store) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*model.UserAccount, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1`
	return scanUser(s.pool.QueryRow(ctx, query, refreshToken))
}

// SaveTokens stores a freshly minted token pair, displacing whatever session
// the account had before.
func (s *Store) SaveTokens(ctx context.Context, username, token string, tokenExpiredAt int64, refreshToken string, refreshTokenExpiredAt int64) error {
	query := `
		UPDATE users
		SET token = $2, token_expired_at = $3, refresh_token = $4, refresh_token_expired_at = $5
		WHERE username = $1
	`
	tag, err := s.pool.Exec(ctx, query, username, token, tokenExpiredAt, refreshToken, refreshTokenExpiredAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RotateAccessToken revokes the stored access token and stores the new one
// in a single transaction. The refresh token is left untouched.
func (s *Store) RotateAccessToken(ctx context.Context, username, newToken string, newExpiredAt int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		UPDATE users
		SET token = NULL, token_expired_at = NULL
		WHERE username = $1
	`, username); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `
		UPDATE users
		SET token = $2, token_expired_at = $3
		WHERE username = $1
	`, username, newToken, newExpiredAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ClearTokensByAccessToken revokes the session owning the given access
// token. Matching on the stored value keeps concurrent logouts correct: the
// second call finds no row and reports pgx.ErrNoRows.
func (s *Store) ClearTokensByAccessToken(ctx context.Context, token string) error {
	query := `
		UPDATE users
		SET token = NULL, token_expired_at = NULL, refresh_token = NULL, refresh_token_expired_at = NULL
		WHERE token = $1
	`
	tag, err := s.pool.Exec(ctx, query, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateUserProfile patches name and/or password hash; nil fields are left
// as is.
func (s *Store) UpdateUserProfile(ctx context.Context, username string, name, passwordHash *string) error {
	query := `
		UPDATE users
		SET name = COALESCE($2, name), password_hash = COALESCE($3, password_hash)
		WHERE username = $1
	`
	tag, err := s.pool.Exec(ctx, query, username, name, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
