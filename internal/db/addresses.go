package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/contactbook/backend/internal/model"
)

const addressColumns = `id, contact_id, street, city, province, country, postal_code`

func scanAddress(row pgx.Row) (*model.Address, error) {
	var a model.Address
	err := row.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateAddress(ctx context.Context, a *model.Address) error {
	query := `
		INSERT INTO addresses (id, contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.pool.Exec(ctx, query, a.ID, a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode)
	return err
}

func (s *Store) GetAddress(ctx context.Context, contactID, id string) (*model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE contact_id = $1 AND id = $2`
	return scanAddress(s.pool.QueryRow(ctx, query, contactID, id))
}

func (s *Store) ListAddresses(ctx context.Context, contactID string) ([]model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE contact_id = $1 ORDER BY id`
	rows, err := s.pool.Query(ctx, query, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (s *Store) UpdateAddress(ctx context.Context, a *model.Address) error {
	query := `
		UPDATE addresses
		SET street = $3, city = $4, province = $5, country = $6, postal_code = $7
		WHERE contact_id = $1 AND id = $2
	`
	tag, err := s.pool.Exec(ctx, query, a.ContactID, a.ID, a.Street, a.City, a.Province, a.Country, a.PostalCode)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteAddress(ctx context.Context, contactID, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM addresses WHERE contact_id = $1 AND id = $2`, contactID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
