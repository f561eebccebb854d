package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/contactbook/backend/internal/model"
)

const contactColumns = `id, username, first_name, last_name, email, phone`

func scanContact(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateContact(ctx context.Context, c *model.Contact) error {
	query := `
		INSERT INTO contacts (id, username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query, c.ID, c.Username, c.FirstName, c.LastName, c.Email, c.Phone)
	return err
}

// GetContact scopes the lookup to the owning user so one tenant can never
// read another tenant's contact.
func (s *Store) GetContact(ctx context.Context, username, id string) (*model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE username = $1 AND id = $2`
	return scanContact(s.pool.QueryRow(ctx, query, username, id))
}

func (s *Store) UpdateContact(ctx context.Context, c *model.Contact) error {
	query := `
		UPDATE contacts
		SET first_name = $3, last_name = $4, email = $5, phone = $6
		WHERE username = $1 AND id = $2
	`
	tag, err := s.pool.Exec(ctx, query, c.Username, c.ID, c.FirstName, c.LastName, c.Email, c.Phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteContact(ctx context.Context, username, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM contacts WHERE username = $1 AND id = $2`, username, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SearchContacts returns one page of matches plus the total match count.
func (s *Store) SearchContacts(ctx context.Context, username string, f model.ContactFilter, limit, offset int) ([]model.Contact, int, error) {
	where := []string{"username = $1"}
	args := []any{username}

	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where = append(where, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}
	if f.Email != "" {
		args = append(args, "%"+f.Email+"%")
		where = append(where, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if f.Phone != "" {
		args = append(args, "%"+f.Phone+"%")
		where = append(where, fmt.Sprintf("phone LIKE $%d", len(args)))
	}
	clause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM contacts WHERE ` + clause
	if err := s.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT %s FROM contacts WHERE %s ORDER BY first_name, last_name, id LIMIT $%d OFFSET $%d`,
		contactColumns, clause, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}
