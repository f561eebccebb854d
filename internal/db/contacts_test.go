package db

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactbook/backend/internal/model"
)

func contactColumnNames() []string {
	return []string{"id", "username", "first_name", "last_name", "email", "phone"}
}

func sampleContact() *model.Contact {
	return &model.Contact{
		ID:        "c-1",
		Username:  "alice",
		FirstName: "Budi",
		LastName:  "Santoso",
		Email:     "budi@example.com",
		Phone:     "08123",
	}
}

func TestCreateContact(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	c := sampleContact()
	mock.ExpectExec("INSERT INTO contacts").
		WithArgs(c.ID, c.Username, c.FirstName, c.LastName, c.Email, c.Phone).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, store.CreateContact(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetContactScopedToOwner(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	c := sampleContact()
	mock.ExpectQuery("SELECT .+ FROM contacts WHERE username = .+ AND id =").
		WithArgs("alice", c.ID).
		WillReturnRows(pgxmock.NewRows(contactColumnNames()).
			AddRow(c.ID, c.Username, c.FirstName, c.LastName, c.Email, c.Phone))

	got, err := store.GetContact(context.Background(), "alice", c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.FirstName, got.FirstName)

	// Another tenant asking for the same id gets nothing.
	mock.ExpectQuery("SELECT .+ FROM contacts WHERE username = .+ AND id =").
		WithArgs("mallory", c.ID).
		WillReturnRows(pgxmock.NewRows(contactColumnNames()))

	_, err = store.GetContact(context.Background(), "mallory", c.ID)
	require.Error(t, err)
	assert.True(t, IsNoRows(err))
}

func TestDeleteContactNoRows(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM contacts").
		WithArgs("alice", "missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := store.DeleteContact(context.Background(), "alice", "missing")
	require.Error(t, err)
	assert.True(t, IsNoRows(err))
}

func TestSearchContactsWithFilters(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	c := sampleContact()
	filter := model.ContactFilter{Name: "bud", Email: "example"}

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contacts").
		WithArgs("alice", "%bud%", "%example%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery("SELECT .+ FROM contacts WHERE .+ ORDER BY first_name").
		WithArgs("alice", "%bud%", "%example%", 10, 0).
		WillReturnRows(pgxmock.NewRows(contactColumnNames()).
			AddRow(c.ID, c.Username, c.FirstName, c.LastName, c.Email, c.Phone))

	contacts, total, err := store.SearchContacts(context.Background(), "alice", filter, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Budi", contacts[0].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchContactsNoFilters(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contacts").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery("SELECT .+ FROM contacts").
		WithArgs("alice", 10, 0).
		WillReturnRows(pgxmock.NewRows(contactColumnNames()))

	contacts, total, err := store.SearchContacts(context.Background(), "alice", model.ContactFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, contacts)
}
