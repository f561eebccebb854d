package service

import (
	"context"

	"github.com/contactbook/backend/internal/model"
)

// The store interfaces cover exactly what each service needs; *db.Store
// implements all of them.

type UserStore interface {
	CreateUser(ctx context.Context, u *model.UserAccount) error
	GetUser(ctx context.Context, username string) (*model.UserAccount, error)
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*model.UserAccount, error)
	SaveTokens(ctx context.Context, username, token string, tokenExpiredAt int64, refreshToken string, refreshTokenExpiredAt int64) error
	RotateAccessToken(ctx context.Context, username, newToken string, newExpiredAt int64) error
	ClearTokensByAccessToken(ctx context.Context, token string) error
	UpdateUserProfile(ctx context.Context, username string, name, passwordHash *string) error
}

type ContactStore interface {
	CreateContact(ctx context.Context, c *model.Contact) error
	GetContact(ctx context.Context, username, id string) (*model.Contact, error)
	UpdateContact(ctx context.Context, c *model.Contact) error
	DeleteContact(ctx context.Context, username, id string) error
	SearchContacts(ctx context.Context, username string, f model.ContactFilter, limit, offset int) ([]model.Contact, int, error)
}

type AddressStore interface {
	CreateAddress(ctx context.Context, a *model.Address) error
	GetAddress(ctx context.Context, contactID, id string) (*model.Address, error)
	ListAddresses(ctx context.Context, contactID string) ([]model.Address, error)
	UpdateAddress(ctx context.Context, a *model.Address) error
	DeleteAddress(ctx context.Context, contactID, id string) error
}
