package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactbook/backend/internal/model"
)

func TestRegisterHashesPassword(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)

	err := svc.Register(context.Background(), model.RegisterUserRequest{
		Username: "alice",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)

	stored := store.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	assert.Nil(t, stored.Token, "registration must not issue tokens")
}

func TestUpdateRehashesPassword(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)
	require.NoError(t, svc.Register(context.Background(), model.RegisterUserRequest{
		Username: "alice", Password: "secret123", Name: "Alice",
	}))
	oldHash := store.users["alice"].PasswordHash

	newName := "Alice B"
	newPassword := "evenmoresecret"
	res, err := svc.Update(context.Background(), store.users["alice"], model.UpdateUserRequest{
		Name:     &newName,
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", res.Name)

	stored := store.users["alice"]
	assert.Equal(t, "Alice B", stored.Name)
	assert.NotEqual(t, oldHash, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(newPassword)))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newMemUserStore()
	svc := NewUserService(store)

	req := model.RegisterUserRequest{Username: "alice", Password: "secret123", Name: "Alice"}
	require.NoError(t, svc.Register(context.Background(), req))

	err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "username already registered", err.Error())
}
