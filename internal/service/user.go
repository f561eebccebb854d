package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/contactbook/backend/internal/db"
	"github.com/contactbook/backend/internal/model"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, req model.RegisterUserRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.UserAccount{
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if db.IsUniqueViolation(err) {
			return BadRequest("username already registered")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *UserService) Get(user *model.UserAccount) model.UserResponse {
	return model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

func (s *UserService) Update(ctx context.Context, user *model.UserAccount, req model.UpdateUserRequest) (model.UserResponse, error) {
	var passwordHash *string
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.UserResponse{}, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		passwordHash = &hashed
	}

	if err := s.users.UpdateUserProfile(ctx, user.Username, req.Name, passwordHash); err != nil {
		return model.UserResponse{}, fmt.Errorf("update user: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	return model.UserResponse{Username: user.Username, Name: user.Name}, nil
}
