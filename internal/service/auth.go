package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactbook/backend/internal/db"
	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/token"
)

const bearerPrefix = "Bearer "

// AuthService owns the token lifecycle: issuance on login, rotation on
// refresh, revocation on logout, and per-request validation for the gate.
type AuthService struct {
	users UserStore
	codec *token.Codec
}

func NewAuthService(users UserStore, codec *token.Codec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// Login verifies the credentials and issues a fresh token pair, displacing
// any previous session for the account. Unknown username and wrong password
// fail with the same message so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.TokenPair, error) {
	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, Unauthorized("username or password wrong")
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, Unauthorized("username or password wrong")
	}

	accessToken, accessExpiry, err := s.codec.MintAccess(user.Username)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiry, err := s.codec.MintRefresh(user.Username)
	if err != nil {
		return nil, err
	}

	if err := s.users.SaveTokens(ctx, user.Username, accessToken, accessExpiry, refreshToken, refreshExpiry); err != nil {
		return nil, fmt.Errorf("save tokens: %w", err)
	}

	return &model.TokenPair{
		Token:                 accessToken,
		RefreshToken:          refreshToken,
		ExpiredAt:             accessExpiry,
		RefreshTokenExpiredAt: refreshExpiry,
	}, nil
}

// Refresh takes the raw Authorization header carrying the refresh token,
// rotates the access token and returns the new pair. The refresh token
// itself survives rotation.
func (s *AuthService) Refresh(ctx context.Context, authorization string) (*model.TokenPair, error) {
	if authorization == "" {
		return nil, Unauthorized("Token is missing")
	}
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return nil, Unauthorized("Token is invalid")
	}

	refreshToken := strings.TrimPrefix(authorization, bearerPrefix)
	subject, err := s.codec.Verify(refreshToken)
	if err != nil {
		return nil, Unauthorized("Refresh Token not Valid")
	}

	// Lookup by the stored token string, not by subject: a refresh token
	// cleared by logout no longer matches any row and is dead even while
	// cryptographically valid.
	user, err := s.users.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NotFound("User not found")
		}
		return nil, fmt.Errorf("look up refresh token: %w", err)
	}

	if subject != user.Username || s.refreshExpired(user) {
		return nil, Unauthorized("Refresh Token not Valid")
	}

	accessToken, accessExpiry, err := s.codec.MintAccess(user.Username)
	if err != nil {
		return nil, err
	}

	if err := s.users.RotateAccessToken(ctx, user.Username, accessToken, accessExpiry); err != nil {
		return nil, fmt.Errorf("rotate access token: %w", err)
	}

	return &model.TokenPair{
		Token:                 accessToken,
		RefreshToken:          refreshToken,
		ExpiredAt:             accessExpiry,
		RefreshTokenExpiredAt: *user.RefreshTokenExpiredAt,
	}, nil
}

// Logout clears the stored token pair of the authenticated account. When a
// concurrent logout already cleared it the stored token no longer matches
// and the call fails with not found.
func (s *AuthService) Logout(ctx context.Context, user *model.UserAccount) error {
	if user.Token == nil {
		return NotFound("user not found")
	}
	if err := s.users.ClearTokensByAccessToken(ctx, *user.Token); err != nil {
		if db.IsNoRows(err) {
			return NotFound("user not found")
		}
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

// Authenticate resolves a presented access token to its account. Codec
// failures come back verbatim for the gate to report. A structurally valid
// token that does not match the stored value (revoked, rotated away, or past
// the stored expiry) yields (nil, nil): not an error, just no identity.
func (s *AuthService) Authenticate(ctx context.Context, tokenStr string) (*model.UserAccount, error) {
	subject, err := s.codec.Verify(tokenStr)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, subject)
	if err != nil {
		// A signed token whose subject no longer resolves is a server
		// error, not an auth rejection.
		return nil, fmt.Errorf("look up token subject %q: %w", subject, err)
	}

	if user.Token == nil || *user.Token != tokenStr {
		log.Debug().Str("username", subject).Msg("presented token does not match stored token")
		return nil, nil
	}
	if user.TokenExpiredAt == nil || time.Now().UnixMilli() > *user.TokenExpiredAt {
		return nil, nil
	}

	return user, nil
}

func (s *AuthService) refreshExpired(user *model.UserAccount) bool {
	if user.RefreshToken == nil || user.RefreshTokenExpiredAt == nil {
		return true
	}
	return time.Now().UnixMilli() > *user.RefreshTokenExpiredAt
}
