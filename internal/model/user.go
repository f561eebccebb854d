package model

// UserAccount is the persisted identity row. The token columns double as the
// revocation mechanism: a presented token that does not match the stored
// value is invalid regardless of its signature. Token and expiry columns are
// always both null or both set.
type UserAccount struct {
	Username              string
	PasswordHash          string
	Name                  string
	Token                 *string
	RefreshToken          *string
	TokenExpiredAt        *int64
	RefreshTokenExpiredAt *int64
}

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
	Name     string `json:"name" binding:"required,max=100"`
}

type LoginUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Password *string `json:"password" binding:"omitempty,max=100"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
