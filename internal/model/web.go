package model

import "time"

// WebResponse is the uniform envelope for every endpoint. Gate rejections
// populate Message, service-level failures populate Errors; the two are
// never mixed in one response.
type WebResponse struct {
	Data    any             `json:"data,omitempty"`
	Status  *bool           `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  string          `json:"errors,omitempty"`
	Paging  *PagingResponse `json:"paging,omitempty"`
}

type PagingResponse struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}

const expiryTimeLayout = "2006-01-02 15:04:05"

// TokenPair is the service-level result of login and refresh. Expiries are
// epoch milliseconds, matching the stored columns.
type TokenPair struct {
	Token                 string
	RefreshToken          string
	ExpiredAt             int64
	RefreshTokenExpiredAt int64
}

type TokenResponse struct {
	Token                 string `json:"token"`
	RefreshToken          string `json:"refreshToken"`
	ExpiredAt             string `json:"expiredAt"`
	RefreshTokenExpiredAt string `json:"refreshTokenExpiredAt"`
}

func (p TokenPair) Response() TokenResponse {
	return TokenResponse{
		Token:                 p.Token,
		RefreshToken:          p.RefreshToken,
		ExpiredAt:             FormatExpiry(p.ExpiredAt),
		RefreshTokenExpiredAt: FormatExpiry(p.RefreshTokenExpiredAt),
	}
}

func FormatExpiry(epochMillis int64) string {
	return time.UnixMilli(epochMillis).Format(expiryTimeLayout)
}
