package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Login
// @Description Verifies credentials and issues an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginUserRequest true "Username and password"
// @Success 200 {object} model.WebResponse{data=model.TokenResponse}
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, pair.Response())
}

// Refresh godoc
// @Summary Refresh access token
// @Description Reads the refresh token from the Authorization header and rotates the access token.
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer refresh token"
// @Success 200 {object} model.WebResponse{data=model.TokenResponse}
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /api/auth/refresh-token [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	pair, err := h.svc.Refresh(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.WebResponse{Data: pair.Response()})
}

// Logout godoc
// @Summary Logout
// @Description Clears the stored token pair, revoking the session.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Failure 404 {object} model.WebResponse
// @Router /api/auth/logout [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), CurrentUser(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, "Ok")
}
