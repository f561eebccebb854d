package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body model.RegisterUserRequest true "Username, password and display name"
// @Success 200 {object} model.WebResponse{data=string}
// @Failure 400 {object} model.WebResponse
// @Router /api/users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.svc.Register(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.WebResponse{Data: "OK"})
}

// Current godoc
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.WebResponse{data=model.UserResponse}
// @Failure 401 {object} model.WebResponse
// @Router /api/user/current [get]
func (h *UserHandler) Current(c *gin.Context) {
	writeData(c, h.svc.Get(CurrentUser(c)))
}

// Update godoc
// @Summary Update current user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateUserRequest true "Fields to change"
// @Success 200 {object} model.WebResponse{data=model.UserResponse}
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /api/user/current [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.svc.Update(c.Request.Context(), CurrentUser(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.WebResponse{Data: res})
}
