package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/service"
)

type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Create godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateContactRequest true "Contact fields"
// @Success 200 {object} model.WebResponse{data=model.ContactResponse}
// @Failure 400 {object} model.WebResponse
// @Failure 401 {object} model.WebResponse
// @Router /api/contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.svc.Create(c.Request.Context(), CurrentUser(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, res)
}

// Get godoc
// @Summary Get a contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Success 200 {object} model.WebResponse{data=model.ContactResponse}
// @Failure 404 {object} model.WebResponse
// @Router /api/contacts/{contactId} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), CurrentUser(c), c.Param("contactId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, res)
}

// Update godoc
// @Summary Update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Param request body model.UpdateContactRequest true "Contact fields"
// @Success 200 {object} model.WebResponse{data=model.ContactResponse}
// @Failure 404 {object} model.WebResponse
// @Router /api/contacts/{contactId} [put]
func (h *ContactHandler) Update(c *gin.Context) {
	var req model.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.svc.Update(c.Request.Context(), CurrentUser(c), c.Param("contactId"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, res)
}

// Delete godoc
// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Success 200 {object} model.WebResponse{data=string}
// @Failure 404 {object} model.WebResponse
// @Router /api/contacts/{contactId} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), CurrentUser(c), c.Param("contactId")); err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, "OK")
}

// Search godoc
// @Summary Search contacts
// @Description Filters by name (first or last), email and phone; paginated.
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name substring"
// @Param email query string false "Email substring"
// @Param phone query string false "Phone substring"
// @Param page query int false "1-based page" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.WebResponse{data=[]model.ContactResponse}
// @Failure 401 {object} model.WebResponse
// @Router /api/contacts [get]
func (h *ContactHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	filter := model.ContactFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
	}

	res, paging, err := h.svc.Search(c.Request.Context(), CurrentUser(c), filter, page, size)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeDataPaged(c, res, paging)
}
