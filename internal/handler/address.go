package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/service"
)

type AddressHandler struct {
	svc *service.AddressService
}

func NewAddressHandler(svc *service.AddressService) *AddressHandler {
	return &AddressHandler{svc: svc}
}

// Create godoc
// @Summary Create an address under a contact
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Param request body model.CreateAddressRequest true "Address fields"
// @Success 200 {object} model.WebResponse{data=model.AddressResponse}
// @Failure 404 {object} model.WebResponse
// @Router /api/contacts/{contactId}/addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req model.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.svc.Create(c.Request.Context(), CurrentUser(c), c.Param("contactId"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, res)
}

// Get godoc
// @Summary Get an address
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Param addressId path string true "Address ID"
// @Success 200 {object} model.WebResponse{data=model.AddressResponse}
// @Failure 404 {object} model.WebResponse
// @Router /api/contacts/{contactId}/addresses/{addressId} [get]
func (h *AddressHandler) Get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), CurrentUser(c), c.Param("contactId"), c.Param("addressId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, res)
}

// List godoc
// @Summary List a contact's addresses
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Success 200 {object} model.WebResponse{data=[]model.AddressResponse}
// @Failure 404 {object} model.WebResponse
// @Router /api/contacts/{contactId}/addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context(), CurrentUser(c), c.Param("contactId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, res)
}

// Update godoc
// @Summary Update an address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Param addressId path string true "Address ID"
// @Param request body model.UpdateAddressRequest true "Address fields"
// @Success 200 {object} model.WebResponse{data=model.AddressResponse}
// @Failure 404 {object} model.WebResponse
// @Router /api/contacts/{contactId}/addresses/{addressId} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	var req model.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := h.svc.Update(c.Request.Context(), CurrentUser(c), c.Param("contactId"), c.Param("addressId"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, res)
}

// Delete godoc
// @Summary Delete an address
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param contactId path string true "Contact ID"
// @Param addressId path string true "Address ID"
// @Success 200 {object} model.WebResponse{data=string}
// @Failure 404 {object} model.WebResponse
// @Router /api/contacts/{contactId}/addresses/{addressId} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), CurrentUser(c), c.Param("contactId"), c.Param("addressId")); err != nil {
		writeServiceError(c, err)
		return
	}

	writeData(c, "OK")
}
