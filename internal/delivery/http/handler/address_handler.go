package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/usecase/address"
)

type AddressHandler struct {
	addressUseCase *address.AddressUseCase
}

func NewAddressHandler(addressUseCase *address.AddressUseCase) *AddressHandler {
	return &AddressHandler{addressUseCase: addressUseCase}
}

// AddAddress handles POST /addresses.
func (h *AddressHandler) AddAddress(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req address.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.addressUseCase.Add(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAddressByID handles GET /addresses/:addressId.
func (h *AddressHandler) GetAddressByID(c *gin.Context) {
	addressID, ok := pathInt(c, "addressId")
	if !ok {
		return
	}
	found, err := h.addressUseCase.GetByID(c.Request.Context(), addressID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetAllAddresses handles GET /addresses (admin).
func (h *AddressHandler) GetAllAddresses(c *gin.Context) {
	addresses, err := h.addressUseCase.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// UpdateAddress handles PUT /addresses/:addressId.
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	addressID, ok := pathInt(c, "addressId")
	if !ok {
		return
	}
	var req address.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.addressUseCase.Update(c.Request.Context(), addressID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAddress handles DELETE /addresses/:addressId.
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	addressID, ok := pathInt(c, "addressId")
	if !ok {
		return
	}
	if err := h.addressUseCase.DeleteByID(c.Request.Context(), addressID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
