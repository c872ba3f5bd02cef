package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/usecase/preference"
)

type PreferenceHandler struct {
	preferenceUseCase *preference.PreferenceUseCase
}

func NewPreferenceHandler(preferenceUseCase *preference.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{preferenceUseCase: preferenceUseCase}
}

// AddPreference handles POST /preferences.
func (h *PreferenceHandler) AddPreference(c *gin.Context) {
	var req preference.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.preferenceUseCase.Add(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPreferenceByID handles GET /preferences/:preferenceId.
func (h *PreferenceHandler) GetPreferenceByID(c *gin.Context) {
	preferenceID, ok := pathInt(c, "preferenceId")
	if !ok {
		return
	}
	found, err := h.preferenceUseCase.GetByID(c.Request.Context(), preferenceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetPreferenceByProfileID handles GET /preferences/profile/:profileId.
func (h *PreferenceHandler) GetPreferenceByProfileID(c *gin.Context) {
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	found, err := h.preferenceUseCase.GetByProfileID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdatePreference handles PUT /preferences/:preferenceId.
func (h *PreferenceHandler) UpdatePreference(c *gin.Context) {
	preferenceID, ok := pathInt(c, "preferenceId")
	if !ok {
		return
	}
	var req preference.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.preferenceUseCase.Update(c.Request.Context(), preferenceID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePreference handles DELETE /preferences/:preferenceId.
func (h *PreferenceHandler) DeletePreference(c *gin.Context) {
	preferenceID, ok := pathInt(c, "preferenceId")
	if !ok {
		return
	}
	if err := h.preferenceUseCase.DeleteByID(c.Request.Context(), preferenceID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
