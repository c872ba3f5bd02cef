package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: profileUseCase}
}

// CreateProfile handles POST /profiles.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.profileUseCase.CreateProfile(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProfileByID handles GET /profiles/:profileId.
func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	details, err := h.profileUseCase.GetProfileDetails(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetMyProfiles handles GET /profiles/mine.
func (h *ProfileHandler) GetMyProfiles(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	profiles, err := h.profileUseCase.GetProfilesByUserID(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// UpdateProfile handles PUT /profiles/:profileId.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.profileUseCase.UpdateProfile(c.Request.Context(), uid, profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProfile handles DELETE /profiles/:profileId.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	if err := h.profileUseCase.DeleteProfile(c.Request.Context(), uid, profileID, isAdmin(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SearchProfiles handles GET /profiles/search with optional attribute filters.
func (h *ProfileHandler) SearchProfiles(c *gin.Context) {
	filters := map[string]interface{}{}
	for _, key := range []string{"gender", "religion", "mother_tongue", "marital_status"} {
		if value := c.Query(key); value != "" {
			filters[key] = value
		}
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	results, err := h.profileUseCase.SearchProfiles(c.Request.Context(), filters, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
