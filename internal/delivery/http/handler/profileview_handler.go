package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/usecase/profile"
	"github.com/gomatri/matrimony-backend/internal/usecase/profileview"
)

type ProfileViewHandler struct {
	viewUseCase    *profileview.ProfileViewUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewProfileViewHandler(
	viewUseCase *profileview.ProfileViewUseCase,
	profileUseCase *profile.ProfileUseCase,
) *ProfileViewHandler {
	return &ProfileViewHandler{
		viewUseCase:    viewUseCase,
		profileUseCase: profileUseCase,
	}
}

// AddView handles POST /profileviews/add/viewer/:viewerId/profile/:profileId.
// The caller must own the viewer profile; on success the response is the
// freshly fetched target profile.
func (h *ProfileViewHandler) AddView(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	viewerID, ok := pathInt(c, "viewerId")
	if !ok {
		return
	}
	targetID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}

	if !isAdmin(c) {
		viewer, err := h.profileUseCase.GetProfileByID(c.Request.Context(), viewerID)
		if err != nil {
			respondError(c, err)
			return
		}
		if viewer.UserID != uid {
			abortWithError(c, http.StatusForbidden, "profile is not managed by you")
			return
		}
	}

	if err := h.viewUseCase.RecordView(c.Request.Context(), viewerID, targetID); err != nil {
		respondError(c, err)
		return
	}

	target, err := h.profileUseCase.GetProfileDetails(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

// AddViewDirect handles POST /profileviews (admin). No gating, no counters.
func (h *ProfileViewHandler) AddViewDirect(c *gin.Context) {
	var dto profileview.ProfileViewDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.viewUseCase.RecordViewDirect(c.Request.Context(), &dto); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetViewByID handles GET /profileviews/:viewId (admin).
func (h *ProfileViewHandler) GetViewByID(c *gin.Context) {
	viewID, ok := pathInt(c, "viewId")
	if !ok {
		return
	}
	view, err := h.viewUseCase.GetViewByID(c.Request.Context(), viewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetViewsByProfileID handles GET /profileviews/profile/:profileId.
func (h *ProfileViewHandler) GetViewsByProfileID(c *gin.Context) {
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	views, err := h.viewUseCase.GetViewsForProfile(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// DeleteViewByID handles DELETE /profileviews/:viewId (admin).
func (h *ProfileViewHandler) DeleteViewByID(c *gin.Context) {
	viewID, ok := pathInt(c, "viewId")
	if !ok {
		return
	}
	if err := h.viewUseCase.DeleteViewByID(c.Request.Context(), viewID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteOldViews handles DELETE /profileviews/before/:date (admin). The date
// accepts RFC3339 or plain YYYY-MM-DD.
func (h *ProfileViewHandler) DeleteOldViews(c *gin.Context) {
	raw := c.Param("date")
	cutoff, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		cutoff, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid date")
		return
	}

	purged, err := h.viewUseCase.PurgeViewsOlderThan(c.Request.Context(), cutoff)
	if err != nil && purged == 0 {
		respondError(c, err)
		return
	}
	body := gin.H{"purged": purged}
	if err != nil {
		// Partial failure: some deletions went through, the rest are reported.
		body["error"] = err.Error()
	}
	c.JSON(http.StatusOK, body)
}
