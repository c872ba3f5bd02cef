package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/usecase/matchrequest"
	"github.com/gomatri/matrimony-backend/internal/usecase/profile"
)

type MatchRequestHandler struct {
	requestUseCase *matchrequest.MatchRequestUseCase
	profileUseCase *profile.ProfileUseCase
}

func NewMatchRequestHandler(
	requestUseCase *matchrequest.MatchRequestUseCase,
	profileUseCase *profile.ProfileUseCase,
) *MatchRequestHandler {
	return &MatchRequestHandler{
		requestUseCase: requestUseCase,
		profileUseCase: profileUseCase,
	}
}

// requireOwnProfile verifies the caller manages profileID. Admins pass.
func (h *MatchRequestHandler) requireOwnProfile(c *gin.Context, profileID int) bool {
	if isAdmin(c) {
		return true
	}
	uid, ok := userID(c)
	if !ok {
		return false
	}
	p, err := h.profileUseCase.GetProfileByID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if p.UserID != uid {
		abortWithError(c, http.StatusForbidden, "profile is not managed by you")
		return false
	}
	return true
}

// SendRequest handles POST /matchrequests/profile/:profileId.
func (h *MatchRequestHandler) SendRequest(c *gin.Context) {
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	if !h.requireOwnProfile(c, profileID) {
		return
	}
	var req matchrequest.SendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.requestUseCase.SendRequest(c.Request.Context(), profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// GetRequestByID handles GET /matchrequests/:requestId (admin).
func (h *MatchRequestHandler) GetRequestByID(c *gin.Context) {
	requestID, ok := pathInt(c, "requestId")
	if !ok {
		return
	}
	found, err := h.requestUseCase.GetByID(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetSentRequests handles GET /matchrequests/sent/:profileId.
func (h *MatchRequestHandler) GetSentRequests(c *gin.Context) {
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	if !h.requireOwnProfile(c, profileID) {
		return
	}
	requests, err := h.requestUseCase.GetSent(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetReceivedRequests handles GET /matchrequests/received/:profileId.
func (h *MatchRequestHandler) GetReceivedRequests(c *gin.Context) {
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	if !h.requireOwnProfile(c, profileID) {
		return
	}
	requests, err := h.requestUseCase.GetReceived(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// AcceptRequest handles POST /matchrequests/:requestId/accept/profile/:profileId.
func (h *MatchRequestHandler) AcceptRequest(c *gin.Context) {
	requestID, ok := pathInt(c, "requestId")
	if !ok {
		return
	}
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	if !h.requireOwnProfile(c, profileID) {
		return
	}
	updated, err := h.requestUseCase.Accept(c.Request.Context(), profileID, requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RejectRequest handles POST /matchrequests/:requestId/reject/profile/:profileId.
func (h *MatchRequestHandler) RejectRequest(c *gin.Context) {
	requestID, ok := pathInt(c, "requestId")
	if !ok {
		return
	}
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	if !h.requireOwnProfile(c, profileID) {
		return
	}
	updated, err := h.requestUseCase.Reject(c.Request.Context(), profileID, requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRequestByID handles DELETE /matchrequests/:requestId (admin).
func (h *MatchRequestHandler) DeleteRequestByID(c *gin.Context) {
	requestID, ok := pathInt(c, "requestId")
	if !ok {
		return
	}
	if err := h.requestUseCase.DeleteByID(c.Request.Context(), requestID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
