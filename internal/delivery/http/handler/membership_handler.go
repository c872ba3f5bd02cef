package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/usecase/membership"
)

type MembershipHandler struct {
	membershipUseCase *membership.MembershipUseCase
}

func NewMembershipHandler(membershipUseCase *membership.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{membershipUseCase: membershipUseCase}
}

// AddMembership handles POST /memberships (admin).
func (h *MembershipHandler) AddMembership(c *gin.Context) {
	var req membership.AddMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.membershipUseCase.Add(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMembershipByID handles GET /memberships/:membershipId (admin).
func (h *MembershipHandler) GetMembershipByID(c *gin.Context) {
	membershipID, ok := pathInt(c, "membershipId")
	if !ok {
		return
	}
	found, err := h.membershipUseCase.GetByID(c.Request.Context(), membershipID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetMembershipByProfileID handles GET /memberships/profile/:profileId.
func (h *MembershipHandler) GetMembershipByProfileID(c *gin.Context) {
	profileID, ok := pathInt(c, "profileId")
	if !ok {
		return
	}
	found, err := h.membershipUseCase.GetByProfileID(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateMembership handles PUT /memberships/:membershipId (admin).
func (h *MembershipHandler) UpdateMembership(c *gin.Context) {
	membershipID, ok := pathInt(c, "membershipId")
	if !ok {
		return
	}
	var body domain.Membership
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	body.ID = membershipID
	updated, err := h.membershipUseCase.Update(c.Request.Context(), &body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMembership handles DELETE /memberships/:membershipId (admin).
func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
	membershipID, ok := pathInt(c, "membershipId")
	if !ok {
		return
	}
	if err := h.membershipUseCase.DeleteByID(c.Request.Context(), membershipID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
