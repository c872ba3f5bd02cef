package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/domain"
)

// ErrorModel is the error body for every domain failure:
// {"statusCode": ..., "message": ...}.
type ErrorModel struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorModel{StatusCode: status, Message: message})
}

// respondError maps a domain error to its HTTP status. Unknown errors become
// an opaque 500 so internals never leak into responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrProfileViewNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrMatchRequestNotFound),
		errors.Is(err, domain.ErrPreferenceNotFound),
		errors.Is(err, domain.ErrAddressNotFound),
		errors.Is(err, domain.ErrReportNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrViewQuotaForbidden),
		errors.Is(err, domain.ErrViewQuotaExhausted),
		errors.Is(err, domain.ErrChatQuotaForbidden),
		errors.Is(err, domain.ErrChatQuotaExhausted),
		errors.Is(err, domain.ErrRequestQuotaForbidden),
		errors.Is(err, domain.ErrRequestQuotaExhausted),
		errors.Is(err, domain.ErrAccountLocked):
		abortWithError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, domain.ErrSelfProfileView),
		errors.Is(err, domain.ErrSelfMatchRequest),
		errors.Is(err, domain.ErrInvalidCutoff),
		errors.Is(err, domain.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrEmailTaken):
		abortWithError(c, http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, err.Error())

	default:
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}

func pathInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return value, true
}

// userID returns the authenticated user id placed by the auth middleware.
func userID(c *gin.Context) (int, bool) {
	id, exists := c.Get("user_id")
	if !exists {
		abortWithError(c, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return id.(int), true
}

func isAdmin(c *gin.Context) bool {
	role, exists := c.Get("role")
	return exists && role.(string) == string(domain.RoleAdmin)
}
