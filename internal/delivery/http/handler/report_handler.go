package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/usecase/report"
)

type ReportHandler struct {
	reportUseCase *report.ReportUseCase
}

func NewReportHandler(reportUseCase *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUseCase: reportUseCase}
}

// AddReport handles POST /reports.
func (h *ReportHandler) AddReport(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req report.AddReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.reportUseCase.Add(c.Request.Context(), uid, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetReportByID handles GET /reports/:reportId (admin).
func (h *ReportHandler) GetReportByID(c *gin.Context) {
	reportID, ok := pathInt(c, "reportId")
	if !ok {
		return
	}
	found, err := h.reportUseCase.GetByID(c.Request.Context(), reportID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetAllReports handles GET /reports (admin).
func (h *ReportHandler) GetAllReports(c *gin.Context) {
	reports, err := h.reportUseCase.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// DeleteReport handles DELETE /reports/:reportId (admin).
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	reportID, ok := pathInt(c, "reportId")
	if !ok {
		return
	}
	if err := h.reportUseCase.DeleteByID(c.Request.Context(), reportID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
