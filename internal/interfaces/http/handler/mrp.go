package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	mrpapp "github.com/mrp/backend/internal/application/mrp"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MRPHandler handles requirements report API endpoints
type MRPHandler struct {
	BaseHandler
	reportService *mrpapp.ReportService
}

// NewMRPHandler creates a new MRPHandler
func NewMRPHandler(reportService *mrpapp.ReportService) *MRPHandler {
	return &MRPHandler{
		reportService: reportService,
	}
}

// GetReport computes and returns the current requirements report
func (h *MRPHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// ExportReport computes the current report and streams it as an .xlsx
// workbook download
func (h *MRPHandler) ExportReport(c *gin.Context) {
	content, fileName, err := h.reportService.ExportReport(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, content)
}
