package handler

import (
	"net/http"
	"strconv"
	"time"

	"sipanuri-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *service.ReportService
	exportService *service.ExportService
}

func NewReportHandler(reportService *service.ReportService, exportService *service.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// Monthly serves GET /api/sipanuri/laporan?year=&month=; both parameters
// default to the current period
func (h *ReportHandler) Monthly(c *gin.Context) {
	now := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}

	report, err := h.reportService.MonthlyReport(year, month)
	if err != nil {
		respondReadError(c, err, "Gagal mengambil laporan")
		return
	}

	c.JSON(http.StatusOK, report)
}

// Export serves GET /api/sipanuri/export
func (h *ReportHandler) Export(c *gin.Context) {
	data, err := h.exportService.BuildExport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Gagal export data",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"exportedAt": time.Now().UTC().Format(time.RFC3339),
	})
}
