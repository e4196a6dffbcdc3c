package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// ReportHandler serves the admin dashboard aggregates.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Summary handles GET /v1/admin/reports/summary.
//
// @Summary      Dashboard summary counts
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  errorResponse
// @Router       /v1/admin/reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
