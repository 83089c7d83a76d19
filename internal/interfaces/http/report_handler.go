package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
)

// ReportHandler sirve los archivos descargables del panel.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PaymentsExcel GET /api/reports/payments.xlsx?month=2026-08
func (h *ReportHandler) PaymentsExcel(c *fiber.Ctx) error {
	data, name, err := h.uc.PaymentsExcel(c.Context(), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}

// SummaryPDF GET /api/reports/summary.pdf
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	data, name, err := h.uc.SummaryPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}
