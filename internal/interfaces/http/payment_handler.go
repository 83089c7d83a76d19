package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
)

// PaymentHandler maneja las peticiones HTTP de pagos.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// List GET /api/payments?kind=sueldo&month=2026-08
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	var filter dto.PaymentFilter
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	list, err := h.uc.List(c.Context(), q, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/payments (registro manual)
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	payment, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// Delete DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Defaults GET /api/payments/defaults?kind=sueldo&reference_id=<employee>
// Valores sugeridos para el formulario de registro manual.
func (h *PaymentHandler) Defaults(c *fiber.Ctx) error {
	defaults, err := h.uc.Defaults(c.Context(), c.Query("kind"), c.Query("reference_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(defaults)
}
