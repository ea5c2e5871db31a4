package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/application/usecase"
)

// PagoHandler maneja los endpoints de pagos.
type PagoHandler struct {
	uc *usecase.PagoUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *usecase.PagoUseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// List devuelve todos los pagos registrados.
// GET /api/pagos
func (h *PagoHandler) List(c *fiber.Ctx) error {
	pagos, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(pagos)
}

// Registrar añade un pago y actualiza el estado de cobro del trastero.
// POST /api/pagos
func (h *PagoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarPagoRequest
	if ok, err := decodificar(c, &in); !ok {
		return err
	}
	pago, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(pago)
}
