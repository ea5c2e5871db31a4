package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/application/usecase"
)

// GastoHandler maneja los endpoints de gastos.
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// List devuelve todos los gastos.
// GET /api/gastos
func (h *GastoHandler) List(c *fiber.Ctx) error {
	gastos, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(gastos)
}

// Create registra un gasto.
// POST /api/gastos
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGastoRequest
	if ok, err := decodificar(c, &in); !ok {
		return err
	}
	gasto, err := h.uc.Add(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(gasto)
}

// Delete elimina un gasto; 204 aunque no exista.
// DELETE /api/gastos/:id
func (h *GastoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
