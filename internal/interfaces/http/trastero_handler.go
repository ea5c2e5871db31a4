package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/application/usecase"
	"github.com/tu-usuario/trasteros-pro/internal/domain"
)

// TrasteroHandler maneja los endpoints de trasteros.
type TrasteroHandler struct {
	uc *usecase.TrasteroUseCase
}

// NewTrasteroHandler construye el handler.
func NewTrasteroHandler(uc *usecase.TrasteroUseCase) *TrasteroHandler {
	return &TrasteroHandler{uc: uc}
}

// List devuelve todos los trasteros.
// GET /api/trasteros
func (h *TrasteroHandler) List(c *fiber.Ctx) error {
	trasteros, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(trasteros)
}

// Update aplica una edición parcial. Un ID inexistente responde 204 igualmente.
// PATCH /api/trasteros/:id
func (h *TrasteroHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTrasteroRequest
	if ok, err := decodificar(c, &in); !ok {
		return err
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// QuitarInquilino retira al inquilino del trastero y lo archiva en el
// historial. 404 si el trastero no existe; 204 si ya estaba libre.
// POST /api/trasteros/:id/quitar-inquilino
func (h *TrasteroHandler) QuitarInquilino(c *fiber.Ctx) error {
	if err := h.uc.QuitarInquilino(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el trastero no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
