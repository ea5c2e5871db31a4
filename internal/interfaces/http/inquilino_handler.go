package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/application/usecase"
)

// InquilinoHandler maneja los endpoints de inquilinos y su historial.
type InquilinoHandler struct {
	uc *usecase.InquilinoUseCase
}

// NewInquilinoHandler construye el handler.
func NewInquilinoHandler(uc *usecase.InquilinoUseCase) *InquilinoHandler {
	return &InquilinoHandler{uc: uc}
}

// List devuelve los inquilinos activos.
// GET /api/inquilinos
func (h *InquilinoHandler) List(c *fiber.Ctx) error {
	inquilinos, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(inquilinos)
}

// Historial devuelve los inquilinos archivados.
// GET /api/inquilinos/historial
func (h *InquilinoHandler) Historial(c *fiber.Ctx) error {
	archivados, err := h.uc.Historial(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(archivados)
}

// Create da de alta un inquilino.
// POST /api/inquilinos
func (h *InquilinoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInquilinoRequest
	if ok, err := decodificar(c, &in); !ok {
		return err
	}
	inquilino, err := h.uc.Add(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(inquilino)
}

// Update aplica una edición parcial. Un ID inexistente responde 204 igualmente.
// PATCH /api/inquilinos/:id
func (h *InquilinoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInquilinoRequest
	if ok, err := decodificar(c, &in); !ok {
		return err
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina el inquilino de la colección viva; 204 aunque no exista.
// DELETE /api/inquilinos/:id
func (h *InquilinoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
