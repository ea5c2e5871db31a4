package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/application/informes"
)

// InformeHandler maneja la descarga del informe financiero mensual.
type InformeHandler struct {
	uc *informes.InformeUseCase
}

// NewInformeHandler construye el handler.
func NewInformeHandler(uc *informes.InformeUseCase) *InformeHandler {
	return &InformeHandler{uc: uc}
}

// Mensual genera y descarga el informe del mes en curso en PDF.
// GET /api/informes/mensual
func (h *InformeHandler) Mensual(c *fiber.Ctx) error {
	pdf, err := h.uc.GenerarMensual(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="informe-mensual.pdf"`)
	return c.Send(pdf)
}
