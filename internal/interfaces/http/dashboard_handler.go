package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/trasteros-pro/internal/application/analytics"
	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
)

// DashboardHandler maneja el endpoint del panel financiero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen devuelve el resumen financiero del mes en curso.
// GET /api/dashboard/resumen
//
// Respuesta: ResumenFinancieroDTO (ocupación, KPIs del mes, totales
// históricos, serie de 6 meses, etiquetas formateadas en es-ES).
// No recibe parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	resumen, err := h.uc.Resumen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(resumen)
}
