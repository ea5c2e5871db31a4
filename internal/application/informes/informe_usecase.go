// Package informes genera el informe financiero mensual en PDF.
package informes

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tu-usuario/trasteros-pro/internal/application/analytics"
	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

// MaxGastosInforme limita la tabla de últimos gastos del informe.
const MaxGastosInforme = 10

// InformeMensual es la instantánea que se vuelca al PDF.
type InformeMensual struct {
	Generado      time.Time
	Resumen       dto.ResumenFinancieroDTO
	UltimosGastos []entity.Gasto
}

// InformePDFGenerator renderiza el informe mensual como PDF.
type InformePDFGenerator interface {
	GenerarInformeMensual(ctx context.Context, informe *InformeMensual) ([]byte, error)
}

// InformeUseCase compone el informe mensual a partir del resumen del panel y
// de la colección de gastos, y delega el renderizado en el generador.
type InformeUseCase struct {
	dashboard *analytics.DashboardUseCase
	gastos    repository.GastoRepository
	generator InformePDFGenerator
	ahora     func() time.Time
}

// NewInformeUseCase construye el caso de uso.
func NewInformeUseCase(
	dashboard *analytics.DashboardUseCase,
	gastos repository.GastoRepository,
	generator InformePDFGenerator,
) *InformeUseCase {
	return &InformeUseCase{
		dashboard: dashboard,
		gastos:    gastos,
		generator: generator,
		ahora:     time.Now,
	}
}

// GenerarMensual devuelve los bytes del PDF del informe del mes en curso.
func (uc *InformeUseCase) GenerarMensual(ctx context.Context) ([]byte, error) {
	resumen, err := uc.dashboard.Resumen(ctx)
	if err != nil {
		return nil, fmt.Errorf("informe: resumen: %w", err)
	}

	gastos, err := uc.gastos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("informe: gastos: %w", err)
	}
	sort.SliceStable(gastos, func(i, j int) bool {
		return gastos[i].Fecha.Time.After(gastos[j].Fecha.Time)
	})
	if len(gastos) > MaxGastosInforme {
		gastos = gastos[:MaxGastosInforme]
	}

	informe := &InformeMensual{
		Generado:      uc.ahora(),
		Resumen:       *resumen,
		UltimosGastos: gastos,
	}
	return uc.generator.GenerarInformeMensual(ctx, informe)
}
