package records_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/records"
)

func ptr[T any](v T) *T { return &v }

// Una colección ausente se lista como vacía, nunca como error.
func TestList_ColeccionAusente(t *testing.T) {
	repo := records.NewInquilinoRepository(memory.NewRecordStore())

	inquilinos, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, inquilinos)
}

// Add genera el ID con el prefijo de la colección y el registro queda
// recuperable con el resto de campos intactos.
func TestAdd_GeneraIDYPersiste(t *testing.T) {
	ctx := context.Background()
	repo := records.NewInquilinoRepository(memory.NewRecordStore())

	creado, err := repo.Add(ctx, entity.Inquilino{
		Nombre:    "Juan",
		Apellidos: "García López",
		FechaAlta: entity.NuevaFecha(2024, time.January, 15),
	})
	require.NoError(t, err)
	require.NotNil(t, creado)
	assert.Regexp(t, `^inq_\d+_[0-9a-f]{9}$`, creado.ID)

	inquilinos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, inquilinos, 1)
	assert.Equal(t, *creado, inquilinos[0])
	assert.Equal(t, "Juan", inquilinos[0].Nombre)
}

// Dos altas seguidas nunca generan el mismo ID, incluso dentro del mismo
// milisegundo (prueba de estrés con muchas iteraciones).
func TestAdd_IDsUnicosBajoEstres(t *testing.T) {
	ctx := context.Background()
	repo := records.NewGastoRepository(memory.NewRecordStore())

	vistos := make(map[string]bool)
	for i := 0; i < 500; i++ {
		g, err := repo.Add(ctx, entity.Gasto{
			Concepto:  "Prueba",
			Monto:     decimal.NewFromInt(1),
			Categoria: entity.CategoriaOtros,
			Fecha:     entity.NuevaFecha(2026, time.August, 1),
		})
		require.NoError(t, err)
		require.False(t, vistos[g.ID], "ID repetido: %s", g.ID)
		vistos[g.ID] = true
	}
}

// Update sobre un ID inexistente deja el documento bit a bit igual.
func TestUpdate_NoOpConIDInexistente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	repo := records.NewInquilinoRepository(store)

	_, err := repo.Add(ctx, entity.Inquilino{Nombre: "María", Apellidos: "Rodríguez Pérez"})
	require.NoError(t, err)
	antes, _, err := store.Get(ctx, repository.ClaveInquilinos)
	require.NoError(t, err)

	err = repo.Update(ctx, "inq_inexistente", entity.InquilinoPatch{Nombre: ptr("Otra")})
	require.NoError(t, err, "el ID ausente se absorbe en silencio")

	despues, _, err := store.Get(ctx, repository.ClaveInquilinos)
	require.NoError(t, err)
	assert.Equal(t, antes, despues)
}

// Update fusiona solo los campos presentes en el patch.
func TestUpdate_FusionParcial(t *testing.T) {
	ctx := context.Background()
	repo := records.NewInquilinoRepository(memory.NewRecordStore())

	creado, err := repo.Add(ctx, entity.Inquilino{
		Nombre:    "Carlos",
		Apellidos: "Martínez Sánchez",
		Telefono:  "688 345 678",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, creado.ID, entity.InquilinoPatch{Email: ptr("carlos@example.com")}))

	inquilinos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, inquilinos, 1)
	assert.Equal(t, "carlos@example.com", inquilinos[0].Email)
	assert.Equal(t, "Carlos", inquilinos[0].Nombre, "los campos no tocados se conservan")
	assert.Equal(t, "688 345 678", inquilinos[0].Telefono)
}

// Delete elimina por ID y es no-op si el ID no existe.
func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := records.NewGastoRepository(memory.NewRecordStore())

	g1, err := repo.Add(ctx, entity.Gasto{Concepto: "Uno", Monto: decimal.NewFromInt(10), Categoria: entity.CategoriaOtros})
	require.NoError(t, err)
	_, err = repo.Add(ctx, entity.Gasto{Concepto: "Dos", Monto: decimal.NewFromInt(20), Categoria: entity.CategoriaOtros})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, g1.ID))
	gastos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, gastos, 1)
	assert.Equal(t, "Dos", gastos[0].Concepto)

	require.NoError(t, repo.Delete(ctx, "gasto_inexistente"))
	gastos, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gastos, 1)
}

// El patch de trastero puede asignar y quitar inquilino.
func TestTrasteroUpdate_AsignarYQuitarInquilino(t *testing.T) {
	ctx := context.Background()
	repo := records.NewTrasteroRepository(memory.NewRecordStore())

	require.NoError(t, repo.SaveAll(ctx, []entity.Trastero{{
		ID: "trastero_1", Numero: 1, PrecioMensual: decimal.NewFromInt(50),
		Llaves: entity.Llaves{Cantidad: 0, Tipo: entity.TipoLlaveEstandar},
	}}))

	require.NoError(t, repo.Update(ctx, "trastero_1", entity.TrasteroPatch{InquilinoID: ptr("inq_1")}))
	trasteros, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, trasteros[0].InquilinoID)
	assert.Equal(t, "inq_1", *trasteros[0].InquilinoID)
	assert.True(t, trasteros[0].Ocupado())

	require.NoError(t, repo.Update(ctx, "trastero_1", entity.TrasteroPatch{QuitarInquilino: true}))
	trasteros, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Nil(t, trasteros[0].InquilinoID)
	assert.False(t, trasteros[0].Ocupado())
}

// Archivar añade una copia con fechaBaja al historial y NO modifica la
// colección viva de inquilinos (comportamiento heredado, documentado).
func TestArchivar_NoBorraDelListadoVivo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	inqRepo := records.NewInquilinoRepository(store)
	histRepo := records.NewHistorialRepository(store)

	creado, err := inqRepo.Add(ctx, entity.Inquilino{
		Nombre:    "Juan",
		Apellidos: "García López",
		FechaAlta: entity.NuevaFecha(2024, time.January, 15),
	})
	require.NoError(t, err)

	require.NoError(t, histRepo.Archivar(ctx, *creado, 7))

	historial, err := histRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, historial, 1)
	assert.Equal(t, creado.ID, historial[0].ID)
	assert.False(t, historial[0].FechaBaja.IsZero(), "la baja queda estampada")
	assert.Equal(t, 7, historial[0].TrasteroNumero)

	vivos, err := inqRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, vivos, 1, "el registro vivo no se toca")
	assert.True(t, vivos[0].FechaBaja.IsZero())
}

// El hueco de sesión guarda el registro completo y se borra con nil.
func TestCurrentUser_Singleton(t *testing.T) {
	ctx := context.Background()
	repo := records.NewUserRepository(memory.NewRecordStore())

	actual, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, actual, "sin sesión el hueco está vacío")

	admin := entity.User{ID: "user_3", Email: "admin@example.com", Password: "admin123", Role: entity.RolAdministrador, Nombre: "Administrador"}
	require.NoError(t, repo.SetCurrentUser(ctx, &admin))

	actual, err = repo.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.Equal(t, admin, *actual)

	require.NoError(t, repo.SetCurrentUser(ctx, nil))
	actual, err = repo.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, actual)
}

// Un documento corrupto se reporta como error de decodificación (se falla
// pronto en vez de devolver una colección vacía).
func TestList_DocumentoCorrupto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	require.NoError(t, store.Set(ctx, repository.ClavePagos, []byte("{no es json válido")))

	_, err := records.NewPagoRepository(store).List(ctx)

	assert.Error(t, err)
}
