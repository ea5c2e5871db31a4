package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/trasteros-pro/internal/application/analytics"
	"github.com/tu-usuario/trasteros-pro/internal/application/auth"
	"github.com/tu-usuario/trasteros-pro/internal/application/informes"
	"github.com/tu-usuario/trasteros-pro/internal/application/seed"
	"github.com/tu-usuario/trasteros-pro/internal/application/usecase"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/records"
	apphttp "github.com/tu-usuario/trasteros-pro/internal/interfaces/http"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// buildTestApp levanta la API completa sobre un almacén en memoria con las
// colecciones por defecto (y opcionalmente los datos de demostración).
func buildTestApp(t *testing.T, conDemo bool) *fiber.App {
	t.Helper()
	ctx := context.Background()
	store := memory.NewRecordStore()
	require.NoError(t, seed.Bootstrap(ctx, store))

	inquilinosRepo := records.NewInquilinoRepository(store)
	historialRepo := records.NewHistorialRepository(store)
	trasterosRepo := records.NewTrasteroRepository(store)
	pagosRepo := records.NewPagoRepository(store)
	gastosRepo := records.NewGastoRepository(store)
	usersRepo := records.NewUserRepository(store)

	if conDemo {
		_, err := seed.Demo(ctx, inquilinosRepo, trasterosRepo)
		require.NoError(t, err)
	}

	dashboardUC := analytics.NewDashboardUseCase(trasterosRepo, inquilinosRepo, pagosRepo, gastosRepo)
	sessionUC := auth.NewSessionUseCase(usersRepo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: 60, Issuer: "trasteros-pro-test",
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InquilinoUC: usecase.NewInquilinoUseCase(inquilinosRepo, historialRepo),
		TrasteroUC:  usecase.NewTrasteroUseCase(trasterosRepo, inquilinosRepo, historialRepo),
		PagoUC:      usecase.NewPagoUseCase(pagosRepo, trasterosRepo),
		GastoUC:     usecase.NewGastoUseCase(gastosRepo),
		DashboardUC: dashboardUC,
		InformeUC:   informes.NewInformeUseCase(dashboardUC, gastosRepo, pdf.NewMarotoPDFGenerator()),
		SessionUC:   sessionUC,
		JWTSecret:   testJWTSecret,
	})
	return app
}

// login devuelve el Bearer token de la cuenta indicada.
func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, authHeader string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesSembradas(t *testing.T) {
	app := buildTestApp(t, false)
	token := login(t, app, "admin@example.com", "admin123")

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decodeBody(t, resp, &me)
	assert.Equal(t, "admin@example.com", me.Email)
	assert.Equal(t, "administrador", me.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	app := buildTestApp(t, false)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": "admin@example.com", "password": "otra",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutasProtegidas_SinToken(t *testing.T) {
	app := buildTestApp(t, false)
	resp := doJSON(t, app, http.MethodGet, "/api/inquilinos/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_BorraLaSesion(t *testing.T) {
	app := buildTestApp(t, false)
	token := login(t, app, "propietario@example.com", "admin123")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// El token sigue siendo válido, pero la sesión persistida ya no existe.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Control de acceso por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestInquilinos_AdministradorNoPuedeCrear(t *testing.T) {
	app := buildTestApp(t, false)
	token := login(t, app, "admin@example.com", "admin123")

	resp := doJSON(t, app, http.MethodPost, "/api/inquilinos/", fiber.Map{
		"nombre": "Juan", "apellidos": "García", "fechaAlta": "2024-01-15",
	}, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDashboard_InmobiliariaNoAccede(t *testing.T) {
	app := buildTestApp(t, false)
	token := login(t, app, "inmobiliaria@example.com", "inmob123")

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/resumen", nil, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD y panel
// ──────────────────────────────────────────────────────────────────────────────

func TestInquilinos_AltaYListado(t *testing.T) {
	app := buildTestApp(t, false)
	token := login(t, app, "propietario@example.com", "admin123")

	resp := doJSON(t, app, http.MethodPost, "/api/inquilinos/", fiber.Map{
		"nombre": "María", "apellidos": "Martínez Ruiz", "fechaAlta": "2024-02-01",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var creado struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &creado)
	require.NotEmpty(t, creado.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/inquilinos/", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lista []map[string]any
	decodeBody(t, resp, &lista)
	require.Len(t, lista, 1)
	assert.Equal(t, creado.ID, lista[0]["id"])
}

func TestInquilinos_CreateSinFechaAlta(t *testing.T) {
	app := buildTestApp(t, false)
	token := login(t, app, "propietario@example.com", "admin123")

	resp := doJSON(t, app, http.MethodPost, "/api/inquilinos/", fiber.Map{
		"nombre": "Juan", "apellidos": "García",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboard_ResumenConColeccionesSembradas(t *testing.T) {
	app := buildTestApp(t, true)
	token := login(t, app, "propietario@example.com", "admin123")

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/resumen", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var resumen struct {
		TotalTrasteros int `json:"total_trasteros"`
		Ocupados       int `json:"ocupados"`
		Serie          []struct {
			Mes int `json:"mes"`
		} `json:"serie_ingresos_esperados"`
	}
	decodeBody(t, resp, &resumen)
	assert.Equal(t, seed.NumTrasteros, resumen.TotalTrasteros)
	assert.Equal(t, 3, resumen.Ocupados)
	assert.Len(t, resumen.Serie, 6)
}

func TestPagos_RegistrarActualizaTrastero(t *testing.T) {
	app := buildTestApp(t, true)
	token := login(t, app, "propietario@example.com", "admin123")

	resp := doJSON(t, app, http.MethodGet, "/api/trasteros/", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var trasteros []struct {
		ID          string  `json:"id"`
		InquilinoID *string `json:"inquilinoId"`
	}
	decodeBody(t, resp, &trasteros)

	var trasteroID, inquilinoID string
	for _, tr := range trasteros {
		if tr.InquilinoID != nil {
			trasteroID = tr.ID
			inquilinoID = *tr.InquilinoID
			break
		}
	}
	require.NotEmpty(t, trasteroID)

	resp = doJSON(t, app, http.MethodPost, "/api/pagos/", fiber.Map{
		"trasteroId":  trasteroID,
		"inquilinoId": inquilinoID,
		"fecha":       "2025-03-01",
		"monto":       50,
		"concepto":    "Renta marzo",
		"metodoPago":  "transferencia",
		"mesPago":     3,
		"anioPago":    2025,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/trasteros/", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var despues []struct {
		ID              string `json:"id"`
		AlCorrientePago bool   `json:"alCorrientePago"`
		UltimoPago      string `json:"ultimoPago"`
	}
	decodeBody(t, resp, &despues)
	for _, tr := range despues {
		if tr.ID == trasteroID {
			assert.True(t, tr.AlCorrientePago)
			assert.Equal(t, "2025-03-01", tr.UltimoPago)
		}
	}
}

func TestTrasteros_QuitarInquilinoInexistente(t *testing.T) {
	app := buildTestApp(t, false)
	token := login(t, app, "propietario@example.com", "admin123")

	resp := doJSON(t, app, http.MethodPost, "/api/trasteros/trastero_999/quitar-inquilino", nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInformes_MensualDevuelvePDF(t *testing.T) {
	app := buildTestApp(t, true)
	token := login(t, app, "propietario@example.com", "admin123")

	resp := doJSON(t, app, http.MethodGet, "/api/informes/mensual", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
