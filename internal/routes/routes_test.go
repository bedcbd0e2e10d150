package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vortexia/barbershop-manager/internal/config"
	"github.com/vortexia/barbershop-manager/internal/models"
	"github.com/vortexia/barbershop-manager/internal/storage"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, storage.NewMemoryStore(), &config.Config{})
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAppointmentLifecycle(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/api/clients", gin.H{"name": "John Doe"})
	require.Equal(t, http.StatusCreated, w.Code)
	client := decode[models.Client](t, w)
	require.NotEmpty(t, client.ID)

	w = do(t, r, http.MethodPost, "/api/appointments", gin.H{
		"client_id": client.ID,
		"date":      "2027-03-01",
		"time":      "10:00",
		"service":   "Haircut",
		"price":     "500",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	ap := decode[models.Appointment](t, w)
	require.Equal(t, "scheduled", ap.Status)
	require.Equal(t, "John Doe", ap.ClientName)

	w = do(t, r, http.MethodPatch, "/api/appointments/"+ap.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	done := decode[models.Appointment](t, w)
	require.Equal(t, "completed", done.Status)

	// Segunda conclusão é rejeitada como conflito
	w = do(t, r, http.MethodPatch, "/api/appointments/"+ap.ID+"/complete", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/api/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	transactions := decode[struct {
		Data  []models.Transaction `json:"data"`
		Total int                  `json:"total"`
	}](t, w)
	require.Equal(t, 1, transactions.Total)
	require.Equal(t, "income", transactions.Data[0].Type)
	require.Equal(t, "Haircut - John Doe", transactions.Data[0].Description)

	w = do(t, r, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	clients := decode[struct {
		Data []models.Client `json:"data"`
	}](t, w)
	require.Len(t, clients.Data, 1)
	require.Equal(t, "500", clients.Data[0].TotalPaid.String())
}

func TestAppointmentValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("missing required fields", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/appointments", gin.H{"date": "2027-03-01"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("closed day is unprocessable", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/appointments", gin.H{
			"client_name": "Walk In",
			"date":        "2027-03-07", // domingo fechado nos defaults
			"time":        "10:00",
			"service":     "Haircut",
			"price":       "500",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown appointment is 404", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/api/appointments/nope/complete", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCalculatorEndpoints(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/api/calculator", gin.H{
		"client":         "Acme",
		"width":          "1.2",
		"height":         "1.8",
		"price_per_sqm":  "12000",
		"margin_percent": "30",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	calc := decode[models.Calculation](t, w)
	require.Equal(t, "Calculation 1", calc.Name)
	require.Equal(t, "33696", calc.Result.SaleCost.String())

	t.Run("incomplete input", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/calculator", gin.H{
			"client": "Acme",
			"width":  "1.2",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("csv export", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/api/calculations/export", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		require.Contains(t, w.Body.String(), "Calculation 1")
	})

	t.Run("quote document", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/api/calculations/"+calc.ID+"/document", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Client: Acme")
	})
}

func TestSettingsEndpoints(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	settings := decode[models.BusinessSettings](t, w)
	require.Equal(t, "Benjamin Castro Barbershop", settings.BusinessName)

	settings.BusinessName = "Corner Cuts"
	w = do(t, r, http.MethodPut, "/api/settings", settings)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/settings", nil)
	updated := decode[models.BusinessSettings](t, w)
	require.Equal(t, "Corner Cuts", updated.BusinessName)
}

func TestInventoryImageUploadDisabled(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/api/inventory", gin.H{
		"name":     "Pomade",
		"price":    "30",
		"quantity": 10,
		"category": "styling",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode[models.InventoryItem](t, w)

	// Sem bucket configurado o upload é recusado
	w = do(t, r, http.MethodPost, "/api/inventory/"+item.ID+"/image", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDashboard(t *testing.T) {
	r := newTestRouter()

	do(t, r, http.MethodPost, "/api/clients", gin.H{"name": "John Doe"})
	do(t, r, http.MethodPost, "/api/transactions", gin.H{
		"type":        "income",
		"amount":      "800",
		"description": "Walk-in haircut",
		"category":    "service",
	})
	do(t, r, http.MethodPost, "/api/transactions", gin.H{
		"type":        "expense",
		"amount":      "300",
		"description": "Clippers",
		"category":    "equipment",
	})

	w := do(t, r, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode[map[string]json.RawMessage](t, w)
	require.JSONEq(t, `1`, string(stats["total_clients"]))
	require.JSONEq(t, `"800"`, string(stats["total_income"]))
	require.JSONEq(t, `"300"`, string(stats["total_expenses"]))
	require.JSONEq(t, `"500"`, string(stats["total_profit"]))
}
