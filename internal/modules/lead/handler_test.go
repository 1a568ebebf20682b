package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tyltyhub/internal/database"
	"tyltyhub/internal/domain"
	"tyltyhub/internal/repository"
)

type apiResponse struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	LeadID     int64         `json:"leadId"`
	Data       []domain.Lead `json:"data"`
	Total      int           `json:"total"`
	TotalLeads int64         `json:"totalLeads"`
}

func setupRouter(t *testing.T, production bool) (*gin.Engine, *repository.LeadRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	leadRepo := repository.NewLeadRepository(db)
	service := NewService(leadRepo)
	handler := NewHandler(service, production)

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Rota não encontrada",
		})
	})

	return router, leadRepo
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var payload apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func submission() map[string]string {
	return map[string]string{
		"nomeCompleto": "Maria Silva",
		"email":        "maria@ex.com",
		"whatsapp":     "(11) 98888-7777",
	}
}

func TestSaveLead(t *testing.T) {
	router, leadRepo := setupRouter(t, false)

	resp := performRequest(router, http.MethodPost, "/api/save-lead", submission())
	require.Equal(t, http.StatusOK, resp.Code)

	payload := decode(t, resp)
	assert.True(t, payload.Success)
	assert.Equal(t, "Cadastro realizado com sucesso!", payload.Message)
	assert.Equal(t, int64(1), payload.LeadID)

	leads, err := leadRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "11988887777", leads[0].Whatsapp, "stored digits-only")
}

func TestSaveLeadDuplicateEmail(t *testing.T) {
	router, _ := setupRouter(t, false)

	resp := performRequest(router, http.MethodPost, "/api/save-lead", submission())
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/save-lead", submission())
	require.Equal(t, http.StatusConflict, resp.Code)

	payload := decode(t, resp)
	assert.False(t, payload.Success)
	assert.Equal(t, "Este e-mail já está cadastrado", payload.Message)
}

func TestSaveLeadShortWhatsApp(t *testing.T) {
	router, _ := setupRouter(t, false)

	body := submission()
	body["whatsapp"] = "123"
	resp := performRequest(router, http.MethodPost, "/api/save-lead", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	payload := decode(t, resp)
	assert.False(t, payload.Success)
	assert.Equal(t, "WhatsApp deve ter 11 dígitos", payload.Message)
}

func TestSaveLeadMissingField(t *testing.T) {
	router, _ := setupRouter(t, false)

	body := submission()
	delete(body, "email")
	resp := performRequest(router, http.MethodPost, "/api/save-lead", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	payload := decode(t, resp)
	assert.Equal(t, "Todos os campos são obrigatórios", payload.Message)
}

func TestSaveLeadInvalidEmail(t *testing.T) {
	router, _ := setupRouter(t, false)

	body := submission()
	body["email"] = "sem-arroba.com"
	resp := performRequest(router, http.MethodPost, "/api/save-lead", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	payload := decode(t, resp)
	assert.Equal(t, "E-mail inválido", payload.Message)
}

func TestListLeads(t *testing.T) {
	router, _ := setupRouter(t, false)

	first := submission()
	second := submission()
	second["nomeCompleto"] = "Ana Souza"
	second["email"] = "ana@ex.com"
	performRequest(router, http.MethodPost, "/api/save-lead", first)
	performRequest(router, http.MethodPost, "/api/save-lead", second)

	resp := performRequest(router, http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	payload := decode(t, resp)
	assert.True(t, payload.Success)
	assert.Equal(t, 2, payload.Total)
	require.Len(t, payload.Data, 2)
	assert.Equal(t, "ana@ex.com", payload.Data[0].Email, "newest first")
}

func TestListLeadsForbiddenInProduction(t *testing.T) {
	router, _ := setupRouter(t, true)

	resp := performRequest(router, http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusForbidden, resp.Code)

	payload := decode(t, resp)
	assert.False(t, payload.Success)
	assert.Equal(t, "Endpoint não disponível em produção", payload.Message)
}

func TestSaveLeadStillWorksInProduction(t *testing.T) {
	router, _ := setupRouter(t, true)

	resp := performRequest(router, http.MethodPost, "/api/save-lead", submission())
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestStats(t *testing.T) {
	router, _ := setupRouter(t, false)

	performRequest(router, http.MethodPost, "/api/save-lead", submission())

	resp := performRequest(router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	payload := decode(t, resp)
	assert.True(t, payload.Success)
	assert.Equal(t, int64(1), payload.TotalLeads)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupRouter(t, false)

	resp := performRequest(router, http.MethodGet, "/api/nao-existe", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	payload := decode(t, resp)
	assert.False(t, payload.Success)
	assert.Equal(t, "Rota não encontrada", payload.Message)
}
