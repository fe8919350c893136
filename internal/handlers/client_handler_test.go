package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastreadormanager/rastreador-api/internal/config"
	"github.com/rastreadormanager/rastreador-api/internal/middleware"
	"github.com/rastreadormanager/rastreador-api/internal/models"
	"github.com/rastreadormanager/rastreador-api/internal/storage"
	"github.com/rastreadormanager/rastreador-api/internal/store"
	"github.com/rastreadormanager/rastreador-api/internal/timezone"
)

// monta o router como em routes.go, mas com o operador injetado
// direto no contexto em vez do middleware JWT.
func newTestRouter(t *testing.T) (*gin.Engine, *store.ClientStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	clients := store.NewClientStore(st)
	templates := store.NewTemplateStore(st)
	cfg := &config.Config{
		Timezone:    timezone.DefaultTimezone,
		CountryCode: "55",
	}

	clientHandler := NewClientHandler(clients, nil)
	waHandler := NewWhatsAppHandler(clients, templates, cfg, nil)

	r := gin.New()
	api := r.Group("/api/me", func(c *gin.Context) {
		c.Set(middleware.ContextOperator, "operador@teste.com")
		c.Next()
	})

	api.GET("/clients", clientHandler.List)
	api.POST("/clients", clientHandler.Create)
	api.PATCH("/clients/:id", clientHandler.Update)
	api.DELETE("/clients/:id", clientHandler.Delete)
	api.PATCH("/clients/:id/retrieved", clientHandler.MarkRetrieved)
	api.GET("/clients/:id/whatsapp", waHandler.Preview)
	api.POST("/clients/:id/whatsapp", waHandler.Send)
	api.GET("/stats", clientHandler.Stats)

	return r, clients
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateClient(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/me/clients", models.ClientData{
		Name:  "Ana Souza",
		Phone: "(11) 98765-4321",
		Plate: "XYZ9A12",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana Souza", created.Name)
	assert.Equal(t, "Fazer", created.Status)
	assert.False(t, created.SentWhatsapp)
}

func TestCreateClientMissingName(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/me/clients", models.ClientData{
		Name:  "   ",
		Phone: "11999999999",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_name")
}

func TestListClientsFiltered(t *testing.T) {
	r, clients := newTestRouter(t)
	seedClient(t, clients, "Ana", "Fazer")
	seedClient(t, clients, "Bruno", "Agendado")

	w := doJSON(t, r, http.MethodGet, "/api/me/clients?status=Agendado", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []models.Client `json:"data"`
		Total int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Bruno", resp.Data[0].Name)
}

func TestUpdateClientNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/me/clients/nao-existe", models.ClientData{Name: "X"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "client_not_found")
}

func TestDeleteClient(t *testing.T) {
	r, clients := newTestRouter(t)
	c := seedClient(t, clients, "Ana", "Fazer")

	w := doJSON(t, r, http.MethodDelete, "/api/me/clients/"+c.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, clients.Len())

	w = doJSON(t, r, http.MethodDelete, "/api/me/clients/"+c.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkRetrieved(t *testing.T) {
	r, clients := newTestRouter(t)
	c := seedClient(t, clients, "Ana", "Agendado")

	w := doJSON(t, r, http.MethodPatch, "/api/me/clients/"+c.ID+"/retrieved", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Retirado", updated.Status)
}

func TestWhatsAppPreview(t *testing.T) {
	r, clients := newTestRouter(t)
	c := seedClient(t, clients, "Ana", "Fazer")

	w := doJSON(t, r, http.MethodGet, "/api/me/clients/"+c.ID+"/whatsapp", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TemplateID string `json:"template_id"`
		Message    string `json:"message"`
		Link       string `json:"link"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "agendamento", resp.TemplateID)
	assert.Contains(t, resp.Message, "Ana")
	assert.NotContains(t, resp.Message, "{NOME}")
	assert.True(t, strings.HasPrefix(resp.Link, "https://wa.me/5511"), resp.Link)
}

func TestWhatsAppSendMarksClient(t *testing.T) {
	r, clients := newTestRouter(t)
	c := seedClient(t, clients, "Ana", "Fazer")

	w := doJSON(t, r, http.MethodPost, "/api/me/clients/"+c.ID+"/whatsapp", gin.H{
		"message": "Bom dia Ana",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Link   string        `json:"link"`
		Client models.Client `json:"client"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Contains(t, resp.Link, "Bom%20dia%20Ana")
	assert.True(t, resp.Client.SentWhatsapp)

	got, ok := clients.Get(c.ID)
	require.True(t, ok)
	assert.True(t, got.SentWhatsapp)
}

func TestStatsEndpoint(t *testing.T) {
	r, clients := newTestRouter(t)
	seedClient(t, clients, "Ana", "Fazer")
	seedClient(t, clients, "Bruno", "Retirado")

	w := doJSON(t, r, http.MethodGet, "/api/me/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats store.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ToDo)
	assert.Equal(t, 1, stats.Done)
}

func seedClient(t *testing.T, clients *store.ClientStore, name, status string) models.Client {
	t.Helper()

	c, err := clients.Add(context.Background(), models.ClientData{
		Name:   name,
		Phone:  "(11) 98765-4321",
		Status: status,
	})
	require.NoError(t, err)
	return c
}
