package githubmodels

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	githubmodelsdomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/githubmodels/domain"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/githubmodels/modelsclient"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func newTestService(url string) *SummaryService {
	cfg := &config.Config{
		LLM: config.LLM{
			Token:          "token-teste",
			URL:            url,
			ModelID:        "gpt-4o-mini",
			TimeoutSeconds: 2,
		},
	}
	return New(cfg, modelsclient.NewClient(cfg))
}

func sampleAggregates() *domain.SalesAggregates {
	agg := domain.NewSalesAggregates()
	agg.TotalUnits = 30
	agg.TotalRevenue = decimal.RequireFromString("62.2")
	topSku := "OREO_CLASSIC"
	topBranch := "Miraflores"
	agg.TopSku = &topSku
	agg.TopBranch = &topBranch
	return agg
}

func TestSummaryService_GenerateSummary(t *testing.T) {
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   int
		body     string
		wantText string
		wantOK   bool
	}{
		{
			name:     "Formato chat - usa choices[0].message.content",
			status:   http.StatusOK,
			body:     `{"choices":[{"message":{"role":"assistant","content":"  Semana con 30 unidades vendidas.  "}}]}`,
			wantText: "Semana con 30 unidades vendidas.",
			wantOK:   true,
		},
		{
			name:     "Formato completion - usa choices[0].text",
			status:   http.StatusOK,
			body:     `{"choices":[{"text":"Resumen breve"}]}`,
			wantText: "Resumen breve",
			wantOK:   true,
		},
		{
			name:     "Conteúdo nulo cai para choices[0].text",
			status:   http.StatusOK,
			body:     `{"choices":[{"message":{"content":null},"text":"hola"}]}`,
			wantText: "hola",
			wantOK:   true,
		},
		{
			name:     "Formato data - usa data[0].content",
			status:   http.StatusOK,
			body:     `{"choices":[],"data":[{"content":"Resumen desde data"}]}`,
			wantText: "Resumen desde data",
			wantOK:   true,
		},
		{
			name:     "Conteúdo numérico é convertido em texto",
			status:   http.StatusOK,
			body:     `{"choices":[{"message":{"content":42}}]}`,
			wantText: "42",
			wantOK:   true,
		},
		{
			name:   "Conteúdo em branco é ausência",
			status: http.StatusOK,
			body:   `{"choices":[{"message":{"content":"   "}}]}`,
			wantOK: false,
		},
		{
			name:   "Resposta sem campos conhecidos",
			status: http.StatusOK,
			body:   `{"id":"abc"}`,
			wantOK: false,
		},
		{
			name:   "JSON malformado",
			status: http.StatusOK,
			body:   `{"choices":[`,
			wantOK: false,
		},
		{
			name:   "Status 500 é ausência",
			status: http.StatusInternalServerError,
			body:   `{"error":"boom"}`,
			wantOK: false,
		},
		{
			name:   "Status 401 é ausência",
			status: http.StatusUnauthorized,
			body:   `{"choices":[{"message":{"content":"não deveria ser lido"}}]}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			text, ok, err := newTestService(server.URL).GenerateSummary(context.Background(), sampleAggregates(), from, to)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantText, text)
			} else {
				assert.Empty(t, text)
			}
		})
	}
}

func TestSummaryService_GenerateSummary_Request(t *testing.T) {
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	var captured githubmodelsdomain.ChatCompletionRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		authHeader = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer server.Close()

	_, ok, err := newTestService(server.URL).GenerateSummary(context.Background(), sampleAggregates(), from, to)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "Bearer token-teste", authHeader)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, 200, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, githubmodelsdomain.RoleSystem, captured.Messages[0].Role)
	assert.Equal(t, systemPrompt, captured.Messages[0].Content)
	assert.Equal(t, githubmodelsdomain.RoleUser, captured.Messages[1].Role)
	assert.Equal(t,
		"Periodo: 2025-09-01 a 2025-09-07. Con estos datos: totalUnits=30, totalRevenue=62.20, topSku=OREO_CLASSIC, topBranch=Miraflores. Devuelve un resumen ≤120 palabras para enviar por email.",
		captured.Messages[1].Content,
	)
}

func TestSummaryService_GenerateSummary_NotConfigured(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	cfg := &config.Config{LLM: config.LLM{URL: server.URL, ModelID: "gpt-4o-mini"}}
	service := New(cfg, modelsclient.NewClient(cfg))

	text, ok, err := service.GenerateSummary(context.Background(), sampleAggregates(), time.Now(), time.Now())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Zero(t, calls.Load())
}

func TestSummaryService_GenerateSummary_EndpointDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	text, ok, err := newTestService(url).GenerateSummary(context.Background(), sampleAggregates(), time.Now(), time.Now())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestSummaryService_GenerateSummary_MissingValues(t *testing.T) {
	agg := domain.NewSalesAggregates()

	prompt := buildUserPrompt(agg, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, prompt, "totalUnits=0")
	assert.Contains(t, prompt, "totalRevenue=0.00")
	assert.Contains(t, prompt, "topSku=N/A")
	assert.Contains(t, prompt, "topBranch=N/A")
}
