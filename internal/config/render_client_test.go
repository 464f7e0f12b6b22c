package config

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClient_ListSecrets(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, secrets map[string]string, err error)
	}{
		{
			name: "Retorna secrets indexados pelo nome",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/services/srv-123/secret-files", r.URL.Path)
				assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))
				_, _ = io.WriteString(w, `[
					{"secretFile":{"name":"github_token","content":"ghp_abc"},"cursor":"c1"},
					{"secretFile":{"name":"outro","content":"x"},"cursor":"c2"}
				]`)
			},
			validate: func(t *testing.T, secrets map[string]string, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]string{"github_token": "ghp_abc", "outro": "x"}, secrets)
			},
		},
		{
			name: "Status diferente de 200 retorna erro com o corpo",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, "unauthorized")
			},
			validate: func(t *testing.T, secrets map[string]string, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unauthorized")
				assert.Nil(t, secrets)
			},
		},
		{
			name: "JSON inválido",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"nao":"lista"`)
			},
			validate: func(t *testing.T, secrets map[string]string, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewRenderClient(&Config{Render: Render{APIKey: "render-key"}})
			client.BaseURL = server.URL

			secrets, err := client.ListSecrets("srv-123")
			tt.validate(t, secrets, err)
		})
	}
}
