package modelsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	githubmodelsdomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/githubmodels/domain"
)

// CreateChatCompletion envia a requisição ao endpoint configurado e retorna o
// corpo bruto da resposta 2xx
func (c *ModelsClient) CreateChatCompletion(ctx context.Context, req githubmodelsdomain.ChatCompletionRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao serializar a requisição: %v", githubmodelsdomain.ErrInvalidRequest, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao criar a requisição: %v", githubmodelsdomain.ErrInvalidRequest, err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.config.Token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar o endpoint de resumo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &githubmodelsdomain.StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
