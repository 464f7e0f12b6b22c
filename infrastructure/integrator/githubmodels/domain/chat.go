package githubmodelsdomain

import (
	"errors"
	"fmt"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ErrInvalidRequest indica falha ao montar a requisição (erro de programação
// ou configuração), diferente de indisponibilidade do endpoint
var ErrInvalidRequest = errors.New("requisição de resumo inválida")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// StatusError representa uma resposta não 2xx do endpoint
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("endpoint de resumo respondeu com status %d: %s", e.StatusCode, e.Body)
}
