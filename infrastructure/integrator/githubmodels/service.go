package githubmodels

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	githubmodelsdomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/githubmodels/domain"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/githubmodels/modelsclient"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxTokens    = 200
	missingValue = "N/A"

	systemPrompt = "Eres un analista que escribe resúmenes breves y claros para emails corporativos en español. Sé conciso (<=120 palabras)."
	userPrompt   = "Periodo: %s a %s. Con estos datos: totalUnits=%d, totalRevenue=%s, topSku=%s, topBranch=%s. Devuelve un resumen ≤120 palabras para enviar por email."
)

// caminhos aceitos para o texto gerado, na ordem de preferência
var contentPaths = [][]any{
	{"choices", 0, "message", "content"},
	{"choices", 0, "text"},
	{"data", 0, "content"},
}

type SummaryService struct {
	cfg    config.LLM
	client modelsclient.Client
}

func New(cfg *config.Config, client modelsclient.Client) *SummaryService {
	return &SummaryService{
		cfg:    cfg.LLM,
		client: client,
	}
}

// GenerateSummary pede ao modelo um resumo curto dos agregados. Endpoint não
// configurado, fora do ar ou com resposta sem texto resulta em ok=false.
func (s *SummaryService) GenerateSummary(ctx context.Context, aggregates *domain.SalesAggregates, from, to time.Time) (string, bool, error) {
	if !s.cfg.Enabled() {
		logrus.Warn("GITHUB_TOKEN ou MODEL_ID não configurados, usando resumo simples")
		return "", false, nil
	}
	if aggregates == nil {
		return "", false, nil
	}

	req := githubmodelsdomain.ChatCompletionRequest{
		Model: s.cfg.ModelID,
		Messages: []githubmodelsdomain.Message{
			{Role: githubmodelsdomain.RoleSystem, Content: systemPrompt},
			{Role: githubmodelsdomain.RoleUser, Content: buildUserPrompt(aggregates, from, to)},
		},
		MaxTokens: maxTokens,
	}

	body, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, githubmodelsdomain.ErrInvalidRequest) {
			return "", false, err
		}
		logrus.WithError(err).Warn("Endpoint de resumo indisponível")
		return "", false, nil
	}

	text, ok := extractContent(body)
	if !ok {
		logrus.Warn("Resposta do endpoint de resumo sem texto utilizável")
		return "", false, nil
	}

	return text, true, nil
}

func buildUserPrompt(aggregates *domain.SalesAggregates, from, to time.Time) string {
	return fmt.Sprintf(userPrompt,
		from.Format(time.DateOnly),
		to.Format(time.DateOnly),
		aggregates.TotalUnits,
		aggregates.FormattedRevenue(),
		valueOrMissing(aggregates.TopSku),
		valueOrMissing(aggregates.TopBranch),
	)
}

func valueOrMissing(value *string) string {
	if value == nil || *value == "" {
		return missingValue
	}
	return *value
}

// extractContent retorna o primeiro conteúdo não nulo encontrado. Valores que
// não são string são usados na sua forma textual.
func extractContent(body []byte) (string, bool) {
	if !json.Valid(body) {
		return "", false
	}

	for _, path := range contentPaths {
		value := json.Get(body, path...)
		switch value.ValueType() {
		case jsoniter.InvalidValue, jsoniter.NilValue:
			continue
		}

		text := strings.TrimSpace(value.ToString())
		return text, text != ""
	}

	return "", false
}
