package reporting

import "github.com/pkg/errors"

var (
	ErrReportRequestNotFound = errors.New("solicitação de relatório não encontrada")
	ErrDatesRequired         = errors.New("as datas de início e fim são obrigatórias")
	ErrAggregationFailed     = errors.New("falha ao calcular os agregados")
	ErrInvalidPayload        = errors.New("payload de job inválido")

	ErrForbidden        = errors.New("acesso negado aos dados da filial")
	ErrInvalidDateRange = errors.New("a data inicial deve ser anterior ou igual à data final")
	ErrInvalidEmail     = errors.New("email de destino inválido")
	ErrQueueUnavailable = errors.New("fila de relatórios indisponível")
)
