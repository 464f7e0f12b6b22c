package selling

import "github.com/pkg/errors"

var (
	ErrSaleNotFound = errors.New("venda não encontrada")
	ErrForbidden    = errors.New("acesso negado aos dados da filial")
	ErrInvalidSale  = errors.New("dados da venda inválidos")
)
