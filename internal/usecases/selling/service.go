package selling

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

const saleIDPrefix = "s_"

type SaleService interface {
	CreateSale(ctx context.Context, actor domain.Actor, input domain.SaleInput) (*domain.Sale, error)
	GetSale(ctx context.Context, actor domain.Actor, id string) (*domain.Sale, error)
	ListSales(ctx context.Context, actor domain.Actor, filters domain.SaleFilters, page domain.PageRequest) (*domain.SalePage, error)
	UpdateSale(ctx context.Context, actor domain.Actor, id string, input domain.SaleInput) (*domain.Sale, error)
	DeleteSale(ctx context.Context, actor domain.Actor, id string) error
}

type Service struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

func NewService(saleRepo repository.SaleRepository) SaleService {
	return &Service{
		saleRepo: saleRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) CreateSale(ctx context.Context, actor domain.Actor, input domain.SaleInput) (*domain.Sale, error) {
	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccessBranch(input.Branch) {
		return nil, ErrForbidden
	}

	id, err := utils.GenerateID(saleIDPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da venda")
	}

	sale := &domain.Sale{
		ID:        id,
		SKU:       input.SKU,
		Units:     input.Units,
		Price:     input.Price,
		Branch:    input.Branch,
		SoldAt:    input.SoldAt.UTC(),
		CreatedBy: actor.Username,
	}

	sale, err = s.saleRepo.Create(ctx, sale)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao registrar venda")
	}

	logrus.WithFields(logrus.Fields{
		"sale_id": sale.ID,
		"branch":  sale.Branch,
		"sku":     sale.SKU,
	}).Debug("Venda registrada")

	return sale, nil
}

func (s *Service) GetSale(ctx context.Context, actor domain.Actor, id string) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar venda")
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	if !actor.CanAccessBranch(sale.Branch) {
		return nil, ErrForbidden
	}

	return sale, nil
}

func (s *Service) ListSales(ctx context.Context, actor domain.Actor, filters domain.SaleFilters, page domain.PageRequest) (*domain.SalePage, error) {
	if !actor.IsCentral() {
		if actor.Branch == "" {
			return nil, ErrForbidden
		}
		filters.Branch = actor.Branch
	}
	filters.Branch = strings.TrimSpace(filters.Branch)

	if filters.From == nil {
		epoch := time.Unix(0, 0).UTC()
		filters.From = &epoch
	}
	if filters.To == nil {
		now := s.now()
		filters.To = &now
	}
	if filters.From.After(*filters.To) {
		return nil, errors.Wrap(ErrInvalidSale, "a data inicial deve ser anterior à data final")
	}

	result, err := s.saleRepo.List(ctx, filters, page.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendas")
	}

	return result, nil
}

func (s *Service) UpdateSale(ctx context.Context, actor domain.Actor, id string, input domain.SaleInput) (*domain.Sale, error) {
	input, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	sale, err := s.GetSale(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// uma filial não pode transferir a venda para outra filial
	if !actor.CanAccessBranch(input.Branch) {
		return nil, ErrForbidden
	}

	sale.SKU = input.SKU
	sale.Units = input.Units
	sale.Price = input.Price
	sale.Branch = input.Branch
	sale.SoldAt = input.SoldAt.UTC()

	updated, err := s.saleRepo.Update(ctx, sale)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar venda")
	}
	if updated == nil {
		return nil, ErrSaleNotFound
	}

	return updated, nil
}

func (s *Service) DeleteSale(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsCentral() {
		return ErrForbidden
	}

	deleted, err := s.saleRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "erro ao remover venda")
	}
	if !deleted {
		return ErrSaleNotFound
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":    id,
		"deleted_by": actor.Username,
	}).Info("Venda removida")

	return nil
}

func validateInput(input domain.SaleInput) (domain.SaleInput, error) {
	input.SKU = strings.TrimSpace(input.SKU)
	input.Branch = strings.TrimSpace(input.Branch)

	switch {
	case input.SKU == "":
		return input, errors.Wrap(ErrInvalidSale, "sku é obrigatório")
	case input.Units < 1:
		return input, errors.Wrap(ErrInvalidSale, "units deve ser maior que zero")
	case input.Price.IsNegative():
		return input, errors.Wrap(ErrInvalidSale, "price não pode ser negativo")
	case input.Branch == "":
		return input, errors.Wrap(ErrInvalidSale, "branch é obrigatório")
	case input.SoldAt == nil || input.SoldAt.IsZero():
		return input, errors.Wrap(ErrInvalidSale, "soldAt é obrigatório")
	}

	return input, nil
}
