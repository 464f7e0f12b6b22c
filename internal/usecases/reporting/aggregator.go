package reporting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

type Aggregator struct {
	saleRepo repository.SaleRepository
}

var _ SalesAggregator = (*Aggregator)(nil)

func NewAggregator(saleRepo repository.SaleRepository) *Aggregator {
	return &Aggregator{saleRepo: saleRepo}
}

// CalculateAggregates soma as vendas com soldAt em [from, to]. branch vazio
// considera todas as filiais. Em empate de máximo vence a menor chave.
func (a *Aggregator) CalculateAggregates(ctx context.Context, from, to time.Time, branch string) (*domain.SalesAggregates, error) {
	var (
		sales []*domain.Sale
		err   error
	)

	branch = strings.TrimSpace(branch)
	if branch == "" {
		sales, err = a.saleRepo.FindInRange(ctx, from, to)
	} else {
		sales, err = a.saleRepo.FindInRangeAndBranch(ctx, from, to, branch)
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do período")
	}

	aggregates := domain.NewSalesAggregates()
	for _, sale := range sales {
		if sale == nil {
			continue
		}

		revenue := sale.Revenue()
		aggregates.TotalUnits += int64(sale.Units)
		aggregates.TotalRevenue = aggregates.TotalRevenue.Add(revenue)
		aggregates.UnitsBySku[sale.SKU] += int64(sale.Units)
		aggregates.RevenueByBranch[sale.Branch] = aggregates.RevenueByBranch[sale.Branch].Add(revenue)
	}

	aggregates.TopSku = topSku(aggregates.UnitsBySku)
	aggregates.TopBranch = topBranch(aggregates.RevenueByBranch)

	return aggregates, nil
}

func topSku(unitsBySku map[string]int64) *string {
	var (
		best      string
		bestUnits int64
		found     bool
	)

	for sku, units := range unitsBySku {
		if !found || units > bestUnits || (units == bestUnits && sku < best) {
			best, bestUnits, found = sku, units, true
		}
	}

	if !found {
		return nil
	}
	return &best
}

func topBranch(revenueByBranch map[string]decimal.Decimal) *string {
	var (
		best        string
		bestRevenue decimal.Decimal
		found       bool
	)

	for branch, revenue := range revenueByBranch {
		cmp := revenue.Cmp(bestRevenue)
		if !found || cmp > 0 || (cmp == 0 && branch < best) {
			best, bestRevenue, found = branch, revenue, true
		}
	}

	if !found {
		return nil
	}
	return &best
}
