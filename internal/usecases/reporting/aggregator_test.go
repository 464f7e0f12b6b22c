package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newSale(sku string, units int, price, branch string) *domain.Sale {
	return &domain.Sale{
		SKU:    sku,
		Units:  units,
		Price:  decimal.RequireFromString(price),
		Branch: branch,
		SoldAt: time.Date(2025, 9, 3, 15, 0, 0, 0, time.UTC),
	}
}

func scenarioASales() []*domain.Sale {
	return []*domain.Sale{
		newSale("OREO_CLASSIC", 10, "1.99", "Miraflores"),
		newSale("OREO_DOUBLE", 5, "2.49", "San Isidro"),
		newSale("OREO_CLASSIC", 15, "1.99", "Miraflores"),
	}
}

func TestAggregator_CalculateAggregates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	aggregator := NewAggregator(mockSaleRepo)

	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 7, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		branch   string
		setup    func()
		validate func(t *testing.T, agg *domain.SalesAggregates, err error)
	}{
		{
			name:   "Cenário A - todas as filiais",
			branch: "",
			setup: func() {
				mockSaleRepo.EXPECT().FindInRange(gomock.Any(), from, to).Return(scenarioASales(), nil)
			},
			validate: func(t *testing.T, agg *domain.SalesAggregates, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(30), agg.TotalUnits)
				assert.Equal(t, "62.20", agg.FormattedRevenue())
				assert.Equal(t, map[string]int64{"OREO_CLASSIC": 25, "OREO_DOUBLE": 5}, agg.UnitsBySku)
				assert.True(t, decimal.RequireFromString("49.75").Equal(agg.RevenueByBranch["Miraflores"]))
				assert.True(t, decimal.RequireFromString("12.45").Equal(agg.RevenueByBranch["San Isidro"]))
				require.NotNil(t, agg.TopSku)
				require.NotNil(t, agg.TopBranch)
				assert.Equal(t, "OREO_CLASSIC", *agg.TopSku)
				assert.Equal(t, "Miraflores", *agg.TopBranch)
			},
		},
		{
			name:   "Conjunto vazio",
			branch: "",
			setup: func() {
				mockSaleRepo.EXPECT().FindInRange(gomock.Any(), from, to).Return(nil, nil)
			},
			validate: func(t *testing.T, agg *domain.SalesAggregates, err error) {
				require.NoError(t, err)
				assert.Zero(t, agg.TotalUnits)
				assert.Equal(t, "0.00", agg.FormattedRevenue())
				assert.Empty(t, agg.UnitsBySku)
				assert.Empty(t, agg.RevenueByBranch)
				assert.Nil(t, agg.TopSku)
				assert.Nil(t, agg.TopBranch)
			},
		},
		{
			name:   "Filtro por filial usa a consulta com filial",
			branch: " San Isidro ",
			setup: func() {
				mockSaleRepo.EXPECT().
					FindInRangeAndBranch(gomock.Any(), from, to, "San Isidro").
					Return([]*domain.Sale{newSale("OREO_DOUBLE", 5, "2.49", "San Isidro")}, nil)
			},
			validate: func(t *testing.T, agg *domain.SalesAggregates, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(5), agg.TotalUnits)
				assert.Equal(t, "12.45", agg.FormattedRevenue())
				assert.Equal(t, "San Isidro", *agg.TopBranch)
			},
		},
		{
			name:   "Empate escolhe a menor chave",
			branch: "",
			setup: func() {
				mockSaleRepo.EXPECT().FindInRange(gomock.Any(), from, to).Return([]*domain.Sale{
					newSale("OREO_MINT", 4, "2.00", "Surco"),
					newSale("OREO_DOUBLE", 4, "2.00", "Barranco"),
					newSale("OREO_GOLDEN", 4, "2.00", "Miraflores"),
				}, nil)
			},
			validate: func(t *testing.T, agg *domain.SalesAggregates, err error) {
				require.NoError(t, err)
				assert.Equal(t, "OREO_DOUBLE", *agg.TopSku)
				assert.Equal(t, "Barranco", *agg.TopBranch)
			},
		},
		{
			name:   "Erro do repositório não gera agregado parcial",
			branch: "",
			setup: func() {
				mockSaleRepo.EXPECT().FindInRange(gomock.Any(), from, to).Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, agg *domain.SalesAggregates, err error) {
				require.Error(t, err)
				assert.Nil(t, agg)
				assert.Contains(t, err.Error(), "conexão perdida")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			agg, err := aggregator.CalculateAggregates(context.Background(), from, to, tt.branch)
			tt.validate(t, agg, err)
		})
	}
}

func TestAggregator_TopKeysBelongToMaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	aggregator := NewAggregator(mockSaleRepo)

	sales := []*domain.Sale{
		newSale("A", 1, "10.00", "X"),
		newSale("B", 3, "1.00", "Y"),
		newSale("C", 2, "0.50", "Z"),
		newSale("A", 1, "10.00", "Y"),
	}
	mockSaleRepo.EXPECT().FindInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(sales, nil)

	agg, err := aggregator.CalculateAggregates(context.Background(), time.Time{}, time.Now(), "")
	require.NoError(t, err)

	var totalUnits int64
	totalRevenue := decimal.Zero
	for _, s := range sales {
		totalUnits += int64(s.Units)
		totalRevenue = totalRevenue.Add(s.Revenue())
	}

	assert.Equal(t, totalUnits, agg.TotalUnits)
	assert.True(t, totalRevenue.Equal(agg.TotalRevenue))
	assert.Contains(t, agg.UnitsBySku, *agg.TopSku)
	assert.Contains(t, agg.RevenueByBranch, *agg.TopBranch)
	assert.Equal(t, "B", *agg.TopSku)
	assert.Equal(t, "Y", *agg.TopBranch)
}
