package domain

import "github.com/shopspring/decimal"

// SalesAggregates é calculado a cada relatório e descartado após o resumo
type SalesAggregates struct {
	TotalUnits      int64                      `json:"totalUnits"`
	TotalRevenue    decimal.Decimal            `json:"totalRevenue"`
	UnitsBySku      map[string]int64           `json:"unitsBySku"`
	RevenueByBranch map[string]decimal.Decimal `json:"revenueByBranch"`
	TopSku          *string                    `json:"topSku"`
	TopBranch       *string                    `json:"topBranch"`
}

func NewSalesAggregates() *SalesAggregates {
	return &SalesAggregates{
		TotalRevenue:    decimal.Zero,
		UnitsBySku:      make(map[string]int64),
		RevenueByBranch: make(map[string]decimal.Decimal),
	}
}

// FormattedRevenue retorna a receita total com duas casas decimais
func (a *SalesAggregates) FormattedRevenue() string {
	return a.TotalRevenue.StringFixed(2)
}
