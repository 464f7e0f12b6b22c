package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Sale struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Units     int             `json:"units"`
	Price     decimal.Decimal `json:"price"`
	Branch    string          `json:"branch"`
	SoldAt    time.Time       `json:"soldAt"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Revenue retorna units × price
func (s *Sale) Revenue() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Units)))
}

type SaleInput struct {
	SKU    string          `json:"sku"`
	Units  int             `json:"units"`
	Price  decimal.Decimal `json:"price"`
	Branch string          `json:"branch"`
	SoldAt *time.Time      `json:"soldAt"`
}

type SaleFilters struct {
	From   *time.Time
	To     *time.Time
	Branch string
}

type PageRequest struct {
	Page int
	Size int
}

// Normalize aplica os valores padrão de paginação
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageRequest) Offset() uint64 {
	return uint64(p.Page * p.Size)
}

type SalePage struct {
	Content       []*Sale `json:"content"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}

func NewSalePage(content []*Sale, page PageRequest, total int64) *SalePage {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}

	if content == nil {
		content = []*Sale{}
	}

	return &SalePage{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
