package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	salesTable = "sales"
)

var saleColumns = []string{"id", "sku", "units", "price", "branch", "sold_at", "created_by", "created_at"}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	Delete(ctx context.Context, id string) (bool, error)
	FindInRange(ctx context.Context, from, to time.Time) ([]*domain.Sale, error)
	FindInRangeAndBranch(ctx context.Context, from, to time.Time, branch string) ([]*domain.Sale, error)
	List(ctx context.Context, filters domain.SaleFilters, page domain.PageRequest) (*domain.SalePage, error)
}

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("id", "sku", "units", "price", "branch", "sold_at", "created_by").
		Values(sale.ID, sale.SKU, sale.Units, sale.Price, sale.Branch, sale.SoldAt.UTC(), sale.CreatedBy).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&sale.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.
		Update(salesTable).
		Set("sku", sale.SKU).
		Set("units", sale.Units).
		Set("price", sale.Price).
		Set("branch", sale.Branch).
		Set("sold_at", sale.SoldAt.UTC()).
		Where(squirrel.Eq{"id": sale.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return sale, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := scanSale(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover venda: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func (r *saleRepository) FindInRange(ctx context.Context, from, to time.Time) ([]*domain.Sale, error) {
	return r.find(ctx, squirrel.And{
		squirrel.GtOrEq{"sold_at": from.UTC()},
		squirrel.LtOrEq{"sold_at": to.UTC()},
	})
}

func (r *saleRepository) FindInRangeAndBranch(ctx context.Context, from, to time.Time, branch string) ([]*domain.Sale, error) {
	return r.find(ctx, squirrel.And{
		squirrel.GtOrEq{"sold_at": from.UTC()},
		squirrel.LtOrEq{"sold_at": to.UTC()},
		squirrel.Eq{"branch": branch},
	})
}

func (r *saleRepository) find(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(where).
		OrderBy("sold_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(ctx, r.conn, query, args...)
}

// List pagina no banco com ou sem filtro de filial; contagem e página
// são lidas na mesma transação.
func (r *saleRepository) List(ctx context.Context, filters domain.SaleFilters, page domain.PageRequest) (*domain.SalePage, error) {
	page = page.Normalize()

	where := squirrel.And{}
	if filters.From != nil {
		where = append(where, squirrel.GtOrEq{"sold_at": filters.From.UTC()})
	}
	if filters.To != nil {
		where = append(where, squirrel.LtOrEq{"sold_at": filters.To.UTC()})
	}
	if filters.Branch != "" {
		where = append(where, squirrel.Eq{"branch": filters.Branch})
	}

	countQuery, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	pageQuery, pageArgs, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(where).
		OrderBy("sold_at DESC", "id ASC").
		Limit(uint64(page.Size)).
		Offset(page.Offset()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		total int64
		sales []*domain.Sale
	)

	err = r.conn.RunInTransaction(ctx, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead}, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("erro ao contar vendas: %w", err)
		}

		var err error
		sales, err = r.querySales(ctx, tx, pageQuery, pageArgs...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return domain.NewSalePage(sales, page, total), nil
}

func (r *saleRepository) querySales(ctx context.Context, q postgres.Queryer, query string, args ...any) ([]*domain.Sale, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (*domain.Sale, error) {
	var sale domain.Sale
	err := row.Scan(
		&sale.ID,
		&sale.SKU,
		&sale.Units,
		&sale.Price,
		&sale.Branch,
		&sale.SoldAt,
		&sale.CreatedBy,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.SoldAt = sale.SoldAt.UTC()
	return &sale, nil
}
