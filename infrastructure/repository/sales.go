package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/sqldb"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks

type SalesRepository interface {
	// CountSales executa uma query de contagem (zero ou uma linha agregada)
	CountSales(ctx context.Context, query QuerySpec) (int64, error)
	// ListSales executa uma query de dados (zero ou mais linhas)
	ListSales(ctx context.Context, query QuerySpec) ([]*domain.SalesTransaction, error)
	// ListFacetValues retorna os pares (dimensão, valor) distintos de toda a tabela
	ListFacetValues(ctx context.Context) ([]*domain.FacetValue, error)
	DeleteAll(ctx context.Context) error
	InsertBatch(ctx context.Context, sales []*domain.SalesTransaction) error
}

type salesRepository struct {
	conn sqldb.Conn
}

func NewSalesRepository(conn sqldb.Conn) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) CountSales(ctx context.Context, query QuerySpec) (int64, error) {
	var total sql.NullInt64
	err := r.conn.QueryRowContext(ctx, query.SQL, query.Args...).Scan(&total)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao contar vendas: %w", wrapDriverError(err))
	}

	return total.Int64, nil
}

func (r *salesRepository) ListSales(ctx context.Context, query QuerySpec) ([]*domain.SalesTransaction, error) {
	rows, err := r.conn.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", wrapDriverError(err))
	}
	defer rows.Close()

	sales := make([]*domain.SalesTransaction, 0)
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

// facetDimensions associa cada dimensão de faceta à sua coluna
var facetDimensions = []struct {
	dimension string
	column    string
}{
	{dimension: domain.FacetRegion, column: "region"},
	{dimension: domain.FacetCategory, column: "category"},
	{dimension: domain.FacetPaymentMethod, column: "payment_method"},
	{dimension: domain.FacetTags, column: tagsColumn},
}

// facetQuery monta um único SELECT DISTINCT por dimensão unidos com UNION ALL.
// Não depende de GROUP_CONCAT/string_agg, então funciona nos dois dialetos.
func facetQuery() (string, error) {
	parts := make([]string, 0, len(facetDimensions))
	for _, fd := range facetDimensions {
		part, _, err := squirrel.
			Select(fmt.Sprintf("'%s' AS dimension", fd.dimension), fd.column+" AS value").
			Distinct().
			From(salesTable).
			Where(squirrel.NotEq{fd.column: nil}).
			ToSql()
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, " UNION ALL "), nil
}

func (r *salesRepository) ListFacetValues(ctx context.Context) ([]*domain.FacetValue, error) {
	query, err := facetQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de facetas: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar facetas: %w", wrapDriverError(err))
	}
	defer rows.Close()

	values := make([]*domain.FacetValue, 0)
	for rows.Next() {
		fv := &domain.FacetValue{}
		if err := rows.Scan(&fv.Dimension, &fv.Value); err != nil {
			return nil, fmt.Errorf("erro ao escanear faceta: %w", err)
		}
		values = append(values, fv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de facetas: %w", err)
	}

	return values, nil
}

func (r *salesRepository) DeleteAll(ctx context.Context) error {
	query, args, err := squirrel.Delete(salesTable).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao limpar vendas: %w", wrapDriverError(err))
	}

	return nil
}

// InsertBatch grava as vendas numa única transação
func (r *salesRepository) InsertBatch(ctx context.Context, sales []*domain.SalesTransaction) error {
	if len(sales) == 0 {
		return nil
	}

	// id é gerado pelo banco
	insertColumns := salesColumns[1:]

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, sale := range sales {
			query, args, err := squirrel.
				Insert(salesTable).
				Columns(insertColumns...).
				Values(saleValues(sale)...).
				PlaceholderFormat(r.conn.PlaceholderFormat()).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir venda de %s: %w", sale.CustomerID, wrapDriverError(err))
			}
		}
		return nil
	})
}

func saleValues(s *domain.SalesTransaction) []interface{} {
	return []interface{}{
		s.CustomerID,
		s.CustomerName,
		s.PhoneNumber,
		s.Gender,
		s.Age,
		nullIfEmpty(s.Region),
		s.CustomerType,
		s.ProductID,
		s.ProductName,
		s.Brand,
		nullIfEmpty(s.Category),
		nullIfEmpty(s.Tags),
		s.Quantity,
		s.PricePerUnit,
		s.DiscountPercentage,
		s.TotalAmount,
		s.FinalAmount,
		s.Date,
		nullIfEmpty(s.PaymentMethod),
		s.OrderStatus,
		s.DeliveryType,
		s.StoreID,
		s.StoreLocation,
		s.EmployeeName,
	}
}

func scanSale(rows *sql.Rows) (*domain.SalesTransaction, error) {
	s := &domain.SalesTransaction{}
	var region, category, tags, paymentMethod sql.NullString

	if err := rows.Scan(
		&s.ID,
		&s.CustomerID,
		&s.CustomerName,
		&s.PhoneNumber,
		&s.Gender,
		&s.Age,
		&region,
		&s.CustomerType,
		&s.ProductID,
		&s.ProductName,
		&s.Brand,
		&category,
		&tags,
		&s.Quantity,
		&s.PricePerUnit,
		&s.DiscountPercentage,
		&s.TotalAmount,
		&s.FinalAmount,
		&s.Date,
		&paymentMethod,
		&s.OrderStatus,
		&s.DeliveryType,
		&s.StoreID,
		&s.StoreLocation,
		&s.EmployeeName,
	); err != nil {
		return nil, err
	}

	s.Region = region.String
	s.Category = category.String
	s.Tags = tags.String
	s.PaymentMethod = paymentMethod.String

	return s, nil
}

func nullIfEmpty(v string) interface{} {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}

// wrapDriverError acrescenta o código de erro do postgres quando disponível
func wrapDriverError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return err
}
