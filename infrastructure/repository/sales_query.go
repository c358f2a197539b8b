package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

const (
	salesTable = "sales"

	idColumn   = "id"
	dateColumn = "transaction_date"
)

var salesColumns = []string{
	"id",
	"customer_id",
	"customer_name",
	"phone_number",
	"gender",
	"age",
	"region",
	"customer_type",
	"product_id",
	"product_name",
	"brand",
	"category",
	"tags",
	"quantity",
	"price_per_unit",
	"discount_percentage",
	"total_amount",
	"final_amount",
	"transaction_date",
	"payment_method",
	"order_status",
	"delivery_type",
	"store_id",
	"store_location",
	"employee_name",
}

// sortColumns é a whitelist de chaves de ordenação: somente estes nomes de coluna
// são interpolados no texto da query
var sortColumns = map[domain.SortKey]string{
	domain.SortByDate:         dateColumn,
	domain.SortByAmount:       "final_amount",
	domain.SortByAge:          "age",
	domain.SortByCustomerName: "customer_name",
	domain.SortByQuantity:     "quantity",
	domain.SortByCategory:     "category",
	domain.SortByGender:       "gender",
}

// QuerySpec é uma query pronta para execução: texto + parâmetros na ordem dos placeholders
type QuerySpec struct {
	SQL  string        `json:"sql"`
	Args []interface{} `json:"args"`
}

// SalesQueries agrupa a query de contagem e a query de dados de uma listagem.
// As duas compartilham a mesma cláusula WHERE e os mesmos parâmetros iniciais.
type SalesQueries struct {
	Count QuerySpec `json:"count"`
	Data  QuerySpec `json:"data"`
}

//go:generate mockgen -source=sales_query.go -destination=mocks/sales_query.go -package=mocks

type SalesQueryBuilder interface {
	Build(criteria domain.FilterCriteria) (*SalesQueries, error)
}

type salesQueryBuilder struct {
	placeholder squirrel.PlaceholderFormat
}

func NewSalesQueryBuilder(placeholder squirrel.PlaceholderFormat) SalesQueryBuilder {
	return &salesQueryBuilder{placeholder: placeholder}
}

func (b *salesQueryBuilder) Build(criteria domain.FilterCriteria) (*SalesQueries, error) {
	conditions := salesConditions(criteria)

	countBuilder := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		PlaceholderFormat(b.placeholder)

	dataBuilder := squirrel.
		Select(salesColumns...).
		From(salesTable).
		PlaceholderFormat(b.placeholder)

	// Cada condição entra separadamente; sem condições não há WHERE
	for _, condition := range conditions {
		countBuilder = countBuilder.Where(condition)
		dataBuilder = dataBuilder.Where(condition)
	}

	dataBuilder = dataBuilder.
		OrderBy(orderByClauses(criteria.Sort)...).
		Suffix("LIMIT ? OFFSET ?", criteria.PageSize, criteria.Offset())

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	dataSQL, dataArgs, err := dataBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de vendas: %w", err)
	}

	return &SalesQueries{
		Count: QuerySpec{SQL: countSQL, Args: countArgs},
		Data:  QuerySpec{SQL: dataSQL, Args: dataArgs},
	}, nil
}

// salesConditions monta as condições na ordem: busca, seleções múltiplas, tags, idade, data
func salesConditions(criteria domain.FilterCriteria) []squirrel.Sqlizer {
	conditions := make([]squirrel.Sqlizer, 0)

	if criteria.SearchText != nil {
		pattern := likePattern(*criteria.SearchText)
		conditions = append(conditions, squirrel.Or{
			squirrel.Like{"customer_name": pattern},
			squirrel.Like{"phone_number": pattern},
		})
	}

	inFilters := []struct {
		column string
		values []string
	}{
		{column: "region", values: criteria.Regions},
		{column: "gender", values: criteria.Genders},
		{column: "category", values: criteria.Categories},
		{column: "payment_method", values: criteria.PaymentMethods},
	}
	for _, filter := range inFilters {
		if len(filter.values) == 0 {
			continue
		}
		conditions = append(conditions, squirrel.Eq{filter.column: filter.values})
	}

	if len(criteria.Tags) > 0 {
		conditions = append(conditions, tagsContainAny(criteria.Tags))
	}

	if criteria.AgeMin != nil {
		conditions = append(conditions, squirrel.GtOrEq{"age": *criteria.AgeMin})
	}
	if criteria.AgeMax != nil {
		conditions = append(conditions, squirrel.LtOrEq{"age": *criteria.AgeMax})
	}

	if criteria.DateMin != nil {
		conditions = append(conditions, squirrel.GtOrEq{dateColumn: *criteria.DateMin})
	}
	if criteria.DateMax != nil {
		conditions = append(conditions, squirrel.LtOrEq{dateColumn: *criteria.DateMax})
	}

	return conditions
}

// orderByClauses retorna a ordenação validada ou a padrão, sempre com desempate por id
// para manter a paginação estável
func orderByClauses(sort *domain.SortOption) []string {
	option := domain.DefaultSortOption()
	if sort != nil {
		if _, ok := sortColumns[sort.Key]; ok {
			option = *sort
		}
	}

	direction := "ASC"
	if option.Direction == domain.SortDesc {
		direction = "DESC"
	}

	column := sortColumns[option.Key]
	return []string{
		column + " " + direction,
		idColumn + " " + direction,
	}
}

func likePattern(value string) string {
	return "%" + value + "%"
}
