package listing

import "errors"

// Erros da listagem de vendas. Todos resultam em falha genérica para o cliente.
var (
	ErrBuildQuery = errors.New("error building sales query")
	ErrCountSales = errors.New("error counting sales")
	ErrFetchSales = errors.New("error fetching sales from database")
)
