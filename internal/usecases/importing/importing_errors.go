package importing

import "errors"

var (
	ErrClearSales    = errors.New("error clearing existing sales")
	ErrInsertBatch   = errors.New("error inserting sales batch")
	ErrReadCSV       = errors.New("error reading csv file")
	ErrMissingHeader = errors.New("csv file has no recognizable header")
	ErrGenerateSale  = errors.New("error generating sale")
)
