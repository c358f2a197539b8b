package importing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const sampleCSV = `Transaction ID,Date,Customer ID,Customer Name,Phone Number,Gender,Age,Customer Region,Customer Type,Product ID,Product Name,Brand,Product Category,Tags,Quantity,Price per Unit,Discount Percentage,Total Amount,Final Amount,Payment Method,Order Status,Delivery Type,Store ID,Store Location,Salesperson ID,Employee Name
1,2023-03-23,CUST-40823,Neha Khan,9720639364,Male,21,Central,Returning,PROD-8721,Herbal Face Wash,SilkSkin,Beauty,"organic,skincare",5,4268,12,21340,18779.2,UPI,Cancelled,Home Delivery,ST-015,Ahmedabad,EMP-8179,Harsh Agarwal
2,,,,,,,,,,,,,,,,,,,,,,,,,
`

func TestImportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockSalesRepo, 0)

	var inserted []*domain.SalesTransaction
	gomock.InOrder(
		mockSalesRepo.EXPECT().DeleteAll(gomock.Any()).Return(nil),
		mockSalesRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sales []*domain.SalesTransaction) error {
				inserted = append(inserted, sales...)
				return nil
			}),
	)

	written, err := service.ImportCSV(context.Background(), strings.NewReader(sampleCSV), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	require.Len(t, inserted, 2)

	first := inserted[0]
	assert.Equal(t, "CUST-40823", first.CustomerID)
	assert.Equal(t, "Neha Khan", first.CustomerName)
	assert.Equal(t, 21, first.Age)
	assert.Equal(t, "Central", first.Region)
	assert.Equal(t, "Beauty", first.Category)
	assert.Equal(t, "organic,skincare", first.Tags)
	assert.Equal(t, 5, first.Quantity)
	assert.Equal(t, 18779.2, first.FinalAmount)
	assert.Equal(t, "2023-03-23T00:00:00.000Z", first.Date)
	assert.Equal(t, "Harsh Agarwal", first.EmployeeName)

	defaults := inserted[1]
	assert.Equal(t, "UNK", defaults.CustomerID)
	assert.Equal(t, "Unknown", defaults.CustomerName)
	assert.Equal(t, "Other", defaults.Gender)
	assert.Equal(t, "North", defaults.Region)
	assert.Equal(t, "Uncategorized", defaults.Category)
	assert.Equal(t, "Cash", defaults.PaymentMethod)
	assert.Equal(t, "Completed", defaults.OrderStatus)
	assert.Equal(t, "Store Pickup", defaults.DeliveryType)
	assert.Equal(t, 1, defaults.Quantity)
	assert.Equal(t, 0, defaults.Age)
	assert.NotEmpty(t, defaults.Date)
}

func TestImportCSV_Batches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockSalesRepo, 2)

	csvData := "Customer Name,Final Amount\nA,1\nB,2\nC,3\nD,4\nE,5\n"

	batchSizes := make([]int, 0)
	mockSalesRepo.EXPECT().DeleteAll(gomock.Any()).Return(nil)
	mockSalesRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sales []*domain.SalesTransaction) error {
			batchSizes = append(batchSizes, len(sales))
			return nil
		}).
		Times(3)

	progress := make([]int, 0)
	written, err := service.ImportCSV(context.Background(), strings.NewReader(csvData), func(n int) {
		progress = append(progress, n)
	})

	require.NoError(t, err)
	assert.Equal(t, 5, written)
	assert.Equal(t, []int{2, 2, 1}, batchSizes)
	assert.Equal(t, []int{2, 4, 5}, progress)
}

func TestImportCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		setup   func(repo *mocks.MockSalesRepository)
		wantErr error
	}{
		{
			name:    "arquivo vazio",
			input:   "",
			setup:   func(repo *mocks.MockSalesRepository) {},
			wantErr: ErrMissingHeader,
		},
		{
			name:    "cabeçalho sem colunas conhecidas não limpa a tabela",
			input:   "foo,bar\n1,2\n",
			setup:   func(repo *mocks.MockSalesRepository) {},
			wantErr: ErrMissingHeader,
		},
		{
			name:  "falha ao limpar a tabela",
			input: "Customer Name\nA\n",
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().DeleteAll(gomock.Any()).Return(errors.New("database is locked"))
			},
			wantErr: ErrClearSales,
		},
		{
			name:  "falha ao gravar o lote",
			input: "Customer Name\nA\n",
			setup: func(repo *mocks.MockSalesRepository) {
				repo.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				repo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(errors.New("disk I/O error"))
			},
			wantErr: ErrInsertBatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
			tt.setup(mockSalesRepo)

			_, err := NewService(mockSalesRepo, 10).ImportCSV(context.Background(), strings.NewReader(tt.input), nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapHeader(t *testing.T) {
	columns := mapHeader([]string{"\ufeffDate", "  CUSTOMER NAME ", "Unknown Column", "Tags"})

	assert.Equal(t, map[int]string{0: "date", 1: "customerName", 3: "tags"}, columns)
}

func TestImportDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "2024-06-01T15:04:05.000Z", importDate("", now))
	assert.Equal(t, "2024-06-01T15:04:05.000Z", importDate("not a date", now))
	assert.Equal(t, "2023-03-23T10:30:00.000Z", importDate("2023-03-23T10:30:00Z", now))
}
