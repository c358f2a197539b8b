package importing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestGenerator_Sale(t *testing.T) {
	generator := NewGenerator(42)

	for i := 0; i < 50; i++ {
		sale, err := generator.Sale()
		require.NoError(t, err)

		assert.Contains(t, regions, sale.Region)
		assert.Contains(t, genders, sale.Gender)
		assert.Contains(t, categories, sale.Category)
		assert.Contains(t, paymentMethods, sale.PaymentMethod)
		assert.Contains(t, statuses, sale.OrderStatus)
		assert.Contains(t, brands, sale.Brand)
		assert.Regexp(t, `^C-[A-Z0-9]{6}$`, sale.CustomerID)
		assert.Regexp(t, `^9\d{9}$`, sale.PhoneNumber)

		tags := utils.SplitTags(sale.Tags)
		assert.Len(t, tags, 2)
		for _, tag := range tags {
			assert.Contains(t, tagsPool, tag)
		}

		assert.GreaterOrEqual(t, sale.Age, 18)
		assert.LessOrEqual(t, sale.Age, 70)
		assert.GreaterOrEqual(t, sale.Date, "2023-01-01T00:00:00.000Z")
		assert.LessOrEqual(t, sale.Date, "2025-12-01T00:00:00.000Z")
		assert.Equal(t, float64(sale.Quantity)*sale.PricePerUnit, sale.TotalAmount)
		assert.LessOrEqual(t, sale.FinalAmount, sale.TotalAmount)
	}
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockSalesRepo, 1000)

	total := 0
	mockSalesRepo.EXPECT().DeleteAll(gomock.Any()).Return(nil)
	mockSalesRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sales []*domain.SalesTransaction) error {
			total += len(sales)
			return nil
		}).
		Times(2)

	written, err := service.Generate(context.Background(), NewGenerator(7), 1500, nil)

	require.NoError(t, err)
	assert.Equal(t, 1500, written)
	assert.Equal(t, 1500, total)
}
