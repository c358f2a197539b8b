package importing

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

var (
	regions        = []string{"North", "South", "East", "West"}
	genders        = []string{"Male", "Female", "Other"}
	categories     = []string{"Electronics", "Clothing", "Home", "Beauty", "Sports"}
	paymentMethods = []string{"Credit Card", "Debit Card", "UPI", "Cash"}
	statuses       = []string{"Completed", "Pending", "Cancelled", "Returned"}
	firstNames     = []string{"Aarav", "Vivaan", "Aditya", "Vihaan", "Arjun", "Saanvi", "Anya", "Diya", "Pari", "Ananya"}
	lastNames      = []string{"Sharma", "Verma", "Gupta", "Singh", "Patel", "Kumar", "Das", "Rao", "Nair", "Mehta"}
	brands         = []string{"BrandA", "BrandB", "BrandC", "BrandD", "BrandE"}
	tagsPool       = []string{"New", "Sale", "Bestseller", "Limited", "Eco-friendly"}
)

var (
	generatedFrom = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	generatedTo   = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
)

// Generator produz vendas aleatórias a partir de listas fixas de valores
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator cria um gerador. Seed 0 usa uma semente aleatória.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

func (g *Generator) Sale() (*domain.SalesTransaction, error) {
	f := g.faker

	customerID, err := utils.GeneratePrefixedID("C")
	if err != nil {
		return nil, errors.Wrap(ErrGenerateSale, err.Error())
	}
	productID, err := utils.GeneratePrefixedID("P")
	if err != nil {
		return nil, errors.Wrap(ErrGenerateSale, err.Error())
	}

	quantity := f.IntRange(1, 10)
	price := float64(f.IntRange(10, 500) * 10)
	discount := float64(f.IntRange(0, 30))
	totalAmount := float64(quantity) * price

	customerType := "Regular"
	if f.Bool() {
		customerType = "Premium"
	}
	deliveryType := "Store Pickup"
	if f.Bool() {
		deliveryType = "Home Delivery"
	}

	return &domain.SalesTransaction{
		CustomerID:         customerID,
		CustomerName:       f.RandomString(firstNames) + " " + f.RandomString(lastNames),
		PhoneNumber:        fmt.Sprintf("9%d", f.IntRange(100000000, 999999999)),
		Gender:             f.RandomString(genders),
		Age:                f.IntRange(18, 70),
		Region:             f.RandomString(regions),
		CustomerType:       customerType,
		ProductID:          productID,
		ProductName:        fmt.Sprintf("Product %d", f.IntRange(1, 50)),
		Brand:              f.RandomString(brands),
		Category:           f.RandomString(categories),
		Tags:               utils.JoinTags([]string{f.RandomString(tagsPool), f.RandomString(tagsPool)}),
		Quantity:           quantity,
		PricePerUnit:       price,
		DiscountPercentage: discount,
		TotalAmount:        totalAmount,
		FinalAmount:        utils.RoundWithTwoDecimalPlace(totalAmount * (1 - discount/100)),
		Date:               utils.FormatTimestamp(f.DateRange(generatedFrom, generatedTo)),
		PaymentMethod:      f.RandomString(paymentMethods),
		OrderStatus:        f.RandomString(statuses),
		DeliveryType:       deliveryType,
		StoreID:            fmt.Sprintf("S%d", f.IntRange(1, 5)),
		StoreLocation:      fmt.Sprintf("Location %d", f.IntRange(1, 5)),
		EmployeeName:       "Emp " + f.RandomString(firstNames),
	}, nil
}

// Generate substitui o conteúdo da tabela por count vendas aleatórias
func (s *Service) Generate(ctx context.Context, generator *Generator, count int, progress Progress) (int, error) {
	if err := s.clear(ctx); err != nil {
		return 0, err
	}

	writer := s.newBatchWriter(ctx, progress)
	for i := 0; i < count; i++ {
		sale, err := generator.Sale()
		if err != nil {
			return writer.written, err
		}
		if err := writer.Add(sale); err != nil {
			return writer.written, err
		}
	}

	if err := writer.Flush(); err != nil {
		return writer.written, err
	}

	return writer.written, nil
}
