package importing

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// headerMap associa o cabeçalho do CSV (minúsculo, sem espaços nas pontas) ao campo da venda
var headerMap = map[string]string{
	"transaction id":      "transactionId",
	"date":                "date",
	"customer id":         "customerId",
	"customer name":       "customerName",
	"phone number":        "phoneNumber",
	"gender":              "gender",
	"age":                 "age",
	"customer region":     "region",
	"customer type":       "customerType",
	"product id":          "productId",
	"product name":        "productName",
	"brand":               "brand",
	"product category":    "category",
	"tags":                "tags",
	"quantity":            "quantity",
	"price per unit":      "pricePerUnit",
	"discount percentage": "discountPercentage",
	"total amount":        "totalAmount",
	"final amount":        "finalAmount",
	"payment method":      "paymentMethod",
	"order status":        "orderStatus",
	"delivery type":       "deliveryType",
	"store id":            "storeId",
	"store location":      "storeLocation",
	"salesperson id":      "salespersonId",
	"employee name":       "employeeName",
}

// ImportCSV substitui o conteúdo da tabela pelas linhas do CSV, em lotes.
// Retorna o número de linhas gravadas.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader, progress Progress) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return 0, ErrMissingHeader
		}
		return 0, errors.Wrap(ErrReadCSV, err.Error())
	}

	columns := mapHeader(header)
	if len(columns) == 0 {
		return 0, ErrMissingHeader
	}

	if err := s.clear(ctx); err != nil {
		return 0, err
	}

	logrus.Info("Iniciando importação...")

	writer := s.newBatchWriter(ctx, progress)
	now := time.Now()
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return writer.written, errors.Wrapf(ErrReadCSV, "linha %d: %s", line, err.Error())
		}

		fields := make(map[string]string, len(columns))
		for idx, field := range columns {
			if idx < len(record) {
				fields[field] = strings.TrimSpace(record[idx])
			}
		}

		if err := writer.Add(mapRecord(fields, now)); err != nil {
			return writer.written, err
		}
	}

	if err := writer.Flush(); err != nil {
		return writer.written, err
	}

	return writer.written, nil
}

// mapHeader retorna índice da coluna -> campo da venda, ignorando colunas desconhecidas
func mapHeader(header []string) map[int]string {
	columns := make(map[int]string, len(header))
	for idx, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if field, ok := headerMap[key]; ok {
			columns[idx] = field
		}
	}
	return columns
}

// mapRecord aplica os valores padrão de cada coluna ausente ou vazia
func mapRecord(fields map[string]string, now time.Time) *domain.SalesTransaction {
	totalAmount := utils.ParseLooseFloat(fields["totalAmount"], 0)

	finalAmount := utils.ParseLooseFloat(fields["finalAmount"], 0)
	if finalAmount == 0 {
		finalAmount = totalAmount
	}

	quantity, ok := utils.ParseLooseInt(fields["quantity"])
	if !ok || quantity == 0 {
		quantity = 1
	}

	age, _ := utils.ParseLooseInt(fields["age"])

	return &domain.SalesTransaction{
		CustomerID:         orDefault(fields["customerId"], "UNK"),
		CustomerName:       orDefault(fields["customerName"], "Unknown"),
		PhoneNumber:        fields["phoneNumber"],
		Gender:             orDefault(fields["gender"], "Other"),
		Age:                age,
		Region:             orDefault(fields["region"], "North"),
		CustomerType:       orDefault(fields["customerType"], "Regular"),
		ProductID:          orDefault(fields["productId"], "P000"),
		ProductName:        orDefault(fields["productName"], "Imported Product"),
		Brand:              orDefault(fields["brand"], "Generic"),
		Category:           orDefault(fields["category"], "Uncategorized"),
		Tags:               fields["tags"],
		Quantity:           quantity,
		PricePerUnit:       utils.ParseLooseFloat(fields["pricePerUnit"], 0),
		DiscountPercentage: utils.ParseLooseFloat(fields["discountPercentage"], 0),
		TotalAmount:        totalAmount,
		FinalAmount:        finalAmount,
		Date:               importDate(fields["date"], now),
		PaymentMethod:      orDefault(fields["paymentMethod"], "Cash"),
		OrderStatus:        orDefault(fields["orderStatus"], "Completed"),
		DeliveryType:       orDefault(fields["deliveryType"], "Store Pickup"),
		StoreID:            orDefault(fields["storeId"], "S001"),
		StoreLocation:      orDefault(fields["storeLocation"], "Main St"),
		EmployeeName:       orDefault(fields["employeeName"], "Admin"),
	}
}

// importDate normaliza a data para ISO UTC; ausente ou inválida vira o instante da importação
func importDate(value string, now time.Time) string {
	if value == "" {
		return utils.FormatTimestamp(now)
	}

	date, err := utils.NormalizeDate(value)
	if err != nil {
		logrus.WithError(err).Warn("Data inválida no CSV, usando a data da importação")
		return utils.FormatTimestamp(now)
	}

	return date
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
