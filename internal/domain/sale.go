package domain

// SalesTransaction representa uma venda (uma linha da tabela sales)
type SalesTransaction struct {
	ID                 int64   `json:"id"`
	CustomerID         string  `json:"customerId"`
	CustomerName       string  `json:"customerName"`
	PhoneNumber        string  `json:"phoneNumber"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	Region             string  `json:"region"`
	CustomerType       string  `json:"customerType"`
	ProductID          string  `json:"productId"`
	ProductName        string  `json:"productName"`
	Brand              string  `json:"brand"`
	Category           string  `json:"category"`
	Tags               string  `json:"tags"`
	Quantity           int     `json:"quantity"`
	PricePerUnit       float64 `json:"pricePerUnit"`
	DiscountPercentage float64 `json:"discountPercentage"`
	TotalAmount        float64 `json:"totalAmount"`
	FinalAmount        float64 `json:"finalAmount"`
	Date               string  `json:"date"`
	PaymentMethod      string  `json:"paymentMethod"`
	OrderStatus        string  `json:"orderStatus"`
	DeliveryType       string  `json:"deliveryType"`
	StoreID            string  `json:"storeId"`
	StoreLocation      string  `json:"storeLocation"`
	EmployeeName       string  `json:"employeeName"`
}
