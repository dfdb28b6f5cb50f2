package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodEWallet  PaymentMethod = "ewallet"
	PaymentMethodCOD      PaymentMethod = "cod"
)

func (m PaymentMethod) String() string {
	return string(m)
}

const OrderStatusPending = "pending"

type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the payload accepted by POST /api/orders.
type OrderRequest struct {
	CustomerName       string      `json:"customerName"`
	CustomerPhone      string      `json:"customerPhone"`
	CustomerEmail      *string     `json:"customerEmail,omitempty"`
	ShippingAddress    string      `json:"shippingAddress"`
	ShippingProvince   string      `json:"shippingProvince"`
	ShippingCity       string      `json:"shippingCity"`
	ShippingPostalCode string      `json:"shippingPostalCode"`
	PaymentMethod      string      `json:"paymentMethod"`
	Subtotal           int64       `json:"subtotal"`
	Shipping           int64       `json:"shipping"`
	Total              int64       `json:"total"`
	Status             string      `json:"status"`
	Items              []OrderItem `json:"items"`
}

// Order is a created order as returned by the API.
type Order struct {
	OrderRequest
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
