package domain

// ProductSnapshot is the part of a product the cart keeps on a line item.
type ProductSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`
}

// LineItem is one row in the cart ledger. ID is ledger-internal and never
// equal to ProductID.
type LineItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"imageUrl"`
}

const (
	DefaultFreeShippingThreshold int64 = 500000
	DefaultFlatShippingFee       int64 = 25000
)

// Pricing holds the shipping rules applied to a cart subtotal.
type Pricing struct {
	FreeShippingThreshold int64
	FlatShippingFee       int64
}

func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		FlatShippingFee:       DefaultFlatShippingFee,
	}
}

type CartTotals struct {
	TotalItems int   `json:"totalItems"`
	Subtotal   int64 `json:"subtotal"`
	Shipping   int64 `json:"shipping"`
	Total      int64 `json:"total"`
}
