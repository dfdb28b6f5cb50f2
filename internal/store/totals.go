package store

import "mitrasafety/storefront/internal/domain"

func TotalItems(items []domain.LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func Subtotal(items []domain.LineItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * int64(item.Quantity)
	}
	return subtotal
}

// Shipping is free once the subtotal reaches the threshold, otherwise the
// flat fee applies.
func Shipping(subtotal int64, pricing domain.Pricing) int64 {
	if subtotal >= pricing.FreeShippingThreshold {
		return 0
	}
	return pricing.FlatShippingFee
}

func Totals(items []domain.LineItem, pricing domain.Pricing) domain.CartTotals {
	subtotal := Subtotal(items)
	shipping := Shipping(subtotal, pricing)
	return domain.CartTotals{
		TotalItems: TotalItems(items),
		Subtotal:   subtotal,
		Shipping:   shipping,
		Total:      subtotal + shipping,
	}
}
