package store

import (
	"strings"

	"mitrasafety/storefront/internal/domain"
)

// ApplyFilters returns the products that satisfy every active filter, in
// catalog order.
func ApplyFilters(products []domain.Product, filters domain.FilterState) []domain.Product {
	query := strings.ToLower(filters.SearchQuery)

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if matches(product, filters, query) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// Matches reports whether a single product passes the filters.
func Matches(product domain.Product, filters domain.FilterState) bool {
	return matches(product, filters, strings.ToLower(filters.SearchQuery))
}

func matches(product domain.Product, filters domain.FilterState, query string) bool {
	// Categories are OR: any selected category admits the product.
	if len(filters.SelectedCategories) > 0 && !containsString(filters.SelectedCategories, product.Category) {
		return false
	}

	if !filters.PriceRange.Contains(product.Price) {
		return false
	}

	if filters.InStockOnly && !product.InStock {
		return false
	}

	if query != "" && !matchesSearch(product, query) {
		return false
	}

	// Tag dimensions are AND: every selected tag must be on the product.
	return containsAll(product.ProtectionLevels, filters.SelectedProtections) &&
		containsAll(product.ComplianceStandards, filters.SelectedStandards) &&
		containsAll(product.HazardClasses, filters.SelectedHazards)
}

// matchesSearch checks the name and the description as received. The
// markup-free description is checked too so a query spanning a tag still hits.
func matchesSearch(product domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query) ||
		(product.DescriptionText != "" && strings.Contains(strings.ToLower(product.DescriptionText), query))
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsAll(have, want []string) bool {
	if len(want) == 0 {
		return true
	}

	set := make(map[string]struct{}, len(have))
	for _, v := range have {
		set[v] = struct{}{}
	}
	for _, v := range want {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
