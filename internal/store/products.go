package store

import (
	"mitrasafety/storefront/internal/catalog"
	"mitrasafety/storefront/internal/domain"
)

// Selection is the product-detail focus. Open is true exactly when Product
// is non-nil.
type Selection struct {
	Product *domain.Product
	Open    bool
}

// ProductStore holds the normalized catalog, the active filters and the
// derived filtered view. Every mutation recomputes the view before it
// returns. A ProductStore is not safe for concurrent use.
type ProductStore struct {
	products   []domain.Product
	filtered   []domain.Product
	categories []domain.Category
	filters    domain.FilterState
	maxPrice   int64
	selection  Selection
	loading    bool
	err        error
	listeners  listeners
}

func NewProductStore(maxPrice int64) *ProductStore {
	if maxPrice <= 0 {
		maxPrice = domain.DefaultMaxPrice
	}
	return &ProductStore{
		products:   make([]domain.Product, 0),
		filtered:   make([]domain.Product, 0),
		categories: make([]domain.Category, 0),
		filters:    domain.DefaultFilters(maxPrice),
		maxPrice:   maxPrice,
	}
}

// SetProducts normalizes a freshly fetched catalog and replaces the cached
// one wholesale.
func (s *ProductStore) SetProducts(raws []catalog.RawProduct) {
	s.ReplaceProducts(catalog.NormalizeAll(raws))
}

// ReplaceProducts replaces the catalog with already normalized products.
func (s *ProductStore) ReplaceProducts(products []domain.Product) {
	s.products = append(make([]domain.Product, 0, len(products)), products...)
	s.recompute()
	s.listeners.notify()
}

func (s *ProductStore) Products() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

func (s *ProductStore) FilteredProducts() []domain.Product {
	return append([]domain.Product(nil), s.filtered...)
}

func (s *ProductStore) ProductByID(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *ProductStore) SetCategories(categories []domain.Category) {
	s.categories = append(make([]domain.Category, 0, len(categories)), categories...)
	s.listeners.notify()
}

func (s *ProductStore) Categories() []domain.Category {
	return append([]domain.Category(nil), s.categories...)
}

// Filters returns a copy of the active filter state.
func (s *ProductStore) Filters() domain.FilterState {
	return s.filters.Clone()
}

// UpdateFilters merges the set fields of update into the active filters.
func (s *ProductStore) UpdateFilters(update domain.FilterUpdate) {
	s.filters = s.filters.Merge(update)
	s.recompute()
	s.listeners.notify()
}

// ClearFilters restores the neutral filters: empty search, no selections,
// the full price range and the stock flag off.
func (s *ProductStore) ClearFilters() {
	s.filters = domain.DefaultFilters(s.maxPrice)
	s.recompute()
	s.listeners.notify()
}

// ApplyFilters recomputes the filtered view from the current state.
func (s *ProductStore) ApplyFilters() {
	s.recompute()
	s.listeners.notify()
}

func (s *ProductStore) recompute() {
	s.filtered = ApplyFilters(s.products, s.filters)
}

func (s *ProductStore) OpenProductDetail(product domain.Product) {
	s.selection = Selection{Product: &product, Open: true}
	s.listeners.notify()
}

func (s *ProductStore) CloseProductDetail() {
	s.selection = Selection{}
	s.listeners.notify()
}

func (s *ProductStore) Selection() Selection {
	if s.selection.Product == nil {
		return Selection{}
	}
	product := *s.selection.Product
	return Selection{Product: &product, Open: true}
}

func (s *ProductStore) SetLoading(loading bool) {
	s.loading = loading
	s.listeners.notify()
}

func (s *ProductStore) Loading() bool {
	return s.loading
}

func (s *ProductStore) SetError(err error) {
	s.err = err
	s.listeners.notify()
}

func (s *ProductStore) Err() error {
	return s.err
}

// Subscribe registers fn to run after every mutation. The returned function
// removes it.
func (s *ProductStore) Subscribe(fn func()) func() {
	return s.listeners.add(fn)
}
