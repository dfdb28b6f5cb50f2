package domain

const DefaultMaxPrice int64 = 1000000

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterState holds the active catalog filters. An empty selection on any
// dimension places no constraint on that dimension.
type FilterState struct {
	SearchQuery         string     `json:"searchQuery"`
	SelectedCategories  []string   `json:"selectedCategories"`
	PriceRange          PriceRange `json:"priceRange"`
	InStockOnly         bool       `json:"inStockOnly"`
	SelectedProtections []string   `json:"selectedProtections"`
	SelectedStandards   []string   `json:"selectedStandards"`
	SelectedHazards     []string   `json:"selectedHazards"`
}

// DefaultFilters returns the neutral filter state for the given price ceiling.
func DefaultFilters(maxPrice int64) FilterState {
	return FilterState{
		SelectedCategories:  []string{},
		PriceRange:          PriceRange{Min: 0, Max: maxPrice},
		SelectedProtections: []string{},
		SelectedStandards:   []string{},
		SelectedHazards:     []string{},
	}
}

// FilterUpdate is a partial FilterState. Nil fields leave the current value
// untouched.
type FilterUpdate struct {
	SearchQuery         *string
	SelectedCategories  []string
	PriceRange          *PriceRange
	InStockOnly         *bool
	SelectedProtections []string
	SelectedStandards   []string
	SelectedHazards     []string
}

// Merge applies the non-nil fields of u on top of f. Slices are copied.
func (f FilterState) Merge(u FilterUpdate) FilterState {
	out := f
	if u.SearchQuery != nil {
		out.SearchQuery = *u.SearchQuery
	}
	if u.SelectedCategories != nil {
		out.SelectedCategories = append([]string{}, u.SelectedCategories...)
	}
	if u.PriceRange != nil {
		out.PriceRange = *u.PriceRange
	}
	if u.InStockOnly != nil {
		out.InStockOnly = *u.InStockOnly
	}
	if u.SelectedProtections != nil {
		out.SelectedProtections = append([]string{}, u.SelectedProtections...)
	}
	if u.SelectedStandards != nil {
		out.SelectedStandards = append([]string{}, u.SelectedStandards...)
	}
	if u.SelectedHazards != nil {
		out.SelectedHazards = append([]string{}, u.SelectedHazards...)
	}
	return out
}

func (f FilterState) Clone() FilterState {
	out := f
	out.SelectedCategories = append([]string{}, f.SelectedCategories...)
	out.SelectedProtections = append([]string{}, f.SelectedProtections...)
	out.SelectedStandards = append([]string{}, f.SelectedStandards...)
	out.SelectedHazards = append([]string{}, f.SelectedHazards...)
	return out
}
