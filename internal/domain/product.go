package domain

type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MediaHint describes an optimized rendition of a product image.
type MediaHint struct {
	Format string   `json:"format"`
	SizeKB *float64 `json:"sizeKB,omitempty"`
	Note   string   `json:"note,omitempty"`
	URL    string   `json:"url,omitempty"`
}

// Product is the normalized catalog entry. Prices are integers in the
// smallest currency unit.
type Product struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               int64           `json:"price"`
	OriginalPrice       *int64          `json:"originalPrice,omitempty"`
	Category            string          `json:"category"`
	ImageURL            string          `json:"imageUrl"`
	Images              []string        `json:"images"`
	InStock             bool            `json:"inStock"`
	Badge               string          `json:"badge,omitempty"`
	Specifications      []Specification `json:"specifications"`
	ProtectionLevels    []string        `json:"protectionLevels"`
	ComplianceStandards []string        `json:"complianceStandards"`
	HazardClasses       []string        `json:"hazardClasses"`
	OptimizedMedia      []MediaHint     `json:"optimizedMedia"`

	// DescriptionText is the description with any markup stripped.
	DescriptionText string `json:"-"`
}

// PlainDescription returns the description without markup, for display.
func (p Product) PlainDescription() string {
	if p.DescriptionText != "" {
		return p.DescriptionText
	}
	return p.Description
}

// Snapshot returns the fields the cart copies when the product is added.
func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	}
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	ProductCount int    `json:"productCount"`
}
