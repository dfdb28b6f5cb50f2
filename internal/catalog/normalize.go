package catalog

import (
	"encoding/json"
	"strings"

	"mitrasafety/storefront/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// Normalize converts a wire record into a Product. Fields that fail to
// decode become empty lists and are reported as warnings; Normalize never
// fails.
func Normalize(raw RawProduct) domain.Product {
	product := domain.Product{
		ID:            raw.ID,
		Name:          raw.Name,
		Description:   raw.Description,
		Price:         raw.Price,
		OriginalPrice: raw.OriginalPrice,
		Category:      raw.Category,
		ImageURL:      raw.ImageURL,
		InStock:       raw.InStock,
	}
	if raw.Badge != nil {
		product.Badge = *raw.Badge
	}

	product.Images = normalizeField[string](raw.ID, "images", raw.Images)
	product.Specifications = normalizeField[domain.Specification](raw.ID, "specifications", raw.Specifications)
	product.ProtectionLevels = normalizeField[string](raw.ID, "protectionLevels", raw.ProtectionLevels)
	product.ComplianceStandards = normalizeField[string](raw.ID, "complianceStandards", raw.ComplianceStandards)
	product.HazardClasses = normalizeField[string](raw.ID, "hazardClasses", raw.HazardClasses)
	product.OptimizedMedia = normalizeField[domain.MediaHint](raw.ID, "optimizedMedia", raw.OptimizedMedia)
	product.DescriptionText = plainText(raw.Description)

	return product
}

// NormalizeAll normalizes every record in order. A malformed record only
// loses its malformed fields.
func NormalizeAll(raws []RawProduct) []domain.Product {
	products := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, Normalize(raw))
	}
	return products
}

func normalizeField[T any](productID, field string, raw json.RawMessage) []T {
	values, err := decodeList[T](raw)
	if err != nil {
		log.Warnf("⚠️ Product %s: malformed %s, using empty list: %v", productID, field, err)
	}
	return values
}

// plainText returns the text content of a description that carries markup.
func plainText(description string) string {
	if !strings.ContainsAny(description, "<>") {
		return description
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		log.Debugf("Failed to parse description markup: %v", err)
		return description
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
