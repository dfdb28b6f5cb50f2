package catalog

import (
	"encoding/json"
	"testing"

	"mitrasafety/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAcceptsArraysAndEncodedStrings(t *testing.T) {
	payload := `{
		"id": "p1",
		"name": "Helm Safety",
		"description": "Helm proyek",
		"price": 125000,
		"originalPrice": 175000,
		"category": "helmet",
		"imageUrl": "/img/helm.png",
		"images": ["/img/helm.png", "/img/helm-2.png"],
		"inStock": true,
		"badge": "Best Seller",
		"specifications": "[{\"label\":\"Material\",\"value\":\"ABS\"}]",
		"protectionLevels": "[\"impact:composite-shell\",\"electrical:class-e\"]",
		"complianceStandards": ["SNI 1811:2007"],
		"hazardClasses": "[\"Head Impact\"]",
		"optimizedMedia": "[{\"format\":\"AVIF\",\"sizeKB\":220,\"note\":\"hero\"}]"
	}`

	var raw RawProduct
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	p := Normalize(raw)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, int64(125000), p.Price)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, int64(175000), *p.OriginalPrice)
	assert.Equal(t, "Best Seller", p.Badge)
	assert.Equal(t, []string{"/img/helm.png", "/img/helm-2.png"}, p.Images)
	assert.Equal(t, []domain.Specification{{Label: "Material", Value: "ABS"}}, p.Specifications)
	assert.Equal(t, []string{"impact:composite-shell", "electrical:class-e"}, p.ProtectionLevels)
	assert.Equal(t, []string{"SNI 1811:2007"}, p.ComplianceStandards)
	assert.Equal(t, []string{"Head Impact"}, p.HazardClasses)
	require.Len(t, p.OptimizedMedia, 1)
	assert.Equal(t, "AVIF", p.OptimizedMedia[0].Format)
	require.NotNil(t, p.OptimizedMedia[0].SizeKB)
	assert.Equal(t, 220.0, *p.OptimizedMedia[0].SizeKB)
	assert.Equal(t, "hero", p.OptimizedMedia[0].Note)
}

func TestNormalizeMalformedFieldFallsBackToEmpty(t *testing.T) {
	raw := RawProduct{
		ID:                  "p1",
		Name:                "Masker",
		ProtectionLevels:    json.RawMessage(`"not valid json"`),
		ComplianceStandards: json.RawMessage(`42`),
		HazardClasses:       json.RawMessage(`[1, 2]`),
		OptimizedMedia:      json.RawMessage(`"{\"format\":\"AVIF\"}"`),
	}

	var p domain.Product
	require.NotPanics(t, func() { p = Normalize(raw) })

	assert.NotNil(t, p.ProtectionLevels)
	assert.Empty(t, p.ProtectionLevels)
	assert.Empty(t, p.ComplianceStandards)
	assert.Empty(t, p.HazardClasses)
	assert.Empty(t, p.OptimizedMedia)
	assert.Equal(t, "Masker", p.Name)
}

func TestNormalizeFractionalMediaSize(t *testing.T) {
	p := Normalize(RawProduct{
		ID:             "p1",
		OptimizedMedia: json.RawMessage(`[{"format":"AVIF","sizeKB":12.5},{"format":"WebP","sizeKB":40}]`),
	})

	require.Len(t, p.OptimizedMedia, 2)
	require.NotNil(t, p.OptimizedMedia[0].SizeKB)
	assert.Equal(t, 12.5, *p.OptimizedMedia[0].SizeKB)
	assert.Equal(t, "WebP", p.OptimizedMedia[1].Format)
	assert.Equal(t, 40.0, *p.OptimizedMedia[1].SizeKB)
}

func TestNormalizeMissingFieldsAreEmptyLists(t *testing.T) {
	var raw RawProduct
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","images":null,"hazardClasses":""}`), &raw))

	p := Normalize(raw)

	for name, list := range map[string][]string{
		"images":              p.Images,
		"protectionLevels":    p.ProtectionLevels,
		"complianceStandards": p.ComplianceStandards,
		"hazardClasses":       p.HazardClasses,
	} {
		assert.NotNil(t, list, name)
		assert.Empty(t, list, name)
	}
	assert.NotNil(t, p.Specifications)
	assert.NotNil(t, p.OptimizedMedia)
}

func TestNormalizeAllKeepsBatchOnMalformedRecord(t *testing.T) {
	raws := []RawProduct{
		{ID: "good-1", ProtectionLevels: json.RawMessage(`["a"]`)},
		{ID: "bad", ProtectionLevels: json.RawMessage(`"not valid json"`)},
		{ID: "good-2", ProtectionLevels: json.RawMessage(`"[\"b\"]"`)},
	}

	products := NormalizeAll(raws)

	require.Len(t, products, 3)
	assert.Equal(t, []string{"a"}, products[0].ProtectionLevels)
	assert.Empty(t, products[1].ProtectionLevels)
	assert.Equal(t, []string{"b"}, products[2].ProtectionLevels)
}

func TestNormalizeStripsDescriptionMarkupForSearch(t *testing.T) {
	p := Normalize(RawProduct{
		ID:          "p1",
		Description: "<p>Sarung tangan <strong>anti-slip</strong></p>\n<ul><li>Grip kuat</li></ul>",
	})

	assert.Equal(t, "Sarung tangan anti-slip Grip kuat", p.DescriptionText)
	assert.Contains(t, p.Description, "<strong>")
}

func TestNormalizePlainDescriptionUnchanged(t *testing.T) {
	p := Normalize(RawProduct{ID: "p1", Description: "Rompi  reflektif"})
	assert.Equal(t, "Rompi  reflektif", p.DescriptionText)
}
