package catalog

import (
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/shopspring/decimal"
)

// Range is the inclusive effective-price span of a catalog.
type Range struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Filter returns the products satisfying every criterion set in f, preserving catalog order.
func Filter(products []domain.Product, f domain.ProductFilter) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	for _, p := range products {
		if Matches(p, f) {
			result = append(result, p)
		}
	}

	return result
}

func Matches(p domain.Product, f domain.ProductFilter) bool {
	if f.PetType != "" && !p.HasPetType(f.PetType) {
		return false
	}

	if f.Category != "" && p.Category != f.Category {
		return false
	}

	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}

	if f.PetSize != "" && p.PetSize != f.PetSize {
		return false
	}

	price := p.EffectivePrice()

	if f.MinPrice != nil && price.LessThan(*f.MinPrice) {
		return false
	}

	if f.MaxPrice != nil && price.GreaterThan(*f.MaxPrice) {
		return false
	}

	if f.InPromotion && !p.IsPromotion {
		return false
	}

	if f.InStock && p.InStock <= 0 {
		return false
	}

	return true
}

// Brands lists distinct brands in order of first appearance.
func Brands(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	brands := make([]string, 0)

	for _, p := range products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}

	return brands
}

// PriceRange reports false for an empty catalog.
func PriceRange(products []domain.Product) (Range, bool) {
	if len(products) == 0 {
		return Range{}, false
	}

	r := Range{
		Min: products[0].EffectivePrice(),
		Max: products[0].EffectivePrice(),
	}

	for _, p := range products[1:] {
		price := p.EffectivePrice()
		r.Min = decimal.Min(r.Min, price)
		r.Max = decimal.Max(r.Max, price)
	}

	return r, true
}

// IsActive tells whether f narrows the catalog beyond the default state.
// Price bounds count only when they differ from the computed range r.
func IsActive(f domain.ProductFilter, r Range) bool {
	if f.Category != "" || f.Brand != "" || f.PetSize != "" || f.InPromotion || f.InStock {
		return true
	}

	if f.MinPrice != nil && !f.MinPrice.Equal(r.Min) {
		return true
	}

	if f.MaxPrice != nil && !f.MaxPrice.Equal(r.Max) {
		return true
	}

	return false
}

func ByPetType(products []domain.Product, petType domain.PetType) []domain.Product {
	return Filter(products, domain.ProductFilter{PetType: petType})
}

func ByCategory(products []domain.Product, category domain.Category) []domain.Product {
	return Filter(products, domain.ProductFilter{Category: category})
}

func Promotions(products []domain.Product) []domain.Product {
	return Filter(products, domain.ProductFilter{InPromotion: true})
}

func Featured(products []domain.Product) []domain.Product {
	return selectWhere(products, func(p domain.Product) bool { return p.Featured })
}

func New(products []domain.Product) []domain.Product {
	return selectWhere(products, func(p domain.Product) bool { return p.IsNew })
}

func selectWhere(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	result := make([]domain.Product, 0)
	for _, p := range products {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}
