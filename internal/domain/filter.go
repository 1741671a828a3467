package domain

import "github.com/shopspring/decimal"

// ProductFilter holds optional catalog criteria. Zero values impose no constraint.
type ProductFilter struct {
	PetType  PetType
	Category Category
	Brand    string
	PetSize  PetSize

	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal

	InPromotion bool
	InStock     bool
}
