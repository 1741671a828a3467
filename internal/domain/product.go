package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type PetType string

const (
	PetTypeDog    PetType = "dog"
	PetTypeCat    PetType = "cat"
	PetTypeBird   PetType = "bird"
	PetTypeRabbit PetType = "rabbit"
	PetTypeOther  PetType = "other"
)

func (t PetType) Valid() bool {
	switch t {
	case PetTypeDog, PetTypeCat, PetTypeBird, PetTypeRabbit, PetTypeOther:
		return true
	}
	return false
}

type PetSize string

const (
	PetSizeSmall  PetSize = "small"
	PetSizeMedium PetSize = "medium"
	PetSizeLarge  PetSize = "large"
)

func (s PetSize) Valid() bool {
	switch s {
	case PetSizeSmall, PetSizeMedium, PetSizeLarge:
		return true
	}
	return false
}

type Category string

const (
	CategoryFood      Category = "food"
	CategoryCollar    Category = "collar"
	CategoryToy       Category = "toy"
	CategoryBed       Category = "bed"
	CategoryAccessory Category = "accessory"
	CategoryHygiene   Category = "hygiene"
	CategoryFeeder    Category = "feeder"
	CategoryScratcher Category = "scratcher"
	CategoryLitter    Category = "litter"
	CategoryCage      Category = "cage"
	CategoryHabitat   Category = "habitat"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand"`
	Image       string    `json:"image"`

	Category Category  `json:"category"`
	PetTypes []PetType `json:"petTypes"`
	PetSize  PetSize   `json:"petSize,omitempty"`

	Price            decimal.Decimal  `json:"price"`
	PromotionalPrice *decimal.Decimal `json:"promotionalPrice,omitempty"`
	IsPromotion      bool             `json:"isPromotion"`

	InStock  int  `json:"inStock"`
	IsNew    bool `json:"isNew"`
	Featured bool `json:"featured"`

	Specifications map[string]string `json:"specifications,omitempty"`
}

// EffectivePrice is the promotional price while a promotion runs, the base price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.IsPromotion && p.PromotionalPrice != nil {
		return *p.PromotionalPrice
	}
	return p.Price
}

func (p Product) HasPetType(petType PetType) bool {
	return slices.Contains(p.PetTypes, petType)
}

func (p Product) Validate() error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("product id is empty")
	}
	if p.Name == "" {
		return fmt.Errorf("product[%s] name is empty", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product[%s] price[%s] is negative", p.ID, p.Price)
	}
	if p.InStock < 0 {
		return fmt.Errorf("product[%s] stock[%d] is negative", p.ID, p.InStock)
	}
	if p.IsPromotion {
		if p.PromotionalPrice == nil {
			return fmt.Errorf("product[%s] is on promotion without promotional price", p.ID)
		}
		if !p.PromotionalPrice.LessThan(p.Price) {
			return fmt.Errorf("product[%s] promotional price[%s] is not below price[%s]",
				p.ID, p.PromotionalPrice, p.Price)
		}
	}
	return nil
}
