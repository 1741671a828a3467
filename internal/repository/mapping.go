package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/petclub-shop/internal/db"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func mapFilterToParams(f domain.ProductFilter) db.ListProductsParams {
	params := db.ListProductsParams{
		InPromotion: f.InPromotion,
		InStock:     f.InStock,
	}

	if f.PetType != "" {
		params.PetType = ptr(string(f.PetType))
	}
	if f.Category != "" {
		params.Category = ptr(string(f.Category))
	}
	if f.Brand != "" {
		params.Brand = ptr(f.Brand)
	}
	if f.PetSize != "" {
		params.PetSize = ptr(string(f.PetSize))
	}
	if f.MinPrice != nil {
		params.MinPrice = decimal.NewNullDecimal(*f.MinPrice)
	}
	if f.MaxPrice != nil {
		params.MaxPrice = decimal.NewNullDecimal(*f.MaxPrice)
	}

	return params
}

func mapProductToParams(p domain.Product) (db.UpsertProductParams, error) {
	specs := p.Specifications
	if specs == nil {
		specs = map[string]string{}
	}
	specsJSON, err := json.Marshal(specs)
	if err != nil {
		return db.UpsertProductParams{}, fmt.Errorf("json.Marshal: %w", err)
	}

	petTypes := make([]string, 0, len(p.PetTypes))
	for _, pt := range p.PetTypes {
		petTypes = append(petTypes, string(pt))
	}

	var promo decimal.NullDecimal
	if p.PromotionalPrice != nil {
		promo = decimal.NewNullDecimal(*p.PromotionalPrice)
	}

	return db.UpsertProductParams{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Brand:            p.Brand,
		Image:            p.Image,
		Category:         string(p.Category),
		PetTypes:         petTypes,
		PetSize:          string(p.PetSize),
		Price:            p.Price,
		PromotionalPrice: promo,
		IsPromotion:      p.IsPromotion,
		InStock:          int32(p.InStock),
		IsNew:            p.IsNew,
		Featured:         p.Featured,
		Specifications:   specsJSON,
	}, nil
}

func mapProductRowToDomain(row db.Product) (domain.Product, error) {
	var specs map[string]string
	if len(row.Specifications) > 0 {
		if err := json.Unmarshal(row.Specifications, &specs); err != nil {
			return domain.Product{}, fmt.Errorf("specifications of product[%s]: %w", row.ID, err)
		}
	}
	if len(specs) == 0 {
		specs = nil
	}

	petTypes := make([]domain.PetType, 0, len(row.PetTypes))
	for _, pt := range row.PetTypes {
		petTypes = append(petTypes, domain.PetType(pt))
	}

	var promo *decimal.Decimal
	if row.PromotionalPrice.Valid {
		promo = &row.PromotionalPrice.Decimal
	}

	return domain.Product{
		ID:               row.ID,
		Name:             row.Name,
		Description:      row.Description,
		Brand:            row.Brand,
		Image:            row.Image,
		Category:         domain.Category(row.Category),
		PetTypes:         petTypes,
		PetSize:          domain.PetSize(row.PetSize),
		Price:            row.Price,
		PromotionalPrice: promo,
		IsPromotion:      row.IsPromotion,
		InStock:          int(row.InStock),
		IsNew:            row.IsNew,
		Featured:         row.Featured,
		Specifications:   specs,
	}, nil
}

func mapProductRowsToDomain(rows []db.Product) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(rows))

	for _, row := range rows {
		product, err := mapProductRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}

func mapOrderToParams(o domain.Order) (db.InsertOrderParams, error) {
	var address []byte
	if o.Delivery == domain.DeliveryShip {
		var err error
		address, err = json.Marshal(o.Customer.Address)
		if err != nil {
			return db.InsertOrderParams{}, fmt.Errorf("json.Marshal: %w", err)
		}
	}

	return db.InsertOrderParams{
		ID:                o.ID,
		CustomerName:      o.Customer.Name,
		CustomerEmail:     o.Customer.Email,
		CustomerPhone:     o.Customer.Phone,
		Address:           address,
		DeliveryMethod:    string(o.Delivery),
		PaymentMethod:     string(o.Payment),
		SubtotalAmount:    o.Subtotal.Amount,
		DeliveryFeeAmount: o.DeliveryFee.Amount,
		TotalAmount:       o.Total.Amount,
		Currency:          o.Total.Currency.String(),
		CreatedAt:         o.CreatedAt,
	}, nil
}

func mapOrderRowsToDomain(header db.Order, rows []db.OrderItem) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(header.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", header.Currency, err)
	}

	var address domain.Address
	if len(header.Address) > 0 {
		if err := json.Unmarshal(header.Address, &address); err != nil {
			return domain.Order{}, fmt.Errorf("address of order[%s]: %w", header.ID, err)
		}
	}

	items := make([]domain.OrderItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.OrderItem{
			ProductID: row.ProductID,
			Name:      row.Name,
			UnitPrice: row.UnitPrice,
			Quantity:  int(row.Quantity),
		})
	}

	return domain.Order{
		ID:    header.ID,
		Items: items,
		Customer: domain.CustomerInfo{
			Name:    header.CustomerName,
			Email:   header.CustomerEmail,
			Phone:   header.CustomerPhone,
			Address: address,
		},
		Delivery:    domain.DeliveryMethod(header.DeliveryMethod),
		Payment:     domain.PaymentMethod(header.PaymentMethod),
		Subtotal:    domain.Money{Amount: header.SubtotalAmount, Currency: parsedCurrency},
		DeliveryFee: domain.Money{Amount: header.DeliveryFeeAmount, Currency: parsedCurrency},
		Total:       domain.Money{Amount: header.TotalAmount, Currency: parsedCurrency},
		CreatedAt:   header.CreatedAt,
	}, nil
}

func ptr[T any](v T) *T {
	return &v
}
