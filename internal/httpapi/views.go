package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/cart"
	"github.com/nikolayk812/petclub-shop/internal/catalog"
	"github.com/nikolayk812/petclub-shop/internal/checkout"
	"github.com/nikolayk812/petclub-shop/internal/domain"
)

type moneyView struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func newMoneyView(m domain.Money) moneyView {
	return moneyView{
		Amount:   m.Amount.StringFixed(2),
		Currency: m.Currency.String(),
	}
}

type cartItemView struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal moneyView      `json:"subtotal"`
}

type cartView struct {
	Items      []cartItemView `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice moneyView      `json:"totalPrice"`
}

func newCartView(store *cart.Store) cartView {
	items := store.Items()
	views := make([]cartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, cartItemView{
			Product:  item.Product,
			Quantity: item.Quantity,
			Subtotal: newMoneyView(domain.NewMoney(item.Subtotal(), store.Currency())),
		})
	}

	return cartView{
		Items:      views,
		TotalItems: store.TotalItems(),
		TotalPrice: newMoneyView(store.TotalPrice()),
	}
}

type orderView struct {
	ID        uuid.UUID `json:"id"`
	Items     int       `json:"items"`
	Total     moneyView `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

type checkoutView struct {
	Step           domain.Step           `json:"step"`
	DeliveryMethod domain.DeliveryMethod `json:"deliveryMethod"`
	PaymentMethod  domain.PaymentMethod  `json:"paymentMethod"`
	Customer       domain.CustomerInfo   `json:"customer"`
	Subtotal       moneyView             `json:"subtotal"`
	DeliveryFee    moneyView             `json:"deliveryFee"`
	Total          moneyView             `json:"total"`
	CanAdvance     bool                  `json:"canAdvance"`
	MissingFields  []string              `json:"missingFields,omitempty"`
	Order          *orderView            `json:"order,omitempty"`
}

func newCheckoutView(flow *checkout.Flow) checkoutView {
	view := checkoutView{
		Step:           flow.Step(),
		DeliveryMethod: flow.DeliveryMethod(),
		PaymentMethod:  flow.PaymentMethod(),
		Customer:       flow.Customer(),
		Subtotal:       newMoneyView(flow.Subtotal()),
		DeliveryFee:    newMoneyView(flow.DeliveryFee()),
		Total:          newMoneyView(flow.Total()),
		CanAdvance:     flow.CanAdvance(),
	}

	if flow.Step() == domain.StepDelivery {
		view.MissingFields = flow.MissingFields()
	}

	if order, ok := flow.Order(); ok {
		// the live cart is empty after placement, totals come from the order
		view.Subtotal = newMoneyView(order.Subtotal)
		view.DeliveryFee = newMoneyView(order.DeliveryFee)
		view.Total = newMoneyView(order.Total)
		view.Order = &orderView{
			ID:        order.ID,
			Items:     len(order.Items),
			Total:     newMoneyView(order.Total),
			CreatedAt: order.CreatedAt,
		}
	}

	return view
}

type rangeView struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type facetsView struct {
	Brands        []string   `json:"brands"`
	PriceRange    *rangeView `json:"priceRange"`
	FiltersActive bool       `json:"filtersActive"`
}

func newFacetsView(f catalog.Facets, active bool) facetsView {
	view := facetsView{
		Brands:        f.Brands,
		FiltersActive: active,
	}
	if f.HasRange {
		view.PriceRange = &rangeView{
			Min: f.PriceRange.Min.StringFixed(2),
			Max: f.PriceRange.Max.StringFixed(2),
		}
	}
	return view
}
