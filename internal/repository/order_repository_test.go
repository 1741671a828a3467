package repository_test

import (
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestOrders_PlaceAndGet() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		order     func() domain.Order
		wantError string
	}{
		{
			name:  "ship order: ok",
			order: func() domain.Order { return randomOrder(domain.DeliveryShip) },
		},
		{
			name:  "pickup order without address: ok",
			order: func() domain.Order { return randomOrder(domain.DeliveryPickup) },
		},
		{
			name: "order without items: error",
			order: func() domain.Order {
				o := randomOrder(domain.DeliveryShip)
				o.ID = uuid.MustParse("0b9d1f6e-4d7a-4a55-9d8e-7f1f3f0c8a11")
				o.Items = nil
				return o
			},
			wantError: "order[0b9d1f6e-4d7a-4a55-9d8e-7f1f3f0c8a11] has no items",
		},
		{
			name: "order with empty id: error",
			order: func() domain.Order {
				o := randomOrder(domain.DeliveryShip)
				o.ID = uuid.Nil
				return o
			},
			wantError: "order id is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()
			order := tt.order()

			err := suite.orders.PlaceOrder(ctx, order)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, err := suite.orders.GetOrder(ctx, order.ID)
			require.NoError(t, err)

			diff := cmp.Diff(order, got, valueComparers)
			assert.Empty(t, diff)
		})
	}
}

func (suite *repositorySuite) TestOrders_DuplicateIsRolledBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	order := randomOrder(domain.DeliveryShip)
	require.NoError(t, suite.orders.PlaceOrder(ctx, order))

	again := order
	again.Items = append(again.Items, domain.OrderItem{
		ProductID: uuid.New(),
		Name:      "extra",
		UnitPrice: decimal.RequireFromString("1.00"),
		Quantity:  1,
	})
	require.ErrorIs(t, suite.orders.PlaceOrder(ctx, again), domain.ErrOrderExists)

	got, err := suite.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, len(order.Items))
}

func (suite *repositorySuite) TestOrders_GetMissing() {
	t := suite.T()

	_, err := suite.orders.GetOrder(t.Context(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOrderNotFound))
}

func randomOrder(delivery domain.DeliveryMethod) domain.Order {
	items := make([]domain.OrderItem, gofakeit.IntRange(1, 4))
	subtotal := decimal.Zero
	for i := range items {
		items[i] = domain.OrderItem{
			ProductID: uuid.New(),
			Name:      gofakeit.ProductName(),
			UnitPrice: decimal.NewFromFloat(gofakeit.Price(1, 300)).Round(2),
			Quantity:  gofakeit.IntRange(1, 5),
		}
		subtotal = subtotal.Add(items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
	}

	customer := domain.CustomerInfo{
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Phone: gofakeit.Phone(),
	}

	fee := decimal.Zero
	if delivery == domain.DeliveryShip {
		fee = decimal.RequireFromString("15.00")
		customer.Address = domain.Address{
			Street:       gofakeit.Street(),
			Number:       gofakeit.StreetNumber(),
			Neighborhood: gofakeit.StreetName(),
			City:         gofakeit.City(),
			State:        gofakeit.StateAbr(),
			ZipCode:      gofakeit.Zip(),
		}
	}

	return domain.Order{
		ID:          uuid.New(),
		Items:       items,
		Customer:    customer,
		Delivery:    delivery,
		Payment:     domain.PaymentPix,
		Subtotal:    domain.NewMoney(subtotal, domain.DefaultCurrency),
		DeliveryFee: domain.NewMoney(fee, domain.DefaultCurrency),
		Total:       domain.NewMoney(subtotal.Add(fee), domain.DefaultCurrency),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}
