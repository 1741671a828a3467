package repository_test

import (
	"errors"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/catalog"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestProducts_SaveAndGet() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	seeded := catalog.SeedProducts()
	seeded[0].Specifications = map[string]string{"Peso": "15kg", "Idade": "Adulto"}

	require.NoError(t, suite.products.SaveProducts(ctx, seeded))

	for _, want := range seeded {
		got, err := suite.products.GetProduct(ctx, want.ID)
		require.NoError(t, err)

		diff := cmp.Diff(want, got, valueComparers)
		assert.Empty(t, diff, want.Name)
	}

	// saving again updates in place
	seeded[1].InStock = 0
	require.NoError(t, suite.products.SaveProducts(ctx, seeded[1:2]))

	got, err := suite.products.GetProduct(ctx, seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.InStock)

	all, err := suite.products.ListProducts(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, productIDs(seeded), productIDs(all))
}

func (suite *repositorySuite) TestProducts_GetMissing() {
	t := suite.T()

	_, err := suite.products.GetProduct(t.Context(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProductNotFound))

	_, err = suite.products.GetProduct(t.Context(), uuid.Nil)
	require.EqualError(t, err, "id is empty")
}

func (suite *repositorySuite) TestProducts_SaveRejectsInvalidBatch() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	seeded := catalog.SeedProducts()
	invalid := seeded[2]
	invalid.Price = decimal.NewFromInt(-1)

	err := suite.products.SaveProducts(ctx, []domain.Product{seeded[0], invalid})
	require.Error(t, err)

	all, err := suite.products.ListProducts(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

// The SQL filter must agree with the in-memory engine on every criterion.
func (suite *repositorySuite) TestProducts_ListMatchesFilterEngine() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	seeded := catalog.SeedProducts()
	require.NoError(t, suite.products.SaveProducts(ctx, seeded))

	minPrice := decimal.RequireFromString("40")
	maxPrice := decimal.RequireFromString("100")

	tests := []struct {
		name   string
		filter domain.ProductFilter
	}{
		{name: "no criteria", filter: domain.ProductFilter{}},
		{name: "pet type", filter: domain.ProductFilter{PetType: domain.PetTypeCat}},
		{name: "category", filter: domain.ProductFilter{Category: domain.CategoryFood}},
		{name: "brand", filter: domain.ProductFilter{Brand: seeded[0].Brand}},
		{name: "pet size", filter: domain.ProductFilter{PetSize: domain.PetSizeLarge}},
		{name: "min price", filter: domain.ProductFilter{MinPrice: &minPrice}},
		{name: "max price", filter: domain.ProductFilter{MaxPrice: &maxPrice}},
		{name: "price window", filter: domain.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}},
		{name: "in promotion", filter: domain.ProductFilter{InPromotion: true}},
		{name: "in stock", filter: domain.ProductFilter{InStock: true}},
		{
			name: "combined",
			filter: domain.ProductFilter{
				PetType:     domain.PetTypeDog,
				InStock:     true,
				MaxPrice:    &maxPrice,
				InPromotion: false,
			},
		},
		{name: "unknown brand", filter: domain.ProductFilter{Brand: "Nope"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			got, err := suite.products.ListProducts(t.Context(), tt.filter)
			require.NoError(t, err)

			want := catalog.Filter(seeded, tt.filter)
			assert.Equal(t, productIDs(want), productIDs(got))
		})
	}
}
