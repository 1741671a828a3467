package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/cart"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestCartStorage_SaveLoad() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		key       string
		blobs     [][]byte
		want      []byte
		wantError string
	}{
		{
			name:  "save and load blob: ok",
			key:   gofakeit.UUID(),
			blobs: [][]byte{[]byte(`[{"quantity":1}]`)},
			want:  []byte(`[{"quantity":1}]`),
		},
		{
			name:  "second save overwrites: ok",
			key:   gofakeit.UUID(),
			blobs: [][]byte{[]byte(`[{"quantity":1}]`), []byte(`[]`)},
			want:  []byte(`[]`),
		},
		{
			name:  "opaque bytes are kept: ok",
			key:   gofakeit.UUID(),
			blobs: [][]byte{[]byte("not json at all")},
			want:  []byte("not json at all"),
		},
		{
			name:      "save with empty key: error",
			key:       "",
			blobs:     [][]byte{[]byte(`[]`)},
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, blob := range tt.blobs {
				err := suite.carts.Save(ctx, tt.key, blob)
				if tt.wantError != "" {
					require.EqualError(t, err, tt.wantError)
					return
				}
				require.NoError(t, err)
			}

			got, ok, err := suite.carts.Load(ctx, tt.key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func (suite *repositorySuite) TestCartStorage_LoadMissing() {
	t := suite.T()

	blob, ok, err := suite.carts.Load(t.Context(), gofakeit.UUID())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, blob)

	_, _, err = suite.carts.Load(t.Context(), "")
	require.EqualError(t, err, "key is empty")
}

func (suite *repositorySuite) TestCartStorage_BacksCartStore() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	product := domain.Product{
		ID:       uuid.New(),
		Name:     gofakeit.ProductName(),
		Category: domain.CategoryBed,
		PetTypes: []domain.PetType{domain.PetTypeCat},
		Price:    decimal.RequireFromString("149.90"),
		InStock:  3,
	}

	store, err := cart.NewStore(suite.carts, cart.WithKey(key))
	require.NoError(t, err)
	store.AddToCart(ctx, product, 2)

	reloaded, err := cart.NewStore(suite.carts, cart.WithKey(key))
	require.NoError(t, err)
	reloaded.Load(ctx)

	assert.Equal(t, 2, reloaded.TotalItems())
	assert.Equal(t, "BRL 299.80", reloaded.TotalPrice().String())
}
