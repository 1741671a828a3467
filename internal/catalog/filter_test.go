package catalog_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/catalog"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_PromotionalPriceRange(t *testing.T) {
	a := product("A", "50", "")
	b := product("B", "100", "60")

	got := catalog.Filter([]domain.Product{a, b}, domain.ProductFilter{
		MinPrice: dec("55"),
		MaxPrice: dec("70"),
	})

	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestFilter_Criteria(t *testing.T) {
	food := product("food", "129.90", "")
	food.Category = domain.CategoryFood
	food.Brand = "Royal Canin"
	food.PetSize = domain.PetSizeMedium
	food.PetTypes = []domain.PetType{domain.PetTypeDog}
	food.InStock = 10

	toy := product("toy", "39.90", "29.90")
	toy.Category = domain.CategoryToy
	toy.Brand = "Fun Rodent"
	toy.PetTypes = []domain.PetType{domain.PetTypeRabbit, domain.PetTypeOther}
	toy.InStock = 0

	all := []domain.Product{food, toy}

	tests := []struct {
		name   string
		filter domain.ProductFilter
		want   []domain.Product
	}{
		{
			name:   "empty filter: everything",
			filter: domain.ProductFilter{},
			want:   all,
		},
		{
			name:   "pet type membership: ok",
			filter: domain.ProductFilter{PetType: domain.PetTypeOther},
			want:   []domain.Product{toy},
		},
		{
			name:   "category equality: ok",
			filter: domain.ProductFilter{Category: domain.CategoryFood},
			want:   []domain.Product{food},
		},
		{
			name:   "brand equality: ok",
			filter: domain.ProductFilter{Brand: "Fun Rodent"},
			want:   []domain.Product{toy},
		},
		{
			name:   "pet size excludes products without size",
			filter: domain.ProductFilter{PetSize: domain.PetSizeMedium},
			want:   []domain.Product{food},
		},
		{
			name:   "promotion only: ok",
			filter: domain.ProductFilter{InPromotion: true},
			want:   []domain.Product{toy},
		},
		{
			name:   "in stock only: ok",
			filter: domain.ProductFilter{InStock: true},
			want:   []domain.Product{food},
		},
		{
			name:   "inclusive bounds on effective price",
			filter: domain.ProductFilter{MinPrice: dec("29.90"), MaxPrice: dec("29.90")},
			want:   []domain.Product{toy},
		},
		{
			name:   "conflicting criteria: nothing",
			filter: domain.ProductFilter{Category: domain.CategoryFood, InPromotion: true},
			want:   []domain.Product{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(all, tt.filter)
			assert.Empty(t, cmp.Diff(ids(tt.want), ids(got)))
		})
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := catalog.Filter(nil, domain.ProductFilter{Brand: "any"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_AddingConstraintNeverGrowsResult(t *testing.T) {
	products := make([]domain.Product, 0, 50)
	for range 50 {
		products = append(products, randomProduct())
	}

	for range 100 {
		base := randomFilter()
		narrowed := narrow(base)

		baseResult := ids(catalog.Filter(products, base))
		narrowedResult := ids(catalog.Filter(products, narrowed))

		require.LessOrEqual(t, len(narrowedResult), len(baseResult))
		for _, id := range narrowedResult {
			assert.Contains(t, baseResult, id)
		}
	}
}

func TestBrands(t *testing.T) {
	a := product("a", "10", "")
	a.Brand = "PetLove"
	b := product("b", "10", "")
	b.Brand = "Royal Canin"
	c := product("c", "10", "")
	c.Brand = "PetLove"

	assert.Equal(t, []string{"PetLove", "Royal Canin"}, catalog.Brands([]domain.Product{a, b, c}))
	assert.Empty(t, catalog.Brands(nil))
}

func TestPriceRange(t *testing.T) {
	products := []domain.Product{
		product("a", "129.90", ""),
		product("b", "39.90", "29.90"),
		product("c", "219.90", "189.90"),
	}

	r, ok := catalog.PriceRange(products)
	require.True(t, ok)
	assert.True(t, r.Min.Equal(decimal.RequireFromString("29.90")), "min %s", r.Min)
	assert.True(t, r.Max.Equal(decimal.RequireFromString("189.90")), "max %s", r.Max)

	_, ok = catalog.PriceRange(nil)
	assert.False(t, ok)
}

func TestIsActive(t *testing.T) {
	r := catalog.Range{Min: decimal.RequireFromString("19.90"), Max: decimal.RequireFromString("249")}

	tests := []struct {
		name   string
		filter domain.ProductFilter
		want   bool
	}{
		{
			name:   "only pet type: inactive",
			filter: domain.ProductFilter{PetType: domain.PetTypeDog},
			want:   false,
		},
		{
			name:   "bounds equal to computed range: inactive",
			filter: domain.ProductFilter{MinPrice: dec("19.90"), MaxPrice: dec("249.00")},
			want:   false,
		},
		{
			name:   "narrowed min bound: active",
			filter: domain.ProductFilter{MinPrice: dec("20")},
			want:   true,
		},
		{
			name:   "narrowed max bound: active",
			filter: domain.ProductFilter{MaxPrice: dec("100")},
			want:   true,
		},
		{
			name:   "brand: active",
			filter: domain.ProductFilter{Brand: "PetLove"},
			want:   true,
		},
		{
			name:   "promotion: active",
			filter: domain.ProductFilter{InPromotion: true},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.IsActive(tt.filter, r))
		})
	}
}

func TestSelections(t *testing.T) {
	featured := product("featured", "10", "")
	featured.Featured = true
	featured.PetTypes = []domain.PetType{domain.PetTypeCat}
	featured.Category = domain.CategoryLitter

	fresh := product("new", "10", "8")
	fresh.IsNew = true
	fresh.PetTypes = []domain.PetType{domain.PetTypeDog}
	fresh.Category = domain.CategoryToy

	all := []domain.Product{featured, fresh}

	assert.Equal(t, ids([]domain.Product{featured}), ids(catalog.Featured(all)))
	assert.Equal(t, ids([]domain.Product{fresh}), ids(catalog.New(all)))
	assert.Equal(t, ids([]domain.Product{fresh}), ids(catalog.Promotions(all)))
	assert.Equal(t, ids([]domain.Product{featured}), ids(catalog.ByPetType(all, domain.PetTypeCat)))
	assert.Equal(t, ids([]domain.Product{fresh}), ids(catalog.ByCategory(all, domain.CategoryToy)))
}

func product(name, price, promotional string) domain.Product {
	p := domain.Product{
		ID:    uuid.MustParse(gofakeit.UUID()),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	if promotional != "" {
		p.PromotionalPrice = dec(promotional)
		p.IsPromotion = true
	}
	return p
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ids(products []domain.Product) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

var (
	petTypes   = []string{"dog", "cat", "bird", "rabbit", "other"}
	categories = []string{"food", "collar", "toy", "bed", "accessory"}
	sizes      = []string{"", "small", "medium", "large"}
	brands     = []string{"PetLove", "Royal Canin", "Fun Rodent", "Pet Games"}
)

func randomProduct() domain.Product {
	price := decimal.NewFromFloat(gofakeit.Price(1, 300)).Round(2)

	p := domain.Product{
		ID:       uuid.MustParse(gofakeit.UUID()),
		Name:     gofakeit.ProductName(),
		Brand:    gofakeit.RandomString(brands),
		Category: domain.Category(gofakeit.RandomString(categories)),
		PetTypes: []domain.PetType{domain.PetType(gofakeit.RandomString(petTypes))},
		PetSize:  domain.PetSize(gofakeit.RandomString(sizes)),
		Price:    price,
		InStock:  gofakeit.Number(0, 5),
	}

	if gofakeit.Bool() {
		promo := price.Mul(decimal.RequireFromString("0.8")).Round(2)
		p.PromotionalPrice = &promo
		p.IsPromotion = true
	}

	return p
}

func randomFilter() domain.ProductFilter {
	var f domain.ProductFilter

	if gofakeit.Bool() {
		f.PetType = domain.PetType(gofakeit.RandomString(petTypes))
	}
	if gofakeit.Bool() {
		f.Brand = gofakeit.RandomString(brands)
	}
	if gofakeit.Bool() {
		f.MinPrice = dec(decimal.NewFromFloat(gofakeit.Price(1, 150)).Round(2).String())
	}

	return f
}

// narrow adds one more constraint on top of f.
func narrow(f domain.ProductFilter) domain.ProductFilter {
	switch gofakeit.Number(0, 4) {
	case 0:
		f.Category = domain.Category(gofakeit.RandomString(categories))
	case 1:
		f.InPromotion = true
	case 2:
		f.InStock = true
	case 3:
		f.MaxPrice = dec(decimal.NewFromFloat(gofakeit.Price(50, 300)).Round(2).String())
	default:
		f.PetSize = domain.PetSize(gofakeit.RandomString(sizes[1:]))
	}
	return f
}
