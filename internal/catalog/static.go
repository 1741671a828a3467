package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
	"github.com/shopspring/decimal"
)

var seedNamespace = uuid.MustParse("6f1c9a4e-2b7d-4e0a-9d1f-3c5e8a7b9d20")

type staticSource struct {
	products []domain.Product
}

// NewStaticSource serves a fixed in-memory catalog.
func NewStaticSource(products []domain.Product) (port.CatalogSource, error) {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("p.Validate: %w", err)
		}
	}

	owned := make([]domain.Product, len(products))
	copy(owned, products)

	return &staticSource{products: owned}, nil
}

func (s *staticSource) ListProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return Filter(s.products, filter), nil
}

func (s *staticSource) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

type seedOptions struct {
	petSize     domain.PetSize
	promotional string
	isNew       bool
	featured    bool
}

func seed(name, description, price string, category domain.Category, petTypes []domain.PetType,
	brand string, inStock int, image string, opts seedOptions) domain.Product {
	p := domain.Product{
		ID:          uuid.NewSHA1(seedNamespace, []byte(name)),
		Name:        name,
		Description: description,
		Brand:       brand,
		Image:       image,
		Category:    category,
		PetTypes:    petTypes,
		PetSize:     opts.petSize,
		Price:       decimal.RequireFromString(price),
		InStock:     inStock,
		IsNew:       opts.isNew,
		Featured:    opts.featured,
	}

	if opts.promotional != "" {
		promo := decimal.RequireFromString(opts.promotional)
		p.PromotionalPrice = &promo
		p.IsPromotion = true
	}

	return p
}

// SeedProducts is the demo catalog; ids are stable across calls.
func SeedProducts() []domain.Product {
	dog := []domain.PetType{domain.PetTypeDog}
	cat := []domain.PetType{domain.PetTypeCat}
	bird := []domain.PetType{domain.PetTypeBird}
	small := []domain.PetType{domain.PetTypeRabbit, domain.PetTypeOther}

	return []domain.Product{
		seed("Ração Premium Cães Adultos", "Ração balanceada para cães adultos de todas as raças.",
			"129.90", domain.CategoryFood, dog, "Royal Canin", 25, "/images/products/dog-food-1.jpg",
			seedOptions{petSize: domain.PetSizeMedium, featured: true}),
		seed("Coleira de Nylon com Fecho Seguro", "Coleira confortável e resistente para passeios.",
			"39.90", domain.CategoryCollar, dog, "PetLove", 40, "/images/products/dog-collar-1.jpg",
			seedOptions{promotional: "29.90"}),
		seed("Bola Interativa com Dispenser de Petiscos", "Estimula o raciocínio e diverte seu cão por horas.",
			"45.50", domain.CategoryToy, dog, "Pet Games", 30, "/images/products/dog-toy-1.jpg",
			seedOptions{isNew: true}),
		seed("Cama Ortopédica Grande", "Cama com espuma de alta densidade para cães grandes.",
			"219.90", domain.CategoryBed, dog, "Fofinho", 8, "/images/products/dog-bed-1.jpg",
			seedOptions{petSize: domain.PetSizeLarge, promotional: "189.90", featured: true}),
		seed("Shampoo Neutro Hipoalergênico", "Limpeza suave para peles sensíveis.",
			"32.00", domain.CategoryHygiene, dog, "PetClean", 0, "/images/products/dog-shampoo-1.jpg",
			seedOptions{}),
		seed("Ração Gatos Castrados", "Controle de peso para gatos castrados.",
			"98.90", domain.CategoryFood, cat, "Royal Canin", 18, "/images/products/cat-food-1.jpg",
			seedOptions{featured: true}),
		seed("Arranhador Torre com Nichos", "Arranhador de sisal com três andares.",
			"159.90", domain.CategoryScratcher, cat, "Cat Life", 6, "/images/products/cat-tree-1.jpg",
			seedOptions{isNew: true}),
		seed("Areia Sanitária Biodegradável", "Areia de grãos naturais com controle de odor.",
			"42.90", domain.CategoryLitter, cat, "PetClean", 50, "/images/products/cat-litter-1.jpg",
			seedOptions{promotional: "36.90"}),
		seed("Gaiola para Calopsita", "Gaiola espaçosa com poleiros e comedouros.",
			"249.00", domain.CategoryCage, bird, "Aviário Real", 4, "/images/products/bird-cage-1.jpg",
			seedOptions{}),
		seed("Mistura de Sementes Premium", "Alimento completo para pássaros de pequeno porte.",
			"24.90", domain.CategoryFood, bird, "Aviário Real", 60, "/images/products/bird-food-1.jpg",
			seedOptions{}),
		seed("Feno Natural para Roedores", "Fonte de fibras para coelhos e porquinhos-da-índia.",
			"19.90", domain.CategoryFood, small, "Fun Rodent", 35, "/images/products/rodent-hay-1.jpg",
			seedOptions{}),
		seed("Túnel Flexível para Roedores", "Túnel flexível para hamsters, gerbils e outros pequenos animais.",
			"39.90", domain.CategoryToy, small, "Fun Rodent", 25, "/images/products/rodent-toy-1.jpg",
			seedOptions{promotional: "29.90"}),
	}
}
