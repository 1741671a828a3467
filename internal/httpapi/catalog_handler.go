package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/catalog"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type productQuery struct {
	PetType     string `form:"petType" validate:"omitempty,oneof=dog cat bird rabbit other"`
	Category    string `form:"category" validate:"omitempty,oneof=food collar toy bed accessory hygiene feeder scratcher litter cage habitat"`
	Brand       string `form:"brand"`
	PetSize     string `form:"petSize" validate:"omitempty,oneof=small medium large"`
	MinPrice    string `form:"minPrice" validate:"omitempty,numeric"`
	MaxPrice    string `form:"maxPrice" validate:"omitempty,numeric"`
	InPromotion bool   `form:"inPromotion"`
	InStock     bool   `form:"inStock"`
}

func (q productQuery) filter() (domain.ProductFilter, error) {
	f := domain.ProductFilter{
		PetType:     domain.PetType(q.PetType),
		Category:    domain.Category(q.Category),
		Brand:       q.Brand,
		PetSize:     domain.PetSize(q.PetSize),
		InPromotion: q.InPromotion,
		InStock:     q.InStock,
	}
	if q.MinPrice != "" {
		v, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("minPrice: %w", err)
		}
		f.MinPrice = &v
	}
	if q.MaxPrice != "" {
		v, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return domain.ProductFilter{}, fmt.Errorf("maxPrice: %w", err)
		}
		f.MaxPrice = &v
	}
	return f, nil
}

func bindFilter(c *gin.Context) (domain.ProductFilter, bool) {
	var q productQuery
	if !bindQuery(c, &q) {
		return domain.ProductFilter{}, false
	}

	f, err := q.filter()
	if err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidInput, "invalid query", err.Error())
		return domain.ProductFilter{}, false
	}
	return f, true
}

func (s *Server) listProducts(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	products, err := s.deps.Catalog.Search(c.Request.Context(), f)
	if err != nil {
		s.catalogUnavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (s *Server) productFacets(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	facets, err := s.deps.Catalog.Facets(c.Request.Context())
	if err != nil {
		s.catalogUnavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, newFacetsView(facets, catalog.IsActive(f, facets.PriceRange)))
}

func (s *Server) categories(c *gin.Context) {
	var q struct {
		PetType string `form:"petType" validate:"omitempty,oneof=dog cat bird rabbit other"`
	}
	if !bindQuery(c, &q) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": catalog.CategoriesFor(domain.PetType(q.PetType))})
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidInput, "invalid product id", err.Error())
		return
	}

	product, err := s.deps.Catalog.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(c, http.StatusNotFound, codeNotFound, "product not found", id.String())
			return
		}
		s.catalogUnavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) catalogUnavailable(c *gin.Context, err error) {
	s.logger.Error("catalog fetch failed", zap.Error(err))
	_ = c.Error(err)
	writeError(c, http.StatusServiceUnavailable, codeCatalogUnavailable, "catalog is unavailable", "")
}
