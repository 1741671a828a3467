package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (s *Server) getCart(c *gin.Context, sess *session) {
	c.JSON(http.StatusOK, newCartView(sess.cart))
}

func (s *Server) addItem(c *gin.Context, sess *session) {
	var req addItemRequest
	if !bindJSON(c, &req) {
		return
	}

	id := uuid.MustParse(req.ProductID)
	product, err := s.deps.Catalog.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(c, http.StatusNotFound, codeNotFound, "product not found", id.String())
			return
		}
		s.catalogUnavailable(c, err)
		return
	}

	sess.cart.AddToCart(c.Request.Context(), product, req.Quantity)
	c.JSON(http.StatusOK, newCartView(sess.cart))
}

func (s *Server) updateItem(c *gin.Context, sess *session) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	sess.cart.UpdateQuantity(c.Request.Context(), id, *req.Quantity)
	c.JSON(http.StatusOK, newCartView(sess.cart))
}

func (s *Server) removeItem(c *gin.Context, sess *session) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	sess.cart.RemoveFromCart(c.Request.Context(), id)
	c.JSON(http.StatusOK, newCartView(sess.cart))
}

func (s *Server) clearCart(c *gin.Context, sess *session) {
	sess.cart.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, newCartView(sess.cart))
}

func productIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidInput, "invalid product id", err.Error())
		return uuid.Nil, false
	}
	return id, true
}
