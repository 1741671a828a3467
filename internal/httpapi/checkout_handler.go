package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/petclub-shop/internal/checkout"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"go.uber.org/zap"
)

type deliveryRequest struct {
	Method string `json:"method" validate:"required,oneof=ship pickup"`
}

type paymentRequest struct {
	Method string `json:"method" validate:"required,oneof=card pix boleto in_store"`
}

// startCheckout discards any previous flow of the owner and starts at the cart step.
func (s *Server) startCheckout(c *gin.Context, sess *session) {
	flow, err := s.newFlow(sess, c.GetString(ownerKey))
	if err != nil {
		writeError(c, http.StatusInternalServerError, codeInternal, "could not start checkout", err.Error())
		return
	}

	sess.flow = flow
	c.JSON(http.StatusCreated, newCheckoutView(flow))
}

func (s *Server) getCheckout(c *gin.Context, sess *session) {
	if !requireFlow(c, sess) {
		return
	}
	c.JSON(http.StatusOK, newCheckoutView(sess.flow))
}

func (s *Server) setCustomer(c *gin.Context, sess *session) {
	if !requireFlow(c, sess) {
		return
	}

	// completeness is the delivery step guard, not a request error
	var customer domain.CustomerInfo
	if err := c.ShouldBindJSON(&customer); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidInput, "invalid request body", err.Error())
		return
	}

	s.respondFlow(c, sess, sess.flow.SetCustomer(customer))
}

func (s *Server) setDelivery(c *gin.Context, sess *session) {
	if !requireFlow(c, sess) {
		return
	}

	var req deliveryRequest
	if !bindJSON(c, &req) {
		return
	}

	s.respondFlow(c, sess, sess.flow.SetDeliveryMethod(domain.DeliveryMethod(req.Method)))
}

func (s *Server) setPayment(c *gin.Context, sess *session) {
	if !requireFlow(c, sess) {
		return
	}

	var req paymentRequest
	if !bindJSON(c, &req) {
		return
	}

	s.respondFlow(c, sess, sess.flow.SetPaymentMethod(domain.PaymentMethod(req.Method)))
}

func (s *Server) advance(c *gin.Context, sess *session) {
	if !requireFlow(c, sess) {
		return
	}

	s.respondFlow(c, sess, sess.flow.Advance(c.Request.Context()))
}

func (s *Server) back(c *gin.Context, sess *session) {
	if !requireFlow(c, sess) {
		return
	}

	s.respondFlow(c, sess, sess.flow.Back())
}

func (s *Server) respondFlow(c *gin.Context, sess *session, err error) {
	flow := sess.flow

	switch {
	case err == nil:
		c.JSON(http.StatusOK, newCheckoutView(flow))
	case errors.Is(err, checkout.ErrCannotAdvance):
		writeError(c, http.StatusConflict, codeCannotAdvance, err.Error(), gin.H{
			"step":          flow.Step(),
			"missingFields": flow.MissingFields(),
		})
	case errors.Is(err, checkout.ErrCannotGoBack):
		writeError(c, http.StatusConflict, codeCannotGoBack, err.Error(), gin.H{"step": flow.Step()})
	case errors.Is(err, checkout.ErrDeliveryLocked):
		writeError(c, http.StatusConflict, codeDeliveryLocked, err.Error(), gin.H{"step": flow.Step()})
	case errors.Is(err, checkout.ErrFlowCompleted):
		writeError(c, http.StatusConflict, codeFlowCompleted, err.Error(), "")
	case errors.Is(err, checkout.ErrInvalidMethod):
		writeError(c, http.StatusBadRequest, codeInvalidInput, err.Error(), "")
	default:
		s.logger.Error("checkout step failed",
			zap.String("owner", c.GetString(ownerKey)),
			zap.String("step", string(flow.Step())),
			zap.Error(err))
		_ = c.Error(err)
		writeError(c, http.StatusBadGateway, codePlacementFailed, "order could not be placed", err.Error())
	}
}

func requireFlow(c *gin.Context, sess *session) bool {
	if sess.flow == nil {
		writeError(c, http.StatusNotFound, codeCheckoutNotFound, "checkout has not been started", "")
		return false
	}
	return true
}
