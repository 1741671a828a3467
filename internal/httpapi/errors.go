package httpapi

import (
	"github.com/gin-gonic/gin"
)

const (
	codeInvalidInput       = "INVALID_INPUT"
	codeMissingOwner       = "MISSING_OWNER"
	codeNotFound           = "NOT_FOUND"
	codeCheckoutNotFound   = "CHECKOUT_NOT_STARTED"
	codeCannotAdvance      = "CANNOT_ADVANCE"
	codeCannotGoBack       = "CANNOT_GO_BACK"
	codeFlowCompleted      = "CHECKOUT_COMPLETED"
	codeDeliveryLocked     = "DELIVERY_LOCKED"
	codePlacementFailed    = "ORDER_PLACEMENT_FAILED"
	codeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	codeInternal           = "INTERNAL"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func writeError(c *gin.Context, status int, code, message string, details any) {
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}
	c.JSON(status, errorResponse{
		Error:   code,
		Message: message,
		Details: details,
	})
}
