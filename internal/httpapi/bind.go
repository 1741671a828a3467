package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindJSON binds and validates the request body, writing a 400 on failure.
func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidInput, "invalid request body", err.Error())
		return false
	}
	return validateRequest(c, out)
}

func bindQuery(c *gin.Context, out any) bool {
	if err := c.ShouldBindQuery(out); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidInput, "invalid query", err.Error())
		return false
	}
	return validateRequest(c, out)
}

func validateRequest(c *gin.Context, out any) bool {
	err := validate.Struct(out)
	if err == nil {
		return true
	}

	fields := map[string]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
	} else {
		fields["error"] = err.Error()
	}

	writeError(c, http.StatusBadRequest, codeInvalidInput, "validation failed", fields)
	return false
}
