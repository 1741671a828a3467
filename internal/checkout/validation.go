package checkout

import (
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/petclub-shop/internal/domain"
)

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// deliveryComplete requires contact data always and the address only when shipping.
func (f *Flow) deliveryComplete() bool {
	if err := f.validate.Struct(f.customer); err != nil {
		return false
	}

	if f.delivery == domain.DeliveryShip {
		return f.validate.Struct(f.customer.Address) == nil
	}

	return true
}

// MissingFields lists the delivery fields still blocking the delivery step.
func (f *Flow) MissingFields() []string {
	var missing []string

	collect := func(s any) {
		err := f.validate.Struct(s)
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				missing = append(missing, fe.StructNamespace())
			}
		}
	}

	collect(f.customer)
	if f.delivery == domain.DeliveryShip {
		collect(f.customer.Address)
	}

	return missing
}
