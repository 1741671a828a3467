package domain

type Step string

const (
	StepCart         Step = "cart"
	StepDelivery     Step = "delivery"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

type DeliveryMethod string

const (
	DeliveryShip   DeliveryMethod = "ship"
	DeliveryPickup DeliveryMethod = "pickup"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryShip || m == DeliveryPickup
}

type PaymentMethod string

const (
	PaymentCard    PaymentMethod = "card"
	PaymentPix     PaymentMethod = "pix"
	PaymentBoleto  PaymentMethod = "boleto"
	PaymentInStore PaymentMethod = "in_store"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPix, PaymentBoleto, PaymentInStore:
		return true
	}
	return false
}

// CustomerInfo carries contact data; Address is validated separately since pickup does not need it.
type CustomerInfo struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required"`
	Phone   string  `json:"phone" validate:"required"`
	Address Address `json:"address" validate:"-"`
}

type Address struct {
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	ZipCode      string `json:"zipCode" validate:"required"`
}
