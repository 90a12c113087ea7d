package order

import (
	"fmt"
	"time"
)

type OrderType string

const (
	TypePickup   OrderType = "pickup"
	TypeDelivery OrderType = "delivery"
)

func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(s) {
	case TypePickup, TypeDelivery:
		return OrderType(s), nil
	}
	return "", fmt.Errorf("invalid order type: %q", s)
}

type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSuccess    SubmissionState = "success"
	StateFailure    SubmissionState = "failure"
)

// Draft field names, shared with the validation rule sets and the
// PATCH /order/draft payload.
const (
	FieldFirstName            = "firstName"
	FieldLastName             = "lastName"
	FieldEmail                = "email"
	FieldPhone                = "phone"
	FieldAddress              = "address"
	FieldSuburb               = "suburb"
	FieldPostcode             = "postcode"
	FieldDeliveryInstructions = "deliveryInstructions"
	FieldPreferredTime        = "preferredTime"
	FieldCustomTime           = "customTime"
	FieldSpecialRequests      = "specialRequests"
	FieldPaymentMethod        = "paymentMethod"
)

// Draft is the order form state for one session. Created with default
// values at session start and reset to them after a successful order.
type Draft struct {
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Address              string    `json:"address"`
	Suburb               string    `json:"suburb"`
	Postcode             string    `json:"postcode"`
	DeliveryInstructions string    `json:"delivery_instructions"`
	OrderType            OrderType `json:"order_type"`
	PreferredTime        string    `json:"preferred_time"`
	CustomTime           string    `json:"custom_time"`
	SpecialRequests      string    `json:"special_requests"`
	PaymentMethod        string    `json:"payment_method"`
}

const (
	DefaultPreferredTime = "asap"
	DefaultPaymentMethod = "cash"
)

func NewDraft() Draft {
	return Draft{
		OrderType:     TypePickup,
		PreferredTime: DefaultPreferredTime,
		PaymentMethod: DefaultPaymentMethod,
	}
}

// Set assigns a named text field. The order type is not settable here;
// it has its own transition because it swaps the active rule set.
func (d *Draft) Set(field, value string) error {
	switch field {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldAddress:
		d.Address = value
	case FieldSuburb:
		d.Suburb = value
	case FieldPostcode:
		d.Postcode = value
	case FieldDeliveryInstructions:
		d.DeliveryInstructions = value
	case FieldPreferredTime:
		d.PreferredTime = value
	case FieldCustomTime:
		d.CustomTime = value
	case FieldSpecialRequests:
		d.SpecialRequests = value
	case FieldPaymentMethod:
		d.PaymentMethod = value
	default:
		return fmt.Errorf("unknown field: %q", field)
	}
	return nil
}

// Values returns the validatable text fields by name.
func (d Draft) Values() map[string]string {
	return map[string]string{
		FieldFirstName: d.FirstName,
		FieldLastName:  d.LastName,
		FieldEmail:     d.Email,
		FieldPhone:     d.Phone,
		FieldAddress:   d.Address,
		FieldSuburb:    d.Suburb,
		FieldPostcode:  d.Postcode,
	}
}

// Confirmation is returned by the order placer when an order is
// accepted.
type Confirmation struct {
	Reference     string    `json:"reference"`
	Total         float64   `json:"total"`
	EstimatedTime string    `json:"estimated_time"`
	PlacedAt      time.Time `json:"placed_at"`
}
