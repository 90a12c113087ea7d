package order

import (
	"regexp"

	"github.com/grpkarunathilaka/the-restaurant-website/internal/validation"
)

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)
	postcodePattern = regexp.MustCompile(`^\d{4}$`)
)

// RulesFor builds the active rule set for an order type. Customer
// fields are always validated; the delivery fields only carry rules
// when the order type is delivery, so switching back to pickup drops
// their errors even if the fields still hold invalid values.
func RulesFor(t OrderType) validation.RuleSet {
	rules := validation.RuleSet{
		FieldFirstName: {
			validation.Required("first name is required"),
			validation.MinLength(2, "first name is too short"),
		},
		FieldLastName: {
			validation.Required("last name is required"),
			validation.MinLength(2, "last name is too short"),
		},
		FieldEmail: {
			validation.Required("email is required"),
			validation.Pattern(emailPattern, "please enter a valid email address"),
		},
		FieldPhone: {
			validation.Required("phone is required"),
			validation.Pattern(phonePattern, "please enter a valid phone number"),
		},
	}

	if t == TypeDelivery {
		rules[FieldAddress] = []validation.Rule{
			validation.Required("address is required"),
		}
		rules[FieldSuburb] = []validation.Rule{
			validation.Required("suburb is required"),
		}
		rules[FieldPostcode] = []validation.Rule{
			validation.Required("postcode is required"),
			validation.Pattern(postcodePattern, "please enter a valid 4-digit postcode"),
		}
	}

	return rules
}
