package pricing

import (
	"github.com/grpkarunathilaka/the-restaurant-website/internal/cart"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/catalog"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/order"
)

// Fallbacks when a delivery postcode has no match in the table. Lookups
// never fail because the postcode may be incomplete mid-typing; an
// unknown postcode just quotes the out-of-area rate.
const (
	OutOfAreaFee  = 10.00
	PickupTime    = "20-30 mins"
	OutOfAreaTime = "45-60 mins"
)

// Resolver answers fee, time, and total questions from the delivery
// area table. It holds no mutable state; every method is a pure
// function of its inputs and the table.
type Resolver struct {
	areas map[string]catalog.DeliveryArea
}

func NewResolver(areas []catalog.DeliveryArea) *Resolver {
	byPostcode := make(map[string]catalog.DeliveryArea, len(areas))
	for _, area := range areas {
		byPostcode[area.Postcode] = area
	}
	return &Resolver{areas: byPostcode}
}

// DeliveryFee is 0 for pickup, the matched area's fee for a known
// delivery postcode, and the out-of-area fee otherwise.
func (r *Resolver) DeliveryFee(orderType order.OrderType, postcode string) float64 {
	if orderType == order.TypePickup {
		return 0
	}
	if area, ok := r.areas[postcode]; ok {
		return area.DeliveryFee
	}
	return OutOfAreaFee
}

// EstimatedTime follows the same lookup discipline as DeliveryFee.
func (r *Resolver) EstimatedTime(orderType order.OrderType, postcode string) string {
	if orderType == order.TypePickup {
		return PickupTime
	}
	if area, ok := r.areas[postcode]; ok {
		return area.EstimatedTime
	}
	return OutOfAreaTime
}

// Total is the cart subtotal plus the resolved delivery fee.
func (r *Resolver) Total(c *cart.Cart, orderType order.OrderType, postcode string) float64 {
	return c.Subtotal() + r.DeliveryFee(orderType, postcode)
}
