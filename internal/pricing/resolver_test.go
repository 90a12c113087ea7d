package pricing

import (
	"math"
	"testing"

	"github.com/grpkarunathilaka/the-restaurant-website/internal/cart"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/catalog"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/order"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newResolver() *Resolver {
	return NewResolver(catalog.SeedDeliveryAreas())
}

func TestDeliveryFee(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name      string
		orderType order.OrderType
		postcode  string
		want      float64
	}{
		{"pickup is always free", order.TypePickup, "3000", 0},
		{"pickup ignores postcode", order.TypePickup, "nonsense", 0},
		{"known postcode", order.TypeDelivery, "3000", 5.00},
		{"another known postcode", order.TypeDelivery, "3182", 8.00},
		{"unknown postcode falls back", order.TypeDelivery, "9999", OutOfAreaFee},
		{"empty postcode falls back", order.TypeDelivery, "", OutOfAreaFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DeliveryFee(tt.orderType, tt.postcode); !almostEqual(got, tt.want) {
				t.Fatalf("expected fee %.2f, got %.2f", tt.want, got)
			}
		})
	}
}

func TestEstimatedTime(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name      string
		orderType order.OrderType
		postcode  string
		want      string
	}{
		{"pickup time", order.TypePickup, "", PickupTime},
		{"known postcode", order.TypeDelivery, "3121", "40-55 mins"},
		{"unknown postcode falls back", order.TypeDelivery, "0000", OutOfAreaTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.EstimatedTime(tt.orderType, tt.postcode); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTotalCombinesSubtotalAndFee(t *testing.T) {
	r := newResolver()

	c := cart.New()
	butterChicken := catalog.MenuItem{ID: 4, Price: 24.90}
	samosas := catalog.MenuItem{ID: 1, Price: 8.90}
	c.AddItem(butterChicken)
	c.AddItem(butterChicken)
	c.AddItem(samosas)

	if got := c.Subtotal(); !almostEqual(got, 58.70) {
		t.Fatalf("expected subtotal 58.70, got %.2f", got)
	}
	if got := r.Total(c, order.TypeDelivery, "3000"); !almostEqual(got, 63.70) {
		t.Fatalf("expected total 63.70, got %.2f", got)
	}
	if got := r.Total(c, order.TypePickup, "3000"); !almostEqual(got, 58.70) {
		t.Fatalf("expected pickup total to equal subtotal, got %.2f", got)
	}
}
