package checkout

import (
	"github.com/google/uuid"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/cart"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/order"
)

// OrderPlacer is the abstract "place order" operation invoked once a
// submission passes the gate. A real implementation would call the
// restaurant's ordering endpoint; it returns an order reference or an
// error.
type OrderPlacer interface {
	PlaceOrder(draft order.Draft, lines []cart.Line) (string, error)
}

// SimulatedPlacer accepts every order and issues a reference, standing
// in for the network call the site does not make yet.
type SimulatedPlacer struct{}

func (SimulatedPlacer) PlaceOrder(draft order.Draft, lines []cart.Line) (string, error) {
	return uuid.New().String(), nil
}
