package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/grpkarunathilaka/the-restaurant-website/internal/cart"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/catalog"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/order"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/pricing"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/validation"
)

const (
	// PlacementDelay simulates the latency of the abstract place-order
	// operation before its result is applied.
	PlacementDelay = 2 * time.Second
	// DisplayWindow is how long the success and failure banners stay up
	// before the session auto-reverts to idle.
	DisplayWindow = 5 * time.Second
)

const failureMessage = "we couldn't place your order, please try again"

// ErrSubmitInFlight is returned when a submit request arrives while a
// previous attempt is still in progress. The request is ignored.
var ErrSubmitInFlight = errors.New("an order submission is already in progress")

// GateError reports why a submit request was refused before any
// attempt started. All fields are touched when it is returned, so every
// violation is visible to the user.
type GateError struct {
	EmptyCart   bool
	FieldErrors map[string]string
}

func (e *GateError) Error() string {
	if e.EmptyCart {
		return "cannot submit an empty cart"
	}
	return "order form has validation errors"
}

// Session owns one visitor's cart, order draft, validation state, and
// submission lifecycle. The mutex serializes user actions against
// timer callbacks; timer callbacks additionally carry the attempt id
// they belong to and no-op if a newer attempt superseded them.
type Session struct {
	ID string

	mu        sync.Mutex
	cart      *cart.Cart
	draft     order.Draft
	validator *validation.Controller
	resolver  *pricing.Resolver
	placer    OrderPlacer
	scheduler Scheduler

	state        order.SubmissionState
	attempt      int
	confirmation *order.Confirmation
	failure      string
	cancels      []CancelFunc
	closed       bool
}

func NewSession(id string, resolver *pricing.Resolver, placer OrderPlacer, scheduler Scheduler) *Session {
	return &Session{
		ID:        id,
		cart:      cart.New(),
		draft:     order.NewDraft(),
		validator: validation.NewController(order.RulesFor(order.TypePickup)),
		resolver:  resolver,
		placer:    placer,
		scheduler: scheduler,
		state:     order.StateIdle,
	}
}

// --------------------------------------------------
// Cart operations
// --------------------------------------------------

func (s *Session) AddItem(item catalog.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(item)
}

func (s *Session) SetQuantity(itemID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(itemID, quantity)
}

func (s *Session) SetNote(itemID int, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetNote(itemID, note)
}

func (s *Session) RemoveItem(itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(itemID)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Session) Lines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Session) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

func (s *Session) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// --------------------------------------------------
// Draft and validation
// --------------------------------------------------

// SetField assigns a draft field, feeds the new value to the
// validation controller, and marks the field touched.
func (s *Session) SetField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.Set(field, value); err != nil {
		return err
	}
	s.syncValidatorLocked()
	s.validator.Touch(field)
	return nil
}

// SetOrderType switches pickup/delivery and swaps the active rule set,
// re-evaluating whatever has already been entered.
func (s *Session) SetOrderType(t order.OrderType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.OrderType = t
	s.validator.SetRules(order.RulesFor(t))
	s.syncValidatorLocked()
}

func (s *Session) syncValidatorLocked() {
	for field, value := range s.draft.Values() {
		s.validator.SetValue(field, value)
	}
}

func (s *Session) Draft() order.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.IsValid()
}

// FieldErrors returns the visible (touched and failing) field errors.
func (s *Session) FieldErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.Errors()
}

// --------------------------------------------------
// Pricing (derived, read-only)
// --------------------------------------------------

func (s *Session) DeliveryFee() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.DeliveryFee(s.draft.OrderType, s.draft.Postcode)
}

func (s *Session) EstimatedTime() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.EstimatedTime(s.draft.OrderType, s.draft.Postcode)
}

func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Total(s.cart, s.draft.OrderType, s.draft.Postcode)
}

// --------------------------------------------------
// Submission lifecycle
// --------------------------------------------------

func (s *Session) State() order.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Confirmation() *order.Confirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmation
}

// FailureMessage is the transient banner text while in the failure
// state, empty otherwise.
func (s *Session) FailureMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// Submit starts a submission attempt. It refuses with a GateError when
// the cart is empty or any active rule fails (touching all fields so
// the violations surface), and with ErrSubmitInFlight while a previous
// attempt is still running.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == order.StateSubmitting {
		return ErrSubmitInFlight
	}

	if s.cart.IsEmpty() || !s.validator.IsValid() {
		s.validator.TouchAll()
		return &GateError{
			EmptyCart:   s.cart.IsEmpty(),
			FieldErrors: s.validator.Errors(),
		}
	}

	s.attempt++
	id := s.attempt
	s.state = order.StateSubmitting
	s.confirmation = nil
	s.failure = ""

	// Snapshot the attempt; later edits must not leak into it.
	draft := s.draft
	lines := s.cart.Lines()
	total := s.resolver.Total(s.cart, draft.OrderType, draft.Postcode)
	eta := s.resolver.EstimatedTime(draft.OrderType, draft.Postcode)

	s.scheduleLocked(PlacementDelay, func() {
		s.completePlacement(id, draft, lines, total, eta)
	})
	return nil
}

// completePlacement applies the result of the abstract place-order
// operation for the given attempt. The placer runs outside the lock;
// the attempt check afterwards drops stale results.
func (s *Session) completePlacement(id int, draft order.Draft, lines []cart.Line, total float64, eta string) {
	reference, err := s.placer.PlaceOrder(draft, lines)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || id != s.attempt || s.state != order.StateSubmitting {
		return
	}

	if err != nil {
		s.state = order.StateFailure
		s.failure = failureMessage
	} else {
		s.state = order.StateSuccess
		s.confirmation = &order.Confirmation{
			Reference:     reference,
			Total:         total,
			EstimatedTime: eta,
			PlacedAt:      time.Now(),
		}
		s.cart.Clear()
	}

	s.scheduleLocked(DisplayWindow, func() { s.dismiss(id) })
}

// dismiss ends the success or failure display window. Success resets
// the draft to its defaults; failure keeps cart and draft so the user
// can retry.
func (s *Session) dismiss(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || id != s.attempt {
		return
	}

	switch s.state {
	case order.StateSuccess:
		s.draft = order.NewDraft()
		s.validator = validation.NewController(order.RulesFor(order.TypePickup))
		s.confirmation = nil
		s.state = order.StateIdle
	case order.StateFailure:
		s.failure = ""
		s.state = order.StateIdle
	}
}

func (s *Session) scheduleLocked(d time.Duration, fn func()) {
	s.cancels = append(s.cancels, s.scheduler.AfterFunc(d, fn))
}

// Close cancels any pending timers so a torn-down session cannot be
// mutated afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}
