package checkout

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/grpkarunathilaka/the-restaurant-website/internal/cart"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/catalog"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/order"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/pricing"
)

// fakeScheduler records scheduled tasks so tests can fire them in any
// order, including stale ones.
type fakeScheduler struct {
	tasks []*fakeTask
}

type fakeTask struct {
	delay     time.Duration
	fn        func()
	fired     bool
	cancelled bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) CancelFunc {
	task := &fakeTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

func (t *fakeTask) run() {
	if t.fired || t.cancelled {
		return
	}
	t.fired = true
	t.fn()
}

// fireNext runs the oldest pending task, if any.
func (s *fakeScheduler) fireNext() bool {
	for _, task := range s.tasks {
		if !task.fired && !task.cancelled {
			task.run()
			return true
		}
	}
	return false
}

type stubPlacer struct {
	reference string
	err       error
	calls     int
	lastDraft order.Draft
	lastLines []cart.Line
}

func (p *stubPlacer) PlaceOrder(draft order.Draft, lines []cart.Line) (string, error) {
	p.calls++
	p.lastDraft = draft
	p.lastLines = lines
	return p.reference, p.err
}

func newTestSession() (*Session, *fakeScheduler, *stubPlacer) {
	scheduler := &fakeScheduler{}
	placer := &stubPlacer{reference: "ORD-1"}
	resolver := pricing.NewResolver(catalog.SeedDeliveryAreas())
	return NewSession("test-session", resolver, placer, scheduler), scheduler, placer
}

func fillValidPickupDraft(t *testing.T, s *Session) {
	t.Helper()
	fields := map[string]string{
		order.FieldFirstName: "Priya",
		order.FieldLastName:  "Sharma",
		order.FieldEmail:     "priya@example.com",
		order.FieldPhone:     "+61 400 123 456",
	}
	for field, value := range fields {
		if err := s.SetField(field, value); err != nil {
			t.Fatalf("unexpected error setting %s: %v", field, err)
		}
	}
}

var (
	butterChicken = catalog.MenuItem{ID: 4, Name: "Butter Chicken", Price: 24.90}
	samosas       = catalog.MenuItem{ID: 1, Name: "Samosas (2 pieces)", Price: 8.90}
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSubmitHappyPath(t *testing.T) {
	s, scheduler, placer := newTestSession()
	fillValidPickupDraft(t, s)
	s.AddItem(butterChicken)
	s.AddItem(butterChicken)
	s.AddItem(samosas)

	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if s.State() != order.StateSubmitting {
		t.Fatalf("expected submitting state, got %q", s.State())
	}

	// Placement completes.
	if !scheduler.fireNext() {
		t.Fatalf("expected a pending placement task")
	}

	if s.State() != order.StateSuccess {
		t.Fatalf("expected success state, got %q", s.State())
	}
	if placer.calls != 1 {
		t.Fatalf("expected 1 placement call, got %d", placer.calls)
	}
	if len(s.Lines()) != 0 {
		t.Fatalf("expected cart cleared on success")
	}

	conf := s.Confirmation()
	if conf == nil || conf.Reference != "ORD-1" {
		t.Fatalf("expected confirmation with reference, got %+v", conf)
	}
	if !almostEqual(conf.Total, 58.70) {
		t.Fatalf("expected confirmation total 58.70, got %.2f", conf.Total)
	}

	// Display window elapses.
	if !scheduler.fireNext() {
		t.Fatalf("expected a pending dismiss task")
	}

	if s.State() != order.StateIdle {
		t.Fatalf("expected idle state after display window, got %q", s.State())
	}
	draft := s.Draft()
	if draft.FirstName != "" || draft.OrderType != order.TypePickup || draft.PaymentMethod != order.DefaultPaymentMethod {
		t.Fatalf("expected draft reset to defaults, got %+v", draft)
	}
	if s.Confirmation() != nil {
		t.Fatalf("expected confirmation dismissed")
	}
}

func TestSubmitSnapshotsDraftAndCart(t *testing.T) {
	s, scheduler, placer := newTestSession()
	fillValidPickupDraft(t, s)
	s.AddItem(samosas)

	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	// Edits after the attempt starts must not leak into it.
	if err := s.SetField(order.FieldFirstName, "Someone Else"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.AddItem(butterChicken)

	scheduler.fireNext()

	if placer.lastDraft.FirstName != "Priya" {
		t.Fatalf("expected snapshotted draft, got %q", placer.lastDraft.FirstName)
	}
	if len(placer.lastLines) != 1 || placer.lastLines[0].Item.ID != samosas.ID {
		t.Fatalf("expected snapshotted cart lines, got %+v", placer.lastLines)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	s, scheduler, _ := newTestSession()
	// First name left empty so a pre-existing violation exists.
	if err := s.SetField(order.FieldLastName, "Sharma"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := s.Submit()

	var gateErr *GateError
	if !errors.As(err, &gateErr) {
		t.Fatalf("expected gate error, got %v", err)
	}
	if !gateErr.EmptyCart {
		t.Fatalf("expected empty cart flag")
	}
	if gateErr.FieldErrors[order.FieldFirstName] != "first name is required" {
		t.Fatalf("expected pre-existing violations surfaced, got %v", gateErr.FieldErrors)
	}
	if s.State() != order.StateIdle {
		t.Fatalf("expected state to remain idle, got %q", s.State())
	}
	if len(scheduler.tasks) != 0 {
		t.Fatalf("expected no scheduled tasks after refusal")
	}
}

func TestSubmitInvalidDraft(t *testing.T) {
	s, _, placer := newTestSession()
	s.AddItem(butterChicken)
	if err := s.SetField(order.FieldEmail, "not-an-email"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := s.Submit()

	var gateErr *GateError
	if !errors.As(err, &gateErr) {
		t.Fatalf("expected gate error, got %v", err)
	}
	if gateErr.EmptyCart {
		t.Fatalf("expected empty cart flag unset for non-empty cart")
	}
	if gateErr.FieldErrors[order.FieldEmail] != "please enter a valid email address" {
		t.Fatalf("expected email error, got %v", gateErr.FieldErrors)
	}
	if placer.calls != 0 {
		t.Fatalf("expected no placement attempt")
	}
	if len(s.Lines()) != 1 {
		t.Fatalf("expected cart untouched")
	}
}

func TestSecondSubmitWhileSubmittingIsIgnored(t *testing.T) {
	s, scheduler, placer := newTestSession()
	fillValidPickupDraft(t, s)
	s.AddItem(samosas)

	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if err := s.Submit(); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected in-flight error, got %v", err)
	}

	for scheduler.fireNext() {
	}
	if placer.calls != 1 {
		t.Fatalf("expected exactly one placement, got %d", placer.calls)
	}
}

func TestFailurePreservesCartForRetry(t *testing.T) {
	s, scheduler, placer := newTestSession()
	placer.err = errors.New("kitchen is on fire")
	fillValidPickupDraft(t, s)
	s.AddItem(butterChicken)

	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	scheduler.fireNext()

	if s.State() != order.StateFailure {
		t.Fatalf("expected failure state, got %q", s.State())
	}
	if s.FailureMessage() == "" {
		t.Fatalf("expected failure banner message")
	}
	if s.Confirmation() != nil {
		t.Fatalf("expected no confirmation on failure")
	}
	if len(s.Lines()) != 1 {
		t.Fatalf("expected cart preserved for retry")
	}

	// Banner auto-dismisses; cart and draft stay for the retry.
	scheduler.fireNext()

	if s.State() != order.StateIdle {
		t.Fatalf("expected idle after display window, got %q", s.State())
	}
	if s.FailureMessage() != "" {
		t.Fatalf("expected failure message cleared")
	}
	if len(s.Lines()) != 1 || s.Draft().FirstName != "Priya" {
		t.Fatalf("expected cart and draft preserved")
	}

	// Retry succeeds.
	placer.err = nil
	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected retry error: %v", err)
	}
	scheduler.fireNext()
	if s.State() != order.StateSuccess {
		t.Fatalf("expected success on retry, got %q", s.State())
	}
}

func TestStaleDismissDoesNotTouchNewerAttempt(t *testing.T) {
	s, scheduler, placer := newTestSession()
	placer.err = errors.New("temporarily closed")
	fillValidPickupDraft(t, s)
	s.AddItem(samosas)

	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	scheduler.tasks[0].run() // placement fails
	if s.State() != order.StateFailure {
		t.Fatalf("expected failure state, got %q", s.State())
	}

	// User retries before the failure banner dismisses itself.
	placer.err = nil
	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected retry error: %v", err)
	}
	if s.State() != order.StateSubmitting {
		t.Fatalf("expected submitting state, got %q", s.State())
	}

	// The first attempt's dismiss timer fires late; it must not revert
	// the in-flight second attempt.
	scheduler.tasks[1].run()
	if s.State() != order.StateSubmitting {
		t.Fatalf("expected stale dismiss to be ignored, got %q", s.State())
	}

	scheduler.tasks[2].run() // second placement completes
	if s.State() != order.StateSuccess {
		t.Fatalf("expected success, got %q", s.State())
	}
}

func TestCloseCancelsPendingTimers(t *testing.T) {
	s, scheduler, placer := newTestSession()
	fillValidPickupDraft(t, s)
	s.AddItem(samosas)

	if err := s.Submit(); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	s.Close()

	if scheduler.fireNext() {
		t.Fatalf("expected pending tasks cancelled")
	}
	if placer.calls != 0 {
		t.Fatalf("expected no placement after close")
	}
}

func TestStoreCreateGetClose(t *testing.T) {
	resolver := pricing.NewResolver(catalog.SeedDeliveryAreas())
	store := NewStore(resolver, &stubPlacer{reference: "ORD-9"}, &fakeScheduler{})

	session := store.Create()
	got, err := store.Get(session.ID)
	if err != nil || got != session {
		t.Fatalf("expected to fetch the created session, got %v, %v", got, err)
	}

	if _, err := store.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	store.Close()
	if _, err := store.Get(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session removed after close, got %v", err)
	}
}
