package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"shopfront/internal/model"
	"shopfront/internal/payment"
	"shopfront/internal/payment/pending"
	"shopfront/internal/session"
	"shopfront/pkg/errs"
	"shopfront/pkg/memstore"
)

// mockLogger implements log.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// mockVerifier implements payment.API and records the forwarded params.
type mockVerifier struct {
	err    error
	params url.Values
	calls  int
}

func (m *mockVerifier) VerifyPayment(ctx context.Context, params url.Values) error {
	m.calls++
	m.params = params
	return m.err
}

// mockSession implements session.UseCase, recording logout.
type mockSession struct {
	loggedOut bool
}

func (m *mockSession) Restore(ctx context.Context) {}

func (m *mockSession) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	return nil, nil
}

func (m *mockSession) Logout(ctx context.Context) { m.loggedOut = true }

func (m *mockSession) Refresh(ctx context.Context) (*model.Identity, error) { return nil, nil }

func (m *mockSession) Snapshot() session.Snapshot { return session.Snapshot{} }

func newResolver(api *mockVerifier, sess *mockSession) (payment.UseCase, *pending.Store) {
	pendingStore := pending.NewStore(memstore.New())
	return New(&mockLogger{}, api, sess, pendingStore, 2*time.Second), pendingStore
}

func gatewayReturn() url.Values {
	return url.Values{
		"vnp_TxnRef":        {"o-1"},
		"vnp_ResponseCode":  {"00"},
		"vnp_SecureHash":    {"abc123"},
		"vnp_TransactionNo": {"14658493"},
	}
}

func TestResolve_ForwardsParamsVerbatim(t *testing.T) {
	api := &mockVerifier{}
	uc, _ := newResolver(api, &mockSession{})

	params := gatewayReturn()
	uc.Resolve(context.Background(), payment.FlowPurchase, params)

	if api.calls != 1 {
		t.Fatalf("VerifyPayment calls = %d, want 1", api.calls)
	}
	if got, want := api.params.Encode(), params.Encode(); got != want {
		t.Errorf("forwarded params = %q, want %q", got, want)
	}
}

func TestResolve_PurchaseSuccess(t *testing.T) {
	api := &mockVerifier{}
	uc, pendingStore := newResolver(api, &mockSession{})
	pendingStore.SetOrder(model.PendingPayment{OrderID: "o-1", AttemptID: "a-1"})

	outcome := uc.Resolve(context.Background(), payment.FlowPurchase, gatewayReturn())

	if outcome.Verdict != payment.VerdictSuccess {
		t.Errorf("verdict = %v, want success", outcome.Verdict)
	}
	if outcome.NavigateTo != payment.RouteOrders {
		t.Errorf("navigate to = %q, want %q", outcome.NavigateTo, payment.RouteOrders)
	}
	if outcome.NavigateIn != 2*time.Second {
		t.Errorf("navigate in = %v, want 2s", outcome.NavigateIn)
	}
	if outcome.OrderID != "o-1" {
		t.Errorf("order id = %q, want o-1", outcome.OrderID)
	}
	if _, ok := pendingStore.Order(); ok {
		t.Error("purchase marker survived a successful resolution")
	}
}

func TestResolve_PurchaseFailureClearsMarkerToo(t *testing.T) {
	api := &mockVerifier{err: errs.NewGatewayError("24", "transaction canceled")}
	uc, pendingStore := newResolver(api, &mockSession{})
	pendingStore.SetOrder(model.PendingPayment{OrderID: "o-1", AttemptID: "a-1"})

	outcome := uc.Resolve(context.Background(), payment.FlowPurchase, gatewayReturn())

	if outcome.Verdict != payment.VerdictFailure {
		t.Errorf("verdict = %v, want failure", outcome.Verdict)
	}
	if outcome.NavigateTo != payment.RouteCart {
		t.Errorf("navigate to = %q, want %q", outcome.NavigateTo, payment.RouteCart)
	}
	if outcome.NavigateIn != 2*time.Second {
		t.Errorf("navigate in = %v, want 2s", outcome.NavigateIn)
	}
	if _, ok := pendingStore.Order(); ok {
		t.Error("purchase marker survived a failed resolution")
	}
}

func TestResolve_TransportFailure(t *testing.T) {
	api := &mockVerifier{err: errs.NewTransportError("VerifyPayment", errors.New("connection refused"))}
	uc, pendingStore := newResolver(api, &mockSession{})
	pendingStore.SetOrder(model.PendingPayment{OrderID: "o-1"})

	outcome := uc.Resolve(context.Background(), payment.FlowPurchase, gatewayReturn())

	if outcome.Verdict != payment.VerdictFailure {
		t.Errorf("verdict = %v, want failure for transport error", outcome.Verdict)
	}
	if outcome.NavigateTo != payment.RouteCart {
		t.Errorf("navigate to = %q, want the cart like any other failure", outcome.NavigateTo)
	}
	if _, ok := pendingStore.Order(); ok {
		t.Error("marker survived a transport failure")
	}
}

func TestResolve_UnauthorizedForcesLogout(t *testing.T) {
	api := &mockVerifier{err: errs.ErrUnauthorized}
	sess := &mockSession{}
	uc, pendingStore := newResolver(api, sess)
	pendingStore.SetOrder(model.PendingPayment{OrderID: "o-1"})

	outcome := uc.Resolve(context.Background(), payment.FlowPurchase, gatewayReturn())

	if !sess.loggedOut {
		t.Error("401 during resolution did not force a logout")
	}
	if outcome.NavigateTo != payment.RouteLogin {
		t.Errorf("navigate to = %q, want %q", outcome.NavigateTo, payment.RouteLogin)
	}
	if _, ok := pendingStore.Order(); ok {
		t.Error("marker survived an unauthorized resolution")
	}
}

func TestResolve_TopupFlow(t *testing.T) {
	t.Run("success navigates to profile immediately", func(t *testing.T) {
		api := &mockVerifier{}
		uc, pendingStore := newResolver(api, &mockSession{})
		pendingStore.SetTopup(model.PendingPayment{Amount: 50000, AttemptID: "a-1"})

		outcome := uc.Resolve(context.Background(), payment.FlowTopup, gatewayReturn())

		if outcome.Verdict != payment.VerdictSuccess {
			t.Errorf("verdict = %v, want success", outcome.Verdict)
		}
		if outcome.NavigateTo != payment.RouteProfile {
			t.Errorf("navigate to = %q, want %q", outcome.NavigateTo, payment.RouteProfile)
		}
		if outcome.NavigateIn != 0 {
			t.Errorf("navigate in = %v, want immediate", outcome.NavigateIn)
		}
		if _, ok := pendingStore.Topup(); ok {
			t.Error("top-up marker survived a successful resolution")
		}
	})

	t.Run("failure navigates back to topup", func(t *testing.T) {
		api := &mockVerifier{err: errs.NewGatewayError("24", "transaction canceled")}
		uc, pendingStore := newResolver(api, &mockSession{})
		pendingStore.SetTopup(model.PendingPayment{Amount: 50000})

		outcome := uc.Resolve(context.Background(), payment.FlowTopup, gatewayReturn())

		if outcome.NavigateTo != payment.RouteTopup {
			t.Errorf("navigate to = %q, want %q", outcome.NavigateTo, payment.RouteTopup)
		}
		if _, ok := pendingStore.Topup(); ok {
			t.Error("top-up marker survived a failed resolution")
		}
	})

	t.Run("topup resolution leaves a purchase marker alone", func(t *testing.T) {
		api := &mockVerifier{}
		uc, pendingStore := newResolver(api, &mockSession{})
		pendingStore.SetOrder(model.PendingPayment{OrderID: "o-1"})
		pendingStore.SetTopup(model.PendingPayment{Amount: 50000})

		uc.Resolve(context.Background(), payment.FlowTopup, gatewayReturn())

		if _, ok := pendingStore.Order(); !ok {
			t.Error("purchase marker cleared by a top-up resolution")
		}
		if _, ok := pendingStore.Topup(); ok {
			t.Error("top-up marker not cleared by its own resolution")
		}
	})
}

// panickyVerifier implements payment.API and panics on every call.
type panickyVerifier struct{}

func (p *panickyVerifier) VerifyPayment(ctx context.Context, params url.Values) error {
	panic("verification blew up")
}

func TestResolve_PanicStillClearsMarker(t *testing.T) {
	pendingStore := pending.NewStore(memstore.New())
	uc := New(&mockLogger{}, &panickyVerifier{}, &mockSession{}, pendingStore, 2*time.Second)
	pendingStore.SetOrder(model.PendingPayment{OrderID: "o-1", AttemptID: "a-1"})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("verification panic did not propagate")
			}
		}()
		uc.Resolve(context.Background(), payment.FlowPurchase, gatewayReturn())
	}()

	if _, ok := pendingStore.Order(); ok {
		t.Error("purchase marker survived a panicking verification")
	}
}

func TestResolve_NoMarkerStillResolves(t *testing.T) {
	// A restart between redirect and return loses the volatile marker; the
	// verdict must still be produced from the forwarded parameters.
	api := &mockVerifier{}
	uc, _ := newResolver(api, &mockSession{})

	outcome := uc.Resolve(context.Background(), payment.FlowPurchase, gatewayReturn())

	if api.calls != 1 {
		t.Fatalf("VerifyPayment calls = %d, want 1", api.calls)
	}
	if outcome.Verdict != payment.VerdictSuccess {
		t.Errorf("verdict = %v, want success", outcome.Verdict)
	}
	if outcome.OrderID != "" {
		t.Errorf("order id = %q, want empty without a marker", outcome.OrderID)
	}
}
