// Package pending tracks the single-slot pending-payment markers stashed in
// the volatile tier between "gateway redirect issued" and "callback
// received". One marker per flow (purchase, top-up); writing a new one
// overwrites an outstanding one.
package pending

import (
	"strconv"

	"shopfront/internal/model"
	"shopfront/pkg/memstore"
)

// Volatile-tier keys the markers live under.
const (
	keyOrderID      = "pendingOrderId"
	keyOrderAttempt = "pendingOrderAttemptId"
	keyTopupAmount  = "pendingTopupAmount"
	keyTopupAttempt = "pendingTopupAttemptId"
)

type Store struct {
	kv *memstore.Store
}

func NewStore(kv *memstore.Store) *Store {
	return &Store{kv: kv}
}

// SetOrder records the purchase marker, replacing any outstanding one.
func (s *Store) SetOrder(p model.PendingPayment) {
	s.kv.Set(keyOrderID, p.OrderID)
	s.kv.Set(keyOrderAttempt, p.AttemptID)
}

// Order returns the current purchase marker, if any.
func (s *Store) Order() (model.PendingPayment, bool) {
	orderID, ok := s.kv.Get(keyOrderID)
	if !ok {
		return model.PendingPayment{}, false
	}
	attemptID, _ := s.kv.Get(keyOrderAttempt)
	return model.PendingPayment{OrderID: orderID, AttemptID: attemptID}, true
}

// ClearOrder removes the purchase marker.
func (s *Store) ClearOrder() {
	s.kv.Delete(keyOrderID, keyOrderAttempt)
}

// SetTopup records the top-up marker, replacing any outstanding one.
func (s *Store) SetTopup(p model.PendingPayment) {
	s.kv.Set(keyTopupAmount, strconv.FormatInt(p.Amount, 10))
	s.kv.Set(keyTopupAttempt, p.AttemptID)
}

// Topup returns the current top-up marker, if any.
func (s *Store) Topup() (model.PendingPayment, bool) {
	raw, ok := s.kv.Get(keyTopupAmount)
	if !ok {
		return model.PendingPayment{}, false
	}
	amount, _ := strconv.ParseInt(raw, 10, 64)
	attemptID, _ := s.kv.Get(keyTopupAttempt)
	return model.PendingPayment{Amount: amount, AttemptID: attemptID}, true
}

// ClearTopup removes the top-up marker.
func (s *Store) ClearTopup() {
	s.kv.Delete(keyTopupAmount, keyTopupAttempt)
}
