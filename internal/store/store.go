package store

import (
	"box-shipping-service/internal/domain"
	"box-shipping-service/internal/platform/obs"
	"box-shipping-service/internal/ports"
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// GenericErrorMessage is the top-level error shown when a transition
// fails for a reason the user cannot act on.
const GenericErrorMessage = "Something went wrong. Please try again."

// Statistics are derived totals over the current records. They are
// recomputed from the record sequence on every mutation and never
// mutated independently.
type Statistics struct {
	TotalBoxes  int
	TotalWeight float64
	TotalCost   float64
}

// State is a point-in-time copy of the store, safe for the caller to
// keep while the store moves on.
type State struct {
	Records []domain.Box
	Loading bool
	Err     string
	Stats   Statistics
}

// Store holds the session's box records behind an action API, the only
// permitted mutation surface. Every transition swaps whole state under
// the lock, so readers never observe a partial write. The store has no
// durable backing; it lives and dies with the process.
type Store struct {
	gateway ports.ShipmentGateway

	mu      sync.RWMutex
	records []domain.Box
	pending int
	err     string
	stats   Statistics
}

func New(gw ports.ShipmentGateway) *Store {
	return &Store{gateway: gw}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.Box, len(s.records))
	copy(records, s.records)

	return State{
		Records: records,
		Loading: s.pending > 0,
		Err:     s.err,
		Stats:   s.stats,
	}
}

// Get looks up one record by id.
func (s *Store) Get(id string) (domain.Box, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.records {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Box{}, false
}

// Load replaces the whole record sequence and clears any error and
// pending-load indication.
func (s *Store) Load(boxes []domain.Box) {
	defer s.recoverTransition("load", nil)

	records := make([]domain.Box, len(boxes))
	copy(records, boxes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.stats = computeStatistics(records)
	s.err = ""
	s.pending = 0
}

// AddResult reports the outcome of an Add. Exactly one of the three
// shapes holds: a stored Box, a non-empty FieldErrors map, or Err.
type AddResult struct {
	Box         domain.Box
	FieldErrors map[string]string
	Err         error
}

func (r AddResult) Success() bool {
	return r.Err == nil && len(r.FieldErrors) == 0
}

// Add validates a candidate, prices it, waits out the shipment gateway
// and appends the new record. Duplicate submissions are not collapsed;
// each valid submission becomes a distinct record in insertion order.
// A cancelled context abandons the submission without touching state.
func (s *Store) Add(ctx context.Context, c domain.Candidate) (res AddResult) {
	var opErr error
	defer obs.Time(ctx, "store.add")(&opErr)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("store: panic during add: %v", r)
			opErr = fmt.Errorf("add box: %v", r)
			s.SetError(GenericErrorMessage)
			res = AddResult{Err: opErr}
		}
	}()

	if v := domain.Validate(c); !v.IsValid() {
		return AddResult{FieldErrors: v.Errors}
	}

	// Price before the gateway round-trip so an unknown destination
	// fails fast. The record is not added in that case.
	box, err := domain.NewBox(c, time.Now().UTC())
	if err != nil {
		opErr = err
		s.SetError(GenericErrorMessage)
		return AddResult{Err: err}
	}

	err = func() error {
		s.beginLoading()
		defer s.endLoading()
		return s.gateway.Submit(ctx, c)
	}()
	if err != nil {
		opErr = fmt.Errorf("add box: gateway: %w", err)
		return AddResult{Err: opErr}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.Box, 0, len(s.records)+1)
	records = append(records, s.records...)
	records = append(records, box)

	s.records = records
	s.stats = computeStatistics(records)
	s.err = ""

	return AddResult{Box: box}
}

// Remove drops the record with the given id. Removing an id that is
// not present is a no-op; removal is idempotent.
func (s *Store) Remove(id string) (removed bool) {
	defer s.recoverTransition("remove", nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.Box, 0, len(s.records))
	for _, b := range s.records {
		if b.ID == id {
			removed = true
			continue
		}
		records = append(records, b)
	}

	if !removed {
		return false
	}

	s.records = records
	s.stats = computeStatistics(records)
	return true
}

// BoxPatch holds the fields an Update may change. Nil means "leave
// as is". Color arrives as hex and Country as a key, both normalized
// on apply just like at creation.
type BoxPatch struct {
	ReceiverName *string
	Weight       *float64
	BoxColor     *string
	Country      *string
}

// Update merges a patch into the record with the given id. When weight
// or country changes, the shipping cost is recomputed from the merged
// values so it stays consistent with them. An id that matches nothing
// leaves the store untouched.
func (s *Store) Update(id string, p BoxPatch) (box domain.Box, found bool, err error) {
	defer s.recoverTransition("update", &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, b := range s.records {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Box{}, false, nil
	}

	merged := s.records[idx]
	reprice := false

	if p.ReceiverName != nil {
		merged.ReceiverName = *p.ReceiverName
	}
	if p.BoxColor != nil {
		merged.BoxColor = domain.HexToRGBTriplet(*p.BoxColor)
	}
	if p.Weight != nil {
		merged.Weight = *p.Weight
		reprice = true
	}
	if p.Country != nil {
		country, perr := domain.ParseCountry(*p.Country)
		if perr != nil {
			return domain.Box{}, true, fmt.Errorf("update box: %w", perr)
		}
		merged.Country = country
		reprice = true
	}

	if reprice {
		merged.ShippingCost = domain.PriceFor(merged.Weight, merged.Country)
	}
	merged.UpdatedAt = time.Now().UTC()

	records := make([]domain.Box, len(s.records))
	copy(records, s.records)
	records[idx] = merged

	s.records = records
	s.stats = computeStatistics(records)

	return merged, true, nil
}

// SetError sets the top-level error without touching records.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// ClearError clears the top-level error. Safe to call any number of
// times.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store) beginLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending++
}

func (s *Store) endLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending > 0 {
		s.pending--
	}
}

// recoverTransition converts a panic inside a transition into the
// generic top-level error, leaving the previous record sequence intact.
func (s *Store) recoverTransition(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	log.Printf("store: panic during %s: %v", op, r)

	s.mu.Lock()
	s.err = GenericErrorMessage
	s.mu.Unlock()

	if errp != nil {
		*errp = fmt.Errorf("%s: %v", op, r)
	}
}

func computeStatistics(records []domain.Box) Statistics {
	stats := Statistics{TotalBoxes: len(records)}
	for _, b := range records {
		stats.TotalWeight += b.Weight
		stats.TotalCost += b.ShippingCost
	}
	return stats
}
