package gateway

import (
	"box-shipping-service/internal/domain"
	"context"
)

// MockGateway is a test double: it completes immediately, records every
// submitted candidate, and can be told to fail or panic.
type MockGateway struct {
	Submitted []domain.Candidate
	Err       error
	PanicWith any
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Submit(_ context.Context, candidate domain.Candidate) error {
	if g.PanicWith != nil {
		panic(g.PanicWith)
	}

	g.Submitted = append(g.Submitted, candidate)
	return g.Err
}
