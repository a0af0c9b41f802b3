package gateway

import (
	"box-shipping-service/internal/domain"
	"context"
	"time"
)

// SimulatedGateway stands in for a future carrier backend by sleeping
// for a fixed delay. It honors cancellation so an abandoned submission
// does not hold its goroutine.
type SimulatedGateway struct {
	Delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{Delay: delay}
}

func (g *SimulatedGateway) Submit(ctx context.Context, _ domain.Candidate) error {
	if g.Delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(g.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
