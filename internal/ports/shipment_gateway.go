package ports

import (
	"box-shipping-service/internal/domain"
	"context"
)

// Port: the asynchronous boundary crossed while a box submission is in
// flight. Today the only implementation simulates network latency; a
// real carrier backend can replace it without touching store semantics.
type ShipmentGateway interface {
	Submit(ctx context.Context, candidate domain.Candidate) error
}
