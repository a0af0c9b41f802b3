package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Box is one shipment entry. The ID is the sole identity key; two boxes
// with identical fields but different IDs are distinct entries.
type Box struct {
	ID           string
	ReceiverName string
	Weight       float64
	BoxColor     string // normalized "(r, g, b)" triplet
	Country      Country
	ShippingCost float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Candidate carries raw user input for a box before validation.
// Weight stays a string here because "not a number" is a validation
// outcome, not a decode failure.
type Candidate struct {
	ReceiverName string
	Weight       string
	BoxColor     string // hex, with or without leading '#'
	Country      string
}

// NewBox builds a Box from an already-validated candidate: parses the
// destination, normalizes the color, prices the shipment and stamps
// identity and timestamps.
func NewBox(c Candidate, now time.Time) (Box, error) {
	country, err := ParseCountry(c.Country)
	if err != nil {
		return Box{}, fmt.Errorf("new box: %w", err)
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(c.Weight), 64)
	if err != nil {
		return Box{}, fmt.Errorf("new box: parse weight %q: %w", c.Weight, err)
	}

	return Box{
		ID:           uuid.NewString(),
		ReceiverName: strings.TrimSpace(c.ReceiverName),
		Weight:       weight,
		BoxColor:     HexToRGBTriplet(c.BoxColor),
		Country:      country,
		ShippingCost: PriceFor(weight, country),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
