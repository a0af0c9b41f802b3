package domain

import (
	"fmt"
	"strings"
)

// Country is the closed set of destinations the service ships to.
// Free-form text is turned into a Country only at the input boundary
// via ParseCountry; everything past that boundary works with the enum.
type Country int

const (
	Sweden Country = iota
	China
	Brazil
	Australia
)

func (c Country) String() string {
	switch c {
	case Sweden:
		return "Sweden"
	case China:
		return "China"
	case Brazil:
		return "Brazil"
	case Australia:
		return "Australia"
	default:
		return fmt.Sprintf("Country(%d)", int(c))
	}
}

// RatePerKg returns the fixed shipping rate for the destination.
func (c Country) RatePerKg() float64 {
	switch c {
	case Sweden:
		return 7.35
	case China:
		return 11.53
	case Brazil:
		return 15.63
	case Australia:
		return 50.09
	default:
		return 0
	}
}

// Countries lists every supported destination in display order.
func Countries() []Country {
	return []Country{Sweden, China, Brazil, Australia}
}

// UnknownCountryError reports a non-empty destination key that matches
// no supported country.
type UnknownCountryError struct {
	Key string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country %q", e.Key)
}

// ParseCountry resolves a user-supplied destination key, matching
// case-insensitively against the supported set.
func ParseCountry(key string) (Country, error) {
	key = strings.TrimSpace(key)
	for _, c := range Countries() {
		if strings.EqualFold(key, c.String()) {
			return c, nil
		}
	}
	return 0, &UnknownCountryError{Key: key}
}
