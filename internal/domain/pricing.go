package domain

import (
	"math"
	"strings"
)

// Price computes the shipping cost for a weight in kilograms and a
// destination key.
//
// A zero or negative weight prices to 0, as does an empty destination.
// A non-empty destination that matches no supported country returns
// UnknownCountryError; an empty one does not. Callers that consider the
// empty case an error must check it themselves.
func Price(weight float64, countryKey string) (float64, error) {
	if weight <= 0 {
		return 0, nil
	}

	if strings.TrimSpace(countryKey) == "" {
		return 0, nil
	}

	country, err := ParseCountry(countryKey)
	if err != nil {
		return 0, err
	}

	return PriceFor(weight, country), nil
}

// PriceFor computes the cost for an already-parsed destination.
func PriceFor(weight float64, country Country) float64 {
	if weight <= 0 {
		return 0
	}
	return round2(weight * country.RatePerKg())
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
