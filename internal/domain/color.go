package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fallbackTriplet  = "(0, 0, 0)"
	fallbackCSSColor = "#000000"
)

// HexToRGBTriplet converts a 6-digit hex color (leading '#' optional,
// case-insensitive) into the "(r, g, b)" form boxes are stored with.
// Anything unparseable yields "(0, 0, 0)"; this never fails.
func HexToRGBTriplet(hex string) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return fallbackTriplet
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallbackTriplet
	}

	r := (v >> 16) & 0xff
	g := (v >> 8) & 0xff
	b := v & 0xff

	return fmt.Sprintf("(%d, %d, %d)", r, g, b)
}

// RGBTripletToCSSColor turns a stored "(r, g, b)" triplet into a CSS
// rgb() color. Input that is not exactly the encoder's shape yields
// "#000000"; this never fails.
func RGBTripletToCSSColor(triplet string) string {
	s := strings.TrimSpace(triplet)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return fallbackCSSColor
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 3 {
		return fallbackCSSColor
	}

	vals := make([]uint64, 3)
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return fallbackCSSColor
		}
		vals[i] = v
	}

	return fmt.Sprintf("rgb(%d, %d, %d)", vals[0], vals[1], vals[2])
}
