package domain

import (
	"strconv"
	"strings"
)

// Field names used as keys in validation error maps.
const (
	FieldReceiverName = "receiverName"
	FieldWeight       = "weight"
	FieldCountry      = "country"
)

const (
	maxReceiverNameLen = 100
	maxWeightKg        = 10000
)

// Validation holds the outcome of checking a candidate. Errors maps
// field name to a user-facing message; a candidate is valid iff the
// map is empty.
type Validation struct {
	Errors map[string]string
}

func (v Validation) IsValid() bool {
	return len(v.Errors) == 0
}

// Validate checks every field of a candidate. Rules are evaluated
// independently so the caller gets all problems at once.
func Validate(c Candidate) Validation {
	return ValidateFields(c, FieldReceiverName, FieldWeight, FieldCountry)
}

// ValidateFields checks only the named fields, for single-field
// (on-blur) checks against partial input.
func ValidateFields(c Candidate, fields ...string) Validation {
	errs := map[string]string{}

	for _, f := range fields {
		switch f {
		case FieldReceiverName:
			if msg := checkReceiverName(c.ReceiverName); msg != "" {
				errs[FieldReceiverName] = msg
			}
		case FieldWeight:
			if msg := checkWeight(c.Weight); msg != "" {
				errs[FieldWeight] = msg
			}
		case FieldCountry:
			if strings.TrimSpace(c.Country) == "" {
				errs[FieldCountry] = "Country is required"
			}
		}
	}

	return Validation{Errors: errs}
}

func checkReceiverName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Receiver name is required"
	}
	if len(name) > maxReceiverNameLen {
		return "Receiver name must be 100 characters or fewer"
	}
	return ""
}

func checkWeight(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Weight is required"
	}

	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "Weight must be a number"
	}

	switch {
	case w < 0:
		return "Weight cannot be negative"
	case w == 0:
		return "Weight must be greater than 0"
	case w > maxWeightKg:
		return "Weight cannot exceed 10000 kg"
	}

	return ""
}
