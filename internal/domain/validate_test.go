package domain

import "testing"

func TestValidateAcceptsFullCandidate(t *testing.T) {
	v := Validate(Candidate{
		ReceiverName: "John",
		Weight:       "1.5",
		BoxColor:     "#ff0000",
		Country:      "Sweden",
	})

	if !v.IsValid() {
		t.Fatalf("expected valid, got errors: %v", v.Errors)
	}
	if len(v.Errors) != 0 {
		t.Errorf("expected empty error map, got %v", v.Errors)
	}
}

func TestValidateCollectsAllFieldErrors(t *testing.T) {
	v := Validate(Candidate{ReceiverName: "", Weight: "", Country: ""})

	if v.IsValid() {
		t.Fatal("expected invalid")
	}
	for _, f := range []string{FieldReceiverName, FieldWeight, FieldCountry} {
		if _, ok := v.Errors[f]; !ok {
			t.Errorf("expected error for %s, got %v", f, v.Errors)
		}
	}
}

func TestValidateFieldRules(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}

	cases := []struct {
		name      string
		candidate Candidate
		badField  string
	}{
		{"empty name", Candidate{ReceiverName: "", Weight: "1", Country: "Sweden"}, FieldReceiverName},
		{"whitespace name", Candidate{ReceiverName: "   ", Weight: "1", Country: "Sweden"}, FieldReceiverName},
		{"name too long", Candidate{ReceiverName: string(long), Weight: "1", Country: "Sweden"}, FieldReceiverName},
		{"weight not a number", Candidate{ReceiverName: "John", Weight: "abc", Country: "Sweden"}, FieldWeight},
		{"weight negative", Candidate{ReceiverName: "John", Weight: "-2", Country: "Sweden"}, FieldWeight},
		{"weight zero", Candidate{ReceiverName: "John", Weight: "0", Country: "Sweden"}, FieldWeight},
		{"weight too large", Candidate{ReceiverName: "John", Weight: "10000.01", Country: "Sweden"}, FieldWeight},
		{"missing country", Candidate{ReceiverName: "John", Weight: "1", Country: ""}, FieldCountry},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Validate(tc.candidate)
			if v.IsValid() {
				t.Fatal("expected invalid")
			}
			if _, ok := v.Errors[tc.badField]; !ok {
				t.Errorf("expected error on %s, got %v", tc.badField, v.Errors)
			}
			if len(v.Errors) != 1 {
				t.Errorf("expected exactly one error, got %v", v.Errors)
			}
		})
	}
}

func TestValidateZeroWeightMessage(t *testing.T) {
	v := Validate(Candidate{ReceiverName: "John", Weight: "0", Country: "Sweden"})
	if v.Errors[FieldWeight] != "Weight must be greater than 0" {
		t.Errorf("zero weight message = %q", v.Errors[FieldWeight])
	}
}

// On-blur checks validate one field against otherwise-partial input.
func TestValidateFieldsChecksOnlyNamedFields(t *testing.T) {
	c := Candidate{ReceiverName: "John"}

	v := ValidateFields(c, FieldReceiverName)
	if !v.IsValid() {
		t.Fatalf("expected valid for name-only check, got %v", v.Errors)
	}

	v = ValidateFields(c, FieldWeight)
	if v.IsValid() {
		t.Fatal("expected weight error")
	}
	if len(v.Errors) != 1 {
		t.Errorf("expected only the weight error, got %v", v.Errors)
	}
}

func TestValidateBoundaryWeights(t *testing.T) {
	for _, w := range []string{"0.01", "10000"} {
		v := Validate(Candidate{ReceiverName: "John", Weight: w, Country: "China"})
		if !v.IsValid() {
			t.Errorf("weight %s should be valid, got %v", w, v.Errors)
		}
	}
}

func TestValidateTrimsNameAtExactly100(t *testing.T) {
	name := make([]byte, 100)
	for i := range name {
		name[i] = 'a'
	}

	v := Validate(Candidate{ReceiverName: string(name), Weight: "1", Country: "Brazil"})
	if !v.IsValid() {
		t.Errorf("100-char name should be valid, got %v", v.Errors)
	}
}
