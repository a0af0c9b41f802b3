package domain

import "testing"

func TestHexToRGBTriplet(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#ff0000", "(255, 0, 0)"},
		{"ff0000", "(255, 0, 0)"},
		{"#FF0000", "(255, 0, 0)"},
		{"#00ff7f", "(0, 255, 127)"},
		{"#ffffff", "(255, 255, 255)"},
		{"#000000", "(0, 0, 0)"},
		{"invalid", "(0, 0, 0)"},
		{"", "(0, 0, 0)"},
		{"#fff", "(0, 0, 0)"},
		{"#ff00zz", "(0, 0, 0)"},
		{"#ff00000", "(0, 0, 0)"},
	}

	for _, tc := range cases {
		if got := HexToRGBTriplet(tc.in); got != tc.want {
			t.Errorf("HexToRGBTriplet(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRGBTripletToCSSColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(255, 0, 0)", "rgb(255, 0, 0)"},
		{"(0, 255, 127)", "rgb(0, 255, 127)"},
		{"(0,0,0)", "rgb(0, 0, 0)"},
		{"garbage", "#000000"},
		{"", "#000000"},
		{"(255, 0)", "#000000"},
		{"(255, 0, 0, 0)", "#000000"},
		{"(255, x, 0)", "#000000"},
		{"(300, 0, 0)", "#000000"},
		{"255, 0, 0", "#000000"},
	}

	for _, tc := range cases {
		if got := RGBTripletToCSSColor(tc.in); got != tc.want {
			t.Errorf("RGBTripletToCSSColor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Encoder output always feeds the CSS conversion cleanly.
func TestColorPipelineHexToCSS(t *testing.T) {
	if got := RGBTripletToCSSColor(HexToRGBTriplet("#1a2b3c")); got != "rgb(26, 43, 60)" {
		t.Errorf("pipeline = %q, want rgb(26, 43, 60)", got)
	}
	if got := RGBTripletToCSSColor(HexToRGBTriplet("bogus")); got != "rgb(0, 0, 0)" {
		t.Errorf("pipeline fallback = %q, want rgb(0, 0, 0)", got)
	}
}
