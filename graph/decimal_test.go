package graph

import "testing"

func TestUnmarshalDecimal_AcceptsFormattedStrings(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"45.500", "45.5"},
		{"1,250.500", "1250.5"},
		{"DT 1250.500", "1250.5"},
		{"DT -45.500", "-45.5"},
		{"  dt 45,500  ", "45500"},
	}
	for _, tc := range cases {
		d, err := UnmarshalDecimal(tc.in)
		if err != nil {
			t.Fatalf("UnmarshalDecimal(%q) error: %v", tc.in, err)
		}
		if d.String() != tc.expected {
			t.Fatalf("UnmarshalDecimal(%q) expected %s, got %s", tc.in, tc.expected, d.String())
		}
	}
}

func TestUnmarshalDecimal_RejectsEmpty(t *testing.T) {
	if _, err := UnmarshalDecimal("DT "); err == nil {
		t.Fatal("expected error for empty amount")
	}
	if _, err := UnmarshalDecimal(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}
