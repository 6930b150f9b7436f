package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{".5", 50, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestMoneyFormatting(t *testing.T) {
	m, err := ParseMoney("120.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.String() != "120.50" {
		t.Fatalf("expected 120.50, got %s", m)
	}
	if m.Times(3).String() != "361.50" {
		t.Fatalf("expected 361.50, got %s", m.Times(3))
	}
	if m.Amount() != 120.5 {
		t.Fatalf("expected 120.5, got %v", m.Amount())
	}
}
