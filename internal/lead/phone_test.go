package lead

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"formatted string", "+7 (916) 123-45-67", "79161234567"},
		{"plain digits", "79161234567", "79161234567"},
		{"float coercion", 7.916123456e9, "7916123456"},
		{"integral float", 7.0, "7"},
		{"letters stripped", "phone: 8-800-555", "8800555"},
		{"empty string", "", ""},
		{"only junk", "abc!", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("%s: NormalizePhone(%v) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestNormalizePhoneNumericStringEquivalence(t *testing.T) {
	fromNumber := NormalizePhone(float64(79161234567))
	fromString := NormalizePhone("+7 (916) 123-45-67")
	if fromNumber != fromString || fromNumber != "79161234567" {
		t.Fatalf("expected equivalence at 79161234567, got number=%q string=%q", fromNumber, fromString)
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []any{"+7 (916) 123-45-67", "79161234567", 7.0, "", "abc", "8 800 2000 600"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		twice := NormalizePhone(once)
		if once != twice {
			t.Errorf("not idempotent for %v: first %q, second %q", in, once, twice)
		}
	}
}
