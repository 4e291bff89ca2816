package validation

import (
	"testing"
	"time"
)

func TestLuhnValid(t *testing.T) {
	valid := []string{
		"4242424242424242",
		"4242 4242 4242 4242",
		"5555555555554444",
		"378282246310005",
		"4111111111111111",
	}
	for _, n := range valid {
		if !LuhnValid(n) {
			t.Fatalf("expected %q to pass", n)
		}
	}

	invalid := []string{"", "   ", "4242424242424241", "4242-4242-4242-4242", "abcd"}
	for _, n := range invalid {
		if LuhnValid(n) {
			t.Fatalf("expected %q to fail", n)
		}
	}
}

func TestLuhnValid_DetectsEverySingleDigitError(t *testing.T) {
	base := []byte("4242424242424242")
	for pos := range base {
		for d := byte('0'); d <= '9'; d++ {
			if d == base[pos] {
				continue
			}
			altered := make([]byte, len(base))
			copy(altered, base)
			altered[pos] = d
			if LuhnValid(string(altered)) {
				t.Fatalf("single-digit change at %d to %c should fail: %s", pos, d, altered)
			}
		}
	}
}

func TestCPFValid(t *testing.T) {
	cases := []struct {
		name string
		cpf  string
		want bool
	}{
		{name: "valid", cpf: "11144477735", want: true},
		{name: "valid 2", cpf: "52998224725", want: true},
		{name: "wrong second digit", cpf: "11144477736", want: false},
		{name: "wrong first digit", cpf: "11144477745", want: false},
		{name: "short", cpf: "1114447773", want: false},
		{name: "long", cpf: "111444777350", want: false},
		{name: "non digit", cpf: "1114447773a", want: false},
		{name: "formatted", cpf: "111.444.777-35", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CPFValid(tc.cpf); got != tc.want {
				t.Fatalf("CPFValid(%q) = %v, want %v", tc.cpf, got, tc.want)
			}
		})
	}

	for d := '0'; d <= '9'; d++ {
		repeated := ""
		for i := 0; i < 11; i++ {
			repeated += string(d)
		}
		if CPFValid(repeated) {
			t.Fatalf("repeated digits %q must fail", repeated)
		}
	}
}

func TestExpiryNotBefore(t *testing.T) {
	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	if !ExpiryNotBefore(10, 26, now) {
		t.Fatalf("current month must be accepted")
	}
	if !ExpiryNotBefore(12, 30, now) {
		t.Fatalf("future date must be accepted")
	}
	if ExpiryNotBefore(9, 26, now) {
		t.Fatalf("previous month must be rejected")
	}
	if ExpiryNotBefore(1, 20, now) {
		t.Fatalf("past year must be rejected")
	}
}

func TestOnlyDigits(t *testing.T) {
	if got := onlyDigits("111.444.777-35"); got != "11144477735" {
		t.Fatalf("unexpected digits %q", got)
	}
}
