package validation

import (
	"strings"
	"time"
	"unicode"
)

// LuhnValid reports whether number passes the mod-10 checksum. Whitespace is
// stripped first; any other non-digit makes the number invalid.
func LuhnValid(number string) bool {
	digits := stripSpaces(number)
	if digits == "" {
		return false
	}

	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		n := int(c - '0')
		if (len(digits)-1-i)%2 == 1 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
	}
	return sum%10 == 0
}

// ExpiryNotBefore reports whether an MM/YY expiry (already format-checked) is
// not strictly before the year-month of now. Cards are valid through the last
// day of their expiry month.
func ExpiryNotBefore(month, twoDigitYear int, now time.Time) bool {
	year := 2000 + twoDigitYear
	return year*12+month >= now.Year()*12+int(now.Month())
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
