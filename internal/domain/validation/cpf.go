package validation

// CPFValid checks the two CPF check digits. It expects the 11 digits only
// (formatting already removed); repeated-digit sequences such as 11111111111
// are rejected even though their arithmetic works out.
func CPFValid(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	var d [11]int
	allSame := true
	for i := 0; i < 11; i++ {
		c := cpf[i]
		if c < '0' || c > '9' {
			return false
		}
		d[i] = int(c - '0')
		if d[i] != d[0] {
			allSame = false
		}
	}
	if allSame {
		return false
	}

	return d[9] == cpfCheckDigit(d[:9], 10) && d[10] == cpfCheckDigit(d[:10], 11)
}

// cpfCheckDigit weights digits from firstWeight down to 2; remainders 0 and 1
// map to check digit 0.
func cpfCheckDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, n := range digits {
		sum += n * (firstWeight - i)
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
