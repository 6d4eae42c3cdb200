package customer

// ValidCPF reports whether s is a well-formed Brazilian CPF: exactly 11
// digits with valid mod-11 check digits. Repeated-digit sequences such as
// "00000000000" pass the checksum but are rejected as well.
func ValidCPF(s string) bool {
	if len(s) != 11 {
		return false
	}

	digits := make([]int, 11)
	allEqual := true
	for i := 0; i < 11; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return false
		}
		digits[i] = int(ch - '0')
		if digits[i] != digits[0] {
			allEqual = false
		}
	}
	if allEqual {
		return false
	}

	return cpfCheckDigit(digits, 9) == digits[9] && cpfCheckDigit(digits, 10) == digits[10]
}

func cpfCheckDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	d := sum * 10 % 11
	if d == 10 {
		d = 0
	}
	return d
}
