// Package callsign implements the conventional amateur-radio sort order for
// callsign strings, which differs from lexical order in how it treats the
// digit zero and the portable-suffix separator.
package callsign

// Compare returns -1, 0 or 1 ordering a before, equal to, or after b in
// callsign sort order. The order is character by character, earlier rule
// wins:
//
//  1. '/' sorts after every other character
//  2. a letter sorts before a digit
//  3. among digits, '0' sorts after all other digits
//  4. otherwise, ordinary character-code comparison
//
// If one string is a prefix of the other, the shorter string sorts first.
func Compare(a, b string) int {
	n := min(len(a), len(b))

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return compareChar(a[i], b[i])
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts before b in callsign order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// compareChar ranks two unequal characters in callsign order.
func compareChar(c1, c2 byte) int {
	if c2 == '/' {
		return -1
	}

	if c1 == '/' {
		return 1
	}

	if isLetter(c1) && isDigit(c2) {
		return -1
	}

	if isDigit(c1) && isLetter(c2) {
		return 1
	}

	// '0' is the highest digit
	if isDigit(c1) && isDigit(c2) {
		if c1 == '0' {
			return 1
		}

		if c2 == '0' {
			return -1
		}
	}

	if c1 < c2 {
		return -1
	}

	return 1
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
