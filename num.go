package fixwire

import "golang.org/x/exp/constraints"

// ParseInt parses an ASCII decimal byte slice into any fixed-width integer
// type. A single leading '-' is accepted only when T is signed; on an
// unsigned T it is an ErrOverflow, not an ErrInvalidDigit. Every remaining
// byte must be an ASCII digit. Each digit is folded in with checked
// multiply-by-10 and checked add/subtract, so a value outside T's range
// fails with ErrOverflow before any partial result exists. Leading zeros
// are accepted.
func ParseInt[T constraints.Integer](b []byte) (T, error) {
	// T(0)-1 wraps to the maximum on unsigned types only.
	signed := T(0)-1 < T(0)

	negative := false
	if len(b) > 0 && b[0] == '-' {
		if !signed {
			return 0, ErrOverflow
		}
		negative = true
		b = b[1:]
	}

	if len(b) == 0 {
		return 0, ErrEmptyInput
	}

	var value T
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrInvalidDigit
		}

		shifted := value * 10
		if value != 0 && shifted/10 != value {
			return 0, ErrOverflow
		}

		d := T(c - '0')
		if negative {
			// Accumulate on the negative side so the minimum value of a
			// signed type parses without overflowing.
			next := shifted - d
			if next > shifted {
				return 0, ErrOverflow
			}
			value = next
		} else {
			next := shifted + d
			if next < shifted {
				return 0, ErrOverflow
			}
			value = next
		}
	}

	return value, nil
}
