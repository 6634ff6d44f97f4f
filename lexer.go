package fixwire

// lexer splits a message buffer into tag and value tokens. The cursor only
// ever advances; there is no backtracking.
type lexer struct {
	input  []byte
	cursor int
}

func newLexer(input []byte) *lexer {
	return &lexer{input: input}
}

// skip consumes the byte at the cursor, which must equal expected.
func (l *lexer) skip(expected byte) error {
	if l.cursor >= len(l.input) {
		return ErrUnexpectedEOI
	}
	if b := l.input[l.cursor]; b != expected {
		return &UnexpectedByteError{Expected: expected, Got: b}
	}
	l.cursor++
	return nil
}

// skipOrEOI consumes the expected byte if any input remains; end of input
// is acceptable.
func (l *lexer) skipOrEOI(expected byte) error {
	if l.cursor >= len(l.input) {
		return nil
	}
	return l.skip(expected)
}

// tag consumes consecutive ASCII digits up to the next '=', consumes the
// '=', and returns the digits parsed as a tag number. Zero digits before
// '=' is a malformed tag.
func (l *lexer) tag() (uint16, error) {
	start := l.cursor

	for l.cursor < len(l.input) && isDigit(l.input[l.cursor]) {
		l.cursor++
	}

	// cursor now sits on the expected '='
	end := l.cursor
	if err := l.skip(equals); err != nil {
		return 0, err
	}

	tag, err := ParseInt[uint16](l.input[start:end])
	if err != nil {
		return 0, ErrMalformedTag
	}
	return tag, nil
}

// value consumes bytes from right after '=' up to the next SOH (or end of
// input) and returns the span. A trailing SOH is consumed if present; end
// of input immediately after a value is acceptable.
func (l *lexer) value() ([]byte, error) {
	start := l.cursor

	for l.cursor < len(l.input) && l.input[l.cursor] != SOH {
		l.cursor++
	}

	end := l.cursor
	if err := l.skipOrEOI(SOH); err != nil {
		return nil, err
	}
	return l.input[start:end], nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
