package token

// Scanner produces Tokens on demand. It keeps a cursor into the source
// buffer and counts newlines as it passes them, so every token knows its
// 1-based line.
type Scanner struct {
	d    []byte
	i    int
	line int
}

func New(d []byte) *Scanner {
	return &Scanner{d: d, line: 1}
}

// Next returns the next token, skipping whitespace and comments. At end of
// input it returns an EOF token, repeatedly.
func (s *Scanner) Next() (Token, error) {
	s.skipSpace()
	if s.i >= len(s.d) {
		return Token{Kind: EOF, Line: s.line}, nil
	}
	c := s.d[s.i]
	start, line := s.i, s.line
	switch {
	case isIdentStart(c):
		s.i++
		for s.i < len(s.d) && isIdentPart(s.d[s.i]) {
			s.i++
		}
		return Token{Kind: identKind(s.d[start:s.i]), Bytes: s.d[start:s.i], Line: line}, nil
	case c == '%' || c == '$':
		s.i++
		j := s.i
		for s.i < len(s.d) && isIdentPart(s.d[s.i]) {
			s.i++
		}
		if s.i == j {
			return Token{}, scanErr(ErrName, line)
		}
		return Token{Kind: Name, Bytes: s.d[start:s.i], Line: line}, nil
	case c == '"':
		if err := s.scanQuoted('"'); err != nil {
			return Token{}, scanErr(err, line)
		}
		return Token{Kind: StringLit, Bytes: s.d[start:s.i], Line: line}, nil
	case c == '\'':
		if err := s.scanQuoted('\''); err != nil {
			return Token{}, scanErr(err, line)
		}
		return Token{Kind: CharLit, Bytes: s.d[start:s.i], Line: line}, nil
	case c == '-' || c == '+':
		s.i++
		if s.i < len(s.d) && s.d[s.i] == '\'' {
			if err := s.scanQuoted('\''); err != nil {
				return Token{}, scanErr(err, line)
			}
			return Token{Kind: CharLit, Bytes: s.d[start:s.i], Line: line}, nil
		}
		kind, err := s.scanNumber()
		if err != nil {
			return Token{}, scanErr(err, line)
		}
		return Token{Kind: kind, Bytes: s.d[start:s.i], Line: line}, nil
	case asciiDigit(c):
		kind, err := s.scanNumber()
		if err != nil {
			return Token{}, scanErr(err, line)
		}
		return Token{Kind: kind, Bytes: s.d[start:s.i], Line: line}, nil
	}
	var kind Kind
	switch c {
	case '{':
		kind = LBrace
	case '}':
		kind = RBrace
	case '(':
		kind = LParen
	case ')':
		kind = RParen
	case '[':
		kind = LBracket
	case ']':
		kind = RBracket
	case ',':
		kind = Comma
	case '=':
		kind = Equals
	default:
		return Token{}, scanErr(ErrUnexpectedChar, line)
	}
	s.i++
	return Token{Kind: kind, Bytes: s.d[start:s.i], Line: line}, nil
}

// Line reports the 1-based line of the scanner's cursor. Used by the parser
// for end-of-input expectations.
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) skipSpace() {
	for s.i < len(s.d) {
		switch s.d[s.i] {
		case ' ', '\t', '\r', '\v', '\f':
			s.i++
		case '\n':
			s.line++
			s.i++
		case '/':
			if s.i+1 >= len(s.d) {
				return
			}
			switch s.d[s.i+1] {
			case '/':
				s.i += 2
				for s.i < len(s.d) && s.d[s.i] != '\n' {
					s.i++
				}
			case '*':
				// block comments do not nest; an unterminated one
				// runs to end of input
				s.i += 2
				for s.i < len(s.d) {
					if s.d[s.i] == '\n' {
						s.line++
					} else if s.d[s.i] == '*' && s.i+1 < len(s.d) && s.d[s.i+1] == '/' {
						s.i += 2
						break
					}
					s.i++
				}
			default:
				return
			}
		default:
			return
		}
	}
}

// scanQuoted advances past a quoted literal opened by q at the cursor,
// honoring backslash escapes. Newlines inside the literal are a lexical
// error.
func (s *Scanner) scanQuoted(q byte) error {
	s.i++
	for s.i < len(s.d) {
		switch s.d[s.i] {
		case q:
			s.i++
			return nil
		case '\\':
			if s.i+1 >= len(s.d) {
				return ErrUnterminated
			}
			s.i += 2
		case '\n':
			return ErrUnterminated
		default:
			s.i++
		}
	}
	return ErrUnterminated
}

func (s *Scanner) scanNumber() (Kind, error) {
	if s.i >= len(s.d) || !asciiDigit(s.d[s.i]) {
		return EOF, ErrNumber
	}
	if s.d[s.i] == '0' && s.i+1 < len(s.d) && (s.d[s.i+1] == 'x' || s.d[s.i+1] == 'X') {
		s.i += 2
		j := s.i
		for s.i < len(s.d) && hexDigit(s.d[s.i]) {
			s.i++
		}
		if s.i == j {
			return EOF, ErrNumber
		}
		return IntLit, nil
	}
	for s.i < len(s.d) && asciiDigit(s.d[s.i]) {
		s.i++
	}
	kind := IntLit
	if s.i < len(s.d) && s.d[s.i] == '.' {
		s.i++
		j := s.i
		for s.i < len(s.d) && asciiDigit(s.d[s.i]) {
			s.i++
		}
		if s.i == j {
			return EOF, ErrNumber
		}
		kind = FloatLit
	}
	if s.i < len(s.d) && (s.d[s.i] == 'e' || s.d[s.i] == 'E') {
		s.i++
		if s.i < len(s.d) && (s.d[s.i] == '+' || s.d[s.i] == '-') {
			s.i++
		}
		j := s.i
		for s.i < len(s.d) && asciiDigit(s.d[s.i]) {
			s.i++
		}
		if s.i == j {
			return EOF, ErrNumber
		}
		kind = FloatLit
	}
	return kind, nil
}

func identKind(d []byte) Kind {
	switch string(d) {
	case "true":
		return True
	case "false":
		return False
	case "null":
		return Null
	}
	return Identifier
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || asciiDigit(c)
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigit(c byte) bool {
	return asciiDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
