package token

// Unescape decodes a quoted string literal (delimiters included) into its
// value. Recognized escapes: \" \' \\ \n \t \r \xHH.
func Unescape(d []byte) (string, error) {
	if len(d) < 2 {
		return "", ErrUnterminated
	}
	d = d[1 : len(d)-1]
	out := make([]byte, 0, len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(d) {
			return "", ErrBadEscape
		}
		switch d[i] {
		case '"':
			out = append(out, '"')
		case '\'':
			out = append(out, '\'')
		case '\\':
			out = append(out, '\\')
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case 'x':
			if i+2 >= len(d) || !hexDigit(d[i+1]) || !hexDigit(d[i+2]) {
				return "", ErrBadEscape
			}
			out = append(out, hexVal(d[i+1])<<4|hexVal(d[i+2]))
			i += 2
		default:
			return "", ErrBadEscape
		}
	}
	return string(out), nil
}

// CharValue decodes a character literal token (sign and delimiters
// included) into its numeric value and sign.
func CharValue(d []byte) (value uint64, negative bool, err error) {
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		negative = d[0] == '-'
		d = d[1:]
	}
	if len(d) < 3 || d[0] != '\'' || d[len(d)-1] != '\'' {
		return 0, false, ErrChar
	}
	s, err := Unescape(d)
	if err != nil {
		return 0, false, err
	}
	if len(s) != 1 {
		return 0, false, ErrChar
	}
	return uint64(s[0]), negative, nil
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
