package token

import (
	"errors"
	"testing"
)

type tok struct {
	kind  Kind
	bytes string
	line  int
}

func scanAll(t *testing.T, src string) []tok {
	t.Helper()
	s := New([]byte(src))
	var out []tok
	for {
		tk, err := s.Next()
		if err != nil {
			t.Fatalf("scan %q: %v", src, err)
		}
		if tk.Kind == EOF {
			return out
		}
		out = append(out, tok{tk.Kind, string(tk.Bytes), tk.Line})
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		in string
		e  []tok
	}{
		{`float`, []tok{{Identifier, "float", 1}}},
		{`Root`, []tok{{Identifier, "Root", 1}}},
		{`_under_score9`, []tok{{Identifier, "_under_score9", 1}}},
		{`true false null`, []tok{
			{True, "true", 1}, {False, "false", 1}, {Null, "null", 1}}},
		{`%name $global`, []tok{{Name, "%name", 1}, {Name, "$global", 1}}},
		{`{}()[],=`, []tok{
			{LBrace, "{", 1}, {RBrace, "}", 1},
			{LParen, "(", 1}, {RParen, ")", 1},
			{LBracket, "[", 1}, {RBracket, "]", 1},
			{Comma, ",", 1}, {Equals, "=", 1}}},
		{`35 -12 +4 0xca 0XFE -0x0c`, []tok{
			{IntLit, "35", 1}, {IntLit, "-12", 1}, {IntLit, "+4", 1},
			{IntLit, "0xca", 1}, {IntLit, "0XFE", 1}, {IntLit, "-0x0c", 1}}},
		{`15.3 -0.5 1e10 2.5E-3 +3.0`, []tok{
			{FloatLit, "15.3", 1}, {FloatLit, "-0.5", 1},
			{FloatLit, "1e10", 1}, {FloatLit, "2.5E-3", 1},
			{FloatLit, "+3.0", 1}}},
		{`"hello" "wor\"ld" "\x0c"`, []tok{
			{StringLit, `"hello"`, 1},
			{StringLit, `"wor\"ld"`, 1},
			{StringLit, `"\x0c"`, 1}}},
		{`'a' '\x0c' -'\x0c'`, []tok{
			{CharLit, `'a'`, 1}, {CharLit, `'\x0c'`, 1},
			{CharLit, `-'\x0c'`, 1}}},
		{"// comment\nfloat", []tok{{Identifier, "float", 2}}},
		{"/* block\ncomment */ float", []tok{{Identifier, "float", 2}}},
		{"a /*c*/ b", []tok{{Identifier, "a", 1}, {Identifier, "b", 1}}},
		{"\n\nfloat\n{", []tok{{Identifier, "float", 3}, {LBrace, "{", 4}}},
		{"", nil},
		{"   \t\r\n  ", nil},
	}
	for _, tc := range tests {
		got := scanAll(t, tc.in)
		if len(got) != len(tc.e) {
			t.Errorf("scan %q: got %v, want %v", tc.in, got, tc.e)
			continue
		}
		for i := range got {
			if got[i] != tc.e[i] {
				t.Errorf("scan %q token %d: got %+v, want %+v", tc.in, i, got[i], tc.e[i])
			}
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		in   string
		e    error
		line int
	}{
		{`&`, ErrUnexpectedChar, 1},
		{"\n\n#", ErrUnexpectedChar, 3},
		{`"unterminated`, ErrUnterminated, 1},
		{"\"newline\ninside\"", ErrUnterminated, 1},
		{`'`, ErrUnterminated, 1},
		{`%`, ErrName, 1},
		{`$ {`, ErrName, 1},
	}
	for _, tc := range tests {
		s := New([]byte(tc.in))
		var err error
		for {
			var tk Token
			tk, err = s.Next()
			if err != nil || tk.Kind == EOF {
				break
			}
		}
		if !errors.Is(err, tc.e) {
			t.Errorf("scan %q: got %v, want %v", tc.in, err, tc.e)
			continue
		}
		var te *Error
		if !errors.As(err, &te) {
			t.Errorf("scan %q: error %v is not a *token.Error", tc.in, err)
			continue
		}
		if te.Line != tc.line {
			t.Errorf("scan %q: got line %d, want %d", tc.in, te.Line, tc.line)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in string
		e  string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"a\nb\tc\rd"`, "a\nb\tc\rd"},
		{`"\x0c"`, "\x0c"},
		{`"\x41\x42"`, "AB"},
	}
	for _, tc := range tests {
		got, err := Unescape([]byte(tc.in))
		if err != nil {
			t.Errorf("Unescape(%s): %v", tc.in, err)
			continue
		}
		if got != tc.e {
			t.Errorf("Unescape(%s): got %q, want %q", tc.in, got, tc.e)
		}
	}
	if _, err := Unescape([]byte(`"\q"`)); !errors.Is(err, ErrBadEscape) {
		t.Errorf("Unescape bad escape: got %v, want %v", err, ErrBadEscape)
	}
}

func TestCharValue(t *testing.T) {
	tests := []struct {
		in  string
		v   uint64
		neg bool
	}{
		{`'a'`, 'a', false},
		{`'\x0c'`, 0x0c, false},
		{`-'\x0c'`, 0x0c, true},
		{`+'a'`, 'a', false},
		{`'\\'`, '\\', false},
		{`'\''`, '\'', false},
	}
	for _, tc := range tests {
		v, neg, err := CharValue([]byte(tc.in))
		if err != nil {
			t.Errorf("CharValue(%s): %v", tc.in, err)
			continue
		}
		if v != tc.v || neg != tc.neg {
			t.Errorf("CharValue(%s): got %d neg=%v, want %d neg=%v", tc.in, v, neg, tc.v, tc.neg)
		}
	}
}
