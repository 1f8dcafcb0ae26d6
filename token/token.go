package token

// Kind discriminates lexical elements of an OpenDDL document.
type Kind int

const (
	EOF Kind = iota
	Identifier
	Name // %local or $global
	StringLit
	CharLit
	IntLit
	FloatLit
	True
	False
	Null
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Comma
	Equals
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		EOF:        "EOF",
		Identifier: "Identifier",
		Name:       "Name",
		StringLit:  "String",
		CharLit:    "Char",
		IntLit:     "Integer",
		FloatLit:   "Float",
		True:       "true",
		False:      "false",
		Null:       "null",
		LBrace:     "{",
		RBrace:     "}",
		LParen:     "(",
		RParen:     ")",
		LBracket:   "[",
		RBracket:   "]",
		Comma:      ",",
		Equals:     "=",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Token is a single lexical element. Bytes aliases the source buffer and
// includes delimiters for string and character literals and the sign for
// signed numeric literals.
type Token struct {
	Kind  Kind
	Bytes []byte
	Line  int
}

func (t Token) String() string {
	return string(t.Bytes)
}
