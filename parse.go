package openddl

import (
	"errors"
	"math"
	"strconv"

	"github.com/opengex/openddl/debug"
	"github.com/opengex/openddl/token"
)

// Parse consumes an OpenDDL document and returns its populated Document.
// The identifier tables assign integer ids by position; source identifiers
// absent from them resolve to UnknownIdentifier instead of failing the
// parse. The first lexical or grammatical error aborts parsing and is
// returned with its 1-based source line; no partial document is produced.
func Parse(src []byte, structureIdentifiers, propertyIdentifiers []string) (*Document, error) {
	p := &parser{
		sc:        token.New(src),
		d:         newDocument(structureIdentifiers, propertyIdentifiers),
		structIDs: indexTable(structureIdentifiers),
		propIDs:   indexTable(propertyIdentifiers),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.d, nil
}

type parser struct {
	sc        *token.Scanner
	d         *Document
	structIDs map[string]int32
	propIDs   map[string]int32

	tok token.Token
}

func indexTable(names []string) map[string]int32 {
	m := make(map[string]int32, len(names))
	for i, n := range names {
		m[n] = int32(i)
	}
	return m
}

func (p *parser) run() error {
	if err := p.next(); err != nil {
		return err
	}
	var prev int32
	for p.tok.Kind != token.EOF {
		i, err := p.parseStructure(0, prev)
		if err != nil {
			return err
		}
		prev = i
	}
	return nil
}

func (p *parser) next() error {
	t, err := p.sc.Next()
	if err != nil {
		return p.scanErr(err)
	}
	p.tok = t
	return nil
}

// scanErr converts a lexical error into the parser's message vocabulary.
func (p *parser) scanErr(err error) error {
	var te *token.Error
	if !errors.As(err, &te) {
		return err
	}
	switch {
	case errors.Is(te.Err, token.ErrUnexpectedChar):
		return parseErr("unexpected character", te.Line)
	case errors.Is(te.Err, token.ErrName):
		return parseErr("invalid identifier", te.Line)
	default:
		return parseErr("invalid literal value", te.Line)
	}
}

// parseStructure parses one structure at the current token and links it
// under parent after prev (0 for the first sibling). It leaves the token
// cursor on the first token after the structure.
func (p *parser) parseStructure(parent, prev int32) (int32, error) {
	if p.tok.Kind != token.Identifier {
		return 0, parseErr("invalid identifier", p.tok.Line)
	}
	if typ, ok := typeKeywords[string(p.tok.Bytes)]; ok {
		return p.parsePrimitive(typ, parent, prev)
	}
	return p.parseCustom(parent, prev)
}

func (p *parser) link(i, parent, prev int32) {
	if prev != 0 {
		p.d.structures[prev].next = i
	} else {
		p.d.structures[parent].firstChild = i
	}
	p.d.structures[i].parent = parent
}

func (p *parser) add(sd structureData) int32 {
	p.d.structures = append(p.d.structures, sd)
	return int32(len(p.d.structures) - 1)
}

func (p *parser) parseName(sd *structureData, i int32) error {
	if p.tok.Kind != token.Name {
		return nil
	}
	name := string(p.tok.Bytes)
	sd.name = p.d.intern(name)
	p.d.byName[name] = i
	return p.next()
}

func (p *parser) parsePrimitive(typ Type, parent, prev int32) (int32, error) {
	i := p.add(structureData{typ: typ})
	p.link(i, parent, prev)
	if err := p.next(); err != nil {
		return 0, err
	}

	sub := uint32(0)
	if p.tok.Kind == token.LBracket {
		if err := p.next(); err != nil {
			return 0, err
		}
		n, err := p.subArraySize()
		if err != nil {
			return 0, err
		}
		sub = n
		if err := p.next(); err != nil {
			return 0, err
		}
		if p.tok.Kind != token.RBracket {
			return 0, expectedErr(']', p.tok.Line)
		}
		if err := p.next(); err != nil {
			return 0, err
		}
	}
	sd := &p.d.structures[i]
	sd.subArraySize = sub
	if err := p.parseName(sd, i); err != nil {
		return 0, err
	}
	if p.tok.Kind != token.LBrace {
		return 0, expectedErr('{', p.tok.Line)
	}
	if err := p.next(); err != nil {
		return 0, err
	}

	begin, count, err := p.parsePrimitiveBody(typ, sub)
	if err != nil {
		return 0, err
	}
	sd = &p.d.structures[i]
	sd.dataBegin, sd.dataCount = begin, count
	if debug.Parse() {
		debug.Logf("openddl: parsed %s[%d] with %d values\n", typ, sub, count)
	}
	return i, p.next()
}

// parsePrimitiveBody consumes the literals between { and }, leaving the
// cursor on the closing brace. It returns the offset and count of the
// appended values in the payload array for typ.
func (p *parser) parsePrimitiveBody(typ Type, sub uint32) (uint32, uint32, error) {
	begin := p.payloadLen(typ)
	if p.tok.Kind == token.RBrace {
		return begin, 0, nil
	}
	count := uint32(0)
	if sub == 0 {
		for {
			if err := p.appendValue(typ); err != nil {
				return 0, 0, err
			}
			count++
			if err := p.next(); err != nil {
				return 0, 0, err
			}
			switch p.tok.Kind {
			case token.Comma:
				if err := p.next(); err != nil {
					return 0, 0, err
				}
			case token.RBrace:
				return begin, count, nil
			case token.EOF:
				return 0, 0, expectedErr('}', p.tok.Line)
			default:
				return 0, 0, expectedErr(',', p.tok.Line)
			}
		}
	}
	for {
		if p.tok.Kind != token.LBrace {
			return 0, 0, expectedErr('{', p.tok.Line)
		}
		if err := p.next(); err != nil {
			return 0, 0, err
		}
		for k := uint32(0); k < sub; k++ {
			if k > 0 {
				if p.tok.Kind != token.Comma {
					return 0, 0, expectedErr(',', p.tok.Line)
				}
				if err := p.next(); err != nil {
					return 0, 0, err
				}
			}
			if err := p.appendValue(typ); err != nil {
				return 0, 0, err
			}
			count++
			if err := p.next(); err != nil {
				return 0, 0, err
			}
		}
		if p.tok.Kind != token.RBrace {
			return 0, 0, expectedErr('}', p.tok.Line)
		}
		if err := p.next(); err != nil {
			return 0, 0, err
		}
		switch p.tok.Kind {
		case token.Comma:
			if err := p.next(); err != nil {
				return 0, 0, err
			}
		case token.RBrace:
			return begin, count, nil
		case token.EOF:
			return 0, 0, expectedErr('}', p.tok.Line)
		default:
			return 0, 0, expectedErr(',', p.tok.Line)
		}
	}
}

func (p *parser) subArraySize() (uint32, error) {
	if p.tok.Kind != token.IntLit {
		return 0, parseErr("invalid subarray size", p.tok.Line)
	}
	neg, abs, err := parseIntegerBytes(p.tok.Bytes)
	if err != nil || neg || abs == 0 || abs > math.MaxUint32 {
		return 0, parseErr("invalid subarray size", p.tok.Line)
	}
	return uint32(abs), nil
}

func (p *parser) parseCustom(parent, prev int32) (int32, error) {
	id := int32(UnknownIdentifier)
	if v, ok := p.structIDs[string(p.tok.Bytes)]; ok {
		id = v
	}
	src := p.d.intern(string(p.tok.Bytes))
	i := p.add(structureData{typ: Custom, identifier: id, source: src})
	p.link(i, parent, prev)
	if err := p.next(); err != nil {
		return 0, err
	}
	if err := p.parseName(&p.d.structures[i], i); err != nil {
		return 0, err
	}
	if p.tok.Kind == token.LParen {
		if err := p.parseProperties(i); err != nil {
			return 0, err
		}
	}
	if p.tok.Kind != token.LBrace {
		return 0, expectedErr('{', p.tok.Line)
	}
	if err := p.next(); err != nil {
		return 0, err
	}
	var prevChild int32
	for p.tok.Kind != token.RBrace {
		if p.tok.Kind == token.EOF {
			return 0, expectedErr('}', p.tok.Line)
		}
		c, err := p.parseStructure(i, prevChild)
		if err != nil {
			return 0, err
		}
		prevChild = c
	}
	if debug.Parse() {
		debug.Logf("openddl: parsed custom structure %d (%s)\n",
			id, p.d.StructureName(int(id)))
	}
	return i, p.next()
}

func (p *parser) parseProperties(owner int32) error {
	if err := p.next(); err != nil {
		return err
	}
	begin := int32(len(p.d.properties))
	for p.tok.Kind != token.RParen {
		if p.tok.Kind != token.Identifier {
			return parseErr("invalid identifier", p.tok.Line)
		}
		id := int32(UnknownIdentifier)
		if v, ok := p.propIDs[string(p.tok.Bytes)]; ok {
			id = v
		}
		src := p.d.intern(string(p.tok.Bytes))
		if err := p.next(); err != nil {
			return err
		}
		if p.tok.Kind != token.Equals {
			return expectedErr('=', p.tok.Line)
		}
		if err := p.next(); err != nil {
			return err
		}
		kind, value, err := p.propertyValue()
		if err != nil {
			return err
		}
		p.d.properties = append(p.d.properties, propertyData{
			identifier: id,
			source:     src,
			kind:       kind,
			value:      value,
		})
		if err := p.next(); err != nil {
			return err
		}
		switch p.tok.Kind {
		case token.Comma:
			if err := p.next(); err != nil {
				return err
			}
			if p.tok.Kind == token.RParen {
				return parseErr("invalid identifier", p.tok.Line)
			}
		case token.RParen:
		case token.EOF:
			return expectedErr(')', p.tok.Line)
		default:
			return expectedErr(',', p.tok.Line)
		}
	}
	sd := &p.d.structures[owner]
	sd.propBegin = begin
	sd.propCount = int32(len(p.d.properties)) - begin
	return p.next()
}

func (p *parser) propertyValue() (PropertyKind, uint32, error) {
	switch p.tok.Kind {
	case token.True, token.False:
		p.d.bools = append(p.d.bools, p.tok.Kind == token.True)
		return BoolKind, uint32(len(p.d.bools) - 1), nil
	case token.IntLit:
		neg, abs, err := parseIntegerBytes(p.tok.Bytes)
		if err != nil {
			return 0, 0, parseErr("invalid literal value", p.tok.Line)
		}
		v, err := signedFit(neg, abs, 64)
		if err != nil {
			return 0, 0, parseErr("invalid literal value", p.tok.Line)
		}
		p.d.i64 = append(p.d.i64, v)
		return IntegralKind, uint32(len(p.d.i64) - 1), nil
	case token.CharLit:
		abs, negat, err := token.CharValue(p.tok.Bytes)
		if err != nil {
			return 0, 0, parseErr("invalid literal value", p.tok.Line)
		}
		v := int64(abs)
		if negat {
			v = -v
		}
		p.d.i64 = append(p.d.i64, v)
		return IntegralKind, uint32(len(p.d.i64) - 1), nil
	case token.FloatLit:
		f, err := strconv.ParseFloat(string(p.tok.Bytes), 64)
		if err != nil {
			return 0, 0, parseErr("invalid literal value", p.tok.Line)
		}
		p.d.f64 = append(p.d.f64, f)
		return FloatingKind, uint32(len(p.d.f64) - 1), nil
	case token.StringLit:
		s, err := token.Unescape(p.tok.Bytes)
		if err != nil {
			return 0, 0, parseErr("invalid literal value", p.tok.Line)
		}
		p.d.strs = append(p.d.strs, s)
		return StringKind, uint32(len(p.d.strs) - 1), nil
	case token.Name:
		p.d.refs = append(p.d.refs, string(p.tok.Bytes))
		return ReferenceKind, uint32(len(p.d.refs) - 1), nil
	case token.Null:
		p.d.refs = append(p.d.refs, "")
		return ReferenceKind, uint32(len(p.d.refs) - 1), nil
	}
	return 0, 0, parseErr("invalid property value", p.tok.Line)
}

func (p *parser) payloadLen(typ Type) uint32 {
	switch typ {
	case Bool:
		return uint32(len(p.d.bools))
	case UnsignedByte:
		return uint32(len(p.d.u8))
	case Byte:
		return uint32(len(p.d.i8))
	case UnsignedShort:
		return uint32(len(p.d.u16))
	case Short:
		return uint32(len(p.d.i16))
	case UnsignedInt:
		return uint32(len(p.d.u32))
	case Int:
		return uint32(len(p.d.i32))
	case UnsignedLong:
		return uint32(len(p.d.u64))
	case Long:
		return uint32(len(p.d.i64))
	case Half:
		return uint32(len(p.d.halves))
	case Float:
		return uint32(len(p.d.f32))
	case Double:
		return uint32(len(p.d.f64))
	case String:
		return uint32(len(p.d.strs))
	case Reference:
		return uint32(len(p.d.refs))
	}
	panic("openddl: payload of custom type")
}

// appendValue parses the current token as one literal of the declared
// primitive type, range-checked, and appends it to the matching payload
// array.
func (p *parser) appendValue(typ Type) error {
	bad := func() error { return parseErr("invalid literal value", p.tok.Line) }
	switch typ {
	case Bool:
		switch p.tok.Kind {
		case token.True:
			p.d.bools = append(p.d.bools, true)
		case token.False:
			p.d.bools = append(p.d.bools, false)
		default:
			return bad()
		}
		return nil
	case String:
		if p.tok.Kind != token.StringLit {
			return bad()
		}
		s, err := token.Unescape(p.tok.Bytes)
		if err != nil {
			return bad()
		}
		p.d.strs = append(p.d.strs, s)
		return nil
	case Reference:
		switch p.tok.Kind {
		case token.Null:
			p.d.refs = append(p.d.refs, "")
		case token.Name:
			p.d.refs = append(p.d.refs, string(p.tok.Bytes))
		default:
			return bad()
		}
		return nil
	case Half, Float, Double:
		return p.appendFloat(typ)
	}
	return p.appendInteger(typ)
}

func (p *parser) appendFloat(typ Type) error {
	bad := func() error { return parseErr("invalid literal value", p.tok.Line) }
	var f float64
	switch p.tok.Kind {
	case token.FloatLit:
		v, err := strconv.ParseFloat(string(p.tok.Bytes), floatBits(typ))
		if err != nil {
			return bad()
		}
		f = v
	case token.IntLit:
		neg, abs, err := parseIntegerBytes(p.tok.Bytes)
		if err != nil {
			return bad()
		}
		f = float64(abs)
		if neg {
			f = -f
		}
	default:
		return bad()
	}
	switch typ {
	case Half:
		p.d.halves = append(p.d.halves, float32(f))
	case Float:
		p.d.f32 = append(p.d.f32, float32(f))
	case Double:
		p.d.f64 = append(p.d.f64, f)
	}
	return nil
}

func floatBits(typ Type) int {
	if typ == Double {
		return 64
	}
	return 32
}

func (p *parser) appendInteger(typ Type) error {
	bad := func() error { return parseErr("invalid literal value", p.tok.Line) }
	var (
		neg bool
		abs uint64
		err error
	)
	switch p.tok.Kind {
	case token.IntLit:
		neg, abs, err = parseIntegerBytes(p.tok.Bytes)
	case token.CharLit:
		abs, neg, err = token.CharValue(p.tok.Bytes)
	default:
		return bad()
	}
	if err != nil {
		return bad()
	}
	switch typ {
	case UnsignedByte, UnsignedShort, UnsignedInt, UnsignedLong:
		if neg && abs != 0 {
			return bad()
		}
		if abs > unsignedMax(typ) {
			return bad()
		}
		switch typ {
		case UnsignedByte:
			p.d.u8 = append(p.d.u8, uint8(abs))
		case UnsignedShort:
			p.d.u16 = append(p.d.u16, uint16(abs))
		case UnsignedInt:
			p.d.u32 = append(p.d.u32, uint32(abs))
		case UnsignedLong:
			p.d.u64 = append(p.d.u64, abs)
		}
		return nil
	}
	v, err := signedFit(neg, abs, signedBits(typ))
	if err != nil {
		return bad()
	}
	switch typ {
	case Byte:
		p.d.i8 = append(p.d.i8, int8(v))
	case Short:
		p.d.i16 = append(p.d.i16, int16(v))
	case Int:
		p.d.i32 = append(p.d.i32, int32(v))
	case Long:
		p.d.i64 = append(p.d.i64, v)
	}
	return nil
}

func unsignedMax(typ Type) uint64 {
	switch typ {
	case UnsignedByte:
		return 1<<8 - 1
	case UnsignedShort:
		return 1<<16 - 1
	case UnsignedInt:
		return 1<<32 - 1
	}
	return 1<<64 - 1
}

func signedBits(typ Type) int {
	switch typ {
	case Byte:
		return 8
	case Short:
		return 16
	case Int:
		return 32
	}
	return 64
}

// parseIntegerBytes splits a decimal or hex integer literal into sign and
// magnitude.
func parseIntegerBytes(d []byte) (neg bool, abs uint64, err error) {
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		neg = d[0] == '-'
		d = d[1:]
	}
	if len(d) > 2 && d[0] == '0' && (d[1] == 'x' || d[1] == 'X') {
		abs, err = strconv.ParseUint(string(d[2:]), 16, 64)
	} else {
		abs, err = strconv.ParseUint(string(d), 10, 64)
	}
	return neg, abs, err
}

// signedFit range-checks a sign/magnitude pair against a signed width.
func signedFit(neg bool, abs uint64, bits int) (int64, error) {
	max := uint64(1)<<(bits-1) - 1
	if neg {
		if abs > max+1 {
			return 0, strconv.ErrRange
		}
		return -int64(abs), nil
	}
	if abs > max {
		return 0, strconv.ErrRange
	}
	return int64(abs), nil
}
