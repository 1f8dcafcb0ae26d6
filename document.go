package openddl

import "iter"

// Document owns everything produced by one Parse call: the structure
// arena, all primitive payloads (one contiguous slice per primitive type),
// the interned name table and the caller's identifier tables. Structure and
// Property are lightweight views into it and must not outlive it.
//
// A Document is immutable once Parse returns, so concurrent read-only use
// from multiple goroutines is safe.
type Document struct {
	// structures[0] is the null sentinel; its firstChild links the
	// top-level forest. All real indices are >= 1 so 0 doubles as
	// "no link" everywhere.
	structures []structureData
	properties []propertyData

	// interned names; index 0 is reserved for "unnamed"
	strings []string
	byName  map[string]int32

	structureNames []string
	propertyNames  []string

	bools  []bool
	u8     []uint8
	i8     []int8
	u16    []uint16
	i16    []int16
	u32    []uint32
	i32    []int32
	u64    []uint64
	i64    []int64
	halves []float32
	f32    []float32
	f64    []float64
	strs   []string
	refs   []string
}

type structureData struct {
	typ        Type
	identifier int32 // custom only
	source     int32 // custom only; strings index of the source identifier
	name       int32 // strings index, 0 = unnamed
	parent     int32
	next       int32
	firstChild int32 // custom only

	propBegin, propCount int32 // custom only

	dataBegin, dataCount uint32 // primitive only
	subArraySize         uint32
}

type propertyData struct {
	identifier int32
	source     int32 // strings index of the source identifier
	kind       PropertyKind
	value      uint32 // index into the payload slice selected by kind
}

func newDocument(structureIdentifiers, propertyIdentifiers []string) *Document {
	return &Document{
		structures:     make([]structureData, 1),
		strings:        []string{""},
		byName:         map[string]int32{},
		structureNames: structureIdentifiers,
		propertyNames:  propertyIdentifiers,
	}
}

// IsEmpty reports whether the document has no structures.
func (d *Document) IsEmpty() bool {
	return d.structures[0].firstChild == 0
}

// FirstChild returns the first top-level structure. The document must not
// be empty.
func (d *Document) FirstChild() Structure {
	s, ok := d.FindFirstChild()
	if !ok {
		panic("openddl: FirstChild on empty document")
	}
	return s
}

// FindFirstChild returns the first top-level structure, if any.
func (d *Document) FindFirstChild() (Structure, bool) {
	i := d.structures[0].firstChild
	return Structure{d, i}, i != 0
}

// FindFirstChildOf returns the first top-level custom structure whose
// identifier is one of ids.
func (d *Document) FindFirstChildOf(ids ...int) (Structure, bool) {
	return findOf(d, d.structures[0].firstChild, ids)
}

// FirstChildOf is FindFirstChildOf with the match asserted present.
func (d *Document) FirstChildOf(ids ...int) Structure {
	s, ok := d.FindFirstChildOf(ids...)
	if !ok {
		panic("openddl: no top-level structure of given identifier")
	}
	return s
}

// Children iterates the top-level structures in source order.
func (d *Document) Children() iter.Seq[Structure] {
	return siblings(d, d.structures[0].firstChild)
}

// ChildrenOf iterates the top-level custom structures whose identifier is
// one of ids.
func (d *Document) ChildrenOf(ids ...int) iter.Seq[Structure] {
	return siblingsOf(d, d.structures[0].firstChild, ids)
}

// StructureName returns the source name of a structure identifier from the
// table given to Parse.
func (d *Document) StructureName(identifier int) string {
	if identifier == UnknownIdentifier {
		return "(unknown)"
	}
	return d.structureNames[identifier]
}

// PropertyName returns the source name of a property identifier from the
// table given to Parse.
func (d *Document) PropertyName(identifier int) string {
	if identifier == UnknownIdentifier {
		return "(unknown)"
	}
	return d.propertyNames[identifier]
}

// byNameLookup resolves a reference value (including its % or $ prefix) to
// a structure index, 0 if absent.
func (d *Document) byNameLookup(name string) int32 {
	return d.byName[name]
}

func (d *Document) intern(s string) int32 {
	for i, v := range d.strings {
		if v == s {
			return int32(i)
		}
	}
	d.strings = append(d.strings, s)
	return int32(len(d.strings) - 1)
}

func siblings(d *Document, first int32) iter.Seq[Structure] {
	return func(yield func(Structure) bool) {
		for i := first; i != 0; i = d.structures[i].next {
			if !yield(Structure{d, i}) {
				return
			}
		}
	}
}

func siblingsOf(d *Document, first int32, ids []int) iter.Seq[Structure] {
	return func(yield func(Structure) bool) {
		for i := first; i != 0; i = d.structures[i].next {
			sd := &d.structures[i]
			if sd.typ != Custom || !containsID(ids, sd.identifier) {
				continue
			}
			if !yield(Structure{d, i}) {
				return
			}
		}
	}
}

func findOf(d *Document, first int32, ids []int) (Structure, bool) {
	for i := first; i != 0; i = d.structures[i].next {
		sd := &d.structures[i]
		if sd.typ == Custom && containsID(ids, sd.identifier) {
			return Structure{d, i}, true
		}
	}
	return Structure{}, false
}

func containsID(ids []int, id int32) bool {
	for _, v := range ids {
		if int32(v) == id {
			return true
		}
	}
	return false
}
