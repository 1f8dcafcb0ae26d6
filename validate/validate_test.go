package validate

import (
	"errors"
	"testing"

	"github.com/opengex/openddl"
)

const (
	someStructure = iota
	rootStructure
	hierarchicStructure
)

var structureIdentifiers = []string{"Some", "Root", "Hierarchic"}

const (
	someProperty = iota
	booleanProperty
	idProperty
)

var propertyIdentifiers = []string{"some", "boolean", "id"}

func mustParse(t *testing.T, src string) *openddl.Document {
	t.Helper()
	d, err := openddl.Parse([]byte(src), structureIdentifiers, propertyIdentifiers)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func expectViolation(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected violation %q", msg)
	}
	if err.Error() != msg {
		t.Errorf("got %q, want %q", err.Error(), msg)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("error does not wrap ErrValidation")
	}
}

func TestValidate(t *testing.T) {
	d := mustParse(t, `
Root (some = 15.0, some = 0.5) { string { "hello", "world" } }

Hierarchic (boolean = false, id = 819) {
    ref { null }

    Hierarchic (boolean = true, id = 820) {
        Some { int32[2] { {3, 4}, {5, 6} } }
    }

    Some { int16[2] { {0, 1}, {2, 3} } }
}

Hierarchic (boolean = false) {}
`)

	err := Validate(d,
		Structures{
			rootStructure:       {Min: 1, Max: 1},
			hierarchicStructure: {Min: 1},
		},
		[]Structure{
			{Identifier: rootStructure,
				Properties: []Property{
					{Identifier: someProperty, Type: openddl.Float, Required: true},
				},
				Primitives:     []openddl.Type{openddl.String},
				PrimitiveCount: 1},
			{Identifier: hierarchicStructure,
				Properties: []Property{
					{Identifier: booleanProperty, Type: openddl.Bool, Required: true},
					{Identifier: idProperty, Type: openddl.UnsignedInt},
				},
				Primitives: []openddl.Type{openddl.Reference},
				Structures: Structures{
					hierarchicStructure: {},
					someStructure:       {},
				}},
			{Identifier: someStructure,
				Primitives:         []openddl.Type{openddl.Short, openddl.Int},
				PrimitiveCount:     1,
				PrimitiveArraySize: 4},
		})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// validation is read-only, repeating it yields the same result
	if err := Validate(d, Structures{rootStructure: {Min: 1, Max: 1}, hierarchicStructure: {Min: 1}},
		nil); err != nil {
		t.Fatalf("second Validate: %v", err)
	}
}

// A document violating several cardinality bounds at once must produce the
// same first diagnostic on every run.
func TestValidateRepeatedDiagnostic(t *testing.T) {
	d := mustParse(t, `
Root {}
Root {}
`)
	root := Structures{
		someStructure: {Min: 1},
		rootStructure: {Max: 1},
	}
	first := Validate(d, root, nil)
	expectViolation(t, first, "too little Some structures, got 0 but expected min 1")
	second := Validate(d, root, nil)
	if second == nil {
		t.Fatal("second Validate passed")
	}
	if first.Error() != second.Error() {
		t.Errorf("diagnostic changed between runs: %q then %q",
			first.Error(), second.Error())
	}
}

func TestValidateUnexpectedPrimitiveInRoot(t *testing.T) {
	d := mustParse(t, `string { "hello" }`)
	err := Validate(d, Structures{}, nil)
	expectViolation(t, err, "unexpected primitive structure in root")
}

func TestValidateTooManyPrimitives(t *testing.T) {
	d := mustParse(t, `
Root {
    Hierarchic { }
    string { "world" }
    string { "world" }
}
`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Primitives:         []openddl.Type{openddl.String},
				PrimitiveCount:     1,
				PrimitiveArraySize: 1,
				Structures:         Structures{hierarchicStructure: {Min: 1, Max: 1}}},
		})
	expectViolation(t, err, "expected exactly 1 primitive sub-structures in structure Root")
}

func TestValidateTooLittlePrimitives(t *testing.T) {
	d := mustParse(t, `
Root {
    Hierarchic { }
    string { "world" }
}
`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Primitives:         []openddl.Type{openddl.String},
				PrimitiveCount:     2,
				PrimitiveArraySize: 1,
				Structures:         Structures{hierarchicStructure: {Min: 1, Max: 1}}},
		})
	expectViolation(t, err, "expected exactly 2 primitive sub-structures in structure Root")
}

func TestValidateUnexpectedPrimitiveArraySize(t *testing.T) {
	d := mustParse(t, `
Root {
    string { "hello", "world", "how is it going" }
}
`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Primitives:         []openddl.Type{openddl.String},
				PrimitiveCount:     1,
				PrimitiveArraySize: 2},
		})
	expectViolation(t, err, "expected exactly 2 values in Root sub-structure")
}

func TestValidateWrongPrimitiveType(t *testing.T) {
	d := mustParse(t, `Root { int32 {} }`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Primitives:     []openddl.Type{openddl.String},
				PrimitiveCount: 1},
		})
	expectViolation(t, err, "unexpected sub-structure of type Int in structure Root")
}

func TestValidateUnexpectedStructure(t *testing.T) {
	d := mustParse(t, `
Root { }
Hierarchic {  }
`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 2}},
		[]Structure{
			{Identifier: rootStructure},
			{Identifier: hierarchicStructure},
		})
	expectViolation(t, err, "unexpected structure Hierarchic")
}

func TestValidateTooManyStructures(t *testing.T) {
	d := mustParse(t, `
Root { }
Root { }
Root { }
`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 2}},
		[]Structure{{Identifier: rootStructure}})
	expectViolation(t, err, "too many Root structures, got 3 but expected max 2")
}

func TestValidateTooLittleStructures(t *testing.T) {
	d := mustParse(t, `Root { }`)
	err := Validate(d,
		Structures{rootStructure: {Min: 2, Max: 3}},
		[]Structure{{Identifier: rootStructure}})
	expectViolation(t, err, "too little Root structures, got 1 but expected min 2")
}

func TestValidateUnknownStructure(t *testing.T) {
	d := mustParse(t, `
Root { string { "hello" } }

Unknown { Root { int32 {} } }
`)

	// unknown structures are skipped even when their contents would not
	// validate
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Primitives:         []openddl.Type{openddl.String},
				PrimitiveCount:     1,
				PrimitiveArraySize: 1},
		})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateExpectedProperty(t *testing.T) {
	d := mustParse(t, `Root () {}`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Properties: []Property{
					{Identifier: someProperty, Type: openddl.Float, Required: true},
					{Identifier: booleanProperty, Type: openddl.Bool},
				}},
		})
	expectViolation(t, err, "expected property some in structure Root")
}

func TestValidateUnexpectedProperty(t *testing.T) {
	d := mustParse(t, `Root (some = 15.0, boolean = true) {}`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Properties: []Property{
					{Identifier: someProperty, Type: openddl.Float, Required: true},
				}},
		})
	expectViolation(t, err, "unexpected property boolean in structure Root")
}

func TestValidateWrongPropertyType(t *testing.T) {
	d := mustParse(t, `Root (some = false) {}`)
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Properties: []Property{
					{Identifier: someProperty, Type: openddl.Float, Required: true},
				}},
		})
	expectViolation(t, err, "unexpected type of property some, expected Float")
}

func TestValidateUnknownProperty(t *testing.T) {
	d := mustParse(t, `Root (some = 15.0, name = null) {}`)

	// unknown properties are skipped
	err := Validate(d,
		Structures{rootStructure: {Min: 1, Max: 1}},
		[]Structure{
			{Identifier: rootStructure,
				Properties: []Property{
					{Identifier: someProperty, Type: openddl.Float, Required: true},
				}},
		})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
