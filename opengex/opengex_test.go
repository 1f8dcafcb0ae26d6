package opengex

import (
	"errors"
	"slices"
	"testing"

	"github.com/opengex/openddl/validate"
)

const sceneSrc = `
Metric (key = "distance") { float { 1 } }
Metric (key = "up") { string { "z" } }

GeometryNode %node1 {
    Name { string { "Cube" } }
    ObjectRef { ref { $geometry1 } }
    MaterialRef (index = 0) { ref { $material1 } }
    Transform {
        float[16] {
            {1, 0, 0, 0,
             0, 1, 0, 0,
             0, 0, 1, 0,
             0, 0, 0, 1}
        }
    }
}

GeometryObject $geometry1 {
    Mesh (primitive = "triangles") {
        VertexArray (attrib = "position") {
            float[3] { {-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0, 0.5, 0} }
        }
        IndexArray {
            unsigned_int32[3] { {0, 1, 2} }
        }
    }
}

Material $material1 (two_sided = false) {
    Name { string { "Gray" } }
    Color (attrib = "diffuse") { float[3] { {0.8, 0.8, 0.8} } }
}
`

func TestScene(t *testing.T) {
	d, err := Parse([]byte(sceneSrc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := Validate(d); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	node, ok := d.FindFirstChildOf(GeometryNode)
	if !ok {
		t.Fatal("no GeometryNode")
	}
	if node.Name() != "%node1" {
		t.Errorf("got node name %q", node.Name())
	}
	obj, ok := node.FindFirstChildOf(ObjectRef)
	if !ok {
		t.Fatal("no ObjectRef")
	}
	geo, ok := obj.FirstChild().AsReference()
	if !ok {
		t.Fatal("unresolved geometry reference")
	}
	if geo.Identifier() != GeometryObject {
		t.Errorf("reference resolved to identifier %d", geo.Identifier())
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		e    string
	}{
		{"primitive in root",
			`float { 1 }`,
			"unexpected primitive structure in root"},
		{"structure not allowed in root",
			`Skin {}`,
			"unexpected structure Skin"},
		{"missing object reference",
			`GeometryNode { Name { string { "x" } } }`,
			"too little ObjectRef structures, got 0 but expected min 1"},
		{"duplicate name",
			`Material { Name { string { "a" } } Name { string { "b" } } }`,
			"too many Name structures, got 2 but expected max 1"},
		{"missing required property",
			`Metric { float { 1 } }`,
			"expected property key in structure Metric"},
		{"property not allowed",
			`Metric (key = "up", visible = true) { string { "z" } }`,
			"unexpected property visible in structure Metric"},
		{"property type mismatch",
			`Metric (key = 3) { float { 1 } }`,
			"unexpected type of property key, expected String"},
		{"primitive type not allowed",
			`Metric (key = "distance") { int32 { 1 } }`,
			"unexpected sub-structure of type Int in structure Metric"},
		{"primitive count mismatch",
			`Metric (key = "distance") { float { 1 } float { 2 } }`,
			"expected exactly 1 primitive sub-structures in structure Metric"},
		{"primitive size mismatch",
			`Metric (key = "distance") { float { 1, 2 } }`,
			"expected exactly 1 values in Metric sub-structure"},
	}
	for _, tc := range tests {
		d, err := Parse([]byte(tc.src))
		if err != nil {
			t.Fatalf("%s: Parse: %v", tc.name, err)
		}
		err = Validate(d)
		if err == nil {
			t.Errorf("%s: document validated", tc.name)
			continue
		}
		if !errors.Is(err, validate.ErrValidation) {
			t.Errorf("%s: error does not wrap ErrValidation: %v", tc.name, err)
		}
		if err.Error() != tc.e {
			t.Errorf("%s:\n got  %q\n want %q", tc.name, err.Error(), tc.e)
		}
	}
}

// Structures and properties outside the identifier tables are out of the
// schema's jurisdiction and must not fail validation.
func TestValidateSkipsUnknown(t *testing.T) {
	d, err := Parse([]byte(`
Metric (key = "up", vendorism = true) { string { "z" } }
VendorScene { float { 1, 2, 3 } }
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := Validate(d); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestIdentifierTables(t *testing.T) {
	if !slices.IsSorted(StructureIdentifiers) {
		t.Error("StructureIdentifiers out of order")
	}
	if !slices.IsSorted(PropertyIdentifiers) {
		t.Error("PropertyIdentifiers out of order")
	}
	if got := StructureIdentifiers[Metric]; got != "Metric" {
		t.Errorf("Metric maps to %q", got)
	}
	if got := StructureIdentifiers[VertexArray]; got != "VertexArray" {
		t.Errorf("VertexArray maps to %q", got)
	}
	if got := PropertyIdentifiers[KeyProp]; got != "key" {
		t.Errorf("KeyProp maps to %q", got)
	}
	if got := PropertyIdentifiers[TwoSided]; got != "two_sided" {
		t.Errorf("TwoSided maps to %q", got)
	}
	for _, s := range Schemas {
		if s.Identifier < 0 || s.Identifier >= len(StructureIdentifiers) {
			t.Errorf("schema with out of range identifier %d", s.Identifier)
		}
	}
}
