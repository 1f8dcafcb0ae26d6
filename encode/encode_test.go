package encode

import (
	"bytes"
	"testing"

	"github.com/opengex/openddl"
	"github.com/opengex/openddl/opengex"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func mustParse(t *testing.T, src string) *openddl.Document {
	t.Helper()
	d, err := opengex.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func prettyDiff(want, got string) string {
	diffCfg := diffpatch.New()
	return diffCfg.DiffPrettyText(diffCfg.DiffMain(want, got, false))
}

func TestEncode(t *testing.T) {
	d := mustParse(t, `
Metric (key = "distance") { float { 1 } }
GeometryNode %node1 {
    Name { string { "Cube" } }
    ObjectRef { ref { $geometry1 } }
}
`)
	var out bytes.Buffer
	if err := Encode(d, &out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `Metric (key = "distance") {
    float { 1 }
}

GeometryNode %node1 {
    Name {
        string { "Cube" }
    }
    ObjectRef {
        ref { $geometry1 }
    }
}
`
	if got := out.String(); got != want {
		t.Errorf("encoded text mismatch:\n%s", prettyDiff(want, got))
	}
}

func TestEncodeSubArray(t *testing.T) {
	d := mustParse(t, `unsigned_int8[2] %data { {0xca, 0xfe}, {0xba, 0xbe} }`)
	var out bytes.Buffer
	if err := Encode(d, &out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "unsigned_int8[2] %data { {202, 254}, {186, 190} }\n"
	if got := out.String(); got != want {
		t.Errorf("encoded text mismatch:\n%s", prettyDiff(want, got))
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	srcs := []string{
		`float {}`,
		`bool { true, false }`,
		`int16 { 35, -12, 45 }`,
		`double[2] { {3.5, 4.5}, {5.5, 6.5} }`,
		`string { "hello", "a\nb", "\x0c" }`,
		`Metric (key = "up") { string { "z" } }`,
		`Unknown %u (unspecified = %u, index = 3) { ref { %u, null } }`,
		`GeometryNode %n {
			Name { string { "x" } }
			ObjectRef { ref { $g } }
			Transform { float[16] { {1, 0, 0, 0,  0, 1, 0, 0,  0, 0, 1, 0,  0, 0, 0, 1} } }
		}`,
	}
	for _, src := range srcs {
		d := mustParse(t, src)
		var out bytes.Buffer
		if err := Encode(d, &out); err != nil {
			t.Fatalf("Encode(%q): %v", src, err)
		}
		d2, err := opengex.Parse(out.Bytes())
		if err != nil {
			t.Fatalf("reparse of %q failed: %v\nencoded:\n%s", src, err, out.String())
		}
		if diff := cmp.Diff(Any(d), Any(d2)); diff != "" {
			t.Errorf("round trip of %q changed the document (-orig +reparsed):\n%s", src, diff)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in string
		e  string
	}{
		{"hello", `"hello"`},
		{"", `""`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{"\x0c", `"\x0c"`},
	}
	for _, tc := range tests {
		if got := Quote(tc.in); got != tc.e {
			t.Errorf("Quote(%q): got %s, want %s", tc.in, got, tc.e)
		}
	}
}

func TestAny(t *testing.T) {
	d := mustParse(t, `Metric %m (key = "distance") { float { 1 } }`)
	want := []any{
		map[string]any{
			"structure":  "Metric",
			"name":       "%m",
			"properties": map[string]any{"key": "distance"},
			"children": []any{
				map[string]any{
					"type":   "float",
					"values": []any{float32(1)},
				},
			},
		},
	}
	if diff := cmp.Diff(want, Any(d)); diff != "" {
		t.Errorf("Any mismatch (-want +got):\n%s", diff)
	}
}
