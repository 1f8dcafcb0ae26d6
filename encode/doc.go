// Package encode renders a parsed document back to OpenDDL text.
//
// # Usage
//
//	d, err := openddl.Parse(src, structureIdentifiers, propertyIdentifiers)
//	...
//	err = encode.Encode(d, os.Stdout)
//
//	// colorized, for terminals
//	err = encode.Encode(d, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Any converts a document to plain maps and slices for marshaling with
// encoding/json or goccy/go-yaml.
//
// # Related Packages
//
//   - github.com/opengex/openddl - document store and parser
//   - github.com/opengex/openddl/validate - schema validation
package encode
