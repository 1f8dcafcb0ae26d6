// Package opengex carries the OpenGEX scene format expressed as data over
// the generic OpenDDL engine: the structure and property identifier tables
// plus a validation schema. Parse and Validate are thin wrappers binding
// the engine to those tables.
package opengex

import (
	"github.com/opengex/openddl"
	"github.com/opengex/openddl/validate"
)

// Structure identifiers, ids assigned by position in StructureIdentifiers.
const (
	Animation = iota
	Atten
	BoneCountArray
	BoneIndexArray
	BoneNode
	BoneRefArray
	BoneWeightArray
	CameraNode
	CameraObject
	Clip
	Color
	Extension
	GeometryNode
	GeometryObject
	IndexArray
	Key
	LightNode
	LightObject
	Material
	MaterialRef
	Mesh
	Metric
	Morph
	Name
	Node
	ObjectRef
	Param
	Rotation
	Scale
	Skeleton
	Skin
	Texture
	Time
	Track
	Transform
	Translation
	Value
	VertexArray
)

// Property identifiers, ids assigned by position in PropertyIdentifiers.
const (
	Applic = iota
	Attrib
	Begin
	ClipProp
	Curve
	End
	Front
	Index
	KeyProp
	Kind
	Lod
	MaterialProp
	MorphProp
	MotionBlur
	Object
	Primitive
	Restart
	Shadow
	Target
	Texcoord
	TwoSided
	TypeProp
	Visible
)

var StructureIdentifiers = []string{
	"Animation",
	"Atten",
	"BoneCountArray",
	"BoneIndexArray",
	"BoneNode",
	"BoneRefArray",
	"BoneWeightArray",
	"CameraNode",
	"CameraObject",
	"Clip",
	"Color",
	"Extension",
	"GeometryNode",
	"GeometryObject",
	"IndexArray",
	"Key",
	"LightNode",
	"LightObject",
	"Material",
	"MaterialRef",
	"Mesh",
	"Metric",
	"Morph",
	"Name",
	"Node",
	"ObjectRef",
	"Param",
	"Rotation",
	"Scale",
	"Skeleton",
	"Skin",
	"Texture",
	"Time",
	"Track",
	"Transform",
	"Translation",
	"Value",
	"VertexArray",
}

var PropertyIdentifiers = []string{
	"applic",
	"attrib",
	"begin",
	"clip",
	"curve",
	"end",
	"front",
	"index",
	"key",
	"kind",
	"lod",
	"material",
	"morph",
	"motion_blur",
	"object",
	"primitive",
	"restart",
	"shadow",
	"target",
	"texcoord",
	"two_sided",
	"type",
	"visible",
}

// Parse parses OpenDDL text against the OpenGEX identifier tables.
func Parse(src []byte) (*openddl.Document, error) {
	return openddl.Parse(src, StructureIdentifiers, PropertyIdentifiers)
}

// Validate checks a parsed document against the OpenGEX schema.
func Validate(d *openddl.Document) error {
	return validate.Validate(d, RootStructures, Schemas)
}
