package opengex

import (
	"github.com/opengex/openddl"
	"github.com/opengex/openddl/validate"
)

// RootStructures bounds what may appear at the top level of an OpenGEX
// file.
var RootStructures = validate.Structures{
	Metric:         {},
	Node:           {},
	BoneNode:       {},
	GeometryNode:   {},
	CameraNode:     {},
	LightNode:      {},
	GeometryObject: {},
	CameraObject:   {},
	LightObject:    {},
	Material:       {},
	Clip:           {},
	Extension:      {},
}

// nodeStructures is the sub-structure allowlist shared by every node kind.
var nodeStructures = validate.Structures{
	Name:         {Max: 1},
	Transform:    {},
	Translation:  {},
	Rotation:     {},
	Scale:        {},
	Animation:    {},
	Node:         {},
	BoneNode:     {},
	GeometryNode: {},
	CameraNode:   {},
	LightNode:    {},
	Extension:    {},
}

func withRef(extra validate.Structures) validate.Structures {
	out := validate.Structures{}
	for id, r := range nodeStructures {
		out[id] = r
	}
	for id, r := range extra {
		out[id] = r
	}
	return out
}

var floats = []openddl.Type{openddl.Half, openddl.Float, openddl.Double}

var unsigned = []openddl.Type{
	openddl.UnsignedByte, openddl.UnsignedShort,
	openddl.UnsignedInt, openddl.UnsignedLong,
}

// Schemas is the per-identifier OpenGEX structure grammar.
var Schemas = []validate.Structure{
	{Identifier: Metric,
		Properties: []validate.Property{
			{Identifier: KeyProp, Type: openddl.String, Required: true},
		},
		Primitives:         []openddl.Type{openddl.Float, openddl.String},
		PrimitiveCount:     1,
		PrimitiveArraySize: 1},
	{Identifier: Name,
		Primitives:         []openddl.Type{openddl.String},
		PrimitiveCount:     1,
		PrimitiveArraySize: 1},
	{Identifier: ObjectRef,
		Primitives:         []openddl.Type{openddl.Reference},
		PrimitiveCount:     1,
		PrimitiveArraySize: 1},
	{Identifier: MaterialRef,
		Properties: []validate.Property{
			{Identifier: Index, Type: openddl.UnsignedInt},
		},
		Primitives:         []openddl.Type{openddl.Reference},
		PrimitiveCount:     1,
		PrimitiveArraySize: 1},
	{Identifier: Transform,
		Properties: []validate.Property{
			{Identifier: Object, Type: openddl.Bool},
		},
		Primitives:         floats,
		PrimitiveCount:     1,
		PrimitiveArraySize: 16},
	{Identifier: Translation,
		Properties: []validate.Property{
			{Identifier: Kind, Type: openddl.String},
			{Identifier: Object, Type: openddl.Bool},
		},
		Primitives:     floats,
		PrimitiveCount: 1},
	{Identifier: Rotation,
		Properties: []validate.Property{
			{Identifier: Kind, Type: openddl.String},
			{Identifier: Object, Type: openddl.Bool},
		},
		Primitives:     floats,
		PrimitiveCount: 1},
	{Identifier: Scale,
		Properties: []validate.Property{
			{Identifier: Kind, Type: openddl.String},
			{Identifier: Object, Type: openddl.Bool},
		},
		Primitives:     floats,
		PrimitiveCount: 1},
	{Identifier: Node, Structures: withRef(validate.Structures{})},
	{Identifier: BoneNode, Structures: withRef(validate.Structures{})},
	{Identifier: GeometryNode,
		Properties: []validate.Property{
			{Identifier: Visible, Type: openddl.Bool},
			{Identifier: Shadow, Type: openddl.Bool},
			{Identifier: MotionBlur, Type: openddl.Bool},
		},
		Structures: withRef(validate.Structures{
			ObjectRef:   {Min: 1, Max: 1},
			MaterialRef: {},
			Morph:       {},
		})},
	{Identifier: CameraNode,
		Structures: withRef(validate.Structures{
			ObjectRef: {Min: 1, Max: 1},
		})},
	{Identifier: LightNode,
		Structures: withRef(validate.Structures{
			ObjectRef: {Min: 1, Max: 1},
		})},
	{Identifier: GeometryObject,
		Properties: []validate.Property{
			{Identifier: Visible, Type: openddl.Bool},
			{Identifier: Shadow, Type: openddl.Bool},
			{Identifier: MotionBlur, Type: openddl.Bool},
		},
		Structures: validate.Structures{
			Mesh:      {Min: 1},
			Extension: {},
		}},
	{Identifier: CameraObject,
		Structures: validate.Structures{
			Param:     {},
			Extension: {},
		}},
	{Identifier: LightObject,
		Properties: []validate.Property{
			{Identifier: TypeProp, Type: openddl.String, Required: true},
			{Identifier: Shadow, Type: openddl.Bool},
		},
		Structures: validate.Structures{
			Color:     {},
			Param:     {},
			Texture:   {},
			Atten:     {},
			Extension: {},
		}},
	{Identifier: Mesh,
		Properties: []validate.Property{
			{Identifier: Lod, Type: openddl.UnsignedInt},
			{Identifier: Primitive, Type: openddl.String},
		},
		Structures: validate.Structures{
			VertexArray: {Min: 1},
			IndexArray:  {},
			Skin:        {Max: 1},
		}},
	{Identifier: VertexArray,
		Properties: []validate.Property{
			{Identifier: Attrib, Type: openddl.String, Required: true},
			{Identifier: MorphProp, Type: openddl.UnsignedInt},
		},
		Primitives:     floats,
		PrimitiveCount: 1},
	{Identifier: IndexArray,
		Properties: []validate.Property{
			{Identifier: MaterialProp, Type: openddl.UnsignedInt},
			{Identifier: Restart, Type: openddl.UnsignedLong},
			{Identifier: Front, Type: openddl.String},
		},
		Primitives:     unsigned,
		PrimitiveCount: 1},
	{Identifier: Skin,
		Structures: validate.Structures{
			Transform:       {Max: 1},
			Skeleton:        {Min: 1, Max: 1},
			BoneCountArray:  {Min: 1, Max: 1},
			BoneIndexArray:  {Min: 1, Max: 1},
			BoneWeightArray: {Min: 1, Max: 1},
		}},
	{Identifier: Skeleton,
		Structures: validate.Structures{
			BoneRefArray: {Min: 1, Max: 1},
			Transform:    {Min: 1, Max: 1},
		}},
	{Identifier: BoneRefArray,
		Primitives:     []openddl.Type{openddl.Reference},
		PrimitiveCount: 1},
	{Identifier: BoneCountArray,
		Primitives:     unsigned,
		PrimitiveCount: 1},
	{Identifier: BoneIndexArray,
		Primitives:     unsigned,
		PrimitiveCount: 1},
	{Identifier: BoneWeightArray,
		Primitives:     floats,
		PrimitiveCount: 1},
	{Identifier: Material,
		Properties: []validate.Property{
			{Identifier: TwoSided, Type: openddl.Bool},
		},
		Structures: validate.Structures{
			Name:      {Max: 1},
			Color:     {},
			Param:     {},
			Texture:   {},
			Extension: {},
		}},
	{Identifier: Color,
		Properties: []validate.Property{
			{Identifier: Attrib, Type: openddl.String, Required: true},
		},
		Primitives:     floats,
		PrimitiveCount: 1},
	{Identifier: Param,
		Properties: []validate.Property{
			{Identifier: Attrib, Type: openddl.String, Required: true},
		},
		Primitives:         floats,
		PrimitiveCount:     1,
		PrimitiveArraySize: 1},
	{Identifier: Texture,
		Properties: []validate.Property{
			{Identifier: Attrib, Type: openddl.String, Required: true},
			{Identifier: Texcoord, Type: openddl.UnsignedInt},
		},
		Primitives:         []openddl.Type{openddl.String},
		PrimitiveCount:     1,
		PrimitiveArraySize: 1,
		Structures: validate.Structures{
			Transform:   {},
			Translation: {},
			Rotation:    {},
			Scale:       {},
			Animation:   {},
		}},
	{Identifier: Atten,
		Properties: []validate.Property{
			{Identifier: Kind, Type: openddl.String},
			{Identifier: Curve, Type: openddl.String},
		},
		Structures: validate.Structures{
			Param: {},
		}},
	{Identifier: Morph,
		Properties: []validate.Property{
			{Identifier: Index, Type: openddl.UnsignedInt},
		},
		Structures: validate.Structures{
			Name: {Max: 1},
		}},
	{Identifier: Clip,
		Properties: []validate.Property{
			{Identifier: Index, Type: openddl.UnsignedInt},
		},
		Structures: validate.Structures{
			Name:  {Max: 1},
			Param: {},
		}},
	{Identifier: Animation,
		Properties: []validate.Property{
			{Identifier: ClipProp, Type: openddl.UnsignedInt},
			{Identifier: Begin, Type: openddl.Float},
			{Identifier: End, Type: openddl.Float},
		},
		Structures: validate.Structures{
			Track: {Min: 1},
		}},
	{Identifier: Track,
		Properties: []validate.Property{
			{Identifier: Target, Type: openddl.Reference, Required: true},
		},
		Structures: validate.Structures{
			Time:  {Min: 1, Max: 1},
			Value: {Min: 1, Max: 1},
		}},
	{Identifier: Time,
		Properties: []validate.Property{
			{Identifier: Curve, Type: openddl.String},
		},
		Structures: validate.Structures{
			Key: {Min: 1},
		}},
	{Identifier: Value,
		Properties: []validate.Property{
			{Identifier: Curve, Type: openddl.String},
		},
		Structures: validate.Structures{
			Key: {Min: 1},
		}},
	{Identifier: Key,
		Properties: []validate.Property{
			{Identifier: Kind, Type: openddl.String},
		},
		Primitives:     floats,
		PrimitiveCount: 1},
	{Identifier: Extension,
		Properties: []validate.Property{
			{Identifier: Applic, Type: openddl.String},
			{Identifier: TypeProp, Type: openddl.String, Required: true},
		},
		Primitives: []openddl.Type{
			openddl.Bool,
			openddl.UnsignedByte, openddl.Byte,
			openddl.UnsignedShort, openddl.Short,
			openddl.UnsignedInt, openddl.Int,
			openddl.UnsignedLong, openddl.Long,
			openddl.Half, openddl.Float, openddl.Double,
			openddl.String, openddl.Reference,
		},
		Structures: validate.Structures{
			Extension: {},
		}},
}
