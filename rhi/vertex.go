package rhi

import (
	"fmt"

	"github.com/vkngwrapper/armory/resutils"
)

// VertexElementType is the data layout of a single vertex attribute
type VertexElementType int32

const (
	VertexElementFloat1 VertexElementType = iota
	VertexElementFloat2
	VertexElementFloat3
	VertexElementFloat4
	// VertexElementColor is a packed 8-bit RGBA color
	VertexElementColor
	VertexElementColorARGB
	VertexElementColorABGR
	VertexElementUByte4
	VertexElementUByte4Norm
	VertexElementShort1
	VertexElementShort2
	VertexElementShort4
	VertexElementUShort1
	VertexElementUShort2
	VertexElementUShort4
	VertexElementInt1
	VertexElementInt2
	VertexElementInt3
	VertexElementInt4
	VertexElementUInt1
	VertexElementUInt2
	VertexElementUInt3
	VertexElementUInt4

	vertexElementTypeCount
)

// VertexElementTypeCount is the number of known vertex element types
const VertexElementTypeCount = int(vertexElementTypeCount)

var vertexElementTypes = [vertexElementTypeCount]struct {
	name string
	size int
}{
	VertexElementFloat1:     {"VertexElementFloat1", 4},
	VertexElementFloat2:     {"VertexElementFloat2", 8},
	VertexElementFloat3:     {"VertexElementFloat3", 12},
	VertexElementFloat4:     {"VertexElementFloat4", 16},
	VertexElementColor:      {"VertexElementColor", 4},
	VertexElementColorARGB:  {"VertexElementColorARGB", 4},
	VertexElementColorABGR:  {"VertexElementColorABGR", 4},
	VertexElementUByte4:     {"VertexElementUByte4", 4},
	VertexElementUByte4Norm: {"VertexElementUByte4Norm", 4},
	VertexElementShort1:     {"VertexElementShort1", 2},
	VertexElementShort2:     {"VertexElementShort2", 4},
	VertexElementShort4:     {"VertexElementShort4", 8},
	VertexElementUShort1:    {"VertexElementUShort1", 2},
	VertexElementUShort2:    {"VertexElementUShort2", 4},
	VertexElementUShort4:    {"VertexElementUShort4", 8},
	VertexElementInt1:       {"VertexElementInt1", 4},
	VertexElementInt2:       {"VertexElementInt2", 8},
	VertexElementInt3:       {"VertexElementInt3", 12},
	VertexElementInt4:       {"VertexElementInt4", 16},
	VertexElementUInt1:      {"VertexElementUInt1", 4},
	VertexElementUInt2:      {"VertexElementUInt2", 8},
	VertexElementUInt3:      {"VertexElementUInt3", 12},
	VertexElementUInt4:      {"VertexElementUInt4", 16},
}

func (t VertexElementType) String() string {
	if t < 0 || t >= vertexElementTypeCount {
		return fmt.Sprintf("VertexElementType(%d)", int32(t))
	}
	return vertexElementTypes[t].name
}

// Size returns the size in bytes of one attribute of this type, or 0 if the type is unknown
func (t VertexElementType) Size() int {
	if t < 0 || t >= vertexElementTypeCount {
		return 0
	}
	return vertexElementTypes[t].size
}

// VertexElementSemantic is the meaning a shader assigns to a vertex attribute
type VertexElementSemantic int32

const (
	VertexSemanticPosition VertexElementSemantic = iota + 1
	VertexSemanticBlendWeights
	VertexSemanticBlendIndices
	VertexSemanticNormal
	VertexSemanticColor
	VertexSemanticTexCoord
	VertexSemanticBitangent
	VertexSemanticTangent
	VertexSemanticPositionTransformed
	VertexSemanticPointSize
)

var vertexSemanticNames = [...]string{
	VertexSemanticPosition:            "VertexSemanticPosition",
	VertexSemanticBlendWeights:        "VertexSemanticBlendWeights",
	VertexSemanticBlendIndices:        "VertexSemanticBlendIndices",
	VertexSemanticNormal:              "VertexSemanticNormal",
	VertexSemanticColor:               "VertexSemanticColor",
	VertexSemanticTexCoord:            "VertexSemanticTexCoord",
	VertexSemanticBitangent:           "VertexSemanticBitangent",
	VertexSemanticTangent:             "VertexSemanticTangent",
	VertexSemanticPositionTransformed: "VertexSemanticPositionTransformed",
	VertexSemanticPointSize:           "VertexSemanticPointSize",
}

func (s VertexElementSemantic) String() string {
	if s <= 0 || int(s) >= len(vertexSemanticNames) {
		return fmt.Sprintf("VertexElementSemantic(%d)", int32(s))
	}
	return vertexSemanticNames[s]
}

// VertexElement is a single attribute in a vertex declaration. It is a comparable value:
// two elements are equal when every field is equal.
type VertexElement struct {
	// Source is the index of the vertex stream the attribute is read from
	Source int
	// Offset is the byte offset of the attribute from the start of the vertex in its stream
	Offset   int
	Type     VertexElementType
	Semantic VertexElementSemantic
	// SemanticIndex distinguishes several attributes with the same semantic, such as multiple
	// texture coordinate sets
	SemanticIndex int
	// InstanceStepRate is the number of instances drawn before the attribute advances. 0 means
	// the attribute advances per vertex.
	InstanceStepRate int
}

// Size returns the size in bytes of the attribute
func (e VertexElement) Size() int {
	return e.Type.Size()
}

// Hash combines every field of the element. Equal elements always hash equally.
func (e VertexElement) Hash() uint64 {
	var hash uint64
	hash = resutils.HashCombine(hash, uint64(e.Source))
	hash = resutils.HashCombine(hash, uint64(e.Offset))
	hash = resutils.HashCombine(hash, uint64(e.Type))
	hash = resutils.HashCombine(hash, uint64(e.Semantic))
	hash = resutils.HashCombine(hash, uint64(e.SemanticIndex))
	hash = resutils.HashCombine(hash, uint64(e.InstanceStepRate))
	return hash
}
