package hwbuffer

import (
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/armory/rhi"
)

// VertexDeclarationKey identifies a vertex declaration by its ordered list of elements. Two keys
// are equal only if they hold equal elements in the same order.
type VertexDeclarationKey struct {
	elements []rhi.VertexElement
	hash     uint64
}

// NewVertexDeclarationKey builds a key from a copy of elements, so later changes to the
// caller's slice do not affect the key
func NewVertexDeclarationKey(elements []rhi.VertexElement) VertexDeclarationKey {
	key := VertexDeclarationKey{
		elements: make([]rhi.VertexElement, len(elements)),
	}
	copy(key.elements, elements)

	for _, element := range key.elements {
		key.hash = resutils.HashCombine(key.hash, element.Hash())
	}

	return key
}

func (k VertexDeclarationKey) Hash() uint64 {
	return k.hash
}

func (k VertexDeclarationKey) Len() int {
	return len(k.elements)
}

func (k VertexDeclarationKey) Equal(other VertexDeclarationKey) bool {
	if k.hash != other.hash || len(k.elements) != len(other.elements) {
		return false
	}

	for i := range k.elements {
		if k.elements[i] != other.elements[i] {
			return false
		}
	}

	return true
}
