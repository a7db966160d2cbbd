package hwbuffer

import (
	"iter"
	"slices"

	"github.com/vkngwrapper/armory/rhi"
)

// VertexDataDesc builds the element list of a vertex declaration from per-stream attribute
// lists. Offsets are not provided by the caller: each attribute is packed directly after the
// previous attribute in the same stream.
type VertexDataDesc struct {
	elements []rhi.VertexElement
}

// AddElement appends an attribute to the end of its stream. An attribute with the same
// semantic and semantic index as an existing one replaces it.
func (d *VertexDataDesc) AddElement(elementType rhi.VertexElementType, semantic rhi.VertexElementSemantic, semanticIndex int, stream int, instanceStepRate int) {
	d.elements = slices.DeleteFunc(d.elements, func(e rhi.VertexElement) bool {
		return e.Semantic == semantic && e.SemanticIndex == semanticIndex
	})

	d.elements = append(d.elements, rhi.VertexElement{
		Source:           stream,
		Type:             elementType,
		Semantic:         semantic,
		SemanticIndex:    semanticIndex,
		InstanceStepRate: instanceStepRate,
	})
}

// HasElement reports whether an attribute with the semantic and semantic index was added
func (d *VertexDataDesc) HasElement(semantic rhi.VertexElementSemantic, semanticIndex int) bool {
	return slices.ContainsFunc(d.elements, func(e rhi.VertexElement) bool {
		return e.Semantic == semantic && e.SemanticIndex == semanticIndex
	})
}

// StreamCount is one more than the highest stream index used by any attribute
func (d *VertexDataDesc) StreamCount() int {
	count := 0
	for _, element := range d.elements {
		count = max(count, element.Source+1)
	}
	return count
}

// VertexStride returns the size of a single vertex in the provided stream
func (d *VertexDataDesc) VertexStride(stream int) int {
	stride := 0
	for _, element := range d.streamElements(stream) {
		stride += element.Size()
	}
	return stride
}

func (d *VertexDataDesc) streamElements(stream int) iter.Seq2[int, rhi.VertexElement] {
	return func(yield func(int, rhi.VertexElement) bool) {
		for i, element := range d.elements {
			if element.Source != stream {
				continue
			}
			if !yield(i, element) {
				return
			}
		}
	}
}

// CreateElements returns the attributes of the description with their offsets populated, in
// the order they were added
func (d *VertexDataDesc) CreateElements() []rhi.VertexElement {
	elements := make([]rhi.VertexElement, len(d.elements))
	copy(elements, d.elements)

	offsets := make(map[int]int)
	for i := range elements {
		stream := elements[i].Source
		elements[i].Offset = offsets[stream]
		offsets[stream] += elements[i].Size()
	}

	return elements
}
