package hwbuffer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/armory/hwbuffer"
	"github.com/vkngwrapper/armory/rhi"
)

func TestVertexDataDescOffsets(t *testing.T) {
	desc := &hwbuffer.VertexDataDesc{}
	desc.AddElement(rhi.VertexElementFloat3, rhi.VertexSemanticPosition, 0, 0, 0)
	desc.AddElement(rhi.VertexElementFloat4, rhi.VertexSemanticTexCoord, 1, 1, 1)
	desc.AddElement(rhi.VertexElementColor, rhi.VertexSemanticColor, 0, 0, 0)
	desc.AddElement(rhi.VertexElementFloat2, rhi.VertexSemanticTexCoord, 0, 0, 0)

	require.Equal(t, []rhi.VertexElement{
		{Source: 0, Offset: 0, Type: rhi.VertexElementFloat3, Semantic: rhi.VertexSemanticPosition},
		{Source: 1, Offset: 0, Type: rhi.VertexElementFloat4, Semantic: rhi.VertexSemanticTexCoord, SemanticIndex: 1, InstanceStepRate: 1},
		{Source: 0, Offset: 12, Type: rhi.VertexElementColor, Semantic: rhi.VertexSemanticColor},
		{Source: 0, Offset: 16, Type: rhi.VertexElementFloat2, Semantic: rhi.VertexSemanticTexCoord},
	}, desc.CreateElements())

	require.Equal(t, 2, desc.StreamCount())
	require.Equal(t, 24, desc.VertexStride(0))
	require.Equal(t, 16, desc.VertexStride(1))
	require.Equal(t, 0, desc.VertexStride(2))
}

func TestVertexDataDescReplacesSemantic(t *testing.T) {
	desc := &hwbuffer.VertexDataDesc{}
	desc.AddElement(rhi.VertexElementFloat3, rhi.VertexSemanticNormal, 0, 0, 0)
	desc.AddElement(rhi.VertexElementFloat3, rhi.VertexSemanticPosition, 0, 0, 0)
	desc.AddElement(rhi.VertexElementUByte4Norm, rhi.VertexSemanticNormal, 0, 0, 0)

	require.True(t, desc.HasElement(rhi.VertexSemanticNormal, 0))
	require.False(t, desc.HasElement(rhi.VertexSemanticNormal, 1))
	require.Equal(t, []rhi.VertexElement{
		{Type: rhi.VertexElementFloat3, Semantic: rhi.VertexSemanticPosition},
		{Offset: 12, Type: rhi.VertexElementUByte4Norm, Semantic: rhi.VertexSemanticNormal},
	}, desc.CreateElements())
}

func TestVertexDeclarationKey(t *testing.T) {
	elements := []rhi.VertexElement{
		{Type: rhi.VertexElementFloat3, Semantic: rhi.VertexSemanticPosition},
		{Offset: 12, Type: rhi.VertexElementFloat3, Semantic: rhi.VertexSemanticNormal},
	}

	key := hwbuffer.NewVertexDeclarationKey(elements)
	same := hwbuffer.NewVertexDeclarationKey([]rhi.VertexElement{elements[0], elements[1]})
	reversed := hwbuffer.NewVertexDeclarationKey([]rhi.VertexElement{elements[1], elements[0]})
	prefix := hwbuffer.NewVertexDeclarationKey(elements[:1])

	require.True(t, key.Equal(same))
	require.Equal(t, key.Hash(), same.Hash())
	require.False(t, key.Equal(reversed))
	require.NotEqual(t, key.Hash(), reversed.Hash())
	require.False(t, key.Equal(prefix))
	require.Equal(t, 2, key.Len())

	elements[0].Semantic = rhi.VertexSemanticTangent
	require.True(t, key.Equal(same))
}
