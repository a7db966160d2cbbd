package rhi_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/armory/rhi"
)

func TestBufferDescValidate(t *testing.T) {
	testCases := map[string]struct {
		Desc  rhi.BufferDesc
		Valid bool
	}{
		"Standard": {
			Desc:  rhi.BufferDesc{Type: rhi.BufferTypeStandard, Format: rhi.BufferFormat32x4F, ElementCount: 64},
			Valid: true,
		},
		"StandardUnknownFormat": {
			Desc: rhi.BufferDesc{Type: rhi.BufferTypeStandard, ElementCount: 64},
		},
		"Structured": {
			Desc:  rhi.BufferDesc{Type: rhi.BufferTypeStructured, ElementSize: 48, ElementCount: 16},
			Valid: true,
		},
		"StructuredNoElementSize": {
			Desc: rhi.BufferDesc{Type: rhi.BufferTypeStructured, ElementCount: 16},
		},
		"ZeroElements": {
			Desc: rhi.BufferDesc{Type: rhi.BufferTypeStructured, ElementSize: 48},
		},
		"UnknownType": {
			Desc: rhi.BufferDesc{Type: rhi.BufferType(7), ElementSize: 4, ElementCount: 1},
		},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			err := testCase.Desc.Validate()
			if testCase.Valid {
				require.NoError(t, err)
				return
			}

			require.True(t, errors.Is(err, resutils.InvalidDescriptorError))
		})
	}
}

func TestBufferDescStride(t *testing.T) {
	require.Equal(t, 16, rhi.BufferDesc{Type: rhi.BufferTypeStandard, Format: rhi.BufferFormat32x4U}.Stride())
	require.Equal(t, 48, rhi.BufferDesc{Type: rhi.BufferTypeStructured, Format: rhi.BufferFormat32x4U, ElementSize: 48}.Stride())
}

func TestIndexAndVertexBufferDescValidate(t *testing.T) {
	require.NoError(t, rhi.IndexBufferDesc{Type: rhi.IndexType32, IndexCount: 3}.Validate())
	require.Error(t, rhi.IndexBufferDesc{Type: rhi.IndexType(5), IndexCount: 3}.Validate())
	require.Error(t, rhi.IndexBufferDesc{Type: rhi.IndexType16}.Validate())
	require.Equal(t, 2, rhi.IndexType16.Size())

	require.NoError(t, rhi.VertexBufferDesc{VertexSize: 32, VertexCount: 3}.Validate())
	require.Error(t, rhi.VertexBufferDesc{VertexSize: 0, VertexCount: 3}.Validate())
}

func TestVertexElementHash(t *testing.T) {
	position := rhi.VertexElement{Type: rhi.VertexElementFloat3, Semantic: rhi.VertexSemanticPosition}
	samePosition := rhi.VertexElement{Type: rhi.VertexElementFloat3, Semantic: rhi.VertexSemanticPosition}
	texCoord := rhi.VertexElement{Offset: 12, Type: rhi.VertexElementFloat2, Semantic: rhi.VertexSemanticTexCoord}

	require.Equal(t, position, samePosition)
	require.Equal(t, position.Hash(), samePosition.Hash())
	require.NotEqual(t, position.Hash(), texCoord.Hash())

	secondSet := texCoord
	secondSet.SemanticIndex = 1
	require.NotEqual(t, texCoord.Hash(), secondSet.Hash())

	require.Equal(t, 12, position.Size())
	require.Equal(t, "VertexSemanticTexCoord", rhi.VertexSemanticTexCoord.String())
}
