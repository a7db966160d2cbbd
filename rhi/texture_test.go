package rhi_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/armory/rhi"
)

func validTexture() rhi.TextureDesc {
	return rhi.TextureDesc{
		Type:    rhi.TextureType2D,
		Format:  rhi.PixelFormatRGBA8,
		Width:   256,
		Height:  256,
		Depth:   1,
		Usage:   rhi.TextureUsageRenderTarget,
		Samples: 1,
	}
}

func TestTextureDescValidate(t *testing.T) {
	testCases := map[string]struct {
		Modify func(d *rhi.TextureDesc)
		Valid  bool
	}{
		"Valid2D": {
			Modify: func(d *rhi.TextureDesc) {},
			Valid:  true,
		},
		"ZeroSamples": {
			Modify: func(d *rhi.TextureDesc) { d.Samples = 0 },
			Valid:  true,
		},
		"Multisampled": {
			Modify: func(d *rhi.TextureDesc) { d.Samples = 8 },
			Valid:  true,
		},
		"SamplesNotPow2": {
			Modify: func(d *rhi.TextureDesc) { d.Samples = 3 },
		},
		"TooManySamples": {
			Modify: func(d *rhi.TextureDesc) { d.Samples = 128 },
		},
		"ZeroWidth": {
			Modify: func(d *rhi.TextureDesc) { d.Width = 0 },
		},
		"NegativeHeight": {
			Modify: func(d *rhi.TextureDesc) { d.Height = -4 },
		},
		"UnknownFormat": {
			Modify: func(d *rhi.TextureDesc) { d.Format = rhi.PixelFormatUnknown },
		},
		"DepthOn2D": {
			Modify: func(d *rhi.TextureDesc) { d.Depth = 4 },
		},
		"Valid3D": {
			Modify: func(d *rhi.TextureDesc) {
				d.Type = rhi.TextureType3D
				d.Depth = 16
				d.Usage = rhi.TextureUsageLoadStore
			},
			Valid: true,
		},
		"Multisampled3D": {
			Modify: func(d *rhi.TextureDesc) {
				d.Type = rhi.TextureType3D
				d.Samples = 4
			},
		},
		"CubeNotSquare": {
			Modify: func(d *rhi.TextureDesc) {
				d.Type = rhi.TextureTypeCube
				d.Height = 128
			},
		},
		"ValidCube": {
			Modify: func(d *rhi.TextureDesc) { d.Type = rhi.TextureTypeCube },
			Valid:  true,
		},
		"DepthStencilColorFormat": {
			Modify: func(d *rhi.TextureDesc) { d.Usage = rhi.TextureUsageDepthStencil },
		},
		"DepthStencil": {
			Modify: func(d *rhi.TextureDesc) {
				d.Usage = rhi.TextureUsageDepthStencil
				d.Format = rhi.PixelFormatD32S8X24
			},
			Valid: true,
		},
		"RenderTargetDepthFormat": {
			Modify: func(d *rhi.TextureDesc) { d.Format = rhi.PixelFormatD24S8 },
		},
		"RenderTargetCompressed": {
			Modify: func(d *rhi.TextureDesc) { d.Format = rhi.PixelFormatBC7 },
		},
		"BothAttachments": {
			Modify: func(d *rhi.TextureDesc) { d.Usage = rhi.TextureUsageAttachmentMask },
		},
		"UnknownType": {
			Modify: func(d *rhi.TextureDesc) { d.Type = rhi.TextureType(12) },
		},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			desc := validTexture()
			testCase.Modify(&desc)

			err := desc.Validate()
			if testCase.Valid {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, errors.Is(err, resutils.InvalidDescriptorError))
		})
	}
}

func TestPixelFormatProperties(t *testing.T) {
	require.True(t, rhi.PixelFormatD16.IsDepth())
	require.False(t, rhi.PixelFormatD16.IsCompressed())
	require.True(t, rhi.PixelFormatBC1.IsCompressed())
	require.False(t, rhi.PixelFormatRGBA8.IsDepth())
	require.Equal(t, 4, rhi.PixelFormatRGBA8.BytesPerPixel())
	require.Equal(t, 0, rhi.PixelFormatBC3.BytesPerPixel())
	require.False(t, rhi.PixelFormat(-1).IsDepth())

	require.Equal(t, "PixelFormatRGBA16F", rhi.PixelFormatRGBA16F.String())
	require.Equal(t, "PixelFormat(900)", rhi.PixelFormat(900).String())
}

func TestTextureUsageString(t *testing.T) {
	require.Equal(t, "TextureUsageRenderTarget", rhi.TextureUsageRenderTarget.String())
	require.Equal(t, "TextureType3D", rhi.TextureType3D.String())
}
