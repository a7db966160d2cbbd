// Package vulkan translates the backend-independent descriptors in rhi and subresource into the
// vkngwrapper core types a Vulkan backend passes to the driver.
//
// Every lookup table in this package is a package-level value, fully built before any function
// in the package can run.
package vulkan

import (
	"github.com/vkngwrapper/armory/rhi"
	"github.com/vkngwrapper/core/v2/core1_0"
)

type pixelFormat struct {
	linear core1_0.Format
	srgb   core1_0.Format
}

var pixelFormats = [rhi.PixelFormatCount]pixelFormat{
	rhi.PixelFormatUnknown:  {core1_0.FormatUndefined, core1_0.FormatUndefined},
	rhi.PixelFormatR8:       {core1_0.FormatR8UnsignedNormalized, core1_0.FormatR8SRGB},
	rhi.PixelFormatRG8:      {core1_0.FormatR8G8UnsignedNormalized, core1_0.FormatR8G8SRGB},
	rhi.PixelFormatRGBA8:    {core1_0.FormatR8G8B8A8UnsignedNormalized, core1_0.FormatR8G8B8A8SRGB},
	rhi.PixelFormatBGRA8:    {core1_0.FormatB8G8R8A8UnsignedNormalized, core1_0.FormatB8G8R8A8SRGB},
	rhi.PixelFormatR16F:     {core1_0.FormatR16SignedFloat, core1_0.FormatR16SignedFloat},
	rhi.PixelFormatRG16F:    {core1_0.FormatR16G16SignedFloat, core1_0.FormatR16G16SignedFloat},
	rhi.PixelFormatRGBA16F:  {core1_0.FormatR16G16B16A16SignedFloat, core1_0.FormatR16G16B16A16SignedFloat},
	rhi.PixelFormatR32F:     {core1_0.FormatR32SignedFloat, core1_0.FormatR32SignedFloat},
	rhi.PixelFormatRG32F:    {core1_0.FormatR32G32SignedFloat, core1_0.FormatR32G32SignedFloat},
	rhi.PixelFormatRGB32F:   {core1_0.FormatR32G32B32SignedFloat, core1_0.FormatR32G32B32SignedFloat},
	rhi.PixelFormatRGBA32F:  {core1_0.FormatR32G32B32A32SignedFloat, core1_0.FormatR32G32B32A32SignedFloat},
	rhi.PixelFormatRG11B10F: {core1_0.FormatB10G11R11UnsignedFloatPacked, core1_0.FormatB10G11R11UnsignedFloatPacked},
	rhi.PixelFormatRGB10A2:  {core1_0.FormatA2B10G10R10UnsignedNormalizedPacked, core1_0.FormatA2B10G10R10UnsignedNormalizedPacked},
	rhi.PixelFormatBC1:      {core1_0.FormatBC1_RGBUnsignedNormalized, core1_0.FormatBC1_RGBsRGB},
	rhi.PixelFormatBC3:      {core1_0.FormatBC3_UnsignedNormalized, core1_0.FormatBC3_sRGB},
	rhi.PixelFormatBC4:      {core1_0.FormatBC4_SignedNormalized, core1_0.FormatBC4_SignedNormalized},
	rhi.PixelFormatBC5:      {core1_0.FormatBC5_UnsignedNormalized, core1_0.FormatBC5_UnsignedNormalized},
	rhi.PixelFormatBC7:      {core1_0.FormatBC7_UnsignedNormalized, core1_0.FormatBC7_sRGB},
	rhi.PixelFormatD16:      {core1_0.FormatD16UnsignedNormalized, core1_0.FormatD16UnsignedNormalized},
	rhi.PixelFormatD32:      {core1_0.FormatD32SignedFloat, core1_0.FormatD32SignedFloat},
	rhi.PixelFormatD24S8:    {core1_0.FormatD24UnsignedNormalizedS8UnsignedInt, core1_0.FormatD24UnsignedNormalizedS8UnsignedInt},
	rhi.PixelFormatD32S8X24: {core1_0.FormatD32SignedFloatS8UnsignedInt, core1_0.FormatD32SignedFloatS8UnsignedInt},
}

// PixelFormat returns the Vulkan format for a pixel format. srgb selects the sRGB variant for
// formats that have one, and is ignored otherwise. Unknown formats map to FormatUndefined.
func PixelFormat(format rhi.PixelFormat, srgb bool) core1_0.Format {
	if format < 0 || int(format) >= rhi.PixelFormatCount {
		return core1_0.FormatUndefined
	}

	if srgb {
		return pixelFormats[format].srgb
	}
	return pixelFormats[format].linear
}

var bufferFormats = [rhi.BufferFormatCount]core1_0.Format{
	rhi.BufferFormatUnknown: core1_0.FormatUndefined,
	rhi.BufferFormat16x1F:   core1_0.FormatR16SignedFloat,
	rhi.BufferFormat16x2F:   core1_0.FormatR16G16SignedFloat,
	rhi.BufferFormat16x4F:   core1_0.FormatR16G16B16A16SignedFloat,
	rhi.BufferFormat32x1F:   core1_0.FormatR32SignedFloat,
	rhi.BufferFormat32x2F:   core1_0.FormatR32G32SignedFloat,
	rhi.BufferFormat32x3F:   core1_0.FormatR32G32B32SignedFloat,
	rhi.BufferFormat32x4F:   core1_0.FormatR32G32B32A32SignedFloat,
	rhi.BufferFormat8x1:     core1_0.FormatR8UnsignedNormalized,
	rhi.BufferFormat8x2:     core1_0.FormatR8G8UnsignedNormalized,
	rhi.BufferFormat8x4:     core1_0.FormatR8G8B8A8UnsignedNormalized,
	rhi.BufferFormat16x1:    core1_0.FormatR16UnsignedNormalized,
	rhi.BufferFormat16x2:    core1_0.FormatR16G16UnsignedNormalized,
	rhi.BufferFormat16x4:    core1_0.FormatR16G16B16A16UnsignedNormalized,
	rhi.BufferFormat32x1S:   core1_0.FormatR32SignedInt,
	rhi.BufferFormat32x2S:   core1_0.FormatR32G32SignedInt,
	rhi.BufferFormat32x3S:   core1_0.FormatR32G32B32SignedInt,
	rhi.BufferFormat32x4S:   core1_0.FormatR32G32B32A32SignedInt,
	rhi.BufferFormat32x1U:   core1_0.FormatR32UnsignedInt,
	rhi.BufferFormat32x2U:   core1_0.FormatR32G32UnsignedInt,
	rhi.BufferFormat32x3U:   core1_0.FormatR32G32B32UnsignedInt,
	rhi.BufferFormat32x4U:   core1_0.FormatR32G32B32A32UnsignedInt,
}

// BufferFormat returns the Vulkan format of the elements of a standard buffer
func BufferFormat(format rhi.BufferFormat) core1_0.Format {
	if format < 0 || int(format) >= rhi.BufferFormatCount {
		return core1_0.FormatUndefined
	}
	return bufferFormats[format]
}

var vertexFormats = [rhi.VertexElementTypeCount]core1_0.Format{
	rhi.VertexElementFloat1:     core1_0.FormatR32SignedFloat,
	rhi.VertexElementFloat2:     core1_0.FormatR32G32SignedFloat,
	rhi.VertexElementFloat3:     core1_0.FormatR32G32B32SignedFloat,
	rhi.VertexElementFloat4:     core1_0.FormatR32G32B32A32SignedFloat,
	rhi.VertexElementColor:      core1_0.FormatR8G8B8A8UnsignedNormalized,
	rhi.VertexElementColorARGB:  core1_0.FormatR8G8B8A8UnsignedNormalized,
	rhi.VertexElementColorABGR:  core1_0.FormatR8G8B8A8UnsignedNormalized,
	rhi.VertexElementUByte4:     core1_0.FormatR8G8B8A8UnsignedInt,
	rhi.VertexElementUByte4Norm: core1_0.FormatR8G8B8A8UnsignedNormalized,
	rhi.VertexElementShort1:     core1_0.FormatR16SignedInt,
	rhi.VertexElementShort2:     core1_0.FormatR16G16SignedInt,
	rhi.VertexElementShort4:     core1_0.FormatR16G16B16A16SignedInt,
	rhi.VertexElementUShort1:    core1_0.FormatR16UnsignedInt,
	rhi.VertexElementUShort2:    core1_0.FormatR16G16UnsignedInt,
	rhi.VertexElementUShort4:    core1_0.FormatR16G16B16A16UnsignedInt,
	rhi.VertexElementInt1:       core1_0.FormatR32SignedInt,
	rhi.VertexElementInt2:       core1_0.FormatR32G32SignedInt,
	rhi.VertexElementInt3:       core1_0.FormatR32G32B32SignedInt,
	rhi.VertexElementInt4:       core1_0.FormatR32G32B32A32SignedInt,
	rhi.VertexElementUInt1:      core1_0.FormatR32UnsignedInt,
	rhi.VertexElementUInt2:      core1_0.FormatR32G32UnsignedInt,
	rhi.VertexElementUInt3:      core1_0.FormatR32G32B32UnsignedInt,
	rhi.VertexElementUInt4:      core1_0.FormatR32G32B32A32UnsignedInt,
}

// VertexFormat returns the Vulkan format of a vertex attribute
func VertexFormat(elementType rhi.VertexElementType) core1_0.Format {
	if elementType < 0 || int(elementType) >= rhi.VertexElementTypeCount {
		return core1_0.FormatUndefined
	}
	return vertexFormats[elementType]
}

var indexTypes = map[rhi.IndexType]core1_0.IndexType{
	rhi.IndexType16: core1_0.IndexTypeUInt16,
	rhi.IndexType32: core1_0.IndexTypeUInt32,
}

// IndexType returns the Vulkan index type. Unknown types are treated as 32-bit indices.
func IndexType(indexType rhi.IndexType) core1_0.IndexType {
	vkType, ok := indexTypes[indexType]
	if !ok {
		return core1_0.IndexTypeUInt32
	}
	return vkType
}

// ClosestSupportedPixelFormat returns format if supported reports that the device can use it
// for usage, or otherwise the format the device is guaranteed to support that best preserves
// format's contents. Depth formats fall back to another depth format with the same stencil
// capability, 16-bit color formats to RGBA16F, and everything else to RGBA8.
func ClosestSupportedPixelFormat(format rhi.PixelFormat, usage rhi.TextureUsage, srgb bool, supported func(format core1_0.Format, usage rhi.TextureUsage) bool) rhi.PixelFormat {
	if supported(PixelFormat(format, srgb), usage) {
		return format
	}

	if usage&rhi.TextureUsageDepthStencil != 0 {
		if format == rhi.PixelFormatD24S8 || format == rhi.PixelFormatD32S8X24 {
			if supported(PixelFormat(rhi.PixelFormatD32S8X24, false), usage) {
				return rhi.PixelFormatD32S8X24
			}
			return rhi.PixelFormatD24S8
		}
		return rhi.PixelFormatD16
	}

	switch format {
	case rhi.PixelFormatR16F, rhi.PixelFormatRG16F:
		return rhi.PixelFormatRGBA16F
	}

	return rhi.PixelFormatRGBA8
}
