package vulkan

import (
	"github.com/vkngwrapper/armory/rhi"
	"github.com/vkngwrapper/core/v2/core1_0"
)

var sampleCounts = map[int]core1_0.SampleCountFlags{
	0:  core1_0.Samples1,
	1:  core1_0.Samples1,
	2:  core1_0.Samples2,
	4:  core1_0.Samples4,
	8:  core1_0.Samples8,
	16: core1_0.Samples16,
	32: core1_0.Samples32,
	64: core1_0.Samples64,
}

// SampleCount returns the Vulkan sample count flag for a multisample count. Unsupported counts
// fall back to a single sample.
func SampleCount(samples int) core1_0.SampleCountFlags {
	flags, ok := sampleCounts[samples]
	if !ok {
		return core1_0.Samples1
	}
	return flags
}

var imageTypes = map[rhi.TextureType]core1_0.ImageType{
	rhi.TextureType1D:   core1_0.ImageType1D,
	rhi.TextureType2D:   core1_0.ImageType2D,
	rhi.TextureType3D:   core1_0.ImageType3D,
	rhi.TextureTypeCube: core1_0.ImageType2D,
}

// ImageType returns the Vulkan image type backing a texture type. Cube textures are 2D images
// with six layers per cube.
func ImageType(textureType rhi.TextureType) core1_0.ImageType {
	imageType, ok := imageTypes[textureType]
	if !ok {
		return core1_0.ImageType2D
	}
	return imageType
}

var imageUsages = []struct {
	usage   rhi.TextureUsage
	vkUsage core1_0.ImageUsageFlags
}{
	{rhi.TextureUsageRenderTarget, core1_0.ImageUsageColorAttachment},
	{rhi.TextureUsageDepthStencil, core1_0.ImageUsageDepthStencilAttachment},
	{rhi.TextureUsageLoadStore, core1_0.ImageUsageStorage},
}

// ImageUsage returns the Vulkan usage flags for a texture. Every texture can be sampled and
// be the source or destination of a transfer.
func ImageUsage(usage rhi.TextureUsage) core1_0.ImageUsageFlags {
	flags := core1_0.ImageUsageSampled | core1_0.ImageUsageTransferSrc | core1_0.ImageUsageTransferDst
	for _, mapping := range imageUsages {
		if usage&mapping.usage != 0 {
			flags |= mapping.vkUsage
		}
	}
	return flags
}

// ImageAspect returns the aspects a full view of an image in this format covers
func ImageAspect(format rhi.PixelFormat) core1_0.ImageAspectFlags {
	switch format {
	case rhi.PixelFormatD24S8, rhi.PixelFormatD32S8X24:
		return core1_0.ImageAspectDepth | core1_0.ImageAspectStencil
	case rhi.PixelFormatD16, rhi.PixelFormatD32:
		return core1_0.ImageAspectDepth
	}
	return core1_0.ImageAspectColor
}

// ArrayLayers returns the number of image layers a texture needs
func ArrayLayers(desc rhi.TextureDesc) int {
	layers := max(desc.ArraySlices, 1)
	if desc.Type == rhi.TextureTypeCube {
		layers *= 6
	}
	return layers
}

// ImageCreateInfo describes the optimally tiled image backing a texture
func ImageCreateInfo(desc rhi.TextureDesc) core1_0.ImageCreateInfo {
	var flags core1_0.ImageCreateFlags
	if desc.Type == rhi.TextureTypeCube {
		flags |= core1_0.ImageCreateCubeCompatible
	}

	return core1_0.ImageCreateInfo{
		Flags:     flags,
		ImageType: ImageType(desc.Type),
		Format:    PixelFormat(desc.Format, desc.HWGamma),
		Extent: core1_0.Extent3D{
			Width:  desc.Width,
			Height: desc.Height,
			Depth:  max(desc.Depth, 1),
		},
		MipLevels:     max(desc.MipLevels, 1),
		ArrayLayers:   ArrayLayers(desc),
		Samples:       SampleCount(desc.Samples),
		Tiling:        core1_0.ImageTilingOptimal,
		Usage:         ImageUsage(desc.Usage),
		SharingMode:   core1_0.SharingModeExclusive,
		InitialLayout: core1_0.ImageLayoutUndefined,
	}
}

// BufferCreateInfo describes the storage buffer backing a buffer descriptor
func BufferCreateInfo(desc rhi.BufferDesc) core1_0.BufferCreateInfo {
	usage := core1_0.BufferUsageTransferSrc | core1_0.BufferUsageTransferDst
	if desc.Type == rhi.BufferTypeStructured || desc.RandomGPUWrite {
		usage |= core1_0.BufferUsageStorageBuffer
	}
	if desc.Type == rhi.BufferTypeStandard {
		usage |= core1_0.BufferUsageUniformTexelBuffer
		if desc.RandomGPUWrite {
			usage |= core1_0.BufferUsageStorageTexelBuffer
		}
	}

	return core1_0.BufferCreateInfo{
		Size:        desc.Stride() * desc.ElementCount,
		Usage:       usage,
		SharingMode: core1_0.SharingModeExclusive,
	}
}
