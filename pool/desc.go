package pool

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/armory/rhi"
)

// TextureDesc requests a texture from a Pool. Build it with Texture2D, Texture3D or TextureCube.
type TextureDesc struct {
	Type    rhi.TextureType
	Format  rhi.PixelFormat
	Width   int
	Height  int
	Depth   int
	Usage   rhi.TextureUsage
	Samples int
	HWGamma bool
}

// Texture2D describes a 2D texture. samples is the multisample count, where 0 and 1 both
// mean no multisampling. hwGamma requests hardware sRGB conversion.
func Texture2D(format rhi.PixelFormat, width, height int, usage rhi.TextureUsage, samples int, hwGamma bool) TextureDesc {
	return TextureDesc{
		Type:    rhi.TextureType2D,
		Format:  format,
		Width:   width,
		Height:  height,
		Depth:   1,
		Usage:   usage,
		Samples: samples,
		HWGamma: hwGamma,
	}
}

func Texture3D(format rhi.PixelFormat, width, height, depth int, usage rhi.TextureUsage) TextureDesc {
	return TextureDesc{
		Type:    rhi.TextureType3D,
		Format:  format,
		Width:   width,
		Height:  height,
		Depth:   depth,
		Usage:   usage,
		Samples: 1,
	}
}

func TextureCube(format rhi.PixelFormat, width, height int, usage rhi.TextureUsage) TextureDesc {
	return TextureDesc{
		Type:    rhi.TextureTypeCube,
		Format:  format,
		Width:   width,
		Height:  height,
		Depth:   1,
		Usage:   usage,
		Samples: 1,
	}
}

func (d TextureDesc) textureDesc() rhi.TextureDesc {
	return rhi.TextureDesc{
		Type:        d.Type,
		Format:      d.Format,
		Width:       d.Width,
		Height:      d.Height,
		Depth:       d.Depth,
		MipLevels:   1,
		ArraySlices: 1,
		Usage:       d.Usage,
		HWGamma:     d.HWGamma,
		Samples:     normalizeSamples(d.Samples),
	}
}

func (d TextureDesc) Validate() error {
	if d.Type != rhi.TextureType2D && d.Type != rhi.TextureType3D && d.Type != rhi.TextureTypeCube {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "pools cannot hold textures of type %s", d.Type)
	}

	return d.textureDesc().Validate()
}

func normalizeSamples(samples int) int {
	if samples == 0 {
		return 1
	}
	return samples
}

// matchTexture reports whether an existing texture can serve a request. The existing texture
// may have been created with more usage flags than requested.
func matchTexture(props rhi.TextureDesc, desc TextureDesc) bool {
	if props.Type != desc.Type ||
		props.Format != desc.Format ||
		props.Width != desc.Width ||
		props.Height != desc.Height ||
		props.Usage&desc.Usage != desc.Usage {
		return false
	}

	switch desc.Type {
	case rhi.TextureType2D:
		return props.HWGamma == desc.HWGamma && normalizeSamples(props.Samples) == normalizeSamples(desc.Samples)
	case rhi.TextureType3D:
		return props.Depth == desc.Depth
	case rhi.TextureTypeCube:
		return true
	}

	return false
}

// BufferDesc requests a storage buffer from a Pool. Build it with StandardBuffer or
// StructuredBuffer.
type BufferDesc struct {
	Type         rhi.BufferType
	Format       rhi.BufferFormat
	ElementSize  int
	ElementCount int
}

// StandardBuffer describes a buffer of typed elements
func StandardBuffer(format rhi.BufferFormat, elementCount int) BufferDesc {
	return BufferDesc{
		Type:         rhi.BufferTypeStandard,
		Format:       format,
		ElementCount: elementCount,
	}
}

// StructuredBuffer describes a buffer of opaque elements of elementSize bytes
func StructuredBuffer(elementSize int, elementCount int) BufferDesc {
	return BufferDesc{
		Type:         rhi.BufferTypeStructured,
		Format:       rhi.BufferFormatUnknown,
		ElementSize:  elementSize,
		ElementCount: elementCount,
	}
}

func (d BufferDesc) bufferDesc() rhi.BufferDesc {
	return rhi.BufferDesc{
		Type:           d.Type,
		Format:         d.Format,
		ElementSize:    d.ElementSize,
		ElementCount:   d.ElementCount,
		Usage:          rhi.BufferUsageLoadStore,
		RandomGPUWrite: true,
	}
}

func (d BufferDesc) Validate() error {
	return d.bufferDesc().Validate()
}

func matchBuffer(props rhi.BufferDesc, desc BufferDesc) bool {
	if props.Type != desc.Type || props.ElementCount != desc.ElementCount {
		return false
	}

	switch desc.Type {
	case rhi.BufferTypeStandard:
		return props.Format == desc.Format
	case rhi.BufferTypeStructured:
		return props.ElementSize == desc.ElementSize
	}

	return false
}
