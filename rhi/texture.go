package rhi

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/core/v2/common"
)

type TextureType int32

const (
	TextureType1D TextureType = iota
	TextureType2D
	TextureType3D
	TextureTypeCube
)

var textureTypeNames = [...]string{
	TextureType1D:   "TextureType1D",
	TextureType2D:   "TextureType2D",
	TextureType3D:   "TextureType3D",
	TextureTypeCube: "TextureTypeCube",
}

func (t TextureType) String() string {
	if t < 0 || int(t) >= len(textureTypeNames) {
		return fmt.Sprintf("TextureType(%d)", int32(t))
	}
	return textureTypeNames[t]
}

// TextureUsage describes how a texture will be accessed. Pools treat a texture created with
// a superset of the requested usage as able to serve the request.
type TextureUsage int32

var textureUsageMapping = common.NewFlagStringMapping[TextureUsage]()

func (f TextureUsage) Register(str string) {
	textureUsageMapping.Register(f, str)
}
func (f TextureUsage) String() string {
	return textureUsageMapping.FlagsToString(f)
}

const (
	// TextureUsageStatic marks a texture that is rarely written by the CPU
	TextureUsageStatic TextureUsage = 1 << iota
	// TextureUsageDynamic marks a texture that is written by the CPU every frame or so
	TextureUsageDynamic
	// TextureUsageRenderTarget allows the texture to be bound as a color attachment
	TextureUsageRenderTarget
	// TextureUsageDepthStencil allows the texture to be bound as a depth-stencil attachment
	TextureUsageDepthStencil
	// TextureUsageLoadStore allows the texture to be bound for random GPU reads and writes
	TextureUsageLoadStore
	// TextureUsageCPUCached keeps a CPU-side copy of the texture contents
	TextureUsageCPUCached
	// TextureUsageCPUReadable allows the texture contents to be read back to the CPU
	TextureUsageCPUReadable

	TextureUsageAttachmentMask = TextureUsageRenderTarget | TextureUsageDepthStencil
)

func init() {
	TextureUsageStatic.Register("TextureUsageStatic")
	TextureUsageDynamic.Register("TextureUsageDynamic")
	TextureUsageRenderTarget.Register("TextureUsageRenderTarget")
	TextureUsageDepthStencil.Register("TextureUsageDepthStencil")
	TextureUsageLoadStore.Register("TextureUsageLoadStore")
	TextureUsageCPUCached.Register("TextureUsageCPUCached")
	TextureUsageCPUReadable.Register("TextureUsageCPUReadable")
}

// MaxSamples is the largest multisample count a texture may request
const MaxSamples = 64

// TextureDesc describes a texture to be created by a Factory, and the properties reported by
// a created Texture
type TextureDesc struct {
	Type        TextureType
	Format      PixelFormat
	Width       int
	Height      int
	Depth       int
	MipLevels   int
	ArraySlices int
	Usage       TextureUsage
	// HWGamma requests that the hardware convert from sRGB when sampling and to sRGB when rendering
	HWGamma bool
	// Samples is the multisample count. 0 and 1 both mean no multisampling.
	Samples int
}

// Validate returns an error marked with resutils.InvalidDescriptorError if no device could create
// a texture matching this descriptor
func (d TextureDesc) Validate() error {
	if d.Type < TextureType1D || d.Type > TextureTypeCube {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "unknown texture type %s", d.Type)
	}

	if d.Format <= PixelFormatUnknown || d.Format >= pixelFormatCount {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "unknown pixel format %s", d.Format)
	}

	if d.Width <= 0 || d.Height <= 0 || d.Depth <= 0 {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "texture dimensions must be positive, got %dx%dx%d", d.Width, d.Height, d.Depth)
	}

	if d.MipLevels < 0 || d.ArraySlices < 0 {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "texture mip level and array slice counts cannot be negative")
	}

	if d.Type == TextureTypeCube && d.Width != d.Height {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "cube textures must be square, got %dx%d", d.Width, d.Height)
	}

	if d.Type != TextureType3D && d.Depth != 1 {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "only 3D textures may have a depth other than 1, got %d", d.Depth)
	}

	samples := d.Samples
	if samples == 0 {
		samples = 1
	}
	if err := resutils.CheckPow2(samples, "sample count"); err != nil || samples > MaxSamples {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "unsupported sample count %d", d.Samples)
	}

	if samples > 1 && d.Type != TextureType2D {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "only 2D textures may be multisampled")
	}

	if d.Usage&TextureUsageDepthStencil != 0 && !d.Format.IsDepth() {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "depth-stencil usage requires a depth format, got %s", d.Format)
	}

	if d.Usage&TextureUsageRenderTarget != 0 && (d.Format.IsDepth() || d.Format.IsCompressed()) {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "format %s cannot be used as a render target", d.Format)
	}

	if d.Usage&TextureUsageAttachmentMask == TextureUsageAttachmentMask {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "a texture cannot be both a render target and a depth-stencil target")
	}

	return nil
}

// MaxMultipleRenderTargets is the number of color surfaces a render texture may bind
const MaxMultipleRenderTargets = 8

// RenderSurfaceDesc selects the part of a texture a render texture writes to
type RenderSurfaceDesc struct {
	Texture  Texture
	Face     int
	NumFaces int
	MipLevel int
}

// RenderTextureDesc describes a render texture view over one or more textures
type RenderTextureDesc struct {
	ColorSurfaces       [MaxMultipleRenderTargets]RenderSurfaceDesc
	DepthStencilSurface RenderSurfaceDesc
}
