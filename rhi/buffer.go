package rhi

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/core/v2/common"
)

type BufferType int32

const (
	// BufferTypeStandard buffers hold elements of a typed BufferFormat
	BufferTypeStandard BufferType = iota
	// BufferTypeStructured buffers hold opaque elements of ElementSize bytes
	BufferTypeStructured
)

func (t BufferType) String() string {
	switch t {
	case BufferTypeStandard:
		return "BufferTypeStandard"
	case BufferTypeStructured:
		return "BufferTypeStructured"
	}
	return fmt.Sprintf("BufferType(%d)", int32(t))
}

// BufferUsage describes how the CPU will update the contents of a buffer
type BufferUsage int32

var bufferUsageMapping = common.NewFlagStringMapping[BufferUsage]()

func (f BufferUsage) Register(str string) {
	bufferUsageMapping.Register(f, str)
}
func (f BufferUsage) String() string {
	return bufferUsageMapping.FlagsToString(f)
}

const (
	BufferUsageStatic BufferUsage = 1 << iota
	BufferUsageDynamic
	BufferUsageLoadStore
)

func init() {
	BufferUsageStatic.Register("BufferUsageStatic")
	BufferUsageDynamic.Register("BufferUsageDynamic")
	BufferUsageLoadStore.Register("BufferUsageLoadStore")
}

// BufferDesc describes a GPU buffer read or written by shaders, and the properties reported by
// a created Buffer
type BufferDesc struct {
	Type BufferType
	// Format is the element format of a standard buffer. It is ignored for structured buffers.
	Format BufferFormat
	// ElementSize is the size of one element of a structured buffer. It is ignored for standard
	// buffers, whose element size comes from Format.
	ElementSize  int
	ElementCount int
	Usage        BufferUsage
	// RandomGPUWrite allows shaders to write to arbitrary locations in the buffer
	RandomGPUWrite bool
}

// Stride returns the size of one element of the buffer
func (d BufferDesc) Stride() int {
	if d.Type == BufferTypeStructured {
		return d.ElementSize
	}
	return d.Format.Size()
}

// Validate returns an error marked with resutils.InvalidDescriptorError if no device could create
// a buffer matching this descriptor
func (d BufferDesc) Validate() error {
	if d.ElementCount <= 0 {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "buffer element count must be positive, got %d", d.ElementCount)
	}

	switch d.Type {
	case BufferTypeStandard:
		if d.Format.Size() == 0 {
			return cerrors.Wrapf(resutils.InvalidDescriptorError, "standard buffer requires a known format, got %s", d.Format)
		}
	case BufferTypeStructured:
		if d.ElementSize <= 0 {
			return cerrors.Wrapf(resutils.InvalidDescriptorError, "structured buffer requires a positive element size, got %d", d.ElementSize)
		}
	default:
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "unknown buffer type %s", d.Type)
	}

	return nil
}

// VertexBufferDesc describes a buffer of vertex data
type VertexBufferDesc struct {
	VertexSize  int
	VertexCount int
	Usage       BufferUsage
	// StreamOut allows the buffer to be written by the stream-out stage
	StreamOut bool
}

func (d VertexBufferDesc) Validate() error {
	if d.VertexSize <= 0 || d.VertexCount <= 0 {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "vertex buffer size must be positive, got %d vertices of %d bytes", d.VertexCount, d.VertexSize)
	}
	return nil
}

type IndexType int32

const (
	IndexType16 IndexType = iota
	IndexType32
)

func (t IndexType) String() string {
	switch t {
	case IndexType16:
		return "IndexType16"
	case IndexType32:
		return "IndexType32"
	}
	return fmt.Sprintf("IndexType(%d)", int32(t))
}

// Size returns the size of a single index in bytes, or 0 if the type is unknown
func (t IndexType) Size() int {
	switch t {
	case IndexType16:
		return 2
	case IndexType32:
		return 4
	}
	return 0
}

// IndexBufferDesc describes a buffer of vertex indices
type IndexBufferDesc struct {
	Type       IndexType
	IndexCount int
	Usage      BufferUsage
}

func (d IndexBufferDesc) Validate() error {
	if d.Type.Size() == 0 {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "unknown index type %s", d.Type)
	}
	if d.IndexCount <= 0 {
		return cerrors.Wrapf(resutils.InvalidDescriptorError, "index count must be positive, got %d", d.IndexCount)
	}
	return nil
}

// ParamBlockUsage describes how often the contents of a parameter block buffer change
type ParamBlockUsage int32

const (
	ParamBlockUsageStatic ParamBlockUsage = iota
	ParamBlockUsageDynamic
)

func (u ParamBlockUsage) String() string {
	switch u {
	case ParamBlockUsageStatic:
		return "ParamBlockUsageStatic"
	case ParamBlockUsageDynamic:
		return "ParamBlockUsageDynamic"
	}
	return fmt.Sprintf("ParamBlockUsage(%d)", int32(u))
}
