package rhi

import "fmt"

// PixelFormat is the backend-independent layout of a texel
type PixelFormat int32

const (
	PixelFormatUnknown PixelFormat = iota
	PixelFormatR8
	PixelFormatRG8
	PixelFormatRGBA8
	PixelFormatBGRA8
	PixelFormatR16F
	PixelFormatRG16F
	PixelFormatRGBA16F
	PixelFormatR32F
	PixelFormatRG32F
	PixelFormatRGB32F
	PixelFormatRGBA32F
	PixelFormatRG11B10F
	PixelFormatRGB10A2
	PixelFormatBC1
	PixelFormatBC3
	PixelFormatBC4
	PixelFormatBC5
	PixelFormatBC7
	PixelFormatD16
	PixelFormatD32
	PixelFormatD24S8
	PixelFormatD32S8X24

	pixelFormatCount
)

// PixelFormatCount is the number of known pixel formats, including PixelFormatUnknown
const PixelFormatCount = int(pixelFormatCount)

type pixelFormatInfo struct {
	name       string
	size       int
	depth      bool
	compressed bool
}

var pixelFormats = [pixelFormatCount]pixelFormatInfo{
	PixelFormatUnknown:  {name: "PixelFormatUnknown"},
	PixelFormatR8:       {name: "PixelFormatR8", size: 1},
	PixelFormatRG8:      {name: "PixelFormatRG8", size: 2},
	PixelFormatRGBA8:    {name: "PixelFormatRGBA8", size: 4},
	PixelFormatBGRA8:    {name: "PixelFormatBGRA8", size: 4},
	PixelFormatR16F:     {name: "PixelFormatR16F", size: 2},
	PixelFormatRG16F:    {name: "PixelFormatRG16F", size: 4},
	PixelFormatRGBA16F:  {name: "PixelFormatRGBA16F", size: 8},
	PixelFormatR32F:     {name: "PixelFormatR32F", size: 4},
	PixelFormatRG32F:    {name: "PixelFormatRG32F", size: 8},
	PixelFormatRGB32F:   {name: "PixelFormatRGB32F", size: 12},
	PixelFormatRGBA32F:  {name: "PixelFormatRGBA32F", size: 16},
	PixelFormatRG11B10F: {name: "PixelFormatRG11B10F", size: 4},
	PixelFormatRGB10A2:  {name: "PixelFormatRGB10A2", size: 4},
	PixelFormatBC1:      {name: "PixelFormatBC1", compressed: true},
	PixelFormatBC3:      {name: "PixelFormatBC3", compressed: true},
	PixelFormatBC4:      {name: "PixelFormatBC4", compressed: true},
	PixelFormatBC5:      {name: "PixelFormatBC5", compressed: true},
	PixelFormatBC7:      {name: "PixelFormatBC7", compressed: true},
	PixelFormatD16:      {name: "PixelFormatD16", size: 2, depth: true},
	PixelFormatD32:      {name: "PixelFormatD32", size: 4, depth: true},
	PixelFormatD24S8:    {name: "PixelFormatD24S8", size: 4, depth: true},
	PixelFormatD32S8X24: {name: "PixelFormatD32S8X24", size: 8, depth: true},
}

func (f PixelFormat) valid() bool {
	return f >= 0 && f < pixelFormatCount
}

func (f PixelFormat) String() string {
	if !f.valid() {
		return fmt.Sprintf("PixelFormat(%d)", int32(f))
	}
	return pixelFormats[f].name
}

// IsDepth reports whether the format stores depth, and possibly stencil, data
func (f PixelFormat) IsDepth() bool {
	return f.valid() && pixelFormats[f].depth
}

// IsCompressed reports whether the format is block compressed
func (f PixelFormat) IsCompressed() bool {
	return f.valid() && pixelFormats[f].compressed
}

// BytesPerPixel returns the size of one texel, or 0 for compressed and unknown formats
func (f PixelFormat) BytesPerPixel() int {
	if !f.valid() {
		return 0
	}
	return pixelFormats[f].size
}

// BufferFormat is the typed element layout of a standard GPU buffer
type BufferFormat int32

const (
	BufferFormatUnknown BufferFormat = iota
	BufferFormat16x1F
	BufferFormat16x2F
	BufferFormat16x4F
	BufferFormat32x1F
	BufferFormat32x2F
	BufferFormat32x3F
	BufferFormat32x4F
	BufferFormat8x1
	BufferFormat8x2
	BufferFormat8x4
	BufferFormat16x1
	BufferFormat16x2
	BufferFormat16x4
	BufferFormat32x1S
	BufferFormat32x2S
	BufferFormat32x3S
	BufferFormat32x4S
	BufferFormat32x1U
	BufferFormat32x2U
	BufferFormat32x3U
	BufferFormat32x4U

	bufferFormatCount
)

// BufferFormatCount is the number of known buffer formats, including BufferFormatUnknown
const BufferFormatCount = int(bufferFormatCount)

var bufferFormats = [bufferFormatCount]struct {
	name string
	size int
}{
	BufferFormatUnknown: {"BufferFormatUnknown", 0},
	BufferFormat16x1F:   {"BufferFormat16x1F", 2},
	BufferFormat16x2F:   {"BufferFormat16x2F", 4},
	BufferFormat16x4F:   {"BufferFormat16x4F", 8},
	BufferFormat32x1F:   {"BufferFormat32x1F", 4},
	BufferFormat32x2F:   {"BufferFormat32x2F", 8},
	BufferFormat32x3F:   {"BufferFormat32x3F", 12},
	BufferFormat32x4F:   {"BufferFormat32x4F", 16},
	BufferFormat8x1:     {"BufferFormat8x1", 1},
	BufferFormat8x2:     {"BufferFormat8x2", 2},
	BufferFormat8x4:     {"BufferFormat8x4", 4},
	BufferFormat16x1:    {"BufferFormat16x1", 2},
	BufferFormat16x2:    {"BufferFormat16x2", 4},
	BufferFormat16x4:    {"BufferFormat16x4", 8},
	BufferFormat32x1S:   {"BufferFormat32x1S", 4},
	BufferFormat32x2S:   {"BufferFormat32x2S", 8},
	BufferFormat32x3S:   {"BufferFormat32x3S", 12},
	BufferFormat32x4S:   {"BufferFormat32x4S", 16},
	BufferFormat32x1U:   {"BufferFormat32x1U", 4},
	BufferFormat32x2U:   {"BufferFormat32x2U", 8},
	BufferFormat32x3U:   {"BufferFormat32x3U", 12},
	BufferFormat32x4U:   {"BufferFormat32x4U", 16},
}

func (f BufferFormat) String() string {
	if f < 0 || f >= bufferFormatCount {
		return fmt.Sprintf("BufferFormat(%d)", int32(f))
	}
	return bufferFormats[f].name
}

// Size returns the size in bytes of one element of this format, or 0 if the format is unknown
func (f BufferFormat) Size() int {
	if f < 0 || f >= bufferFormatCount {
		return 0
	}
	return bufferFormats[f].size
}
