package rhi

import "github.com/vkngwrapper/armory/device"

// Factory creates device objects. Every method receives the resolved set of devices the object
// is replicated onto and returns an object that has not yet been initialized. Errors, including
// OutOfDeviceMemoryError, are returned to the caller without retry.
type Factory interface {
	CreateTexture(desc TextureDesc, devices device.Set) (Texture, error)
	CreateRenderTexture(desc RenderTextureDesc, devices device.Set) (RenderTexture, error)
	CreateBuffer(desc BufferDesc, devices device.Set) (Buffer, error)
	CreateVertexBuffer(desc VertexBufferDesc, devices device.Set) (VertexBuffer, error)
	CreateIndexBuffer(desc IndexBufferDesc, devices device.Set) (IndexBuffer, error)
	CreateParamBlockBuffer(size int, usage ParamBlockUsage, devices device.Set) (ParamBlockBuffer, error)
	CreateVertexDeclaration(elements []VertexElement, devices device.Set) (VertexDeclaration, error)
}
