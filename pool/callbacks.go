package pool

import "github.com/vkngwrapper/armory/rhi"

// TextureCallback is called with the device objects backing a pooled texture. renderTexture is
// nil unless the texture was requested with an attachment usage. pool is nil when an entry is
// destroyed after its pool.
type TextureCallback func(
	pool *Pool,
	texture rhi.Texture,
	renderTexture rhi.RenderTexture,
	userData interface{},
)

// BufferCallback is called with the device object backing a pooled buffer. pool is nil when an
// entry is destroyed after its pool.
type BufferCallback func(
	pool *Pool,
	buffer rhi.Buffer,
	userData interface{},
)

type CallbackOptions struct {
	CreateTexture  TextureCallback
	DestroyTexture TextureCallback
	CreateBuffer   BufferCallback
	DestroyBuffer  BufferCallback
	UserData       interface{}
}

type resourceCallbacks struct {
	Callbacks *CallbackOptions
}

func (c resourceCallbacks) CreateTexture(pool *Pool, texture rhi.Texture, renderTexture rhi.RenderTexture) {
	if c.Callbacks != nil && c.Callbacks.CreateTexture != nil {
		c.Callbacks.CreateTexture(pool, texture, renderTexture, c.Callbacks.UserData)
	}
}

func (c resourceCallbacks) DestroyTexture(pool *Pool, texture rhi.Texture, renderTexture rhi.RenderTexture) {
	if c.Callbacks != nil && c.Callbacks.DestroyTexture != nil {
		c.Callbacks.DestroyTexture(pool, texture, renderTexture, c.Callbacks.UserData)
	}
}

func (c resourceCallbacks) CreateBuffer(pool *Pool, buffer rhi.Buffer) {
	if c.Callbacks != nil && c.Callbacks.CreateBuffer != nil {
		c.Callbacks.CreateBuffer(pool, buffer, c.Callbacks.UserData)
	}
}

func (c resourceCallbacks) DestroyBuffer(pool *Pool, buffer rhi.Buffer) {
	if c.Callbacks != nil && c.Callbacks.DestroyBuffer != nil {
		c.Callbacks.DestroyBuffer(pool, buffer, c.Callbacks.UserData)
	}
}
