package pool

import (
	"sync/atomic"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/armory/rhi"
)

// PooledTexture is a texture handed out by a Pool. While it is not free it belongs to the
// caller that received it from GetTexture. Return it with Pool.ReleaseTexture so the pool can
// hand it out again, or call Destroy to free the device objects.
//
// The pool only holds a weak reference to a texture it has handed out. A caller that drops a
// held texture without releasing or destroying it leaks its device objects: the pool notices
// the collected entry on a later GetTexture and logs it at warn level, but cannot destroy the
// device objects because they were owned by the entry.
type PooledTexture struct {
	id        uint64
	pool      atomic.Pointer[Pool]
	callbacks resourceCallbacks

	texture       rhi.Texture
	renderTexture rhi.RenderTexture

	destroyed atomic.Bool
	free      atomic.Bool
	name      atomic.Pointer[string]
}

func (t *PooledTexture) ID() uint64 {
	return t.id
}

// IsFree reports whether the texture is available to be handed out by its pool
func (t *PooledTexture) IsFree() bool {
	return t.free.Load()
}

func (t *PooledTexture) Texture() rhi.Texture {
	return t.texture
}

// RenderTexture returns the render texture viewing Texture, or nil if the texture was not
// requested with TextureUsageRenderTarget or TextureUsageDepthStencil
func (t *PooledTexture) RenderTexture() rhi.RenderTexture {
	return t.renderTexture
}

func (t *PooledTexture) Name() string {
	name := t.name.Load()
	if name == nil {
		return ""
	}
	return *name
}

func (t *PooledTexture) SetName(name string) {
	t.name.Store(&name)
}

// Destroy removes the texture from its pool, if the pool has not itself been destroyed, and
// destroys the device objects. Only the first call does anything, even when several goroutines
// race to destroy the same texture. The texture must not be used afterward.
func (t *PooledTexture) Destroy() {
	if !t.destroyed.CompareAndSwap(false, true) {
		return
	}

	pool := t.pool.Swap(nil)
	if pool != nil {
		pool.unregisterTexture(t)
	}

	t.callbacks.DestroyTexture(pool, t.texture, t.renderTexture)

	if t.renderTexture != nil {
		t.renderTexture.Destroy()
		t.renderTexture = nil
	}
	t.texture.Destroy()
	t.texture = nil
}

func (t *PooledTexture) printParameters(json *jwriter.ObjectState) {
	props := t.texture.Properties()

	json.Name("ID").Int(int(t.id))
	json.Name("Type").String(props.Type.String())
	json.Name("Format").String(props.Format.String())
	json.Name("Width").Int(props.Width)
	json.Name("Height").Int(props.Height)
	json.Name("Depth").Int(props.Depth)
	json.Name("Usage").String(props.Usage.String())
	json.Name("Samples").Int(normalizeSamples(props.Samples))
	json.Name("Free").Bool(t.IsFree())

	if name := t.Name(); name != "" {
		json.Name("Name").String(name)
	}
}

// PooledBuffer is a storage buffer handed out by a Pool. While it is not free it belongs to the
// caller that received it from GetBuffer. Return it with Pool.ReleaseBuffer so the pool can hand
// it out again, or call Destroy to free the device object.
//
// As with PooledTexture, dropping a held buffer without releasing or destroying it leaks the
// device object.
type PooledBuffer struct {
	id        uint64
	pool      atomic.Pointer[Pool]
	callbacks resourceCallbacks

	buffer rhi.Buffer

	destroyed atomic.Bool
	free      atomic.Bool
	name      atomic.Pointer[string]
}

func (b *PooledBuffer) ID() uint64 {
	return b.id
}

// IsFree reports whether the buffer is available to be handed out by its pool
func (b *PooledBuffer) IsFree() bool {
	return b.free.Load()
}

func (b *PooledBuffer) Buffer() rhi.Buffer {
	return b.buffer
}

func (b *PooledBuffer) Name() string {
	name := b.name.Load()
	if name == nil {
		return ""
	}
	return *name
}

func (b *PooledBuffer) SetName(name string) {
	b.name.Store(&name)
}

// Destroy removes the buffer from its pool, if the pool has not itself been destroyed, and
// destroys the device object. Only the first call does anything, even when several goroutines
// race to destroy the same buffer. The buffer must not be used afterward.
func (b *PooledBuffer) Destroy() {
	if !b.destroyed.CompareAndSwap(false, true) {
		return
	}

	pool := b.pool.Swap(nil)
	if pool != nil {
		pool.unregisterBuffer(b)
	}

	b.callbacks.DestroyBuffer(pool, b.buffer)

	b.buffer.Destroy()
	b.buffer = nil
}

func (b *PooledBuffer) printParameters(json *jwriter.ObjectState) {
	props := b.buffer.Properties()

	json.Name("ID").Int(int(b.id))
	json.Name("Type").String(props.Type.String())
	if props.Type == rhi.BufferTypeStandard {
		json.Name("Format").String(props.Format.String())
	} else {
		json.Name("ElementSize").Int(props.ElementSize)
	}
	json.Name("ElementCount").Int(props.ElementCount)
	json.Name("Free").Bool(b.IsFree())

	if name := b.Name(); name != "" {
		json.Name("Name").String(name)
	}
}
