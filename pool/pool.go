// Package pool hands out transient render targets and storage buffers, reusing device objects
// that earlier callers have released instead of creating new ones every frame.
//
// A Pool is not safe for concurrent use unless it was created with CreateSynchronized.
package pool

import (
	"context"

	cerrors "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/armory/device"
	"github.com/vkngwrapper/armory/internal/utils"
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/armory/rhi"
	"golang.org/x/exp/slog"
)

type Pool struct {
	id         uuid.UUID
	logger     *slog.Logger
	factory    rhi.Factory
	registry   device.Registry
	deviceMask device.Flags
	callbacks  resourceCallbacks

	mutex     utils.OptionalMutex
	destroyed bool
	nextID    uint64
	textures  entryList[PooledTexture, *PooledTexture]
	buffers   entryList[PooledBuffer, *PooledBuffer]

	createCount int
	reuseCount  int
}

func New(logger *slog.Logger, factory rhi.Factory, registry device.Registry, options CreateOptions) *Pool {
	id := uuid.New()
	pool := &Pool{
		id:         id,
		logger:     logger.With(slog.String("Pool", id.String())),
		factory:    factory,
		registry:   registry,
		deviceMask: options.DeviceMask,
		callbacks:  resourceCallbacks{Callbacks: options.Callbacks},

		mutex: utils.OptionalMutex{UseMutex: options.Flags&CreateSynchronized != 0},
	}
	pool.textures.Init(func(id uint64) { pool.logLeak("texture", id) })
	pool.buffers.Init(func(id uint64) { pool.logLeak("buffer", id) })

	return pool
}

// ID identifies the pool in its log output and stats dumps
func (p *Pool) ID() uuid.UUID {
	return p.id
}

func (p *Pool) logLeak(kind string, id uint64) {
	p.logger.LogAttrs(context.Background(), slog.LevelWarn, "[LEAKED POOL ENTRY] pooled entry was collected without being destroyed, its device objects were leaked",
		slog.String("Kind", kind),
		slog.Uint64("ID", id),
	)
}

// GetTexture returns a free texture matching desc, or creates one if none is free. The returned
// texture is not free and belongs to the caller until it is passed to ReleaseTexture.
//
// A free texture matches when its type, format, width and height are equal to the request and
// its usage includes every requested usage flag. 2D textures must also have the same gamma
// setting and sample count, and 3D textures the same depth.
func (p *Pool) GetTexture(desc TextureDesc) (*PooledTexture, error) {
	p.logger.Debug("Pool::GetTexture")

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		panic("attempted to get a texture from a destroyed pool")
	}

	existing := p.textures.Find(func(entry *PooledTexture) bool {
		return entry.IsFree() && !entry.destroyed.Load() && matchTexture(entry.texture.Properties(), desc)
	})
	if existing != nil {
		existing.free.Store(false)
		p.textures.Retain(existing, false)
		p.reuseCount++
		return existing, nil
	}

	entry, err := p.createTexture(desc)
	if err != nil {
		return nil, err
	}

	p.textures.Register(entry)
	p.createCount++
	resutils.DebugValidate(p)

	return entry, nil
}

func (p *Pool) createTexture(desc TextureDesc) (*PooledTexture, error) {
	devices := device.Resolve(p.registry, p.deviceMask)

	texture, err := rhi.InitializeCreated(p.factory.CreateTexture(desc.textureDesc(), devices))
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to create pooled %s %dx%d", desc.Type, desc.Width, desc.Height)
	}

	var renderTexture rhi.RenderTexture
	if desc.Usage&rhi.TextureUsageAttachmentMask != 0 {
		surface := rhi.RenderSurfaceDesc{
			Texture:  texture,
			Face:     0,
			NumFaces: 1,
			MipLevel: 0,
		}

		var renderDesc rhi.RenderTextureDesc
		if desc.Usage&rhi.TextureUsageRenderTarget != 0 {
			renderDesc.ColorSurfaces[0] = surface
		}
		if desc.Usage&rhi.TextureUsageDepthStencil != 0 {
			renderDesc.DepthStencilSurface = surface
		}

		renderTexture, err = rhi.InitializeCreated(p.factory.CreateRenderTexture(renderDesc, devices))
		if err != nil {
			texture.Destroy()
			return nil, cerrors.Wrapf(err, "failed to create render texture for pooled %s %dx%d", desc.Type, desc.Width, desc.Height)
		}
	}

	p.nextID++
	entry := &PooledTexture{
		id:            p.nextID,
		callbacks:     p.callbacks,
		texture:       texture,
		renderTexture: renderTexture,
	}
	entry.pool.Store(p)

	p.callbacks.CreateTexture(p, texture, renderTexture)

	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "created pooled texture",
		slog.Uint64("ID", entry.id),
		slog.String("Type", desc.Type.String()),
		slog.String("Format", desc.Format.String()),
		slog.Int("Width", desc.Width),
		slog.Int("Height", desc.Height),
		slog.String("Usage", desc.Usage.String()),
	)

	return entry, nil
}

// GetBuffer returns a free buffer matching desc, or creates one if none is free. The returned
// buffer is not free and belongs to the caller until it is passed to ReleaseBuffer.
//
// A free buffer matches when its type and element count are equal to the request. Standard
// buffers must also have the same format, and structured buffers the same element size.
func (p *Pool) GetBuffer(desc BufferDesc) (*PooledBuffer, error) {
	p.logger.Debug("Pool::GetBuffer")

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		panic("attempted to get a buffer from a destroyed pool")
	}

	existing := p.buffers.Find(func(entry *PooledBuffer) bool {
		return entry.IsFree() && !entry.destroyed.Load() && matchBuffer(entry.buffer.Properties(), desc)
	})
	if existing != nil {
		existing.free.Store(false)
		p.buffers.Retain(existing, false)
		p.reuseCount++
		return existing, nil
	}

	devices := device.Resolve(p.registry, p.deviceMask)
	buffer, err := rhi.InitializeCreated(p.factory.CreateBuffer(desc.bufferDesc(), devices))
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to create pooled %s of %d elements", desc.Type, desc.ElementCount)
	}

	p.nextID++
	entry := &PooledBuffer{
		id:        p.nextID,
		callbacks: p.callbacks,
		buffer:    buffer,
	}
	entry.pool.Store(p)

	p.callbacks.CreateBuffer(p, buffer)

	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "created pooled buffer",
		slog.Uint64("ID", entry.id),
		slog.String("Type", desc.Type.String()),
		slog.Int("ElementCount", desc.ElementCount),
	)

	p.buffers.Register(entry)
	p.createCount++
	resutils.DebugValidate(p)

	return entry, nil
}

// ReleaseTexture returns a texture to the pool so that a later GetTexture can hand it out again.
// The device objects are kept alive, and the pool keeps the entry alive even if the caller
// drops it. Releasing a texture that this pool did not hand out panics.
func (p *Pool) ReleaseTexture(texture *PooledTexture) {
	p.logger.Debug("Pool::ReleaseTexture")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if texture == nil || !p.textures.Contains(texture) {
		panic("attempted to release a texture that is not registered with this pool")
	}

	texture.free.Store(true)
	p.textures.Retain(texture, true)
}

// ReleaseBuffer returns a buffer to the pool so that a later GetBuffer can hand it out again.
// The device object is kept alive, and the pool keeps the entry alive even if the caller drops
// it. Releasing a buffer that this pool did not hand out panics.
func (p *Pool) ReleaseBuffer(buffer *PooledBuffer) {
	p.logger.Debug("Pool::ReleaseBuffer")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if buffer == nil || !p.buffers.Contains(buffer) {
		panic("attempted to release a buffer that is not registered with this pool")
	}

	buffer.free.Store(true)
	p.buffers.Retain(buffer, true)
}

func (p *Pool) unregisterTexture(texture *PooledTexture) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.textures.Unregister(texture.id)
}

func (p *Pool) unregisterBuffer(buffer *PooledBuffer) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.buffers.Unregister(buffer.id)
}

// Destroy detaches every entry from the pool and destroys the free ones. Entries still held by
// callers remain valid until the caller destroys them, and are logged as unreleased. The pool
// must not be used afterward: GetTexture and GetBuffer panic on a destroyed pool.
func (p *Pool) Destroy() {
	p.logger.Debug("Pool::Destroy")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	resutils.DebugValidate(p)
	p.destroyed = true

	for _, texture := range p.textures.Clear() {
		texture.pool.Store(nil)
		if texture.IsFree() {
			texture.Destroy()
		} else {
			p.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED TEXTURE] pooled texture still in use",
				slog.Uint64("ID", texture.id),
				slog.String("Name", texture.Name()),
			)
		}
	}

	for _, buffer := range p.buffers.Clear() {
		buffer.pool.Store(nil)
		if buffer.IsFree() {
			buffer.Destroy()
		} else {
			p.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED BUFFER] pooled buffer still in use",
				slog.Uint64("ID", buffer.id),
				slog.String("Name", buffer.Name()),
			)
		}
	}
}

// Statistics adds the pool's current counts to stats
func (p *Pool) Statistics(stats *resutils.Statistics) {
	p.logger.Debug("Pool::Statistics")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.textures.AddStatistics(stats)
	p.buffers.AddStatistics(stats)
	stats.CreateCount += p.createCount
	stats.ReuseCount += p.reuseCount
}

// BuildStatsString returns a JSON document describing every live entry in the pool
func (p *Pool) BuildStatsString() string {
	p.logger.Debug("Pool::BuildStatsString")

	var stats resutils.Statistics
	p.Statistics(&stats)

	p.mutex.Lock()
	defer p.mutex.Unlock()

	writer := jwriter.NewWriter()
	objState := writer.Object()
	objState.Name("Pool").String(p.id.String())

	totalObj := objState.Name("Total").Object()
	totalObj.Name("EntryCount").Int(stats.EntryCount)
	totalObj.Name("FreeCount").Int(stats.FreeCount)
	totalObj.Name("InUseCount").Int(stats.InUseCount())
	totalObj.Name("CreateCount").Int(stats.CreateCount)
	totalObj.Name("ReuseCount").Int(stats.ReuseCount)
	totalObj.End()

	p.textures.BuildStatsString(objState.Name("Textures"))
	p.buffers.BuildStatsString(objState.Name("Buffers"))

	objState.End()

	return string(writer.Bytes())
}

// Validate checks the consistency of the pool's registries
func (p *Pool) Validate() error {
	if err := p.textures.Validate(); err != nil {
		return cerrors.Wrap(err, "texture registry")
	}

	if err := p.buffers.Validate(); err != nil {
		return cerrors.Wrap(err, "buffer registry")
	}

	return nil
}
