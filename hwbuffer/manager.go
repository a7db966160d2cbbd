// Package hwbuffer creates vertex, index, parameter block and general GPU buffers on behalf of
// the renderer, and caches vertex declarations so that each distinct element layout is only
// created once per process.
package hwbuffer

import (
	"context"

	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/armory/device"
	"github.com/vkngwrapper/armory/internal/utils"
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/armory/rhi"
	"golang.org/x/exp/slog"
)

const defaultDeclarationCapacity = 32

type cachedDeclaration struct {
	key         VertexDeclarationKey
	declaration rhi.VertexDeclaration
}

// Manager is the entry point for creating buffer-like device objects. Vertex declarations are
// memoized by element layout and live until the Manager is destroyed: the cache never evicts.
// Every other object is created fresh on each call and is owned by the caller.
type Manager struct {
	logger   *slog.Logger
	factory  rhi.Factory
	registry device.Registry

	mutex        utils.OptionalRWMutex
	declarations *swiss.Map[uint64, []cachedDeclaration]
	count        int
}

func New(logger *slog.Logger, factory rhi.Factory, registry device.Registry, options CreateOptions) *Manager {
	capacity := options.InitialCapacity
	if capacity <= 0 {
		capacity = defaultDeclarationCapacity
	}

	return &Manager{
		logger:   logger,
		factory:  factory,
		registry: registry,

		mutex:        utils.OptionalRWMutex{UseMutex: options.Flags&CreateSynchronized != 0},
		declarations: swiss.NewMap[uint64, []cachedDeclaration](uint32(capacity)),
	}
}

// CreateVertexDeclaration returns the vertex declaration for the provided elements, creating
// it on the devices selected by deviceMask the first time a given element list is requested.
// Later requests with an equal element list return the same declaration without contacting
// the device, regardless of deviceMask.
func (m *Manager) CreateVertexDeclaration(elements []rhi.VertexElement, deviceMask device.Flags) (rhi.VertexDeclaration, error) {
	m.logger.Debug("Manager::CreateVertexDeclaration")

	for i, element := range elements {
		if element.Type.Size() == 0 {
			return nil, cerrors.Wrapf(resutils.InvalidDescriptorError, "vertex element %d has unknown type %s", i, element.Type)
		}
	}

	key := NewVertexDeclarationKey(elements)

	m.mutex.RLock()
	declaration, ok := m.lookup(key)
	m.mutex.RUnlock()
	if ok {
		return declaration, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another goroutine may have created it between the two locks
	declaration, ok = m.lookup(key)
	if ok {
		return declaration, nil
	}

	devices := device.Resolve(m.registry, deviceMask)
	declaration, err := rhi.InitializeCreated(m.factory.CreateVertexDeclaration(key.elements, devices))
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to create vertex declaration with %d elements", key.Len())
	}

	m.insert(key, declaration)

	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "created vertex declaration",
		slog.Int("Elements", key.Len()),
		slog.String("Devices", devices.Flags().String()),
		slog.Int("CachedDeclarations", m.count),
	)

	return declaration, nil
}

func (m *Manager) lookup(key VertexDeclarationKey) (rhi.VertexDeclaration, bool) {
	bucket, _ := m.declarations.Get(key.Hash())
	for _, cached := range bucket {
		if cached.key.Equal(key) {
			return cached.declaration, true
		}
	}

	return nil, false
}

// insert adds a declaration the cache does not hold yet. Keys whose hashes collide share a
// bucket.
func (m *Manager) insert(key VertexDeclarationKey, declaration rhi.VertexDeclaration) {
	bucket, _ := m.declarations.Get(key.Hash())
	m.declarations.Put(key.Hash(), append(bucket, cachedDeclaration{key: key, declaration: declaration}))
	m.count++
}

// CreateVertexDeclarationFromDesc builds the element list described by desc and defers to
// CreateVertexDeclaration
func (m *Manager) CreateVertexDeclarationFromDesc(desc *VertexDataDesc, deviceMask device.Flags) (rhi.VertexDeclaration, error) {
	return m.CreateVertexDeclaration(desc.CreateElements(), deviceMask)
}

// DeclarationCount returns the number of distinct vertex declarations in the cache
func (m *Manager) DeclarationCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.count
}

func (m *Manager) CreateVertexBuffer(desc rhi.VertexBufferDesc, deviceMask device.Flags) (rhi.VertexBuffer, error) {
	m.logger.Debug("Manager::CreateVertexBuffer")

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	buffer, err := rhi.InitializeCreated(m.factory.CreateVertexBuffer(desc, device.Resolve(m.registry, deviceMask)))
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to create vertex buffer of %d vertices", desc.VertexCount)
	}

	return buffer, nil
}

func (m *Manager) CreateIndexBuffer(desc rhi.IndexBufferDesc, deviceMask device.Flags) (rhi.IndexBuffer, error) {
	m.logger.Debug("Manager::CreateIndexBuffer")

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	buffer, err := rhi.InitializeCreated(m.factory.CreateIndexBuffer(desc, device.Resolve(m.registry, deviceMask)))
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to create index buffer of %d indices", desc.IndexCount)
	}

	return buffer, nil
}

func (m *Manager) CreateParamBlockBuffer(size int, usage rhi.ParamBlockUsage, deviceMask device.Flags) (rhi.ParamBlockBuffer, error) {
	m.logger.Debug("Manager::CreateParamBlockBuffer")

	if size <= 0 {
		return nil, cerrors.Wrapf(resutils.InvalidDescriptorError, "parameter block size must be positive, got %d", size)
	}

	buffer, err := rhi.InitializeCreated(m.factory.CreateParamBlockBuffer(size, usage, device.Resolve(m.registry, deviceMask)))
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to create %d byte parameter block", size)
	}

	return buffer, nil
}

func (m *Manager) CreateBuffer(desc rhi.BufferDesc, deviceMask device.Flags) (rhi.Buffer, error) {
	m.logger.Debug("Manager::CreateBuffer")

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	buffer, err := rhi.InitializeCreated(m.factory.CreateBuffer(desc, device.Resolve(m.registry, deviceMask)))
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to create %s of %d elements", desc.Type, desc.ElementCount)
	}

	return buffer, nil
}

// Destroy destroys every cached vertex declaration. Declarations previously returned from the
// Manager must not be used afterward.
func (m *Manager) Destroy() {
	m.logger.Debug("Manager::Destroy")

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.declarations.Iter(func(hash uint64, bucket []cachedDeclaration) bool {
		for _, cached := range bucket {
			cached.declaration.Destroy()
		}
		return false
	})

	m.declarations.Clear()
	m.count = 0
}
