package rhi

// Resource is the lifecycle shared by every object a Factory creates. Objects are returned
// uninitialized: the caller calls Initialize exactly once before use, and Destroy once when it
// no longer needs the object.
type Resource interface {
	Initialize() error
	Destroy()
}

type Texture interface {
	Resource
	Properties() TextureDesc
}

type RenderTexture interface {
	Resource
	Properties() RenderTextureDesc
}

type Buffer interface {
	Resource
	Properties() BufferDesc
}

type VertexBuffer interface {
	Resource
	Properties() VertexBufferDesc
}

type IndexBuffer interface {
	Resource
	Properties() IndexBufferDesc
}

type ParamBlockBuffer interface {
	Resource
	Size() int
	Usage() ParamBlockUsage
}

// VertexDeclaration describes the layout of the vertex streams bound for a draw
type VertexDeclaration interface {
	Resource
	// Elements returns the attributes of the declaration in declaration order. Callers must not
	// modify the returned slice.
	Elements() []VertexElement
}
