package rhi

// InitializeCreated finishes creating an object returned by a Factory method. If creation
// failed the error is returned as-is. Otherwise the object is initialized, and if initialization
// fails the object is destroyed and the initialization error returned.
//
// It is intended to wrap a Factory call directly:
//
//	texture, err := rhi.InitializeCreated(factory.CreateTexture(desc, devices))
func InitializeCreated[T Resource](obj T, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}

	err = obj.Initialize()
	if err != nil {
		obj.Destroy()
		return zero, err
	}

	return obj, nil
}
