package rhi

import "github.com/pkg/errors"

// OutOfDeviceMemoryError should be returned, possibly wrapped, by Factory implementations when
// a device allocation fails for lack of memory. Callers receive it unmodified in identity and
// decide whether to free pooled objects and retry.
var OutOfDeviceMemoryError error = errors.New("out of device memory")
