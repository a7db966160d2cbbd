package pool

import (
	"github.com/vkngwrapper/armory/device"
	"github.com/vkngwrapper/core/v2/common"
)

type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// CreateSynchronized guards the pool's registries with a mutex, so that textures and buffers
	// can be requested, released and destroyed from more than one goroutine. Without it, the
	// caller must confine the pool and every entry it hands out to a single goroutine, usually
	// the render thread.
	CreateSynchronized CreateFlags = 1 << iota
)

func init() {
	CreateSynchronized.Register("CreateSynchronized")
}

// CreateOptions configures a new Pool
type CreateOptions struct {
	Flags CreateFlags
	// DeviceMask selects the devices that pooled textures and buffers are created on
	DeviceMask device.Flags
	// Callbacks is optional, and is informed whenever the pool creates or destroys a device object
	Callbacks *CallbackOptions
}
