package hwbuffer

import "github.com/vkngwrapper/core/v2/common"

type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// CreateSynchronized guards the declaration cache with a mutex, so that the Manager can be
	// called from more than one goroutine. Without it, the caller must confine the Manager to a
	// single goroutine, usually the render thread.
	CreateSynchronized CreateFlags = 1 << iota
)

func init() {
	CreateSynchronized.Register("CreateSynchronized")
}

// CreateOptions configures a new Manager
type CreateOptions struct {
	Flags CreateFlags
	// InitialCapacity is the number of distinct vertex declarations the cache is sized for
	// before it first needs to grow
	InitialCapacity int
}
