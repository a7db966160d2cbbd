package device

import "github.com/vkngwrapper/core/v2/common"

// MaxDevices is the largest number of devices a single object can be replicated onto
const MaxDevices = 5

// Flags selects the devices an object should be created on. Each bit corresponds to the
// device at the same index in a Registry.
type Flags int32

var flagsMapping = common.NewFlagStringMapping[Flags]()

func (f Flags) Register(str string) {
	flagsMapping.Register(f, str)
}
func (f Flags) String() string {
	if f == FlagsDefault {
		return "FlagsDefault"
	}
	return flagsMapping.FlagsToString(f)
}

const (
	// FlagsDefault selects every device that reports itself as primary
	FlagsDefault Flags = 0
)

const (
	// FlagsPrimary selects the device at index 0
	FlagsPrimary Flags = 1 << iota
	// FlagsGPU2 selects the device at index 1
	FlagsGPU2
	// FlagsGPU3 selects the device at index 2
	FlagsGPU3
	// FlagsGPU4 selects the device at index 3
	FlagsGPU4
	// FlagsGPU5 selects the device at index 4
	FlagsGPU5

	FlagsAll = FlagsPrimary | FlagsGPU2 | FlagsGPU3 | FlagsGPU4 | FlagsGPU5
)

func init() {
	FlagsPrimary.Register("FlagsPrimary")
	FlagsGPU2.Register("FlagsGPU2")
	FlagsGPU3.Register("FlagsGPU3")
	FlagsGPU4.Register("FlagsGPU4")
	FlagsGPU5.Register("FlagsGPU5")
}

// IndexFlags returns the flag bit that selects the device at the provided index
func IndexFlags(index int) Flags {
	return Flags(1 << index)
}
