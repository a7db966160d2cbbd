package vulkan

import (
	"github.com/vkngwrapper/armory/device"
	"github.com/vkngwrapper/core/v2/core1_1"
)

// DeviceGroupAllocateInfo returns the allocation info that replicates a memory allocation onto
// every device in the set, for use in the Next chain of a MemoryAllocateInfo when the devices
// form a device group
func DeviceGroupAllocateInfo(devices device.Set) core1_1.MemoryAllocateFlagsInfo {
	return core1_1.MemoryAllocateFlagsInfo{
		Flags:      core1_1.MemoryAllocateDeviceMask,
		DeviceMask: uint32(devices.Flags()),
	}
}
