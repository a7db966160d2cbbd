package device

import "iter"

// Set holds the devices selected by a Flags value. A nil entry at index i means the device
// at index i is absent or was not selected.
type Set [MaxDevices]Device

// Resolve returns the devices from the registry that flags selects. A device is selected when
// its bit is set in flags, or when flags is FlagsDefault and the device is primary. Indices
// at or beyond the registry's device count are always nil.
func Resolve(registry Registry, flags Flags) Set {
	var devices Set

	deviceCount := registry.DeviceCount()
	for i := 0; i < MaxDevices; i++ {
		if i >= deviceCount {
			devices[i] = nil
			continue
		}

		if IsIndexSet(registry, i, flags) {
			devices[i] = registry.Device(i)
		}
	}

	return devices
}

// IsIndexSet reports whether flags selects the device at the provided index
func IsIndexSet(registry Registry, index int, flags Flags) bool {
	if flags&IndexFlags(index) != 0 {
		return true
	}

	return flags == FlagsDefault && registry.Device(index).IsPrimary()
}

// Count returns the number of selected devices
func (s Set) Count() int {
	count := 0
	for _, d := range s {
		if d != nil {
			count++
		}
	}

	return count
}

// All iterates over the selected devices and their indices in index order
func (s Set) All() iter.Seq2[int, Device] {
	return func(yield func(int, Device) bool) {
		for i, d := range s {
			if d == nil {
				continue
			}

			if !yield(i, d) {
				return
			}
		}
	}
}

// Flags returns the explicit mask that selects exactly the devices in this set
func (s Set) Flags() Flags {
	var flags Flags
	for i := range s.All() {
		flags |= IndexFlags(i)
	}

	return flags
}
