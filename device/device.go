// Package device decides which devices a GPU object is replicated onto.
//
// The concrete devices are owned by the graphics backend: this package only consumes the
// identity and capability information it needs through the Device and Registry interfaces.
package device

//go:generate mockgen -source device.go -destination ./mocks/mocks.go -package mock_device

// Device is a single logical device known to the backend
type Device interface {
	// IsPrimary reports whether objects created with FlagsDefault should live on this device
	IsPrimary() bool
}

// Registry exposes the devices the backend has initialized, indexed from 0
type Registry interface {
	DeviceCount() int
	Device(index int) Device
}

// List is a Registry over a fixed slice of devices
type List []Device

func (l List) DeviceCount() int {
	return len(l)
}

func (l List) Device(index int) Device {
	return l[index]
}
