package device_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/armory/device"
	mock_device "github.com/vkngwrapper/armory/device/mocks"
	"go.uber.org/mock/gomock"
)

func mockRig(ctrl *gomock.Controller, primary ...bool) (*mock_device.MockRegistry, []*mock_device.MockDevice) {
	registry := mock_device.NewMockRegistry(ctrl)
	registry.EXPECT().DeviceCount().AnyTimes().Return(len(primary))

	devices := make([]*mock_device.MockDevice, 0, len(primary))
	for i, isPrimary := range primary {
		d := mock_device.NewMockDevice(ctrl)
		d.EXPECT().IsPrimary().AnyTimes().Return(isPrimary)
		registry.EXPECT().Device(i).AnyTimes().Return(d)
		devices = append(devices, d)
	}

	return registry, devices
}

func TestResolveDefaultSelectsPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, devices := mockRig(ctrl, false, true, false)

	set := device.Resolve(registry, device.FlagsDefault)
	require.Nil(t, set[0])
	require.Equal(t, devices[1], set[1])
	require.Nil(t, set[2])
	require.Nil(t, set[3])
	require.Nil(t, set[4])
	require.Equal(t, 1, set.Count())
}

func TestResolveExplicitBits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, devices := mockRig(ctrl, true, false, false)

	set := device.Resolve(registry, device.FlagsGPU2|device.FlagsGPU3)
	require.Nil(t, set[0])
	require.Equal(t, devices[1], set[1])
	require.Equal(t, devices[2], set[2])
	require.Equal(t, 2, set.Count())
	require.Equal(t, device.FlagsGPU2|device.FlagsGPU3, set.Flags())
}

func TestResolveIgnoresBitsPastDeviceCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, devices := mockRig(ctrl, true, false)

	set := device.Resolve(registry, device.FlagsAll)
	require.Equal(t, devices[0], set[0])
	require.Equal(t, devices[1], set[1])
	for i := 2; i < device.MaxDevices; i++ {
		require.Nil(t, set[i])
	}
}

func TestResolveNoDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, _ := mockRig(ctrl)

	set := device.Resolve(registry, device.FlagsDefault)
	require.Equal(t, 0, set.Count())
	require.Equal(t, device.Flags(0), set.Flags())
}

func TestIsIndexSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, _ := mockRig(ctrl, true, false)

	require.True(t, device.IsIndexSet(registry, 0, device.FlagsDefault))
	require.False(t, device.IsIndexSet(registry, 1, device.FlagsDefault))
	require.True(t, device.IsIndexSet(registry, 1, device.FlagsGPU2))
	require.False(t, device.IsIndexSet(registry, 0, device.FlagsGPU2))
}

func TestSetAllOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, _ := mockRig(ctrl, false, false, false, false)

	set := device.Resolve(registry, device.FlagsGPU4|device.FlagsPrimary)

	var indices []int
	for i := range set.All() {
		indices = append(indices, i)
	}
	require.Equal(t, []int{0, 3}, indices)
}

type fakeDevice bool

func (d fakeDevice) IsPrimary() bool { return bool(d) }

func TestList(t *testing.T) {
	list := device.List{fakeDevice(true), fakeDevice(true), fakeDevice(false)}

	set := device.Resolve(list, device.FlagsDefault)
	require.Equal(t, 2, set.Count())
	require.Equal(t, device.FlagsPrimary|device.FlagsGPU2, set.Flags())
}

func TestIndexFlags(t *testing.T) {
	require.Equal(t, device.FlagsPrimary, device.IndexFlags(0))
	require.Equal(t, device.FlagsGPU5, device.IndexFlags(4))
	require.Equal(t, "FlagsDefault", device.FlagsDefault.String())
}
