package vulkan

import (
	"github.com/vkngwrapper/armory/subresource"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// SubresourceRange converts a subresource range to the Vulkan representation covering aspect
func SubresourceRange(r subresource.Range, aspect core1_0.ImageAspectFlags) core1_0.ImageSubresourceRange {
	return core1_0.ImageSubresourceRange{
		AspectMask:     aspect,
		BaseMipLevel:   r.BaseMip,
		LevelCount:     r.MipCount,
		BaseArrayLayer: r.BaseLayer,
		LayerCount:     r.LayerCount,
	}
}

// Range converts a Vulkan subresource range to a subresource.Range, dropping the aspect mask
func Range(r core1_0.ImageSubresourceRange) subresource.Range {
	return subresource.Range{
		BaseMip:    r.BaseMipLevel,
		MipCount:   r.LevelCount,
		BaseLayer:  r.BaseArrayLayer,
		LayerCount: r.LayerCount,
	}
}

// NewLayoutTracker tracks the layout of every subresource of an image with the provided number
// of mip levels and array layers, all of which start out undefined
func NewLayoutTracker(mipLevels, arrayLayers int) (*subresource.Tracker[core1_0.ImageLayout], error) {
	return subresource.NewTracker(subresource.Range{
		MipCount:   mipLevels,
		LayerCount: arrayLayers,
	}, core1_0.ImageLayoutUndefined)
}

// LayoutBarrier is a layout transition that must be recorded before a subresource range can be
// used in a new layout
type LayoutBarrier struct {
	Range     core1_0.ImageSubresourceRange
	OldLayout core1_0.ImageLayout
	NewLayout core1_0.ImageLayout
}

// TransitionLayout moves r to layout in tracker and returns the barriers needed to get there.
// Subresources already in layout produce no barrier.
func TransitionLayout(tracker *subresource.Tracker[core1_0.ImageLayout], r core1_0.ImageSubresourceRange, layout core1_0.ImageLayout) ([]LayoutBarrier, error) {
	var barriers []LayoutBarrier
	err := tracker.Transition(Range(r), layout, func(piece subresource.Range, old core1_0.ImageLayout) {
		barriers = append(barriers, LayoutBarrier{
			Range:     SubresourceRange(piece, r.AspectMask),
			OldLayout: old,
			NewLayout: layout,
		})
	})
	if err != nil {
		return nil, err
	}

	return barriers, nil
}
