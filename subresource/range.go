// Package subresource partitions the mip level by array layer rectangle of a GPU image so that
// overlapping regions can be tracked independently.
package subresource

import (
	"fmt"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/armory/resutils"
)

// Range is a rectangle of subresources: MipCount mip levels starting at BaseMip, crossed with
// LayerCount array layers starting at BaseLayer
type Range struct {
	BaseMip    int
	MipCount   int
	BaseLayer  int
	LayerCount int
}

func (r Range) String() string {
	return fmt.Sprintf("{mips %d+%d, layers %d+%d}", r.BaseMip, r.MipCount, r.BaseLayer, r.LayerCount)
}

// EndMip is one past the last mip level in the range
func (r Range) EndMip() int {
	return r.BaseMip + r.MipCount
}

// EndLayer is one past the last array layer in the range
func (r Range) EndLayer() int {
	return r.BaseLayer + r.LayerCount
}

// Empty reports whether the range contains no subresources
func (r Range) Empty() bool {
	return r.MipCount <= 0 || r.LayerCount <= 0
}

// Subresources returns the number of (mip, layer) pairs in the range
func (r Range) Subresources() int {
	if r.Empty() {
		return 0
	}
	return r.MipCount * r.LayerCount
}

// Validate returns an error marked with resutils.InvalidRangeError if the range is empty or
// starts before mip 0 or layer 0
func (r Range) Validate() error {
	if r.BaseMip < 0 || r.BaseLayer < 0 {
		return cerrors.Wrapf(resutils.InvalidRangeError, "range %s has a negative base", r)
	}
	if r.Empty() {
		return cerrors.Wrapf(resutils.InvalidRangeError, "range %s is empty", r)
	}
	return nil
}

// Contains reports whether every subresource in other is also in r
func (r Range) Contains(other Range) bool {
	return other.BaseMip >= r.BaseMip && other.EndMip() <= r.EndMip() &&
		other.BaseLayer >= r.BaseLayer && other.EndLayer() <= r.EndLayer()
}

// Intersect returns the subresources shared by both ranges. The second return value is false
// when the ranges do not overlap, in which case the returned range is the zero value.
func (r Range) Intersect(other Range) (Range, bool) {
	if !Overlaps(r, other) {
		return Range{}, false
	}

	baseMip := max(r.BaseMip, other.BaseMip)
	baseLayer := max(r.BaseLayer, other.BaseLayer)
	return Range{
		BaseMip:    baseMip,
		MipCount:   min(r.EndMip(), other.EndMip()) - baseMip,
		BaseLayer:  baseLayer,
		LayerCount: min(r.EndLayer(), other.EndLayer()) - baseLayer,
	}, true
}

// Overlaps reports whether a and b share at least one subresource. Ranges that only touch at an
// edge do not overlap.
func Overlaps(a, b Range) bool {
	return a.BaseLayer < b.EndLayer() && a.EndLayer() > b.BaseLayer &&
		a.BaseMip < b.EndMip() && a.EndMip() > b.BaseMip
}
