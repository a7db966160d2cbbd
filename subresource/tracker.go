package subresource

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/armory/resutils"
)

// Region is a range of subresources that all share one state
type Region[S comparable] struct {
	Range Range
	State S
}

// Tracker records a state, such as an image layout, for every subresource of an image. Regions
// are split with Cut as transitions touch part of them, and neighbours that end up in the same
// state are merged again, so the tracked regions always partition the full range of the image.
//
// A Tracker is not safe for concurrent use.
type Tracker[S comparable] struct {
	full    Range
	regions []Region[S]
}

// NewTracker creates a Tracker for the provided image range, with every subresource in the
// initial state
func NewTracker[S comparable](full Range, initial S) (*Tracker[S], error) {
	if err := full.Validate(); err != nil {
		return nil, err
	}

	return &Tracker[S]{
		full:    full,
		regions: []Region[S]{{Range: full, State: initial}},
	}, nil
}

// Full returns the range of the image being tracked
func (t *Tracker[S]) Full() Range {
	return t.full
}

// Transition moves every subresource in r to state. For each tracked piece inside r whose
// state was not already state, visit is called with the piece and its previous state before
// the new state is recorded. visit may be nil.
func (t *Tracker[S]) Transition(r Range, state S, visit func(piece Range, old S)) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !t.full.Contains(r) {
		return cerrors.Wrapf(resutils.InvalidRangeError, "range %s lies outside the tracked range %s", r, t.full)
	}

	regions := make([]Region[S], 0, len(t.regions)+MaxCutAreas-1)
	for _, region := range t.regions {
		if !Overlaps(region.Range, r) {
			regions = append(regions, region)
			continue
		}

		pieces, count := Cut(region.Range, r)
		for _, piece := range pieces[:count] {
			if !Overlaps(piece, r) {
				regions = append(regions, Region[S]{Range: piece, State: region.State})
				continue
			}

			if region.State != state && visit != nil {
				visit(piece, region.State)
			}
			regions = append(regions, Region[S]{Range: piece, State: state})
		}
	}

	t.regions = regions
	t.coalesce()
	resutils.DebugValidate(t)
	return nil
}

// coalesce merges neighbouring regions in the same state whose union is itself a range, until
// no such pair is left, so the region list does not grow without bound across transitions
func (t *Tracker[S]) coalesce() {
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(t.regions); i++ {
			for j := i + 1; j < len(t.regions); j++ {
				if t.regions[i].State != t.regions[j].State {
					continue
				}

				union, ok := join(t.regions[i].Range, t.regions[j].Range)
				if !ok {
					continue
				}

				t.regions[i].Range = union
				t.regions = append(t.regions[:j], t.regions[j+1:]...)
				merged = true
				j--
			}
		}
	}
}

// join returns the union of two disjoint ranges that share an edge along one axis and span the
// same extent along the other
func join(a, b Range) (Range, bool) {
	if a.BaseMip == b.BaseMip && a.MipCount == b.MipCount {
		if a.EndLayer() == b.BaseLayer {
			return Range{BaseMip: a.BaseMip, MipCount: a.MipCount, BaseLayer: a.BaseLayer, LayerCount: a.LayerCount + b.LayerCount}, true
		}
		if b.EndLayer() == a.BaseLayer {
			return Range{BaseMip: a.BaseMip, MipCount: a.MipCount, BaseLayer: b.BaseLayer, LayerCount: a.LayerCount + b.LayerCount}, true
		}
	}

	if a.BaseLayer == b.BaseLayer && a.LayerCount == b.LayerCount {
		if a.EndMip() == b.BaseMip {
			return Range{BaseMip: a.BaseMip, MipCount: a.MipCount + b.MipCount, BaseLayer: a.BaseLayer, LayerCount: a.LayerCount}, true
		}
		if b.EndMip() == a.BaseMip {
			return Range{BaseMip: b.BaseMip, MipCount: a.MipCount + b.MipCount, BaseLayer: a.BaseLayer, LayerCount: a.LayerCount}, true
		}
	}

	return Range{}, false
}

// State returns the state of a single subresource. The second return value is false if the
// subresource is outside the tracked range.
func (t *Tracker[S]) State(mip, layer int) (S, bool) {
	point := Range{BaseMip: mip, MipCount: 1, BaseLayer: layer, LayerCount: 1}
	for _, region := range t.regions {
		if region.Range.Contains(point) {
			return region.State, true
		}
	}

	var zero S
	return zero, false
}

// States returns the parts of tracked regions that overlap r, with their states
func (t *Tracker[S]) States(r Range) []Region[S] {
	var states []Region[S]
	for _, region := range t.regions {
		shared, ok := region.Range.Intersect(r)
		if !ok {
			continue
		}
		states = append(states, Region[S]{Range: shared, State: region.State})
	}

	return states
}

// Regions returns a copy of every tracked region
func (t *Tracker[S]) Regions() []Region[S] {
	regions := make([]Region[S], len(t.regions))
	copy(regions, t.regions)
	return regions
}

// Validate checks that the tracked regions are disjoint and together cover exactly the full
// range of the image
func (t *Tracker[S]) Validate() error {
	covered := 0
	for i, region := range t.regions {
		if region.Range.Empty() {
			return errors.Errorf("tracked region %d is empty: %s", i, region.Range)
		}
		if !t.full.Contains(region.Range) {
			return errors.Errorf("tracked region %s lies outside the full range %s", region.Range, t.full)
		}

		for j := i + 1; j < len(t.regions); j++ {
			if Overlaps(region.Range, t.regions[j].Range) {
				return errors.Errorf("tracked regions %s and %s overlap", region.Range, t.regions[j].Range)
			}
		}

		covered += region.Range.Subresources()
	}

	if covered != t.full.Subresources() {
		return errors.Errorf("tracked regions cover %d subresources but the full range has %d", covered, t.full.Subresources())
	}

	return nil
}
