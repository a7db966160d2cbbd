package subresource_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/armory/resutils"
	"github.com/vkngwrapper/armory/subresource"
)

type layout int

const (
	layoutUndefined layout = iota
	layoutShaderRead
	layoutColorAttachment
	layoutTransferDst
)

type transition struct {
	Piece subresource.Range
	Old   layout
}

func TestTrackerTransition(t *testing.T) {
	tracker, err := subresource.NewTracker(rng(0, 4, 0, 6), layoutUndefined)
	require.NoError(t, err)

	var visited []transition
	visit := func(piece subresource.Range, old layout) {
		visited = append(visited, transition{Piece: piece, Old: old})
	}

	require.NoError(t, tracker.Transition(rng(1, 2, 2, 2), layoutColorAttachment, visit))
	require.Equal(t, []transition{{Piece: rng(1, 2, 2, 2), Old: layoutUndefined}}, visited)
	require.Len(t, tracker.Regions(), 5)
	require.NoError(t, tracker.Validate())

	state, ok := tracker.State(1, 2)
	require.True(t, ok)
	require.Equal(t, layoutColorAttachment, state)

	state, ok = tracker.State(0, 0)
	require.True(t, ok)
	require.Equal(t, layoutUndefined, state)

	_, ok = tracker.State(4, 0)
	require.False(t, ok)

	// Transitioning the whole image visits every piece that changes
	visited = nil
	require.NoError(t, tracker.Transition(tracker.Full(), layoutShaderRead, visit))
	require.Len(t, visited, 5)
	require.NoError(t, tracker.Validate())

	covered := 0
	for _, v := range visited {
		covered += v.Piece.Subresources()
		if v.Piece == rng(1, 2, 2, 2) {
			require.Equal(t, layoutColorAttachment, v.Old)
		} else {
			require.Equal(t, layoutUndefined, v.Old)
		}
	}
	require.Equal(t, 24, covered)

	// A transition to the current state visits nothing
	visited = nil
	require.NoError(t, tracker.Transition(rng(0, 1, 0, 1), layoutShaderRead, visit))
	require.Empty(t, visited)
}

func TestTrackerStates(t *testing.T) {
	tracker, err := subresource.NewTracker(rng(0, 2, 0, 2), layoutUndefined)
	require.NoError(t, err)

	require.NoError(t, tracker.Transition(rng(0, 1, 0, 2), layoutTransferDst, nil))

	states := tracker.States(rng(0, 2, 1, 1))
	require.ElementsMatch(t, []subresource.Region[layout]{
		{Range: rng(0, 1, 1, 1), State: layoutTransferDst},
		{Range: rng(1, 1, 1, 1), State: layoutUndefined},
	}, states)

	require.Empty(t, tracker.States(rng(4, 1, 4, 1)))
}

func TestTrackerRejectsBadRanges(t *testing.T) {
	_, err := subresource.NewTracker(rng(0, 0, 0, 1), layoutUndefined)
	require.True(t, errors.Is(err, resutils.InvalidRangeError))

	tracker, err := subresource.NewTracker(rng(0, 2, 0, 2), layoutUndefined)
	require.NoError(t, err)

	err = tracker.Transition(rng(1, 2, 0, 1), layoutShaderRead, nil)
	require.True(t, errors.Is(err, resutils.InvalidRangeError))

	err = tracker.Transition(rng(0, 1, 0, 0), layoutShaderRead, nil)
	require.True(t, errors.Is(err, resutils.InvalidRangeError))
	require.Len(t, tracker.Regions(), 1)
}

func TestTrackerRandomTransitionsStayPartitioned(t *testing.T) {
	full := rng(0, 5, 0, 5)
	tracker, err := subresource.NewTracker(full, layoutUndefined)
	require.NoError(t, err)

	states := []layout{layoutShaderRead, layoutColorAttachment, layoutTransferDst}
	step := 0
	for baseMip := 0; baseMip < 5; baseMip++ {
		for baseLayer := 4; baseLayer >= 0; baseLayer-- {
			r := rng(baseMip, 5-baseMip-(step%(5-baseMip)), baseLayer, 1+step%(5-baseLayer))
			require.NoError(t, tracker.Transition(r, states[step%len(states)], nil))
			require.NoError(t, tracker.Validate())

			for _, region := range tracker.States(r) {
				require.Equal(t, states[step%len(states)], region.State)
			}
			step++
		}
	}
}

func TestTrackerMergesNeighbours(t *testing.T) {
	full := rng(0, 4, 0, 6)

	testCases := map[string]struct {
		Transitions []subresource.Region[layout]
		Expected    []subresource.Region[layout]
	}{
		"RoundTrip": {
			Transitions: []subresource.Region[layout]{
				{Range: rng(1, 2, 2, 2), State: layoutColorAttachment},
				{Range: rng(1, 2, 2, 2), State: layoutUndefined},
			},
			Expected: []subresource.Region[layout]{
				{Range: full, State: layoutUndefined},
			},
		},
		"AdjacentLayers": {
			Transitions: []subresource.Region[layout]{
				{Range: rng(0, 4, 0, 3), State: layoutShaderRead},
				{Range: rng(0, 4, 3, 3), State: layoutShaderRead},
			},
			Expected: []subresource.Region[layout]{
				{Range: full, State: layoutShaderRead},
			},
		},
		"AdjacentMips": {
			Transitions: []subresource.Region[layout]{
				{Range: rng(0, 1, 1, 2), State: layoutTransferDst},
				{Range: rng(1, 1, 1, 2), State: layoutTransferDst},
			},
			Expected: []subresource.Region[layout]{
				{Range: rng(0, 2, 1, 2), State: layoutTransferDst},
			},
		},
		"Disjoint": {
			Transitions: []subresource.Region[layout]{
				{Range: rng(0, 1, 0, 2), State: layoutTransferDst},
				{Range: rng(2, 1, 3, 2), State: layoutTransferDst},
			},
			Expected: []subresource.Region[layout]{
				{Range: rng(0, 1, 0, 2), State: layoutTransferDst},
				{Range: rng(2, 1, 3, 2), State: layoutTransferDst},
			},
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			tracker, err := subresource.NewTracker(full, layoutUndefined)
			require.NoError(t, err)

			for _, transition := range testCase.Transitions {
				require.NoError(t, tracker.Transition(transition.Range, transition.State, nil))
				require.NoError(t, tracker.Validate())
			}

			includeUndefined := false
			for _, expected := range testCase.Expected {
				includeUndefined = includeUndefined || expected.State == layoutUndefined
			}

			var regions []subresource.Region[layout]
			for _, region := range tracker.Regions() {
				if region.State != layoutUndefined || includeUndefined {
					regions = append(regions, region)
				}
			}
			require.ElementsMatch(t, testCase.Expected, regions)
		})
	}
}

func TestTrackerRegionCountStaysBounded(t *testing.T) {
	tracker, err := subresource.NewTracker(rng(0, 8, 0, 8), layoutUndefined)
	require.NoError(t, err)

	for frame := 0; frame < 100; frame++ {
		target := rng(frame%8, 1, (frame*3)%8, 1)
		require.NoError(t, tracker.Transition(target, layoutColorAttachment, nil))
		require.NoError(t, tracker.Transition(target, layoutShaderRead, nil))
		require.NoError(t, tracker.Transition(tracker.Full(), layoutShaderRead, nil))
		require.Len(t, tracker.Regions(), 1)
	}
}
