package subresource_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/armory/subresource"
)

func rng(baseMip, mipCount, baseLayer, layerCount int) subresource.Range {
	return subresource.Range{BaseMip: baseMip, MipCount: mipCount, BaseLayer: baseLayer, LayerCount: layerCount}
}

func requirePartition(t *testing.T, target, cutter subresource.Range, pieces []subresource.Range) {
	t.Helper()

	require.GreaterOrEqual(t, len(pieces), 1)
	require.LessOrEqual(t, len(pieces), subresource.MaxCutAreas)

	covered := 0
	for i, piece := range pieces {
		require.False(t, piece.Empty(), "piece %s of %s cut by %s is empty", piece, target, cutter)
		require.True(t, target.Contains(piece), "piece %s escapes %s", piece, target)
		require.True(t, cutter.Contains(piece) || !subresource.Overlaps(cutter, piece),
			"piece %s straddles cutter %s", piece, cutter)

		for _, other := range pieces[i+1:] {
			require.False(t, subresource.Overlaps(piece, other), "pieces %s and %s overlap", piece, other)
		}

		covered += piece.Subresources()
	}

	require.Equal(t, target.Subresources(), covered, "pieces of %s cut by %s do not cover it", target, cutter)
}

func TestCutScenario(t *testing.T) {
	target := rng(0, 4, 0, 6)
	cutter := rng(1, 2, 2, 2)

	pieces, count := subresource.Cut(target, cutter)
	require.Equal(t, 5, count)
	requirePartition(t, target, cutter, pieces[:count])
	require.Contains(t, pieces[:count], cutter)
	require.ElementsMatch(t, []subresource.Range{
		rng(0, 4, 0, 2),
		rng(0, 4, 4, 2),
		rng(0, 1, 2, 2),
		rng(3, 1, 2, 2),
		rng(1, 2, 2, 2),
	}, pieces[:count])
}

func TestCutCases(t *testing.T) {
	testCases := map[string]struct {
		Target   subresource.Range
		Cutter   subresource.Range
		Expected []subresource.Range
	}{
		"Disjoint": {
			Target:   rng(0, 2, 0, 2),
			Cutter:   rng(4, 2, 4, 2),
			Expected: []subresource.Range{rng(0, 2, 0, 2)},
		},
		"TouchingEdge": {
			Target:   rng(0, 2, 0, 2),
			Cutter:   rng(0, 2, 2, 2),
			Expected: []subresource.Range{rng(0, 2, 0, 2)},
		},
		"FullCover": {
			Target:   rng(1, 2, 1, 2),
			Cutter:   rng(0, 8, 0, 8),
			Expected: []subresource.Range{rng(1, 2, 1, 2)},
		},
		"Identical": {
			Target:   rng(0, 3, 0, 3),
			Cutter:   rng(0, 3, 0, 3),
			Expected: []subresource.Range{rng(0, 3, 0, 3)},
		},
		"LeftCutOnly": {
			Target:   rng(0, 2, 0, 4),
			Cutter:   rng(0, 2, 2, 4),
			Expected: []subresource.Range{rng(0, 2, 0, 2), rng(0, 2, 2, 2)},
		},
		"RightCutOnly": {
			Target:   rng(0, 2, 2, 4),
			Cutter:   rng(0, 2, 0, 4),
			Expected: []subresource.Range{rng(0, 2, 4, 2), rng(0, 2, 2, 2)},
		},
		"LeftCutWithMips": {
			Target:   rng(0, 4, 0, 4),
			Cutter:   rng(1, 1, 1, 8),
			Expected: []subresource.Range{rng(0, 4, 0, 1), rng(0, 1, 1, 3), rng(2, 2, 1, 3), rng(1, 1, 1, 3)},
		},
		"MipsOnly": {
			Target:   rng(0, 6, 0, 2),
			Cutter:   rng(2, 2, 0, 2),
			Expected: []subresource.Range{rng(0, 2, 0, 2), rng(4, 2, 0, 2), rng(2, 2, 0, 2)},
		},
		"NonZeroTargetBase": {
			Target:   rng(2, 2, 4, 4),
			Cutter:   rng(0, 3, 5, 1),
			Expected: []subresource.Range{rng(2, 2, 4, 1), rng(2, 2, 6, 2), rng(3, 1, 5, 1), rng(2, 1, 5, 1)},
		},
	}

	for testName, testCase := range testCases {
		t.Run(testName, func(t *testing.T) {
			pieces, count := subresource.Cut(testCase.Target, testCase.Cutter)
			require.Equal(t, testCase.Expected, pieces[:count])
			requirePartition(t, testCase.Target, testCase.Cutter, pieces[:count])
		})
	}
}

func TestCutExhaustive(t *testing.T) {
	for tm := 0; tm < 3; tm++ {
		for tmc := 1; tmc <= 4; tmc++ {
			for tl := 0; tl < 3; tl++ {
				for tlc := 1; tlc <= 4; tlc++ {
					target := rng(tm, tmc, tl, tlc)

					for cm := 0; cm < 7; cm++ {
						for cmc := 1; cmc <= 7-cm; cmc++ {
							for cl := 0; cl < 7; cl++ {
								for clc := 1; clc <= 7-cl; clc++ {
									cutter := rng(cm, cmc, cl, clc)

									pieces, count := subresource.Cut(target, cutter)
									requirePartition(t, target, cutter, pieces[:count])

									if !subresource.Overlaps(target, cutter) || cutter.Contains(target) {
										require.Equal(t, 1, count)
										require.Equal(t, target, pieces[0])
									} else {
										shared, ok := target.Intersect(cutter)
										require.True(t, ok)
										require.Contains(t, pieces[:count], shared)
									}
								}
							}
						}
					}
				}
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	require.True(t, subresource.Overlaps(rng(0, 2, 0, 2), rng(1, 2, 1, 2)))
	require.True(t, subresource.Overlaps(rng(1, 2, 1, 2), rng(0, 2, 0, 2)))
	require.False(t, subresource.Overlaps(rng(0, 2, 0, 2), rng(2, 2, 0, 2)))
	require.False(t, subresource.Overlaps(rng(0, 2, 0, 2), rng(0, 2, 2, 2)))
	require.False(t, subresource.Overlaps(rng(0, 0, 0, 2), rng(0, 2, 0, 2)))
}

func TestRangeValidate(t *testing.T) {
	require.NoError(t, rng(0, 1, 0, 1).Validate())
	require.Error(t, rng(0, 0, 0, 1).Validate())
	require.Error(t, rng(-1, 2, 0, 1).Validate())
	require.Error(t, rng(0, 1, 0, -3).Validate())
}
