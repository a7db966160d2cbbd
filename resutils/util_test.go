package resutils

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(1, "samples"))
	require.NoError(t, CheckPow2(8, "samples"))

	err := CheckPow2(6, "samples")
	require.Error(t, err)
	require.True(t, errors.Is(err, PowerOfTwoError))
	require.Contains(t, err.Error(), "samples is 6")

	require.Error(t, CheckPow2(0, "samples"))
}

func TestHashCombineOrderSensitive(t *testing.T) {
	ab := HashCombine(HashCombine(0, 1), 2)
	ba := HashCombine(HashCombine(0, 2), 1)

	require.NotEqual(t, ab, ba)
	require.Equal(t, ab, HashCombine(HashCombine(0, 1), 2))
}

func TestStatisticsAdd(t *testing.T) {
	stats := Statistics{EntryCount: 3, FreeCount: 1, CreateCount: 3, ReuseCount: 2}
	stats.AddStatistics(&Statistics{EntryCount: 2, FreeCount: 2, CreateCount: 4, ReuseCount: 0})

	require.Equal(t, Statistics{EntryCount: 5, FreeCount: 3, CreateCount: 7, ReuseCount: 2}, stats)
	require.Equal(t, 2, stats.InUseCount())

	stats.Clear()
	require.Equal(t, Statistics{}, stats)
}
