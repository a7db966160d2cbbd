package resutils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint | ~uint32 | ~uint64
}

func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// HashCombine mixes value into seed and returns the result. Combining is order-sensitive, so
// folding the same values in a different order produces a different hash.
func HashCombine(seed uint64, value uint64) uint64 {
	return seed ^ (value + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}
