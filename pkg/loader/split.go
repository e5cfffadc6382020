package loader

import (
	"math"
	"math/rand"

	"github.com/Mouryagna/ML-Project/pkg/data"
)

const (
	DefaultTestSize = 0.2
	DefaultSeed     = 42
)

// Permutation returns a permutation of [0, n) drawn from a math/rand
// source seeded with seed. The sequence is fixed for a given (n, seed).
func Permutation(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

// TestCount is the number of rows held out for testing: round(ratio*n)
// clamped to [0, n].
func TestCount(n int, testRatio float64) int {
	nTest := int(math.Round(float64(n) * testRatio))
	if nTest < 0 {
		return 0
	}
	if nTest > n {
		return n
	}
	return nTest
}

// TrainTestSplit splits t into train and test tables by ratio. The first
// TestCount permuted indices form the test table and the rest the train
// table; both keep permutation order.
func TrainTestSplit(t *data.Table, testRatio float64, seed int64) (train, test *data.Table) {
	n := t.Len()
	indices := Permutation(n, seed)
	nTest := TestCount(n, testRatio)
	return t.Select(indices[nTest:]), t.Select(indices[:nTest])
}
