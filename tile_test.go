package medianfilter

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTileStateRankIsPermutation(t *testing.T) {
	pix := []uint8{5, 3, 3, 9, 1, 3, 7, 2, 8}
	img := NewPlaneU8(pix, 3, 3)
	ts := newTileState(img, rect{x0: 0, y0: 0, x1: 2, y1: 2}, averageU8)

	seen := make([]bool, len(pix))
	for _, r := range ts.rank {
		require.False(t, seen[r], "rank %d used twice", r)
		seen[r] = true
	}
	for r, v := range ts.value {
		// value[rank[i]] must equal the original pixel i came from.
		found := false
		for i, rr := range ts.rank {
			if rr == r {
				assert.Equal(t, pix[i], v)
				found = true
			}
		}
		require.True(t, found)
	}
}

func TestNewTileStateStableTieBreak(t *testing.T) {
	// Five equal values: ties must be broken by ascending tile-local index.
	pix := []uint8{4, 4, 4, 1, 4, 4, 9, 9, 0}
	img := NewPlaneU8(pix, 3, 3)
	ts := newTileState(img, rect{x0: 0, y0: 0, x1: 2, y1: 2}, averageU8)

	// local indices 0,1,2,4,5 all hold value 4; they must receive ranks in
	// increasing order of local index once the smaller elements (idx 3
	// holding 1, idx 8 holding 0) are placed ahead of them.
	fourIdx := []int{0, 1, 2, 4, 5}
	for i := 1; i < len(fourIdx); i++ {
		assert.Less(t, ts.rank[fourIdx[i-1]], ts.rank[fourIdx[i]])
	}
}

func TestTileStateAddRemoveNoOpOutsideBounds(t *testing.T) {
	pix := []uint8{1, 2, 3, 4}
	img := NewPlaneU8(pix, 2, 2)
	ts := newTileState(img, rect{x0: 0, y0: 0, x1: 1, y1: 1}, averageU8)

	ts.add(-1, 0)
	ts.add(5, 5)
	ts.remove(-1, -1)
	assert.Equal(t, 0, ts.bm.cardinality())
}

func TestTileStateMedianMatchesBruteForce(t *testing.T) {
	pix := []uint8{9, 2, 7, 4, 1, 6, 3, 8, 5}
	img := NewPlaneU8(pix, 3, 3)
	ts := newTileState(img, rect{x0: 0, y0: 0, x1: 2, y1: 2}, averageU8)

	for ly := 0; ly < 3; ly++ {
		for lx := 0; lx < 3; lx++ {
			ts.add(lx, ly)
		}
	}

	sorted := append([]uint8(nil), pix...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	want := sorted[len(sorted)/2] // odd cardinality (9): exact middle
	assert.Equal(t, want, ts.median())
}

func TestAverageU8RoundHalfUp(t *testing.T) {
	assert.Equal(t, uint8(3), averageU8(2, 4))  // exact
	assert.Equal(t, uint8(5), averageU8(4, 5))  // rounds up
	assert.Equal(t, uint8(128), averageU8(0, 255))
}

func TestAverageFloat32Exact(t *testing.T) {
	assert.Equal(t, float32(1.5), averageFloat32(1, 2))
}
