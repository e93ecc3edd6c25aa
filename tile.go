package medianfilter

import "sort"

// averager computes the domain-appropriate "value between" two tile
// values for an even-cardinality window, per spec.md section 4.3: exact
// midpoint for floating images, round-half-up for 8-bit images.
type averager[T uint8 | float32] func(a, b T) T

func averageFloat32(a, b float32) float32 { return (a + b) / 2 }

func averageU8(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + 1) / 2)
}

// tileState owns one tile's geometry, its rank/value tables, and one
// bitmapIndex tracking which ranks currently lie inside the kernel
// window. It is constructed once per tile and mutated only through
// add/remove during the window traversal; see spec.md sections 3-4.3.
type tileState[T uint8 | float32] struct {
	bounds rect // tile rectangle, in global image coordinates
	bx, by int  // tile width/height, local

	rank  []int // tile-local pixel index -> rank
	value []T   // rank -> value

	bm  *bitmapIndex
	avg averager[T]
}

// newTileState builds the rank/value tables for the tile by a stable
// ascending sort of its pixels (ties broken by tile-local index), then
// allocates a zeroed bitmapIndex sized to the tile's pixel count.
func newTileState[T uint8 | float32](img *Plane[T], bounds rect, avg averager[T]) *tileState[T] {
	bx, by := bounds.width(), bounds.height()
	n := bx * by

	order := make([]int, n)
	values := make([]T, n)
	for ly := 0; ly < by; ly++ {
		gy := bounds.y0 + ly
		rowOff := gy * img.Width
		for lx := 0; lx < bx; lx++ {
			idx := ly*bx + lx
			order[idx] = idx
			values[idx] = img.Pix[rowOff+bounds.x0+lx]
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})

	rank := make([]int, n)
	value := make([]T, n)
	for r, localIdx := range order {
		rank[localIdx] = r
		value[r] = values[localIdx]
	}

	return &tileState[T]{
		bounds: bounds,
		bx:     bx,
		by:     by,
		rank:   rank,
		value:  value,
		bm:     newBitmapIndex(n),
		avg:    avg,
	}
}

// add inserts the tile pixel at tile-local (ix, jy) into the window. A
// no-op if (ix, jy) lies outside the tile, which happens exactly when the
// kernel extends past the image edge (spec.md section 4.3).
func (t *tileState[T]) add(ix, jy int) {
	if ix < 0 || ix >= t.bx || jy < 0 || jy >= t.by {
		return
	}
	t.bm.toggleAdd(t.rank[jy*t.bx+ix])
}

// remove is the inverse of add.
func (t *tileState[T]) remove(ix, jy int) {
	if ix < 0 || ix >= t.bx || jy < 0 || jy >= t.by {
		return
	}
	t.bm.toggleRemove(t.rank[jy*t.bx+ix])
}

// median returns the median of the values currently inside the window,
// per spec.md section 4.3. s == 0 does not arise under the traversal in
// traverse.go and is not guarded here: median on an empty window panics.
func (t *tileState[T]) median() T {
	s := t.bm.cardinality()
	r1 := t.bm.selectRank((s - 1) / 2)
	if s%2 == 1 {
		return t.value[r1]
	}
	r2 := t.bm.selectRank(s / 2)
	return t.avg(t.value[r1], t.value[r2])
}
