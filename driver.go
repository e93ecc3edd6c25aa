package medianfilter

import "math"

// blockSize picks the target interior rectangle size (Bx, By) for an
// image of width w and height h given a desired parallelism p, per
// spec.md section 4.6.
func blockSize(w, h, p int) (bx, by int) {
	if w <= 64 && h <= 64 {
		return w, h
	}

	t := 3 * p
	if t < 4 {
		t = 4
	}
	d := int(math.Sqrt(float64(t)))
	if d < 1 {
		d = 1
	}

	bx = ceilDiv(w, d)
	if bx < 32 {
		bx = 32
	}
	by = ceilDiv(h, d)
	if by < 32 {
		by = 32
	}

	if limit := max(w/2, 64); bx > limit {
		bx = limit
	}
	if limit := max(h/2, 64); by > limit {
		by = limit
	}
	return bx, by
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// partitionInteriors splits [0,w) x [0,h) into non-overlapping interior
// rectangles of target size bx x by. Interiors partition the image: they
// are disjoint and cover every pixel exactly once (spec.md section 3).
func partitionInteriors(w, h, bx, by int) []rect {
	var interiors []rect
	for y0 := 0; y0 < h; y0 += by {
		y1 := y0 + by - 1
		if y1 > h-1 {
			y1 = h - 1
		}
		for x0 := 0; x0 < w; x0 += bx {
			x1 := x0 + bx - 1
			if x1 > w-1 {
				x1 = w - 1
			}
			interiors = append(interiors, rect{x0: x0, y0: y0, x1: x1, y1: y1})
		}
	}
	return interiors
}

// tileRectFor inflates an interior rectangle by the kernel half-extents
// and clips it to the image bounds, producing the tile rectangle of
// spec.md section 3.
func tileRectFor(interior rect, w, h, hy, hx int) rect {
	inflated := rect{
		x0: interior.x0 - hx,
		y0: interior.y0 - hy,
		x1: interior.x1 + hx,
		y1: interior.y1 + hy,
	}
	return inflated.clip(w, h)
}
