package medianfilter

// traverseTile drives the kernel window across interior (in global image
// coordinates) using the boustrophedon path of spec.md section 4.4:
// a prime step followed by a column loop that advances one column at a
// time and sweeps rows alternately downward and upward, so consecutive
// output pixels differ from the previous window by exactly one row or
// column. Each interior pixel is written to out exactly once.
func traverseTile[T uint8 | float32](ts *tileState[T], tileBounds, interior rect, hy, hx int, out *Plane[T]) {
	lx0 := interior.x0 - tileBounds.x0
	ly0 := interior.y0 - tileBounds.y0
	lx1 := interior.x1 - tileBounds.x0
	ly1 := interior.y1 - tileBounds.y0

	// Prime step: every cell of the first column's kernel region except
	// its rightmost column, which the first column-advance below adds.
	for jy := ly0 - hy; jy <= ly0+hy; jy++ {
		for ix := lx0 - hx; ix <= lx0+hx-1; ix++ {
			ts.add(ix, jy)
		}
	}

	down := true
	for lx := lx0; lx <= lx1; lx++ {
		// The window sits on the row where the previous sweep ended, which
		// is the row this column's sweep starts from.
		cy := ly0
		if !down {
			cy = ly1
		}
		for jy := cy - hy; jy <= cy+hy; jy++ {
			ts.remove(lx-hx-1, jy)
			ts.add(lx+hx, jy)
		}

		gx := tileBounds.x0 + lx
		if down {
			for ly := ly0; ly <= ly1; ly++ {
				out.set(gx, tileBounds.y0+ly, ts.median())
				if ly != ly1 {
					for ix := lx - hx; ix <= lx+hx; ix++ {
						ts.remove(ix, ly-hy)
						ts.add(ix, ly+hy+1)
					}
				}
			}
		} else {
			for ly := ly1; ly >= ly0; ly-- {
				out.set(gx, tileBounds.y0+ly, ts.median())
				if ly != ly0 {
					for ix := lx - hx; ix <= lx+hx; ix++ {
						ts.remove(ix, ly+hy)
						ts.add(ix, ly-hy-1)
					}
				}
			}
		}
		down = !down
	}
}
