package medianfilter

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// run is the shared engine behind Gray8 and Float32: it partitions the
// image into interiors (section 4.6), builds the tile rectangle and
// per-tile state for each one (sections 3-4.2), and dispatches the
// window traversal (section 4.4) across a worker pool.
//
// Tiles are fully independent: each owns a private rank table and
// bitmapIndex, and writes only to the output coordinates inside its own
// interior, so no synchronization is needed beyond the final join
// (spec.md section 5). errgroup.WithContext gives that join together
// with cooperative cancellation, replacing the teacher's hand-rolled
// handle/sync.WaitGroup/abort-flag trio with a real dependency already
// present in the wider pack (golang.org/x/sync).
func run[T uint8 | float32](ctx context.Context, dst, src *Plane[T], k Kernel, avg averager[T], opts []Option) error {
	if err := validate(dst, src, k); err != nil {
		return err
	}

	w, h := src.Width, src.Height
	if k.HalfY == 0 && k.HalfX == 0 {
		copy(dst.Pix, src.Pix)
		return nil
	}

	cfg := resolveConfig(opts)
	bx, by := blockSize(w, h, cfg.workerCount)
	interiors := partitionInteriors(w, h, bx, by)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workerCount)

	for _, interior := range interiors {
		interior := interior
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			tileBounds := tileRectFor(interior, w, h, k.HalfY, k.HalfX)
			ts := newTileState(src, tileBounds, avg)
			traverseTile(ts, tileBounds, interior, k.HalfY, k.HalfX, dst)
			return nil
		})
	}
	return g.Wait()
}

// Gray8 computes the 2-D median filter of an 8-bit single-channel image,
// per spec.md section 6. Even-cardinality windows average with
// round-half-up ((a+b+1)/2).
func Gray8(ctx context.Context, dst, src *Plane[uint8], k Kernel, opts ...Option) error {
	return run(ctx, dst, src, k, averageU8, opts)
}

// Float32 computes the 2-D median filter of a 32-bit floating-point
// single-channel image, per spec.md section 6. Even-cardinality windows
// average exactly ((a+b)/2).
func Float32(ctx context.Context, dst, src *Plane[float32], k Kernel, opts ...Option) error {
	return run(ctx, dst, src, k, averageFloat32, opts)
}
