// Package medianfilter implements a 2-D median filter over dense
// single-channel images using a ranked-bitmap sliding-window engine.
//
// The engine converts each tile's pixel values into dense ranks once at
// construction, then maintains an incremental population-count index
// (bitmapIndex) of which ranks currently lie inside the kernel window as
// a boustrophedon traversal slides the window across the tile one row or
// column at a time. Tiles are independent and are dispatched to a worker
// pool, so the whole image is filtered in parallel without any
// synchronization beyond a final join.
package medianfilter
