package medianfilter

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Plane is a dense, row-major, single-channel image buffer. It plays the
// role the teacher's *image.RGBA/*image.NRGBA play for the tiled resampler:
// the concrete pixel container every exported entry point operates on.
type Plane[T uint8 | float32] struct {
	Pix           []T
	Width, Height int
}

// NewPlaneU8 wraps an existing row-major uint8 buffer. The buffer is used
// as-is (not copied); len(pix) must equal width*height.
func NewPlaneU8(pix []uint8, width, height int) *Plane[uint8] {
	return &Plane[uint8]{Pix: pix, Width: width, Height: height}
}

// NewPlaneF32 wraps an existing row-major float32 buffer. The buffer is
// used as-is (not copied); len(pix) must equal width*height.
func NewPlaneF32(pix []float32, width, height int) *Plane[float32] {
	return &Plane[float32]{Pix: pix, Width: width, Height: height}
}

// AllocPlaneU8 allocates a fresh zeroed output plane of the given width and
// height, following the teacher's convention of a write-once, non-aliased dest.
func AllocPlaneU8(width, height int) *Plane[uint8] {
	return &Plane[uint8]{Pix: make([]uint8, width*height), Width: width, Height: height}
}

// AllocPlaneF32 allocates a fresh zeroed output plane of the given width
// and height.
func AllocPlaneF32(width, height int) *Plane[float32] {
	return &Plane[float32]{Pix: make([]float32, width*height), Width: width, Height: height}
}

func (p *Plane[T]) at(x, y int) T { return p.Pix[y*p.Width+x] }

func (p *Plane[T]) set(x, y int, v T) { p.Pix[y*p.Width+x] = v }

// validate checks the shape/aliasing preconditions shared by every
// exported filter entry point, mirroring the up-front checks the teacher
// performs in RGBA/NRGBA/RGBAGamma before any tile is dispatched.
func validate[T uint8 | float32](dst, src *Plane[T], k Kernel) error {
	if src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("medianfilter: invalid source size %dx%d", src.Width, src.Height)
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return fmt.Errorf("medianfilter: dst size %dx%d does not match src size %dx%d",
			dst.Width, dst.Height, src.Width, src.Height)
	}
	if len(src.Pix) != src.Width*src.Height || len(dst.Pix) != dst.Width*dst.Height {
		return fmt.Errorf("medianfilter: plane buffer length does not match width*height")
	}
	if k.HalfY < 0 || k.HalfX < 0 {
		return fmt.Errorf("medianfilter: negative kernel half-extent (%d,%d)", k.HalfY, k.HalfX)
	}
	if len(src.Pix) > 0 && len(dst.Pix) > 0 && &src.Pix[0] == &dst.Pix[0] {
		return fmt.Errorf("medianfilter: src and dst must not alias")
	}
	return nil
}

// PlaneFromGray copies an *image.Gray into a *Plane[uint8], the stdlib
// single-channel 8-bit image type the teacher's own package family
// (github.com/oov/downscale) builds around for its RGBA/NRGBA variants.
func PlaneFromGray(img *image.Gray) *Plane[uint8] {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	p := AllocPlaneU8(w, h)
	for y := 0; y < h; y++ {
		srcOff := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(p.Pix[y*w:(y+1)*w], img.Pix[srcOff:srcOff+w])
	}
	return p
}

// ToGray renders a uint8 plane back into a stdlib *image.Gray. Go's generic
// methods cannot be specialized per instantiation, so this is a plain
// function rather than a method on Plane[uint8].
func ToGray(p *Plane[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		row := p.Pix[y*p.Width : (y+1)*p.Width]
		dstOff := img.PixOffset(0, y)
		copy(img.Pix[dstOff:dstOff+p.Width], row)
	}
	return img
}

// PlaneFromGray16 downsamples a 16-bit grayscale source (e.g. decoded
// 16-bit PNG/TIFF data) to an 8-bit Plane using golang.org/x/image/draw,
// the same "wider source, narrower working type" conversion deepteams-webp
// and gogpu-gg reach for golang.org/x/image to perform.
func PlaneFromGray16(img *image.Gray16) *Plane[uint8] {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(gray, gray.Bounds(), img, img.Rect.Min, draw.Src)
	return PlaneFromGray(gray)
}

// PlaneFromNRGBA extracts the luma channel of an *image.NRGBA into a
// single-channel Plane, using golang.org/x/image/draw's color-model
// conversion rather than hand-rolling the NRGBA->Gray weights.
func PlaneFromNRGBA(img *image.NRGBA) *Plane[uint8] {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(gray, gray.Bounds(), img, img.Rect.Min, draw.Src)
	return PlaneFromGray(gray)
}
