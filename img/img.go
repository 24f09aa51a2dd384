// Package img decodes images into the RGBA8 layout FNA3D textures take.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized. Decoded images can be
// forced to a size, either stretched or zoomed (scaled to cover and
// cropped around the centre). Fully transparent pixels come out as
// transparent black so that filtering never bleeds hidden colors.
//
// The result is an *image.NRGBA, which fna3d.Device.CreateTextureFromImage
// uploads directly.
package img

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

var (
	// ErrEmptyData is returned when there is nothing to decode.
	ErrEmptyData = errors.New("img: empty data")

	// ErrInvalidSize is returned for a non-positive forced size.
	ErrInvalidSize = errors.New("img: invalid size")
)

// Option configures Decode.
type Option func(*options)

type options struct {
	w, h int
	zoom bool
}

// ForceSize resizes the decoded image to w x h.
func ForceSize(w, h int) Option {
	return func(o *options) {
		o.w, o.h = w, h
	}
}

// Zoom makes ForceSize keep the aspect ratio: the image is scaled to cover
// the forced size and the overflow is cropped evenly from both sides.
func Zoom(on bool) Option {
	return func(o *options) {
		o.zoom = on
	}
}

// Decode reads an image in any registered format.
func Decode(r io.Reader, opts ...Option) (*image.NRGBA, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.w < 0 || o.h < 0 || (o.w == 0) != (o.h == 0) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.w, o.h)
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("img: decode: %w", err)
	}

	var dst *image.NRGBA
	switch {
	case o.w == 0:
		dst = toNRGBA(src)
	case o.zoom:
		dst = zoom(src, o.w, o.h)
	default:
		dst = image.NewNRGBA(image.Rect(0, 0, o.w, o.h))
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	clearTransparent(dst)
	return dst, nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte, opts ...Option) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), opts...)
}

// Load decodes the image file at path.
func Load(path string, opts ...Option) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("img: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, opts...)
}

// EncodePNG writes m as PNG.
func EncodePNG(w io.Writer, m image.Image) error {
	if err := png.Encode(w, m); err != nil {
		return fmt.Errorf("img: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG writes m as JPEG. quality is clamped to 1..100.
func EncodeJPEG(w io.Writer, m image.Image, quality int) error {
	quality = min(max(quality, 1), 100)
	if err := jpeg.Encode(w, m, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("img: encode JPEG: %w", err)
	}
	return nil
}

// FromPixels wraps tightly packed RGBA8 rows, such as the output of
// Device.ReadBackbuffer, without copying.
func FromPixels(pix []byte, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if len(pix) < w*h*4 {
		return nil, fmt.Errorf("img: %d bytes for %dx%d pixels", len(pix), w, h)
	}
	return &image.NRGBA{Pix: pix[:w*h*4], Stride: w * 4, Rect: image.Rect(0, 0, w, h)}, nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == b.Dx()*4 {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func zoom(src image.Image, w, h int) *image.NRGBA {
	b := src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	scale := max(float64(w)/sw, float64(h)/sh)

	cw := min(int(float64(w)/scale+0.5), b.Dx())
	ch := min(int(float64(h)/scale+0.5), b.Dy())
	x0 := b.Min.X + (b.Dx()-cw)/2
	y0 := b.Min.Y + (b.Dy()-ch)/2

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, image.Rect(x0, y0, x0+cw, y0+ch), draw.Src, nil)
	return dst
}

func clearTransparent(m *image.NRGBA) {
	for y := range m.Rect.Dy() {
		row := m.Pix[y*m.Stride : y*m.Stride+m.Rect.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			if row[i+3] == 0 {
				row[i], row[i+1], row[i+2] = 0, 0, 0
			}
		}
	}
}
