package img

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// halves returns a w x h image whose left half is red and right half blue.
func halves(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := color.NRGBA{R: 255, A: 255}
			if x >= w/2 {
				c = color.NRGBA{B: 255, A: 255}
			}
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func encodePNG(t *testing.T, m image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodePNG(&buf, m); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeClearsTransparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	got, err := DecodeBytes(encodePNG(t, src))
	if err != nil {
		t.Fatal(err)
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{}) {
		t.Errorf("transparent pixel = %v, want zero", c)
	}
	if c := got.NRGBAAt(1, 0); c != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("opaque pixel = %v", c)
	}
}

func TestDecodeFormats(t *testing.T) {
	src := halves(4, 2)
	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatal(err)
	}
	var jpgBuf bytes.Buffer
	if err := EncodeJPEG(&jpgBuf, src, 500); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"png", encodePNG(t, src)},
		{"bmp", bmpBuf.Bytes()},
		{"jpeg", jpgBuf.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBytes(tt.data)
			if err != nil {
				t.Fatal(err)
			}
			if got.Bounds() != image.Rect(0, 0, 4, 2) {
				t.Errorf("bounds = %v", got.Bounds())
			}
			if got.Stride != 16 {
				t.Errorf("stride = %d, want tightly packed 16", got.Stride)
			}
			if c := got.NRGBAAt(0, 0); c.R < 200 || c.B > 60 {
				t.Errorf("left pixel = %v, want red", c)
			}
		})
	}
}

func TestDecodeForceSize(t *testing.T) {
	data := encodePNG(t, halves(8, 4))

	tests := []struct {
		name string
		opts []Option
	}{
		{"stretch", []Option{ForceSize(2, 2)}},
		{"zoom", []Option{ForceSize(2, 2), Zoom(true)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBytes(data, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got.Bounds() != image.Rect(0, 0, 2, 2) {
				t.Fatalf("bounds = %v", got.Bounds())
			}
			left, right := got.NRGBAAt(0, 1), got.NRGBAAt(1, 1)
			if left.R <= left.B || right.B <= right.R {
				t.Errorf("left %v right %v, want red then blue", left, right)
			}
		})
	}
}

func TestZoomCropsCentre(t *testing.T) {
	// 6x2 with a green centre column pair: zooming to 2x2 keeps only it.
	src := image.NewNRGBA(image.Rect(0, 0, 6, 2))
	for y := range 2 {
		for x := range 6 {
			c := color.NRGBA{R: 255, A: 255}
			if x == 2 || x == 3 {
				c = color.NRGBA{G: 255, A: 255}
			}
			src.SetNRGBA(x, y, c)
		}
	}
	got := zoom(src, 2, 2)
	for x := range 2 {
		if c := got.NRGBAAt(x, 0); c.G < 200 || c.R > 60 {
			t.Errorf("pixel %d = %v, want green", x, c)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) = %v, want ErrEmptyData", err)
	}
	if _, err := DecodeBytes([]byte("not an image")); err == nil {
		t.Error("garbage decoded")
	}
	data := encodePNG(t, halves(2, 2))
	for _, opt := range []Option{ForceSize(-1, 2), ForceSize(3, 0)} {
		if _, err := DecodeBytes(data, opt); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("bad size error = %v, want ErrInvalidSize", err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	if err := os.WriteFile(path, encodePNG(t, halves(4, 4)), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds().Dx() != 4 {
		t.Errorf("width = %d", got.Bounds().Dx())
	}

	if _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want fs.ErrNotExist", err)
	}
}

func TestFromPixels(t *testing.T) {
	pix := make([]byte, 2*3*4)
	pix[4] = 9
	m, err := FromPixels(pix, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if m.NRGBAAt(1, 0).R != 9 {
		t.Error("FromPixels does not alias the rows")
	}
	if _, err := FromPixels(pix, 4, 4); err == nil {
		t.Error("short buffer accepted")
	}
	if _, err := FromPixels(pix, 0, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width error = %v", err)
	}
}
