// Package font keeps a glyph atlas in an fna3d texture.
//
// A Book shapes strings with go-text/typesetting, rasterizes each glyph
// once from its sfnt outline and packs it into an A8 coverage atlas held on
// the CPU. Flush uploads the atlas to its Color texture when glyphs were
// added since the last upload. The texture holds premultiplied white, so
// text drawn with BlendStateAlphaBlend takes its color from the vertices.
//
//	book, err := font.NewBook(dev, 256, 256)
//	if err != nil {
//		return err
//	}
//	defer book.Close()
//	id, err := book.AddFont(goregular.TTF)
//	...
//	quads, err := book.Text(id, 16, 10, 30, "Hello")
//	if err := book.Flush(); err != nil {
//		return err
//	}
//
// A Book is not safe for concurrent use; like the Device it draws with, it
// belongs to the rendering thread.
package font

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/fna3d"
)

// MaxAtlasSize is the largest edge an atlas grows to.
const MaxAtlasSize = 4096

// padding separates packed glyphs so linear filtering does not bleed.
const padding = 1

var (
	// ErrAtlasFull is returned when a glyph does not fit even in an atlas
	// of MaxAtlasSize.
	ErrAtlasFull = errors.New("font: atlas full")

	// ErrUnknownFont is returned for a FontID the Book did not hand out.
	ErrUnknownFont = errors.New("font: unknown font")

	// ErrInvalidSize is returned for a non-positive atlas or font size.
	ErrInvalidSize = errors.New("font: invalid size")
)

// Device is the part of *fna3d.Device a Book draws on.
type Device interface {
	CreateTexture2D(format fna3d.SurfaceFormat, w, h, levels int32, renderTarget bool) (*fna3d.Texture, error)
	SetTextureData2D(t *fna3d.Texture, x, y, w, h, level int32, data []byte) error
}

var _ Device = (*fna3d.Device)(nil)

// FontID names a font added to a Book.
type FontID int

// Quad is one glyph to draw: a destination rectangle in pixels and its
// texture coordinates in the atlas.
type Quad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// Metrics are the vertical metrics of a font at one size, in pixels.
type Metrics struct {
	Ascent     float32
	Descent    float32
	LineHeight float32
}

type face struct {
	shape *gtfont.Face
	sfnt  *sfnt.Font
}

type glyphKey struct {
	font FontID
	gid  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

// glyph is a packed glyph. bearing is the offset from the pen position on
// the baseline to the top left of rect. Blank glyphs have an empty rect.
type glyph struct {
	rect    image.Rectangle
	bearing image.Point
}

// Book is a glyph atlas backed by one Color texture.
type Book struct {
	dev   Device
	tex   *fna3d.Texture
	atlas *image.Alpha
	dirty bool

	faces  []face
	glyphs map[glyphKey]glyph
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer

	// shelf packer state
	penX, penY, rowH int
}

// NewBook creates a w x h atlas and its texture on dev.
func NewBook(dev Device, w, h int) (*Book, error) {
	if w <= 0 || h <= 0 || w > MaxAtlasSize || h > MaxAtlasSize {
		return nil, fmt.Errorf("%w: %dx%d atlas", ErrInvalidSize, w, h)
	}
	b := &Book{
		dev:    dev,
		atlas:  image.NewAlpha(image.Rect(0, 0, w, h)),
		glyphs: make(map[glyphKey]glyph),
	}
	if err := b.createTexture(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Book) createTexture() error {
	size := b.atlas.Bounds().Size()
	tex, err := b.dev.CreateTexture2D(fna3d.SurfaceFormatColor, int32(size.X), int32(size.Y), 1, false)
	if err != nil {
		return fmt.Errorf("font: create atlas texture: %w", err)
	}
	if b.tex != nil {
		b.tex.Dispose()
	}
	b.tex = tex
	b.dirty = true
	fna3d.Logger().Debug("font: atlas texture created", "width", size.X, "height", size.Y)
	return nil
}

// Texture returns the atlas texture. It changes when the atlas grows.
func (b *Book) Texture() *fna3d.Texture { return b.tex }

// Size returns the atlas dimensions.
func (b *Book) Size() (w, h int) {
	s := b.atlas.Bounds().Size()
	return s.X, s.Y
}

// Atlas returns the CPU copy of the coverage atlas.
func (b *Book) Atlas() *image.Alpha { return b.atlas }

// Dirty reports whether glyphs were added since the last Flush.
func (b *Book) Dirty() bool { return b.dirty }

// Close disposes the atlas texture.
func (b *Book) Close() {
	if b.tex != nil {
		b.tex.Dispose()
		b.tex = nil
	}
}

// AddFont parses a TrueType or OpenType font.
func (b *Book) AddFont(data []byte) (FontID, error) {
	shape, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("font: parse: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("font: parse outlines: %w", err)
	}
	b.faces = append(b.faces, face{shape: shape, sfnt: f})
	return FontID(len(b.faces) - 1), nil
}

func (b *Book) face(id FontID) (face, error) {
	if id < 0 || int(id) >= len(b.faces) {
		return face{}, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return b.faces[id], nil
}

// Metrics returns the vertical metrics of font id at size pixels per em.
func (b *Book) Metrics(id FontID, size float32) (Metrics, error) {
	f, err := b.face(id)
	if err != nil {
		return Metrics{}, err
	}
	m, err := f.sfnt.Metrics(&b.buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("font: metrics: %w", err)
	}
	return Metrics{
		Ascent:     fromFixed(m.Ascent),
		Descent:    fromFixed(m.Descent),
		LineHeight: fromFixed(m.Height),
	}, nil
}

// Measure returns the advance width of s.
func (b *Book) Measure(id FontID, size float32, s string) (float32, error) {
	glyphs, err := b.shape(id, size, s)
	if err != nil {
		return 0, err
	}
	var w float32
	for _, g := range glyphs {
		w += fromFixed(g.Advance)
	}
	return w, nil
}

// Text lays out s with its baseline starting at (x, y) and returns one
// quad per visible glyph. Glyphs missing from the atlas are rasterized and
// packed, growing the atlas when needed; texture coordinates refer to the
// atlas size after the call.
func (b *Book) Text(id FontID, size float32, x, y float32, s string) ([]Quad, error) {
	glyphs, err := b.shape(id, size, s)
	if err != nil {
		return nil, err
	}
	f := b.faces[id]
	ppem := toFixed(size)

	type placed struct {
		g    glyph
		x, y float32
	}
	out := make([]placed, 0, len(glyphs))
	pen := x
	for _, sg := range glyphs {
		g, err := b.glyph(id, f, sfnt.GlyphIndex(sg.GlyphID), ppem)
		if err != nil {
			return nil, err
		}
		if !g.rect.Empty() {
			out = append(out, placed{
				g: g,
				x: pen + fromFixed(sg.XOffset) + float32(g.bearing.X),
				y: y - fromFixed(sg.YOffset) + float32(g.bearing.Y),
			})
		}
		pen += fromFixed(sg.Advance)
	}

	aw, ah := b.Size()
	quads := make([]Quad, len(out))
	for i, p := range out {
		r := p.g.rect
		quads[i] = Quad{
			X0: p.x,
			Y0: p.y,
			X1: p.x + float32(r.Dx()),
			Y1: p.y + float32(r.Dy()),
			U0: float32(r.Min.X) / float32(aw),
			V0: float32(r.Min.Y) / float32(ah),
			U1: float32(r.Max.X) / float32(aw),
			V1: float32(r.Max.Y) / float32(ah),
		}
	}
	return quads, nil
}

func (b *Book) shape(id FontID, size float32, s string) ([]shaping.Glyph, error) {
	f, err := b.face(id)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: font size %g", ErrInvalidSize, size)
	}
	if s == "" {
		return nil, nil
	}
	runes := []rune(s)
	out := b.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.shape,
		Size:      toFixed(size),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	})
	return out.Glyphs, nil
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// glyph returns the packed glyph gid of font id at ppem, rasterizing it on
// first use.
func (b *Book) glyph(id FontID, f face, gid sfnt.GlyphIndex, ppem fixed.Int26_6) (glyph, error) {
	key := glyphKey{font: id, gid: gid, ppem: ppem}
	if g, ok := b.glyphs[key]; ok {
		return g, nil
	}

	bounds, _, err := f.sfnt.GlyphBounds(&b.buf, gid, ppem, xfont.HintingNone)
	if err != nil {
		return glyph{}, fmt.Errorf("font: glyph %d bounds: %w", gid, err)
	}
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	w, h := bounds.Max.X.Ceil()-minX, bounds.Max.Y.Ceil()-minY
	if w <= 0 || h <= 0 {
		b.glyphs[key] = glyph{}
		return glyph{}, nil
	}
	if w+padding > MaxAtlasSize || h+padding > MaxAtlasSize {
		return glyph{}, fmt.Errorf("%w: %dx%d glyph", ErrAtlasFull, w, h)
	}

	segs, err := f.sfnt.LoadGlyph(&b.buf, gid, ppem, nil)
	if err != nil {
		return glyph{}, fmt.Errorf("font: load glyph %d: %w", gid, err)
	}
	at, err := b.alloc(w, h)
	if err != nil {
		return glyph{}, err
	}
	rect := image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}
	rasterize(b.atlas, rect, segs, float32(minX), float32(minY))
	b.dirty = true

	g := glyph{rect: rect, bearing: image.Pt(minX, minY)}
	b.glyphs[key] = g
	return g, nil
}

// rasterize fills rect of dst with the coverage of segs, translated so that
// (ox, oy) lands on rect.Min.
func rasterize(dst *image.Alpha, rect image.Rectangle, segs sfnt.Segments, ox, oy float32) {
	r := vector.NewRasterizer(rect.Dx(), rect.Dy())
	pt := func(p fixed.Point26_6) (float32, float32) {
		return fromFixed(p.X) - ox, fromFixed(p.Y) - oy
	}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	r.ClosePath()
	r.Draw(dst, rect, image.Opaque, image.Point{})
}

// alloc reserves a w x h cell, growing the atlas until it fits.
func (b *Book) alloc(w, h int) (image.Point, error) {
	for {
		if p, ok := b.place(w+padding, h+padding); ok {
			return p, nil
		}
		if err := b.grow(); err != nil {
			return image.Point{}, err
		}
	}
}

// place packs a cell on the current shelf or opens a new one below it.
func (b *Book) place(w, h int) (image.Point, bool) {
	aw, ah := b.Size()
	if b.penX+w > aw {
		b.penX, b.penY, b.rowH = 0, b.penY+b.rowH, 0
	}
	if w > aw || b.penY+h > ah {
		return image.Point{}, false
	}
	p := image.Pt(b.penX, b.penY)
	b.penX += w
	b.rowH = max(b.rowH, h)
	return p, true
}

// grow doubles both atlas edges, keeping packed glyphs where they are, and
// replaces the texture.
func (b *Book) grow() error {
	aw, ah := b.Size()
	if aw >= MaxAtlasSize && ah >= MaxAtlasSize {
		return ErrAtlasFull
	}
	next := image.NewAlpha(image.Rect(0, 0, min(aw*2, MaxAtlasSize), min(ah*2, MaxAtlasSize)))
	for y := range ah {
		copy(next.Pix[y*next.Stride:], b.atlas.Pix[y*b.atlas.Stride:y*b.atlas.Stride+aw])
	}
	b.atlas = next
	fna3d.Logger().Debug("font: atlas grown", "width", next.Rect.Dx(), "height", next.Rect.Dy())
	return b.createTexture()
}

// Flush uploads the atlas when glyphs were added since the last upload.
func (b *Book) Flush() error {
	if !b.dirty {
		return nil
	}
	if b.tex == nil {
		return fmt.Errorf("font: flush: %w", fna3d.ErrDisposed)
	}
	aw, ah := b.Size()
	data := make([]byte, 4*aw*ah)
	for i, a := range b.atlas.Pix {
		data[4*i] = a
		data[4*i+1] = a
		data[4*i+2] = a
		data[4*i+3] = a
	}
	if err := b.dev.SetTextureData2D(b.tex, 0, 0, int32(aw), int32(ah), 0, data); err != nil {
		return fmt.Errorf("font: upload atlas: %w", err)
	}
	b.dirty = false
	return nil
}

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func fromFixed(v fixed.Int26_6) float32 { return float32(v) / 64 }
