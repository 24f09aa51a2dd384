package fna3d

import (
	"fmt"
	"image"
	"unsafe"
)

// CreateTexture2D allocates a w x h texture with levels mip levels.
func (d *Device) CreateTexture2D(format SurfaceFormat, w, h, levels int32, renderTarget bool) (*Texture, error) {
	if err := d.checkTexture(format, levels, w, h); err != nil {
		return nil, err
	}
	p := d.api.CreateTexture2D(d.ptr, format.Raw(), w, h, levels, renderTarget)
	return d.newTexture(p, Texture{kind: Texture2D, format: format, w: w, h: h, depth: 1, levels: levels, renderTarget: renderTarget})
}

// CreateTexture3D allocates a volume texture.
func (d *Device) CreateTexture3D(format SurfaceFormat, w, h, depth, levels int32) (*Texture, error) {
	if err := d.checkTexture(format, levels, w, h, depth); err != nil {
		return nil, err
	}
	p := d.api.CreateTexture3D(d.ptr, format.Raw(), w, h, depth, levels)
	return d.newTexture(p, Texture{kind: Texture3D, format: format, w: w, h: h, depth: depth, levels: levels})
}

// CreateTextureCube allocates a cube texture with edge length size.
func (d *Device) CreateTextureCube(format SurfaceFormat, size, levels int32, renderTarget bool) (*Texture, error) {
	if err := d.checkTexture(format, levels, size); err != nil {
		return nil, err
	}
	p := d.api.CreateTextureCube(d.ptr, format.Raw(), size, levels, renderTarget)
	return d.newTexture(p, Texture{kind: TextureCube, format: format, w: size, h: size, depth: 6, levels: levels, renderTarget: renderTarget})
}

// CreateTextureFromImage uploads img as a single-level Color texture.
func (d *Device) CreateTextureFromImage(img *image.NRGBA) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("fna3d: texture image: %w", ErrNilResource)
	}
	b := img.Bounds()
	w, h := int32(b.Dx()), int32(b.Dy())
	tex, err := d.CreateTexture2D(SurfaceFormatColor, w, h, 1, false)
	if err != nil {
		return nil, err
	}
	pix := img.Pix
	if img.Stride != b.Dx()*4 {
		pix = make([]byte, 0, b.Dx()*b.Dy()*4)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := img.PixOffset(b.Min.X, y)
			pix = append(pix, img.Pix[off:off+b.Dx()*4]...)
		}
	}
	if err := d.SetTextureData2D(tex, 0, 0, w, h, 0, pix); err != nil {
		tex.Dispose()
		return nil, err
	}
	return tex, nil
}

func (d *Device) checkTexture(format SurfaceFormat, levels int32, dims ...int32) error {
	if err := d.check(); err != nil {
		return err
	}
	if !format.IsValid() {
		return &UnknownVariantError{Type: "SurfaceFormat", Value: uint32(format)}
	}
	if levels <= 0 {
		return fmt.Errorf("%w: %d mip levels", ErrInvalidSize, levels)
	}
	for _, n := range dims {
		if n <= 0 {
			return fmt.Errorf("%w: texture dimension %d", ErrInvalidSize, n)
		}
	}
	return nil
}

func (d *Device) newTexture(p unsafe.Pointer, t Texture) (*Texture, error) {
	if p == nil {
		Logger().Warn("fna3d: texture creation failed", "kind", t.kind, "format", t.format, "width", t.w, "height", t.h)
		return nil, fmt.Errorf("fna3d: create %s texture: %w", t.kind, ErrNilResource)
	}
	t.resource = resource{dev: d, ptr: p}
	d.track(&t.resource)
	return &t, nil
}

// checkTextureData validates a texture region and the bytes that fill it.
func (d *Device) checkTextureData(t *Texture, kind TextureKind, w, h, depth int32, data []byte) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := t.live(); err != nil {
		return err
	}
	if t.kind != kind {
		return fmt.Errorf("fna3d: %s operation on a %s texture", kind, t.kind)
	}
	if w <= 0 || h <= 0 || depth <= 0 {
		return ErrInvalidSize
	}
	if t.format.Size() == 0 {
		return nil
	}
	if need := t.format.DataSize(int(w), int(h)) * int(depth); len(data) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrDataSize, len(data), need)
	}
	return nil
}

// SetTextureData2D uploads data into a region of mip level level.
func (d *Device) SetTextureData2D(t *Texture, x, y, w, h, level int32, data []byte) error {
	if err := d.checkTextureData(t, Texture2D, w, h, 1, data); err != nil {
		return err
	}
	d.api.SetTextureData2D(d.ptr, t.ptr, x, y, w, h, level, data)
	return nil
}

// SetTextureData3D uploads data into a box of mip level level.
func (d *Device) SetTextureData3D(t *Texture, x, y, z, w, h, depth, level int32, data []byte) error {
	if err := d.checkTextureData(t, Texture3D, w, h, depth, data); err != nil {
		return err
	}
	d.api.SetTextureData3D(d.ptr, t.ptr, x, y, z, w, h, depth, level, data)
	return nil
}

// SetTextureDataCube uploads data into a region of one cube face.
func (d *Device) SetTextureDataCube(t *Texture, x, y, w, h int32, face CubeMapFace, level int32, data []byte) error {
	if !face.IsValid() {
		return &UnknownVariantError{Type: "CubeMapFace", Value: uint32(face)}
	}
	if err := d.checkTextureData(t, TextureCube, w, h, 1, data); err != nil {
		return err
	}
	d.api.SetTextureDataCube(d.ptr, t.ptr, x, y, w, h, face.Raw(), level, data)
	return nil
}

// SetTextureDataYUV uploads planar YUV data into three Alpha8 textures. data
// holds the Y plane followed by the U and V planes.
func (d *Device) SetTextureDataYUV(y, u, v *Texture, yW, yH, uvW, uvH int32, data []byte) error {
	if err := d.check(); err != nil {
		return err
	}
	for _, t := range []*Texture{y, u, v} {
		if err := t.live(); err != nil {
			return err
		}
	}
	if need := int(yW)*int(yH) + 2*int(uvW)*int(uvH); len(data) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrDataSize, len(data), need)
	}
	d.api.SetTextureDataYUV(d.ptr, y.ptr, u.ptr, v.ptr, yW, yH, uvW, uvH, data)
	return nil
}

// TextureData2D reads a region of mip level level into data.
func (d *Device) TextureData2D(t *Texture, x, y, w, h, level int32, data []byte) error {
	if err := d.checkTextureData(t, Texture2D, w, h, 1, data); err != nil {
		return err
	}
	d.api.GetTextureData2D(d.ptr, t.ptr, x, y, w, h, level, data)
	return nil
}

// TextureData3D reads a box of mip level level into data.
func (d *Device) TextureData3D(t *Texture, x, y, z, w, h, depth, level int32, data []byte) error {
	if err := d.checkTextureData(t, Texture3D, w, h, depth, data); err != nil {
		return err
	}
	d.api.GetTextureData3D(d.ptr, t.ptr, x, y, z, w, h, depth, level, data)
	return nil
}

// TextureDataCube reads a region of one cube face into data.
func (d *Device) TextureDataCube(t *Texture, x, y, w, h int32, face CubeMapFace, level int32, data []byte) error {
	if !face.IsValid() {
		return &UnknownVariantError{Type: "CubeMapFace", Value: uint32(face)}
	}
	if err := d.checkTextureData(t, TextureCube, w, h, 1, data); err != nil {
		return err
	}
	d.api.GetTextureDataCube(d.ptr, t.ptr, x, y, w, h, face.Raw(), level, data)
	return nil
}

// GenColorRenderbuffer creates a multisampled color buffer that resolves
// into tex.
func (d *Device) GenColorRenderbuffer(w, h int32, format SurfaceFormat, multiSampleCount int32, tex *Texture) (*Renderbuffer, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if !format.IsValid() {
		return nil, &UnknownVariantError{Type: "SurfaceFormat", Value: uint32(format)}
	}
	if err := tex.live(); err != nil {
		return nil, err
	}
	p := d.api.GenColorRenderbuffer(d.ptr, w, h, format.Raw(), multiSampleCount, tex.ptr)
	return d.newRenderbuffer(p, Renderbuffer{w: w, h: h, multiSampleCount: multiSampleCount})
}

// GenDepthStencilRenderbuffer creates a depth/stencil buffer.
func (d *Device) GenDepthStencilRenderbuffer(w, h int32, format DepthFormat, multiSampleCount int32) (*Renderbuffer, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if !format.IsValid() {
		return nil, &UnknownVariantError{Type: "DepthFormat", Value: uint32(format)}
	}
	p := d.api.GenDepthStencilRenderbuffer(d.ptr, w, h, format.Raw(), multiSampleCount)
	return d.newRenderbuffer(p, Renderbuffer{w: w, h: h, multiSampleCount: multiSampleCount, depth: true})
}

func (d *Device) newRenderbuffer(p unsafe.Pointer, rb Renderbuffer) (*Renderbuffer, error) {
	if p == nil {
		Logger().Warn("fna3d: renderbuffer creation failed", "width", rb.w, "height", rb.h, "depth", rb.depth)
		return nil, fmt.Errorf("fna3d: create renderbuffer: %w", ErrNilResource)
	}
	rb.resource = resource{dev: d, ptr: p}
	d.track(&rb.resource)
	return &rb, nil
}

// GenVertexBuffer allocates size bytes of vertex storage. Its contents are
// undefined until SetVertexData is called.
func (d *Device) GenVertexBuffer(dynamic bool, usage BufferUsage, size int32) (*Buffer, error) {
	return d.genBuffer(VertexBufferKind, dynamic, usage, size)
}

// GenIndexBuffer allocates size bytes of index storage.
func (d *Device) GenIndexBuffer(dynamic bool, usage BufferUsage, size int32) (*Buffer, error) {
	return d.genBuffer(IndexBufferKind, dynamic, usage, size)
}

func (d *Device) genBuffer(kind BufferKind, dynamic bool, usage BufferUsage, size int32) (*Buffer, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if !usage.IsValid() {
		return nil, &UnknownVariantError{Type: "BufferUsage", Value: uint32(usage)}
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d byte buffer", ErrInvalidSize, size)
	}
	var p unsafe.Pointer
	if kind == IndexBufferKind {
		p = d.api.GenIndexBuffer(d.ptr, dynamic, usage.Raw(), size)
	} else {
		p = d.api.GenVertexBuffer(d.ptr, dynamic, usage.Raw(), size)
	}
	if p == nil {
		Logger().Warn("fna3d: buffer creation failed", "kind", kind, "size", size)
		return nil, fmt.Errorf("fna3d: create %s buffer: %w", kind, ErrNilResource)
	}
	b := &Buffer{
		resource: resource{dev: d, ptr: p},
		kind:     kind,
		dynamic:  dynamic,
		usage:    usage,
		size:     size,
	}
	d.track(&b.resource)
	return b, nil
}

// SetVertexData copies data into b starting at byte offset. T must be a
// plain value type whose layout matches the vertex declaration.
func SetVertexData[T any](b *Buffer, offset int32, data []T, opts SetDataOptions) error {
	raw := bytesOf(data)
	if err := b.checkRange(VertexBufferKind, offset, len(raw)); err != nil {
		return err
	}
	if !opts.IsValid() {
		return &UnknownVariantError{Type: "SetDataOptions", Value: uint32(opts)}
	}
	Logger().Debug("fna3d: set vertex data", "offset", offset, "bytes", len(raw))
	b.dev.api.SetVertexBufferData(b.dev.ptr, b.ptr, offset, raw, int32(len(raw)), 1, 1, opts.Raw())
	return nil
}

// VertexData reads len(dst) values from b starting at byte offset.
func VertexData[T any](b *Buffer, offset int32, dst []T) error {
	raw := bytesOf(dst)
	if err := b.checkRange(VertexBufferKind, offset, len(raw)); err != nil {
		return err
	}
	b.dev.api.GetVertexBufferData(b.dev.ptr, b.ptr, offset, raw, int32(len(raw)), 1, 1)
	return nil
}

// SetIndexData copies indices into b starting at byte offset. T is
// normally uint16 or uint32 to match the IndexElementSize used for drawing.
func SetIndexData[T uint16 | uint32](b *Buffer, offset int32, data []T, opts SetDataOptions) error {
	raw := bytesOf(data)
	if err := b.checkRange(IndexBufferKind, offset, len(raw)); err != nil {
		return err
	}
	if !opts.IsValid() {
		return &UnknownVariantError{Type: "SetDataOptions", Value: uint32(opts)}
	}
	Logger().Debug("fna3d: set index data", "offset", offset, "bytes", len(raw))
	b.dev.api.SetIndexBufferData(b.dev.ptr, b.ptr, offset, raw, opts.Raw())
	return nil
}

// IndexData reads len(dst) indices from b starting at byte offset.
func IndexData[T uint16 | uint32](b *Buffer, offset int32, dst []T) error {
	raw := bytesOf(dst)
	if err := b.checkRange(IndexBufferKind, offset, len(raw)); err != nil {
		return err
	}
	b.dev.api.GetIndexBufferData(b.dev.ptr, b.ptr, offset, raw)
	return nil
}

// CreateEffect compiles a D3D9 effect binary and selects its first
// technique. MojoShader diagnostics are returned as *EffectError.
func (d *Device) CreateEffect(code []byte) (*Effect, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: empty effect code", ErrInvalidSize)
	}
	p, data := d.api.CreateEffect(d.ptr, code)
	return d.newEffect(p, data)
}

// CloneEffect creates an independent copy of src with its own parameter
// values.
func (d *Device) CloneEffect(src *Effect) (*Effect, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if err := src.live(); err != nil {
		return nil, err
	}
	p, data := d.api.CloneEffect(d.ptr, src.ptr)
	return d.newEffect(p, data)
}

func (d *Device) newEffect(p, data unsafe.Pointer) (*Effect, error) {
	if msgs := d.api.EffectErrors(data); len(msgs) > 0 {
		eerr := &EffectError{Messages: make([]EffectMessage, len(msgs))}
		for i, m := range msgs {
			eerr.Messages[i] = EffectMessage{Text: m.Text, Filename: m.Filename, Line: m.Position}
		}
		if p != nil {
			d.api.AddDisposeEffect(d.ptr, p)
		}
		Logger().Warn("fna3d: effect compilation failed", "errors", len(msgs))
		return nil, eerr
	}
	if p == nil || data == nil {
		return nil, fmt.Errorf("fna3d: create effect: %w", ErrNilResource)
	}
	e := &Effect{resource: resource{dev: d, ptr: p}, data: data}
	d.track(&e.resource)
	if tech := d.api.EffectTechnique(data, 0); tech != nil {
		d.api.SetEffectTechnique(d.ptr, p, tech)
	}
	return e, nil
}

// SetEffectTechnique selects technique i of e.
func (d *Device) SetEffectTechnique(e *Effect, i int) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := e.live(); err != nil {
		return err
	}
	tech := d.api.EffectTechnique(e.data, i)
	if tech == nil {
		return fmt.Errorf("%w: technique %d", ErrInvalidSize, i)
	}
	d.api.SetEffectTechnique(d.ptr, e.ptr, tech)
	return nil
}

// ApplyEffect applies pass of the current technique. FNA3D records which
// states the pass changed in changes, which may be nil.
func (d *Device) ApplyEffect(e *Effect, pass uint32, changes *EffectStateChanges) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := e.live(); err != nil {
		return err
	}
	if changes == nil {
		changes = new(EffectStateChanges)
	}
	d.api.ApplyEffect(d.ptr, e.ptr, pass, changes.Raw())
	return nil
}

// BeginPassRestore applies the effect's first pass and saves the states it
// changes until EndPassRestore.
func (d *Device) BeginPassRestore(e *Effect, changes *EffectStateChanges) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := e.live(); err != nil {
		return err
	}
	if changes == nil {
		changes = new(EffectStateChanges)
	}
	d.api.BeginPassRestore(d.ptr, e.ptr, changes.Raw())
	return nil
}

// EndPassRestore restores the states saved by BeginPassRestore.
func (d *Device) EndPassRestore(e *Effect) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := e.live(); err != nil {
		return err
	}
	d.api.EndPassRestore(d.ptr, e.ptr)
	return nil
}

// CreateQuery creates an occlusion query.
func (d *Device) CreateQuery() (*Query, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	p := d.api.CreateQuery(d.ptr)
	if p == nil {
		return nil, fmt.Errorf("fna3d: create query: %w", ErrNilResource)
	}
	q := &Query{resource: resource{dev: d, ptr: p}}
	d.track(&q.resource)
	return q, nil
}
