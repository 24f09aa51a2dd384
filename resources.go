package fna3d

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/fna3d/internal/native"
	"github.com/gogpu/fna3d/sys"
)

// resource is the state shared by every native object a Device hands out.
type resource struct {
	dev      *Device
	ptr      unsafe.Pointer
	disposed bool
}

// live reports whether r may be passed to the native library.
func (r *resource) live() error {
	switch {
	case r.ptr == nil:
		return ErrNilResource
	case r.disposed:
		return ErrDisposed
	}
	return r.dev.check()
}

// Disposed reports whether Dispose has been called.
func (r *resource) Disposed() bool { return r.disposed }

// release marks r disposed and runs free once, unless the device is
// already gone.
func (r *resource) release(free func(api native.API, dev, h unsafe.Pointer)) {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.dev == nil || r.dev.closed || r.ptr == nil {
		return
	}
	r.dev.untrack(r)
	free(r.dev.api, r.dev.ptr, r.ptr)
}

// TextureKind distinguishes the texture shapes FNA3D creates.
type TextureKind uint8

const (
	Texture2D TextureKind = iota
	Texture3D
	TextureCube
)

// String returns the kind name.
func (k TextureKind) String() string {
	switch k {
	case Texture2D:
		return "2D"
	case Texture3D:
		return "3D"
	case TextureCube:
		return "Cube"
	}
	return fmt.Sprintf("TextureKind(%d)", uint8(k))
}

// Texture is an FNA3D_Texture owned by a Device.
type Texture struct {
	resource
	kind         TextureKind
	format       SurfaceFormat
	w, h, depth  int32
	levels       int32
	renderTarget bool
}

func (t *Texture) live() error {
	if t == nil {
		return ErrNilResource
	}
	return t.resource.live()
}

// handle returns the native pointer, or nil for a nil texture.
func (t *Texture) handle() unsafe.Pointer {
	if t == nil {
		return nil
	}
	return t.ptr
}

// Kind returns the texture shape.
func (t *Texture) Kind() TextureKind { return t.kind }

// Format returns the surface format the texture was created with.
func (t *Texture) Format() SurfaceFormat { return t.format }

// Size returns width, height and depth. Cube textures report their edge
// size for width and height and a depth of 6; 2D textures report depth 1.
func (t *Texture) Size() (w, h, depth int32) { return t.w, t.h, t.depth }

// LevelCount returns the number of mip levels.
func (t *Texture) LevelCount() int32 { return t.levels }

// IsRenderTarget reports whether the texture was created as a render target.
func (t *Texture) IsRenderTarget() bool { return t.renderTarget }

// Dispose queues the texture for destruction. Further use returns
// ErrDisposed. Dispose is idempotent.
func (t *Texture) Dispose() {
	if t == nil {
		return
	}
	t.release(native.API.AddDisposeTexture)
}

// Renderbuffer is an FNA3D_Renderbuffer owned by a Device.
type Renderbuffer struct {
	resource
	w, h             int32
	multiSampleCount int32
	depth            bool
}

func (r *Renderbuffer) live() error {
	if r == nil {
		return ErrNilResource
	}
	return r.resource.live()
}

func (r *Renderbuffer) handle() unsafe.Pointer {
	if r == nil {
		return nil
	}
	return r.ptr
}

// Size returns the renderbuffer dimensions.
func (r *Renderbuffer) Size() (w, h int32) { return r.w, r.h }

// MultiSampleCount returns the sample count the buffer was created with.
func (r *Renderbuffer) MultiSampleCount() int32 { return r.multiSampleCount }

// IsDepthStencil reports whether this is a depth/stencil buffer.
func (r *Renderbuffer) IsDepthStencil() bool { return r.depth }

// Dispose queues the renderbuffer for destruction. Dispose is idempotent.
func (r *Renderbuffer) Dispose() {
	if r == nil {
		return
	}
	r.release(native.API.AddDisposeRenderbuffer)
}

// BufferKind distinguishes vertex from index buffers.
type BufferKind uint8

const (
	VertexBufferKind BufferKind = iota
	IndexBufferKind
)

func (k BufferKind) String() string {
	if k == IndexBufferKind {
		return "index"
	}
	return "vertex"
}

// Buffer is an FNA3D_Buffer holding vertex or index data.
type Buffer struct {
	resource
	kind    BufferKind
	dynamic bool
	usage   BufferUsage
	size    int32
}

func (b *Buffer) live() error {
	if b == nil {
		return ErrNilResource
	}
	return b.resource.live()
}

func (b *Buffer) handle() unsafe.Pointer {
	if b == nil {
		return nil
	}
	return b.ptr
}

// Kind returns whether b holds vertices or indices.
func (b *Buffer) Kind() BufferKind { return b.kind }

// Size returns the buffer length in bytes.
func (b *Buffer) Size() int32 { return b.size }

// IsDynamic reports whether the buffer was created for frequent updates.
func (b *Buffer) IsDynamic() bool { return b.dynamic }

// Usage returns the usage hint the buffer was created with.
func (b *Buffer) Usage() BufferUsage { return b.usage }

// Dispose queues the buffer for destruction. Dispose is idempotent.
func (b *Buffer) Dispose() {
	if b == nil {
		return
	}
	if b.kind == IndexBufferKind {
		b.release(native.API.AddDisposeIndexBuffer)
		return
	}
	b.release(native.API.AddDisposeVertexBuffer)
}

// checkRange validates a byte range against the buffer and its kind.
func (b *Buffer) checkRange(kind BufferKind, offset int32, n int) error {
	if err := b.live(); err != nil {
		return err
	}
	if b.kind != kind {
		return fmt.Errorf("%w: %s buffer used as %s buffer", ErrBufferKind, b.kind, kind)
	}
	if offset < 0 || int64(offset)+int64(n) > int64(b.size) {
		return fmt.Errorf("%w: %d bytes at offset %d in a %d byte buffer", ErrDataSize, n, offset, b.size)
	}
	return nil
}

// Effect is an FNA3D_Effect together with the MojoShader effect data it
// was compiled into.
type Effect struct {
	resource
	data unsafe.Pointer
}

func (e *Effect) live() error {
	if e == nil {
		return ErrNilResource
	}
	return e.resource.live()
}

func (e *Effect) handle() unsafe.Pointer {
	if e == nil {
		return nil
	}
	return e.ptr
}

// Data returns the MOJOSHADER_effect pointer. It stays valid until the
// effect is disposed.
func (e *Effect) Data() unsafe.Pointer { return e.data }

// Params returns the names of the effect parameters.
func (e *Effect) Params() ([]string, error) {
	if err := e.live(); err != nil {
		return nil, err
	}
	return e.dev.api.EffectParamNames(e.data), nil
}

// SetParam copies values into the named float parameter. Values beyond the
// parameter's length are ignored. ErrParamNotFound is returned when the
// effect has no parameter with that name.
func (e *Effect) SetParam(name string, values []float32) error {
	if err := e.live(); err != nil {
		return err
	}
	if !e.dev.api.SetEffectParam(e.data, name, values) {
		return fmt.Errorf("%w: %q", ErrParamNotFound, name)
	}
	return nil
}

// Technique returns the i-th technique, or nil when out of range.
func (e *Effect) Technique(i int) unsafe.Pointer {
	if e.live() != nil {
		return nil
	}
	return e.dev.api.EffectTechnique(e.data, i)
}

// Dispose queues the effect for destruction. Dispose is idempotent.
func (e *Effect) Dispose() {
	if e == nil {
		return
	}
	e.release(native.API.AddDisposeEffect)
}

// Query is an FNA3D_Query for occlusion counting.
type Query struct {
	resource
}

func (q *Query) live() error {
	if q == nil {
		return ErrNilResource
	}
	return q.resource.live()
}

// Begin starts counting samples that pass the depth test.
func (q *Query) Begin() error {
	if err := q.live(); err != nil {
		return err
	}
	q.dev.api.QueryBegin(q.dev.ptr, q.ptr)
	return nil
}

// End stops counting.
func (q *Query) End() error {
	if err := q.live(); err != nil {
		return err
	}
	q.dev.api.QueryEnd(q.dev.ptr, q.ptr)
	return nil
}

// Complete reports whether the result is available.
func (q *Query) Complete() (bool, error) {
	if err := q.live(); err != nil {
		return false, err
	}
	return q.dev.api.QueryComplete(q.dev.ptr, q.ptr), nil
}

// PixelCount returns the number of samples counted between Begin and End.
func (q *Query) PixelCount() (int32, error) {
	if err := q.live(); err != nil {
		return 0, err
	}
	return q.dev.api.QueryPixelCount(q.dev.ptr, q.ptr), nil
}

// Dispose queues the query for destruction. Dispose is idempotent.
func (q *Query) Dispose() {
	if q == nil {
		return
	}
	q.release(native.API.AddDisposeQuery)
}

// EffectStateChanges is MOJOSHADER_effectStateChanges. FNA3D fills it
// during ApplyEffect and BeginPassRestore; the arrays it points to belong
// to MojoShader.
type EffectStateChanges struct {
	raw sys.EffectStateChanges
}

// Raw returns the record FNA3D writes.
func (c *EffectStateChanges) Raw() *sys.EffectStateChanges { return &c.raw }

// RenderStateChanges returns how many render states the last pass changed.
func (c *EffectStateChanges) RenderStateChanges() int {
	return int(c.raw.RenderStateChangeCount)
}

// SamplerStateChanges returns how many sampler states the last pass changed.
func (c *EffectStateChanges) SamplerStateChanges() int {
	return int(c.raw.SamplerStateChangeCount)
}

// VertexSamplerStateChanges returns how many vertex sampler states the last
// pass changed.
func (c *EffectStateChanges) VertexSamplerStateChanges() int {
	return int(c.raw.VertexSamplerStateChangeCount)
}
