package fna3d

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/gogpu/fna3d/internal/native"
	"github.com/gogpu/fna3d/sys"
)

// Device is an FNA3D_Device.
//
// A Device is not safe for concurrent use. FNA3D expects every call to come
// from the thread that created the device (and the window), so callers
// should run device code on a goroutine locked with runtime.LockOSThread.
//
// After Close every method returns ErrDeviceClosed.
type Device struct {
	api    native.API
	ptr    unsafe.Pointer
	debug  bool
	closed bool

	// resources holds every handle created through d and not yet disposed.
	resources map[unsafe.Pointer]*resource
}

// NewDevice creates a device presenting to the window in params.
//
// Without the fna3d build tag NewDevice returns ErrNotLinked.
func NewDevice(params *PresentationParameters, opts ...Option) (*Device, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newDevice(params, o)
}

func newDevice(params *PresentationParameters, o deviceOptions) (*Device, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: nil presentation parameters", ErrDeviceCreation)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("fna3d: presentation parameters: %w", err)
	}
	if o.driver != "" {
		if err := os.Setenv(native.ForceDriverEnv, o.driver); err != nil {
			return nil, fmt.Errorf("fna3d: force driver: %w", err)
		}
	}
	if o.nativeLog {
		info, warn, errf := nativeLogFuncs()
		o.api.HookLogFunctions(info, warn, errf)
	}

	ptr, err := o.api.CreateDevice(params.Raw(), o.debug)
	if err != nil {
		if errors.Is(err, native.ErrNotLinked) {
			return nil, ErrNotLinked
		}
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreation, err)
	}
	if ptr == nil {
		return nil, ErrDeviceCreation
	}

	w, h := params.BackBufferSize()
	Logger().Info("fna3d: device created",
		"width", w, "height", h,
		"format", params.BackBufferFormat(),
		"driver", DriverFromEnv(),
		"debug", o.debug)

	return &Device{
		api:       o.api,
		ptr:       ptr,
		debug:     o.debug,
		resources: make(map[unsafe.Pointer]*resource),
	}, nil
}

// check returns ErrDeviceClosed once the device is gone.
func (d *Device) check() error {
	if d == nil || d.closed || d.ptr == nil {
		return ErrDeviceClosed
	}
	return nil
}

// track registers r as a live resource of d.
func (d *Device) track(r *resource) {
	if d.resources == nil {
		d.resources = make(map[unsafe.Pointer]*resource)
	}
	d.resources[r.ptr] = r
}

// untrack forgets r. A handle FNA3D has since reused for a newer
// resource stays registered.
func (d *Device) untrack(r *resource) {
	if d.resources[r.ptr] == r {
		delete(d.resources, r.ptr)
	}
}

// owned checks a handle copied into a binding record: it must come from a
// resource d created that has not been disposed since.
func (d *Device) owned(what string, h unsafe.Pointer) error {
	if h == nil {
		return fmt.Errorf("%s: %w", what, ErrNilResource)
	}
	if _, ok := d.resources[h]; !ok {
		return fmt.Errorf("%s: %w", what, ErrDisposed)
	}
	return nil
}

// Raw returns the FNA3D_Device pointer, or nil after Close.
func (d *Device) Raw() unsafe.Pointer {
	if d.check() != nil {
		return nil
	}
	return d.ptr
}

// Close destroys the device. Resources that were not disposed are released
// by FNA3D together with the device. Close is idempotent.
func (d *Device) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true
	d.api.DestroyDevice(d.ptr)
	d.ptr = nil
	d.resources = nil
	Logger().Info("fna3d: device destroyed")
	return nil
}

// SwapBuffers presents the backbuffer. src and dst may be nil for the whole
// backbuffer and window; window may be nil for the device's own window.
func (d *Device) SwapBuffers(src, dst *Rect, window unsafe.Pointer) error {
	if err := d.check(); err != nil {
		return err
	}
	var s, t *sys.Rect
	if src != nil {
		s = src.Raw()
	}
	if dst != nil {
		t = dst.Raw()
	}
	d.api.SwapBuffers(d.ptr, s, t, window)
	return nil
}

// Clear clears the buffers selected by options.
func (d *Device) Clear(options ClearOptions, c Color, depth float32, stencil int32) error {
	if err := d.check(); err != nil {
		return err
	}
	v := c.Vec4()
	d.api.Clear(d.ptr, options.Raw(), v.Raw(), depth, stencil)
	return nil
}

// DrawIndexedPrimitives draws primCount primitives from the bound vertex
// buffers using indices starting at startIndex.
func (d *Device) DrawIndexedPrimitives(prim PrimitiveType, baseVertex, startIndex, primCount int32, indices *Buffer, size IndexElementSize) error {
	if err := d.checkDraw(prim, indices, size); err != nil {
		return err
	}
	// minVertexIndex and numVertices are ignored by FNA3D.
	d.api.DrawIndexedPrimitives(d.ptr, prim.Raw(), baseVertex, -1, -1, startIndex, primCount, indices.handle(), size.Raw())
	return nil
}

// DrawInstancedPrimitives is DrawIndexedPrimitives repeated instanceCount
// times.
func (d *Device) DrawInstancedPrimitives(prim PrimitiveType, baseVertex, minVertexIndex, numVertices, startIndex, primCount, instanceCount int32, indices *Buffer, size IndexElementSize) error {
	if err := d.checkDraw(prim, indices, size); err != nil {
		return err
	}
	d.api.DrawInstancedPrimitives(d.ptr, prim.Raw(), baseVertex, minVertexIndex, numVertices, startIndex, primCount, instanceCount, indices.handle(), size.Raw())
	return nil
}

// DrawPrimitives draws primCount primitives from the bound vertex buffers
// without indices.
func (d *Device) DrawPrimitives(prim PrimitiveType, vertexStart, primCount int32) error {
	if err := d.check(); err != nil {
		return err
	}
	if !prim.IsValid() {
		return &UnknownVariantError{Type: "PrimitiveType", Value: uint32(prim)}
	}
	d.api.DrawPrimitives(d.ptr, prim.Raw(), vertexStart, primCount)
	return nil
}

func (d *Device) checkDraw(prim PrimitiveType, indices *Buffer, size IndexElementSize) error {
	if err := d.check(); err != nil {
		return err
	}
	if !prim.IsValid() {
		return &UnknownVariantError{Type: "PrimitiveType", Value: uint32(prim)}
	}
	if !size.IsValid() {
		return &UnknownVariantError{Type: "IndexElementSize", Value: uint32(size)}
	}
	if err := indices.live(); err != nil {
		return fmt.Errorf("fna3d: index buffer: %w", err)
	}
	if indices.kind != IndexBufferKind {
		return fmt.Errorf("%w: vertex buffer used as index buffer", ErrBufferKind)
	}
	return nil
}

// SetViewport sets the viewport for subsequent draws.
func (d *Device) SetViewport(v Viewport) error {
	if err := d.check(); err != nil {
		return err
	}
	d.api.SetViewport(d.ptr, v.Raw())
	return nil
}

// SetScissorRect sets the scissor rectangle used when the rasterizer state
// enables the scissor test.
func (d *Device) SetScissorRect(r Rect) error {
	if err := d.check(); err != nil {
		return err
	}
	d.api.SetScissorRect(d.ptr, r.Raw())
	return nil
}

// BlendFactor returns the current blend factor.
func (d *Device) BlendFactor() (Color, error) {
	if err := d.check(); err != nil {
		return Color{}, err
	}
	var c Color
	d.api.GetBlendFactor(d.ptr, c.Raw())
	return c, nil
}

// SetBlendFactor sets the blend factor without applying a full blend state.
func (d *Device) SetBlendFactor(c Color) error {
	if err := d.check(); err != nil {
		return err
	}
	d.api.SetBlendFactor(d.ptr, c.Raw())
	return nil
}

// MultiSampleMask returns the current multisample mask.
func (d *Device) MultiSampleMask() (int32, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	return d.api.GetMultiSampleMask(d.ptr), nil
}

// SetMultiSampleMask sets the multisample mask.
func (d *Device) SetMultiSampleMask(mask int32) error {
	if err := d.check(); err != nil {
		return err
	}
	d.api.SetMultiSampleMask(d.ptr, mask)
	return nil
}

// ReferenceStencil returns the current stencil reference value.
func (d *Device) ReferenceStencil() (int32, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	return d.api.GetReferenceStencil(d.ptr), nil
}

// SetReferenceStencil sets the stencil reference value.
func (d *Device) SetReferenceStencil(ref int32) error {
	if err := d.check(); err != nil {
		return err
	}
	d.api.SetReferenceStencil(d.ptr, ref)
	return nil
}

// SetBlendState applies s. The state is validated first, so a record
// written through Raw with an unknown enum value is rejected here.
func (d *Device) SetBlendState(s *BlendState) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("fna3d: blend state: %w", err)
	}
	d.api.SetBlendState(d.ptr, s.Raw())
	return nil
}

// SetDepthStencilState applies s after validating it.
func (d *Device) SetDepthStencilState(s *DepthStencilState) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("fna3d: depth stencil state: %w", err)
	}
	d.api.SetDepthStencilState(d.ptr, s.Raw())
	return nil
}

// ApplyRasterizerState applies s after validating it.
func (d *Device) ApplyRasterizerState(s *RasterizerState) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("fna3d: rasterizer state: %w", err)
	}
	d.api.ApplyRasterizerState(d.ptr, s.Raw())
	return nil
}

// VerifySampler binds tex with sampler state s to fragment sampler slot
// index. A nil tex unbinds the slot.
func (d *Device) VerifySampler(index int32, tex *Texture, s *SamplerState) error {
	if err := d.checkSampler(tex, s); err != nil {
		return err
	}
	d.api.VerifySampler(d.ptr, index, tex.handle(), s.Raw())
	return nil
}

// VerifyVertexSampler is VerifySampler for vertex texture slots.
func (d *Device) VerifyVertexSampler(index int32, tex *Texture, s *SamplerState) error {
	if err := d.checkSampler(tex, s); err != nil {
		return err
	}
	d.api.VerifyVertexSampler(d.ptr, index, tex.handle(), s.Raw())
	return nil
}

func (d *Device) checkSampler(tex *Texture, s *SamplerState) error {
	if err := d.check(); err != nil {
		return err
	}
	if tex != nil {
		if err := d.owned("texture", tex.ptr); err != nil {
			return fmt.Errorf("fna3d: sampler %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("fna3d: sampler state: %w", err)
	}
	return nil
}

// ApplyVertexBufferBindings binds vertex buffers for the next draw. Set
// updated when the bindings differ from the previous call.
//
// Every binding is validated before anything crosses to FNA3D. The element
// arrays of the declarations live in Go memory and stay pinned for the
// duration of the call.
func (d *Device) ApplyVertexBufferBindings(bindings []VertexBufferBinding, updated bool, baseVertex int32) error {
	if err := d.check(); err != nil {
		return err
	}
	for i := range bindings {
		if err := bindings[i].Validate(); err != nil {
			return fmt.Errorf("fna3d: vertex buffer binding %d: %w", i, err)
		}
		if err := d.owned("vertex buffer", bindings[i].raw.VertexBuffer); err != nil {
			return fmt.Errorf("fna3d: vertex buffer binding %d: %w", i, err)
		}
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()
	for i := range bindings {
		if p := bindings[i].raw.VertexDeclaration.Elements; p != nil {
			pinner.Pin(p)
		}
	}

	raw := unsafe.Slice((*sys.VertexBufferBinding)(unsafe.Pointer(unsafe.SliceData(bindings))), len(bindings))
	Logger().Debug("fna3d: apply vertex buffer bindings", "count", len(bindings), "updated", updated)
	d.api.ApplyVertexBufferBindings(d.ptr, raw, updated, baseVertex)
	return nil
}

// SetRenderTargets redirects drawing to targets, or back to the
// backbuffer when targets is empty. depthStencil may be nil.
func (d *Device) SetRenderTargets(targets []RenderTargetBinding, depthStencil *Renderbuffer, depthFormat DepthFormat, preserve bool) error {
	if err := d.check(); err != nil {
		return err
	}
	if !depthFormat.IsValid() {
		return &UnknownVariantError{Type: "DepthFormat", Value: uint32(depthFormat)}
	}
	for i := range targets {
		if err := d.checkTarget(&targets[i]); err != nil {
			return fmt.Errorf("fna3d: render target %d: %w", i, err)
		}
	}
	if depthStencil != nil {
		if err := d.owned("depth stencil buffer", depthStencil.ptr); err != nil {
			return fmt.Errorf("fna3d: %w", err)
		}
	}
	raw := unsafe.Slice((*sys.RenderTargetBinding)(unsafe.Pointer(unsafe.SliceData(targets))), len(targets))
	d.api.SetRenderTargets(d.ptr, raw, depthStencil.handle(), depthFormat.Raw(), preserve)
	return nil
}

// ResolveTarget resolves multisampling and generates mipmaps for target.
func (d *Device) ResolveTarget(target *RenderTargetBinding) error {
	if err := d.check(); err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("fna3d: render target: %w", ErrNilResource)
	}
	if err := d.checkTarget(target); err != nil {
		return fmt.Errorf("fna3d: render target: %w", err)
	}
	d.api.ResolveTarget(d.ptr, target.Raw())
	return nil
}

// checkTarget validates b and the texture and color buffer it points at.
func (d *Device) checkTarget(b *RenderTargetBinding) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := d.owned("texture", b.raw.Texture); err != nil {
		return err
	}
	if b.raw.ColorBuffer != nil {
		return d.owned("color buffer", b.raw.ColorBuffer)
	}
	return nil
}

// ResetBackbuffer recreates the backbuffer with new parameters.
func (d *Device) ResetBackbuffer(params *PresentationParameters) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("fna3d: presentation parameters: %w", err)
	}
	d.api.ResetBackbuffer(d.ptr, params.Raw())
	return nil
}

// ReadBackbuffer copies a w x h region of the backbuffer into data, which
// must hold at least w*h*4 bytes.
func (d *Device) ReadBackbuffer(x, y, w, h int32, data []byte) error {
	if err := d.check(); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return ErrInvalidSize
	}
	if need := int(w) * int(h) * 4; len(data) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrDataSize, len(data), need)
	}
	d.api.ReadBackbuffer(d.ptr, x, y, w, h, data)
	return nil
}

// BackbufferSize returns the backbuffer dimensions.
func (d *Device) BackbufferSize() (w, h int32, err error) {
	if err := d.check(); err != nil {
		return 0, 0, err
	}
	w, h = d.api.GetBackbufferSize(d.ptr)
	return w, h, nil
}

// BackbufferSurfaceFormat returns the backbuffer color format. A value the
// library reports outside the known set is an error.
func (d *Device) BackbufferSurfaceFormat() (SurfaceFormat, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	return SurfaceFormatFromRaw(d.api.GetBackbufferSurfaceFormat(d.ptr))
}

// BackbufferDepthFormat returns the backbuffer depth format.
func (d *Device) BackbufferDepthFormat() (DepthFormat, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	return DepthFormatFromRaw(d.api.GetBackbufferDepthFormat(d.ptr))
}

// BackbufferMultiSampleCount returns the backbuffer sample count.
func (d *Device) BackbufferMultiSampleCount() (int32, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	return d.api.GetBackbufferMultiSampleCount(d.ptr), nil
}

// SupportsDXT1 reports whether DXT1 textures are supported.
func (d *Device) SupportsDXT1() bool {
	return d.check() == nil && d.api.SupportsDXT1(d.ptr)
}

// SupportsS3TC reports whether DXT3/DXT5 textures are supported.
func (d *Device) SupportsS3TC() bool {
	return d.check() == nil && d.api.SupportsS3TC(d.ptr)
}

// SupportsHardwareInstancing reports whether DrawInstancedPrimitives works.
func (d *Device) SupportsHardwareInstancing() bool {
	return d.check() == nil && d.api.SupportsHardwareInstancing(d.ptr)
}

// SupportsNoOverwrite reports whether SetDataOptionsNoOverwrite is honored.
func (d *Device) SupportsNoOverwrite() bool {
	return d.check() == nil && d.api.SupportsNoOverwrite(d.ptr)
}

// MaxTextureSlots returns the number of fragment and vertex texture slots.
func (d *Device) MaxTextureSlots() (textures, vertexTextures int32, err error) {
	if err := d.check(); err != nil {
		return 0, 0, err
	}
	textures, vertexTextures = d.api.GetMaxTextureSlots(d.ptr)
	return textures, vertexTextures, nil
}

// MaxMultiSampleCount clamps multiSampleCount to what format supports.
func (d *Device) MaxMultiSampleCount(format SurfaceFormat, multiSampleCount int32) (int32, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	if !format.IsValid() {
		return 0, &UnknownVariantError{Type: "SurfaceFormat", Value: uint32(format)}
	}
	return d.api.GetMaxMultiSampleCount(d.ptr, format.Raw(), multiSampleCount), nil
}

// SetStringMarker inserts a debug marker visible in graphics debuggers.
func (d *Device) SetStringMarker(text string) error {
	if err := d.check(); err != nil {
		return err
	}
	d.api.SetStringMarker(d.ptr, text)
	return nil
}

// Version is an FNA3D version number encoded as
// major*10000 + minor*100 + patch.
type Version uint32

// Major returns the major version.
func (v Version) Major() int { return int(v / 10000) }

// Minor returns the minor version.
func (v Version) Minor() int { return int(v/100) % 100 }

// Patch returns the patch version.
func (v Version) Patch() int { return int(v % 100) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%02d.%d", v.Major(), v.Minor(), v.Patch())
}

// LinkedVersion returns the version of the linked FNA3D library, or 0 when
// none is linked.
func LinkedVersion() Version { return Version(lib.LinkedVersion()) }

// Linked reports whether the package was built with the native library.
func Linked() bool { return native.Linked() }

// PrepareWindowAttributes selects a driver and returns the SDL window
// flags the window must be created with. Call it before creating the
// window.
func PrepareWindowAttributes() WindowFlags {
	return WindowFlags(lib.PrepareWindowAttributes())
}

// DrawableSize returns the size in pixels of window's drawable area, which
// differs from the window size on high-DPI displays.
func DrawableSize(window unsafe.Pointer) (w, h int32) {
	return lib.DrawableSize(window)
}

// DefaultPresentationParameters returns NewPresentationParameters sized to
// window's drawable area.
func DefaultPresentationParameters(window unsafe.Pointer) PresentationParameters {
	w, h := DrawableSize(window)
	return NewPresentationParameters(window, w, h)
}
