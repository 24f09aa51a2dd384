package fna3d

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"
	"unsafe"

	"github.com/gogpu/fna3d/internal/native"
	"github.com/gogpu/fna3d/sys"
)

// fakeAPI records the calls the typed layer makes. Methods it does not
// implement panic through the nil embedded interface.
type fakeAPI struct {
	native.API

	handles []*byte
	calls   []string

	debug        bool
	hooked       bool
	destroyed    int
	disposed     []string
	clearOptions uint32
	clearColor   sys.Vec4
	blend        sys.BlendState
	bindings     []sys.VertexBufferBinding
	targets      int
	vertexData   []byte
	indexData    []byte
	textureData  []byte
	depthFormat  uint32
	effectErrs   []native.EffectMessage
	technique    unsafe.Pointer
	params       map[string][]float32
	failCreate   bool
}

func (f *fakeAPI) handle() unsafe.Pointer {
	b := new(byte)
	f.handles = append(f.handles, b)
	return unsafe.Pointer(b)
}

func (f *fakeAPI) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeAPI) HookLogFunctions(info, warn, err func(string)) { f.hooked = true }

func (f *fakeAPI) CreateDevice(p *sys.PresentationParameters, debug bool) (unsafe.Pointer, error) {
	f.record("CreateDevice")
	f.debug = debug
	if f.failCreate {
		return nil, nil
	}
	return f.handle(), nil
}

func (f *fakeAPI) DestroyDevice(unsafe.Pointer) { f.destroyed++ }

func (f *fakeAPI) Clear(_ unsafe.Pointer, options uint32, c *sys.Vec4, _ float32, _ int32) {
	f.record("Clear")
	f.clearOptions = options
	f.clearColor = *c
}

func (f *fakeAPI) DrawIndexedPrimitives(unsafe.Pointer, uint32, int32, int32, int32, int32, int32, unsafe.Pointer, uint32) {
	f.record("DrawIndexedPrimitives")
}

func (f *fakeAPI) SetBlendState(_ unsafe.Pointer, s *sys.BlendState) {
	f.record("SetBlendState")
	f.blend = *s
}

func (f *fakeAPI) ApplyVertexBufferBindings(_ unsafe.Pointer, b []sys.VertexBufferBinding, _ bool, _ int32) {
	f.record("ApplyVertexBufferBindings")
	f.bindings = append([]sys.VertexBufferBinding(nil), b...)
}

func (f *fakeAPI) SetRenderTargets(_ unsafe.Pointer, t []sys.RenderTargetBinding, _ unsafe.Pointer, _ uint32, _ bool) {
	f.record("SetRenderTargets")
	f.targets = len(t)
}

func (f *fakeAPI) ResolveTarget(unsafe.Pointer, *sys.RenderTargetBinding) {
	f.record("ResolveTarget")
}

func (f *fakeAPI) VerifySampler(unsafe.Pointer, int32, unsafe.Pointer, *sys.SamplerState) {
	f.record("VerifySampler")
}

func (f *fakeAPI) GenColorRenderbuffer(unsafe.Pointer, int32, int32, uint32, int32, unsafe.Pointer) unsafe.Pointer {
	return f.handle()
}

func (f *fakeAPI) GenDepthStencilRenderbuffer(unsafe.Pointer, int32, int32, uint32, int32) unsafe.Pointer {
	return f.handle()
}

func (f *fakeAPI) AddDisposeRenderbuffer(_, _ unsafe.Pointer) {
	f.disposed = append(f.disposed, "renderbuffer")
}

func (f *fakeAPI) GetBackbufferDepthFormat(unsafe.Pointer) uint32 { return f.depthFormat }

func (f *fakeAPI) SupportsDXT1(unsafe.Pointer) bool { return true }

func (f *fakeAPI) GenVertexBuffer(unsafe.Pointer, bool, uint32, int32) unsafe.Pointer {
	return f.handle()
}

func (f *fakeAPI) GenIndexBuffer(unsafe.Pointer, bool, uint32, int32) unsafe.Pointer {
	return f.handle()
}

func (f *fakeAPI) AddDisposeVertexBuffer(_, _ unsafe.Pointer) {
	f.disposed = append(f.disposed, "vertex")
}

func (f *fakeAPI) AddDisposeIndexBuffer(_, _ unsafe.Pointer) {
	f.disposed = append(f.disposed, "index")
}

func (f *fakeAPI) SetVertexBufferData(_, _ unsafe.Pointer, offset int32, data []byte, _, _, _ int32, _ uint32) {
	f.vertexData = append([]byte(nil), data...)
}

func (f *fakeAPI) GetVertexBufferData(_, _ unsafe.Pointer, _ int32, data []byte, _, _, _ int32) {
	copy(data, f.vertexData)
}

func (f *fakeAPI) SetIndexBufferData(_, _ unsafe.Pointer, _ int32, data []byte, _ uint32) {
	f.indexData = append([]byte(nil), data...)
}

func (f *fakeAPI) CreateTexture2D(unsafe.Pointer, uint32, int32, int32, int32, bool) unsafe.Pointer {
	return f.handle()
}

func (f *fakeAPI) SetTextureData2D(_, _ unsafe.Pointer, _, _, _, _, _ int32, data []byte) {
	f.textureData = append([]byte(nil), data...)
}

func (f *fakeAPI) AddDisposeTexture(_, _ unsafe.Pointer) {
	f.disposed = append(f.disposed, "texture")
}

func (f *fakeAPI) CreateEffect(unsafe.Pointer, []byte) (unsafe.Pointer, unsafe.Pointer) {
	return f.handle(), f.handle()
}

func (f *fakeAPI) EffectErrors(unsafe.Pointer) []native.EffectMessage { return f.effectErrs }

func (f *fakeAPI) EffectTechnique(_ unsafe.Pointer, i int) unsafe.Pointer {
	if i != 0 {
		return nil
	}
	return unsafe.Pointer(&f.params)
}

func (f *fakeAPI) SetEffectTechnique(_, _, tech unsafe.Pointer) { f.technique = tech }

func (f *fakeAPI) AddDisposeEffect(_, _ unsafe.Pointer) {
	f.disposed = append(f.disposed, "effect")
}

func (f *fakeAPI) SetEffectParam(_ unsafe.Pointer, name string, values []float32) bool {
	if _, ok := f.params[name]; !ok {
		return false
	}
	f.params[name] = append([]float32(nil), values...)
	return true
}

func newTestDevice(t *testing.T) (*Device, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{params: map[string][]float32{"MatrixTransform": nil}}
	params := NewPresentationParameters(nil, 320, 240)
	dev, err := NewDevice(&params, withAPI(api))
	if err != nil {
		t.Fatalf("NewDevice() = %v", err)
	}
	t.Cleanup(func() { _ = dev.Close() })
	return dev, api
}

func TestNewDeviceNotLinked(t *testing.T) {
	if Linked() {
		t.Skip("native library linked")
	}
	params := NewPresentationParameters(nil, 64, 64)
	_, err := NewDevice(&params)
	if !errors.Is(err, ErrNotLinked) {
		t.Fatalf("NewDevice() error = %v, want ErrNotLinked", err)
	}
}

func TestNewDeviceOptions(t *testing.T) {
	t.Setenv(native.ForceDriverEnv, "")

	api := &fakeAPI{}
	params := NewPresentationParameters(nil, 64, 64)
	dev, err := NewDevice(&params, withAPI(api), WithDebug(true), WithDriver(DriverVulkan), WithNativeLog())
	if err != nil {
		t.Fatalf("NewDevice() = %v", err)
	}
	defer dev.Close()

	if !api.debug {
		t.Error("debug mode not passed to CreateDevice")
	}
	if !api.hooked {
		t.Error("WithNativeLog did not hook native logging")
	}
	if got := DriverFromEnv(); got != DriverVulkan {
		t.Errorf("DriverFromEnv() = %q, want %q", got, DriverVulkan)
	}
}

func TestNewDeviceFailures(t *testing.T) {
	api := &fakeAPI{failCreate: true}
	params := NewPresentationParameters(nil, 64, 64)
	if _, err := NewDevice(&params, withAPI(api)); !errors.Is(err, ErrDeviceCreation) {
		t.Errorf("NULL device: error = %v, want ErrDeviceCreation", err)
	}

	if _, err := NewDevice(nil, withAPI(&fakeAPI{})); !errors.Is(err, ErrDeviceCreation) {
		t.Errorf("nil params: error = %v, want ErrDeviceCreation", err)
	}

	bad := NewPresentationParameters(nil, 64, 64)
	bad.Raw().BackBufferFormat = 999
	api = &fakeAPI{}
	if _, err := NewDevice(&bad, withAPI(api)); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("forged format: error = %v, want ErrUnknownVariant", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("invalid parameters reached the native library: %v", api.calls)
	}
}

func TestDeviceCloseIdempotent(t *testing.T) {
	dev, api := newTestDevice(t)

	if err := dev.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := dev.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	if api.destroyed != 1 {
		t.Errorf("DestroyDevice called %d times, want 1", api.destroyed)
	}
	if err := dev.Clear(ClearOptionsTarget, ColorBlack, 1, 0); !errors.Is(err, ErrDeviceClosed) {
		t.Errorf("Clear after Close = %v, want ErrDeviceClosed", err)
	}
	if dev.SupportsDXT1() {
		t.Error("SupportsDXT1 after Close = true")
	}
	if dev.Raw() != nil {
		t.Error("Raw after Close is not nil")
	}
}

func TestDeviceClear(t *testing.T) {
	dev, api := newTestDevice(t)

	opts := ClearOptionsTarget | ClearOptionsDepthBuffer
	if err := dev.Clear(opts, ColorWhite, 1, 0); err != nil {
		t.Fatalf("Clear() = %v", err)
	}
	if api.clearOptions != opts.Raw() {
		t.Errorf("clear options = %#x, want %#x", api.clearOptions, opts.Raw())
	}
	if api.clearColor != (sys.Vec4{X: 1, Y: 1, Z: 1, W: 1}) {
		t.Errorf("clear color = %+v, want all ones", api.clearColor)
	}
}

func TestDeviceSetBlendStateValidates(t *testing.T) {
	dev, api := newTestDevice(t)

	s := BlendStateAlphaBlend()
	if err := dev.SetBlendState(&s); err != nil {
		t.Fatalf("SetBlendState() = %v", err)
	}
	if api.blend != *s.Raw() {
		t.Error("blend state not passed through unchanged")
	}

	s.Raw().ColorBlendFunction = 77
	api.calls = nil
	if err := dev.SetBlendState(&s); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("forged blend state: error = %v, want ErrUnknownVariant", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("forged state reached the native library: %v", api.calls)
	}
}

func TestDeviceBackbufferDepthFormatStrict(t *testing.T) {
	dev, api := newTestDevice(t)

	api.depthFormat = uint32(DepthFormatD24S8)
	got, err := dev.BackbufferDepthFormat()
	if err != nil || got != DepthFormatD24S8 {
		t.Fatalf("BackbufferDepthFormat() = %v, %v; want D24S8", got, err)
	}

	api.depthFormat = 42
	if _, err := dev.BackbufferDepthFormat(); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("unknown depth format: error = %v, want ErrUnknownVariant", err)
	}
}

type vertex struct {
	X, Y, Z float32
	Color   Color
}

func TestVertexAndIndexData(t *testing.T) {
	dev, api := newTestDevice(t)

	vb, err := dev.GenVertexBuffer(false, BufferUsageNone, 64)
	if err != nil {
		t.Fatalf("GenVertexBuffer() = %v", err)
	}
	ib, err := dev.GenIndexBuffer(false, BufferUsageWriteOnly, 12)
	if err != nil {
		t.Fatalf("GenIndexBuffer() = %v", err)
	}

	verts := []vertex{{X: 1, Color: ColorWhite}, {Y: 2, Color: ColorBlack}}
	if err := SetVertexData(vb, 0, verts, SetDataOptionsNone); err != nil {
		t.Fatalf("SetVertexData() = %v", err)
	}
	if len(api.vertexData) != 32 {
		t.Errorf("vertex bytes = %d, want 32", len(api.vertexData))
	}

	back := make([]vertex, 2)
	if err := VertexData(vb, 0, back); err != nil {
		t.Fatalf("VertexData() = %v", err)
	}
	if back[0] != verts[0] || back[1] != verts[1] {
		t.Errorf("VertexData() = %+v, want %+v", back, verts)
	}

	if err := SetIndexData(ib, 0, []uint16{0, 1, 2}, SetDataOptionsDiscard); err != nil {
		t.Fatalf("SetIndexData() = %v", err)
	}
	if len(api.indexData) != 6 {
		t.Errorf("index bytes = %d, want 6", len(api.indexData))
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"overflow", SetVertexData(vb, 48, verts, SetDataOptionsNone), ErrDataSize},
		{"negative offset", SetIndexData(ib, -2, []uint16{1}, SetDataOptionsNone), ErrDataSize},
		{"index as vertex", SetVertexData(ib, 0, verts[:1], SetDataOptionsNone), ErrBufferKind},
		{"vertex as index", SetIndexData(vb, 0, []uint32{1}, SetDataOptionsNone), ErrBufferKind},
		{"forged options", SetIndexData(ib, 0, []uint16{1}, SetDataOptions(9)), ErrUnknownVariant},
		{"nil buffer", SetIndexData[uint16](nil, 0, nil, SetDataOptionsNone), ErrNilResource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("error = %v, want %v", tt.err, tt.want)
			}
		})
	}
}

func TestBufferDispose(t *testing.T) {
	dev, api := newTestDevice(t)

	vb, _ := dev.GenVertexBuffer(true, BufferUsageNone, 16)
	ib, _ := dev.GenIndexBuffer(true, BufferUsageNone, 16)
	vb.Dispose()
	vb.Dispose()
	ib.Dispose()

	if !vb.Disposed() || !ib.Disposed() {
		t.Error("Disposed() = false after Dispose")
	}
	if got := strings.Join(api.disposed, ","); got != "vertex,index" {
		t.Errorf("disposed = %q, want %q", got, "vertex,index")
	}
	if err := SetVertexData(vb, 0, []float32{1}, SetDataOptionsNone); !errors.Is(err, ErrDisposed) {
		t.Errorf("use after Dispose = %v, want ErrDisposed", err)
	}
	if err := dev.DrawIndexedPrimitives(PrimitiveTypeTriangleList, 0, 0, 1, ib, IndexElementSizeBits16); !errors.Is(err, ErrDisposed) {
		t.Errorf("draw with disposed indices = %v, want ErrDisposed", err)
	}
}

func TestDisposeAfterCloseSkipsNative(t *testing.T) {
	dev, api := newTestDevice(t)

	tex, err := dev.CreateTexture2D(SurfaceFormatColor, 4, 4, 1, false)
	if err != nil {
		t.Fatalf("CreateTexture2D() = %v", err)
	}
	_ = dev.Close()
	tex.Dispose()
	if len(api.disposed) != 0 {
		t.Errorf("disposed after Close: %v", api.disposed)
	}
}

func TestDrawIndexedPrimitives(t *testing.T) {
	dev, api := newTestDevice(t)

	ib, _ := dev.GenIndexBuffer(false, BufferUsageNone, 6)
	if err := dev.DrawIndexedPrimitives(PrimitiveTypeTriangleList, 0, 0, 1, ib, IndexElementSizeBits16); err != nil {
		t.Fatalf("DrawIndexedPrimitives() = %v", err)
	}
	if api.calls[len(api.calls)-1] != "DrawIndexedPrimitives" {
		t.Errorf("last call = %q", api.calls[len(api.calls)-1])
	}

	vb, _ := dev.GenVertexBuffer(false, BufferUsageNone, 6)
	if err := dev.DrawIndexedPrimitives(PrimitiveTypeTriangleList, 0, 0, 1, vb, IndexElementSizeBits16); !errors.Is(err, ErrBufferKind) {
		t.Errorf("vertex buffer as indices = %v, want ErrBufferKind", err)
	}
	if err := dev.DrawIndexedPrimitives(PrimitiveType(99), 0, 0, 1, ib, IndexElementSizeBits16); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("forged primitive type = %v, want ErrUnknownVariant", err)
	}
}

func TestApplyVertexBufferBindings(t *testing.T) {
	dev, api := newTestDevice(t)

	vb, _ := dev.GenVertexBuffer(false, BufferUsageNone, 64)
	decl, err := NewVertexDeclaration(
		NewVertexElement(0, VertexElementFormatVector3, VertexElementUsagePosition, 0),
		NewVertexElement(12, VertexElementFormatColor, VertexElementUsageColor, 0),
	)
	if err != nil {
		t.Fatalf("NewVertexDeclaration() = %v", err)
	}
	bindings := []VertexBufferBinding{NewVertexBufferBinding(vb, decl, 0, 0)}
	if err := dev.ApplyVertexBufferBindings(bindings, true, 0); err != nil {
		t.Fatalf("ApplyVertexBufferBindings() = %v", err)
	}
	if len(api.bindings) != 1 {
		t.Fatalf("bindings passed = %d, want 1", len(api.bindings))
	}
	got := api.bindings[0]
	if got.VertexBuffer != vb.handle() || got.VertexDeclaration.VertexStride != 16 || got.VertexDeclaration.ElementCount != 2 {
		t.Errorf("binding = %+v", got)
	}

	unbound := []VertexBufferBinding{NewVertexBufferBinding(nil, decl, 0, 0)}
	api.calls = nil
	if err := dev.ApplyVertexBufferBindings(unbound, true, 0); !errors.Is(err, ErrNilResource) {
		t.Errorf("nil buffer binding = %v, want ErrNilResource", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("invalid binding reached the native library: %v", api.calls)
	}
}

func TestSetRenderTargets(t *testing.T) {
	dev, api := newTestDevice(t)

	tex, _ := dev.CreateTexture2D(SurfaceFormatColor, 8, 8, 1, true)
	targets := []RenderTargetBinding{NewRenderTarget2D(tex, 8, 8, 1)}
	if err := dev.SetRenderTargets(targets, nil, DepthFormatNone, false); err != nil {
		t.Fatalf("SetRenderTargets() = %v", err)
	}
	if api.targets != 1 {
		t.Errorf("targets passed = %d, want 1", api.targets)
	}
	if err := dev.SetRenderTargets(nil, nil, DepthFormat(17), false); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("forged depth format = %v, want ErrUnknownVariant", err)
	}
}

func TestBindingsRejectDisposedResources(t *testing.T) {
	decl, err := NewVertexDeclaration(NewVertexElement(0, VertexElementFormatVector2, VertexElementUsagePosition, 0))
	if err != nil {
		t.Fatal(err)
	}
	sampler := SamplerLinearClamp()

	tests := []struct {
		name string
		call func(t *testing.T, dev *Device) error
	}{
		{"vertex buffer", func(t *testing.T, dev *Device) error {
			vb, _ := dev.GenVertexBuffer(false, BufferUsageNone, 32)
			bindings := []VertexBufferBinding{NewVertexBufferBinding(vb, decl, 0, 0)}
			vb.Dispose()
			return dev.ApplyVertexBufferBindings(bindings, true, 0)
		}},
		{"render target texture", func(t *testing.T, dev *Device) error {
			tex, _ := dev.CreateTexture2D(SurfaceFormatColor, 8, 8, 1, true)
			targets := []RenderTargetBinding{NewRenderTarget2D(tex, 8, 8, 1)}
			tex.Dispose()
			return dev.SetRenderTargets(targets, nil, DepthFormatNone, false)
		}},
		{"render target color buffer", func(t *testing.T, dev *Device) error {
			tex, _ := dev.CreateTexture2D(SurfaceFormatColor, 8, 8, 1, true)
			rb, err := dev.GenColorRenderbuffer(8, 8, SurfaceFormatColor, 4, tex)
			if err != nil {
				t.Fatalf("GenColorRenderbuffer() = %v", err)
			}
			target := NewRenderTarget2D(tex, 8, 8, 1)
			target.SetColorBuffer(rb, 4)
			rb.Dispose()
			return dev.SetRenderTargets([]RenderTargetBinding{target}, nil, DepthFormatNone, false)
		}},
		{"depth stencil buffer", func(t *testing.T, dev *Device) error {
			tex, _ := dev.CreateTexture2D(SurfaceFormatColor, 8, 8, 1, true)
			ds, err := dev.GenDepthStencilRenderbuffer(8, 8, DepthFormatD24S8, 0)
			if err != nil {
				t.Fatalf("GenDepthStencilRenderbuffer() = %v", err)
			}
			ds.Dispose()
			targets := []RenderTargetBinding{NewRenderTarget2D(tex, 8, 8, 1)}
			return dev.SetRenderTargets(targets, ds, DepthFormatD24S8, false)
		}},
		{"resolve target", func(t *testing.T, dev *Device) error {
			tex, _ := dev.CreateTexture2D(SurfaceFormatColor, 8, 8, 1, true)
			target := NewRenderTarget2D(tex, 8, 8, 1)
			tex.Dispose()
			return dev.ResolveTarget(&target)
		}},
		{"sampler texture", func(t *testing.T, dev *Device) error {
			tex, _ := dev.CreateTexture2D(SurfaceFormatColor, 8, 8, 1, false)
			tex.Dispose()
			return dev.VerifySampler(0, tex, &sampler)
		}},
		{"texture from another device", func(t *testing.T, dev *Device) error {
			other, _ := newTestDevice(t)
			tex, _ := other.CreateTexture2D(SurfaceFormatColor, 8, 8, 1, true)
			return dev.SetRenderTargets([]RenderTargetBinding{NewRenderTarget2D(tex, 8, 8, 1)}, nil, DepthFormatNone, false)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, api := newTestDevice(t)
			err := tt.call(t, dev)
			if !errors.Is(err, ErrDisposed) {
				t.Errorf("error = %v, want ErrDisposed", err)
			}
			for _, c := range api.calls {
				switch c {
				case "ApplyVertexBufferBindings", "SetRenderTargets", "ResolveTarget", "VerifySampler":
					t.Errorf("stale handle reached native %s", c)
				}
			}
		})
	}
}

func TestBindingsAcceptLiveResources(t *testing.T) {
	dev, api := newTestDevice(t)

	tex, _ := dev.CreateTexture2D(SurfaceFormatColor, 8, 8, 1, true)
	rb, _ := dev.GenColorRenderbuffer(8, 8, SurfaceFormatColor, 4, tex)
	ds, _ := dev.GenDepthStencilRenderbuffer(8, 8, DepthFormatD24S8, 0)
	target := NewRenderTarget2D(tex, 8, 8, 1)
	target.SetColorBuffer(rb, 4)

	if err := dev.SetRenderTargets([]RenderTargetBinding{target}, ds, DepthFormatD24S8, true); err != nil {
		t.Fatalf("SetRenderTargets() = %v", err)
	}
	if err := dev.ResolveTarget(&target); err != nil {
		t.Fatalf("ResolveTarget() = %v", err)
	}
	if err := dev.ResolveTarget(nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("ResolveTarget(nil) = %v, want ErrNilResource", err)
	}
	sampler := SamplerPointWrap()
	if err := dev.VerifySampler(0, nil, &sampler); err != nil {
		t.Errorf("VerifySampler(nil texture) = %v", err)
	}
	if got := strings.Join(api.calls[1:], ","); got != "SetRenderTargets,ResolveTarget,VerifySampler" {
		t.Errorf("native calls = %s", got)
	}
}

func TestCreateTextureFromImage(t *testing.T) {
	dev, api := newTestDevice(t)

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)

	tex, err := dev.CreateTextureFromImage(sub)
	if err != nil {
		t.Fatalf("CreateTextureFromImage() = %v", err)
	}
	if w, h, _ := tex.Size(); w != 2 || h != 2 {
		t.Errorf("texture size = %dx%d, want 2x2", w, h)
	}
	if len(api.textureData) != 16 {
		t.Fatalf("uploaded %d bytes, want 16", len(api.textureData))
	}
	if api.textureData[0] != 255 || api.textureData[3] != 255 {
		t.Errorf("first pixel = %v, want opaque red", api.textureData[:4])
	}
	if _, err := dev.CreateTextureFromImage(nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("CreateTextureFromImage(nil) = %v, want ErrNilResource", err)
	}
}

func TestTextureDataSize(t *testing.T) {
	dev, _ := newTestDevice(t)

	tex, _ := dev.CreateTexture2D(SurfaceFormatColor, 4, 4, 1, false)
	if err := dev.SetTextureData2D(tex, 0, 0, 4, 4, 0, make([]byte, 63)); !errors.Is(err, ErrDataSize) {
		t.Errorf("short data = %v, want ErrDataSize", err)
	}
	if _, err := dev.CreateTexture2D(SurfaceFormatColor, 0, 4, 1, false); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width = %v, want ErrInvalidSize", err)
	}
	if err := dev.SetTextureDataCube(tex, 0, 0, 4, 4, CubeMapFacePositiveX, 0, make([]byte, 64)); err == nil {
		t.Error("cube upload to a 2D texture succeeded")
	}
}

func TestCreateEffect(t *testing.T) {
	dev, api := newTestDevice(t)

	e, err := dev.CreateEffect([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("CreateEffect() = %v", err)
	}
	if api.technique == nil {
		t.Error("first technique not selected")
	}
	if err := e.SetParam("MatrixTransform", []float32{1, 0, 0, 1}); err != nil {
		t.Errorf("SetParam() = %v", err)
	}
	if len(api.params["MatrixTransform"]) != 4 {
		t.Errorf("parameter not written")
	}
	if err := e.SetParam("Missing", []float32{1}); !errors.Is(err, ErrParamNotFound) {
		t.Errorf("SetParam(missing) = %v, want ErrParamNotFound", err)
	}
	if err := dev.SetEffectTechnique(e, 3); err == nil {
		t.Error("SetEffectTechnique(out of range) succeeded")
	}
}

func TestCreateEffectErrors(t *testing.T) {
	dev, api := newTestDevice(t)
	api.effectErrs = []native.EffectMessage{
		{Text: "syntax error", Filename: "sprite.fx", Position: 12},
		{Text: "unknown type"},
	}

	_, err := dev.CreateEffect([]byte{0})
	var eerr *EffectError
	if !errors.As(err, &eerr) {
		t.Fatalf("CreateEffect() error = %v, want *EffectError", err)
	}
	if len(eerr.Messages) != 2 || eerr.Messages[0].Line != 12 {
		t.Errorf("messages = %+v", eerr.Messages)
	}
	if !strings.Contains(err.Error(), "sprite.fx:12: syntax error") {
		t.Errorf("Error() = %q", err.Error())
	}
	if len(api.disposed) != 1 || api.disposed[0] != "effect" {
		t.Errorf("failed effect not disposed: %v", api.disposed)
	}
}

func TestDeviceLogsLifecycle(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	dev, _ := newTestDevice(t)
	_ = dev.Close()

	out := buf.String()
	for _, want := range []string{"device created", "device destroyed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	v := Version(240105)
	if v.Major() != 24 || v.Minor() != 1 || v.Patch() != 5 {
		t.Errorf("Version parts = %d.%d.%d", v.Major(), v.Minor(), v.Patch())
	}
	if got := v.String(); got != "24.01.5" {
		t.Errorf("String() = %q, want %q", got, "24.01.5")
	}
}
