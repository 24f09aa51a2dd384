package fna3d

import (
	"testing"
	"unsafe"

	"github.com/gogpu/fna3d/sys"
)

func TestWrapperLayoutMatchesRecord(t *testing.T) {
	tests := []struct {
		name          string
		wrapper, want uintptr
	}{
		{"BlendState", unsafe.Sizeof(BlendState{}), unsafe.Sizeof(sys.BlendState{})},
		{"DepthStencilState", unsafe.Sizeof(DepthStencilState{}), unsafe.Sizeof(sys.DepthStencilState{})},
		{"RasterizerState", unsafe.Sizeof(RasterizerState{}), unsafe.Sizeof(sys.RasterizerState{})},
		{"SamplerState", unsafe.Sizeof(SamplerState{}), unsafe.Sizeof(sys.SamplerState{})},
		{"PresentationParameters", unsafe.Sizeof(PresentationParameters{}), unsafe.Sizeof(sys.PresentationParameters{})},
		{"VertexElement", unsafe.Sizeof(VertexElement{}), unsafe.Sizeof(sys.VertexElement{})},
		{"VertexBufferBinding", unsafe.Sizeof(VertexBufferBinding{}), unsafe.Sizeof(sys.VertexBufferBinding{})},
		{"RenderTargetBinding", unsafe.Sizeof(RenderTargetBinding{}), unsafe.Sizeof(sys.RenderTargetBinding{})},
		{"EffectStateChanges", unsafe.Sizeof(EffectStateChanges{}), unsafe.Sizeof(sys.EffectStateChanges{})},
		{"Viewport", unsafe.Sizeof(Viewport{}), unsafe.Sizeof(sys.Viewport{})},
		{"Rect", unsafe.Sizeof(Rect{}), unsafe.Sizeof(sys.Rect{})},
		{"Color", unsafe.Sizeof(Color{}), unsafe.Sizeof(sys.Color{})},
		{"Vec4", unsafe.Sizeof(Vec4{}), unsafe.Sizeof(sys.Vec4{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wrapper != tt.want {
				t.Errorf("size = %d, record size = %d", tt.wrapper, tt.want)
			}
		})
	}
}

func TestFromRawSharesMemory(t *testing.T) {
	raw := sys.DepthStencilState{}
	s := DepthStencilStateFromRaw(&raw)
	if s.Raw() != &raw {
		t.Fatal("FromRaw(p).Raw() != p")
	}
	s.SetStencilEnabled(true)
	if raw.StencilEnable != 1 {
		t.Error("write through wrapper not visible in record")
	}
	raw.DepthBufferFunction = CompareFunctionGreater.Raw()
	if s.DepthBufferFunction() != CompareFunctionGreater {
		t.Error("write to record not visible through wrapper")
	}

	var rect sys.Rect
	RectFromRaw(&rect).W = 9
	if rect.W != 9 {
		t.Error("RectFromRaw does not alias")
	}

	bindings := []sys.VertexBufferBinding{{VertexOffset: 3}}
	if VertexBufferBindingFromRaw(&bindings[0]).VertexOffset() != 3 {
		t.Error("VertexBufferBindingFromRaw does not alias")
	}
}

func TestBytesOf(t *testing.T) {
	if b := bytesOf([]uint32(nil)); b != nil {
		t.Errorf("bytesOf(nil) = %v", b)
	}
	s := []uint16{0x0102, 0x0304}
	b := bytesOf(s)
	if len(b) != 4 {
		t.Fatalf("len = %d, want 4", len(b))
	}
	b[0] = 0xFF
	if s[0]&0xFF != 0xFF && s[0]>>8 != 0xFF {
		t.Error("bytesOf copied instead of aliasing")
	}
	if dataPtr(nil) != nil || dataPtr(b) != unsafe.Pointer(&s[0]) {
		t.Error("dataPtr does not point at the first element")
	}
}

func TestEffectStateChangesCounts(t *testing.T) {
	var c EffectStateChanges
	c.Raw().RenderStateChangeCount = 2
	c.Raw().SamplerStateChangeCount = 1
	if c.RenderStateChanges() != 2 || c.SamplerStateChanges() != 1 || c.VertexSamplerStateChanges() != 0 {
		t.Errorf("counts = %d/%d/%d", c.RenderStateChanges(), c.SamplerStateChanges(), c.VertexSamplerStateChanges())
	}
	if EffectStateChangesFromRaw(c.Raw()) != &c {
		t.Error("EffectStateChangesFromRaw does not alias")
	}
}
