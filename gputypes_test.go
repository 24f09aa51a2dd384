package fna3d

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestWebGPUTranslations(t *testing.T) {
	if got, ok := CompareFunctionNotEqual.WebGPU(); !ok || got != gputypes.CompareFunctionNotEqual {
		t.Errorf("NotEqual -> %v, %v", got, ok)
	}
	if got, ok := CompareFunctionAlways.WebGPU(); !ok || got != gputypes.CompareFunctionAlways {
		t.Errorf("Always -> %v, %v", got, ok)
	}
	if got, ok := CullModeNone.WebGPU(); !ok || got != gputypes.CullModeNone {
		t.Errorf("CullNone -> %v, %v", got, ok)
	}
	if got, ok := TextureAddressModeClamp.WebGPU(); !ok || got != gputypes.AddressModeClampToEdge {
		t.Errorf("Clamp -> %v, %v", got, ok)
	}
	if got, ok := IndexElementSizeBits16.WebGPU(); !ok || got != gputypes.IndexFormatUint16 {
		t.Errorf("Bits16 -> %v, %v", got, ok)
	}
	if got, ok := PrimitiveTypeTriangleList.WebGPU(); !ok || got != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("TriangleList -> %v, %v", got, ok)
	}
	if got, ok := VertexElementFormatVector2.WebGPU(); !ok || got != gputypes.VertexFormatFloat32x2 {
		t.Errorf("Vector2 -> %v, %v", got, ok)
	}
	if got, ok := VertexElementFormatSingle.WebGPU(); !ok || got != gputypes.VertexFormatFloat32 {
		t.Errorf("Single -> %v, %v", got, ok)
	}
	for _, f := range []TextureFilter{TextureFilterLinear, TextureFilterAnisotropic} {
		minF, magF, mipF, ok := f.WebGPU()
		if !ok || minF != gputypes.FilterModeLinear || magF != minF || mipF != minF {
			t.Errorf("%v -> %v/%v/%v, %v", f, minF, magF, mipF, ok)
		}
	}
	if got, ok := ColorWriteChannelsAll.WebGPU(); !ok || got != gputypes.ColorWriteMaskAll {
		t.Errorf("All -> %v, %v", got, ok)
	}
	if got, ok := (ColorWriteChannelsNone | ColorWriteChannels(0x100)).WebGPU(); ok || got != gputypes.ColorWriteMaskNone {
		t.Errorf("unknown bits -> %v, %v", got, ok)
	}
}

func TestWebGPUUndeclaredValues(t *testing.T) {
	tests := []struct {
		name string
		ok   func() bool
	}{
		{"CompareFunction", func() bool { _, ok := CompareFunction(99).WebGPU(); return ok }},
		{"Blend", func() bool { _, ok := Blend(99).WebGPU(); return ok }},
		{"BlendFunction", func() bool { _, ok := BlendFunction(99).WebGPU(); return ok }},
		{"CullMode", func() bool { _, ok := CullMode(99).WebGPU(); return ok }},
		{"PrimitiveType", func() bool { _, ok := PrimitiveType(99).WebGPU(); return ok }},
		{"TextureAddressMode", func() bool { _, ok := TextureAddressMode(99).WebGPU(); return ok }},
		{"StencilOperation", func() bool { _, ok := StencilOperation(99).WebGPU(); return ok }},
		{"IndexElementSize", func() bool { _, ok := IndexElementSize(99).WebGPU(); return ok }},
		{"TextureFilter", func() bool { _, _, _, ok := TextureFilter(99).WebGPU(); return ok }},
		{"VertexElementFormat", func() bool { _, ok := VertexElementFormat(99).WebGPU(); return ok }},
		{"SurfaceFormat", func() bool { _, ok := SurfaceFormat(99).WebGPU(); return ok }},
		{"DepthFormat", func() bool { _, ok := DepthFormat(99).WebGPU(); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ok() {
				t.Errorf("%s(99) translated", tt.name)
			}
		})
	}

	var zero gputypes.CompareFunction
	if got, _ := CompareFunction(99).WebGPU(); got != zero {
		t.Errorf("CompareFunction(99) -> %v, want the zero value", got)
	}
}

func TestWebGPUDeclaredValuesTranslate(t *testing.T) {
	for _, v := range CompareFunctionValues() {
		if _, ok := v.WebGPU(); !ok {
			t.Errorf("%v not translated", v)
		}
	}
	for _, v := range BlendValues() {
		if _, ok := v.WebGPU(); !ok {
			t.Errorf("%v not translated", v)
		}
	}
	for _, v := range StencilOperationValues() {
		if _, ok := v.WebGPU(); !ok {
			t.Errorf("%v not translated", v)
		}
	}
	for _, v := range TextureFilterValues() {
		if _, _, _, ok := v.WebGPU(); !ok {
			t.Errorf("%v not translated", v)
		}
	}
	for _, v := range VertexElementFormatValues() {
		if _, ok := v.WebGPU(); !ok {
			t.Errorf("%v not translated", v)
		}
	}
}

func TestWebGPUTextureFormats(t *testing.T) {
	tests := []struct {
		format SurfaceFormat
		want   gputypes.TextureFormat
		ok     bool
	}{
		{SurfaceFormatColor, gputypes.TextureFormatRGBA8Unorm, true},
		{SurfaceFormatColorBgraExt, gputypes.TextureFormatBGRA8Unorm, true},
		{SurfaceFormatAlpha8, gputypes.TextureFormatR8Unorm, true},
		{SurfaceFormatHdrBlendable, gputypes.TextureFormatRGBA16Float, true},
		{SurfaceFormatBgr565, gputypes.TextureFormatUndefined, false},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, ok := tt.format.WebGPU()
			if got != tt.want || ok != tt.ok {
				t.Errorf("WebGPU() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}

	if got, ok := DepthFormatD24S8.WebGPU(); !ok || got != gputypes.TextureFormatDepth24PlusStencil8 {
		t.Errorf("D24S8 -> %v, %v", got, ok)
	}
	if _, ok := DepthFormatNone.WebGPU(); ok {
		t.Error("DepthFormatNone translated")
	}
}
