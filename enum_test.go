package fna3d

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type generatedEnum interface {
	enumValue
	Raw() uint32
	String() string
}

// checkEnumLaws verifies that every declared variant round-trips through
// its raw value and that every other raw value is rejected.
func checkEnumLaws[T generatedEnum](t *testing.T, name string, values []T, fromRaw func(uint32) (T, error)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if len(values) == 0 {
			t.Fatal("no variants")
		}
		declared := make(map[uint32]bool, len(values))
		for _, v := range values {
			declared[v.Raw()] = true
			got, err := fromRaw(v.Raw())
			if err != nil {
				t.Errorf("FromRaw(%d) = %v", v.Raw(), err)
				continue
			}
			if got != v {
				t.Errorf("FromRaw(%d) = %v, want %v", v.Raw(), got, v)
			}
			if !v.IsValid() {
				t.Errorf("%v.IsValid() = false", v)
			}
			if s := v.String(); strings.Contains(s, "(") {
				t.Errorf("String() of declared variant %d = %q", v.Raw(), s)
			}
		}
		if len(declared) != len(values) {
			t.Errorf("%d variants share raw values", len(values)-len(declared))
		}

		probes := []uint32{math.MaxUint32, math.MaxUint32 - 1, 1 << 31}
		for raw := uint32(0); raw < uint32(len(values))+8; raw++ {
			probes = append(probes, raw)
		}
		for _, raw := range probes {
			if declared[raw] {
				continue
			}
			_, err := fromRaw(raw)
			if !errors.Is(err, ErrUnknownVariant) {
				t.Errorf("FromRaw(%d) error = %v, want ErrUnknownVariant", raw, err)
			}
			var uerr *UnknownVariantError
			if errors.As(err, &uerr) && (uerr.Value != raw || uerr.Type != name) {
				t.Errorf("FromRaw(%d) error = %+v", raw, uerr)
			}
			if T(raw).IsValid() {
				t.Errorf("%s(%d).IsValid() = true", name, raw)
			}
			if want := name + "("; !strings.HasPrefix(T(raw).String(), want) {
				t.Errorf("String() of %d = %q, want prefix %q", raw, T(raw).String(), want)
			}
		}
	})
}

func TestEnumLaws(t *testing.T) {
	checkEnumLaws(t, "PresentInterval", PresentIntervalValues(), PresentIntervalFromRaw)
	checkEnumLaws(t, "DisplayOrientation", DisplayOrientationValues(), DisplayOrientationFromRaw)
	checkEnumLaws(t, "RenderTargetUsage", RenderTargetUsageValues(), RenderTargetUsageFromRaw)
	checkEnumLaws(t, "PrimitiveType", PrimitiveTypeValues(), PrimitiveTypeFromRaw)
	checkEnumLaws(t, "IndexElementSize", IndexElementSizeValues(), IndexElementSizeFromRaw)
	checkEnumLaws(t, "SurfaceFormat", SurfaceFormatValues(), SurfaceFormatFromRaw)
	checkEnumLaws(t, "DepthFormat", DepthFormatValues(), DepthFormatFromRaw)
	checkEnumLaws(t, "CubeMapFace", CubeMapFaceValues(), CubeMapFaceFromRaw)
	checkEnumLaws(t, "BufferUsage", BufferUsageValues(), BufferUsageFromRaw)
	checkEnumLaws(t, "SetDataOptions", SetDataOptionsValues(), SetDataOptionsFromRaw)
	checkEnumLaws(t, "Blend", BlendValues(), BlendFromRaw)
	checkEnumLaws(t, "BlendFunction", BlendFunctionValues(), BlendFunctionFromRaw)
	checkEnumLaws(t, "StencilOperation", StencilOperationValues(), StencilOperationFromRaw)
	checkEnumLaws(t, "CompareFunction", CompareFunctionValues(), CompareFunctionFromRaw)
	checkEnumLaws(t, "CullMode", CullModeValues(), CullModeFromRaw)
	checkEnumLaws(t, "FillMode", FillModeValues(), FillModeFromRaw)
	checkEnumLaws(t, "TextureAddressMode", TextureAddressModeValues(), TextureAddressModeFromRaw)
	checkEnumLaws(t, "TextureFilter", TextureFilterValues(), TextureFilterFromRaw)
	checkEnumLaws(t, "VertexElementFormat", VertexElementFormatValues(), VertexElementFormatFromRaw)
	checkEnumLaws(t, "VertexElementUsage", VertexElementUsageValues(), VertexElementUsageFromRaw)
	checkEnumLaws(t, "RenderTargetType", RenderTargetTypeValues(), RenderTargetTypeFromRaw)
}

func TestIndexElementSizeFromRaw(t *testing.T) {
	got, err := IndexElementSizeFromRaw(0)
	if err != nil || got != IndexElementSizeBits16 {
		t.Fatalf("IndexElementSizeFromRaw(0) = %v, %v; want Bits16", got, err)
	}
	if got.Raw() != 0 {
		t.Errorf("Bits16.Raw() = %d, want 0", got.Raw())
	}

	_, err = IndexElementSizeFromRaw(2)
	var uerr *UnknownVariantError
	if !errors.As(err, &uerr) {
		t.Fatalf("IndexElementSizeFromRaw(2) error = %v, want *UnknownVariantError", err)
	}
	if uerr.Type != "IndexElementSize" || uerr.Value != 2 {
		t.Errorf("error = %+v", uerr)
	}
	if want := "fna3d: unknown IndexElementSize variant 2"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSetEnumRejectsForgedValue(t *testing.T) {
	raw := CompareFunctionLess.Raw()
	err := setEnum(&raw, CompareFunction(1000))
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("setEnum(forged) = %v, want ErrUnknownVariant", err)
	}
	if raw != CompareFunctionLess.Raw() {
		t.Errorf("forged value written: raw = %d", raw)
	}
	var uerr *UnknownVariantError
	if errors.As(err, &uerr) && uerr.Type != "CompareFunction" {
		t.Errorf("error type name = %q, want CompareFunction", uerr.Type)
	}

	if err := setEnum(&raw, CompareFunctionGreater); err != nil {
		t.Fatalf("setEnum(valid) = %v", err)
	}
	if raw != CompareFunctionGreater.Raw() {
		t.Errorf("raw = %d, want %d", raw, CompareFunctionGreater.Raw())
	}
}

func TestCheckEnumNamesField(t *testing.T) {
	err := checkEnum[FillMode]("FillMode", 5)
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("checkEnum = %v, want ErrUnknownVariant", err)
	}
	if !strings.HasPrefix(err.Error(), "FillMode: ") {
		t.Errorf("Error() = %q, want field prefix", err.Error())
	}
	if err := checkEnum[FillMode]("FillMode", FillModeWireFrame.Raw()); err != nil {
		t.Errorf("checkEnum(valid) = %v", err)
	}
}

func TestSurfaceFormatSizes(t *testing.T) {
	tests := []struct {
		format SurfaceFormat
		size   int
		w, h   int
		data   int
	}{
		{SurfaceFormatColor, 4, 4, 4, 64},
		{SurfaceFormatAlpha8, 1, 3, 2, 6},
		{SurfaceFormatDxt1, 8, 4, 4, 8},
		{SurfaceFormatDxt5, 16, 5, 5, 64},
		{SurfaceFormatVector4, 16, 2, 1, 32},
		{SurfaceFormatHdrBlendable, 0, 4, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
			if got := tt.format.DataSize(tt.w, tt.h); got != tt.data {
				t.Errorf("DataSize(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.data)
			}
		})
	}

	for _, f := range SurfaceFormatValues() {
		if f != SurfaceFormatHdrBlendable && f.Size() == 0 {
			t.Errorf("%v has no size", f)
		}
	}
}

func TestVertexElementFormatSizes(t *testing.T) {
	for _, f := range VertexElementFormatValues() {
		if f.Size() == 0 {
			t.Errorf("%v has no size", f)
		}
	}
	if got := IndexElementSizeBits32.Size(); got != 4 {
		t.Errorf("Bits32.Size() = %d, want 4", got)
	}
}
