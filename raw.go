package fna3d

import (
	"unsafe"

	"github.com/gogpu/fna3d/sys"
)

// This file is the only place that reinterprets memory between the typed
// wrappers and the sys records. Every wrapper W declared over a record R
// is a struct whose single field is R (or a defined type of R), so *W and
// *R address the same bytes.
//
// The XFromRaw functions below take a pointer that the caller promises was
// produced by, or is layout-compatible with, the corresponding sys record.
// Passing anything else is undefined behavior and is not detected.

// reinterpret views p as a *W. W and R must have identical layout.
func reinterpret[W, R any](p *R) *W {
	return (*W)(unsafe.Pointer(p))
}

// bytesOf returns the bytes backing s without copying. The result aliases s.
func bytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// dataPtr returns a pointer to the first byte of b, or nil when b is empty.
func dataPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

// BlendStateFromRaw views p as a *BlendState.
func BlendStateFromRaw(p *sys.BlendState) *BlendState {
	return reinterpret[BlendState](p)
}

// DepthStencilStateFromRaw views p as a *DepthStencilState.
func DepthStencilStateFromRaw(p *sys.DepthStencilState) *DepthStencilState {
	return reinterpret[DepthStencilState](p)
}

// RasterizerStateFromRaw views p as a *RasterizerState.
func RasterizerStateFromRaw(p *sys.RasterizerState) *RasterizerState {
	return reinterpret[RasterizerState](p)
}

// SamplerStateFromRaw views p as a *SamplerState.
func SamplerStateFromRaw(p *sys.SamplerState) *SamplerState {
	return reinterpret[SamplerState](p)
}

// PresentationParametersFromRaw views p as a *PresentationParameters.
func PresentationParametersFromRaw(p *sys.PresentationParameters) *PresentationParameters {
	return reinterpret[PresentationParameters](p)
}

// VertexElementFromRaw views p as a *VertexElement.
func VertexElementFromRaw(p *sys.VertexElement) *VertexElement {
	return reinterpret[VertexElement](p)
}

// VertexBufferBindingFromRaw views p as a *VertexBufferBinding. The
// binding's declaration is not owned by the result.
func VertexBufferBindingFromRaw(p *sys.VertexBufferBinding) *VertexBufferBinding {
	return reinterpret[VertexBufferBinding](p)
}

// RenderTargetBindingFromRaw views p as a *RenderTargetBinding.
func RenderTargetBindingFromRaw(p *sys.RenderTargetBinding) *RenderTargetBinding {
	return reinterpret[RenderTargetBinding](p)
}

// EffectStateChangesFromRaw views p as a *EffectStateChanges.
func EffectStateChangesFromRaw(p *sys.EffectStateChanges) *EffectStateChanges {
	return reinterpret[EffectStateChanges](p)
}

// ViewportFromRaw views p as a *Viewport.
func ViewportFromRaw(p *sys.Viewport) *Viewport { return reinterpret[Viewport](p) }

// RectFromRaw views p as a *Rect.
func RectFromRaw(p *sys.Rect) *Rect { return reinterpret[Rect](p) }

// ColorFromRaw views p as a *Color.
func ColorFromRaw(p *sys.Color) *Color { return reinterpret[Color](p) }

// Vec4FromRaw views p as a *Vec4.
func Vec4FromRaw(p *sys.Vec4) *Vec4 { return reinterpret[Vec4](p) }

// Raw returns the underlying record of r.
func (r *Rect) Raw() *sys.Rect { return (*sys.Rect)(r) }

// Raw returns the underlying record of v.
func (v *Viewport) Raw() *sys.Viewport { return (*sys.Viewport)(v) }

// Raw returns the underlying record of c.
func (c *Color) Raw() *sys.Color { return (*sys.Color)(c) }

// Raw returns the underlying record of v.
func (v *Vec4) Raw() *sys.Vec4 { return (*sys.Vec4)(v) }
