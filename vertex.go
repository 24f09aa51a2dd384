package fna3d

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gogpu/fna3d/sys"
)

// VertexElement is FNA3D_VertexElement: one attribute of a vertex.
type VertexElement struct {
	raw sys.VertexElement
}

// NewVertexElement describes an attribute at byte offset within a vertex.
// Out-of-range formats or usages are caught by NewVertexDeclaration.
func NewVertexElement(offset int32, format VertexElementFormat, usage VertexElementUsage, usageIndex int32) VertexElement {
	return VertexElement{raw: sys.VertexElement{
		Offset:              offset,
		VertexElementFormat: uint32(format),
		VertexElementUsage:  uint32(usage),
		UsageIndex:          usageIndex,
	}}
}

// Raw returns the record FNA3D reads.
func (e *VertexElement) Raw() *sys.VertexElement { return &e.raw }

// Offset returns the byte offset of the attribute within a vertex.
func (e *VertexElement) Offset() int32 { return e.raw.Offset }

// SetOffset sets the byte offset of the attribute within a vertex.
func (e *VertexElement) SetOffset(v int32) { e.raw.Offset = v }

// Format returns the attribute format.
func (e *VertexElement) Format() VertexElementFormat {
	return VertexElementFormat(e.raw.VertexElementFormat)
}

// SetFormat sets the attribute format.
func (e *VertexElement) SetFormat(f VertexElementFormat) error {
	return setEnum(&e.raw.VertexElementFormat, f)
}

// Usage returns the attribute semantic.
func (e *VertexElement) Usage() VertexElementUsage {
	return VertexElementUsage(e.raw.VertexElementUsage)
}

// SetUsage sets the attribute semantic.
func (e *VertexElement) SetUsage(u VertexElementUsage) error {
	return setEnum(&e.raw.VertexElementUsage, u)
}

// UsageIndex returns the semantic index, as in TEXCOORD1.
func (e *VertexElement) UsageIndex() int32 { return e.raw.UsageIndex }

// SetUsageIndex sets the semantic index.
func (e *VertexElement) SetUsageIndex(v int32) { e.raw.UsageIndex = v }

// End returns the byte offset just past the attribute.
func (e *VertexElement) End() int32 { return e.raw.Offset + int32(e.Format().Size()) }

// Validate checks every enumeration field of the record.
func (e *VertexElement) Validate() error {
	return errors.Join(
		checkEnum[VertexElementFormat]("VertexElementFormat", e.raw.VertexElementFormat),
		checkEnum[VertexElementUsage]("VertexElementUsage", e.raw.VertexElementUsage),
	)
}

// VertexDeclaration is FNA3D_VertexDeclaration: the layout of one vertex.
//
// A declaration owns a private copy of its elements and never changes after
// construction, so copies of a declaration may share that storage.
type VertexDeclaration struct {
	raw   sys.VertexDeclaration
	elems []sys.VertexElement
}

// NewVertexDeclaration validates elems and computes the stride as the
// largest offset+size over all elements.
func NewVertexDeclaration(elems ...VertexElement) (VertexDeclaration, error) {
	if len(elems) == 0 {
		return VertexDeclaration{}, fmt.Errorf("vertex declaration: %w: no elements", ErrInvalidSize)
	}
	raw := make([]sys.VertexElement, len(elems))
	var stride int32
	for i := range elems {
		if err := elems[i].Validate(); err != nil {
			return VertexDeclaration{}, fmt.Errorf("vertex element %d: %w", i, err)
		}
		stride = max(stride, elems[i].End())
		raw[i] = elems[i].raw
	}
	return newVertexDeclaration(stride, raw), nil
}

func newVertexDeclaration(stride int32, elems []sys.VertexElement) VertexDeclaration {
	return VertexDeclaration{
		raw: sys.VertexDeclaration{
			VertexStride: stride,
			ElementCount: int32(len(elems)),
			Elements:     unsafe.Pointer(unsafe.SliceData(elems)),
		},
		elems: elems,
	}
}

// Raw returns the record FNA3D reads. Its Elements field points into Go
// memory; the device pins it for the duration of each call that passes it.
func (d *VertexDeclaration) Raw() *sys.VertexDeclaration { return &d.raw }

// Stride returns the size of one vertex in bytes.
func (d *VertexDeclaration) Stride() int32 { return d.raw.VertexStride }

// Len returns the number of elements.
func (d *VertexDeclaration) Len() int { return len(d.elems) }

// Element returns a copy of element i.
func (d *VertexDeclaration) Element(i int) VertexElement {
	return VertexElement{raw: d.elems[i]}
}

// Elements returns a copy of every element.
func (d *VertexDeclaration) Elements() []VertexElement {
	out := make([]VertexElement, len(d.elems))
	for i, e := range d.elems {
		out[i] = VertexElement{raw: e}
	}
	return out
}

// Validate checks every element.
func (d *VertexDeclaration) Validate() error {
	var errs []error
	for i := range d.elems {
		e := VertexElement{raw: d.elems[i]}
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("vertex element %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// VertexBufferBinding is FNA3D_VertexBufferBinding: a vertex buffer and the
// declaration its contents follow.
//
// The binding shares its declaration's element storage.
type VertexBufferBinding struct {
	raw sys.VertexBufferBinding
}

// NewVertexBufferBinding binds buf with declaration decl. instanceFrequency
// is 0 for per-vertex data.
func NewVertexBufferBinding(buf *Buffer, decl VertexDeclaration, vertexOffset, instanceFrequency int32) VertexBufferBinding {
	return VertexBufferBinding{raw: sys.VertexBufferBinding{
		VertexBuffer:      buf.handle(),
		VertexDeclaration: decl.raw,
		VertexOffset:      vertexOffset,
		InstanceFrequency: instanceFrequency,
	}}
}

// Raw returns the record FNA3D reads.
func (b *VertexBufferBinding) Raw() *sys.VertexBufferBinding { return &b.raw }

// Declaration returns the vertex declaration.
func (b *VertexBufferBinding) Declaration() VertexDeclaration {
	d := b.raw.VertexDeclaration
	if d.Elements == nil || d.ElementCount <= 0 {
		return VertexDeclaration{raw: d}
	}
	return VertexDeclaration{
		raw:   d,
		elems: unsafe.Slice((*sys.VertexElement)(d.Elements), d.ElementCount),
	}
}

// VertexOffset returns the index of the first vertex used.
func (b *VertexBufferBinding) VertexOffset() int32 { return b.raw.VertexOffset }

// SetVertexOffset sets the index of the first vertex used.
func (b *VertexBufferBinding) SetVertexOffset(v int32) { b.raw.VertexOffset = v }

// InstanceFrequency returns the instancing step rate.
func (b *VertexBufferBinding) InstanceFrequency() int32 { return b.raw.InstanceFrequency }

// SetInstanceFrequency sets the instancing step rate.
func (b *VertexBufferBinding) SetInstanceFrequency(v int32) { b.raw.InstanceFrequency = v }

// Validate checks the declaration.
func (b *VertexBufferBinding) Validate() error {
	if b.raw.VertexBuffer == nil {
		return fmt.Errorf("vertex buffer binding: %w", ErrNilResource)
	}
	d := b.Declaration()
	return d.Validate()
}
