package fna3d

import (
	"errors"
	"fmt"

	"github.com/gogpu/fna3d/sys"
)

// RenderTargetBinding is FNA3D_RenderTargetBinding: a texture, optionally
// backed by a multisampled color renderbuffer, that draw calls write to.
//
// The record carries a C union. Size2D and Cube read it according to Type.
type RenderTargetBinding struct {
	raw sys.RenderTargetBinding
}

// NewRenderTarget2D binds a w x h 2D texture.
func NewRenderTarget2D(tex *Texture, w, h, levelCount int32) RenderTargetBinding {
	return RenderTargetBinding{raw: sys.RenderTargetBinding{
		Type:       uint8(RenderTargetType2D),
		Union:      [2]int32{w, h},
		LevelCount: levelCount,
		Texture:    tex.handle(),
	}}
}

// NewRenderTargetCube binds one face of a cube texture.
func NewRenderTargetCube(tex *Texture, size int32, face CubeMapFace, levelCount int32) (RenderTargetBinding, error) {
	if !face.IsValid() {
		return RenderTargetBinding{}, &UnknownVariantError{Type: "CubeMapFace", Value: uint32(face)}
	}
	return RenderTargetBinding{raw: sys.RenderTargetBinding{
		Type:       uint8(RenderTargetTypeCube),
		Union:      [2]int32{size, int32(face)},
		LevelCount: levelCount,
		Texture:    tex.handle(),
	}}, nil
}

// Raw returns the record FNA3D reads.
func (b *RenderTargetBinding) Raw() *sys.RenderTargetBinding { return &b.raw }

// Type returns which arm of the union is in use.
func (b *RenderTargetBinding) Type() RenderTargetType { return RenderTargetType(b.raw.Type) }

// Size2D returns the width and height of a 2D target. ok is false for a
// cube target.
func (b *RenderTargetBinding) Size2D() (w, h int32, ok bool) {
	if b.Type() != RenderTargetType2D {
		return 0, 0, false
	}
	return b.raw.Union[0], b.raw.Union[1], true
}

// Cube returns the edge size and face of a cube target. ok is false for a
// 2D target.
func (b *RenderTargetBinding) Cube() (size int32, face CubeMapFace, ok bool) {
	if b.Type() != RenderTargetTypeCube {
		return 0, 0, false
	}
	return b.raw.Union[0], CubeMapFace(b.raw.Union[1]), true
}

// SetCubeFace selects the face of a cube target.
func (b *RenderTargetBinding) SetCubeFace(face CubeMapFace) error {
	if b.Type() != RenderTargetTypeCube {
		return fmt.Errorf("%w: face of a %v target", ErrTargetType, b.Type())
	}
	var raw uint32
	if err := setEnum(&raw, face); err != nil {
		return err
	}
	b.raw.Union[1] = int32(raw)
	return nil
}

// LevelCount returns the number of mip levels.
func (b *RenderTargetBinding) LevelCount() int32 { return b.raw.LevelCount }

// SetLevelCount sets the number of mip levels.
func (b *RenderTargetBinding) SetLevelCount(n int32) { b.raw.LevelCount = n }

// MultiSampleCount returns the MSAA sample count of the color buffer.
func (b *RenderTargetBinding) MultiSampleCount() int32 { return b.raw.MultiSampleCount }

// SetColorBuffer attaches a multisampled color renderbuffer that resolves
// into the texture. A nil rb detaches it.
func (b *RenderTargetBinding) SetColorBuffer(rb *Renderbuffer, multiSampleCount int32) {
	b.raw.ColorBuffer = rb.handle()
	b.raw.MultiSampleCount = multiSampleCount
}

// Validate checks the union tag and, for cube targets, the face.
func (b *RenderTargetBinding) Validate() error {
	err := checkEnum[RenderTargetType]("Type", uint32(b.raw.Type))
	if err == nil && b.Type() == RenderTargetTypeCube {
		err = checkEnum[CubeMapFace]("Face", uint32(b.raw.Union[1]))
	}
	if b.raw.Texture == nil {
		err = errors.Join(err, fmt.Errorf("render target: %w", ErrNilResource))
	}
	return err
}
