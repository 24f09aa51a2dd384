package fna3d

import (
	"errors"

	"github.com/gogpu/fna3d/sys"
)

// BlendState is FNA3D_BlendState: how pixel shader output is combined with
// the render target.
//
// The zero value is not a useful blend state; start from NewBlendState or
// one of the presets.
//
// Enum getters return the stored field as is. After a write through Raw a
// getter may report an undeclared variant; Validate checks every field and
// Checked checks one.
type BlendState struct {
	raw sys.BlendState
}

// NewBlendState returns FNA's default blend state: source-alpha blending
// with every color channel written, a white blend factor and all samples
// enabled.
func NewBlendState() BlendState {
	return BlendState{raw: sys.BlendState{
		ColorSourceBlend:      sys.BlendSourceAlpha,
		ColorDestinationBlend: sys.BlendInverseSourceAlpha,
		ColorBlendFunction:    sys.BlendFunctionAdd,
		AlphaSourceBlend:      sys.BlendSourceAlpha,
		AlphaDestinationBlend: sys.BlendInverseSourceAlpha,
		AlphaBlendFunction:    sys.BlendFunctionAdd,
		ColorWriteEnable:      sys.ColorWriteChannelsAll,
		ColorWriteEnable1:     sys.ColorWriteChannelsAll,
		ColorWriteEnable2:     sys.ColorWriteChannelsAll,
		ColorWriteEnable3:     sys.ColorWriteChannelsAll,
		BlendFactor:           sys.Color{R: 255, G: 255, B: 255, A: 255},
		MultiSampleMask:       -1,
	}}
}

func blendPreset(src, dst Blend) BlendState {
	s := NewBlendState()
	s.raw.ColorSourceBlend = uint32(src)
	s.raw.AlphaSourceBlend = uint32(src)
	s.raw.ColorDestinationBlend = uint32(dst)
	s.raw.AlphaDestinationBlend = uint32(dst)
	return s
}

// BlendStateAdditive adds the source, weighted by its alpha, to the
// destination.
func BlendStateAdditive() BlendState { return blendPreset(BlendSourceAlpha, BlendOne) }

// BlendStateAlphaBlend blends premultiplied-alpha sources.
func BlendStateAlphaBlend() BlendState { return blendPreset(BlendOne, BlendInverseSourceAlpha) }

// BlendStateNonPremultiplied blends straight-alpha sources.
func BlendStateNonPremultiplied() BlendState {
	return blendPreset(BlendSourceAlpha, BlendInverseSourceAlpha)
}

// BlendStateOpaque overwrites the destination.
func BlendStateOpaque() BlendState { return blendPreset(BlendOne, BlendZero) }

// Raw returns the record FNA3D reads. Use it only to pass s across the
// native boundary; writes through it bypass validation.
func (s *BlendState) Raw() *sys.BlendState { return &s.raw }

// ColorSourceBlend returns the source factor for RGB.
func (s *BlendState) ColorSourceBlend() Blend { return Blend(s.raw.ColorSourceBlend) }

// SetColorSourceBlend sets the source factor for RGB.
func (s *BlendState) SetColorSourceBlend(b Blend) error {
	return setEnum(&s.raw.ColorSourceBlend, b)
}

// ColorDestinationBlend returns the destination factor for RGB.
func (s *BlendState) ColorDestinationBlend() Blend { return Blend(s.raw.ColorDestinationBlend) }

// SetColorDestinationBlend sets the destination factor for RGB.
func (s *BlendState) SetColorDestinationBlend(b Blend) error {
	return setEnum(&s.raw.ColorDestinationBlend, b)
}

// ColorBlendFunction returns how RGB source and destination combine.
func (s *BlendState) ColorBlendFunction() BlendFunction {
	return BlendFunction(s.raw.ColorBlendFunction)
}

// SetColorBlendFunction sets how RGB source and destination combine.
func (s *BlendState) SetColorBlendFunction(f BlendFunction) error {
	return setEnum(&s.raw.ColorBlendFunction, f)
}

// AlphaSourceBlend returns the source factor for alpha.
func (s *BlendState) AlphaSourceBlend() Blend { return Blend(s.raw.AlphaSourceBlend) }

// SetAlphaSourceBlend sets the source factor for alpha.
func (s *BlendState) SetAlphaSourceBlend(b Blend) error {
	return setEnum(&s.raw.AlphaSourceBlend, b)
}

// AlphaDestinationBlend returns the destination factor for alpha.
func (s *BlendState) AlphaDestinationBlend() Blend { return Blend(s.raw.AlphaDestinationBlend) }

// SetAlphaDestinationBlend sets the destination factor for alpha.
func (s *BlendState) SetAlphaDestinationBlend(b Blend) error {
	return setEnum(&s.raw.AlphaDestinationBlend, b)
}

// AlphaBlendFunction returns how alpha source and destination combine.
func (s *BlendState) AlphaBlendFunction() BlendFunction {
	return BlendFunction(s.raw.AlphaBlendFunction)
}

// SetAlphaBlendFunction sets how alpha source and destination combine.
func (s *BlendState) SetAlphaBlendFunction(f BlendFunction) error {
	return setEnum(&s.raw.AlphaBlendFunction, f)
}

// ColorWriteEnable returns the channels written to render target i (0..3).
// It panics if i is out of range.
func (s *BlendState) ColorWriteEnable(i int) ColorWriteChannels {
	return ColorWriteChannelsFromRaw(*s.colorWrite(i))
}

// SetColorWriteEnable sets the channels written to render target i (0..3).
// It panics if i is out of range.
func (s *BlendState) SetColorWriteEnable(i int, c ColorWriteChannels) {
	*s.colorWrite(i) = c.Raw()
}

func (s *BlendState) colorWrite(i int) *uint32 {
	switch i {
	case 0:
		return &s.raw.ColorWriteEnable
	case 1:
		return &s.raw.ColorWriteEnable1
	case 2:
		return &s.raw.ColorWriteEnable2
	case 3:
		return &s.raw.ColorWriteEnable3
	default:
		panic("fna3d: color write target index out of range")
	}
}

// BlendFactor returns the constant color used by BlendBlendFactor.
func (s *BlendState) BlendFactor() Color { return Color(s.raw.BlendFactor) }

// SetBlendFactor sets the constant color used by BlendBlendFactor.
func (s *BlendState) SetBlendFactor(c Color) { s.raw.BlendFactor = sys.Color(c) }

// MultiSampleMask returns the sample coverage mask; -1 enables every sample.
func (s *BlendState) MultiSampleMask() int32 { return s.raw.MultiSampleMask }

// SetMultiSampleMask sets the sample coverage mask.
func (s *BlendState) SetMultiSampleMask(m int32) { s.raw.MultiSampleMask = m }

// Validate checks every enumeration field of the record. Records filled in
// by native code or through Raw can hold values the setters would reject.
func (s *BlendState) Validate() error {
	r := &s.raw
	return errors.Join(
		checkEnum[Blend]("ColorSourceBlend", r.ColorSourceBlend),
		checkEnum[Blend]("ColorDestinationBlend", r.ColorDestinationBlend),
		checkEnum[BlendFunction]("ColorBlendFunction", r.ColorBlendFunction),
		checkEnum[Blend]("AlphaSourceBlend", r.AlphaSourceBlend),
		checkEnum[Blend]("AlphaDestinationBlend", r.AlphaDestinationBlend),
		checkEnum[BlendFunction]("AlphaBlendFunction", r.AlphaBlendFunction),
	)
}
