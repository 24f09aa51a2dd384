package fna3d

import (
	"errors"

	"github.com/gogpu/fna3d/sys"
)

// SamplerState is FNA3D_SamplerState.
//
// Enum getters return the stored field as is. After a write through Raw a
// getter may report an undeclared variant; Validate checks every field and
// Checked checks one.
type SamplerState struct {
	raw sys.SamplerState
}

// NewSamplerState returns FNA's default: linear filtering, wrapping on every
// axis, anisotropy 4.
func NewSamplerState() SamplerState {
	return SamplerState{raw: sys.SamplerState{
		Filter:        sys.TextureFilterLinear,
		AddressU:      sys.TextureAddressModeWrap,
		AddressV:      sys.TextureAddressModeWrap,
		AddressW:      sys.TextureAddressModeWrap,
		MaxAnisotropy: 4,
	}}
}

func samplerPreset(f TextureFilter, a TextureAddressMode) SamplerState {
	s := NewSamplerState()
	s.raw.Filter = uint32(f)
	s.raw.AddressU = uint32(a)
	s.raw.AddressV = uint32(a)
	s.raw.AddressW = uint32(a)
	return s
}

// SamplerAnisotropicClamp filters anisotropically and clamps.
func SamplerAnisotropicClamp() SamplerState {
	return samplerPreset(TextureFilterAnisotropic, TextureAddressModeClamp)
}

// SamplerAnisotropicWrap filters anisotropically and wraps.
func SamplerAnisotropicWrap() SamplerState {
	return samplerPreset(TextureFilterAnisotropic, TextureAddressModeWrap)
}

// SamplerLinearClamp filters linearly and clamps.
func SamplerLinearClamp() SamplerState {
	return samplerPreset(TextureFilterLinear, TextureAddressModeClamp)
}

// SamplerLinearWrap filters linearly and wraps.
func SamplerLinearWrap() SamplerState {
	return samplerPreset(TextureFilterLinear, TextureAddressModeWrap)
}

// SamplerPointClamp samples the nearest texel and clamps.
func SamplerPointClamp() SamplerState {
	return samplerPreset(TextureFilterPoint, TextureAddressModeClamp)
}

// SamplerPointWrap samples the nearest texel and wraps.
func SamplerPointWrap() SamplerState {
	return samplerPreset(TextureFilterPoint, TextureAddressModeWrap)
}

// Raw returns the record FNA3D reads. Use it only to pass s across the
// native boundary; writes through it bypass validation.
func (s *SamplerState) Raw() *sys.SamplerState { return &s.raw }

// Filter returns the texture filter.
func (s *SamplerState) Filter() TextureFilter { return TextureFilter(s.raw.Filter) }

// SetFilter sets the texture filter.
func (s *SamplerState) SetFilter(f TextureFilter) error { return setEnum(&s.raw.Filter, f) }

// AddressU returns the address mode along u.
func (s *SamplerState) AddressU() TextureAddressMode { return TextureAddressMode(s.raw.AddressU) }

// SetAddressU sets the address mode along u.
func (s *SamplerState) SetAddressU(a TextureAddressMode) error {
	return setEnum(&s.raw.AddressU, a)
}

// AddressV returns the address mode along v.
func (s *SamplerState) AddressV() TextureAddressMode { return TextureAddressMode(s.raw.AddressV) }

// SetAddressV sets the address mode along v.
func (s *SamplerState) SetAddressV(a TextureAddressMode) error {
	return setEnum(&s.raw.AddressV, a)
}

// AddressW returns the address mode along w.
func (s *SamplerState) AddressW() TextureAddressMode { return TextureAddressMode(s.raw.AddressW) }

// SetAddressW sets the address mode along w.
func (s *SamplerState) SetAddressW(a TextureAddressMode) error {
	return setEnum(&s.raw.AddressW, a)
}

// MipMapLevelOfDetailBias returns the mip level bias.
func (s *SamplerState) MipMapLevelOfDetailBias() float32 { return s.raw.MipMapLevelOfDetailBias }

// SetMipMapLevelOfDetailBias sets the mip level bias.
func (s *SamplerState) SetMipMapLevelOfDetailBias(v float32) { s.raw.MipMapLevelOfDetailBias = v }

// MaxAnisotropy returns the anisotropy limit.
func (s *SamplerState) MaxAnisotropy() int32 { return s.raw.MaxAnisotropy }

// SetMaxAnisotropy sets the anisotropy limit.
func (s *SamplerState) SetMaxAnisotropy(v int32) { s.raw.MaxAnisotropy = v }

// MaxMipLevel returns the largest mip level sampled.
func (s *SamplerState) MaxMipLevel() int32 { return s.raw.MaxMipLevel }

// SetMaxMipLevel sets the largest mip level sampled.
func (s *SamplerState) SetMaxMipLevel(v int32) { s.raw.MaxMipLevel = v }

// Validate checks every enumeration field of the record.
func (s *SamplerState) Validate() error {
	r := &s.raw
	return errors.Join(
		checkEnum[TextureFilter]("Filter", r.Filter),
		checkEnum[TextureAddressMode]("AddressU", r.AddressU),
		checkEnum[TextureAddressMode]("AddressV", r.AddressV),
		checkEnum[TextureAddressMode]("AddressW", r.AddressW),
	)
}
