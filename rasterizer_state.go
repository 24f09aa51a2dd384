package fna3d

import (
	"errors"

	"github.com/gogpu/fna3d/internal/abi"
	"github.com/gogpu/fna3d/sys"
)

// RasterizerState is FNA3D_RasterizerState.
//
// Enum getters return the stored field as is. After a write through Raw a
// getter may report an undeclared variant; Validate checks every field and
// Checked checks one.
type RasterizerState struct {
	raw sys.RasterizerState
}

// NewRasterizerState returns FNA's default: solid fill, counter-clockwise
// faces culled, multisampling on.
func NewRasterizerState() RasterizerState {
	return RasterizerState{raw: sys.RasterizerState{
		FillMode:             sys.FillModeSolid,
		CullMode:             sys.CullModeCullCounterClockwiseFace,
		MultiSampleAntiAlias: 1,
	}}
}

func rasterizerPreset(c CullMode) RasterizerState {
	s := NewRasterizerState()
	s.raw.CullMode = uint32(c)
	return s
}

// RasterizerCullNone draws both faces.
func RasterizerCullNone() RasterizerState { return rasterizerPreset(CullModeNone) }

// RasterizerCullClockwise culls clockwise faces.
func RasterizerCullClockwise() RasterizerState {
	return rasterizerPreset(CullModeCullClockwiseFace)
}

// RasterizerCullCounterClockwise culls counter-clockwise faces.
func RasterizerCullCounterClockwise() RasterizerState {
	return rasterizerPreset(CullModeCullCounterClockwiseFace)
}

// Raw returns the record FNA3D reads. Use it only to pass s across the
// native boundary; writes through it bypass validation.
func (s *RasterizerState) Raw() *sys.RasterizerState { return &s.raw }

// FillMode returns the fill mode.
func (s *RasterizerState) FillMode() FillMode { return FillMode(s.raw.FillMode) }

// SetFillMode sets the fill mode.
func (s *RasterizerState) SetFillMode(m FillMode) error { return setEnum(&s.raw.FillMode, m) }

// CullMode returns the culled winding.
func (s *RasterizerState) CullMode() CullMode { return CullMode(s.raw.CullMode) }

// SetCullMode sets the culled winding.
func (s *RasterizerState) SetCullMode(m CullMode) error { return setEnum(&s.raw.CullMode, m) }

// DepthBias returns the constant depth bias.
func (s *RasterizerState) DepthBias() float32 { return s.raw.DepthBias }

// SetDepthBias sets the constant depth bias.
func (s *RasterizerState) SetDepthBias(v float32) { s.raw.DepthBias = v }

// SlopeScaleDepthBias returns the slope-scaled depth bias.
func (s *RasterizerState) SlopeScaleDepthBias() float32 { return s.raw.SlopeScaleDepthBias }

// SetSlopeScaleDepthBias sets the slope-scaled depth bias.
func (s *RasterizerState) SetSlopeScaleDepthBias(v float32) { s.raw.SlopeScaleDepthBias = v }

// ScissorTestEnabled reports whether the scissor rectangle clips drawing.
func (s *RasterizerState) ScissorTestEnabled() bool { return abi.Bool(s.raw.ScissorTestEnable) }

// SetScissorTestEnabled turns scissor clipping on or off.
func (s *RasterizerState) SetScissorTestEnabled(b bool) {
	s.raw.ScissorTestEnable = abi.FromBool(b)
}

// MultiSampleAntiAliasEnabled reports whether multisampling is on.
func (s *RasterizerState) MultiSampleAntiAliasEnabled() bool {
	return abi.Bool(s.raw.MultiSampleAntiAlias)
}

// SetMultiSampleAntiAliasEnabled turns multisampling on or off.
func (s *RasterizerState) SetMultiSampleAntiAliasEnabled(b bool) {
	s.raw.MultiSampleAntiAlias = abi.FromBool(b)
}

// Validate checks every enumeration field of the record.
func (s *RasterizerState) Validate() error {
	return errors.Join(
		checkEnum[FillMode]("FillMode", s.raw.FillMode),
		checkEnum[CullMode]("CullMode", s.raw.CullMode),
	)
}
