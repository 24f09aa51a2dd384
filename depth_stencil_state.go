package fna3d

import (
	"errors"

	"github.com/gogpu/fna3d/internal/abi"
	"github.com/gogpu/fna3d/sys"
)

// DepthStencilState is FNA3D_DepthStencilState.
//
// Enum getters return the stored field as is. After a write through Raw a
// getter may report an undeclared variant; Validate checks every field and
// Checked checks one.
type DepthStencilState struct {
	raw sys.DepthStencilState
}

// NewDepthStencilState returns FNA's default: depth test and write enabled
// with CompareFunctionLessEqual, stencil disabled with full masks.
func NewDepthStencilState() DepthStencilState {
	return DepthStencilState{raw: sys.DepthStencilState{
		DepthBufferEnable:         1,
		DepthBufferWriteEnable:    1,
		DepthBufferFunction:       sys.CompareFunctionLessEqual,
		StencilEnable:             0,
		StencilMask:               -1,
		StencilWriteMask:          -1,
		TwoSidedStencilMode:       0,
		StencilFail:               sys.StencilOperationKeep,
		StencilDepthBufferFail:    sys.StencilOperationKeep,
		StencilPass:               sys.StencilOperationKeep,
		StencilFunction:           sys.CompareFunctionAlways,
		CCWStencilFail:            sys.StencilOperationKeep,
		CCWStencilDepthBufferFail: sys.StencilOperationKeep,
		CCWStencilPass:            sys.StencilOperationKeep,
		CCWStencilFunction:        sys.CompareFunctionAlways,
		ReferenceStencil:          0,
	}}
}

// DepthStencilDefault tests and writes depth.
func DepthStencilDefault() DepthStencilState { return NewDepthStencilState() }

// DepthStencilDepthRead tests depth without writing it.
func DepthStencilDepthRead() DepthStencilState {
	s := NewDepthStencilState()
	s.SetDepthBufferWriteEnabled(false)
	return s
}

// DepthStencilNone neither tests nor writes depth.
func DepthStencilNone() DepthStencilState {
	s := NewDepthStencilState()
	s.SetDepthBufferEnabled(false)
	s.SetDepthBufferWriteEnabled(false)
	return s
}

// Raw returns the record FNA3D reads. Use it only to pass s across the
// native boundary; writes through it bypass validation.
func (s *DepthStencilState) Raw() *sys.DepthStencilState { return &s.raw }

// DepthBufferEnabled reports whether the depth test runs.
func (s *DepthStencilState) DepthBufferEnabled() bool { return abi.Bool(s.raw.DepthBufferEnable) }

// SetDepthBufferEnabled turns the depth test on or off.
func (s *DepthStencilState) SetDepthBufferEnabled(b bool) {
	s.raw.DepthBufferEnable = abi.FromBool(b)
}

// DepthBufferWriteEnabled reports whether passing fragments write depth.
func (s *DepthStencilState) DepthBufferWriteEnabled() bool {
	return abi.Bool(s.raw.DepthBufferWriteEnable)
}

// SetDepthBufferWriteEnabled turns depth writes on or off.
func (s *DepthStencilState) SetDepthBufferWriteEnabled(b bool) {
	s.raw.DepthBufferWriteEnable = abi.FromBool(b)
}

// DepthBufferFunction returns the depth comparison. The value is not
// checked; see Checked.
func (s *DepthStencilState) DepthBufferFunction() CompareFunction {
	return CompareFunction(s.raw.DepthBufferFunction)
}

// SetDepthBufferFunction sets the depth comparison.
func (s *DepthStencilState) SetDepthBufferFunction(f CompareFunction) error {
	return setEnum(&s.raw.DepthBufferFunction, f)
}

// StencilEnabled reports whether the stencil test runs.
func (s *DepthStencilState) StencilEnabled() bool { return abi.Bool(s.raw.StencilEnable) }

// SetStencilEnabled turns the stencil test on or off.
func (s *DepthStencilState) SetStencilEnabled(b bool) { s.raw.StencilEnable = abi.FromBool(b) }

// StencilMask returns the mask applied to stencil reads.
func (s *DepthStencilState) StencilMask() int32 { return s.raw.StencilMask }

// SetStencilMask sets the mask applied to stencil reads.
func (s *DepthStencilState) SetStencilMask(m int32) { s.raw.StencilMask = m }

// StencilWriteMask returns the mask applied to stencil writes.
func (s *DepthStencilState) StencilWriteMask() int32 { return s.raw.StencilWriteMask }

// SetStencilWriteMask sets the mask applied to stencil writes.
func (s *DepthStencilState) SetStencilWriteMask(m int32) { s.raw.StencilWriteMask = m }

// TwoSidedStencilMode reports whether counter-clockwise faces use the CCW
// stencil operations.
func (s *DepthStencilState) TwoSidedStencilMode() bool {
	return abi.Bool(s.raw.TwoSidedStencilMode)
}

// SetTwoSidedStencilMode turns two-sided stencil on or off.
func (s *DepthStencilState) SetTwoSidedStencilMode(b bool) {
	s.raw.TwoSidedStencilMode = abi.FromBool(b)
}

// StencilFail returns the operation applied when the stencil test fails.
func (s *DepthStencilState) StencilFail() StencilOperation {
	return StencilOperation(s.raw.StencilFail)
}

// SetStencilFail sets the operation applied when the stencil test fails.
func (s *DepthStencilState) SetStencilFail(op StencilOperation) error {
	return setEnum(&s.raw.StencilFail, op)
}

// StencilDepthBufferFail returns the operation applied when the stencil test
// passes and the depth test fails.
func (s *DepthStencilState) StencilDepthBufferFail() StencilOperation {
	return StencilOperation(s.raw.StencilDepthBufferFail)
}

// SetStencilDepthBufferFail sets the operation applied when the stencil test
// passes and the depth test fails.
func (s *DepthStencilState) SetStencilDepthBufferFail(op StencilOperation) error {
	return setEnum(&s.raw.StencilDepthBufferFail, op)
}

// StencilPass returns the operation applied when both tests pass.
func (s *DepthStencilState) StencilPass() StencilOperation {
	return StencilOperation(s.raw.StencilPass)
}

// SetStencilPass sets the operation applied when both tests pass.
func (s *DepthStencilState) SetStencilPass(op StencilOperation) error {
	return setEnum(&s.raw.StencilPass, op)
}

// StencilFunction returns the stencil comparison.
func (s *DepthStencilState) StencilFunction() CompareFunction {
	return CompareFunction(s.raw.StencilFunction)
}

// SetStencilFunction sets the stencil comparison.
func (s *DepthStencilState) SetStencilFunction(f CompareFunction) error {
	return setEnum(&s.raw.StencilFunction, f)
}

// CCWStencilFail is StencilFail for counter-clockwise faces.
func (s *DepthStencilState) CCWStencilFail() StencilOperation {
	return StencilOperation(s.raw.CCWStencilFail)
}

// SetCCWStencilFail is SetStencilFail for counter-clockwise faces.
func (s *DepthStencilState) SetCCWStencilFail(op StencilOperation) error {
	return setEnum(&s.raw.CCWStencilFail, op)
}

// CCWStencilDepthBufferFail is StencilDepthBufferFail for counter-clockwise
// faces.
func (s *DepthStencilState) CCWStencilDepthBufferFail() StencilOperation {
	return StencilOperation(s.raw.CCWStencilDepthBufferFail)
}

// SetCCWStencilDepthBufferFail is SetStencilDepthBufferFail for
// counter-clockwise faces.
func (s *DepthStencilState) SetCCWStencilDepthBufferFail(op StencilOperation) error {
	return setEnum(&s.raw.CCWStencilDepthBufferFail, op)
}

// CCWStencilPass is StencilPass for counter-clockwise faces.
func (s *DepthStencilState) CCWStencilPass() StencilOperation {
	return StencilOperation(s.raw.CCWStencilPass)
}

// SetCCWStencilPass is SetStencilPass for counter-clockwise faces.
func (s *DepthStencilState) SetCCWStencilPass(op StencilOperation) error {
	return setEnum(&s.raw.CCWStencilPass, op)
}

// CCWStencilFunction is StencilFunction for counter-clockwise faces.
func (s *DepthStencilState) CCWStencilFunction() CompareFunction {
	return CompareFunction(s.raw.CCWStencilFunction)
}

// SetCCWStencilFunction is SetStencilFunction for counter-clockwise faces.
func (s *DepthStencilState) SetCCWStencilFunction(f CompareFunction) error {
	return setEnum(&s.raw.CCWStencilFunction, f)
}

// ReferenceStencil returns the stencil reference value.
func (s *DepthStencilState) ReferenceStencil() int32 { return s.raw.ReferenceStencil }

// SetReferenceStencil sets the stencil reference value.
func (s *DepthStencilState) SetReferenceStencil(v int32) { s.raw.ReferenceStencil = v }

// Validate checks every enumeration field of the record.
func (s *DepthStencilState) Validate() error {
	r := &s.raw
	return errors.Join(
		checkEnum[CompareFunction]("DepthBufferFunction", r.DepthBufferFunction),
		checkEnum[StencilOperation]("StencilFail", r.StencilFail),
		checkEnum[StencilOperation]("StencilDepthBufferFail", r.StencilDepthBufferFail),
		checkEnum[StencilOperation]("StencilPass", r.StencilPass),
		checkEnum[CompareFunction]("StencilFunction", r.StencilFunction),
		checkEnum[StencilOperation]("CCWStencilFail", r.CCWStencilFail),
		checkEnum[StencilOperation]("CCWStencilDepthBufferFail", r.CCWStencilDepthBufferFail),
		checkEnum[StencilOperation]("CCWStencilPass", r.CCWStencilPass),
		checkEnum[CompareFunction]("CCWStencilFunction", r.CCWStencilFunction),
	)
}
