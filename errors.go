package fna3d

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the package.
var (
	// ErrUnknownVariant matches every *UnknownVariantError under errors.Is.
	ErrUnknownVariant = errors.New("fna3d: unknown enumeration variant")

	// ErrNotLinked is returned by NewDevice when the package was built
	// without the fna3d build tag, so no native library is linked.
	ErrNotLinked = errors.New("fna3d: built without the fna3d tag")

	// ErrDeviceCreation is returned when FNA3D_CreateDevice returns NULL.
	ErrDeviceCreation = errors.New("fna3d: device creation failed")

	// ErrDeviceClosed is returned by every Device method after Close.
	ErrDeviceClosed = errors.New("fna3d: device is closed")

	// ErrDisposed is returned when a disposed resource is used.
	ErrDisposed = errors.New("fna3d: resource is disposed")

	// ErrNilResource is returned when a native create call returns NULL.
	ErrNilResource = errors.New("fna3d: native call returned no resource")

	// ErrInvalidSize is returned for non-positive dimensions or counts.
	ErrInvalidSize = errors.New("fna3d: invalid size")

	// ErrDataSize is returned when a byte length does not fit the target.
	ErrDataSize = errors.New("fna3d: data size mismatch")

	// ErrBufferKind is returned when an index buffer is used as a vertex
	// buffer or the other way round.
	ErrBufferKind = errors.New("fna3d: wrong buffer kind")

	// ErrTargetType is returned when a cube-only operation is applied to a
	// 2D render target binding.
	ErrTargetType = errors.New("fna3d: wrong render target type")

	// ErrParamNotFound is returned by Effect.SetParam for an unknown
	// parameter name.
	ErrParamNotFound = errors.New("fna3d: effect parameter not found")
)

// UnknownVariantError reports a raw value that is not a declared variant of
// the named enumeration.
type UnknownVariantError struct {
	Type  string
	Value uint32
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("fna3d: unknown %s variant %d", e.Type, e.Value)
}

// Is reports whether target is ErrUnknownVariant.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// EffectError carries the MojoShader errors reported while compiling an
// effect.
type EffectError struct {
	Messages []EffectMessage
}

// EffectMessage is one MojoShader diagnostic.
type EffectMessage struct {
	Text     string
	Filename string
	Line     int32
}

func (e *EffectError) Error() string {
	switch len(e.Messages) {
	case 0:
		return "fna3d: effect compilation failed"
	case 1:
		return "fna3d: effect compilation failed: " + e.Messages[0].String()
	default:
		return fmt.Sprintf("fna3d: effect compilation failed: %s (and %d more)",
			e.Messages[0].String(), len(e.Messages)-1)
	}
}

func (m EffectMessage) String() string {
	if m.Filename == "" {
		return m.Text
	}
	return fmt.Sprintf("%s:%d: %s", m.Filename, m.Line, m.Text)
}
