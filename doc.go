// Package fna3d is a typed Go binding for FNA3D, the XNA-style 3D graphics
// library behind FNA.
//
// # Overview
//
// FNA3D's C API passes plain integers and C structs. This package gives
// each of them a Go type that cannot silently hold a wrong value:
//
//   - Enumerations ([CompareFunction], [SurfaceFormat], ...) are distinct
//     uint32 types. XFromRaw converts a raw value and reports an
//     [*UnknownVariantError] for anything FNA3D does not declare.
//   - Bitmasks ([ClearOptions], [ColorWriteChannels], [WindowFlags]) are
//     flag sets with Contains, Union and friends. Raw round-trips preserve
//     bits the package does not know.
//   - Structs ([BlendState], [DepthStencilState], [SamplerState], ...) wrap
//     the native record byte for byte. Accessors speak the typed enums and
//     bool; setters reject forged enum values.
//   - Every wrapper has Raw and XFromRaw to reach the native record
//     directly. Writes through Raw bypass validation; Validate rechecks.
//
// # Devices
//
// [NewDevice] opens an FNA3D_Device on an SDL window created with the flags
// from [PrepareWindowAttributes]. Device methods mirror the FNA3D calls and
// validate their inputs before crossing into C. A Device must be used from
// the OS thread that created it.
//
//	runtime.LockOSThread()
//	params := fna3d.DefaultPresentationParameters(window)
//	dev, err := fna3d.NewDevice(&params, fna3d.WithNativeLog())
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
//	dev.Clear(fna3d.ClearOptionsTarget, fna3d.ColorCornflowerBlue, 1, 0)
//	dev.SwapBuffers(nil, nil, window)
//
// # Build tags
//
// Linking against libFNA3D requires cgo and the fna3d build tag. Without
// it the typed layer still works and [NewDevice] returns [ErrNotLinked].
//
// # Related packages
//
//   - sys: the raw record layouts and constants
//   - img: image decoding into texture data
//   - mojo: MojoShader effect helpers
//   - font: a glyph atlas kept in a texture
package fna3d
