// Package sys mirrors the raw FNA3D C ABI: constant values and records whose
// field order, size and alignment match FNA3D.h.
//
// Nothing here validates anything. Enum-typed fields are plain uint32 and
// boolean fields are uint8, exactly as the native library sees them. The
// typed surface lives in package fna3d, which embeds these records and hands
// them back out through its Raw accessors at the boundary.
//
// The constant tables in constants_gen.go are generated from constants.yaml
// by cmd/fna3dgen.
package sys
