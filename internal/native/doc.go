// Package native is the single place where Go calls into the FNA3D C
// library.
//
// Everything above this package talks to the [API] interface, so the typed
// wrappers can be exercised without a native library. Two implementations
// exist, selected by build tag:
//
//   - with -tags fna3d, [New] returns a cgo binding to libFNA3D (and the
//     MojoShader effect structures it exposes). FNA3D.h, mojoshader.h and
//     mojoshader_effects.h must be on the include path and libFNA3D must be
//     linkable, e.g. via pkg-config or CGO_CFLAGS/CGO_LDFLAGS.
//   - without the tag, [New] returns an implementation whose CreateDevice
//     fails with [ErrNotLinked]. No other call is reachable without a
//     device.
//
// Arguments use the layout mirrors from package sys and opaque
// unsafe.Pointer handles. Slices passed to the API are only borrowed for
// the duration of the call.
package native
