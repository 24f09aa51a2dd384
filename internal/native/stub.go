//go:build !fna3d

package native

import (
	"unsafe"

	"github.com/gogpu/fna3d/sys"
)

// unlinked satisfies API when no native library is built in. Only the
// device-independent calls are implemented; every device call is
// unreachable because CreateDevice never succeeds.
type unlinked struct {
	API
}

// New returns the API implementation selected at build time.
func New() API { return unlinked{} }

// Linked reports whether the cgo binding is compiled in.
func Linked() bool { return false }

func (unlinked) LinkedVersion() uint32 { return 0 }

func (unlinked) HookLogFunctions(info, warn, err func(string)) {
	setHooks(info, warn, err)
}

func (unlinked) PrepareWindowAttributes() uint32 { return 0 }

func (unlinked) DrawableSize(unsafe.Pointer) (int32, int32) { return 0, 0 }

func (unlinked) CreateDevice(*sys.PresentationParameters, bool) (unsafe.Pointer, error) {
	return nil, ErrNotLinked
}

func (unlinked) DestroyDevice(unsafe.Pointer) {}
