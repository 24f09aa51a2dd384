package fna3d

import (
	"os"

	"github.com/gogpu/fna3d/internal/native"
)

// Driver names accepted by FNA3D_FORCE_DRIVER.
const (
	DriverVulkan = "Vulkan"
	DriverD3D11  = "D3D11"
	DriverOpenGL = "OpenGL"
)

// lib is the native binding used by package-level functions and, unless
// overridden, by new devices.
var lib = native.New()

// Option configures a Device during creation.
//
// Example:
//
//	dev, err := fna3d.NewDevice(&params,
//	    fna3d.WithDebug(true),
//	    fna3d.WithDriver(fna3d.DriverVulkan))
type Option func(*deviceOptions)

type deviceOptions struct {
	debug     bool
	driver    string
	nativeLog bool
	api       native.API
}

func defaultOptions() deviceOptions {
	return deviceOptions{api: lib}
}

// WithDebug enables the driver's debug layer.
func WithDebug(on bool) Option {
	return func(o *deviceOptions) {
		o.debug = on
	}
}

// WithDriver forces FNA3D to pick the named driver. It sets
// FNA3D_FORCE_DRIVER for the process before the device is created, so it
// also affects later PrepareWindowAttributes calls.
func WithDriver(name string) Option {
	return func(o *deviceOptions) {
		o.driver = name
	}
}

// WithNativeLog installs HookLogFunctions before the device is created so
// driver selection messages reach Logger.
func WithNativeLog() Option {
	return func(o *deviceOptions) {
		o.nativeLog = true
	}
}

// withAPI replaces the native binding, for tests.
func withAPI(api native.API) Option {
	return func(o *deviceOptions) {
		o.api = api
	}
}

// DriverFromEnv returns the driver forced through FNA3D_FORCE_DRIVER, or
// "" when FNA3D chooses.
func DriverFromEnv() string {
	return os.Getenv(native.ForceDriverEnv)
}
