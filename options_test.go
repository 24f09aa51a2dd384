package fna3d

import (
	"testing"

	"github.com/gogpu/fna3d/internal/native"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.debug || o.nativeLog || o.driver != "" {
		t.Errorf("defaults = %+v", o)
	}
	if o.api != lib {
		t.Error("default binding is not the package binding")
	}
}

func TestOptionsApply(t *testing.T) {
	fake := &fakeAPI{}
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o deviceOptions)
	}{
		{"debug", []Option{WithDebug(true)}, func(t *testing.T, o deviceOptions) {
			if !o.debug {
				t.Error("debug not set")
			}
		}},
		{"debug off wins when last", []Option{WithDebug(true), WithDebug(false)}, func(t *testing.T, o deviceOptions) {
			if o.debug {
				t.Error("later WithDebug(false) ignored")
			}
		}},
		{"driver", []Option{WithDriver(DriverOpenGL)}, func(t *testing.T, o deviceOptions) {
			if o.driver != "OpenGL" {
				t.Errorf("driver = %q", o.driver)
			}
		}},
		{"native log", []Option{WithNativeLog()}, func(t *testing.T, o deviceOptions) {
			if !o.nativeLog {
				t.Error("nativeLog not set")
			}
		}},
		{"api", []Option{withAPI(fake)}, func(t *testing.T, o deviceOptions) {
			if o.api != native.API(fake) {
				t.Error("binding not replaced")
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o)
		})
	}
}

func TestDriverFromEnv(t *testing.T) {
	t.Setenv(native.ForceDriverEnv, "")
	if got := DriverFromEnv(); got != "" {
		t.Errorf("DriverFromEnv() = %q, want empty", got)
	}
	t.Setenv(native.ForceDriverEnv, DriverVulkan)
	if got := DriverFromEnv(); got != "Vulkan" {
		t.Errorf("DriverFromEnv() = %q, want Vulkan", got)
	}
}
