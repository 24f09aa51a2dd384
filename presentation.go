package fna3d

import (
	"errors"
	"unsafe"

	"github.com/gogpu/fna3d/internal/abi"
	"github.com/gogpu/fna3d/sys"
)

// PresentationParameters is FNA3D_PresentationParameters: the backbuffer
// settings a device is created or reset with.
//
// Enum getters return the stored field as is. After a write through Raw a
// getter may report an undeclared variant; Validate checks every field and
// Checked checks one.
type PresentationParameters struct {
	raw sys.PresentationParameters
}

// NewPresentationParameters returns a windowed w x h RGBA8 backbuffer with a
// D24S8 depth buffer, presented to window (an SDL_Window*).
func NewPresentationParameters(window unsafe.Pointer, w, h int32) PresentationParameters {
	return PresentationParameters{raw: sys.PresentationParameters{
		BackBufferWidth:      w,
		BackBufferHeight:     h,
		BackBufferFormat:     sys.SurfaceFormatColor,
		DeviceWindowHandle:   window,
		DepthStencilFormat:   sys.DepthFormatD24S8,
		PresentationInterval: sys.PresentIntervalDefault,
		DisplayOrientation:   sys.DisplayOrientationDefault,
		RenderTargetUsage:    sys.RenderTargetUsageDiscardContents,
	}}
}

// Raw returns the record FNA3D reads. Use it only to pass p across the
// native boundary; writes through it bypass validation.
func (p *PresentationParameters) Raw() *sys.PresentationParameters { return &p.raw }

// BackBufferSize returns the backbuffer width and height.
func (p *PresentationParameters) BackBufferSize() (w, h int32) {
	return p.raw.BackBufferWidth, p.raw.BackBufferHeight
}

// SetBackBufferSize sets the backbuffer width and height.
func (p *PresentationParameters) SetBackBufferSize(w, h int32) {
	p.raw.BackBufferWidth, p.raw.BackBufferHeight = w, h
}

// BackBufferFormat returns the backbuffer pixel format.
func (p *PresentationParameters) BackBufferFormat() SurfaceFormat {
	return SurfaceFormat(p.raw.BackBufferFormat)
}

// SetBackBufferFormat sets the backbuffer pixel format.
func (p *PresentationParameters) SetBackBufferFormat(f SurfaceFormat) error {
	return setEnum(&p.raw.BackBufferFormat, f)
}

// MultiSampleCount returns the requested MSAA sample count.
func (p *PresentationParameters) MultiSampleCount() int32 { return p.raw.MultiSampleCount }

// SetMultiSampleCount sets the requested MSAA sample count.
func (p *PresentationParameters) SetMultiSampleCount(n int32) { p.raw.MultiSampleCount = n }

// DeviceWindowHandle returns the SDL_Window* the backbuffer is presented to.
func (p *PresentationParameters) DeviceWindowHandle() unsafe.Pointer {
	return p.raw.DeviceWindowHandle
}

// SetDeviceWindowHandle sets the SDL_Window* the backbuffer is presented to.
func (p *PresentationParameters) SetDeviceWindowHandle(w unsafe.Pointer) {
	p.raw.DeviceWindowHandle = w
}

// FullScreen reports whether the backbuffer is full screen.
func (p *PresentationParameters) FullScreen() bool { return abi.Bool(p.raw.IsFullScreen) }

// SetFullScreen sets whether the backbuffer is full screen.
func (p *PresentationParameters) SetFullScreen(b bool) { p.raw.IsFullScreen = abi.FromBool(b) }

// DepthStencilFormat returns the backbuffer depth/stencil format.
func (p *PresentationParameters) DepthStencilFormat() DepthFormat {
	return DepthFormat(p.raw.DepthStencilFormat)
}

// SetDepthStencilFormat sets the backbuffer depth/stencil format.
func (p *PresentationParameters) SetDepthStencilFormat(f DepthFormat) error {
	return setEnum(&p.raw.DepthStencilFormat, f)
}

// PresentationInterval returns the swap interval.
func (p *PresentationParameters) PresentationInterval() PresentInterval {
	return PresentInterval(p.raw.PresentationInterval)
}

// SetPresentationInterval sets the swap interval.
func (p *PresentationParameters) SetPresentationInterval(i PresentInterval) error {
	return setEnum(&p.raw.PresentationInterval, i)
}

// DisplayOrientation returns the display orientation.
func (p *PresentationParameters) DisplayOrientation() DisplayOrientation {
	return DisplayOrientation(p.raw.DisplayOrientation)
}

// SetDisplayOrientation sets the display orientation.
func (p *PresentationParameters) SetDisplayOrientation(o DisplayOrientation) error {
	return setEnum(&p.raw.DisplayOrientation, o)
}

// RenderTargetUsage returns what happens to the backbuffer contents when it
// is rebound.
func (p *PresentationParameters) RenderTargetUsage() RenderTargetUsage {
	return RenderTargetUsage(p.raw.RenderTargetUsage)
}

// SetRenderTargetUsage sets what happens to the backbuffer contents when it
// is rebound.
func (p *PresentationParameters) SetRenderTargetUsage(u RenderTargetUsage) error {
	return setEnum(&p.raw.RenderTargetUsage, u)
}

// Validate checks every enumeration field of the record.
func (p *PresentationParameters) Validate() error {
	r := &p.raw
	return errors.Join(
		checkEnum[SurfaceFormat]("BackBufferFormat", r.BackBufferFormat),
		checkEnum[DepthFormat]("DepthStencilFormat", r.DepthStencilFormat),
		checkEnum[PresentInterval]("PresentationInterval", r.PresentationInterval),
		checkEnum[DisplayOrientation]("DisplayOrientation", r.DisplayOrientation),
		checkEnum[RenderTargetUsage]("RenderTargetUsage", r.RenderTargetUsage),
	)
}
