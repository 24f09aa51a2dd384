package native

import (
	"errors"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/fna3d/sys"
)

// ErrNotLinked is returned by CreateDevice when the package was built
// without the fna3d tag.
var ErrNotLinked = errors.New("native: FNA3D is not linked (build with -tags fna3d)")

// ForceDriverEnv names the environment variable FNA3D reads to pick a
// rendering driver.
const ForceDriverEnv = "FNA3D_FORCE_DRIVER"

// EffectMessage is one MojoShader compile error.
type EffectMessage struct {
	Text     string
	Filename string
	Position int32
}

// API mirrors the FNA3D entry points used by the typed layer. Device,
// resource and effect handles are opaque pointers owned by the library.
//
// Boolean-as-integer parameters are plain Go bools here; the cgo
// implementation converts them at the call site.
type API interface {
	LinkedVersion() uint32
	HookLogFunctions(info, warn, err func(string))
	PrepareWindowAttributes() uint32
	DrawableSize(window unsafe.Pointer) (w, h int32)

	CreateDevice(p *sys.PresentationParameters, debug bool) (unsafe.Pointer, error)
	DestroyDevice(dev unsafe.Pointer)

	SwapBuffers(dev unsafe.Pointer, src, dst *sys.Rect, window unsafe.Pointer)
	Clear(dev unsafe.Pointer, options uint32, color *sys.Vec4, depth float32, stencil int32)
	DrawIndexedPrimitives(dev unsafe.Pointer, prim uint32, baseVertex, minVertexIndex, numVertices, startIndex, primCount int32, indices unsafe.Pointer, indexSize uint32)
	DrawInstancedPrimitives(dev unsafe.Pointer, prim uint32, baseVertex, minVertexIndex, numVertices, startIndex, primCount, instanceCount int32, indices unsafe.Pointer, indexSize uint32)
	DrawPrimitives(dev unsafe.Pointer, prim uint32, vertexStart, primCount int32)

	SetViewport(dev unsafe.Pointer, v *sys.Viewport)
	SetScissorRect(dev unsafe.Pointer, r *sys.Rect)
	GetBlendFactor(dev unsafe.Pointer, c *sys.Color)
	SetBlendFactor(dev unsafe.Pointer, c *sys.Color)
	GetMultiSampleMask(dev unsafe.Pointer) int32
	SetMultiSampleMask(dev unsafe.Pointer, mask int32)
	GetReferenceStencil(dev unsafe.Pointer) int32
	SetReferenceStencil(dev unsafe.Pointer, ref int32)

	SetBlendState(dev unsafe.Pointer, s *sys.BlendState)
	SetDepthStencilState(dev unsafe.Pointer, s *sys.DepthStencilState)
	ApplyRasterizerState(dev unsafe.Pointer, s *sys.RasterizerState)
	VerifySampler(dev unsafe.Pointer, index int32, tex unsafe.Pointer, s *sys.SamplerState)
	VerifyVertexSampler(dev unsafe.Pointer, index int32, tex unsafe.Pointer, s *sys.SamplerState)
	ApplyVertexBufferBindings(dev unsafe.Pointer, bindings []sys.VertexBufferBinding, updated bool, baseVertex int32)

	SetRenderTargets(dev unsafe.Pointer, targets []sys.RenderTargetBinding, depthStencil unsafe.Pointer, depthFormat uint32, preserve bool)
	ResolveTarget(dev unsafe.Pointer, target *sys.RenderTargetBinding)
	ResetBackbuffer(dev unsafe.Pointer, p *sys.PresentationParameters)
	ReadBackbuffer(dev unsafe.Pointer, x, y, w, h int32, data []byte)
	GetBackbufferSize(dev unsafe.Pointer) (w, h int32)
	GetBackbufferSurfaceFormat(dev unsafe.Pointer) uint32
	GetBackbufferDepthFormat(dev unsafe.Pointer) uint32
	GetBackbufferMultiSampleCount(dev unsafe.Pointer) int32

	CreateTexture2D(dev unsafe.Pointer, format uint32, w, h, levels int32, renderTarget bool) unsafe.Pointer
	CreateTexture3D(dev unsafe.Pointer, format uint32, w, h, depth, levels int32) unsafe.Pointer
	CreateTextureCube(dev unsafe.Pointer, format uint32, size, levels int32, renderTarget bool) unsafe.Pointer
	AddDisposeTexture(dev, tex unsafe.Pointer)
	SetTextureData2D(dev, tex unsafe.Pointer, x, y, w, h, level int32, data []byte)
	SetTextureData3D(dev, tex unsafe.Pointer, x, y, z, w, h, d, level int32, data []byte)
	SetTextureDataCube(dev, tex unsafe.Pointer, x, y, w, h int32, face uint32, level int32, data []byte)
	SetTextureDataYUV(dev, y, u, v unsafe.Pointer, yW, yH, uvW, uvH int32, data []byte)
	GetTextureData2D(dev, tex unsafe.Pointer, x, y, w, h, level int32, data []byte)
	GetTextureData3D(dev, tex unsafe.Pointer, x, y, z, w, h, d, level int32, data []byte)
	GetTextureDataCube(dev, tex unsafe.Pointer, x, y, w, h int32, face uint32, level int32, data []byte)

	GenColorRenderbuffer(dev unsafe.Pointer, w, h int32, format uint32, multiSampleCount int32, tex unsafe.Pointer) unsafe.Pointer
	GenDepthStencilRenderbuffer(dev unsafe.Pointer, w, h int32, format uint32, multiSampleCount int32) unsafe.Pointer
	AddDisposeRenderbuffer(dev, rb unsafe.Pointer)

	GenVertexBuffer(dev unsafe.Pointer, dynamic bool, usage uint32, size int32) unsafe.Pointer
	AddDisposeVertexBuffer(dev, buf unsafe.Pointer)
	SetVertexBufferData(dev, buf unsafe.Pointer, offset int32, data []byte, elementCount, elementSize, vertexStride int32, options uint32)
	GetVertexBufferData(dev, buf unsafe.Pointer, offset int32, data []byte, elementCount, elementSize, vertexStride int32)
	GenIndexBuffer(dev unsafe.Pointer, dynamic bool, usage uint32, size int32) unsafe.Pointer
	AddDisposeIndexBuffer(dev, buf unsafe.Pointer)
	SetIndexBufferData(dev, buf unsafe.Pointer, offset int32, data []byte, options uint32)
	GetIndexBufferData(dev, buf unsafe.Pointer, offset int32, data []byte)

	// CreateEffect returns the FNA3D effect handle and the MojoShader
	// effect data it wraps.
	CreateEffect(dev unsafe.Pointer, code []byte) (effect, data unsafe.Pointer)
	CloneEffect(dev, src unsafe.Pointer) (effect, data unsafe.Pointer)
	AddDisposeEffect(dev, effect unsafe.Pointer)
	SetEffectTechnique(dev, effect, technique unsafe.Pointer)
	ApplyEffect(dev, effect unsafe.Pointer, pass uint32, changes *sys.EffectStateChanges)
	BeginPassRestore(dev, effect unsafe.Pointer, changes *sys.EffectStateChanges)
	EndPassRestore(dev, effect unsafe.Pointer)

	// Effect data accessors read the MOJOSHADER_effect structure.
	EffectErrors(data unsafe.Pointer) []EffectMessage
	EffectTechnique(data unsafe.Pointer, index int) unsafe.Pointer
	EffectParamNames(data unsafe.Pointer) []string
	SetEffectParam(data unsafe.Pointer, name string, values []float32) bool

	CreateQuery(dev unsafe.Pointer) unsafe.Pointer
	AddDisposeQuery(dev, q unsafe.Pointer)
	QueryBegin(dev, q unsafe.Pointer)
	QueryEnd(dev, q unsafe.Pointer)
	QueryComplete(dev, q unsafe.Pointer) bool
	QueryPixelCount(dev, q unsafe.Pointer) int32

	SupportsDXT1(dev unsafe.Pointer) bool
	SupportsS3TC(dev unsafe.Pointer) bool
	SupportsHardwareInstancing(dev unsafe.Pointer) bool
	SupportsNoOverwrite(dev unsafe.Pointer) bool
	GetMaxTextureSlots(dev unsafe.Pointer) (textures, vertexTextures int32)
	GetMaxMultiSampleCount(dev unsafe.Pointer, format uint32, multiSampleCount int32) int32
	SetStringMarker(dev unsafe.Pointer, text string)
}

// LogLevel identifies which FNA3D log callback fired.
type LogLevel int

const (
	LogInfo LogLevel = iota
	LogWarn
	LogError
)

type logHooks struct {
	info, warn, err func(string)
}

var hooks atomic.Pointer[logHooks]

// setHooks installs the Go side of the FNA3D log callbacks. Nil functions
// drop the corresponding level.
func setHooks(info, warn, err func(string)) {
	hooks.Store(&logHooks{info: info, warn: warn, err: err})
}

// dispatchLog forwards one native log line to the installed hook.
func dispatchLog(level LogLevel, msg string) {
	h := hooks.Load()
	if h == nil {
		return
	}
	var fn func(string)
	switch level {
	case LogInfo:
		fn = h.info
	case LogWarn:
		fn = h.warn
	default:
		fn = h.err
	}
	if fn != nil {
		fn(msg)
	}
}
