//go:build fna3d

package native

/*
#cgo pkg-config: fna3d
#cgo LDFLAGS: -lFNA3D

#include <stdlib.h>
#include <string.h>
#include <FNA3D.h>
#include <mojoshader.h>
#include <mojoshader_effects.h>

extern void fna3dGoLog(int level, char *msg);

static void fna3d_log_info(const char *msg)  { fna3dGoLog(0, (char *) msg); }
static void fna3d_log_warn(const char *msg)  { fna3dGoLog(1, (char *) msg); }
static void fna3d_log_error(const char *msg) { fna3dGoLog(2, (char *) msg); }

static void fna3d_hook_logs(void) {
	FNA3D_HookLogFunctions(fna3d_log_info, fna3d_log_warn, fna3d_log_error);
}

static int fna3d_effect_error_count(MOJOSHADER_effect *e) {
	return e == NULL ? 0 : e->error_count;
}

static const char *fna3d_effect_error(MOJOSHADER_effect *e, int i, const char **file, int *pos) {
	MOJOSHADER_error *err = &e->errors[i];
	*file = err->filename;
	*pos = err->error_position;
	return err->error;
}

static MOJOSHADER_effectTechnique *fna3d_effect_technique(MOJOSHADER_effect *e, int i) {
	if (e == NULL || i < 0 || i >= e->technique_count) {
		return NULL;
	}
	return &e->techniques[i];
}

static int fna3d_effect_param_count(MOJOSHADER_effect *e) {
	return e == NULL ? 0 : e->param_count;
}

static const char *fna3d_effect_param_name(MOJOSHADER_effect *e, int i) {
	return e->params[i].value.name;
}

static int fna3d_effect_set_floats(MOJOSHADER_effect *e, const char *name, const float *v, int n) {
	int i;
	for (i = 0; i < e->param_count; i++) {
		MOJOSHADER_effectValue *val = &e->params[i].value;
		if (val->name == NULL || strcmp(val->name, name) != 0) {
			continue;
		}
		if ((unsigned int) n > val->value_count) {
			n = (int) val->value_count;
		}
		memcpy(val->valuesF, v, sizeof(float) * n);
		return 1;
	}
	return 0;
}
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/fna3d/sys"
)

// The sys mirrors must match the C records byte for byte.
var (
	_ [unsafe.Sizeof(sys.PresentationParameters{})]byte = [C.sizeof_FNA3D_PresentationParameters]byte{}
	_ [unsafe.Sizeof(sys.Viewport{})]byte               = [C.sizeof_FNA3D_Viewport]byte{}
	_ [unsafe.Sizeof(sys.Rect{})]byte                   = [C.sizeof_FNA3D_Rect]byte{}
	_ [unsafe.Sizeof(sys.Vec4{})]byte                   = [C.sizeof_FNA3D_Vec4]byte{}
	_ [unsafe.Sizeof(sys.Color{})]byte                  = [C.sizeof_FNA3D_Color]byte{}
	_ [unsafe.Sizeof(sys.BlendState{})]byte             = [C.sizeof_FNA3D_BlendState]byte{}
	_ [unsafe.Sizeof(sys.DepthStencilState{})]byte      = [C.sizeof_FNA3D_DepthStencilState]byte{}
	_ [unsafe.Sizeof(sys.RasterizerState{})]byte        = [C.sizeof_FNA3D_RasterizerState]byte{}
	_ [unsafe.Sizeof(sys.SamplerState{})]byte           = [C.sizeof_FNA3D_SamplerState]byte{}
	_ [unsafe.Sizeof(sys.VertexElement{})]byte          = [C.sizeof_FNA3D_VertexElement]byte{}
	_ [unsafe.Sizeof(sys.VertexDeclaration{})]byte      = [C.sizeof_FNA3D_VertexDeclaration]byte{}
	_ [unsafe.Sizeof(sys.VertexBufferBinding{})]byte    = [C.sizeof_FNA3D_VertexBufferBinding]byte{}
	_ [unsafe.Sizeof(sys.RenderTargetBinding{})]byte    = [C.sizeof_FNA3D_RenderTargetBinding]byte{}
	_ [unsafe.Sizeof(sys.EffectStateChanges{})]byte     = [C.sizeof_MOJOSHADER_effectStateChanges]byte{}
)

// lib is the cgo binding to libFNA3D.
type lib struct{}

// New returns the API implementation selected at build time.
func New() API { return lib{} }

// Linked reports whether the cgo binding is compiled in.
func Linked() bool { return true }

func dev(p unsafe.Pointer) *C.FNA3D_Device { return (*C.FNA3D_Device)(p) }

func tex(p unsafe.Pointer) *C.FNA3D_Texture { return (*C.FNA3D_Texture)(p) }

func buf(p unsafe.Pointer) *C.FNA3D_Buffer { return (*C.FNA3D_Buffer)(p) }

func effect(p unsafe.Pointer) *C.FNA3D_Effect { return (*C.FNA3D_Effect)(p) }

func mojo(p unsafe.Pointer) *C.MOJOSHADER_effect { return (*C.MOJOSHADER_effect)(p) }

func bool8(b bool) C.uint8_t {
	if b {
		return 1
	}
	return 0
}

func bytes(b []byte) (unsafe.Pointer, C.int32_t) {
	if len(b) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(unsafe.SliceData(b)), C.int32_t(len(b))
}

func (lib) LinkedVersion() uint32 { return uint32(C.FNA3D_LinkedVersion()) }

func (lib) HookLogFunctions(info, warn, err func(string)) {
	setHooks(info, warn, err)
	C.fna3d_hook_logs()
}

func (lib) PrepareWindowAttributes() uint32 { return uint32(C.FNA3D_PrepareWindowAttributes()) }

func (lib) DrawableSize(window unsafe.Pointer) (int32, int32) {
	var w, h C.int32_t
	C.FNA3D_GetDrawableSize(window, &w, &h)
	return int32(w), int32(h)
}

func (lib) CreateDevice(p *sys.PresentationParameters, debug bool) (unsafe.Pointer, error) {
	d := C.FNA3D_CreateDevice((*C.FNA3D_PresentationParameters)(unsafe.Pointer(p)), bool8(debug))
	return unsafe.Pointer(d), nil
}

func (lib) DestroyDevice(d unsafe.Pointer) { C.FNA3D_DestroyDevice(dev(d)) }

func (lib) SwapBuffers(d unsafe.Pointer, src, dst *sys.Rect, window unsafe.Pointer) {
	C.FNA3D_SwapBuffers(dev(d), (*C.FNA3D_Rect)(unsafe.Pointer(src)), (*C.FNA3D_Rect)(unsafe.Pointer(dst)), window)
}

func (lib) Clear(d unsafe.Pointer, options uint32, color *sys.Vec4, depth float32, stencil int32) {
	C.FNA3D_Clear(dev(d), C.FNA3D_ClearOptions(options), (*C.FNA3D_Vec4)(unsafe.Pointer(color)), C.float(depth), C.int32_t(stencil))
}

func (lib) DrawIndexedPrimitives(d unsafe.Pointer, prim uint32, baseVertex, minVertexIndex, numVertices, startIndex, primCount int32, indices unsafe.Pointer, indexSize uint32) {
	C.FNA3D_DrawIndexedPrimitives(dev(d), C.FNA3D_PrimitiveType(prim),
		C.int32_t(baseVertex), C.int32_t(minVertexIndex), C.int32_t(numVertices),
		C.int32_t(startIndex), C.int32_t(primCount),
		buf(indices), C.FNA3D_IndexElementSize(indexSize))
}

func (lib) DrawInstancedPrimitives(d unsafe.Pointer, prim uint32, baseVertex, minVertexIndex, numVertices, startIndex, primCount, instanceCount int32, indices unsafe.Pointer, indexSize uint32) {
	C.FNA3D_DrawInstancedPrimitives(dev(d), C.FNA3D_PrimitiveType(prim),
		C.int32_t(baseVertex), C.int32_t(minVertexIndex), C.int32_t(numVertices),
		C.int32_t(startIndex), C.int32_t(primCount), C.int32_t(instanceCount),
		buf(indices), C.FNA3D_IndexElementSize(indexSize))
}

func (lib) DrawPrimitives(d unsafe.Pointer, prim uint32, vertexStart, primCount int32) {
	C.FNA3D_DrawPrimitives(dev(d), C.FNA3D_PrimitiveType(prim), C.int32_t(vertexStart), C.int32_t(primCount))
}

func (lib) SetViewport(d unsafe.Pointer, v *sys.Viewport) {
	C.FNA3D_SetViewport(dev(d), (*C.FNA3D_Viewport)(unsafe.Pointer(v)))
}

func (lib) SetScissorRect(d unsafe.Pointer, r *sys.Rect) {
	C.FNA3D_SetScissorRect(dev(d), (*C.FNA3D_Rect)(unsafe.Pointer(r)))
}

func (lib) GetBlendFactor(d unsafe.Pointer, c *sys.Color) {
	C.FNA3D_GetBlendFactor(dev(d), (*C.FNA3D_Color)(unsafe.Pointer(c)))
}

func (lib) SetBlendFactor(d unsafe.Pointer, c *sys.Color) {
	C.FNA3D_SetBlendFactor(dev(d), (*C.FNA3D_Color)(unsafe.Pointer(c)))
}

func (lib) GetMultiSampleMask(d unsafe.Pointer) int32 {
	return int32(C.FNA3D_GetMultiSampleMask(dev(d)))
}

func (lib) SetMultiSampleMask(d unsafe.Pointer, mask int32) {
	C.FNA3D_SetMultiSampleMask(dev(d), C.int32_t(mask))
}

func (lib) GetReferenceStencil(d unsafe.Pointer) int32 {
	return int32(C.FNA3D_GetReferenceStencil(dev(d)))
}

func (lib) SetReferenceStencil(d unsafe.Pointer, ref int32) {
	C.FNA3D_SetReferenceStencil(dev(d), C.int32_t(ref))
}

func (lib) SetBlendState(d unsafe.Pointer, s *sys.BlendState) {
	C.FNA3D_SetBlendState(dev(d), (*C.FNA3D_BlendState)(unsafe.Pointer(s)))
}

func (lib) SetDepthStencilState(d unsafe.Pointer, s *sys.DepthStencilState) {
	C.FNA3D_SetDepthStencilState(dev(d), (*C.FNA3D_DepthStencilState)(unsafe.Pointer(s)))
}

func (lib) ApplyRasterizerState(d unsafe.Pointer, s *sys.RasterizerState) {
	C.FNA3D_ApplyRasterizerState(dev(d), (*C.FNA3D_RasterizerState)(unsafe.Pointer(s)))
}

func (lib) VerifySampler(d unsafe.Pointer, index int32, t unsafe.Pointer, s *sys.SamplerState) {
	C.FNA3D_VerifySampler(dev(d), C.int32_t(index), tex(t), (*C.FNA3D_SamplerState)(unsafe.Pointer(s)))
}

func (lib) VerifyVertexSampler(d unsafe.Pointer, index int32, t unsafe.Pointer, s *sys.SamplerState) {
	C.FNA3D_VerifyVertexSampler(dev(d), C.int32_t(index), tex(t), (*C.FNA3D_SamplerState)(unsafe.Pointer(s)))
}

func (lib) ApplyVertexBufferBindings(d unsafe.Pointer, bindings []sys.VertexBufferBinding, updated bool, baseVertex int32) {
	C.FNA3D_ApplyVertexBufferBindings(dev(d),
		(*C.FNA3D_VertexBufferBinding)(unsafe.Pointer(unsafe.SliceData(bindings))),
		C.int32_t(len(bindings)), bool8(updated), C.int32_t(baseVertex))
}

func (lib) SetRenderTargets(d unsafe.Pointer, targets []sys.RenderTargetBinding, depthStencil unsafe.Pointer, depthFormat uint32, preserve bool) {
	C.FNA3D_SetRenderTargets(dev(d),
		(*C.FNA3D_RenderTargetBinding)(unsafe.Pointer(unsafe.SliceData(targets))),
		C.int32_t(len(targets)), (*C.FNA3D_Renderbuffer)(depthStencil),
		C.FNA3D_DepthFormat(depthFormat), bool8(preserve))
}

func (lib) ResolveTarget(d unsafe.Pointer, target *sys.RenderTargetBinding) {
	C.FNA3D_ResolveTarget(dev(d), (*C.FNA3D_RenderTargetBinding)(unsafe.Pointer(target)))
}

func (lib) ResetBackbuffer(d unsafe.Pointer, p *sys.PresentationParameters) {
	C.FNA3D_ResetBackbuffer(dev(d), (*C.FNA3D_PresentationParameters)(unsafe.Pointer(p)))
}

func (lib) ReadBackbuffer(d unsafe.Pointer, x, y, w, h int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_ReadBackbuffer(dev(d), C.int32_t(x), C.int32_t(y), C.int32_t(w), C.int32_t(h), p, n)
}

func (lib) GetBackbufferSize(d unsafe.Pointer) (int32, int32) {
	var w, h C.int32_t
	C.FNA3D_GetBackbufferSize(dev(d), &w, &h)
	return int32(w), int32(h)
}

func (lib) GetBackbufferSurfaceFormat(d unsafe.Pointer) uint32 {
	return uint32(C.FNA3D_GetBackbufferSurfaceFormat(dev(d)))
}

func (lib) GetBackbufferDepthFormat(d unsafe.Pointer) uint32 {
	return uint32(C.FNA3D_GetBackbufferDepthFormat(dev(d)))
}

func (lib) GetBackbufferMultiSampleCount(d unsafe.Pointer) int32 {
	return int32(C.FNA3D_GetBackbufferMultiSampleCount(dev(d)))
}

func (lib) CreateTexture2D(d unsafe.Pointer, format uint32, w, h, levels int32, renderTarget bool) unsafe.Pointer {
	return unsafe.Pointer(C.FNA3D_CreateTexture2D(dev(d), C.FNA3D_SurfaceFormat(format),
		C.int32_t(w), C.int32_t(h), C.int32_t(levels), bool8(renderTarget)))
}

func (lib) CreateTexture3D(d unsafe.Pointer, format uint32, w, h, depth, levels int32) unsafe.Pointer {
	return unsafe.Pointer(C.FNA3D_CreateTexture3D(dev(d), C.FNA3D_SurfaceFormat(format),
		C.int32_t(w), C.int32_t(h), C.int32_t(depth), C.int32_t(levels)))
}

func (lib) CreateTextureCube(d unsafe.Pointer, format uint32, size, levels int32, renderTarget bool) unsafe.Pointer {
	return unsafe.Pointer(C.FNA3D_CreateTextureCube(dev(d), C.FNA3D_SurfaceFormat(format),
		C.int32_t(size), C.int32_t(levels), bool8(renderTarget)))
}

func (lib) AddDisposeTexture(d, t unsafe.Pointer) { C.FNA3D_AddDisposeTexture(dev(d), tex(t)) }

func (lib) SetTextureData2D(d, t unsafe.Pointer, x, y, w, h, level int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_SetTextureData2D(dev(d), tex(t), C.int32_t(x), C.int32_t(y), C.int32_t(w), C.int32_t(h), C.int32_t(level), p, n)
}

func (lib) SetTextureData3D(d, t unsafe.Pointer, x, y, z, w, h, depth, level int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_SetTextureData3D(dev(d), tex(t), C.int32_t(x), C.int32_t(y), C.int32_t(z),
		C.int32_t(w), C.int32_t(h), C.int32_t(depth), C.int32_t(level), p, n)
}

func (lib) SetTextureDataCube(d, t unsafe.Pointer, x, y, w, h int32, face uint32, level int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_SetTextureDataCube(dev(d), tex(t), C.int32_t(x), C.int32_t(y), C.int32_t(w), C.int32_t(h),
		C.FNA3D_CubeMapFace(face), C.int32_t(level), p, n)
}

func (lib) SetTextureDataYUV(d, y, u, v unsafe.Pointer, yW, yH, uvW, uvH int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_SetTextureDataYUV(dev(d), tex(y), tex(u), tex(v),
		C.int32_t(yW), C.int32_t(yH), C.int32_t(uvW), C.int32_t(uvH), p, n)
}

func (lib) GetTextureData2D(d, t unsafe.Pointer, x, y, w, h, level int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_GetTextureData2D(dev(d), tex(t), C.int32_t(x), C.int32_t(y), C.int32_t(w), C.int32_t(h), C.int32_t(level), p, n)
}

func (lib) GetTextureData3D(d, t unsafe.Pointer, x, y, z, w, h, depth, level int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_GetTextureData3D(dev(d), tex(t), C.int32_t(x), C.int32_t(y), C.int32_t(z),
		C.int32_t(w), C.int32_t(h), C.int32_t(depth), C.int32_t(level), p, n)
}

func (lib) GetTextureDataCube(d, t unsafe.Pointer, x, y, w, h int32, face uint32, level int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_GetTextureDataCube(dev(d), tex(t), C.int32_t(x), C.int32_t(y), C.int32_t(w), C.int32_t(h),
		C.FNA3D_CubeMapFace(face), C.int32_t(level), p, n)
}

func (lib) GenColorRenderbuffer(d unsafe.Pointer, w, h int32, format uint32, multiSampleCount int32, t unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.FNA3D_GenColorRenderbuffer(dev(d), C.int32_t(w), C.int32_t(h),
		C.FNA3D_SurfaceFormat(format), C.int32_t(multiSampleCount), tex(t)))
}

func (lib) GenDepthStencilRenderbuffer(d unsafe.Pointer, w, h int32, format uint32, multiSampleCount int32) unsafe.Pointer {
	return unsafe.Pointer(C.FNA3D_GenDepthStencilRenderbuffer(dev(d), C.int32_t(w), C.int32_t(h),
		C.FNA3D_DepthFormat(format), C.int32_t(multiSampleCount)))
}

func (lib) AddDisposeRenderbuffer(d, rb unsafe.Pointer) {
	C.FNA3D_AddDisposeRenderbuffer(dev(d), (*C.FNA3D_Renderbuffer)(rb))
}

func (lib) GenVertexBuffer(d unsafe.Pointer, dynamic bool, usage uint32, size int32) unsafe.Pointer {
	return unsafe.Pointer(C.FNA3D_GenVertexBuffer(dev(d), bool8(dynamic), C.FNA3D_BufferUsage(usage), C.int32_t(size)))
}

func (lib) AddDisposeVertexBuffer(d, b unsafe.Pointer) {
	C.FNA3D_AddDisposeVertexBuffer(dev(d), buf(b))
}

func (lib) SetVertexBufferData(d, b unsafe.Pointer, offset int32, data []byte, elementCount, elementSize, vertexStride int32, options uint32) {
	p, _ := bytes(data)
	C.FNA3D_SetVertexBufferData(dev(d), buf(b), C.int32_t(offset), p,
		C.int32_t(elementCount), C.int32_t(elementSize), C.int32_t(vertexStride), C.FNA3D_SetDataOptions(options))
}

func (lib) GetVertexBufferData(d, b unsafe.Pointer, offset int32, data []byte, elementCount, elementSize, vertexStride int32) {
	p, _ := bytes(data)
	C.FNA3D_GetVertexBufferData(dev(d), buf(b), C.int32_t(offset), p,
		C.int32_t(elementCount), C.int32_t(elementSize), C.int32_t(vertexStride))
}

func (lib) GenIndexBuffer(d unsafe.Pointer, dynamic bool, usage uint32, size int32) unsafe.Pointer {
	return unsafe.Pointer(C.FNA3D_GenIndexBuffer(dev(d), bool8(dynamic), C.FNA3D_BufferUsage(usage), C.int32_t(size)))
}

func (lib) AddDisposeIndexBuffer(d, b unsafe.Pointer) { C.FNA3D_AddDisposeIndexBuffer(dev(d), buf(b)) }

func (lib) SetIndexBufferData(d, b unsafe.Pointer, offset int32, data []byte, options uint32) {
	p, n := bytes(data)
	C.FNA3D_SetIndexBufferData(dev(d), buf(b), C.int32_t(offset), p, n, C.FNA3D_SetDataOptions(options))
}

func (lib) GetIndexBufferData(d, b unsafe.Pointer, offset int32, data []byte) {
	p, n := bytes(data)
	C.FNA3D_GetIndexBufferData(dev(d), buf(b), C.int32_t(offset), p, n)
}

func (lib) CreateEffect(d unsafe.Pointer, code []byte) (unsafe.Pointer, unsafe.Pointer) {
	var e *C.FNA3D_Effect
	var data *C.MOJOSHADER_effect
	p, n := bytes(code)
	C.FNA3D_CreateEffect(dev(d), (*C.uint8_t)(p), C.uint32_t(n), &e, &data)
	return unsafe.Pointer(e), unsafe.Pointer(data)
}

func (lib) CloneEffect(d, src unsafe.Pointer) (unsafe.Pointer, unsafe.Pointer) {
	var e *C.FNA3D_Effect
	var data *C.MOJOSHADER_effect
	C.FNA3D_CloneEffect(dev(d), effect(src), &e, &data)
	return unsafe.Pointer(e), unsafe.Pointer(data)
}

func (lib) AddDisposeEffect(d, e unsafe.Pointer) { C.FNA3D_AddDisposeEffect(dev(d), effect(e)) }

func (lib) SetEffectTechnique(d, e, technique unsafe.Pointer) {
	C.FNA3D_SetEffectTechnique(dev(d), effect(e), (*C.MOJOSHADER_effectTechnique)(technique))
}

func (lib) ApplyEffect(d, e unsafe.Pointer, pass uint32, changes *sys.EffectStateChanges) {
	C.FNA3D_ApplyEffect(dev(d), effect(e), C.uint32_t(pass), (*C.MOJOSHADER_effectStateChanges)(unsafe.Pointer(changes)))
}

func (lib) BeginPassRestore(d, e unsafe.Pointer, changes *sys.EffectStateChanges) {
	C.FNA3D_BeginPassRestore(dev(d), effect(e), (*C.MOJOSHADER_effectStateChanges)(unsafe.Pointer(changes)))
}

func (lib) EndPassRestore(d, e unsafe.Pointer) { C.FNA3D_EndPassRestore(dev(d), effect(e)) }

func (lib) EffectErrors(data unsafe.Pointer) []EffectMessage {
	e := mojo(data)
	n := int(C.fna3d_effect_error_count(e))
	if n == 0 {
		return nil
	}
	msgs := make([]EffectMessage, 0, n)
	for i := range n {
		var file *C.char
		var pos C.int
		text := C.fna3d_effect_error(e, C.int(i), &file, &pos)
		msg := EffectMessage{Text: C.GoString(text), Position: int32(pos)}
		if file != nil {
			msg.Filename = C.GoString(file)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func (lib) EffectTechnique(data unsafe.Pointer, index int) unsafe.Pointer {
	return unsafe.Pointer(C.fna3d_effect_technique(mojo(data), C.int(index)))
}

func (lib) EffectParamNames(data unsafe.Pointer) []string {
	e := mojo(data)
	n := int(C.fna3d_effect_param_count(e))
	names := make([]string, 0, n)
	for i := range n {
		if name := C.fna3d_effect_param_name(e, C.int(i)); name != nil {
			names = append(names, C.GoString(name))
		}
	}
	return names
}

func (lib) SetEffectParam(data unsafe.Pointer, name string, values []float32) bool {
	if data == nil || len(values) == 0 {
		return false
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	ok := C.fna3d_effect_set_floats(mojo(data), cname,
		(*C.float)(unsafe.Pointer(unsafe.SliceData(values))), C.int(len(values)))
	return ok != 0
}

func (lib) CreateQuery(d unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.FNA3D_CreateQuery(dev(d)))
}

func (lib) AddDisposeQuery(d, q unsafe.Pointer) { C.FNA3D_AddDisposeQuery(dev(d), (*C.FNA3D_Query)(q)) }

func (lib) QueryBegin(d, q unsafe.Pointer) { C.FNA3D_QueryBegin(dev(d), (*C.FNA3D_Query)(q)) }

func (lib) QueryEnd(d, q unsafe.Pointer) { C.FNA3D_QueryEnd(dev(d), (*C.FNA3D_Query)(q)) }

func (lib) QueryComplete(d, q unsafe.Pointer) bool {
	return C.FNA3D_QueryComplete(dev(d), (*C.FNA3D_Query)(q)) != 0
}

func (lib) QueryPixelCount(d, q unsafe.Pointer) int32 {
	return int32(C.FNA3D_QueryPixelCount(dev(d), (*C.FNA3D_Query)(q)))
}

func (lib) SupportsDXT1(d unsafe.Pointer) bool { return C.FNA3D_SupportsDXT1(dev(d)) != 0 }

func (lib) SupportsS3TC(d unsafe.Pointer) bool { return C.FNA3D_SupportsS3TC(dev(d)) != 0 }

func (lib) SupportsHardwareInstancing(d unsafe.Pointer) bool {
	return C.FNA3D_SupportsHardwareInstancing(dev(d)) != 0
}

func (lib) SupportsNoOverwrite(d unsafe.Pointer) bool {
	return C.FNA3D_SupportsNoOverwrite(dev(d)) != 0
}

func (lib) GetMaxTextureSlots(d unsafe.Pointer) (int32, int32) {
	var t, vt C.int32_t
	C.FNA3D_GetMaxTextureSlots(dev(d), &t, &vt)
	return int32(t), int32(vt)
}

func (lib) GetMaxMultiSampleCount(d unsafe.Pointer, format uint32, multiSampleCount int32) int32 {
	return int32(C.FNA3D_GetMaxMultiSampleCount(dev(d), C.FNA3D_SurfaceFormat(format), C.int32_t(multiSampleCount)))
}

func (lib) SetStringMarker(d unsafe.Pointer, text string) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	C.FNA3D_SetStringMarker(dev(d), ctext)
}
