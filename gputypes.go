package fna3d

import "github.com/gogpu/gputypes"

// Translations from FNA3D's XNA-flavoured constants to their WebGPU
// equivalents, for code that drives FNA3D and a WebGPU backend side by side.
// Every translation reports ok == false for a value that is not a declared
// variant or that WebGPU has no counterpart for; the returned value is then
// the zero value of the WebGPU type.

// WebGPU returns the WebGPU compare function.
func (c CompareFunction) WebGPU() (f gputypes.CompareFunction, ok bool) {
	switch c {
	case CompareFunctionAlways:
		return gputypes.CompareFunctionAlways, true
	case CompareFunctionNever:
		return gputypes.CompareFunctionNever, true
	case CompareFunctionLess:
		return gputypes.CompareFunctionLess, true
	case CompareFunctionLessEqual:
		return gputypes.CompareFunctionLessEqual, true
	case CompareFunctionEqual:
		return gputypes.CompareFunctionEqual, true
	case CompareFunctionGreaterEqual:
		return gputypes.CompareFunctionGreaterEqual, true
	case CompareFunctionGreater:
		return gputypes.CompareFunctionGreater, true
	case CompareFunctionNotEqual:
		return gputypes.CompareFunctionNotEqual, true
	}
	return f, false
}

// WebGPU returns the WebGPU blend factor. SourceAlphaSaturation maps to
// SrcAlphaSaturated and the blend-factor variants map to the constant
// factors.
func (b Blend) WebGPU() (f gputypes.BlendFactor, ok bool) {
	switch b {
	case BlendOne:
		return gputypes.BlendFactorOne, true
	case BlendZero:
		return gputypes.BlendFactorZero, true
	case BlendSourceColor:
		return gputypes.BlendFactorSrc, true
	case BlendInverseSourceColor:
		return gputypes.BlendFactorOneMinusSrc, true
	case BlendSourceAlpha:
		return gputypes.BlendFactorSrcAlpha, true
	case BlendInverseSourceAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha, true
	case BlendDestinationColor:
		return gputypes.BlendFactorDst, true
	case BlendInverseDestinationColor:
		return gputypes.BlendFactorOneMinusDst, true
	case BlendDestinationAlpha:
		return gputypes.BlendFactorDstAlpha, true
	case BlendInverseDestinationAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha, true
	case BlendBlendFactor:
		return gputypes.BlendFactorConstant, true
	case BlendInverseBlendFactor:
		return gputypes.BlendFactorOneMinusConstant, true
	case BlendSourceAlphaSaturation:
		return gputypes.BlendFactorSrcAlphaSaturated, true
	}
	return f, false
}

// WebGPU returns the WebGPU blend operation.
func (f BlendFunction) WebGPU() (op gputypes.BlendOperation, ok bool) {
	switch f {
	case BlendFunctionAdd:
		return gputypes.BlendOperationAdd, true
	case BlendFunctionSubtract:
		return gputypes.BlendOperationSubtract, true
	case BlendFunctionReverseSubtract:
		return gputypes.BlendOperationReverseSubtract, true
	case BlendFunctionMax:
		return gputypes.BlendOperationMax, true
	case BlendFunctionMin:
		return gputypes.BlendOperationMin, true
	}
	return op, false
}

// WebGPU returns the WebGPU cull mode. XNA names the face that is culled by
// its winding; with WebGPU's default counter-clockwise front face,
// clockwise faces are the back faces.
func (c CullMode) WebGPU() (m gputypes.CullMode, ok bool) {
	switch c {
	case CullModeNone:
		return gputypes.CullModeNone, true
	case CullModeCullClockwiseFace:
		return gputypes.CullModeBack, true
	case CullModeCullCounterClockwiseFace:
		return gputypes.CullModeFront, true
	}
	return m, false
}

// WebGPU returns the WebGPU primitive topology.
func (p PrimitiveType) WebGPU() (top gputypes.PrimitiveTopology, ok bool) {
	switch p {
	case PrimitiveTypeTriangleList:
		return gputypes.PrimitiveTopologyTriangleList, true
	case PrimitiveTypeTriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	case PrimitiveTypeLineList:
		return gputypes.PrimitiveTopologyLineList, true
	case PrimitiveTypeLineStrip:
		return gputypes.PrimitiveTopologyLineStrip, true
	case PrimitiveTypePointListExt:
		return gputypes.PrimitiveTopologyPointList, true
	}
	return top, false
}

// WebGPU returns the WebGPU address mode.
func (a TextureAddressMode) WebGPU() (m gputypes.AddressMode, ok bool) {
	switch a {
	case TextureAddressModeWrap:
		return gputypes.AddressModeRepeat, true
	case TextureAddressModeClamp:
		return gputypes.AddressModeClampToEdge, true
	case TextureAddressModeMirror:
		return gputypes.AddressModeMirrorRepeat, true
	}
	return m, false
}

// WebGPU returns the WebGPU stencil operation. XNA's saturating
// increment and decrement are WebGPU's clamping ones; the plain variants
// wrap.
func (s StencilOperation) WebGPU() (op gputypes.StencilOperation, ok bool) {
	switch s {
	case StencilOperationKeep:
		return gputypes.StencilOperationKeep, true
	case StencilOperationZero:
		return gputypes.StencilOperationZero, true
	case StencilOperationReplace:
		return gputypes.StencilOperationReplace, true
	case StencilOperationIncrement:
		return gputypes.StencilOperationIncrementWrap, true
	case StencilOperationDecrement:
		return gputypes.StencilOperationDecrementWrap, true
	case StencilOperationIncrementSaturation:
		return gputypes.StencilOperationIncrementClamp, true
	case StencilOperationDecrementSaturation:
		return gputypes.StencilOperationDecrementClamp, true
	case StencilOperationInvert:
		return gputypes.StencilOperationInvert, true
	}
	return op, false
}

// WebGPU returns the WebGPU index format.
func (s IndexElementSize) WebGPU() (f gputypes.IndexFormat, ok bool) {
	switch s {
	case IndexElementSizeBits16:
		return gputypes.IndexFormatUint16, true
	case IndexElementSizeBits32:
		return gputypes.IndexFormatUint32, true
	}
	return f, false
}

// WebGPU returns the WebGPU min, mag and mipmap filters of f. Anisotropic
// filtering is linear in all three; WebGPU sets anisotropy on the sampler.
func (f TextureFilter) WebGPU() (minFilter, magFilter, mipFilter gputypes.FilterMode, ok bool) {
	const (
		lin = gputypes.FilterModeLinear
		pt  = gputypes.FilterModeNearest
	)
	switch f {
	case TextureFilterLinear, TextureFilterAnisotropic:
		return lin, lin, lin, true
	case TextureFilterPoint:
		return pt, pt, pt, true
	case TextureFilterLinearMipPoint:
		return lin, lin, pt, true
	case TextureFilterPointMipLinear:
		return pt, pt, lin, true
	case TextureFilterMinLinearMagPointMipLinear:
		return lin, pt, lin, true
	case TextureFilterMinLinearMagPointMipPoint:
		return lin, pt, pt, true
	case TextureFilterMinPointMagLinearMipLinear:
		return pt, lin, lin, true
	case TextureFilterMinPointMagLinearMipPoint:
		return pt, lin, pt, true
	}
	return minFilter, magFilter, mipFilter, false
}

// WebGPU returns the WebGPU vertex format.
func (f VertexElementFormat) WebGPU() (vf gputypes.VertexFormat, ok bool) {
	switch f {
	case VertexElementFormatSingle:
		return gputypes.VertexFormatFloat32, true
	case VertexElementFormatVector2:
		return gputypes.VertexFormatFloat32x2, true
	case VertexElementFormatVector3:
		return gputypes.VertexFormatFloat32x3, true
	case VertexElementFormatVector4:
		return gputypes.VertexFormatFloat32x4, true
	case VertexElementFormatColor:
		return gputypes.VertexFormatUnorm8x4, true
	case VertexElementFormatByte4:
		return gputypes.VertexFormatUint8x4, true
	case VertexElementFormatShort2:
		return gputypes.VertexFormatSint16x2, true
	case VertexElementFormatShort4:
		return gputypes.VertexFormatSint16x4, true
	case VertexElementFormatNormalizedShort2:
		return gputypes.VertexFormatSnorm16x2, true
	case VertexElementFormatNormalizedShort4:
		return gputypes.VertexFormatSnorm16x4, true
	case VertexElementFormatHalfVector2:
		return gputypes.VertexFormatFloat16x2, true
	case VertexElementFormatHalfVector4:
		return gputypes.VertexFormatFloat16x4, true
	}
	return vf, false
}

// WebGPU returns the WebGPU texture format of s. Packed 16-bit formats and
// the 16-bit unorm formats have no core WebGPU equivalent. HdrBlendable is
// a half-float target in FNA3D.
func (s SurfaceFormat) WebGPU() (gputypes.TextureFormat, bool) {
	switch s {
	case SurfaceFormatColor:
		return gputypes.TextureFormatRGBA8Unorm, true
	case SurfaceFormatColorBgraExt:
		return gputypes.TextureFormatBGRA8Unorm, true
	case SurfaceFormatDxt1:
		return gputypes.TextureFormatBC1RGBAUnorm, true
	case SurfaceFormatDxt3:
		return gputypes.TextureFormatBC2RGBAUnorm, true
	case SurfaceFormatDxt5:
		return gputypes.TextureFormatBC3RGBAUnorm, true
	case SurfaceFormatNormalizedByte2:
		return gputypes.TextureFormatRG8Snorm, true
	case SurfaceFormatNormalizedByte4:
		return gputypes.TextureFormatRGBA8Snorm, true
	case SurfaceFormatRgba1010102:
		return gputypes.TextureFormatRGB10A2Unorm, true
	case SurfaceFormatAlpha8:
		return gputypes.TextureFormatR8Unorm, true
	case SurfaceFormatSingle:
		return gputypes.TextureFormatR32Float, true
	case SurfaceFormatVector2:
		return gputypes.TextureFormatRG32Float, true
	case SurfaceFormatVector4:
		return gputypes.TextureFormatRGBA32Float, true
	case SurfaceFormatHalfSingle:
		return gputypes.TextureFormatR16Float, true
	case SurfaceFormatHalfVector2:
		return gputypes.TextureFormatRG16Float, true
	case SurfaceFormatHalfVector4, SurfaceFormatHdrBlendable:
		return gputypes.TextureFormatRGBA16Float, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// WebGPU returns the WebGPU depth format of d. DepthFormatNone reports
// false.
func (d DepthFormat) WebGPU() (gputypes.TextureFormat, bool) {
	switch d {
	case DepthFormatD16:
		return gputypes.TextureFormatDepth16Unorm, true
	case DepthFormatD24:
		return gputypes.TextureFormatDepth24Plus, true
	case DepthFormatD24S8:
		return gputypes.TextureFormatDepth24PlusStencil8, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// WebGPU returns the WebGPU color write mask. Bits other than the four
// channels are dropped and reported with ok == false.
func (c ColorWriteChannels) WebGPU() (m gputypes.ColorWriteMask, ok bool) {
	if c.Contains(ColorWriteChannelsRed) {
		m |= gputypes.ColorWriteMaskRed
	}
	if c.Contains(ColorWriteChannelsGreen) {
		m |= gputypes.ColorWriteMaskGreen
	}
	if c.Contains(ColorWriteChannelsBlue) {
		m |= gputypes.ColorWriteMaskBlue
	}
	if c.Contains(ColorWriteChannelsAlpha) {
		m |= gputypes.ColorWriteMaskAlpha
	}
	return m, c&^ColorWriteChannelsAll == 0
}
