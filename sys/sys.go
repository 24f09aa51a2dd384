package sys

import "unsafe"

// PresentationParameters is FNA3D_PresentationParameters.
type PresentationParameters struct {
	BackBufferWidth      int32
	BackBufferHeight     int32
	BackBufferFormat     SurfaceFormat
	MultiSampleCount     int32
	DeviceWindowHandle   unsafe.Pointer
	IsFullScreen         uint8
	DepthStencilFormat   DepthFormat
	PresentationInterval PresentInterval
	DisplayOrientation   DisplayOrientation
	RenderTargetUsage    RenderTargetUsage
}

// Viewport is FNA3D_Viewport.
type Viewport struct {
	X, Y, W, H int32
	MinDepth   float32
	MaxDepth   float32
}

// Rect is FNA3D_Rect.
type Rect struct {
	X, Y, W, H int32
}

// Vec4 is FNA3D_Vec4.
type Vec4 struct {
	X, Y, Z, W float32
}

// Color is FNA3D_Color.
type Color struct {
	R, G, B, A uint8
}

// BlendState is FNA3D_BlendState.
type BlendState struct {
	ColorSourceBlend      Blend
	ColorDestinationBlend Blend
	ColorBlendFunction    BlendFunction
	AlphaSourceBlend      Blend
	AlphaDestinationBlend Blend
	AlphaBlendFunction    BlendFunction
	ColorWriteEnable      ColorWriteChannels
	ColorWriteEnable1     ColorWriteChannels
	ColorWriteEnable2     ColorWriteChannels
	ColorWriteEnable3     ColorWriteChannels
	BlendFactor           Color
	MultiSampleMask       int32
}

// DepthStencilState is FNA3D_DepthStencilState.
type DepthStencilState struct {
	DepthBufferEnable         uint8
	DepthBufferWriteEnable    uint8
	DepthBufferFunction       CompareFunction
	StencilEnable             uint8
	StencilMask               int32
	StencilWriteMask          int32
	TwoSidedStencilMode       uint8
	StencilFail               StencilOperation
	StencilDepthBufferFail    StencilOperation
	StencilPass               StencilOperation
	StencilFunction           CompareFunction
	CCWStencilFail            StencilOperation
	CCWStencilDepthBufferFail StencilOperation
	CCWStencilPass            StencilOperation
	CCWStencilFunction        CompareFunction
	ReferenceStencil          int32
}

// RasterizerState is FNA3D_RasterizerState.
type RasterizerState struct {
	FillMode             FillMode
	CullMode             CullMode
	DepthBias            float32
	SlopeScaleDepthBias  float32
	ScissorTestEnable    uint8
	MultiSampleAntiAlias uint8
}

// SamplerState is FNA3D_SamplerState.
type SamplerState struct {
	Filter                  TextureFilter
	AddressU                TextureAddressMode
	AddressV                TextureAddressMode
	AddressW                TextureAddressMode
	MipMapLevelOfDetailBias float32
	MaxAnisotropy           int32
	MaxMipLevel             int32
}

// VertexElement is FNA3D_VertexElement.
type VertexElement struct {
	Offset              int32
	VertexElementFormat VertexElementFormat
	VertexElementUsage  VertexElementUsage
	UsageIndex          int32
}

// VertexDeclaration is FNA3D_VertexDeclaration. Elements points at
// ElementCount consecutive VertexElement records.
type VertexDeclaration struct {
	VertexStride int32
	ElementCount int32
	Elements     unsafe.Pointer
}

// VertexBufferBinding is FNA3D_VertexBufferBinding.
type VertexBufferBinding struct {
	VertexBuffer      unsafe.Pointer
	VertexDeclaration VertexDeclaration
	VertexOffset      int32
	InstanceFrequency int32
}

// RenderTargetBinding is FNA3D_RenderTargetBinding.
//
// Union holds the anonymous C union: {width, height} when Type is
// RenderTargetType2D and {size, face} when Type is RenderTargetTypeCube.
type RenderTargetBinding struct {
	Type             uint8
	Union            [2]int32
	LevelCount       int32
	MultiSampleCount int32
	Texture          unsafe.Pointer
	ColorBuffer      unsafe.Pointer
}

// EffectStateChanges is MOJOSHADER_effectStateChanges. FNA3D fills it in
// ApplyEffect and BeginPassRestore; the pointed-to arrays are owned by
// MojoShader.
type EffectStateChanges struct {
	RenderStateChangeCount        uint32
	RenderStateChanges            unsafe.Pointer
	SamplerStateChangeCount       uint32
	SamplerStateChanges           unsafe.Pointer
	VertexSamplerStateChangeCount uint32
	VertexSamplerStateChanges     unsafe.Pointer
}
