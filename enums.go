package fna3d

//go:generate go run ./cmd/fna3dgen generate

// Size returns the size in bytes of one pixel of s, or of one 4x4 block for
// the DXT formats. HdrBlendable is a render-target-only format with a
// backend-defined layout; its size is 0.
func (s SurfaceFormat) Size() int {
	switch s {
	case SurfaceFormatDxt1:
		return 8
	case SurfaceFormatDxt3, SurfaceFormatDxt5:
		return 16
	case SurfaceFormatAlpha8:
		return 1
	case SurfaceFormatBgr565, SurfaceFormatBgra4444, SurfaceFormatBgra5551,
		SurfaceFormatHalfSingle, SurfaceFormatNormalizedByte2:
		return 2
	case SurfaceFormatColor, SurfaceFormatSingle, SurfaceFormatRg32,
		SurfaceFormatHalfVector2, SurfaceFormatNormalizedByte4,
		SurfaceFormatRgba1010102, SurfaceFormatColorBgraExt:
		return 4
	case SurfaceFormatHalfVector4, SurfaceFormatRgba64, SurfaceFormatVector2:
		return 8
	case SurfaceFormatVector4:
		return 16
	default:
		return 0
	}
}

// IsCompressed reports whether s is a block-compressed format.
func (s SurfaceFormat) IsCompressed() bool {
	return s == SurfaceFormatDxt1 || s == SurfaceFormatDxt3 || s == SurfaceFormatDxt5
}

// DataSize returns the number of bytes of a w x h image in format s.
func (s SurfaceFormat) DataSize(w, h int) int {
	if s.IsCompressed() {
		return ((w + 3) / 4) * ((h + 3) / 4) * s.Size()
	}
	return w * h * s.Size()
}

// Size returns the size in bytes of one element of format f.
func (f VertexElementFormat) Size() int {
	switch f {
	case VertexElementFormatSingle, VertexElementFormatColor, VertexElementFormatByte4,
		VertexElementFormatShort2, VertexElementFormatNormalizedShort2,
		VertexElementFormatHalfVector2:
		return 4
	case VertexElementFormatVector2, VertexElementFormatShort4,
		VertexElementFormatNormalizedShort4, VertexElementFormatHalfVector4:
		return 8
	case VertexElementFormatVector3:
		return 12
	case VertexElementFormatVector4:
		return 16
	default:
		return 0
	}
}

// Size returns the size in bytes of one index.
func (s IndexElementSize) Size() int {
	if s == IndexElementSizeBits32 {
		return 4
	}
	return 2
}
