package abi

// Bool decodes a C boolean stored as uint8. Any non-zero byte is true.
func Bool(b uint8) bool { return b != 0 }

// FromBool encodes a Go bool as the 0/1 byte FNA3D expects.
func FromBool(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
