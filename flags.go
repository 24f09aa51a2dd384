package fna3d

import (
	"math/bits"
	"strconv"
	"strings"
)

// flagName names one declared value of a flag set. Declared values include
// single bits and, for some sets, the empty and full combinations.
type flagName struct {
	bits uint32
	name string
}

// flagString formats v. A value equal to a declared combination prints its
// name; anything else prints the declared single bits joined by "|", followed
// by the undeclared remainder in hex.
func flagString(v uint32, names []flagName) string {
	for _, n := range names {
		if n.bits == v {
			return n.name
		}
	}
	if v == 0 {
		return "0"
	}

	var b strings.Builder
	rest := v
	for _, n := range names {
		if bits.OnesCount32(n.bits) != 1 || v&n.bits == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
		rest &^= n.bits
	}
	if rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString("0x")
		b.WriteString(strconv.FormatUint(uint64(rest), 16))
	}
	return b.String()
}
