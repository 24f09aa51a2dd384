package abi

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
)

// Kind is the classification of a raw constant set.
type Kind uint8

const (
	// KindEnum is a set of mutually exclusive values.
	KindEnum Kind = iota
	// KindFlags is a set of OR-combinable bit positions.
	KindFlags
)

// String returns "enum" or "flags".
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindFlags:
		return "flags"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Errors returned by the table checks.
var (
	// ErrEmptySet is returned for a constant set without values.
	ErrEmptySet = errors.New("abi: empty constant set")

	// ErrDuplicateValue is returned when two constants share a raw value.
	ErrDuplicateValue = errors.New("abi: duplicate raw value")

	// ErrNoZeroVariant is returned when an enumeration does not declare raw 0.
	ErrNoZeroVariant = errors.New("abi: enumeration does not declare raw 0")

	// ErrNotAFlag is returned when a flag set value is neither a single bit
	// nor a union of declared single bits.
	ErrNotAFlag = errors.New("abi: value is not a flag")
)

// Classify reports KindFlags when every non-zero value is a single bit or
// the union of all single bits in values, and at least one single bit
// exists. Everything else is KindEnum.
//
// A set such as {0, 1, 2} is ambiguous on its own; Classify says flags, and
// the generator trusts the declared kind over this answer. Classify exists
// so that the declared kind can be cross-checked, not to pick it.
func Classify(values []uint32) Kind {
	if checkFlags(values) == nil {
		return KindFlags
	}
	return KindEnum
}

// CheckEnum verifies an enumeration table: values are distinct and raw 0 is
// declared, so that the Go zero value of the typed enum is a valid variant.
func CheckEnum(name string, values []uint32) error {
	if len(values) == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptySet)
	}
	if v, ok := firstDuplicate(values); ok {
		return fmt.Errorf("%s: %w %d", name, ErrDuplicateValue, v)
	}
	if !slices.Contains(values, 0) {
		return fmt.Errorf("%s: %w", name, ErrNoZeroVariant)
	}
	return nil
}

// CheckFlags verifies a flag set table. Zero is allowed (the empty set), a
// single bit is a flag, and a multi-bit value is allowed only when it is
// the union of every single bit in the table (ALL = R|G|B|A).
func CheckFlags(name string, values []uint32) error {
	if err := checkFlags(values); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func checkFlags(values []uint32) error {
	if len(values) == 0 {
		return ErrEmptySet
	}
	if v, ok := firstDuplicate(values); ok {
		return fmt.Errorf("%w %d", ErrDuplicateValue, v)
	}
	var single uint32
	for _, v := range values {
		if bits.OnesCount32(v) == 1 {
			single |= v
		}
	}
	if single == 0 {
		return fmt.Errorf("%w: no single-bit values", ErrNotAFlag)
	}
	for _, v := range values {
		if v == 0 || bits.OnesCount32(v) == 1 {
			continue
		}
		if v != single {
			return fmt.Errorf("%w: %#x", ErrNotAFlag, v)
		}
	}
	return nil
}

func firstDuplicate(values []uint32) (uint32, bool) {
	seen := make(map[uint32]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return 0, false
}

// Dense reports whether values are exactly 0..len(values)-1 in some order.
// Dense enumerations get array-backed name tables from the generator.
func Dense(values []uint32) bool {
	seen := make([]bool, len(values))
	for _, v := range values {
		if v >= uint32(len(values)) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
