package fna3d

import (
	"fmt"
	"reflect"
)

// enumFromRaw returns v as T when names declares it. Generated XFromRaw
// functions are thin wrappers around it.
func enumFromRaw[T ~uint32](typ string, v uint32, names []string) (T, error) {
	if !enumValid(v, names) {
		return 0, &UnknownVariantError{Type: typ, Value: v}
	}
	return T(v), nil
}

// enumValid reports whether v indexes a declared name. Name tables are
// dense, so the index is the raw value.
func enumValid(v uint32, names []string) bool {
	return uint64(v) < uint64(len(names)) && names[v] != ""
}

func enumString(typ string, v uint32, names []string) string {
	if enumValid(v, names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

// enumValue is satisfied by every generated enumeration type.
type enumValue interface {
	~uint32
	IsValid() bool
}

// setEnum stores v in dst when v is a declared variant. A forged value
// leaves dst untouched.
func setEnum[T enumValue](dst *uint32, v T) error {
	if !v.IsValid() {
		return &UnknownVariantError{Type: reflect.TypeFor[T]().Name(), Value: uint32(v)}
	}
	*dst = uint32(v)
	return nil
}

// checkEnum reports whether the raw field v decodes as T.
func checkEnum[T enumValue](field string, v uint32) error {
	if !T(v).IsValid() {
		return fmt.Errorf("%s: %w", field, &UnknownVariantError{Type: reflect.TypeFor[T]().Name(), Value: v})
	}
	return nil
}

// Checked returns v, or an *UnknownVariantError when v is not a declared
// variant. Wrapper getters do not check the fields they read, so a record
// filled through Raw or by FNA3D can be read strictly with
//
//	f, err := fna3d.Checked(s.DepthBufferFunction())
func Checked[T enumValue](v T) (T, error) {
	if !v.IsValid() {
		return v, &UnknownVariantError{Type: reflect.TypeFor[T]().Name(), Value: uint32(v)}
	}
	return v, nil
}
