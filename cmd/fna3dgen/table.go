package main

import (
	"errors"
	"fmt"
	"math/bits"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/fna3d/internal/abi"
)

// policyPreserve is the only unknown-bit policy: flag sets keep bits
// FNA3D adds after this table was written.
const policyPreserve = "preserve"

var (
	errUnknownKind   = errors.New("fna3dgen: unknown set kind")
	errUnknownPolicy = errors.New("fna3dgen: unknown-bit policy must be preserve")
	errNotDense      = errors.New("fna3dgen: enumeration values must be 0..n-1")
)

// table is the parsed constants.yaml.
type table struct {
	Sets []constantSet `yaml:"sets"`
}

// constantSet is one FNA3D constant set.
type constantSet struct {
	Name    string  `yaml:"name"`
	C       string  `yaml:"c"`
	Kind    string  `yaml:"kind"`
	Unknown string  `yaml:"unknown"`
	Doc     string  `yaml:"doc"`
	Values  []value `yaml:"values"`
}

// value is one named constant.
type value struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	C     string `yaml:"c"`
	Value uint32 `yaml:"value"`
}

func loadTable(path string) (*table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return parseTable(data)
}

func parseTable(data []byte) (*table, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	return &t, nil
}

var titler = cases.Title(language.Und)

// goName turns a snake_case key into an exported identifier fragment.
func goName(key string) string {
	var b strings.Builder
	for _, part := range strings.Split(key, "_") {
		b.WriteString(titler.String(part))
	}
	return b.String()
}

// TypeName is the Go type of the set.
func (s constantSet) TypeName() string { return goName(s.Name) }

// Receiver is the method receiver name used for the set's type.
func (s constantSet) Receiver() string { return strings.ToLower(s.TypeName()[:1]) }

// lowerName is the unexported prefix for package-level tables.
func (s constantSet) lowerName() string {
	n := s.TypeName()
	return strings.ToLower(n[:1]) + n[1:]
}

// NamesVar is the name table variable.
func (s constantSet) NamesVar() string { return s.lowerName() + "Names" }

// KnownConst is the declared-bits constant of a flag set.
func (s constantSet) KnownConst() string { return s.lowerName() + "Known" }

// Label is the String() form of a value.
func (v value) Label() string {
	if v.Name != "" {
		return v.Name
	}
	return goName(v.Key)
}

// GoName is the full constant name of v in set s.
func (s constantSet) GoName(v value) string { return s.TypeName() + v.Label() }

func (s constantSet) raw() []uint32 {
	out := make([]uint32, len(s.Values))
	for i, v := range s.Values {
		out[i] = v.Value
	}
	return out
}

// KnownMask is the union of the set's single-bit values.
func (s constantSet) KnownMask() uint32 {
	var m uint32
	for _, v := range s.Values {
		if bits.OnesCount32(v.Value) == 1 {
			m |= v.Value
		}
	}
	return m
}

// SingleBits returns the values that are exactly one bit.
func (s constantSet) SingleBits() []value {
	var out []value
	for _, v := range s.Values {
		if bits.OnesCount32(v.Value) == 1 {
			out = append(out, v)
		}
	}
	return out
}

// IsFlags reports whether the set was declared as a flag set.
func (s constantSet) IsFlags() bool { return s.Kind == abi.KindFlags.String() }

// Literal formats a raw value the way the sys file prints it.
func (s constantSet) Literal(v uint32) string {
	if s.IsFlags() {
		return fmt.Sprintf("%#x", v)
	}
	return fmt.Sprintf("%d", v)
}

// validate applies the classification rules to every set. The declared
// kind wins; the checks only make sure the values agree with it.
func (t *table) validate() error {
	var errs []error
	for _, s := range t.Sets {
		name := s.TypeName()
		switch s.Kind {
		case abi.KindEnum.String():
			if err := abi.CheckEnum(name, s.raw()); err != nil {
				errs = append(errs, err)
				continue
			}
			if !abi.Dense(s.raw()) {
				errs = append(errs, fmt.Errorf("%s: %w", name, errNotDense))
			}
		case abi.KindFlags.String():
			if err := abi.CheckFlags(name, s.raw()); err != nil {
				errs = append(errs, err)
			}
			if s.Unknown != "" && s.Unknown != policyPreserve {
				errs = append(errs, fmt.Errorf("%s: %w", name, errUnknownPolicy))
			}
		default:
			errs = append(errs, fmt.Errorf("%s: %w %q", name, errUnknownKind, s.Kind))
		}
	}
	return errors.Join(errs...)
}

// enums returns the enumeration sets in table order.
func (t *table) enums() []constantSet {
	var out []constantSet
	for _, s := range t.Sets {
		if !s.IsFlags() {
			out = append(out, s)
		}
	}
	return out
}

// flags returns the flag sets in table order.
func (t *table) flags() []constantSet {
	var out []constantSet
	for _, s := range t.Sets {
		if s.IsFlags() {
			out = append(out, s)
		}
	}
	return out
}
