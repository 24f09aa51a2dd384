package mojo

import (
	"errors"
	"io/fs"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/fna3d"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func nearVec(a, b [4]float32) bool {
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestOrthographicCorners(t *testing.T) {
	m := Orthographic(1280, 720)
	if !near(m[0], 0.0015625) || !near(m[5], -0.0027777778) {
		t.Errorf("scale = %v, %v", m[0], m[5])
	}

	tests := []struct {
		name string
		in   [4]float32
		want [4]float32
	}{
		{"top left", [4]float32{0, 0, 0, 1}, [4]float32{-1, 1, 0, 1}},
		{"bottom right", [4]float32{1280, 720, 0, 1}, [4]float32{1, -1, 0, 1}},
		{"centre", [4]float32{640, 360, 0.5, 1}, [4]float32{0, 0, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Apply(tt.in); !nearVec(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrthographicOffCenter(t *testing.T) {
	m := OrthographicOffCenter(0, 800, 600, 0, 0, 1)
	if got := m.Apply([4]float32{0, 0, 0, 1}); !nearVec(got, [4]float32{-1, 1, 0, 1}) {
		t.Errorf("top left -> %v", got)
	}
	if got := m.Apply([4]float32{800, 600, -1, 1}); !nearVec(got, [4]float32{1, -1, 1, 1}) {
		t.Errorf("bottom right at far -> %v", got)
	}
}

func TestMatrixAlgebra(t *testing.T) {
	m := OrthographicOffCenter(-3, 5, -2, 7, 0.5, 10)
	id := Identity()
	if m.Mul(id) != m || id.Mul(m) != m {
		t.Error("identity is not neutral")
	}
	if m.Transpose().Transpose() != m {
		t.Error("transpose is not an involution")
	}
	if m.Transpose().At(0, 3) != m.At(3, 0) {
		t.Error("At does not follow the transpose")
	}

	scale := Matrix{2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 0, 0, 1}
	move := Matrix{1, 0, 0, 10, 0, 1, 0, 20, 0, 0, 1, 30, 0, 0, 0, 1}
	v := [4]float32{1, 1, 1, 1}
	if got := move.Mul(scale).Apply(v); got != [4]float32{12, 23, 34, 1} {
		t.Errorf("move×scale = %v", got)
	}
	if got := move.Apply(scale.Apply(v)); got != [4]float32{12, 23, 34, 1} {
		t.Errorf("move(scale(v)) = %v", got)
	}
}

func TestLoadEffectMissingFile(t *testing.T) {
	_, err := LoadEffect(nil, filepath.Join(t.TempDir(), "missing.fxb"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadEffect(missing) = %v, want fs.ErrNotExist", err)
	}
}

func TestSetProjectionNilEffect(t *testing.T) {
	if err := SetProjection(nil, Identity()); !errors.Is(err, fna3d.ErrNilResource) {
		t.Errorf("SetProjection(nil) = %v, want ErrNilResource", err)
	}
	if !errors.Is(ErrParamNotFound, fna3d.ErrParamNotFound) {
		t.Error("ErrParamNotFound is not the fna3d sentinel")
	}
}
