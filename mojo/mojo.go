// Package mojo has helpers for MojoShader effects loaded through fna3d.
//
// MojoShader reads matrices column-major: a position is a column vector
// and the translation sits in the last element of each of the first three
// rows of the flat array. Matrices built by row-major frameworks must be
// transposed before they are set.
//
// Loading FNA's SpriteEffect.fxb and giving it a pixel-space projection:
//
//	effect, err := mojo.LoadEffect(dev, "SpriteEffect.fxb")
//	if err != nil {
//		return err
//	}
//	if err := mojo.SetProjection(effect, mojo.Orthographic(1280, 720)); err != nil {
//		return err
//	}
package mojo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/fna3d"
)

// ProjectionParam is the parameter stock FNA effects read the
// world-view-projection matrix from.
const ProjectionParam = "MatrixTransform"

// ErrParamNotFound is returned when an effect lacks a parameter.
var ErrParamNotFound = fna3d.ErrParamNotFound

// Matrix is a 4x4 float matrix in the layout MojoShader uploads.
// Element (row r, column c) is m[r*4+c].
type Matrix [16]float32

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Orthographic maps pixel coordinates with the origin at the top left of a
// w x h viewport to clip space. Depth passes through unchanged.
func Orthographic(w, h float32) Matrix {
	return Matrix{
		2 / w, 0, 0, -1,
		0, -2 / h, 0, 1,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// OrthographicOffCenter is XNA's Matrix.CreateOrthographicOffCenter in
// MojoShader layout.
func OrthographicOffCenter(left, right, bottom, top, near, far float32) Matrix {
	return Matrix{
		2 / (right - left), 0, 0, (left + right) / (left - right),
		0, 2 / (top - bottom), 0, (top + bottom) / (bottom - top),
		0, 0, 1 / (near - far), near / (near - far),
		0, 0, 0, 1,
	}
}

// At returns element (r, c).
func (m Matrix) At(r, c int) float32 { return m[r*4+c] }

// Transpose swaps rows and columns.
func (m Matrix) Transpose() Matrix {
	var t Matrix
	for r := range 4 {
		for c := range 4 {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

// Mul returns m × n.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for r := range 4 {
		for c := range 4 {
			var sum float32
			for k := range 4 {
				sum += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// Apply transforms the column vector (x, y, z, w).
func (m Matrix) Apply(v [4]float32) [4]float32 {
	var out [4]float32
	for r := range 4 {
		out[r] = m[r*4]*v[0] + m[r*4+1]*v[1] + m[r*4+2]*v[2] + m[r*4+3]*v[3]
	}
	return out
}

// LoadEffect reads a compiled effect (.fxb) and creates it on dev. The
// first technique is selected.
func LoadEffect(dev *fna3d.Device, path string) (*fna3d.Effect, error) {
	code, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("mojo: read effect: %w", err)
	}
	e, err := dev.CreateEffect(code)
	if err != nil {
		return nil, fmt.Errorf("mojo: %s: %w", filepath.Base(path), err)
	}
	return e, nil
}

// SetProjection writes m into the effect's MatrixTransform parameter.
func SetProjection(e *fna3d.Effect, m Matrix) error {
	return e.SetParam(ProjectionParam, m[:])
}
