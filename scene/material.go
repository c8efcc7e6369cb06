package scene

import (
	"github.com/SummersBrian/cmsc427ps3/types"
	"github.com/chewxy/math32"
)

// Defines a scene material.
type Material struct {
	Name string

	// Base (diffuse) color.
	Color types.Color

	// Fraction of specular reflection. A zero value yields a purely
	// diffuse surface; any positive value also enables mirror reflection.
	SpecularFrac float32

	// Phong exponent (shininess).
	PhongExp float32
}

// Create a new material.
func NewMaterial(name string, color types.Color, specularFrac, phongExp float32) (*Material, error) {
	mat := &Material{
		Name:         name,
		Color:        color,
		SpecularFrac: specularFrac,
		PhongExp:     phongExp,
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	return mat, nil
}

// Validate material parameters.
func (m *Material) Validate() error {
	if math32.IsNaN(m.SpecularFrac) || m.SpecularFrac < 0 || m.SpecularFrac > 1 {
		return ErrInvalidMaterial
	}
	if !types.IsFinite(m.PhongExp) || m.PhongExp < 0 {
		return ErrInvalidMaterial
	}
	return nil
}

// Returns true if surfaces using this material reflect incoming rays.
func (m *Material) IsReflective() bool {
	return m.SpecularFrac > 0
}
