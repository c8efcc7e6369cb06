package scene

import (
	"fmt"

	"github.com/SummersBrian/cmsc427ps3/types"
	"github.com/chewxy/math32"
)

type LightType uint8

const (
	DirectionalLight LightType = iota
	PointLight
)

func (lt LightType) String() string {
	switch lt {
	case DirectionalLight:
		return "directional"
	case PointLight:
		return "point"
	}
	return fmt.Sprintf("LightType(%d)", uint8(lt))
}

// Defines a scene light.
type Light struct {
	Type LightType

	// Light color/intensity.
	Color types.Color

	// Unit vector pointing from the lit surface towards the light
	// (directional lights only).
	Direction types.Vec3

	// Light position (point lights only).
	Position types.Vec3
}

// Create a directional light. The direction points towards the light.
func NewDirectionalLight(direction types.Vec3, color types.Color) (*Light, error) {
	dir, err := direction.TryNormalize()
	if err != nil {
		return nil, ErrDegenerateLight
	}
	return &Light{
		Type:      DirectionalLight,
		Color:     color,
		Direction: dir,
	}, nil
}

// Create a point light with inverse-square falloff.
func NewPointLight(position types.Vec3, color types.Color) (*Light, error) {
	if !position.IsFinite() {
		return nil, ErrDegenerateLight
	}
	return &Light{
		Type:     PointLight,
		Color:    color,
		Position: position,
	}, nil
}

// Get the unit direction from point towards the light and the distance to
// it. Directional lights are infinitely far away.
func (l *Light) Illuminate(point types.Vec3) (types.Vec3, float32, error) {
	switch l.Type {
	case PointLight:
		toLight := l.Position.Sub(point)
		dir, err := toLight.TryNormalize()
		if err != nil {
			return types.Vec3{}, 0, ErrCoincidentLight
		}
		return dir, toLight.Len(), nil
	default:
		return l.Direction, math32.Inf(1), nil
	}
}

// Get the distance attenuation factor for a light at the given distance.
func (l *Light) Falloff(distance float32) float32 {
	if l.Type != PointLight {
		return 1
	}
	return 1 / (distance * distance)
}
