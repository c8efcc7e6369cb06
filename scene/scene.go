package scene

import (
	"bytes"
	"fmt"

	"github.com/SummersBrian/cmsc427ps3/types"
	"github.com/olekukonko/tablewriter"
)

// Scene holds everything needed to render a frame. Once built, a scene is
// never modified by the renderer.
type Scene struct {
	Camera *Camera

	Materials []*Material
	Shapes    []*Shape
	Lights    []*Light

	Ambient types.Color
}

func NewScene() *Scene {
	return &Scene{
		Camera:    NewCamera(45),
		Materials: make([]*Material, 0),
		Shapes:    make([]*Shape, 0),
		Lights:    make([]*Light, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a material to the scene.
func (s *Scene) AddMaterial(material *Material) error {
	for _, mat := range s.Materials {
		if mat == material {
			return ErrDuplicateMaterial
		}
	}
	s.Materials = append(s.Materials, material)
	return nil
}

// Add a shape to the scene. The shape material must already be part of the
// scene.
func (s *Scene) AddShape(shape *Shape) error {
	for _, existing := range s.Shapes {
		if existing == shape {
			return fmt.Errorf("scene: shape already added")
		}
	}
	if shape.Material == nil {
		return ErrNoMaterial
	}
	for _, mat := range s.Materials {
		if mat == shape.Material {
			s.Shapes = append(s.Shapes, shape)
			return nil
		}
	}

	return fmt.Errorf("scene: shape references unknown material; ensure that the material is added to the scene before adding the shape")
}

// Add a light to the scene.
func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// Find a material by name.
func (s *Scene) Material(name string) *Material {
	for _, mat := range s.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Generate a table with scene statistics.
func (s *Scene) Stats() string {
	shapeCount := make(map[ShapeType]int)
	for _, shape := range s.Shapes {
		shapeCount[shape.Type]++
	}
	lightCount := make(map[LightType]int)
	for _, light := range s.Lights {
		lightCount[light.Type]++
	}
	reflective := 0
	for _, mat := range s.Materials {
		if mat.IsReflective() {
			reflective++
		}
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Asset Type", "Count", "Details"})
	for _, st := range []ShapeType{SphereShape, PlaneShape, TriangleShape} {
		table.Append([]string{st.String() + "s", fmt.Sprintf("%d", shapeCount[st]), ""})
	}
	for _, lt := range []LightType{DirectionalLight, PointLight} {
		table.Append([]string{lt.String() + " lights", fmt.Sprintf("%d", lightCount[lt]), ""})
	}
	table.Append([]string{"materials", fmt.Sprintf("%d", len(s.Materials)), fmt.Sprintf("%d reflective", reflective)})
	table.Append([]string{"ambient", "", fmt.Sprintf("(%.3f, %.3f, %.3f)", s.Ambient[0], s.Ambient[1], s.Ambient[2])})
	if s.Camera != nil {
		table.Append([]string{"camera", "", s.Camera.String()})
	}
	table.SetFooter([]string{"", "TOTAL SHAPES", fmt.Sprintf("%d", len(s.Shapes))})
	table.Render()

	return buf.String()
}
