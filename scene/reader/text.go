package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SummersBrian/cmsc427ps3/asset"
	"github.com/SummersBrian/cmsc427ps3/log"
	"github.com/SummersBrian/cmsc427ps3/scene"
	"github.com/SummersBrian/cmsc427ps3/types"
)

// Scene files may include other scene files; this bounds the include
// chain so that cyclic includes fail instead of recursing forever.
const maxIncludeDepth = 16

const defaultMaterialName = "default"

type textSceneReader struct {
	logger log.Logger

	// The scene being populated.
	scene *scene.Scene

	// Camera settings; the camera basis is built once parsing completes.
	cameraEye  types.Vec3
	cameraLook types.Vec3
	cameraUp   types.Vec3
	cameraFov  float32

	// The material whose properties are currently being defined
	// (via newmtl) and the material assigned to new shapes (via usemtl).
	defMaterial *scene.Material
	useMaterial *scene.Material

	// Mesh vertices referenced by face definitions.
	vertexList []types.Vec3

	// An error stack that provides additional error information when
	// scene files include other files.
	errStack []string
}

// Create a new text scene reader.
func newTextSceneReader() Reader {
	return &textSceneReader{
		logger:     log.New("scene reader"),
		scene:      scene.NewScene(),
		cameraEye:  types.XYZ(0, 0, 0),
		cameraLook: types.XYZ(0, 0, -1),
		cameraUp:   types.XYZ(0, 1, 0),
		cameraFov:  45.0,
		vertexList: make([]types.Vec3, 0),
		errStack:   make([]string, 0),
	}
}

// Read scene definition.
func (r *textSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	err := r.parse(sceneRes, 0)
	if err != nil {
		return nil, err
	}

	for _, mat := range r.scene.Materials {
		if err = mat.Validate(); err != nil {
			return nil, r.emitError("", 0, `material "%s": %s`, mat.Name, err.Error())
		}
	}

	cam := scene.NewCamera(r.cameraFov)
	if err = cam.LookAt(r.cameraEye, r.cameraLook, r.cameraUp); err != nil {
		return nil, r.emitError("", 0, "invalid camera setup: %s", err.Error())
	}
	if !(cam.FOV > 0 && cam.FOV < 180) {
		return nil, r.emitError("", 0, "invalid camera setup: %s", scene.ErrInvalidFOV.Error())
	}
	r.scene.SetCamera(cam)

	if len(r.scene.Shapes) == 0 {
		r.logger.Warning("scene does not define any shapes")
	}
	if len(r.scene.Lights) == 0 {
		r.logger.Warning("scene does not define any lights; only the ambient term will be visible")
	}

	r.logger.Noticef(
		"parsed scene with %d shapes, %d lights and %d materials in %d ms",
		len(r.scene.Shapes), len(r.scene.Lights), len(r.scene.Materials),
		time.Since(start).Nanoseconds()/1e6,
	)

	return r.scene, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *textSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = strings.Trim(
			fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	} else {
		errMsg = strings.Trim(
			fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	}

	return fmt.Errorf("%s", errMsg)
}

// Push a frame to the error stack.
func (r *textSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *textSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Select the material for a new shape, creating a default material if the
// scene has not selected one yet.
func (r *textSceneReader) shapeMaterial() (*scene.Material, error) {
	if r.useMaterial != nil {
		return r.useMaterial, nil
	}

	mat := r.scene.Material(defaultMaterialName)
	if mat == nil {
		mat = &scene.Material{
			Name:  defaultMaterialName,
			Color: types.RGB(0.7, 0.7, 0.7),
		}
		if err := r.scene.AddMaterial(mat); err != nil {
			return nil, err
		}
	}
	r.useMaterial = mat
	return mat, nil
}

// Append a shape created by one of the scene shape constructors.
func (r *textSceneReader) addShape(shape *scene.Shape, err error) error {
	if err != nil {
		return err
	}
	return r.scene.AddShape(shape)
}

// Parse a scene file.
func (r *textSceneReader) parse(res *asset.Resource, depth int) error {
	var lineNum int = 0
	var err error

	// Face indices are relative to the vertices defined by the file
	// containing the face.
	relVertexOffset := len(r.vertexList)

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
			}
			if depth+1 >= maxIncludeDepth {
				return r.emitError(res.Path(), lineNum, "max include depth (%d) exceeded", maxIncludeDepth)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [%s]", res.Path(), lineNum, lineTokens[0]))

			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			err = r.parse(incRes, depth+1)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "camera_eye":
			r.cameraEye, err = parseVec3(lineTokens)
		case "camera_look":
			r.cameraLook, err = parseVec3(lineTokens)
		case "camera_up":
			r.cameraUp, err = parseVec3(lineTokens)
		case "camera_fov":
			r.cameraFov, err = parseFloat32(lineTokens)
		case "ambient":
			r.scene.Ambient, err = parseColor(lineTokens, 1)
		case "newmtl":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "newmtl"; expected 1 argument; got %d`, len(lineTokens)-1)
			}
			if r.scene.Material(lineTokens[1]) != nil {
				return r.emitError(res.Path(), lineNum, `material "%s" already defined`, lineTokens[1])
			}

			r.defMaterial = &scene.Material{Name: lineTokens[1]}
			err = r.scene.AddMaterial(r.defMaterial)
		case "Kd", "Ks", "Ns":
			if r.defMaterial == nil {
				return r.emitError(res.Path(), lineNum, `got "%s" without a "newmtl"`, lineTokens[0])
			}

			switch lineTokens[0] {
			case "Kd":
				r.defMaterial.Color, err = parseColor(lineTokens, 1)
			case "Ks":
				r.defMaterial.SpecularFrac, err = parseFloat32(lineTokens)
			case "Ns":
				r.defMaterial.PhongExp, err = parseFloat32(lineTokens)
			}
		case "usemtl":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "usemtl"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			mat := r.scene.Material(lineTokens[1])
			if mat == nil {
				return r.emitError(res.Path(), lineNum, `undefined material with name "%s"`, lineTokens[1])
			}
			r.useMaterial = mat
		case "sphere":
			var args []float32
			var mat *scene.Material
			if args, err = parseFloats(lineTokens, 4); err == nil {
				if mat, err = r.shapeMaterial(); err == nil {
					err = r.addShape(scene.NewSphere(types.XYZ(args[0], args[1], args[2]), args[3], mat))
				}
			}
		case "plane":
			var args []float32
			var mat *scene.Material
			if args, err = parseFloats(lineTokens, 6); err == nil {
				if mat, err = r.shapeMaterial(); err == nil {
					err = r.addShape(scene.NewPlane(
						types.XYZ(args[0], args[1], args[2]),
						types.XYZ(args[3], args[4], args[5]),
						mat,
					))
				}
			}
		case "triangle":
			var args []float32
			var mat *scene.Material
			if args, err = parseFloats(lineTokens, 9); err == nil {
				if mat, err = r.shapeMaterial(); err == nil {
					err = r.addShape(scene.NewTriangle(
						types.XYZ(args[0], args[1], args[2]),
						types.XYZ(args[3], args[4], args[5]),
						types.XYZ(args[6], args[7], args[8]),
						mat,
					))
				}
			}
		case "v":
			var v types.Vec3
			if v, err = parseVec3(lineTokens); err == nil {
				r.vertexList = append(r.vertexList, v)
			}
		case "f":
			err = r.parseFace(lineTokens, relVertexOffset)
		case "light_point":
			var args []float32
			if args, err = parseFloats(lineTokens, 6); err == nil {
				var light *scene.Light
				light, err = scene.NewPointLight(types.XYZ(args[0], args[1], args[2]), types.RGB(args[3], args[4], args[5]))
				if err == nil {
					r.scene.AddLight(light)
				}
			}
		case "light_dir":
			var args []float32
			if args, err = parseFloats(lineTokens, 6); err == nil {
				var light *scene.Light
				light, err = scene.NewDirectionalLight(types.XYZ(args[0], args[1], args[2]), types.RGB(args[3], args[4], args[5]))
				if err == nil {
					r.scene.AddLight(light)
				}
			}
		default:
			r.logger.Warningf(`[%s: %d] skipping unsupported keyword "%s"`, res.Path(), lineNum, lineTokens[0])
		}

		if err != nil {
			return r.emitError(res.Path(), lineNum, "%s", err.Error())
		}
	}

	if err = scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}

	return nil
}

// Parse face definition. Faces list 3 (triangle) or 4 (quad) vertex
// indices. Each index may be followed by /uv/normal indices which are
// ignored. Indices start from 1 and may be negative to indicate an offset
// off the end of the vertex list. Quads are split into two triangles.
func (r *textSceneReader) parseFace(lineTokens []string, relVertexOffset int) error {
	if len(lineTokens) < 4 || len(lineTokens) > 5 {
		return fmt.Errorf(`unsupported syntax for "f"; expected 3 arguments for triangular face or 4 arguments for a quad face; got %d`, len(lineTokens)-1)
	}

	var vertices [4]types.Vec3
	for arg := 0; arg < len(lineTokens)-1; arg++ {
		vToken := strings.Split(lineTokens[arg+1], "/")[0]
		if vToken == "" {
			return fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err := selectFaceCoordIndex(vToken, len(r.vertexList), relVertexOffset)
		if err != nil {
			return fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		vertices[arg] = r.vertexList[vOffset]
	}

	indiceList := [][3]int{{0, 1, 2}}
	if len(lineTokens) == 5 {
		indiceList = append(indiceList, [3]int{0, 2, 3})
	}

	mat, err := r.shapeMaterial()
	if err != nil {
		return err
	}
	for _, indices := range indiceList {
		tri, err := scene.NewTriangle(vertices[indices[0]], vertices[indices[1]], vertices[indices[2]], mat)
		if err != nil {
			return err
		}
		if err = r.scene.AddShape(tri); err != nil {
			return err
		}
	}

	return nil
}

// Given a face vertex index calculate the proper offset into the vertex
// list. Negative indices reference elements from the end of the list.
func selectFaceCoordIndex(indexToken string, coordListLen int, relOffset int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int = 0
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = relOffset + int(index-1)
	}
	if index == 0 || vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

// Parse a fixed number of float arguments.
func parseFloats(lineTokens []string, count int) ([]float32, error) {
	if len(lineTokens) != count+1 {
		return nil, fmt.Errorf(`unsupported syntax for "%s"; expected %d arguments; got %d`, lineTokens[0], count, len(lineTokens)-1)
	}

	out := make([]float32, count)
	for tokIdx := 1; tokIdx <= count; tokIdx++ {
		val, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return nil, err
		}
		out[tokIdx-1] = float32(val)
	}
	return out, nil
}

// Parse a float scalar value.
func parseFloat32(lineTokens []string) (float32, error) {
	if len(lineTokens) < 2 {
		return 0, fmt.Errorf(`unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	val, err := strconv.ParseFloat(lineTokens[1], 32)
	if err != nil {
		return 0, err
	}

	return float32(val), nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}

// Parse an RGB color starting at the given token offset. Negative channels
// are rejected.
func parseColor(lineTokens []string, offset int) (types.Color, error) {
	if len(lineTokens) < offset+3 {
		return types.Color{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 color channels; got %d`, lineTokens[0], len(lineTokens)-offset)
	}

	c := types.Color{}
	for ch := 0; ch < 3; ch++ {
		val, err := strconv.ParseFloat(lineTokens[offset+ch], 32)
		if err != nil {
			return c, err
		}
		if val < 0 {
			return c, fmt.Errorf(`negative color channel %v for "%s"`, val, lineTokens[0])
		}
		c[ch] = float32(val)
	}
	return c, nil
}
