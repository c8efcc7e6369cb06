package scene

import (
	"fmt"

	"github.com/SummersBrian/cmsc427ps3/types"
	"github.com/chewxy/math32"
)

// The camera type controls the scene camera. Right, Up and Forward form an
// orthonormal basis; Forward points from the eye into the scene.
type Camera struct {
	Eye     types.Vec3
	Right   types.Vec3
	Up      types.Vec3
	Forward types.Vec3

	// Vertical field of view in degrees.
	FOV float32
}

// Create a camera at the origin looking down the -Z axis.
func NewCamera(fov float32) *Camera {
	return &Camera{
		Eye:     types.XYZ(0, 0, 0),
		Right:   types.XYZ(1, 0, 0),
		Up:      types.XYZ(0, 1, 0),
		Forward: types.XYZ(0, 0, -1),
		FOV:     fov,
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"eye: (%3.3f, %3.3f, %3.3f) fwd: (%3.3f, %3.3f, %3.3f) up: (%3.3f, %3.3f, %3.3f) fov: %3.1f",
		c.Eye[0], c.Eye[1], c.Eye[2],
		c.Forward[0], c.Forward[1], c.Forward[2],
		c.Up[0], c.Up[1], c.Up[2],
		c.FOV,
	)
}

// Position the camera at eye looking at the look point. The up vector only
// needs to be roughly up; the stored basis is re-orthogonalized.
func (c *Camera) LookAt(eye, look, up types.Vec3) error {
	forward, err := look.Sub(eye).TryNormalize()
	if err != nil {
		return ErrDegenerateCamera
	}
	right, err := forward.Cross(up).TryNormalize()
	if err != nil {
		return ErrDegenerateCamera
	}

	c.Eye = eye
	c.Forward = forward
	c.Right = right
	c.Up = right.Cross(forward)
	return nil
}

// The image plane maps pixel coordinates to primary rays for a particular
// frame size. It sits one unit in front of the eye.
type ImagePlane struct {
	camera Camera

	frameW, frameH float32

	// Half extents of the image plane.
	halfW, halfH float32
}

// Setup the image plane for a frame with the given dimensions.
func (c *Camera) ImagePlane(frameW, frameH int) (*ImagePlane, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, ErrInvalidFrameDims
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return nil, ErrInvalidFOV
	}
	if !c.Eye.IsFinite() || !c.Right.IsFinite() || !c.Up.IsFinite() || !c.Forward.IsFinite() {
		return nil, ErrDegenerateCamera
	}

	aspect := float32(frameW) / float32(frameH)
	halfH := math32.Tan(types.Radians(c.FOV) / 2)

	return &ImagePlane{
		camera: *c,
		frameW: float32(frameW),
		frameH: float32(frameH),
		halfW:  halfH * aspect,
		halfH:  halfH,
	}, nil
}

// Generate the primary ray through column col (in [0, frameW)) and row
// (in [1, frameH]). Rows grow along the camera up vector, so row frameH is
// the top edge of the image plane.
func (p *ImagePlane) Ray(col, row int) types.Ray {
	u := float32(col)/p.frameW - 0.5
	v := float32(row)/p.frameH - 0.5

	cam := &p.camera
	point := cam.Eye.
		Add(cam.Right.Mul(u * 2 * p.halfW)).
		Add(cam.Up.Mul(v * 2 * p.halfH)).
		Add(cam.Forward)

	return types.Ray{
		Origin: cam.Eye,
		Dir:    point.Sub(cam.Eye).Normalize(),
	}
}

// Get the frame dimensions this image plane was set up for.
func (p *ImagePlane) Dims() (int, int) {
	return int(p.frameW), int(p.frameH)
}
