package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Ops(t *testing.T) {
	v1 := XYZ(1, 2, 3)
	v2 := XYZ(4, 5, 6)

	if got := v1.Add(v2); got != XYZ(5, 7, 9) {
		t.Fatalf("expected Add to return (5, 7, 9); got %v", got)
	}
	if got := v2.Sub(v1); got != XYZ(3, 3, 3) {
		t.Fatalf("expected Sub to return (3, 3, 3); got %v", got)
	}
	if got := v1.Mul(2); got != XYZ(2, 4, 6) {
		t.Fatalf("expected Mul to return (2, 4, 6); got %v", got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Fatalf("expected Dot to return 32; got %f", got)
	}
	if got := XYZ(1, 0, 0).Cross(XYZ(0, 1, 0)); got != XYZ(0, 0, 1) {
		t.Fatalf("expected Cross to return (0, 0, 1); got %v", got)
	}
	if got := v1.Neg(); got != XYZ(-1, -2, -3) {
		t.Fatalf("expected Neg to return (-1, -2, -3); got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	type spec struct {
		in     Vec3
		out    Vec3
		expErr error
	}
	specs := []spec{
		{XYZ(3, 0, 0), XYZ(1, 0, 0), nil},
		{XYZ(0, 0, -0.5), XYZ(0, 0, -1), nil},
		{XYZ(0, 0, 0), Vec3{}, ErrDegenerateVector},
		{XYZ(math32.Inf(1), 0, 0), Vec3{}, ErrDegenerateVector},
		{XYZ(math32.NaN(), 1, 0), Vec3{}, ErrDegenerateVector},
	}

	for idx, s := range specs {
		out, err := s.in.TryNormalize()
		if err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", idx, s.expErr, err)
		}
		if out != s.out {
			t.Fatalf("[spec %d] expected %v; got %v", idx, s.out, out)
		}

		// Normalize never fails; degenerate input yields the zero vector.
		if got := s.in.Normalize(); got != s.out {
			t.Fatalf("[spec %d] expected Normalize to return %v; got %v", idx, s.out, got)
		}
	}
}

func TestVec3Reflect(t *testing.T) {
	n := XYZ(0, 1, 0)
	in := XYZ(1, -1, 0)
	if got := in.Reflect(n); got != XYZ(1, 1, 0) {
		t.Fatalf("expected reflected vector (1, 1, 0); got %v", got)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: XYZ(1, 1, 1), Dir: XYZ(0, 0, -1)}
	if got := r.At(2); got != XYZ(1, 1, -1) {
		t.Fatalf("expected (1, 1, -1); got %v", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math32.Abs(got-Pi) > 1e-6 {
		t.Fatalf("expected 180 degrees to be %f radians; got %f", Pi, got)
	}
}
