package scene

import (
	"strings"
	"testing"

	"github.com/SummersBrian/cmsc427ps3/types"
)

func TestAddShape(t *testing.T) {
	sc := NewScene()
	mat := testMaterial()

	sphere, err := NewSphere(types.XYZ(0, 0, -3), 1, mat)
	if err != nil {
		t.Fatal(err)
	}

	expError := "scene: shape references unknown material; ensure that the material is added to the scene before adding the shape"
	if err = sc.AddShape(sphere); err == nil || err.Error() != expError {
		t.Fatalf("expected error %q; got %v", expError, err)
	}

	if err = sc.AddMaterial(mat); err != nil {
		t.Fatal(err)
	}
	if err = sc.AddMaterial(mat); err != ErrDuplicateMaterial {
		t.Fatalf("expected ErrDuplicateMaterial; got %v", err)
	}
	if err = sc.AddShape(sphere); err != nil {
		t.Fatal(err)
	}
	if err = sc.AddShape(sphere); err == nil {
		t.Fatal("expected an error when adding the same shape twice")
	}

	if got := sc.Material("test"); got != mat {
		t.Fatalf("expected material lookup to return %v; got %v", mat, got)
	}
	if got := sc.Material("missing"); got != nil {
		t.Fatalf("expected nil for unknown material; got %v", got)
	}
}

func TestMaterialValidation(t *testing.T) {
	type spec struct {
		spec, phong float32
		expErr      error
	}
	specs := []spec{
		{0, 0, nil},
		{1, 100, nil},
		{-0.1, 1, ErrInvalidMaterial},
		{1.5, 1, ErrInvalidMaterial},
		{0.5, -1, ErrInvalidMaterial},
	}

	for idx, s := range specs {
		_, err := NewMaterial("m", types.RGB(1, 0, 0), s.spec, s.phong)
		if err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", idx, s.expErr, err)
		}
	}
}

func TestSceneStats(t *testing.T) {
	sc := NewScene()
	mat := testMaterial()
	mat.SpecularFrac = 0.5
	sc.AddMaterial(mat)

	sphere, _ := NewSphere(types.XYZ(0, 0, -3), 1, mat)
	plane, _ := NewPlane(types.XYZ(0, -1, 0), types.XYZ(0, 1, 0), mat)
	sc.AddShape(sphere)
	sc.AddShape(plane)
	light, _ := NewPointLight(types.XYZ(0, 5, 0), types.RGB(1, 1, 1))
	sc.AddLight(light)

	stats := sc.Stats()
	for _, exp := range []string{"spheres", "planes", "point lights", "1 reflective", "TOTAL SHAPES"} {
		if !strings.Contains(stats, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, stats)
		}
	}
}
