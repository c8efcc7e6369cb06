package renderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/SummersBrian/cmsc427ps3/scene"
	"github.com/SummersBrian/cmsc427ps3/tracer"
	"github.com/SummersBrian/cmsc427ps3/types"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestNewDefaultValidation(t *testing.T) {
	badFov := scene.NewScene()
	badFov.Camera.FOV = 0

	noCamera := scene.NewScene()
	noCamera.Camera = nil

	type spec struct {
		sc       *scene.Scene
		opts     Options
		expError error
	}
	specs := []spec{
		{nil, DefaultOptions(4, 4), ErrSceneNotDefined},
		{noCamera, DefaultOptions(4, 4), ErrCameraNotDefined},
		{scene.NewScene(), DefaultOptions(0, 4), ErrInvalidFrameDims},
		{scene.NewScene(), DefaultOptions(4, -1), ErrInvalidFrameDims},
		{badFov, DefaultOptions(4, 4), scene.ErrInvalidFOV},
		{scene.NewScene(), Options{FrameW: 4, FrameH: 4, MaxDepth: -1}, tracer.ErrInvalidMaxDepth},
	}

	for idx, s := range specs {
		_, err := NewDefault(s.sc, s.opts)
		if err != s.expError {
			t.Fatalf("[spec %d] expected error %v; got %v", idx, s.expError, err)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	type spec struct {
		path      string
		expFormat ImageFormat
	}
	specs := []spec{
		{"out.bmp", BMP},
		{"out.BMP", BMP},
		{"out.png", PNG},
		{"dir/out.PNG", PNG},
		{"out.tif", TIFF},
		{"out.tiff", TIFF},
		{"out", BMP},
		{"out.jpg", BMP},
	}

	for idx, s := range specs {
		if f := FormatFromPath(s.path); f != s.expFormat {
			t.Fatalf("[spec %d] expected format %s; got %s", idx, s.expFormat, f)
		}
	}
}

func TestFrameSetPixel(t *testing.T) {
	if _, err := NewFrame(0, 1); err != ErrInvalidFrameDims {
		t.Fatalf("expected ErrInvalidFrameDims; got %v", err)
	}

	frame, err := NewFrame(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	frame.SetPixel(1, 0, types.RGB(2, 0.5, -1))
	frame.SetPixel(5, 5, types.RGB(1, 1, 1))

	exp := color.RGBA{255, 128, 0, 255}
	if c := frame.Image().RGBAAt(1, 0); c != exp {
		t.Fatalf("expected pixel to be %v; got %v", exp, c)
	}
	if c := frame.Image().RGBAAt(0, 0); c != (color.RGBA{}) {
		t.Fatalf("expected untouched pixel to be empty; got %v", c)
	}
}

func TestRenderOrientation(t *testing.T) {
	sc := scene.NewScene()
	sc.Ambient = types.RGB(1, 1, 1)
	mat, err := scene.NewMaterial("red", types.RGB(1, 0, 0), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sc.AddMaterial(mat)
	sphere, err := scene.NewSphere(types.XYZ(0, 1, -5), 0.5, mat)
	if err != nil {
		t.Fatal(err)
	}
	if err = sc.AddShape(sphere); err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions(16, 16)
	opts.BlockRows = 5
	r, err := NewDefault(sc, opts)
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	img := r.Frame().Image()
	red := color.RGBA{255, 0, 0, 255}
	black := color.RGBA{0, 0, 0, 255}

	// The sphere sits above the camera axis so it must show up in the top
	// half of the image.
	if c := img.RGBAAt(8, 4); c != red {
		t.Fatalf("expected pixel (8, 4) to be red; got %v", c)
	}
	if c := img.RGBAAt(8, 12); c != black {
		t.Fatalf("expected pixel (8, 12) to be black; got %v", c)
	}

	stats := r.Stats()
	if stats.PrimaryRays != 16*16 {
		t.Fatalf("expected %d primary rays; got %d", 16*16, stats.PrimaryRays)
	}
	if len(stats.Blocks) != 3 {
		t.Fatalf("expected 3 blocks; got %d", len(stats.Blocks))
	}
	var rows int
	var percent float32
	for _, block := range stats.Blocks {
		rows += block.BlockH
		percent += block.FramePercent
	}
	if rows != 16 || percent < 99.9 || percent > 100.1 {
		t.Fatalf("expected blocks to cover the whole frame; got %d rows (%f%%)", rows, percent)
	}
}

func TestSaveFrame(t *testing.T) {
	sc := testScene(t)
	r, err := NewDefault(sc, DefaultOptions(24, 16))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if err = r.Save(filepath.Join(dir, "early.bmp")); err != ErrFrameNotRendered {
		t.Fatalf("expected ErrFrameNotRendered; got %v", err)
	}

	if err = r.Render(); err != nil {
		t.Fatal(err)
	}

	type spec struct {
		file   string
		decode func([]byte) (image.Image, error)
	}
	specs := []spec{
		{"frame.bmp", func(data []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(data)) }},
		{"frame", func(data []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(data)) }},
		{"frame.png", func(data []byte) (image.Image, error) { return png.Decode(bytes.NewReader(data)) }},
		{"frame.tiff", func(data []byte) (image.Image, error) { return tiff.Decode(bytes.NewReader(data)) }},
	}

	src := r.Frame().Image()
	for idx, s := range specs {
		path := filepath.Join(dir, s.file)
		if err = r.Save(path); err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("[spec %d] %v", idx, err)
		}
		img, err := s.decode(data)
		if err != nil {
			t.Fatalf("[spec %d] could not decode saved frame: %v", idx, err)
		}

		if img.Bounds() != src.Bounds() {
			t.Fatalf("[spec %d] expected bounds %v; got %v", idx, src.Bounds(), img.Bounds())
		}
		for y := 0; y < 16; y++ {
			for x := 0; x < 24; x++ {
				exp := src.RGBAAt(x, y)
				got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				if got != exp {
					t.Fatalf("[spec %d] pixel (%d, %d): expected %v; got %v", idx, x, y, exp, got)
				}
			}
		}
	}
}

func TestSaveToMissingDir(t *testing.T) {
	frame, err := NewFrame(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "missing", "frame.bmp")
	if err = frame.Save(path); err == nil {
		t.Fatal("expected save to fail")
	}
	if _, err = os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written; got %v", err)
	}
}

func testScene(t *testing.T) *scene.Scene {
	sc := scene.NewScene()
	sc.Ambient = types.RGB(0.1, 0.1, 0.1)

	mat, err := scene.NewMaterial("white", types.RGB(1, 1, 1), 0.2, 20)
	if err != nil {
		t.Fatal(err)
	}
	sc.AddMaterial(mat)

	sphere, err := scene.NewSphere(types.XYZ(0, 0, -5), 1, mat)
	if err != nil {
		t.Fatal(err)
	}
	if err = sc.AddShape(sphere); err != nil {
		t.Fatal(err)
	}

	light, err := scene.NewPointLight(types.XYZ(0, 4, -3), types.RGB(10, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	sc.AddLight(light)
	return sc
}
