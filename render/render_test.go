package render

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/echoflaresat/geomkit/batch"
	"github.com/echoflaresat/geomkit/colors"
	"github.com/echoflaresat/geomkit/scene"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

func TestCameraBasis(t *testing.T) {
	c := NewCamera(vectors.Zero(), 10, 0, 0, unit.AngleFromDeg(60))
	assert.True(t, c.Position.Equal(vectors.Vec3{Y: -10}), c.Position.String())
	assert.True(t, c.Forward.Equal(vectors.UnitY))
	assert.True(t, c.Right.Equal(vectors.UnitX))
	assert.True(t, c.Up.Equal(vectors.UnitZ))

	c = NewCamera(vectors.Zero(), 10, unit.AngleFromDeg(90), 0, unit.AngleFromDeg(60))
	assert.True(t, c.Position.Equal(vectors.Vec3{X: 10}), c.Position.String())
	assert.True(t, c.Forward.Equal(vectors.Vec3{X: -1}), c.Forward.String())

	c = NewCamera(vectors.Vec3{X: 1}, 5, 0, unit.AngleFromDeg(90), unit.AngleFromDeg(60))
	assert.True(t, c.Position.Equal(vectors.Vec3{X: 1, Z: 5}), c.Position.String())
	assert.True(t, c.Forward.Equal(vectors.Vec3{Z: -1}), c.Forward.String())
	assert.True(t, c.Up.Equal(vectors.UnitY), c.Up.String())
}

func TestProject(t *testing.T) {
	c := NewCamera(vectors.Zero(), 10, 0, 0, unit.AngleFromDeg(90))

	x, y, ok := c.Project(vectors.Zero())
	require.True(t, ok)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)

	// 90 degree field of view: the frustum edge at depth 10 is 10 away
	x, y, ok = c.Project(vectors.Vec3{X: 10, Z: -5})
	require.True(t, ok)
	assert.InDelta(t, 1, x, 1e-9)
	assert.InDelta(t, -0.5, y, 1e-9)

	_, _, ok = c.Project(vectors.Vec3{Y: -10})
	assert.False(t, ok)
	_, _, ok = c.Project(vectors.Vec3{Y: -20})
	assert.False(t, ok)
}

func TestPixelInvertsComputeRay(t *testing.T) {
	c := NewCamera(vectors.Vec3{X: 1, Y: 2, Z: 3}, 7, unit.AngleFromDeg(30), unit.AngleFromDeg(20), unit.AngleFromDeg(50))
	for _, px := range [][2]float64{{0, 0}, {10, 30}, {63, 63}, {31.5, 12.25}} {
		ray := c.ComputeRay(px[0], px[1], 64, 64)
		x, y, ok := c.Pixel(c.Position.Add(ray.Scale(5)), 64, 64)
		require.True(t, ok)
		assert.InDelta(t, px[0], x, 1e-9)
		assert.InDelta(t, px[1], y, 1e-9)
	}
}

func TestClipLine(t *testing.T) {
	p, q, ok := clipLine([2]float64{-10, 5}, [2]float64{20, 5}, 0, 0, 10, 10)
	require.True(t, ok)
	assert.Equal(t, [2]float64{0, 5}, p)
	assert.Equal(t, [2]float64{10, 5}, q)

	_, _, ok = clipLine([2]float64{-10, -5}, [2]float64{20, -5}, 0, 0, 10, 10)
	assert.False(t, ok)

	p, q, ok = clipLine([2]float64{2, 3}, [2]float64{4, 5}, 0, 0, 10, 10)
	require.True(t, ok)
	assert.Equal(t, [2]float64{2, 3}, p)
	assert.Equal(t, [2]float64{4, 5}, q)
}

func loadDemo(t *testing.T) (*scene.Scene, *batch.Report) {
	t.Helper()
	s, err := scene.Load("../scene/testdata/demo.yaml")
	require.NoError(t, err)
	e, err := batch.NewEvaluator(2, 0)
	require.NoError(t, err)
	rep, err := e.Evaluate(context.Background(), s)
	require.NoError(t, err)
	return s, rep
}

func assertColor(t *testing.T, want colors.Color4, got color.Color, msg string) {
	t.Helper()
	w := want.ToNRGBA()
	g := color.NRGBAModel.Convert(got).(color.NRGBA)
	assert.InDelta(t, w.R, g.R, 2, msg)
	assert.InDelta(t, w.G, g.G, 2, msg)
	assert.InDelta(t, w.B, g.B, 2, msg)
	assert.InDelta(t, w.A, g.A, 2, msg)
}

// top-down view of the demo scene: the z=0 plane spans about +-5.77 units
func topDown() Renderer {
	return Renderer{
		Camera: NewCamera(vectors.Zero(), 10, 0, unit.AngleFromDeg(90), unit.AngleFromDeg(60)),
		Width:  128,
		Height: 128,
		Style:  DefaultStyle(),
	}
}

func TestRender(t *testing.T) {
	s, rep := loadDemo(t)
	r := topDown()

	img := r.Render(s, rep)
	require.Equal(t, image.Rect(0, 0, 128, 128), img.Bounds())

	assertColor(t, r.Style.Background, img.At(0, 0), "corner")
	assertColor(t, r.Style.Segment, img.At(36, 63), "rod")
	assertColor(t, r.Style.Hit, img.At(63, 63), "intersection marker")

	plain := r.Render(s, nil)
	assertColor(t, r.Style.Segment, plain.At(63, 63), "crossing without markers")
}

func TestRenderBehindCamera(t *testing.T) {
	s := scene.New()
	s.Segments["behind"] = scene.Segment{A: vectors.Vec3{X: -1, Y: -20}, B: vectors.Vec3{X: 1, Y: -20}}
	r := Renderer{
		Camera: NewCamera(vectors.Zero(), 10, 0, 0, unit.AngleFromDeg(60)),
		Width:  32,
		Height: 32,
		Style:  DefaultStyle(),
	}
	img := r.Render(s, nil)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			assertColor(t, r.Style.Background, img.At(x, y), "pixel")
		}
	}
}

func TestWriteImage(t *testing.T) {
	s, rep := loadDemo(t)
	img := topDown().Render(s, rep)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "view.png")
	require.NoError(t, WriteImage(pngPath, img))
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	assert.Equal(t, img.At(63, 63), color.NRGBAModel.Convert(decoded.At(63, 63)))

	tiffPath := filepath.Join(dir, "view.TIFF")
	require.NoError(t, WriteImage(tiffPath, img))
	g, err := os.Open(tiffPath)
	require.NoError(t, err)
	defer g.Close()
	decoded, err = tiff.Decode(g)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	assert.ErrorIs(t, WriteImage(filepath.Join(dir, "view.jpg"), img), ErrUnsupportedImage)
	_, err = os.Stat(filepath.Join(dir, "view.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestFitCamera(t *testing.T) {
	lo, hi := vectors.Vec3{X: -3, Y: -1, Z: -1}, vectors.Vec3{X: 11, Y: 11, Z: 11}
	c := FitCamera(lo, hi, unit.AngleFromDeg(-30), unit.AngleFromDeg(35), unit.AngleFromDeg(60))
	assert.True(t, c.Target.Equal(vectors.Vec3{X: 4, Y: 5, Z: 5}))

	for _, x := range []float64{lo.X, hi.X} {
		for _, y := range []float64{lo.Y, hi.Y} {
			for _, z := range []float64{lo.Z, hi.Z} {
				nx, ny, ok := c.Project(vectors.Vec3{X: x, Y: y, Z: z})
				require.True(t, ok)
				assert.Less(t, math.Abs(nx), 1.0)
				assert.Less(t, math.Abs(ny), 1.0)
			}
		}
	}

	single := FitCamera(vectors.Vec3{X: 2}, vectors.Vec3{X: 2}, 0, 0, unit.AngleFromDeg(60))
	assert.InDelta(t, 2.2, single.Depth(vectors.Vec3{X: 2}), 1e-9)
}
