package renderer

import (
	"testing"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/geometry"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/material"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/scene"
)

// renderTestScene builds a small scene with one diffuse sphere over a
// ground plane, enough to exercise hits, misses and shadows.
func renderTestScene() (*scene.Scene, daycycle.LightState) {
	cycle := daycycle.DefaultCycle()
	sc := scene.NewScene(cycle)
	sc.AddChecked(geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0),
		material.NewDiffuse(core.NewVec3(0.4, 0.6, 0.3))))
	sc.AddChecked(geometry.NewSphere(core.NewVec3(0, 1, 0), 1,
		material.NewDiffuse(core.NewVec3(0.8, 0.3, 0.3))))
	sc.Finalize()
	return sc, cycle.State(daycycle.TimeOfDay(daycycle.Period / 4))
}

func testCamera() *Camera {
	return NewCamera(CameraConfig{
		Center: core.NewVec3(0, 2, 8),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50.0,
	})
}

func TestRenderFrame_Deterministic(t *testing.T) {
	sc, state := renderTestScene()
	camera := testCamera()

	opts := RenderOptions{SamplesPerPixel: 4, MaxDepth: 5, TileSize: 16, Workers: 4, Seed: 42}

	first, _ := RenderFrame(sc, camera, state, 64, 48, opts)
	second, _ := RenderFrame(sc, camera, state, 64, 48, opts)

	if len(first.Pix) != len(second.Pix) {
		t.Fatalf("Buffer sizes differ: %d vs %d", len(first.Pix), len(second.Pix))
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("Pixel data diverged at index %d: %f vs %f", i, first.Pix[i], second.Pix[i])
		}
	}
}

func TestRenderFrame_WorkerCountDoesNotChangeOutput(t *testing.T) {
	sc, state := renderTestScene()
	camera := testCamera()

	serial, _ := RenderFrame(sc, camera, state, 48, 32,
		RenderOptions{SamplesPerPixel: 2, MaxDepth: 3, TileSize: 8, Workers: 1, Seed: 7})
	parallel, _ := RenderFrame(sc, camera, state, 48, 32,
		RenderOptions{SamplesPerPixel: 2, MaxDepth: 3, TileSize: 8, Workers: 8, Seed: 7})

	for i := range serial.Pix {
		if serial.Pix[i] != parallel.Pix[i] {
			t.Fatalf("Worker count changed output at index %d", i)
		}
	}
}

func TestRenderFrame_StatsAndClamping(t *testing.T) {
	sc, state := renderTestScene()
	camera := testCamera()

	const width, height = 40, 30
	opts := RenderOptions{SamplesPerPixel: 2, MaxDepth: 3, TileSize: 16, Seed: 1}

	buffer, stats := RenderFrame(sc, camera, state, width, height, opts)

	if stats.TotalPixels != width*height {
		t.Errorf("Expected %d pixels, got %d", width*height, stats.TotalPixels)
	}
	if stats.TotalSamples != width*height*opts.SamplesPerPixel {
		t.Errorf("Expected %d samples, got %d", width*height*opts.SamplesPerPixel, stats.TotalSamples)
	}
	if stats.DegenerateSamples != 0 {
		t.Errorf("Expected no degenerate samples in a clean scene, got %d", stats.DegenerateSamples)
	}
	expectedTiles := 3 * 2 // ceil(40/16) × ceil(30/16)
	if stats.Tiles != expectedTiles {
		t.Errorf("Expected %d tiles, got %d", expectedTiles, stats.Tiles)
	}

	for i, ch := range buffer.Pix {
		if ch < 0 || ch > 1 {
			t.Fatalf("Channel %d out of [0,1]: %f", i, ch)
		}
	}
}

func TestRenderFrame_NonEmptyImage(t *testing.T) {
	sc, state := renderTestScene()
	camera := testCamera()

	buffer, _ := RenderFrame(sc, camera, state, 32, 24, DefaultRenderOptions())

	// A daytime frame has sky, ground and sphere: some light everywhere
	total := 0.0
	for _, ch := range buffer.Pix {
		total += ch
	}
	if total == 0 {
		t.Error("Rendered frame is entirely black")
	}

	// Center pixel hits the red sphere, corner pixels see the sky
	center := buffer.At(16, 12)
	if center.X <= center.Z {
		t.Errorf("Expected reddish sphere at center, got %v", center)
	}
}

func TestTileBounds_CoversEveryPixelOnce(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
	}{
		{"exact fit", 64, 32, 16},
		{"ragged edges", 70, 45, 16},
		{"tile larger than image", 10, 8, 32},
		{"single-pixel tiles", 5, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make([]int, tt.width*tt.height)
			for _, b := range tileBounds(tt.width, tt.height, tt.tileSize) {
				for y := b.Min.Y; y < b.Max.Y; y++ {
					for x := b.Min.X; x < b.Max.X; x++ {
						counts[y*tt.width+x]++
					}
				}
			}
			for i, c := range counts {
				if c != 1 {
					t.Fatalf("Pixel %d covered %d times", i, c)
				}
			}
		})
	}
}

func TestPixelBuffer_SetClamps(t *testing.T) {
	buffer := NewPixelBuffer(4, 4)

	buffer.Set(1, 2, core.NewVec3(2.0, -0.5, 0.25))
	got := buffer.At(1, 2)

	expected := core.NewVec3(1.0, 0.0, 0.25)
	if got != expected {
		t.Errorf("Expected clamped %v, got %v", expected, got)
	}
}

func TestPixelBuffer_ToImage(t *testing.T) {
	buffer := NewPixelBuffer(2, 2)
	buffer.Set(0, 0, core.NewVec3(1, 1, 1))

	img := buffer.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected image bounds %v", img.Bounds())
	}

	white := img.RGBAAt(0, 0)
	if white.R != 255 || white.G != 255 || white.B != 255 || white.A != 255 {
		t.Errorf("Expected opaque white, got %v", white)
	}
	black := img.RGBAAt(1, 1)
	if black.R != 0 || black.A != 255 {
		t.Errorf("Expected opaque black, got %v", black)
	}
}
