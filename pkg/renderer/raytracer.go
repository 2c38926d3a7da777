package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/scene"
)

// RenderOptions contains frame rendering configuration
type RenderOptions struct {
	SamplesPerPixel int   // Jittered rays per pixel; 1 disables jitter entirely
	MaxDepth        int   // Maximum specular recursion depth
	TileSize        int   // Edge length of worker tiles in pixels
	Workers         int   // Parallel workers; <= 0 means GOMAXPROCS
	Seed            int64 // Base seed for per-tile jitter sequences
}

// DefaultRenderOptions returns sensible defaults
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		SamplesPerPixel: 4,
		MaxDepth:        5,
		TileSize:        32,
		Workers:         0,
		Seed:            42,
	}
}

// PixelBuffer is a row-major RGB frame buffer with channels in [0, 1]
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []float64 // len = Width*Height*3
}

// NewPixelBuffer creates a zeroed pixel buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*3),
	}
}

// Set writes a color at (x, y), clamping each channel to [0, 1]
func (pb *PixelBuffer) Set(x, y int, c core.Vec3) {
	c = c.Clamp(0, 1)
	i := (y*pb.Width + x) * 3
	pb.Pix[i] = c.X
	pb.Pix[i+1] = c.Y
	pb.Pix[i+2] = c.Z
}

// At returns the color at (x, y)
func (pb *PixelBuffer) At(x, y int) core.Vec3 {
	i := (y*pb.Width + x) * 3
	return core.NewVec3(pb.Pix[i], pb.Pix[i+1], pb.Pix[i+2])
}

// ToImage converts the buffer to an 8-bit RGBA image with gamma correction
func (pb *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			c := pb.At(x, y).GammaCorrect(2.0).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}

// RenderFrame renders one frame of the scene under the given light
// state. The scene and state are read-only snapshots, so tiles render
// in parallel without locks. Identical inputs produce an identical
// buffer: per-tile jitter sequences are seeded from opts.Seed.
func RenderFrame(sc *scene.Scene, camera *Camera, state daycycle.LightState, width, height int, opts RenderOptions) (*PixelBuffer, RenderStats) {
	if opts.SamplesPerPixel <= 0 {
		opts.SamplesPerPixel = 1
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultRenderOptions().MaxDepth
	}
	if opts.TileSize <= 0 {
		opts.TileSize = DefaultRenderOptions().TileSize
	}

	buffer := NewPixelBuffer(width, height)
	shader := NewShader(sc, state, opts.MaxDepth)
	tiles := tileBounds(width, height, opts.TileSize)

	pool := newWorkerPool(opts.Workers, len(tiles))
	pool.start(func(task tileTask) tileStats {
		rnd := rand.New(rand.NewSource(opts.Seed + int64(task.id)))
		return renderTile(buffer, shader, camera, state, task.bounds, opts.SamplesPerPixel, rnd)
	})

	for id, bounds := range tiles {
		pool.submit(tileTask{id: id, bounds: bounds})
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Tiles:       len(tiles),
		Workers:     pool.numWorkers,
	}
	for i := 0; i < len(tiles); i++ {
		stats.merge(pool.result())
	}
	pool.stop()

	return buffer, stats
}

// renderTile shades every pixel within bounds and writes the averaged,
// clamped result into the shared buffer. Tiles never overlap, so the
// writes are race-free. Non-finite samples degrade to the sky color
// and are counted as degenerate.
func renderTile(buffer *PixelBuffer, shader *Shader, camera *Camera, state daycycle.LightState, bounds image.Rectangle, samples int, rnd *rand.Rand) tileStats {
	var stats tileStats
	if samples == 1 {
		rnd = nil // pixel centers only: fully deterministic sampling
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			accum := core.Vec3{}
			for s := 0; s < samples; s++ {
				ray := camera.GetRay(x, y, buffer.Width, buffer.Height, rnd)
				sample := shader.Shade(ray, 0)
				if !sample.IsFinite() {
					stats.degenerate++
					sample = state.SkyColor(ray.Direction)
				}
				accum = accum.Add(sample)
				stats.samples++
			}
			buffer.Set(x, y, accum.Multiply(1.0/float64(samples)))
		}
	}

	return stats
}

// tileBounds partitions a width×height image into tiles of at most
// tileSize pixels per side, covering every pixel exactly once
func tileBounds(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}
