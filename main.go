package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/renderer"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/scene"
)

func main() {
	mode := flag.String("mode", "stylized", "Light cycle mode: 'stylized' or 'astro'")
	width := flag.Int("width", 600, "Frame width in pixels")
	height := flag.Int("height", 450, "Frame height in pixels")
	frames := flag.Int("frames", 1, "Number of frames spread over one full day/night cycle")
	samples := flag.Int("samples", 4, "Jittered samples per pixel (1 disables anti-aliasing)")
	startTime := flag.Float64("time", 0.25, "Starting time of day as a fraction of the cycle (0.25 = midday)")
	latitude := flag.Float64("lat", 35.68, "Latitude for astro mode")
	longitude := flag.Float64("lon", 139.69, "Longitude for astro mode")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Diorama Raytracer")
		fmt.Println("Usage: diorama [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output is saved to output/<mode>/frame_<n>.png")
		return
	}

	var cycle daycycle.Source
	switch *mode {
	case "astro":
		cycle = daycycle.NewSolarCycle(*latitude, *longitude, time.Now())
	case "stylized":
		cycle = daycycle.DefaultCycle()
	default:
		fmt.Printf("Unknown mode %q, using stylized cycle\n", *mode)
		*mode = "stylized"
		cycle = daycycle.DefaultCycle()
	}

	fmt.Println("Building diorama scene...")
	dioramaScene := scene.NewDioramaScene(cycle)
	for _, diag := range dioramaScene.Diagnostics() {
		fmt.Printf("Scene diagnostic: %v\n", diag)
	}
	fmt.Printf("Scene contains %d primitives\n", len(dioramaScene.Shapes))

	outputDir := filepath.Join("output", *mode)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	camera := renderer.NewCamera(renderer.DefaultCameraConfig())
	opts := renderer.DefaultRenderOptions()
	opts.SamplesPerPixel = *samples

	// Advance the cycle between frames; each frame renders from an
	// immutable light-state snapshot.
	t := daycycle.Advance(0, *startTime*daycycle.Period)
	step := daycycle.Period / float64(*frames)

	for frame := 0; frame < *frames; frame++ {
		state := cycle.State(t)

		startedAt := time.Now()
		buffer, stats := renderer.RenderFrame(dioramaScene, camera, state, *width, *height, opts)
		elapsed := time.Since(startedAt)

		fmt.Printf("Frame %d/%d (day factor %.2f) rendered in %v (%d samples, %d degenerate)\n",
			frame+1, *frames, state.DayFactor, elapsed, stats.TotalSamples, stats.DegenerateSamples)

		filename := filepath.Join(outputDir, fmt.Sprintf("frame_%03d.png", frame))
		if err := savePNG(filename, buffer); err != nil {
			fmt.Printf("Error saving frame: %v\n", err)
			return
		}

		t = daycycle.Advance(t, step)
	}

	fmt.Printf("Saved %d frame(s) to %s\n", *frames, outputDir)
}

func savePNG(filename string, buffer *renderer.PixelBuffer) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, buffer.ToImage())
}
