package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/renderer"
)

func TestSavePNG(t *testing.T) {
	buffer := renderer.NewPixelBuffer(8, 6)
	buffer.Set(3, 2, core.NewVec3(1, 0.5, 0.25))

	filename := filepath.Join(t.TempDir(), "frame_000.png")
	if err := savePNG(filename, buffer); err != nil {
		t.Fatalf("savePNG failed: %v", err)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Failed to open saved frame: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Saved frame is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %v", img.Bounds())
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	buffer := renderer.NewPixelBuffer(2, 2)
	if err := savePNG(filepath.Join(t.TempDir(), "missing", "frame.png"), buffer); err == nil {
		t.Error("Expected error for missing directory")
	}
}
