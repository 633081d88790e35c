package main

import (
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"

	"xform3d/internal/raster"
	"xform3d/internal/scene"
)

var (
	background = color.RGBA{26, 26, 26, 255}
	yellow     = color.RGBA{255, 255, 0, 255}
)

// runSnapshot renders the first frame in software and writes it as a PNG.
func runSnapshot(cfg config) error {
	s := scene.Grid(cfg.grid, cfg.spacing, 1)
	cam := cfg.camera()

	f := cfg.frustum()
	f.Create(cam.World())
	visible := s.Visible(&f)

	canvas := raster.NewCanvas(cfg.width, cfg.height, cam.View().Mul(cfg.projection()))
	canvas.Clear(background)
	for _, i := range visible {
		canvas.Cube(s.Objects[i].Model(), yellow)
	}

	out, err := os.Create(cfg.snapshot)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(out, canvas.Img); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", cfg.snapshot, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", cfg.snapshot, err)
	}

	log.Printf("wrote %s: %d of %d cubes visible", cfg.snapshot, len(visible), len(s.Objects))
	return nil
}
