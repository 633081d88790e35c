package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"xform3d/internal/scene"
	"xform3d/pkg/math3d"
)

const (
	title = "Craft3D"

	nearZ = 0.1
	farZ  = 100
)

type config struct {
	width, height int
	fov           float32
	grid          int
	spacing       float32
	snapshot      string
}

func parseFlags(args []string) (config, error) {
	var (
		cfg config
		fov float64
		gap float64
	)
	fs := flag.NewFlagSet(title, flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 800, "window width in pixels")
	fs.IntVar(&cfg.height, "height", 600, "window height in pixels")
	fs.Float64Var(&fov, "fov", 65, "vertical field of view in degrees")
	fs.IntVar(&cfg.grid, "grid", 5, "cubes along each side of the grid")
	fs.Float64Var(&gap, "spacing", 2.5, "distance between cube centers")
	fs.StringVar(&cfg.snapshot, "snapshot", "", "render one frame to this PNG file instead of opening a window")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.fov = float32(fov)
	cfg.spacing = float32(gap)

	switch {
	case cfg.width <= 0 || cfg.height <= 0:
		return cfg, fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	case cfg.fov <= 0 || cfg.fov >= 180:
		return cfg, fmt.Errorf("field of view %v out of range (0, 180)", cfg.fov)
	case cfg.grid < 1:
		return cfg, errors.New("grid needs at least one cube per side")
	}
	return cfg, nil
}

func (c config) aspect() float32 { return float32(c.width) / float32(c.height) }

func (c config) projection() math3d.Matrix4 {
	return math3d.PerspectiveDirectXLH(c.aspect(), c.fov, nearZ, farZ)
}

func (c config) frustum() math3d.Frustum {
	return math3d.NewPerspectiveFrustum(c.aspect(), c.fov, nearZ, farZ)
}

// camera orbits just outside the grid so some cubes drift out of view.
func (c config) camera() *scene.Camera {
	radius := float32(c.grid) * c.spacing
	return scene.NewCamera(radius, radius*0.3)
}

func main() {
	runtime.LockOSThread()

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalln(err)
	}

	if cfg.snapshot != "" {
		err = runSnapshot(cfg)
	} else {
		err = runWindow(cfg)
	}
	if err != nil {
		log.Fatalln(err)
	}
}
