package main

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"xform3d/internal/raster"
	"xform3d/internal/scene"
	"xform3d/pkg/math3d"
)

var (
	vertexShaderSource = `
		#version 410
		in vec3 vp;
		uniform mat4 mvp;
		void main() {
			gl_Position = mvp * vec4(vp, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		out vec4 frag_colour;
		void main() {
			frag_colour = vec4(1, 1, 0, 1); // Yellow
		}
	` + "\x00"
)

// unitCube returns the wireframe of the unit cube centered at the origin
// as vertex positions and line indices.
func unitCube() ([]float32, []uint32) {
	corners := raster.BoxCorners(math3d.Splat3(-0.5), math3d.Splat3(0.5))
	vertices := make([]float32, 0, len(corners)*3)
	for _, c := range corners {
		vertices = append(vertices, c.X, c.Y, c.Z)
	}
	indices := make([]uint32, 0, len(raster.BoxEdges)*2)
	for _, e := range raster.BoxEdges {
		indices = append(indices, uint32(e[0]), uint32(e[1]))
	}
	return vertices, indices
}

// runWindow opens a window and draws the spinning grid until it is closed.
func runWindow(cfg config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.width, cfg.height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	gl.UseProgram(program)
	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))

	vertices, indices := unitCube()

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	// The projection writes depth in [0, 1], the upper half of GL's
	// clip range, so LESS still orders fragments correctly.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	s := scene.Grid(cfg.grid, cfg.spacing, 1)
	cam := cfg.camera()
	projection := cfg.projection()
	frustum := cfg.frustum()

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := float32(currentTime - lastFrameTime)
		lastFrameTime = currentTime

		cam.Update(deltaTime)
		s.Update(deltaTime)

		frustum.Create(cam.World())
		visible := s.Visible(&frustum)

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | visible: %d/%d", title, frameCount, len(visible), len(s.Objects)))
			frameCount = 0
			lastFpsTime = currentTime
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.UseProgram(program)
		gl.BindVertexArray(vao)

		viewProj := cam.View().Mul(projection)
		for _, i := range visible {
			mvp := s.Objects[i].Model().Mul(viewProj).Mgl()
			gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])
			gl.DrawElements(gl.LINES, int32(len(indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
