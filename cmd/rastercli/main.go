// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rastercli renders a demo mesh through the xyz CPU rasterizer
// pipeline and writes the result to an image file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

var (
	outFile      string
	stateFile    string
	width        int
	height       int
	wireframe    bool
	clearColor32 = xyz.Color{R: 0.05, G: 0.05, B: 0.08, A: 1}
)

var rootCmd = &cobra.Command{
	Use:   "rastercli",
	Short: "rastercli renders a demo triangle mesh with the CPU rasterizer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "out.png", "output image path")
	rootCmd.Flags().StringVarP(&stateFile, "state", "s", "", "render state asset file (.toml, .yaml, or .json)")
	rootCmd.Flags().IntVar(&width, "width", 512, "image width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 512, "image height in pixels")
	rootCmd.Flags().BoolVar(&wireframe, "wireframe", false, "draw as wireframe instead of shaded")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	state := xyz.DefaultRenderState()
	if stateFile != "" {
		loaded, err := xyz.LoadRenderState(stateFile)
		if err != nil {
			return fmt.Errorf("rastercli: loading render state: %w", err)
		}
		state = loaded
		slog.Info("loaded render state", "file", stateFile)
	}

	canvas := xyz.NewImageCanvas(width, height)
	canvas.Clear(clearColor32, 1)

	cam := xyz.NewPerspectiveCamera(
		math32.Vec3(1.5, 1.2, 3), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0),
		50, float32(width)/float32(height), 0.1, 100)

	mesh := demoCubeMesh()
	model := math32.Identity4()

	if wireframe {
		xyz.DrawWireframe(mesh, model, xyz.Color{R: 1, G: 1, B: 1, A: 1}, canvas, cam)
	} else {
		shader := newLitShader(math32.Vec3(2, 3, 2))
		pipe := xyz.NewPipeline(shader.Schema())
		if err := pipe.Draw(mesh, shader, state, canvas, cam, model); err != nil {
			return fmt.Errorf("rastercli: draw: %w", err)
		}
	}

	if err := imagex.Save(canvasImage{canvas}, outFile); err != nil {
		return fmt.Errorf("rastercli: saving %s: %w", outFile, err)
	}
	slog.Info("wrote image", "file", outFile, "width", width, "height", height)
	return nil
}
