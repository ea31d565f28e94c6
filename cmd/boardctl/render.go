package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/board"
)

var (
	renderOut    string
	renderWidth  int
	renderHeight int
	renderZoom   float64
	renderX      float64
	renderY      float64
	renderFit    bool
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <scene-file>",
		Short: "Render a scene to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().StringVarP(&renderOut, "out", "o", "scene.png", "Output PNG path")
	cmd.Flags().IntVar(&renderWidth, "width", 1280, "Viewport width in pixels")
	cmd.Flags().IntVar(&renderHeight, "height", 800, "Viewport height in pixels")
	cmd.Flags().Float64Var(&renderZoom, "zoom", 1, "Camera zoom factor")
	cmd.Flags().Float64Var(&renderX, "x", 0, "Camera world X")
	cmd.Flags().Float64Var(&renderY, "y", 0, "Camera world Y")
	cmd.Flags().BoolVar(&renderFit, "fit", false, "Fit the camera to the scene content")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	eng, err := openScene(args[0], renderWidth, renderHeight)
	if err != nil {
		return err
	}
	defer eng.Close()

	if renderFit {
		fitCamera(eng, 40)
	} else {
		eng.SetCamera(board.Camera{X: renderX, Y: renderY, Zoom: renderZoom})
	}

	if err := eng.SavePNG(renderOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d entities to %s\n", eng.Store().Len(), renderOut)
	return nil
}
