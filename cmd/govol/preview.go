package main

import (
	"fmt"
	"math"
	"os"

	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
	"github.com/philipparndt/govol/pkg/preview"
	"github.com/spf13/cobra"
)

var (
	previewWidth     int
	previewHeight    int
	previewYaw       float64
	previewPitch     float64
	previewWireframe bool
	previewNoCaption bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [file] [output.png]",
	Short: "Render a shaded PNG thumbnail of a model",
	Long:  "Render the model flat-shaded from an orbit camera. The image is captioned with the computed volume unless --no-caption is set.",
	Args:  cobra.ExactArgs(2),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.ValidArgsFunction = completeModelFile

	defaults := preview.DefaultOptions()
	flags := previewCmd.Flags()
	flags.IntVar(&previewWidth, "width", defaults.Width, "Image width in pixels")
	flags.IntVar(&previewHeight, "height", defaults.Height, "Image height in pixels")
	flags.Float64Var(&previewYaw, "yaw", defaults.Yaw*180/math.Pi, "Camera angle about the Z axis in degrees")
	flags.Float64Var(&previewPitch, "pitch", defaults.Pitch*180/math.Pi, "Camera elevation in degrees")
	flags.BoolVar(&previewWireframe, "wireframe", false, "Draw triangle edges")
	flags.BoolVar(&previewNoCaption, "no-caption", false, "Do not print the volume into the image")
}

func runPreview(cmd *cobra.Command, args []string) error {
	src, m, err := loadModel(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	world := worldMesh(src)

	opts := preview.DefaultOptions()
	opts.Width = previewWidth
	opts.Height = previewHeight
	opts.Yaw = previewYaw * math.Pi / 180
	opts.Pitch = previewPitch * math.Pi / 180
	opts.Wireframe = previewWireframe

	if !previewNoCaption {
		volume, err := mesh.ComputeVolume(world, geometry.IdentityTransform(), m.UnitScale)
		if err != nil {
			return err
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		unit := "units³"
		if m.Symbol != "" {
			unit = m.Symbol + "³"
		}
		opts.Caption = fmt.Sprintf("%s  Volume: %s %s", src.Name, printer.Number(volume), unit)
	}

	img, err := preview.Render(world, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := preview.WritePNG(f, img); err != nil {
		return err
	}
	logger.Info("wrote preview", "file", args[1], "width", opts.Width, "height", opts.Height)
	return f.Close()
}
