// Package preview renders a shaded thumbnail of a mesh to an image.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/philipparndt/govol/pkg/geometry"
	"github.com/philipparndt/govol/pkg/mesh"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidSize is returned for a non-positive image size
var ErrInvalidSize = errors.New("invalid image size")

// Options controls the rendered view
type Options struct {
	Width      int
	Height     int
	Yaw        float64 // camera angle about the Z axis, radians
	Pitch      float64 // camera elevation, radians
	Color      color.RGBA
	Background color.RGBA
	Wireframe  bool
	Caption    string
}

// DefaultOptions returns an 800x600 view from the front right, slightly above
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Yaw:        -math.Pi / 4,
		Pitch:      math.Pi / 6,
		Color:      color.RGBA{R: 70, G: 130, B: 180, A: 255},
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Render draws the mesh flat-shaded with a light at the camera
func Render(m *mesh.Mesh, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	triangles, err := m.Triangles()
	if err != nil {
		return nil, err
	}

	cam := NewCamera(m.BoundingBox(), opts.Yaw, opts.Pitch)
	light := cam.ViewDirection()
	w, h := float64(opts.Width), float64(opts.Height)

	c := newCanvas(opts.Width, opts.Height, opts.Background)

	project := func(v geometry.Vector3) screenPoint {
		x, y, z := cam.Project(v, w, h)
		return screenPoint{x, y, z}
	}

	for _, tri := range triangles {
		n := tri.CalculateNormal()
		intensity := 0.25 + 0.75*math.Abs(n.Dot(light))
		c.fillTriangle(project(tri.V1), project(tri.V2), project(tri.V3), shade(opts.Color, intensity))
	}

	if opts.Wireframe {
		edge := shade(opts.Color, 0.4)
		for _, tri := range triangles {
			p := [3]screenPoint{project(tri.V1), project(tri.V2), project(tri.V3)}
			for k := 0; k < 3; k++ {
				a, b := p[k], p[(k+1)%3]
				if !onScreen(a, w, h) || !onScreen(b, w, h) {
					continue
				}
				c.drawLine(int(a.x), int(a.y), int(b.x), int(b.y), edge)
			}
		}
	}

	if opts.Caption != "" {
		if err := drawCaption(c.img, opts.Caption); err != nil {
			return nil, err
		}
	}

	return c.img, nil
}

// WritePNG encodes an image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func shade(col color.RGBA, intensity float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*intensity))
	}
	return color.RGBA{R: scale(col.R), G: scale(col.G), B: scale(col.B), A: col.A}
}

// onScreen reports whether a projected point is near enough the viewport to draw
func onScreen(p screenPoint, w, h float64) bool {
	return p.x > -w && p.x < 2*w && p.y > -h && p.y < 2*h
}

var captionFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// drawCaption writes text in the bottom left corner
func drawCaption(img *image.RGBA, text string) error {
	f, err := captionFont()
	if err != nil {
		return fmt.Errorf("failed to load caption font: %w", err)
	}

	face := truetype.NewFace(f, &truetype.Options{Size: 14, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	padding := 8
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: face,
		Dot:  fixed.P(padding, img.Bounds().Max.Y-padding-face.Metrics().Descent.Ceil()),
	}
	d.DrawString(text)
	return nil
}
