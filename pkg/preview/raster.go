package preview

import (
	"image"
	"image/color"
	"math"
)

// canvas is an image with a depth buffer
type canvas struct {
	img   *image.RGBA
	depth []float64
}

func newCanvas(width, height int, background color.RGBA) *canvas {
	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depth: make([]float64, width*height),
	}
	for i := range c.depth {
		c.depth[i] = math.Inf(1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.img.SetRGBA(x, y, background)
		}
	}
	return c
}

// screenPoint is a projected vertex: pixel position plus depth
type screenPoint struct{ x, y, z float64 }

// fillTriangle scan-converts a triangle, keeping the nearest depth per pixel
func (c *canvas) fillTriangle(p1, p2, p3 screenPoint, col color.RGBA) {
	// sort by y, top to bottom
	if p1.y > p2.y {
		p1, p2 = p2, p1
	}
	if p2.y > p3.y {
		p2, p3 = p3, p2
	}
	if p1.y > p2.y {
		p1, p2 = p2, p1
	}
	if p3.y == p1.y {
		return
	}

	bounds := c.img.Bounds()
	width := bounds.Max.X

	yStart := int(math.Max(0, math.Ceil(p1.y)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(p3.y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		// the long edge p1-p3 spans every scanline, the short one switches at p2
		xa, za := lerp(p1, p3, fy)
		var xb, zb float64
		if fy < p2.y {
			xb, zb = lerp(p1, p2, fy)
		} else {
			xb, zb = lerp(p2, p3, fy)
		}
		if xa > xb {
			xa, xb = xb, xa
			za, zb = zb, za
		}

		xStart := int(math.Max(0, math.Ceil(xa)))
		xEnd := int(math.Min(float64(width-1), math.Floor(xb)))

		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if xb != xa {
				t = (float64(x) - xa) / (xb - xa)
			}
			z := za + t*(zb-za)

			idx := y*width + x
			if z < c.depth[idx] {
				c.depth[idx] = z
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// lerp returns x and depth where the edge a-b crosses scanline y
func lerp(a, b screenPoint, y float64) (float64, float64) {
	if b.y == a.y {
		return a.x, a.z
	}
	t := (y - a.y) / (b.y - a.y)
	return a.x + t*(b.x-a.x), a.z + t*(b.z-a.z)
}

// drawLine draws a line on the image using Bresenham's algorithm, ignoring depth
func (c *canvas) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	bounds := c.img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			c.img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
