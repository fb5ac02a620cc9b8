package preview

import (
	"math"

	"github.com/philipparndt/govol/pkg/geometry"
)

// maxPitch keeps the camera off the poles where Up and the view direction align
const maxPitch = math.Pi/2 - 0.1

// Camera orbits a target point with Z pointing up
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // vertical field of view in radians
	Distance float64
	Yaw      float64 // rotation about the Z axis
	Pitch    float64 // elevation above the XY plane
}

// NewCamera positions a camera so the whole bounding box is in view
func NewCamera(bbox geometry.BoundingBox, yaw, pitch float64) *Camera {
	fov := math.Pi / 4

	radius := bbox.Diagonal() / 2
	if radius == 0 {
		radius = 1
	}

	c := &Camera{
		Target:   bbox.Center(),
		Up:       geometry.NewVector3(0, 0, 1),
		FOV:      fov,
		Distance: radius / math.Sin(fov/2) * 1.1,
		Yaw:      yaw,
		Pitch:    math.Max(-maxPitch, math.Min(maxPitch, pitch)),
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on yaw and pitch
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	y := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	z := c.Distance * math.Sin(c.Pitch)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// ViewDirection returns the unit vector from the target towards the camera
func (c *Camera) ViewDirection() geometry.Vector3 {
	return c.Position.Sub(c.Target).Normalize()
}

// Project maps a point to screen coordinates and its depth along the view axis
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}
