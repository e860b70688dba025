package defense

import (
	"math"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Camera is a perspective camera looking at the origin with +Z up
type Camera struct {
	X, Y, Z float64
	FOV     float64 // Vertical, degrees
	Width   float64 // Screen pixels
	Height  float64
}

// DefaultCamera returns the overhead camera used for placement
func DefaultCamera() Camera {
	return Camera{
		X:      constants.CameraX,
		Y:      constants.CameraY,
		Z:      constants.CameraZ,
		FOV:    constants.CameraFOV,
		Width:  constants.ScreenWidth,
		Height: constants.ScreenHeight,
	}
}

type vec3 struct{ x, y, z float64 }

func (a vec3) dot(b vec3) float64 {
	return a.x*b.x + a.y*b.y + a.z*b.z
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{a.y*b.z - a.z*b.y, a.z*b.x - a.x*b.z, a.x*b.y - a.y*b.x}
}

func (a vec3) norm() vec3 {
	l := math.Sqrt(a.x*a.x + a.y*a.y + a.z*a.z)
	if l == 0 {
		return a
	}
	return vec3{a.x / l, a.y / l, a.z / l}
}

// ScreenToWorld casts a ray through a screen pixel (origin top-left) onto the z=0 plane
// A ray parallel to the ground is projected a fixed distance along the view direction instead
func (c Camera) ScreenToWorld(sx, sy float64) vmath.Vec2F {
	ndcX := sx/c.Width*2 - 1
	ndcY := 1 - sy/c.Height*2

	frustumH := 2 * math.Tan(vmath.Radians(c.FOV)/2)
	frustumW := frustumH * c.Width / c.Height
	ray := vec3{ndcX * frustumW / 2, ndcY * frustumH / 2, -1}.norm()

	forward, right, up := c.basis()

	// View space has -Z forward, so the forward basis is weighted by -ray.z
	world := vec3{
		ray.x*right.x + ray.y*up.x - ray.z*forward.x,
		ray.x*right.y + ray.y*up.y - ray.z*forward.y,
		ray.x*right.z + ray.y*up.z - ray.z*forward.z,
	}

	if math.Abs(world.z) > 1e-10 {
		t := -c.Z / world.z
		return vmath.Vec2F{X: c.X + t*world.x, Y: c.Y + t*world.y}
	}
	return vmath.Vec2F{X: c.X + ray.x*1000, Y: c.Y + ray.y*1000}
}

func (c Camera) basis() (forward, right, up vec3) {
	forward = vec3{-c.X, -c.Y, -c.Z}.norm()
	right = forward.cross(vec3{0, 0, 1}).norm()
	up = right.cross(forward)
	return forward, right, up
}

// WorldToScreen projects a point at height z to screen pixels (origin top-left)
// ok is false for points behind the camera
func (c Camera) WorldToScreen(p vmath.Vec2F, z float64) (sx, sy float64, ok bool) {
	forward, right, up := c.basis()
	view := vec3{p.X - c.X, p.Y - c.Y, z - c.Z}

	depth := view.dot(forward)
	if depth <= 1e-6 {
		return 0, 0, false
	}

	frustumH := 2 * math.Tan(vmath.Radians(c.FOV)/2)
	frustumW := frustumH * c.Width / c.Height
	ndcX := view.dot(right) / depth / (frustumW / 2)
	ndcY := view.dot(up) / depth / (frustumH / 2)

	return (ndcX + 1) / 2 * c.Width, (1 - ndcY) / 2 * c.Height, true
}

// Pan moves the camera on the ground plane
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx
	c.Y += dy
}
