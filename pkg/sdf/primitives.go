package sdf

import (
	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
)

// Sphere returns the exact signed distance from p to a sphere of the given
// radius centered at the origin.
func Sphere(p core.Vec3, radius float64) float64 {
	return p.Length() - radius
}

// Box returns the exact signed distance from p to an axis-aligned box
// centered at the origin with the given half extents.
func Box(p core.Vec3, halfExtents core.Vec3) float64 {
	q := p.Abs().Subtract(halfExtents)
	outside := q.MaxVec(core.Vec3{}).Length()
	inside := min(q.MaxComponent(), 0)
	return outside + inside
}

// HalfSpace returns the signed distance from p to the plane through anchor
// with the given unit normal. Positive on the side the normal points toward.
func HalfSpace(p, anchor, normal core.Vec3) float64 {
	return p.Subtract(anchor).Dot(normal)
}

// Tetrahedron returns the signed distance from p to the tetrahedron with
// vertices a, b, c, d, computed as the intersection of its four face half
// spaces. The max of the four plane distances is exact inside and near the
// faces and a conservative lower bound near edges and vertices, which is
// safe for sphere tracing.
func Tetrahedron(p, a, b, c, d core.Vec3) float64 {
	dist := faceDistance(p, a, b, c, d)
	dist = max(dist, faceDistance(p, a, b, d, c))
	dist = max(dist, faceDistance(p, a, c, d, b))
	dist = max(dist, faceDistance(p, b, c, d, a))
	return dist
}

// faceDistance is the half-space distance for the face through a, b, c,
// oriented so the opposite vertex lies on the negative side.
func faceDistance(p, a, b, c, opposite core.Vec3) float64 {
	normal := b.Subtract(a).Cross(c.Subtract(a)).Normalize()
	if opposite.Subtract(a).Dot(normal) > 0 {
		normal = normal.Negate()
	}
	return HalfSpace(p, a, normal)
}

// Cross returns the signed distance from p to a cross of three orthogonal
// infinite slabs of the given half width, each aligned with one axis. The
// per-slab distance uses the Chebyshev norm, a lower bound of the Euclidean
// distance, so the result stays safe for sphere tracing. Used as the carving
// shape for Menger-style sponges.
func Cross(p core.Vec3, halfWidth float64) float64 {
	q := p.Abs()
	alongX := max(q.Y, q.Z)
	alongY := max(q.X, q.Z)
	alongZ := max(q.X, q.Y)
	return min(alongX, min(alongY, alongZ)) - halfWidth
}
