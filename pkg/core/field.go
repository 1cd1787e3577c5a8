package core

// Object is a signed-distance sample: the distance to the nearest surface
// (negative inside) paired with the surface color at the sample point.
//
// Distance must be an exact value or a conservative lower bound on the true
// distance. The sphere tracer advances rays by the sampled distance, so any
// overestimate can tunnel through geometry; underestimates only cost extra
// steps.
type Object struct {
	Distance float64
	Color    Vec3
}

// Field is a signed distance field with surface colors. Implementations must
// be pure: two calls with the same point return identical results.
type Field interface {
	Evaluate(p Vec3) Object
}

// MarchResult describes the outcome of sphere-tracing a single ray.
type MarchResult struct {
	Position  Vec3    // last sampled point along the ray
	Distance  float64 // total distance travelled
	Color     Vec3    // albedo at the minimum-distance sample seen so far
	Closeness float64 // minimum of sampled distance over distance travelled
	Steps     int     // iterations consumed
	Hit       bool    // true if a surface was found within the budget
}
