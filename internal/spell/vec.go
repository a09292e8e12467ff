package spell

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit vector in v's direction, or the zero vector
// if v has no length.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector pointing at angle a (radians).
func FromAngle(a float64) Vec2 {
	return Vec2{math.Cos(a), math.Sin(a)}
}

// RotateToward turns direction dir toward the direction of want by at
// most maxDelta radians, returning a unit vector. Used for bounded-rate
// steering.
func RotateToward(dir, want Vec2, maxDelta float64) Vec2 {
	if want.Len() == 0 || maxDelta <= 0 {
		return dir
	}
	cur := dir.Angle()
	diff := normalizeAngle(want.Angle() - cur)
	if math.Abs(diff) <= maxDelta {
		return want.Normalized()
	}
	if diff < 0 {
		maxDelta = -maxDelta
	}
	return FromAngle(cur + maxDelta)
}

// normalizeAngle wraps a into (-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
