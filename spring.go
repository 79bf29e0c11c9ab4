package branchline

import "math"

// Spring describes a damped harmonic oscillator driving a value from 0 to 1.
// Low damping relative to stiffness overshoots before settling. A zero or
// negative Damping uses the default of 10, so every spring settles.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	// RestDelta and RestSpeed bound displacement and velocity for Settled.
	RestDelta float64
	RestSpeed float64
}

// Spring defaults.
const (
	defaultSpringDamping   = 10
	defaultSpringMass      = 1
	defaultSpringRestDelta = 0.005
	defaultSpringRestSpeed = 0.01
	springVelocityStep     = 1e-4
)

// NewSpring returns a spring with the given stiffness and damping, unit mass
// and default rest thresholds.
func NewSpring(stiffness, damping float64) Spring {
	return Spring{
		Stiffness: stiffness,
		Damping:   damping,
		Mass:      defaultSpringMass,
		RestDelta: defaultSpringRestDelta,
		RestSpeed: defaultSpringRestSpeed,
	}
}

func (s Spring) normalized() Spring {
	if s.Mass <= 0 {
		s.Mass = defaultSpringMass
	}
	if s.Damping <= 0 {
		s.Damping = defaultSpringDamping
	}
	if s.RestDelta <= 0 {
		s.RestDelta = defaultSpringRestDelta
	}
	if s.RestSpeed <= 0 {
		s.RestSpeed = defaultSpringRestSpeed
	}
	return s
}

// Value returns the spring position at time t seconds after release, starting
// at rest at 0 with a target of 1. A non-positive stiffness snaps to 1.
func (s Spring) Value(t float64) float64 {
	if t <= 0 {
		return 0
	}
	s = s.normalized()
	if s.Stiffness <= 0 {
		return 1
	}
	return 1 + s.displacement(t)
}

// Velocity returns the numerical derivative of Value at t.
func (s Spring) Velocity(t float64) float64 {
	if t <= 0 {
		return 0
	}
	h := springVelocityStep
	lo := math.Max(0, t-h)
	return (s.Value(t+h) - s.Value(lo)) / (t + h - lo)
}

// Settled reports whether the spring is within its rest thresholds at t.
func (s Spring) Settled(t float64) bool {
	if t <= 0 {
		return false
	}
	n := s.normalized()
	if n.Stiffness <= 0 {
		return true
	}
	return math.Abs(s.Value(t)-1) < n.RestDelta && math.Abs(s.Velocity(t)) < n.RestSpeed
}

// displacement solves x'' = -(k/m)x - (c/m)x' with x(0) = -1, x'(0) = 0.
func (s Spring) displacement(t float64) float64 {
	const x0, v0 = -1.0, 0.0
	w0 := math.Sqrt(s.Stiffness / s.Mass)
	zeta := s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))

	switch {
	case zeta < 1:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		env := math.Exp(-zeta * w0 * t)
		return env * (x0*math.Cos(wd*t) + (v0+zeta*w0*x0)/wd*math.Sin(wd*t))
	case zeta == 1:
		return math.Exp(-w0*t) * (x0 + (v0+w0*x0)*t)
	default:
		wh := w0 * math.Sqrt(zeta*zeta-1)
		env := math.Exp(-zeta * w0 * t)
		return env * (x0*math.Cosh(wh*t) + (v0+zeta*w0*x0)/wh*math.Sinh(wh*t))
	}
}
