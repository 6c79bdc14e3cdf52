/*
Package waves implements a linear (Airy) wave superposition: surface elevation
and orbital velocity at a point and time, and the per-face phase fraction a
free-surface boundary condition imposes at an open boundary.
*/
package waves

import (
	"fmt"
	"math"
)

const (
	// Gravitational acceleration magnitude used by the deep water dispersion relation
	G = 9.80665
)

// Component is one linear wave in the superposition.
type Component struct {
	Amplitude float64    `yaml:"Amplitude"`
	Length    float64    `yaml:"Length"` // Wavelength
	Phase     float64    `yaml:"Phase"`  // Phase offset in radians
	Direction [2]float64 `yaml:"Direction"`
}

// wavenumber magnitude and deep water angular frequency
func (c Component) wavenumber() float64 { return 2. * math.Pi / c.Length }
func (c Component) omega() float64      { return math.Sqrt(G * c.wavenumber()) }

type Superposition struct {
	MeanLevel   float64
	MeanCurrent [3]float64
	Components  []Component
}

func NewSuperposition(meanLevel float64, meanCurrent [3]float64,
	components []Component) (s *Superposition, err error) {
	for i, c := range components {
		if c.Amplitude < 0 {
			err = fmt.Errorf("wave component %d: amplitude %g is negative", i, c.Amplitude)
			return
		}
		if c.Length <= 0 {
			err = fmt.Errorf("wave component %d: wavelength %g, must be positive", i, c.Length)
			return
		}
		norm := math.Hypot(c.Direction[0], c.Direction[1])
		if norm == 0 {
			err = fmt.Errorf("wave component %d: direction is the zero vector", i)
			return
		}
		// Normalize the propagation direction in place
		components[i].Direction[0] /= norm
		components[i].Direction[1] /= norm
	}
	s = &Superposition{
		MeanLevel:   meanLevel,
		MeanCurrent: meanCurrent,
		Components:  components,
	}
	return
}

// Elevation returns the free surface height at horizontal position (x,y), time t.
func (s *Superposition) Elevation(x, y, t float64) (eta float64) {
	eta = s.MeanLevel
	for _, c := range s.Components {
		theta := c.wavenumber()*(c.Direction[0]*x+c.Direction[1]*y) - c.omega()*t + c.Phase
		eta += c.Amplitude * math.Cos(theta)
	}
	return
}

// Velocity returns the fluid velocity at (x,y,z), time t: the mean current
// plus the superposed deep water orbital velocities. The orbital contribution
// decays as exp(k z') with z' the depth below the mean level; above the mean
// level the decay factor is held at one.
func (s *Superposition) Velocity(x, y, z, t float64) (U [3]float64) {
	U = s.MeanCurrent
	for _, c := range s.Components {
		var (
			k     = c.wavenumber()
			omega = c.omega()
			theta = k*(c.Direction[0]*x+c.Direction[1]*y) - omega*t + c.Phase
			zRel  = math.Min(z-s.MeanLevel, 0)
			decay = math.Exp(k * zRel)
			uMag  = c.Amplitude * omega * decay
		)
		U[0] += uMag * math.Cos(theta) * c.Direction[0]
		U[1] += uMag * math.Cos(theta) * c.Direction[1]
		U[2] += uMag * math.Sin(theta)
	}
	return
}
