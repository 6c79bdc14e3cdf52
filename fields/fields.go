/*
Package fields implements boundary conditions ("patch fields") for scalar and
vector fields on a mesh patch, selected by type name from an input dictionary.
The wave conditions impose a wave superposition model at an open boundary:
waveVelocity on the velocity field, and waveAlpha on the phase fraction field,
which adapts per face between imposed value and zero gradient from the sign of
the companion velocity condition's outward flux.
*/
package fields

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/freesurface/wavebc/mesh"
)

// WaveModel is the wave kinematics provider the wave conditions query. It is
// satisfied by waves.Superposition.
type WaveModel interface {
	Elevation(x, y, t float64) float64
	Velocity(x, y, z, t float64) [3]float64
	Fraction(p *mesh.Patch, t float64, liquid bool) *mat.VecDense
}

// PatchField is the capability every boundary condition implements.
type PatchField interface {
	// UpdateCoeffs refreshes the condition's coefficients for simulation
	// time t. Conditions that depend on a companion field's coefficients
	// must be updated after that companion; the caller owns the ordering.
	UpdateCoeffs(t float64)
	Type() string
	Write(w io.Writer) error
}

// ScalarPatchField additionally evaluates face values of a scalar field from
// the owner-cell values adjacent to the patch.
type ScalarPatchField interface {
	PatchField
	Evaluate(internal *mat.VecDense) *mat.VecDense
}

// FluxProvider is implemented by velocity conditions that expose the signed
// outward volumetric flux through each patch face, outward positive.
type FluxProvider interface {
	OutwardFlux() *mat.VecDense
}

// Set holds the boundary conditions of all fields sharing one patch, keyed by
// field name. Conditions that reference a companion field resolve it here.
type Set map[string]PatchField

// Dict is a parsed boundary condition dictionary from the input deck.
type Dict map[string]interface{}

func (d Dict) String(key, def string) string {
	if raw, ok := d[key]; ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return def
}

func (d Dict) Bool(key string, def bool) bool {
	if raw, ok := d[key]; ok {
		if b, ok := raw.(bool); ok {
			return b
		}
	}
	return def
}

func (d Dict) Float(key string, def float64) float64 {
	if raw, ok := d[key]; ok {
		if f, ok := raw.(float64); ok {
			return f
		}
	}
	return def
}

// Constructor builds a boundary condition on patch p from its dictionary.
// model supplies wave kinematics (may be nil for conditions that need none)
// and fs the already constructed conditions of companion fields on the patch.
type Constructor func(p *mesh.Patch, d Dict, model WaveModel, fs Set) (PatchField, error)

var allocators = map[string]Constructor{}

// Register adds a boundary condition type to the run time selection table.
func Register(typeName string, c Constructor) {
	allocators[typeName] = c
}

// New selects a boundary condition constructor by type name and invokes it.
func New(typeName string, p *mesh.Patch, d Dict, model WaveModel, fs Set) (PatchField, error) {
	alloc, ok := allocators[typeName]
	if !ok {
		return nil, fmt.Errorf("unknown boundary condition type [%s], have %v",
			typeName, Types())
	}
	return alloc(p, d, model, fs)
}

// Types lists the registered boundary condition type names, sorted.
func Types() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
