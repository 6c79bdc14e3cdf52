package types

type FaceRegime uint8

const (
	RegimeInflow FaceRegime = iota
	RegimeOutflow
)

func (fr FaceRegime) String() string {
	switch fr {
	case RegimeInflow:
		return "Inflow"
	case RegimeOutflow:
		return "Outflow"
	}
	return "Unknown"
}

// BCNameMap maps boundary condition type names, as they appear in an input
// deck, to their canonical registry keys. Keys are lowercase for
// case-insensitive matching.
var BCNameMap = map[string]string{
	"wavealpha":    "waveAlpha",
	"wavevelocity": "waveVelocity",
	"fixedvalue":   "fixedValue",
	"dirichlet":    "fixedValue",
	"zerogradient": "zeroGradient",
	"neumann":      "zeroGradient",
}
