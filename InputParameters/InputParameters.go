package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type WaveParameters struct {
	Title       string          `yaml:"Title"`
	FinalTime   float64         `yaml:"FinalTime"`
	Dt          float64         `yaml:"Dt"`
	MeanLevel   float64         `yaml:"MeanLevel"`
	MeanCurrent [3]float64      `yaml:"MeanCurrent"`
	Components  []ComponentSpec `yaml:"Components"`
	Patch       PatchSpec       `yaml:"Patch"`
	// First key is the field name, second the BC dictionary entry
	BCs map[string]map[string]interface{} `yaml:"BCs"`
}

// ComponentSpec is one wave in the superposition
type ComponentSpec struct {
	Amplitude float64    `yaml:"Amplitude"`
	Length    float64    `yaml:"Length"`
	Phase     float64    `yaml:"Phase"`
	Direction [2]float64 `yaml:"Direction"`
}

// PatchSpec describes the open boundary patch geometry
type PatchSpec struct {
	Name      string  `yaml:"Name"`
	ZMin      float64 `yaml:"ZMin"`
	ZMax      float64 `yaml:"ZMax"`
	NFaces    int     `yaml:"NFaces"`
	CellDepth float64 `yaml:"CellDepth"`
}

func (wp *WaveParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, wp)
}

func (wp *WaveParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", wp.Title)
	fmt.Printf("%8.5f\t\t= FinalTime\n", wp.FinalTime)
	fmt.Printf("%8.5f\t\t= Dt\n", wp.Dt)
	fmt.Printf("%8.5f\t\t= MeanLevel\n", wp.MeanLevel)
	fmt.Printf("%v\t= MeanCurrent\n", wp.MeanCurrent)
	fmt.Printf("[%d]\t\t\t= Wave Components\n", len(wp.Components))
	for i, c := range wp.Components {
		fmt.Printf("Component[%d] = a: %g, L: %g, phase: %g, dir: %v\n",
			i, c.Amplitude, c.Length, c.Phase, c.Direction)
	}
	fmt.Printf("[%s]\t\t= Patch, %d faces on z in [%g,%g]\n",
		wp.Patch.Name, wp.Patch.NFaces, wp.Patch.ZMin, wp.Patch.ZMax)
	keys := make([]string, len(wp.BCs))
	i := 0
	for k := range wp.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, wp.BCs[key])
	}
}
