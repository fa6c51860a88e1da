package footprint

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Modeling constants.
const (
	// KgPerTonne converts tonne-km transport factors to per-kg-km.
	KgPerTonne = 1000.0

	// UseEOLMultiplier scales the use/end-of-life heuristic. It is a tuning
	// constant of the model, not a physical quantity.
	UseEOLMultiplier = 2.0

	// SourcingTransport is the freight mode charged for moving raw materials
	// to the factory, independent of the product's distribution method.
	SourcingTransport = TransportTruck
)

// Factors holds the three emission factor tables.
//
// Material factors are kg CO2e per kg, transport factors are kg CO2e per
// tonne-km and energy factors are kg CO2e per kWh.
type Factors struct {
	Material  map[MaterialType]float64    `json:"material"  yaml:"material"`
	Transport map[TransportMethod]float64 `json:"transport" yaml:"transport"`
	Energy    map[EnergySource]float64    `json:"energy"    yaml:"energy"`
}

// DefaultFactors returns a fresh copy of the built-in factor tables.
func DefaultFactors() Factors {
	return Factors{
		Material: map[MaterialType]float64{
			MaterialAluminum: 11.0,
			MaterialSteel:    2.8,
			MaterialPlastic:  3.5,
			MaterialPaper:    1.8,
			MaterialGlass:    0.9,
			MaterialWood:     0.7,
			MaterialCotton:   5.5,
			MaterialOther:    2.5,
		},
		Transport: map[TransportMethod]float64{
			TransportTruck: 0.1,
			TransportRail:  0.03,
			TransportShip:  0.015,
			TransportAir:   0.6,
		},
		Energy: map[EnergySource]float64{
			EnergyGrid:      0.4,
			EnergyRenewable: 0.05,
			EnergyMixed:     0.25,
		},
	}
}

// Clone returns a deep copy of f.
func (f Factors) Clone() Factors {
	c := Factors{
		Material:  make(map[MaterialType]float64, len(f.Material)),
		Transport: make(map[TransportMethod]float64, len(f.Transport)),
		Energy:    make(map[EnergySource]float64, len(f.Energy)),
	}
	for k, v := range f.Material {
		c.Material[k] = v
	}
	for k, v := range f.Transport {
		c.Transport[k] = v
	}
	for k, v := range f.Energy {
		c.Energy[k] = v
	}
	return c
}

// Validate checks that every recognized key is present with a finite,
// non-negative value and that no unrecognized keys are present.
func (f Factors) Validate() error {
	for k, v := range f.Material {
		if !k.Valid() {
			return fmt.Errorf("%w: material %q", ErrUnknownFactorKey, k)
		}
		if err := checkFactor(v); err != nil {
			return fmt.Errorf("material %q: %w", k, err)
		}
	}
	for k, v := range f.Transport {
		if !k.Valid() {
			return fmt.Errorf("%w: transport %q", ErrUnknownFactorKey, k)
		}
		if err := checkFactor(v); err != nil {
			return fmt.Errorf("transport %q: %w", k, err)
		}
	}
	for k, v := range f.Energy {
		if !k.Valid() {
			return fmt.Errorf("%w: energy %q", ErrUnknownFactorKey, k)
		}
		if err := checkFactor(v); err != nil {
			return fmt.Errorf("energy %q: %w", k, err)
		}
	}

	for _, k := range MaterialTypes() {
		if _, ok := f.Material[k]; !ok {
			return fmt.Errorf("%w: material %q", ErrMissingFactor, k)
		}
	}
	for _, k := range TransportMethods() {
		if _, ok := f.Transport[k]; !ok {
			return fmt.Errorf("%w: transport %q", ErrMissingFactor, k)
		}
	}
	for _, k := range EnergySources() {
		if _, ok := f.Energy[k]; !ok {
			return fmt.Errorf("%w: energy %q", ErrMissingFactor, k)
		}
	}
	return nil
}

func checkFactor(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFactor, v)
	}
	return nil
}

// LoadFactors reads a YAML override file and applies it on top of the
// defaults. Keys missing from the file keep their default value. An empty
// path returns the defaults.
func LoadFactors(path string) (Factors, error) {
	factors := DefaultFactors()
	if path == "" {
		return factors, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Factors{}, fmt.Errorf("reading factor file %s: %w", path, err)
	}

	var overlay Factors
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return Factors{}, fmt.Errorf("parsing factor file %s: %w", path, err)
	}

	for k, v := range overlay.Material {
		factors.Material[k] = v
	}
	for k, v := range overlay.Transport {
		factors.Transport[k] = v
	}
	for k, v := range overlay.Energy {
		factors.Energy[k] = v
	}

	if err = factors.Validate(); err != nil {
		return Factors{}, fmt.Errorf("factor file %s: %w", path, err)
	}
	return factors, nil
}
