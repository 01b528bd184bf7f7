package transducer

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by every precondition error returned before
// a sweep starts.
var ErrInvalidParameter = errors.New("transducer: invalid parameter")

// Precondition errors. All of them satisfy errors.Is(err, ErrInvalidParameter).
var (
	ErrInvalidFrequency   = fmt.Errorf("%w: frequency must be positive and finite", ErrInvalidParameter)
	ErrZeroQuality        = fmt.Errorf("%w: quality factor must be non-zero", ErrInvalidParameter)
	ErrZeroSoundSpeed     = fmt.Errorf("%w: speed of sound must be non-zero", ErrInvalidParameter)
	ErrZeroVolume         = fmt.Errorf("%w: volume must be non-zero", ErrInvalidParameter)
	ErrNonFiniteParameter = fmt.Errorf("%w: parameter is NaN or Inf", ErrInvalidParameter)
	ErrEmptySweep         = fmt.Errorf("%w: sweep has no frequencies", ErrInvalidParameter)
)

// Parameters holds the physical and electrical constants of one driver.
// All values are SI units. A Parameters value is never modified by the
// solver.
type Parameters struct {
	MechResistance      float64 `json:"rm" yaml:"rm"`     // mechanical resistance, N·s/m
	MovingMass          float64 `json:"m" yaml:"m"`       // moving mass, kg
	Stiffness           float64 `json:"ssup" yaml:"ssup"` // suspension stiffness, N/m
	AirDensity          float64 `json:"rho" yaml:"rho"`   // kg/m³
	SoundSpeed          float64 `json:"c" yaml:"c"`       // m/s
	RadiatingArea       float64 `json:"s" yaml:"s"`       // driver radiating area, m²
	ThroatArea          float64 `json:"a" yaml:"a"`       // area coupling the volume and the line, m²
	Volume              float64 `json:"vol" yaml:"vol"`   // enclosure/throat volume, m³
	LineLength          float64 `json:"l" yaml:"l"`       // transmission line length, m
	ForceFactor         float64 `json:"bl" yaml:"bl"`     // BL, T·m
	QualityFactor       float64 `json:"q" yaml:"q"`
	CenterFreq          float64 `json:"f0" yaml:"f0"` // Hz
	CoilResistance      float64 `json:"re" yaml:"re"` // voice-coil DC resistance, Ω
	CoilInductance      float64 `json:"le" yaml:"le"` // voice-coil inductance, H
	GeneratorResistance float64 `json:"rg" yaml:"rg"` // Ω
	DriveCurrent        float64 `json:"i" yaml:"i"`   // drive current amplitude, A
	// Sections is the number of wave-guide sections. It does not enter the
	// impedance model.
	Sections float64 `json:"n" yaml:"n"`
}

// DefaultParameters returns the reference compression driver.
func DefaultParameters() Parameters {
	return Parameters{
		MechResistance:      3.53e-3,
		MovingMass:          0.0045,
		Stiffness:           2.6e4,
		AirDensity:          1.68,
		SoundSpeed:          1000,
		RadiatingArea:       1.521e-3,
		ThroatArea:          7.13e-5,
		Volume:              2.715e-6,
		LineLength:          0.625,
		ForceFactor:         8,
		QualityFactor:       15,
		CenterFreq:          800,
		CoilResistance:      8,
		CoilInductance:      0,
		GeneratorResistance: 0,
		DriveCurrent:        1,
		Sections:            1,
	}
}

// Validate checks the preconditions of the impedance model.
func (p Parameters) Validate() error {
	for _, f := range p.fields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s", ErrNonFiniteParameter, f.name)
		}
	}

	if p.QualityFactor == 0 {
		return ErrZeroQuality
	}

	if p.SoundSpeed == 0 {
		return ErrZeroSoundSpeed
	}

	if p.Volume == 0 {
		return ErrZeroVolume
	}

	if p.CenterFreq <= 0 {
		return fmt.Errorf("%w: f0", ErrInvalidFrequency)
	}

	return nil
}

type namedValue struct {
	name  string
	value float64
}

func (p Parameters) fields() []namedValue {
	return []namedValue{
		{"rm", p.MechResistance},
		{"m", p.MovingMass},
		{"ssup", p.Stiffness},
		{"rho", p.AirDensity},
		{"c", p.SoundSpeed},
		{"s", p.RadiatingArea},
		{"a", p.ThroatArea},
		{"vol", p.Volume},
		{"l", p.LineLength},
		{"bl", p.ForceFactor},
		{"q", p.QualityFactor},
		{"f0", p.CenterFreq},
		{"re", p.CoilResistance},
		{"le", p.CoilInductance},
		{"rg", p.GeneratorResistance},
		{"i", p.DriveCurrent},
		{"n", p.Sections},
	}
}

// Derived holds the sweep-invariant constants computed from Parameters.
type Derived struct {
	// SVOL is the stiffness of the enclosed air volume reflected to the
	// mechanical side: A²·ρ·c²/VOL.
	SVOL float64
	// W0 is the angular center frequency 2π·f0.
	W0 float64
	// Alpha is the line attenuation per metre, W0/(2·Q·c).
	Alpha float64
	// LineImpedance is the characteristic mechanical impedance ρ·c·A of the
	// transmission line.
	LineImpedance float64
}

// Derived computes the constants shared by every sample of a sweep.
func (p Parameters) Derived() Derived {
	c := p.SoundSpeed
	w0 := 2 * math.Pi * p.CenterFreq

	return Derived{
		SVOL:          p.ThroatArea * p.ThroatArea * p.AirDensity * c * c / p.Volume,
		W0:            w0,
		Alpha:         w0 / (2 * p.QualityFactor * c),
		LineImpedance: p.AirDensity * c * p.ThroatArea,
	}
}
