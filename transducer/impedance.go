package transducer

import (
	"math"
	"math/cmplx"
)

// Point holds every intermediate quantity of one sweep sample.
type Point struct {
	Frequency float64

	ZM    complex128 // mechanical impedance, N·s/m
	ZE    complex128 // motional impedance reflected to the coil, Ω
	ZCoil complex128 // blocked coil impedance, Ω
	ZTot  complex128 // total circuit impedance, Ω
	V     complex128 // terminal voltage, V
	U     complex128 // diaphragm velocity per unit drive, BL·I/ZM

	PU  float64 // acoustic power
	PWR float64 // electrical input power, W

	VoltageMagnitude float64
	Efficiency       float64 // PU/PWR, not clamped
}

// MechanicalImpedance returns ZM at angular frequency w and wavenumber k.
//
// The suspension, moving mass and the air volume form the lumped part; the
// damped transmission line of length L adds
//
//	Z0·(K·sinh a·cosh a + α·sin b·cos b) / (K·(1+(α/K)²)·D)   (real)
//	Z0·(α·sinh a·cosh a − K·sin b·cos b) / (K·(1+α/K)·D)      (imaginary)
//
// with a = α·L, b = K·L and D = (sin b·cosh a)² + (cos b·sinh a)².
// The imaginary part is normalized by 1+α/K, not 1+(α/K)². Reference
// results depend on that form, so it is kept as is.
func MechanicalImpedance(p Parameters, d Derived, w, k float64) complex128 {
	a := d.Alpha * p.LineLength
	b := k * p.LineLength

	sinB, cosB := math.Sin(b), math.Cos(b)
	sinhA, coshA := math.Sinh(a), math.Cosh(a)

	sc := sinB * coshA
	cs := cosB * sinhA
	den := sc*sc + cs*cs

	r := d.Alpha / k
	damped := sinhA * coshA
	standing := sinB * cosB

	rezm := p.MechResistance +
		d.LineImpedance*(k*damped+d.Alpha*standing)/(k*(1+r*r)*den)
	imzm := w*p.MovingMass - p.Stiffness/w - d.SVOL/w +
		d.LineImpedance*(d.Alpha*damped-k*standing)/(k*(1+r)*den)

	return complex(rezm, imzm)
}

// Evaluate computes one sample of the frequency response at f Hz.
//
// Division by a zero mechanical impedance or a zero input power is not
// trapped: NaN and Inf propagate into the returned values.
func Evaluate(p Parameters, d Derived, f float64) Point {
	w := 2 * math.Pi * f
	k := w / p.SoundSpeed
	lcoil := w * p.CoilInductance

	zm := MechanicalImpedance(p, d, w, k)

	bl := complex(p.ForceFactor, 0)
	current := complex(p.DriveCurrent, 0)
	area := complex(p.RadiatingArea, 0)

	ze := bl * bl / zm
	zcoil := complex(p.CoilResistance, lcoil)
	ztot := complex(p.GeneratorResistance, 0) + zcoil + ze
	v := current * ztot
	u := bl * current / zm

	pu := 0.5 * real((ztot*u/area)*cmplx.Conj(u)) * p.RadiatingArea
	pwr := 0.5 * real(current*cmplx.Conj(v))

	return Point{
		Frequency:        f,
		ZM:               zm,
		ZE:               ze,
		ZCoil:            zcoil,
		ZTot:             ztot,
		V:                v,
		U:                u,
		PU:               pu,
		PWR:              pwr,
		VoltageMagnitude: cmplx.Abs(v),
		Efficiency:       pu / pwr,
	}
}
