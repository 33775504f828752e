package css

import (
	"github.com/chewxy/math32"
	"github.com/npillmayer/guistyle/maybe"
)

// LinearColorStop is a color stop of a linear or radial gradient. The offset
// may be omitted, see NormalizeLinearStops.
type LinearColorStop struct {
	Offset maybe.Maybe[PercentageValue]
	Color  ColorU
}

// RadialColorStop is a color stop of a conic gradient, positioned by angle.
type RadialColorStop struct {
	Offset maybe.Maybe[AngleValue]
	Color  ColorU
}

// NormalizedLinearColorStop is a linear color stop with an explicit offset.
type NormalizedLinearColorStop struct {
	Offset PercentageValue
	Color  ColorU
}

// NormalizedRadialColorStop is a radial color stop with an explicit angle.
type NormalizedRadialColorStop struct {
	Angle AngleValue
	Color ColorU
}

// LinearStop creates a linear color stop at offset percent.
func LinearStop(c ColorU, percent float32) LinearColorStop {
	return LinearColorStop{Offset: maybe.Just(NewPercentage(percent)), Color: c}
}

// LinearStopAuto creates a linear color stop without an offset.
func LinearStopAuto(c ColorU) LinearColorStop {
	return LinearColorStop{Offset: maybe.Nothing[PercentageValue](), Color: c}
}

// RadialStop creates a radial color stop at angle a.
func RadialStop(c ColorU, a AngleValue) RadialColorStop {
	return RadialColorStop{Offset: maybe.Just(a), Color: c}
}

// RadialStopAuto creates a radial color stop without an angle.
func RadialStopAuto(c ColorU) RadialColorStop {
	return RadialColorStop{Offset: maybe.Nothing[AngleValue](), Color: c}
}

func (s LinearColorStop) String() string {
	var p PercentageValue
	switch m := s.Offset.Match(); m {
	case m.Just(&p):
		return s.Color.CSS() + " " + p.String()
	}
	return s.Color.CSS()
}

func (s RadialColorStop) String() string {
	var a AngleValue
	switch m := s.Offset.Match(); m {
	case m.Just(&a):
		return s.Color.CSS() + " " + a.String()
	}
	return s.Color.CSS()
}

// Normalizing color stops
//
// Missing offsets are filled in:
//
//   - a missing first offset is the start of the scale, a missing last offset
//     its end (100% for linear stops, 360° for radial stops)
//   - a run of k missing offsets between the anchors a and b is distributed
//     with step (max(a,b) − a)/(k+1)
//
// The result is not required to be monotonic; renderers treat equal offsets
// as hard stops. Normalizing normalized stops is the identity.

// distributeOffsets fills in the missing entries of offsets, where present
// tells which entries are given. start and end are the endpoints of the
// scale.
func distributeOffsets(offsets []float32, present []bool, start, end float32) {
	n := len(offsets)
	if n == 0 {
		return
	}
	if !present[0] {
		offsets[0], present[0] = start, true
	}
	if !present[n-1] {
		offsets[n-1], present[n-1] = end, true
	}
	anchor := 0
	for i := 1; i < n; i++ {
		if !present[i] {
			continue
		}
		if k := i - anchor - 1; k > 0 {
			a, b := offsets[anchor], offsets[i]
			step := (math32.Max(a, b) - a) / float32(k+1)
			for j := 1; j <= k; j++ {
				offsets[anchor+j] = a + step*float32(j)
			}
		}
		anchor = i
	}
}

// NormalizeLinearStops fills in missing offsets of linear color stops.
func NormalizeLinearStops(stops []LinearColorStop) []NormalizedLinearColorStop {
	if len(stops) == 0 {
		return []NormalizedLinearColorStop{}
	}
	offsets := make([]float32, len(stops))
	present := make([]bool, len(stops))
	given := make([]PercentageValue, len(stops))
	for i, s := range stops {
		var p PercentageValue
		switch m := s.Offset.Match(); m {
		case m.Just(&p):
			offsets[i], present[i], given[i] = p.Get(), true, p
		}
	}
	origin := append([]bool(nil), present...)
	distributeOffsets(offsets, present, 0, 100)
	r := make([]NormalizedLinearColorStop, len(stops))
	for i, s := range stops {
		r[i].Color = s.Color
		if origin[i] {
			r[i].Offset = given[i]
		} else {
			r[i].Offset = NewPercentage(offsets[i])
		}
	}
	return r
}

// NormalizeRadialStops fills in missing angles of radial color stops.
// Given angles are compared in degrees.
func NormalizeRadialStops(stops []RadialColorStop) []NormalizedRadialColorStop {
	if len(stops) == 0 {
		return []NormalizedRadialColorStop{}
	}
	offsets := make([]float32, len(stops))
	present := make([]bool, len(stops))
	given := make([]AngleValue, len(stops))
	for i, s := range stops {
		var a AngleValue
		switch m := s.Offset.Match(); m {
		case m.Just(&a):
			offsets[i], present[i], given[i] = a.ToDegrees(), true, a
		}
	}
	origin := append([]bool(nil), present...)
	distributeOffsets(offsets, present, 0, 360)
	r := make([]NormalizedRadialColorStop, len(stops))
	for i, s := range stops {
		r[i].Color = s.Color
		if origin[i] {
			r[i].Angle = given[i]
		} else {
			r[i].Angle = Deg(offsets[i])
		}
	}
	return r
}

// Denormalize turns normalized stops back into stops with explicit offsets.
func Denormalize(stops []NormalizedLinearColorStop) []LinearColorStop {
	r := make([]LinearColorStop, len(stops))
	for i, s := range stops {
		r[i] = LinearColorStop{Offset: maybe.Just(s.Offset), Color: s.Color}
	}
	return r
}

// DenormalizeRadial turns normalized radial stops back into stops with
// explicit angles.
func DenormalizeRadial(stops []NormalizedRadialColorStop) []RadialColorStop {
	r := make([]RadialColorStop, len(stops))
	for i, s := range stops {
		r[i] = RadialColorStop{Offset: maybe.Just(s.Angle), Color: s.Color}
	}
	return r
}
