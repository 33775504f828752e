package css_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/guistyle/css"
)

func TestNormalizeLinearStops(t *testing.T) {
	stops := []css.LinearColorStop{
		css.LinearStopAuto(css.Red),
		css.LinearStopAuto(css.Green),
		css.LinearStop(css.Blue, 50),
		css.LinearStopAuto(css.White),
	}
	expected := []css.NormalizedLinearColorStop{
		{Offset: css.NewPercentage(0), Color: css.Red},
		{Offset: css.NewPercentage(25), Color: css.Green},
		{Offset: css.NewPercentage(50), Color: css.Blue},
		{Offset: css.NewPercentage(100), Color: css.White},
	}
	if diff := cmp.Diff(expected, css.NormalizeLinearStops(stops)); diff != "" {
		t.Errorf("normalized stops differ (-want +got):\n%s", diff)
	}
}

func TestNormalizeStopsIdempotent(t *testing.T) {
	inputs := [][]css.LinearColorStop{
		{},
		{css.LinearStopAuto(css.Red)},
		{css.LinearStop(css.Red, 30), css.LinearStopAuto(css.Blue), css.LinearStopAuto(css.Green), css.LinearStop(css.White, 20)},
		{css.LinearStopAuto(css.Red), css.LinearStopAuto(css.Blue), css.LinearStopAuto(css.Green)},
		{css.LinearStop(css.Red, 10), css.LinearStopAuto(css.Blue), css.LinearStop(css.Green, 80)},
	}
	for i, stops := range inputs {
		once := css.NormalizeLinearStops(stops)
		twice := css.NormalizeLinearStops(css.Denormalize(once))
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("%d: normalization is not idempotent (-once +twice):\n%s", i, diff)
		}
	}
}

func TestNormalizeNonMonotoneStops(t *testing.T) {
	stops := []css.LinearColorStop{
		css.LinearStop(css.Red, 60), css.LinearStopAuto(css.Blue), css.LinearStop(css.Green, 20),
	}
	n := css.NormalizeLinearStops(stops)
	if n[1].Offset != css.NewPercentage(60) {
		t.Errorf("expected stop between 60%% and 20%% to be clamped to 60%%, is %v", n[1].Offset)
	}
}

func TestNormalizeRadialStops(t *testing.T) {
	stops := []css.RadialColorStop{
		css.RadialStopAuto(css.Red),
		css.RadialStopAuto(css.Green),
		css.RadialStopAuto(css.Blue),
	}
	n := css.NormalizeRadialStops(stops)
	degrees := []float32{0, 180, 360}
	for i, s := range n {
		if s.Angle != css.Deg(degrees[i]) {
			t.Errorf("expected stop %d at %v deg, is %v", i, degrees[i], s.Angle)
		}
	}
	again := css.NormalizeRadialStops(css.DenormalizeRadial(n))
	if diff := cmp.Diff(n, again); diff != "" {
		t.Errorf("radial normalization is not idempotent:\n%s", diff)
	}
}
