package passive

import (
	"errors"
	"reflect"
	"testing"
)

func TestThreeWay_Composition(t *testing.T) {
	const (
		rw, rm, rt = 8.0, 6.0, 4.0
		flz, fhz   = 450.0, 3800.0
	)

	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			got, err := ThreeWay(rw, rm, rt, flz, fhz, typ)
			if err != nil {
				t.Fatal(err)
			}

			woofer, _ := Calculate(rw, rw, flz, typ)
			midLow, _ := Calculate(rm, rm, flz, typ)
			midHigh, _ := Calculate(rm, rm, fhz, typ)
			tweeter, _ := Calculate(rt, rt, fhz, typ)

			if !reflect.DeepEqual(got.Woofer, woofer.LowPass) {
				t.Errorf("Woofer = %v, want %v", got.Woofer, woofer.LowPass)
			}
			if !reflect.DeepEqual(got.Tweeter, tweeter.HighPass) {
				t.Errorf("Tweeter = %v, want %v", got.Tweeter, tweeter.HighPass)
			}

			n := len(midLow.HighPass)
			if len(got.Midrange) != n+len(midHigh.LowPass) {
				t.Fatalf("len(Midrange) = %d, want %d", len(got.Midrange), n+len(midHigh.LowPass))
			}
			if !reflect.DeepEqual(got.Midrange[:n], midLow.HighPass) {
				t.Errorf("Midrange high-pass = %v, want %v", got.Midrange[:n], midLow.HighPass)
			}
			if !reflect.DeepEqual(got.Midrange[n:], midHigh.LowPass) {
				t.Errorf("Midrange low-pass = %v, want %v", got.Midrange[n:], midHigh.LowPass)
			}
		})
	}
}

func TestThreeWay_Errors(t *testing.T) {
	tests := []struct {
		name               string
		rw, rm, rt, lo, hi float64
		typ                Type
		want               error
	}{
		{"equal points", 8, 8, 8, 2000, 2000, TypeButterworth2, ErrFrequencyOrder},
		{"swapped points", 8, 8, 8, 4000, 500, TypeButterworth2, ErrFrequencyOrder},
		{"zero low point", 8, 8, 8, 0, 500, TypeButterworth2, ErrDegenerate},
		{"zero midrange", 8, 0, 8, 500, 4000, TypeButterworth2, ErrDegenerate},
		{"zero tweeter", 8, 8, 0, 500, 4000, TypeButterworth2, ErrDegenerate},
		{"unknown type", 8, 8, 8, 500, 4000, Type(42), ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ThreeWay(tt.rw, tt.rm, tt.rt, tt.lo, tt.hi, tt.typ)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
