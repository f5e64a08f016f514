/*
Copyright © 2026 the Gaskin authors.
This file is part of Gaskin.

Gaskin is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Gaskin is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Gaskin.  If not, see <http://www.gnu.org/licenses/>.
*/

package rates

import (
	"math"
	"testing"
)

const oneAtm = 101325. // Pa

func testPlog(t *testing.T) *Plog {
	// Rate parameters for CH3 + OH following the multi-pressure table
	// style of typical Plog mechanism entries.
	p, err := NewPlog([]PlogPoint{
		{P: 0.01 * oneAtm, Rate: NewArrhenius(1.2e13, -0.5, 4.16e3)},
		{P: 1 * oneAtm, Rate: NewArrhenius(4.9e14, -0.8, 0)},
		{P: 10 * oneAtm, Rate: NewArrhenius(1.2e15, -0.5, 2.1e3)},
		{P: 100 * oneAtm, Rate: NewArrhenius(5.9e14, -0.2, 6.58e3)},
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// Querying at a pressure exactly matching a stored node must reproduce that
// node's Arrhenius-evaluated rate constant exactly.
func TestPlogAtNode(t *testing.T) {
	const testTolerance = 1.e-12
	p := testPlog(t)
	T := 1100.
	logT, recipT := math.Log(T), 1/T

	r := NewArrhenius(4.9e14, -0.8, 0)
	p.UpdateP(math.Log(oneAtm))
	if different(p.Rate(logT, recipT), r.Rate(logT, recipT), testTolerance) {
		t.Errorf("at node: have %g, want %g", p.Rate(logT, recipT), r.Rate(logT, recipT))
	}
}

// Querying between two nodes must produce a value strictly between the two
// nodes' values.
func TestPlogInterpolation(t *testing.T) {
	p := testPlog(t)
	T := 1100.
	logT, recipT := math.Log(T), 1/T

	p.UpdateP(math.Log(1 * oneAtm))
	k1 := p.Rate(logT, recipT)
	p.UpdateP(math.Log(10 * oneAtm))
	k2 := p.Rate(logT, recipT)
	p.UpdateP(math.Log(3 * oneAtm))
	k := p.Rate(logT, recipT)

	lo, hi := math.Min(k1, k2), math.Max(k1, k2)
	if !(k > lo && k < hi) {
		t.Errorf("interpolated %g not strictly between %g and %g", k, lo, hi)
	}
}

// Out-of-range pressures must clamp to the nearest node rather than
// extrapolate.
func TestPlogClamping(t *testing.T) {
	const testTolerance = 1.e-12
	p := testPlog(t)
	T := 900.
	logT, recipT := math.Log(T), 1/T

	p.UpdateP(math.Log(0.01 * oneAtm))
	kLow := p.Rate(logT, recipT)
	p.UpdateP(math.Log(1e-6 * oneAtm))
	if different(p.Rate(logT, recipT), kLow, testTolerance) {
		t.Errorf("below range: have %g, want %g", p.Rate(logT, recipT), kLow)
	}

	p.UpdateP(math.Log(100 * oneAtm))
	kHigh := p.Rate(logT, recipT)
	p.UpdateP(math.Log(1e5 * oneAtm))
	if different(p.Rate(logT, recipT), kHigh, testTolerance) {
		t.Errorf("above range: have %g, want %g", p.Rate(logT, recipT), kHigh)
	}
}

// Duplicate entries at one pressure are summed, including entries with a
// negative pre-exponential factor.
func TestPlogDuplicateSum(t *testing.T) {
	const testTolerance = 1.e-12
	p, err := NewPlog([]PlogPoint{
		{P: oneAtm, Rate: NewArrhenius(3e13, 0, 5e4)},
		{P: oneAtm, Rate: NewArrhenius(-1e13, 0, 5e4)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.NumPressures() != 1 {
		t.Fatalf("NumPressures: have %d, want 1", p.NumPressures())
	}
	T := 1400.
	logT, recipT := math.Log(T), 1/T
	want := 2e13 * math.Exp(-5e4/(GasConstant*T))
	p.UpdateP(math.Log(oneAtm))
	if different(p.Rate(logT, recipT), want, testTolerance) {
		t.Errorf("summed node: have %g, want %g", p.Rate(logT, recipT), want)
	}
}

func TestPlogValidation(t *testing.T) {
	if _, err := NewPlog(nil); err == nil {
		t.Error("empty table: expected error")
	}
	if _, err := NewPlog([]PlogPoint{{P: -1, Rate: NewArrhenius(1, 0, 0)}}); err == nil {
		t.Error("negative pressure: expected error")
	}
}

func TestPlogTable(t *testing.T) {
	const testTolerance = 1.e-12
	var tab PlogTable
	tab.Add(1, testPlog(t))
	kf := make([]float64, 2)
	T := 1100.
	tab.UpdateP(math.Log(2 * oneAtm))
	tab.Update(math.Log(T), 1/T, kf)
	p := testPlog(t)
	p.UpdateP(math.Log(2 * oneAtm))
	if different(kf[1], p.Rate(math.Log(T), 1/T), testTolerance) {
		t.Errorf("table: have %g, want %g", kf[1], p.Rate(math.Log(T), 1/T))
	}
}
