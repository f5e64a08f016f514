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

package mix

import (
	"math"
	"testing"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/gaskin"
	"github.com/spatialmodel/gaskin/rates"
)

func testGas(t *testing.T) *IdealGas {
	g, err := NewIdealGas(
		Species{Name: "A", RefEnthalpy: 1e4, RefEntropy: 150},
		Species{Name: "B", RefEnthalpy: -2e4, RefEntropy: 200},
	)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestIdealGasState(t *testing.T) {
	const testTolerance = 1.e-12
	g := testGas(t)
	if err := g.SetState(1000, 2*gaskin.OneAtm, map[string]float64{"A": 3, "B": 1}); err != nil {
		t.Fatal(err)
	}
	ctot := 2 * gaskin.OneAtm / (rates.GasConstant * 1000)
	if different(g.MolarDensity(), ctot, testTolerance) {
		t.Errorf("molar density: have %g, want %g", g.MolarDensity(), ctot)
	}
	c := make([]float64, g.NSpecies())
	g.Concentrations(c)
	if different(c[0], 0.75*ctot, testTolerance) || different(c[1], 0.25*ctot, testTolerance) {
		t.Errorf("concentrations: have %v, want fractions 0.75/0.25 of %g", c, ctot)
	}

	mu := make([]float64, 2)
	g.StandardChemPotentials(mu)
	if want := 1e4 - 1000*150.; different(mu[0], want, testTolerance) {
		t.Errorf("mu[0]: have %g, want %g", mu[0], want)
	}
	if g.SpeciesIndex("B") != 1 || g.SpeciesIndex("missing") != -1 {
		t.Error("species index lookup failed")
	}
}

func TestIdealGasStateVersion(t *testing.T) {
	g := testGas(t)
	v0 := g.StateVersion()
	if err := g.SetState(500, gaskin.OneAtm, map[string]float64{"A": 1}); err != nil {
		t.Fatal(err)
	}
	if g.StateVersion() == v0 {
		t.Error("state version did not change after SetState")
	}
}

func TestIdealGasErrors(t *testing.T) {
	g := testGas(t)
	cases := []struct {
		name string
		T, P float64
		x    map[string]float64
	}{
		{"negative T", -5, gaskin.OneAtm, map[string]float64{"A": 1}},
		{"zero P", 1000, 0, map[string]float64{"A": 1}},
		{"unknown species", 1000, gaskin.OneAtm, map[string]float64{"Xe": 1}},
		{"negative fraction", 1000, gaskin.OneAtm, map[string]float64{"A": -1}},
		{"empty composition", 1000, gaskin.OneAtm, nil},
	}
	for _, c := range cases {
		if err := g.SetState(c.T, c.P, c.x); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
	if _, err := NewIdealGas(Species{Name: "A"}, Species{Name: "A"}); err == nil {
		t.Error("duplicate species: expected error")
	}
}

func TestIdealGasUnits(t *testing.T) {
	const testTolerance = 1.e-12
	g := testGas(t)
	T := unit.New(1500, unit.Kelvin)
	P := unit.New(5e4, unit.Pascal)
	if err := g.SetStateUnits(T, P, map[string]float64{"B": 1}); err != nil {
		t.Fatal(err)
	}
	if different(g.Temperature(), 1500, testTolerance) || different(g.Pressure(), 5e4, testTolerance) {
		t.Errorf("state: have T=%g P=%g, want 1500/5e4", g.Temperature(), g.Pressure())
	}
	// Dimension mismatch must be rejected.
	if err := g.SetStateUnits(P, P, map[string]float64{"B": 1}); err == nil {
		t.Error("pressure passed as temperature: expected error")
	}
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance && math.Abs(a-b) > tolerance {
		return true
	}
	return false
}
