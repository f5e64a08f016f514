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

package gaskinutil

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/gaskin"
)

func TestDemoMechanism(t *testing.T) {
	gas, k, err := DemoMechanism()
	if err != nil {
		t.Fatal(err)
	}

	// Every supported rate law should be exercised.
	kinds := make(map[gaskin.RateKind]bool)
	for i := 0; i < k.NReactions(); i++ {
		kinds[k.Reaction(i).Kind] = true
	}
	for _, kind := range []gaskin.RateKind{
		gaskin.Elementary, gaskin.ThirdBodyRxn, gaskin.FalloffRxn,
		gaskin.PlogRxn, gaskin.ChebyshevRxn, gaskin.BlowersMaselRxn,
	} {
		if !kinds[kind] {
			t.Errorf("no %s reaction in the demonstration mechanism", kind)
		}
	}

	if err := gas.SetState(1200, gaskin.OneAtm, DemoComposition()); err != nil {
		t.Fatal(err)
	}
	rop := make([]float64, k.NReactions())
	k.GetFwdRatesOfProgress(rop)
	for i, r := range rop {
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			t.Errorf("reaction %d (%s): forward rate of progress %g",
				i, k.Reaction(i).String(), r)
		}
	}
	wdot := make([]float64, gas.NSpecies())
	k.NetProductionRates(wdot)
	for i, w := range wdot {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			t.Errorf("species %s: production rate %g", gas.SpeciesName(i), w)
		}
	}
	// Hydrogen atom balance: 2·H2 + 2·H2O + H + OH + HO2 + 2·H2O2 must be
	// conserved by every reaction.
	var hdot float64
	weights := map[string]float64{"H2": 2, "H2O": 2, "H": 1, "OH": 1, "HO2": 1, "H2O2": 2}
	for i, w := range wdot {
		hdot += weights[gas.SpeciesName(i)] * w
	}
	if math.Abs(hdot) > 1e-10*norm(wdot) {
		t.Errorf("hydrogen not conserved: Σ nH·wdot = %g", hdot)
	}
}

func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += math.Abs(x)
	}
	return s
}

func TestCompositionFromConfig(t *testing.T) {
	x, err := compositionFromConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(x) == 0 {
		t.Fatal("empty default composition")
	}
	var sum float64
	for _, xi := range x {
		sum += xi
	}
	if math.Abs(sum-1) > 0.01 {
		t.Errorf("default composition sums to %g", sum)
	}

	Cfg.Set("composition", `{"H2": "0.6", "O2": "0.4"}`)
	defer Cfg.Set("composition", "{}")
	x, err = compositionFromConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if x["H2"] != 0.6 || x["O2"] != 0.4 {
		t.Errorf("have %v, want H2:0.6 O2:0.4", x)
	}

	Cfg.Set("composition", `{"H2": "lots"}`)
	if _, err := compositionFromConfig(Cfg); err == nil {
		t.Error("unparseable mole fraction: expected error")
	}
}

func TestSaveRatePlot(t *testing.T) {
	gas, k, err := DemoMechanism()
	if err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(t.TempDir(), "rates.png")
	if err := SaveRatePlot(gas, k, gaskin.OneAtm, 500, 2500, 25, DemoComposition(), file); err != nil {
		t.Fatal(err)
	}
	if err := SaveRatePlot(gas, k, gaskin.OneAtm, 2500, 500, 25, DemoComposition(), file); err == nil {
		t.Error("inverted temperature interval: expected error")
	}
}
