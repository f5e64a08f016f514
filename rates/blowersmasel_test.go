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

func testBlowersMasel(t *testing.T) BlowersMasel {
	// A=3.87e4, b=2.7, E0=6260 cal/mol ≈ 2.619e4 J/mol, w=1e9 J/mol —
	// representative of an O + H2 = H + OH abstraction.
	r, err := NewBlowersMasel(3.87e4, 2.7, 2.619e4, 1e9)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestBlowersMaselBranches(t *testing.T) {
	const testTolerance = 1.e-9
	r := testBlowersMasel(t)
	e0 := r.IntrinsicActivationEnergy()

	// Strongly exothermic: barrierless.
	if ea := r.EffectiveActivationEnergy(-5 * e0); ea != 0 {
		t.Errorf("exothermic branch: have %g, want 0", ea)
	}
	// Strongly endothermic: barrier equals the reaction enthalpy.
	if ea := r.EffectiveActivationEnergy(5 * e0); ea != 5*e0 {
		t.Errorf("endothermic branch: have %g, want %g", ea, 5*e0)
	}
	// Thermoneutral: barrier equals the intrinsic barrier.
	if ea := r.EffectiveActivationEnergy(0); different(ea, e0, testTolerance) {
		t.Errorf("thermoneutral: have %g, want %g", ea, e0)
	}
}

// The interpolating branch must meet the limiting branches continuously at
// ΔH = ±4E0 and increase monotonically in between.
func TestBlowersMaselContinuity(t *testing.T) {
	r := testBlowersMasel(t)
	e0 := r.IntrinsicActivationEnergy()

	if ea := r.EffectiveActivationEnergy(-4*e0 + 1); math.Abs(ea) > 1e-3*e0 {
		t.Errorf("at ΔH=-4E0: have %g, want ≈0", ea)
	}
	if ea := r.EffectiveActivationEnergy(4*e0 - 1); math.Abs(ea-4*e0) > 1e-3*e0 {
		t.Errorf("at ΔH=+4E0: have %g, want ≈%g", ea, 4*e0)
	}
	prev := -1.
	for dh := -4 * e0; dh <= 4*e0; dh += e0 / 8 {
		ea := r.EffectiveActivationEnergy(dh)
		if ea < prev {
			t.Fatalf("non-monotone at ΔH=%g: %g < %g", dh, ea, prev)
		}
		prev = ea
	}
}

func TestBlowersMaselRate(t *testing.T) {
	const testTolerance = 1.e-12
	r := testBlowersMasel(t)
	T := 1200.
	logT, recipT := math.Log(T), 1/T
	for _, dh := range []float64{-2e5, 0, 4e4, 2e5} {
		ea := r.EffectiveActivationEnergy(dh)
		want := 3.87e4 * math.Pow(T, 2.7) * math.Exp(-ea/(GasConstant*T))
		if have := r.Rate(logT, recipT, dh); different(have, want, testTolerance) {
			t.Errorf("ΔH=%g: have %g, want %g", dh, have, want)
		}
	}
}

func TestBlowersMaselValidation(t *testing.T) {
	if _, err := NewBlowersMasel(-1, 0, 1e4, 1e9); err == nil {
		t.Error("negative A: expected error")
	}
	if _, err := NewBlowersMasel(1e4, 0, 1e9, 1e9); err == nil {
		t.Error("w <= 2E0: expected error")
	}
}

func TestBlowersMaselTable(t *testing.T) {
	const testTolerance = 1.e-12
	var tab BlowersMaselTable
	tab.Add(1, testBlowersMasel(t))
	kf := make([]float64, 2)
	T := 1000.
	deltaH := []float64{3e4}
	tab.Update(math.Log(T), 1/T, deltaH, kf)
	want := testBlowersMasel(t).Rate(math.Log(T), 1/T, 3e4)
	if different(kf[1], want, testTolerance) {
		t.Errorf("table: have %g, want %g", kf[1], want)
	}
}
