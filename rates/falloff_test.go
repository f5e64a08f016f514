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

func TestLindemannLimits(t *testing.T) {
	const testTolerance = 1.e-9
	var tab FalloffTable
	loc := tab.Add(Lindemann{})
	tab.UpdateTemp(1000)

	// Pr → ∞: Pr/(1+Pr)·F → 1 (the pressure-independent high limit).
	if v := tab.Value(loc, 1e12); different(v, 1, testTolerance) {
		t.Errorf("high-pressure limit: have %g, want 1", v)
	}
	// Pr → 0: Pr/(1+Pr)·F → Pr (linear in M, the low-pressure limit).
	pr := 1e-9
	if v := tab.Value(loc, pr); different(v, pr, testTolerance) {
		t.Errorf("low-pressure limit: have %g, want %g", v, pr)
	}
}

// Troe parameters for H + O2 (+M) = HO2 (+M) from GRI-Mech 3.0.
func testTroe(t *testing.T) Troe {
	tr, err := NewTroe(0.6, 1e30, 1e-30)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestTroeCenterValue(t *testing.T) {
	const testTolerance = 1.e-9
	// At Pr = 1/Fcent... simpler: at log10 Pr = 0.4 + 0.67 log10 Fcent
	// the inner fraction f1 vanishes and F = Fcent exactly.
	tr, err := NewTroe4(0.7, 200, 1500, 50)
	if err != nil {
		t.Fatal(err)
	}
	T := 1200.
	work := make([]float64, tr.WorkSize())
	tr.UpdateTemp(T, work)
	fcent := (1-0.7)*math.Exp(-T/200) + 0.7*math.Exp(-T/1500) + math.Exp(-50/T)
	if different(math.Pow(10, work[0]), fcent, testTolerance) {
		t.Fatalf("Fcent: have %g, want %g", math.Pow(10, work[0]), fcent)
	}
	lpr := 0.4 + 0.67*work[0]
	if f := tr.F(math.Pow(10, lpr), work); different(f, fcent, testTolerance) {
		t.Errorf("F at centering pressure: have %g, want %g", f, fcent)
	}
}

// As M → 0 the blended value must tend to Pr (so k → k0·M), and as M → ∞
// it must tend to F ≈ 1 scaled high-pressure limit.
func TestTroeLimits(t *testing.T) {
	var tab FalloffTable
	loc := tab.Add(testTroe(t))
	tab.UpdateTemp(1000)

	// F approaches 1 only as log₁₀²Pr grows, so go far into the limit.
	pr := 1e-20
	v := tab.Value(loc, pr)
	if ratio := v / pr; math.Abs(ratio-1) > 0.05 {
		t.Errorf("low-pressure limit: value/Pr = %g, want ≈1", ratio)
	}
	if v := tab.Value(loc, 1e10); math.Abs(v-1) > 0.05 {
		t.Errorf("high-pressure limit: have %g, want ≈1", v)
	}
	// The blend must never exceed either limiting form.
	for _, pr := range []float64{1e-6, 1e-3, 1, 1e3, 1e6} {
		v := tab.Value(loc, pr)
		if v <= 0 || v > 1 || v > pr {
			t.Errorf("Pr=%g: blended value %g outside (0, min(1, Pr)]", pr, v)
		}
	}
}

func TestSRI(t *testing.T) {
	const testTolerance = 1.e-9
	s, err := NewSRI5(1.242, 655, 4.56e9, 0.7, 1.3)
	if err != nil {
		t.Fatal(err)
	}
	T := 1500.
	work := make([]float64, s.WorkSize())
	s.UpdateTemp(T, work)
	pr := 3.2
	lpr := math.Log10(pr)
	base := 1.242*math.Exp(-655/T) + math.Exp(-T/4.56e9)
	want := 0.7 * math.Pow(T, 1.3) * math.Pow(base, 1/(1+lpr*lpr))
	if f := s.F(pr, work); different(f, want, testTolerance) {
		t.Errorf("SRI F: have %g, want %g", f, want)
	}
}

func TestBlenderValidation(t *testing.T) {
	if _, err := NewTroe(0.6, 0, 100); err == nil {
		t.Error("Troe T3=0: expected error")
	}
	if _, err := NewTroe(0.6, 100, -5); err == nil {
		t.Error("Troe T1<0: expected error")
	}
	if _, err := NewSRI(1, 1, 0); err == nil {
		t.Error("SRI c=0: expected error")
	}
	if _, err := NewSRI5(1, 1, 1, -1, 0); err == nil {
		t.Error("SRI d<0: expected error")
	}
}

// Replacing a blender rebuilds the shared work array.
func TestFalloffTableReplace(t *testing.T) {
	const testTolerance = 1.e-9
	var tab FalloffTable
	a := tab.Add(testTroe(t))
	b := tab.Add(Lindemann{})
	tab.Replace(a, Lindemann{})
	tab.UpdateTemp(900)
	if va, vb := tab.Value(a, 2), tab.Value(b, 2); different(va, vb, testTolerance) {
		t.Errorf("replaced blender differs: %g != %g", va, vb)
	}
}
