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
	"fmt"
	"math"
)

// BlowersMasel is an Arrhenius rate expression whose activation energy is
// corrected for the enthalpy of reaction following Blowers and Masel
// (2000). The effective activation energy for a reaction enthalpy ΔH
// [J/mol] is
//
//	Ea = 0                                       ΔH ≤ -4E₀
//	Ea = ΔH                                      ΔH ≥ 4E₀
//	Ea = (w + ΔH/2)(Vp - 2w + ΔH)² /
//	     (Vp² - 4w² + ΔH²)                       otherwise,
//
// with Vp = 2w(w + E₀)/(2w - E₀), where E₀ is the intrinsic activation
// energy of a thermoneutral reaction and w the average bond dissociation
// energy of the bond being formed and broken. The result is only weakly
// sensitive to w as long as w ≫ E₀.
type BlowersMasel struct {
	a    float64 // pre-exponential factor
	b    float64 // temperature exponent
	e0   float64 // intrinsic activation energy [J/mol]
	w    float64 // average bond dissociation energy [J/mol]
	logA float64
}

// NewBlowersMasel creates a Blowers-Masel rate expression from the
// pre-exponential factor A, temperature exponent b, intrinsic activation
// energy E0 [J/mol], and average bond dissociation energy w [J/mol].
func NewBlowersMasel(A, b, E0, w float64) (BlowersMasel, error) {
	if A <= 0 {
		return BlowersMasel{}, fmt.Errorf("rates: Blowers-Masel pre-exponential factor %g is not positive", A)
	}
	if w <= 2*E0 {
		return BlowersMasel{}, fmt.Errorf("rates: Blowers-Masel bond energy %g J/mol must exceed twice the intrinsic barrier %g J/mol", w, E0)
	}
	return BlowersMasel{a: A, b: b, e0: E0, w: w, logA: math.Log(A)}, nil
}

// IntrinsicActivationEnergy returns E0 [J/mol].
func (r BlowersMasel) IntrinsicActivationEnergy() float64 { return r.e0 }

// BondEnergy returns w [J/mol].
func (r BlowersMasel) BondEnergy() float64 { return r.w }

// EffectiveActivationEnergy returns the barrier-corrected activation energy
// [J/mol] for the given enthalpy of reaction ΔH [J/mol].
func (r BlowersMasel) EffectiveActivationEnergy(deltaH float64) float64 {
	switch {
	case deltaH <= -4*r.e0:
		return 0
	case deltaH >= 4*r.e0:
		return deltaH
	}
	vp := 2 * r.w * (r.w + r.e0) / (2*r.w - r.e0)
	d := vp - 2*r.w + deltaH
	return (r.w + deltaH/2) * d * d / (vp*vp - 4*r.w*r.w + deltaH*deltaH)
}

// Rate returns the rate constant at the given temperature and enthalpy of
// reaction ΔH [J/mol].
func (r BlowersMasel) Rate(logT, recipT, deltaH float64) float64 {
	ta := r.EffectiveActivationEnergy(deltaH) / GasConstant
	return math.Exp(r.logA + r.b*logT - ta*recipT)
}

// BlowersMaselTable batch-evaluates a set of Blowers-Masel rate
// expressions. The caller supplies the current enthalpy of reaction for
// each expression, in table order, alongside the temperature.
type BlowersMaselTable struct {
	dst   []int
	rates []BlowersMasel
}

// Add appends an expression writing to slot dst and returns its position
// within the table.
func (t *BlowersMaselTable) Add(dst int, r BlowersMasel) int {
	t.dst = append(t.dst, dst)
	t.rates = append(t.rates, r)
	return len(t.rates) - 1
}

// Replace swaps the expression at position loc, keeping its destination
// slot.
func (t *BlowersMaselTable) Replace(loc int, r BlowersMasel) {
	t.rates[loc] = r
}

// Len returns the number of expressions in the table.
func (t *BlowersMaselTable) Len() int { return len(t.rates) }

// Update recomputes every rate constant at the given temperature. deltaH
// holds the enthalpy of reaction [J/mol] for each expression in table
// order.
func (t *BlowersMaselTable) Update(logT, recipT float64, deltaH, kf []float64) {
	for i, r := range t.rates {
		kf[t.dst[i]] = r.Rate(logT, recipT, deltaH[i])
	}
}
