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

import "math"

// Arrhenius is a modified Arrhenius rate expression,
//
//	k = A Tᵇ exp(-Ta/T),
//
// where Ta = Ea/R is the activation temperature [K]. The expression is
// evaluated in natural-log space (log A + b log T - Ta/T) and exponentiated
// last, which preserves precision over the wide temperature ranges that
// combustion mechanisms span.
//
// A negative pre-exponential factor is permitted; it arises in duplicate
// rate entries that are summed inside Plog pressure nodes. The sign is
// carried separately from the log-space magnitude.
type Arrhenius struct {
	a    float64 // pre-exponential factor
	b    float64 // temperature exponent
	ta   float64 // activation temperature Ea/R [K]
	logA float64 // log |a|
	sign float64 // -1, 0, or 1
}

// NewArrhenius creates a modified Arrhenius rate expression from the
// pre-exponential factor A (units depend on the reaction order), the
// dimensionless temperature exponent b, and the activation energy Ea
// [J/mol].
func NewArrhenius(A, b, Ea float64) Arrhenius {
	r := Arrhenius{a: A, b: b, ta: Ea / GasConstant}
	switch {
	case A > 0:
		r.sign = 1
		r.logA = math.Log(A)
	case A < 0:
		r.sign = -1
		r.logA = math.Log(-A)
	}
	return r
}

// PreExponential returns the pre-exponential factor A.
func (r Arrhenius) PreExponential() float64 { return r.a }

// TemperatureExponent returns the temperature exponent b.
func (r Arrhenius) TemperatureExponent() float64 { return r.b }

// ActivationEnergy returns the activation energy Ea [J/mol].
func (r Arrhenius) ActivationEnergy() float64 { return r.ta * GasConstant }

// LogRate returns log k, given the natural log of temperature and the
// reciprocal temperature [1/K]. It is only meaningful for a positive
// pre-exponential factor.
func (r Arrhenius) LogRate(logT, recipT float64) float64 {
	return r.logA + r.b*logT - r.ta*recipT
}

// Rate returns the rate constant k, given the natural log of temperature
// and the reciprocal temperature [1/K].
func (r Arrhenius) Rate(logT, recipT float64) float64 {
	if r.sign == 0 {
		return 0
	}
	return r.sign * math.Exp(r.LogRate(logT, recipT))
}

// ArrheniusTable batch-evaluates the Arrhenius expressions of one rate-law
// family. Each entry is stored together with the index of the slot it
// writes its rate constant to, so the table can be shared by reactions that
// are scattered through a mechanism while its inner update loop stays
// dense.
type ArrheniusTable struct {
	dst   []int
	rates []Arrhenius
}

// Add appends a rate expression that writes to slot dst (normally a global
// reaction index) and returns its position within the table.
func (t *ArrheniusTable) Add(dst int, r Arrhenius) int {
	t.dst = append(t.dst, dst)
	t.rates = append(t.rates, r)
	return len(t.rates) - 1
}

// Replace swaps the rate expression at position loc, keeping its
// destination slot.
func (t *ArrheniusTable) Replace(loc int, r Arrhenius) {
	t.rates[loc] = r
}

// Len returns the number of rate expressions in the table.
func (t *ArrheniusTable) Len() int { return len(t.rates) }

// Update recomputes every rate constant in the table at the given
// temperature, writing each result to its destination slot in kf.
func (t *ArrheniusTable) Update(logT, recipT float64, kf []float64) {
	for i, r := range t.rates {
		kf[t.dst[i]] = r.Rate(logT, recipT)
	}
}
