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

	"gonum.org/v1/gonum/mat"
)

// Chebyshev is a pressure-dependent rate expression defined by a 2-D
// Chebyshev polynomial surface,
//
//	log₁₀ k = Σᵢ Σⱼ aᵢⱼ φᵢ(T̃) φⱼ(P̃),
//
// where φₙ is the Chebyshev polynomial of the first kind of degree n and
// T̃, P̃ map the declared validity bounds onto [-1, 1]:
//
//	T̃ = (2/T - 1/Tmin - 1/Tmax) / (1/Tmax - 1/Tmin)
//	P̃ = (2 log₁₀P - log₁₀Pmin - log₁₀Pmax) / (log₁₀Pmax - log₁₀Pmin)
//
// Temperatures and pressures outside the declared bounds are clamped to the
// boundary before normalization rather than extrapolated.
type Chebyshev struct {
	tmin, tmax float64 // valid temperature range [K]
	pmin, pmax float64 // valid pressure range [Pa]

	coeffs *mat.Dense // nT × nP coefficient surface

	tNum, tDen float64 // temperature normalization: T̃ = (2/T + tNum) * tDen
	pNum, pDen float64 // pressure normalization: P̃ = (2 log₁₀P + pNum) * pDen

	pCheb []float64 // φⱼ(P̃), refreshed by UpdateP
}

// NewChebyshev creates a Chebyshev rate expression valid for temperatures
// in [tmin, tmax] K and pressures in [pmin, pmax] Pa, with the coefficient
// surface laid out as temperature degrees down the rows and pressure
// degrees across the columns.
func NewChebyshev(tmin, tmax, pmin, pmax float64, coeffs *mat.Dense) (*Chebyshev, error) {
	switch {
	case coeffs == nil:
		return nil, fmt.Errorf("rates: Chebyshev requires a coefficient matrix")
	case tmin <= 0 || tmax <= tmin:
		return nil, fmt.Errorf("rates: invalid Chebyshev temperature range [%g, %g] K", tmin, tmax)
	case pmin <= 0 || pmax <= pmin:
		return nil, fmt.Errorf("rates: invalid Chebyshev pressure range [%g, %g] Pa", pmin, pmax)
	}
	_, nP := coeffs.Dims()
	c := &Chebyshev{
		tmin: tmin, tmax: tmax,
		pmin: pmin, pmax: pmax,
		coeffs: coeffs,
		tNum:   -1/tmin - 1/tmax,
		tDen:   1 / (1/tmax - 1/tmin),
		pNum:   -math.Log10(pmin) - math.Log10(pmax),
		pDen:   1 / (math.Log10(pmax) - math.Log10(pmin)),
		pCheb:  make([]float64, nP),
	}
	c.UpdateP(math.Log10(pmin))
	return c, nil
}

// TemperatureRange returns the declared validity bounds [K].
func (c *Chebyshev) TemperatureRange() (tmin, tmax float64) { return c.tmin, c.tmax }

// PressureRange returns the declared validity bounds [Pa].
func (c *Chebyshev) PressureRange() (pmin, pmax float64) { return c.pmin, c.pmax }

// UpdateP refreshes the pressure Chebyshev polynomial values for the given
// base-10 log of pressure [Pa], clamping to the declared pressure bounds.
func (c *Chebyshev) UpdateP(log10P float64) {
	pr := clamp((2*log10P + c.pNum) * c.pDen)
	chebSeries(pr, c.pCheb)
}

// Rate returns the rate constant at temperature T [K] and the pressure most
// recently set by UpdateP.
func (c *Chebyshev) Rate(T float64) float64 {
	tr := clamp((2/T + c.tNum) * c.tDen)
	nT, nP := c.coeffs.Dims()

	// Chebyshev recurrence in the temperature direction, accumulating the
	// pressure dot product row by row.
	var logk float64
	phiPrev, phi := 0.0, 1.0 // φ₋₁ placeholder, φ₀
	for i := 0; i < nT; i++ {
		if i == 1 {
			phiPrev, phi = phi, tr
		} else if i > 1 {
			phiPrev, phi = phi, 2*tr*phi-phiPrev
		}
		var row float64
		for j := 0; j < nP; j++ {
			row += c.coeffs.At(i, j) * c.pCheb[j]
		}
		logk += row * phi
	}
	return math.Pow(10, logk)
}

// chebSeries fills dst with the Chebyshev polynomials of the first kind
// φ₀(x)…φₙ₋₁(x).
func chebSeries(x float64, dst []float64) {
	for n := range dst {
		switch n {
		case 0:
			dst[n] = 1
		case 1:
			dst[n] = x
		default:
			dst[n] = 2*x*dst[n-1] - dst[n-2]
		}
	}
}

func clamp(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// ChebyshevTable batch-evaluates a set of Chebyshev rate expressions,
// writing each result to its destination slot (global reaction index) in
// the rate constant vector.
type ChebyshevTable struct {
	dst   []int
	rates []*Chebyshev
}

// Add appends an expression writing to slot dst and returns its position
// within the table.
func (t *ChebyshevTable) Add(dst int, c *Chebyshev) int {
	t.dst = append(t.dst, dst)
	t.rates = append(t.rates, c)
	return len(t.rates) - 1
}

// Replace swaps the expression at position loc, keeping its destination
// slot.
func (t *ChebyshevTable) Replace(loc int, c *Chebyshev) {
	t.rates[loc] = c
}

// Len returns the number of expressions in the table.
func (t *ChebyshevTable) Len() int { return len(t.rates) }

// UpdateP refreshes the pressure polynomial values of every expression.
func (t *ChebyshevTable) UpdateP(log10P float64) {
	for _, c := range t.rates {
		c.UpdateP(log10P)
	}
}

// Update recomputes every rate constant at temperature T [K] using the
// current pressure polynomial values.
func (t *ChebyshevTable) Update(T float64, kf []float64) {
	for i, c := range t.rates {
		kf[t.dst[i]] = c.Rate(T)
	}
}
