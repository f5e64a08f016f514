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

// A Blender is the broadening function F(Pr, T) that blends the low- and
// high-pressure limits of a falloff reaction:
//
//	k = k∞ · Pr/(1+Pr) · F,   Pr = k₀[M]/k∞.
//
// Temperature-only work (for example the Troe centering factor) is computed
// once per temperature by UpdateTemp into a scratch slice of WorkSize
// elements, which F then reads for each reduced pressure.
type Blender interface {
	WorkSize() int
	UpdateTemp(T float64, work []float64)
	F(pr float64, work []float64) float64
}

// Lindemann is the simplest falloff form, F = 1.
type Lindemann struct{}

// WorkSize implements Blender.
func (Lindemann) WorkSize() int { return 0 }

// UpdateTemp implements Blender.
func (Lindemann) UpdateTemp(T float64, work []float64) {}

// F implements Blender.
func (Lindemann) F(pr float64, work []float64) float64 { return 1 }

// Troe is the three- or four-parameter Troe falloff broadening function.
// The centering factor is
//
//	Fcent = (1-a) exp(-T/T3) + a exp(-T/T1) [+ exp(-T2/T)],
//
// the last term present only in the four-parameter form, and the broadened
// factor follows the standard formulation:
//
//	log₁₀ F = log₁₀ Fcent / (1 + f₁²)
//	f₁ = (log₁₀ Pr + C) / (N - 0.14 (log₁₀ Pr + C))
//	C = -0.4 - 0.67 log₁₀ Fcent
//	N = 0.75 - 1.27 log₁₀ Fcent.
type Troe struct {
	a, t3, t1, t2 float64
}

// NewTroe creates a three-parameter Troe broadening function from a and the
// two centering temperatures T3 and T1 [K].
func NewTroe(a, t3, t1 float64) (Troe, error) {
	return NewTroe4(a, t3, t1, 0)
}

// NewTroe4 creates a four-parameter Troe broadening function. A zero t2
// disables the fourth term, reducing to the three-parameter form.
func NewTroe4(a, t3, t1, t2 float64) (Troe, error) {
	if t3 <= 0 || t1 <= 0 {
		return Troe{}, fmt.Errorf("rates: Troe centering temperatures T3=%g K, T1=%g K must be positive", t3, t1)
	}
	return Troe{a: a, t3: t3, t1: t1, t2: t2}, nil
}

// WorkSize implements Blender.
func (Troe) WorkSize() int { return 1 }

// UpdateTemp implements Blender, storing log₁₀ Fcent.
func (t Troe) UpdateTemp(T float64, work []float64) {
	fcent := (1-t.a)*math.Exp(-T/t.t3) + t.a*math.Exp(-T/t.t1)
	if t.t2 != 0 {
		fcent += math.Exp(-t.t2 / T)
	}
	work[0] = math.Log10(math.Max(fcent, smallNumber))
}

// F implements Blender.
func (t Troe) F(pr float64, work []float64) float64 {
	log10Fcent := work[0]
	lpr := math.Log10(math.Max(pr, smallNumber))
	cc := lpr - 0.4 - 0.67*log10Fcent
	nn := 0.75 - 1.27*log10Fcent - 0.14*cc
	f1 := cc / nn
	return math.Pow(10, log10Fcent/(1+f1*f1))
}

// SRI is the SRI falloff broadening function,
//
//	F = d · [a exp(-b/T) + exp(-T/c)]^n · Tᵉ,   n = 1/(1 + log₁₀² Pr).
//
// The three-parameter form fixes d = 1 and e = 0.
type SRI struct {
	a, b, c, d, e float64
}

// NewSRI creates a three-parameter SRI broadening function.
func NewSRI(a, b, c float64) (SRI, error) {
	return NewSRI5(a, b, c, 1, 0)
}

// NewSRI5 creates a five-parameter SRI broadening function.
func NewSRI5(a, b, c, d, e float64) (SRI, error) {
	if c <= 0 {
		return SRI{}, fmt.Errorf("rates: SRI parameter c=%g K must be positive", c)
	}
	if d <= 0 {
		return SRI{}, fmt.Errorf("rates: SRI parameter d=%g must be positive", d)
	}
	return SRI{a: a, b: b, c: c, d: d, e: e}, nil
}

// WorkSize implements Blender.
func (SRI) WorkSize() int { return 2 }

// UpdateTemp implements Blender.
func (s SRI) UpdateTemp(T float64, work []float64) {
	work[0] = s.a*math.Exp(-s.b/T) + math.Exp(-T/s.c)
	work[1] = s.d * math.Pow(T, s.e)
}

// F implements Blender.
func (s SRI) F(pr float64, work []float64) float64 {
	lpr := math.Log10(math.Max(pr, smallNumber))
	n := 1 / (1 + lpr*lpr)
	return work[1] * math.Pow(work[0], n)
}

// FalloffTable batches the broadening functions of a mechanism's falloff
// reactions, sharing one scratch array for their temperature-dependent
// work.
type FalloffTable struct {
	blenders []Blender
	offset   []int
	work     []float64
}

// Add appends a broadening function and returns its position within the
// table.
func (t *FalloffTable) Add(b Blender) int {
	t.blenders = append(t.blenders, b)
	t.offset = append(t.offset, len(t.work))
	t.work = append(t.work, make([]float64, b.WorkSize())...)
	return len(t.blenders) - 1
}

// Replace swaps the broadening function at position loc. Work storage is
// rebuilt, so the table must be refreshed with UpdateTemp before the next
// Value call.
func (t *FalloffTable) Replace(loc int, b Blender) {
	t.blenders[loc] = b
	t.work = t.work[:0]
	for i, bl := range t.blenders {
		t.offset[i] = len(t.work)
		t.work = append(t.work, make([]float64, bl.WorkSize())...)
	}
}

// Len returns the number of broadening functions in the table.
func (t *FalloffTable) Len() int { return len(t.blenders) }

// UpdateTemp refreshes the temperature-dependent work of every broadening
// function.
func (t *FalloffTable) UpdateTemp(T float64) {
	for i, b := range t.blenders {
		b.UpdateTemp(T, t.work[t.offset[i]:t.offset[i]+b.WorkSize()])
	}
}

// Value returns Pr/(1+Pr)·F(Pr) for the broadening function at position
// loc, using the work most recently set by UpdateTemp. Multiplying by k∞
// yields the effective falloff rate constant.
func (t *FalloffTable) Value(loc int, pr float64) float64 {
	b := t.blenders[loc]
	f := b.F(pr, t.work[t.offset[loc]:t.offset[loc]+b.WorkSize()])
	return pr / (1 + pr) * f
}
