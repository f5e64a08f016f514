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

import "sort"

// ThirdBodyCalc computes effective third-body concentrations for the
// reactions that need them:
//
//	[M] = d·ctot + Σₖ (εₖ - d)·cₖ,
//
// where d is the reaction's default efficiency, εₖ the efficiency of the
// species with a listed value, and ctot the total molar concentration. Only
// the listed species are visited in the update loop; every unlisted species
// contributes through the d·ctot term.
type ThirdBodyCalc struct {
	dst        []int
	defaultEff []float64
	species    [][]int
	delta      [][]float64 // listed efficiency minus default
}

// Add appends a third-body sum for the reaction writing to slot dst, with
// the given default efficiency and per-species efficiencies (species index
// to dimensionless multiplier). It returns the position within the table.
func (t *ThirdBodyCalc) Add(dst int, defaultEff float64, eff map[int]float64) int {
	t.dst = append(t.dst, dst)
	t.defaultEff = append(t.defaultEff, defaultEff)
	t.species = append(t.species, nil)
	t.delta = append(t.delta, nil)
	loc := len(t.dst) - 1
	t.set(loc, defaultEff, eff)
	return loc
}

// Replace swaps the efficiency set at position loc, keeping its destination
// slot.
func (t *ThirdBodyCalc) Replace(loc int, defaultEff float64, eff map[int]float64) {
	t.defaultEff[loc] = defaultEff
	t.set(loc, defaultEff, eff)
}

func (t *ThirdBodyCalc) set(loc int, defaultEff float64, eff map[int]float64) {
	species := make([]int, 0, len(eff))
	for k := range eff {
		species = append(species, k)
	}
	sort.Ints(species)
	delta := make([]float64, len(species))
	for i, k := range species {
		delta[i] = eff[k] - defaultEff
	}
	t.species[loc] = species
	t.delta[loc] = delta
}

// Len returns the number of third-body sums in the table.
func (t *ThirdBodyCalc) Len() int { return len(t.dst) }

// Update recomputes every effective third-body concentration from the
// species concentrations conc [mol/m³] and total concentration ctot,
// writing results to concm in table order.
func (t *ThirdBodyCalc) Update(conc []float64, ctot float64, concm []float64) {
	for i := range t.dst {
		m := t.defaultEff[i] * ctot
		for j, k := range t.species[i] {
			m += t.delta[i][j] * conc[k]
		}
		concm[i] = m
	}
}

// Multiply scales each destination slot of out by its effective third-body
// concentration.
func (t *ThirdBodyCalc) Multiply(out []float64, concm []float64) {
	for i, dst := range t.dst {
		out[dst] *= concm[i]
	}
}
