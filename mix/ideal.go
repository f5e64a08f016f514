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

// Package mix provides a minimal ideal-gas implementation of the
// gaskin.ThermoState collaborator interface. Species carry constant
// reference enthalpies and entropies, so standard chemical potentials are
// the linear μ°(T) = h° - T·s°. That is far too crude for quantitative
// thermochemistry over wide temperature ranges, but it is exact for the
// algebra the kinetics manager performs on top of it, which makes the
// package suitable for demonstrations, testing, and consumers that supply
// reference properties at the temperature of interest.
package mix

import (
	"fmt"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/gaskin"
	"github.com/spatialmodel/gaskin/rates"
)

// A Species is one mixture component with its reference-state properties.
type Species struct {
	Name string
	// RefEnthalpy is the standard-state molar enthalpy h° [J/mol],
	// treated as temperature-independent.
	RefEnthalpy float64
	// RefEntropy is the standard-state molar entropy s° [J/(mol·K)],
	// treated as temperature-independent.
	RefEntropy float64
}

// IdealGas is an ideal-gas mixture state. The zero value is not usable;
// create one with NewIdealGas and set its state before evaluating rates
// against it.
type IdealGas struct {
	species []Species
	index   map[string]int

	temp    float64
	pres    float64
	x       []float64 // mole fractions
	version int64
}

var _ gaskin.ThermoState = (*IdealGas)(nil)

// NewIdealGas creates an ideal-gas mixture of the given species,
// initialized to 300 K, one atmosphere, and an equimolar composition.
func NewIdealGas(species ...Species) (*IdealGas, error) {
	if len(species) == 0 {
		return nil, fmt.Errorf("mix: an ideal gas needs at least one species")
	}
	g := &IdealGas{
		species: append([]Species{}, species...),
		index:   make(map[string]int, len(species)),
		temp:    300,
		pres:    gaskin.OneAtm,
		x:       make([]float64, len(species)),
	}
	for i, s := range species {
		if _, ok := g.index[s.Name]; ok {
			return nil, fmt.Errorf("mix: duplicate species %q", s.Name)
		}
		g.index[s.Name] = i
		g.x[i] = 1 / float64(len(species))
	}
	return g, nil
}

// SetState sets temperature [K], pressure [Pa], and composition. The mole
// fractions are normalized to sum to one; species absent from the map get
// zero.
func (g *IdealGas) SetState(T, P float64, moleFractions map[string]float64) error {
	if T <= 0 {
		return fmt.Errorf("mix: temperature %g K is not positive", T)
	}
	if P <= 0 {
		return fmt.Errorf("mix: pressure %g Pa is not positive", P)
	}
	x := make([]float64, len(g.species))
	var sum float64
	for name, xi := range moleFractions {
		i, ok := g.index[name]
		if !ok {
			return fmt.Errorf("mix: unknown species %q", name)
		}
		if xi < 0 {
			return fmt.Errorf("mix: negative mole fraction %g for %q", xi, name)
		}
		x[i] = xi
		sum += xi
	}
	if sum <= 0 {
		return fmt.Errorf("mix: mole fractions sum to %g; need a positive total", sum)
	}
	for i := range x {
		x[i] /= sum
	}
	g.temp, g.pres, g.x = T, P, x
	g.version++
	return nil
}

// SetStateUnits is SetState with dimension checking on the temperature and
// pressure.
func (g *IdealGas) SetStateUnits(T, P *unit.Unit, moleFractions map[string]float64) error {
	if err := T.Check(unit.Kelvin); err != nil {
		return fmt.Errorf("mix: temperature: %v", err)
	}
	if err := P.Check(unit.Pascal); err != nil {
		return fmt.Errorf("mix: pressure: %v", err)
	}
	return g.SetState(T.Value(), P.Value(), moleFractions)
}

// Temperature implements gaskin.ThermoState.
func (g *IdealGas) Temperature() float64 { return g.temp }

// Pressure implements gaskin.ThermoState.
func (g *IdealGas) Pressure() float64 { return g.pres }

// MolarDensity implements gaskin.ThermoState: n/V = P/(RT) [mol/m³].
func (g *IdealGas) MolarDensity() float64 {
	return g.pres / (rates.GasConstant * g.temp)
}

// Concentrations implements gaskin.ThermoState.
func (g *IdealGas) Concentrations(c []float64) {
	ctot := g.MolarDensity()
	for i, xi := range g.x {
		c[i] = xi * ctot
	}
}

// NSpecies implements gaskin.ThermoState.
func (g *IdealGas) NSpecies() int { return len(g.species) }

// SpeciesIndex implements gaskin.ThermoState.
func (g *IdealGas) SpeciesIndex(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	return -1
}

// SpeciesName returns the name of species i.
func (g *IdealGas) SpeciesName(i int) string { return g.species[i].Name }

// MoleFraction returns the current mole fraction of species i.
func (g *IdealGas) MoleFraction(i int) float64 { return g.x[i] }

// StandardConcentration implements gaskin.ThermoState: for an ideal gas
// the standard concentration is P°/(RT).
func (g *IdealGas) StandardConcentration() float64 {
	return g.RefPressure() / (rates.GasConstant * g.temp)
}

// RefPressure implements gaskin.ThermoState.
func (g *IdealGas) RefPressure() float64 { return gaskin.OneAtm }

// StandardChemPotentials implements gaskin.ThermoState:
// μ°(T) = h° - T·s°.
func (g *IdealGas) StandardChemPotentials(mu []float64) {
	for i, s := range g.species {
		mu[i] = s.RefEnthalpy - g.temp*s.RefEntropy
	}
}

// StandardEnthalpies implements gaskin.ThermoState.
func (g *IdealGas) StandardEnthalpies(h []float64) {
	for i, s := range g.species {
		h[i] = s.RefEnthalpy
	}
}

// StateVersion implements gaskin.ThermoState.
func (g *IdealGas) StateVersion() int64 { return g.version }
