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

// Package gaskin computes chemical reaction rates for gas-phase mixtures.
// Given a thermodynamic state (temperature, pressure, and species
// concentrations) and a reaction mechanism, the Kinetics manager produces
// forward and reverse rates of progress for every reaction, handling
// elementary mass-action, third-body-enhanced, pressure-falloff, Plog,
// Chebyshev, and Blowers-Masel rate laws in one evaluation pipeline.
//
// The manager caches temperature-dependent and concentration-dependent
// intermediate results separately and refreshes each only when the
// underlying state has moved, so it can be driven millions of times per run
// by ODE integrators and reactor solvers. Thermodynamic property
// evaluation, mechanism file parsing, and time integration are external
// concerns; the ThermoState interface is the boundary to the first of
// these.
package gaskin

// Version gives the version number of this version of Gaskin.
const Version = "0.1.0"

// OneAtm is one standard atmosphere [Pa].
const OneAtm = 101325.

// ThermoState reports the thermodynamic state of the gas mixture that a
// Kinetics manager evaluates reaction rates for. Implementations are
// expected to be cheap to query; the manager calls these methods on every
// cache-refresh pass.
type ThermoState interface {
	// Temperature returns the mixture temperature [K].
	Temperature() float64

	// Pressure returns the mixture pressure [Pa].
	Pressure() float64

	// MolarDensity returns the total molar concentration [mol/m³].
	MolarDensity() float64

	// Concentrations fills c with the species molar concentrations
	// [mol/m³]. c must have length NSpecies.
	Concentrations(c []float64)

	// NSpecies returns the number of species in the mixture.
	NSpecies() int

	// SpeciesIndex returns the index of the named species, or -1 if the
	// species is not known to this state.
	SpeciesIndex(name string) int

	// StandardConcentration returns the standard concentration [mol/m³]
	// used to non-dimensionalize equilibrium constants.
	StandardConcentration() float64

	// RefPressure returns the reference pressure [Pa] of the species
	// standard states.
	RefPressure() float64

	// StandardChemPotentials fills mu with the standard-state chemical
	// potentials [J/mol] at the current temperature. mu must have length
	// NSpecies.
	StandardChemPotentials(mu []float64)

	// StandardEnthalpies fills h with the standard-state molar enthalpies
	// [J/mol] at the current temperature. h must have length NSpecies.
	StandardEnthalpies(h []float64)

	// StateVersion returns a counter that increases every time the
	// temperature, pressure, or composition of the state changes. The
	// Kinetics manager compares it against the version it last evaluated
	// to decide whether concentration-dependent caches are stale.
	StateVersion() int64
}
