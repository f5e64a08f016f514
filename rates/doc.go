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

// Package rates implements reaction rate-constant expressions for gas-phase
// kinetics: modified Arrhenius, pressure-interpolated Arrhenius tables
// (Plog), Chebyshev polynomial rate surfaces, Blowers-Masel
// barrier-corrected Arrhenius, falloff blending functions, and enhanced
// third-body concentration sums.
//
// Each rate expression is a pure function of the thermodynamic inputs it is
// given; none of the types in this package hold references to a
// thermodynamic state. Batch tables (ArrheniusTable, PlogTable, and friends)
// group the expressions of one rate-law family so that a kinetics manager
// can refresh a whole family in a single dense pass, writing results into a
// vector indexed by global reaction number.
//
// Temperatures are in K, pressures in Pa, energies in J/mol, and
// concentrations in mol/m³ throughout.
package rates

// GasConstant is the universal gas constant [J mol⁻¹ K⁻¹].
const GasConstant = 8.314462618

// smallNumber is used to avoid taking logarithms of zero in falloff
// calculations.
const smallNumber = 1e-300
