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

package gaskinutil

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/spatialmodel/gaskin"
	"github.com/spatialmodel/gaskin/mix"
	"github.com/spatialmodel/gaskin/rates"
)

// DemoMechanism builds the built-in hydrogen-oxygen demonstration mechanism:
// an ideal-gas mixture and a kinetics manager with one reaction of every
// supported rate law. The rate parameters are of realistic magnitude (SI
// units: m³, mol, J) but are meant for demonstrating and exercising the
// package, not for quantitative combustion predictions.
func DemoMechanism() (*mix.IdealGas, *gaskin.Kinetics, error) {
	gas, err := mix.NewIdealGas(
		mix.Species{Name: "H2", RefEnthalpy: 0, RefEntropy: 130.7},
		mix.Species{Name: "O2", RefEnthalpy: 0, RefEntropy: 205.2},
		mix.Species{Name: "H2O", RefEnthalpy: -241800, RefEntropy: 188.8},
		mix.Species{Name: "H", RefEnthalpy: 218000, RefEntropy: 114.7},
		mix.Species{Name: "O", RefEnthalpy: 249200, RefEntropy: 161.1},
		mix.Species{Name: "OH", RefEnthalpy: 39000, RefEntropy: 183.7},
		mix.Species{Name: "HO2", RefEnthalpy: 12300, RefEntropy: 229.0},
		mix.Species{Name: "H2O2", RefEnthalpy: -135900, RefEntropy: 232.7},
		mix.Species{Name: "AR", RefEnthalpy: 0, RefEntropy: 154.8},
	)
	if err != nil {
		return nil, nil, err
	}
	k := gaskin.NewKinetics(gas)
	for _, r := range demoReactions() {
		if err := k.AddReaction(r, false); err != nil {
			return nil, nil, fmt.Errorf("gaskinutil: building demonstration mechanism: %v", err)
		}
	}
	k.ResizeReactions()
	return gas, k, nil
}

func demoReactions() []*gaskin.Reaction {
	arr := func(A, b, Ea float64) *rates.Arrhenius {
		r := rates.NewArrhenius(A, b, Ea)
		return &r
	}

	troe, err := rates.NewTroe(0.5, 30, 90000)
	if err != nil {
		panic(err)
	}
	plog, err := rates.NewPlog([]rates.PlogPoint{
		{P: 0.1 * gaskin.OneAtm, Rate: rates.NewArrhenius(2.0e12, 0, 2.02e5)},
		{P: 1 * gaskin.OneAtm, Rate: rates.NewArrhenius(2.0e13, 0, 2.07e5)},
		{P: 10 * gaskin.OneAtm, Rate: rates.NewArrhenius(1.2e14, 0, 2.12e5)},
	})
	if err != nil {
		panic(err)
	}
	// log10 k surface of roughly Arrhenius shape over 300-2500 K and
	// 0.01-100 atm.
	cheb, err := rates.NewChebyshev(300, 2500, 0.01*gaskin.OneAtm, 100*gaskin.OneAtm,
		mat.NewDense(3, 2, []float64{
			5.2, 0.32,
			1.1, 0.08,
			-0.3, 0.02,
		}))
	if err != nil {
		panic(err)
	}
	bm, err := rates.NewBlowersMasel(1.8e3, 1.5, 1.5e4, 4.2e5)
	if err != nil {
		panic(err)
	}

	return []*gaskin.Reaction{
		{
			Equation:   "H + O2 = O + OH",
			Kind:       gaskin.Elementary,
			Reactants:  []gaskin.Participant{{Species: "H", Coeff: 1}, {Species: "O2", Coeff: 1}},
			Products:   []gaskin.Participant{{Species: "O", Coeff: 1}, {Species: "OH", Coeff: 1}},
			Reversible: true,
			Rate:       arr(1.04e11, 0, 6.396e4),
		},
		{
			Equation:   "O + H2 = H + OH",
			Kind:       gaskin.Elementary,
			Reactants:  []gaskin.Participant{{Species: "O", Coeff: 1}, {Species: "H2", Coeff: 1}},
			Products:   []gaskin.Participant{{Species: "H", Coeff: 1}, {Species: "OH", Coeff: 1}},
			Reversible: true,
			Rate:       arr(3.82e6, 1.1, 3.32e4),
		},
		{
			Equation:   "H + OH + M = H2O + M",
			Kind:       gaskin.ThirdBodyRxn,
			Reactants:  []gaskin.Participant{{Species: "H", Coeff: 1}, {Species: "OH", Coeff: 1}},
			Products:   []gaskin.Participant{{Species: "H2O", Coeff: 1}},
			Reversible: true,
			Rate:       arr(4.5e10, -2, 0),
			ThirdBody: gaskin.NewThirdBody(map[string]float64{
				"H2O": 6, "H2": 2, "AR": 0.7,
			}),
		},
		{
			Equation:   "H + O2 (+M) = HO2 (+M)",
			Kind:       gaskin.FalloffRxn,
			Reactants:  []gaskin.Participant{{Species: "H", Coeff: 1}, {Species: "O2", Coeff: 1}},
			Products:   []gaskin.Participant{{Species: "HO2", Coeff: 1}},
			Reversible: true,
			HighRate:   arr(4.65e6, 0.44, 0),
			LowRate:    arr(1.74e7, -1.23, 0),
			Blend:      troe,
			ThirdBody: gaskin.NewThirdBody(map[string]float64{
				"H2O": 10, "H2": 1.5, "AR": 0.6,
			}),
		},
		{
			Equation:   "OH + OH (+M) = H2O2 (+M)",
			Kind:       gaskin.FalloffRxn,
			Reactants:  []gaskin.Participant{{Species: "OH", Coeff: 2}},
			Products:   []gaskin.Participant{{Species: "H2O2", Coeff: 1}},
			Reversible: true,
			HighRate:   arr(7.4e7, -0.37, 0),
			LowRate:    arr(1.34e11, -0.58, -9.59e3),
		},
		{
			Equation:  "H2O2 => OH + OH",
			Kind:      gaskin.PlogRxn,
			Reactants: []gaskin.Participant{{Species: "H2O2", Coeff: 1}},
			Products:  []gaskin.Participant{{Species: "OH", Coeff: 2}},
			Plog:      plog,
		},
		{
			Equation:  "HO2 + HO2 => H2O2 + O2",
			Kind:      gaskin.ChebyshevRxn,
			Reactants: []gaskin.Participant{{Species: "HO2", Coeff: 2}},
			Products:  []gaskin.Participant{{Species: "H2O2", Coeff: 1}, {Species: "O2", Coeff: 1}},
			Chebyshev: cheb,
		},
		{
			Equation:     "OH + H2 = H2O + H",
			Kind:         gaskin.BlowersMaselRxn,
			Reactants:    []gaskin.Participant{{Species: "OH", Coeff: 1}, {Species: "H2", Coeff: 1}},
			Products:     []gaskin.Participant{{Species: "H2O", Coeff: 1}, {Species: "H", Coeff: 1}},
			Reversible:   true,
			BlowersMasel: &bm,
		},
	}
}

// DemoComposition is the default mixture composition used by the command-line
// interface: a stoichiometric hydrogen-air-like mixture with radicals seeded
// at trace levels so every demonstration reaction has a nonzero rate.
func DemoComposition() map[string]float64 {
	return map[string]float64{
		"H2": 0.28, "O2": 0.14, "AR": 0.53, "H2O": 0.04,
		"H": 2e-3, "O": 1e-3, "OH": 2e-3, "HO2": 1e-4, "H2O2": 1e-4,
	}
}
