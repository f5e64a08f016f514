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
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/spatialmodel/gaskin"
	"github.com/spatialmodel/gaskin/mix"
)

// RatePlot builds an Arrhenius diagram (log₁₀ k against 1000/T) for every
// reaction registered with k, evaluated at the given pressure [Pa] and
// mixture composition over the temperature interval [tmin, tmax] K sampled
// at n points. The plot is evaluated by mutating the state of gas, so the
// caller should restore the state afterwards if it matters.
func RatePlot(gas *mix.IdealGas, k *gaskin.Kinetics, P, tmin, tmax float64, n int, composition map[string]float64) (*plot.Plot, error) {
	if n < 2 {
		return nil, fmt.Errorf("gaskinutil: need at least 2 temperature samples; got %d", n)
	}
	if tmin <= 0 || tmax <= tmin {
		return nil, fmt.Errorf("gaskinutil: invalid temperature interval [%g, %g] K", tmin, tmax)
	}

	p := plot.New()
	p.Title.Text = "Forward rate constants"
	p.X.Label.Text = "1000 / T [1/K]"
	p.Y.Label.Text = "log₁₀ k"

	nr := k.NReactions()
	kf := make([]float64, nr)
	lines := make([]plotter.XYs, nr)
	for i := range lines {
		lines[i] = make(plotter.XYs, 0, n)
	}
	for j := 0; j < n; j++ {
		T := tmin + (tmax-tmin)*float64(j)/float64(n-1)
		if err := gas.SetState(T, P, composition); err != nil {
			return nil, err
		}
		k.GetFwdRateConstants(kf)
		for i, kv := range kf {
			if kv <= 0 {
				continue
			}
			lines[i] = append(lines[i], plotter.XY{X: 1000 / T, Y: math.Log10(kv)})
		}
	}

	for i, xys := range lines {
		if len(xys) == 0 {
			continue
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		l.Color = plotutil.Color(i)
		l.Dashes = plotutil.Dashes(i)
		p.Add(l)
		p.Legend.Add(k.Reaction(i).String(), l)
	}
	p.Legend.Top = true
	return p, nil
}

// SaveRatePlot writes the Arrhenius diagram produced by RatePlot to the
// given file; the format is inferred from the file extension (.png, .pdf,
// .svg, ...).
func SaveRatePlot(gas *mix.IdealGas, k *gaskin.Kinetics, P, tmin, tmax float64, n int, composition map[string]float64, filename string) error {
	p, err := RatePlot(gas, k, P, tmin, tmax, n, composition)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}
