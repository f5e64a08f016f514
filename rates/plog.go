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
	"sort"
)

// PlogPoint is one tabulated entry of a Plog rate expression: an Arrhenius
// expression valid at pressure P [Pa]. Several points may share one
// pressure; their rates are summed.
type PlogPoint struct {
	P    float64
	Rate Arrhenius
}

// plogNode holds the summed Arrhenius expressions at one pressure.
type plogNode struct {
	logP  float64
	rates []Arrhenius
}

func (n *plogNode) sum(logT, recipT float64) float64 {
	var k float64
	for _, r := range n.rates {
		k += r.Rate(logT, recipT)
	}
	return k
}

// Plog is a pressure-dependent rate expression defined by Arrhenius
// parameters tabulated at discrete pressures. Between two tabulated
// pressures the rate constant is interpolated linearly in (log k, log P)
// space; outside the tabulated range it is clamped to the nearest node so
// that extrapolation cannot produce runaway rates.
//
// Pressure selection (UpdateP) is separated from temperature evaluation
// (Rate) so that a caller may cache each independently.
type Plog struct {
	nodes []plogNode

	// current pressure bracket, set by UpdateP
	i1, i2 int
	frac   float64 // interpolation weight toward node i2
}

// NewPlog creates a Plog rate expression from tabulated points. Points
// sharing a pressure are merged into one node whose rates are summed. At
// least one point is required and all pressures must be positive.
func NewPlog(points []PlogPoint) (*Plog, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("rates: Plog requires at least one pressure point")
	}
	byP := make(map[float64][]Arrhenius)
	for _, pt := range points {
		if pt.P <= 0 {
			return nil, fmt.Errorf("rates: Plog pressure %g Pa is not positive", pt.P)
		}
		byP[pt.P] = append(byP[pt.P], pt.Rate)
	}
	p := new(Plog)
	for pres, rs := range byP {
		p.nodes = append(p.nodes, plogNode{logP: math.Log(pres), rates: rs})
	}
	sort.Slice(p.nodes, func(i, j int) bool { return p.nodes[i].logP < p.nodes[j].logP })
	p.UpdateP(p.nodes[0].logP)
	return p, nil
}

// NumPressures returns the number of distinct tabulated pressures.
func (p *Plog) NumPressures() int { return len(p.nodes) }

// UpdateP selects the pair of tabulated pressure nodes bracketing logP
// (the natural log of pressure [Pa]) and the interpolation weight between
// them. Pressures outside the tabulated range clamp to the nearest node.
func (p *Plog) UpdateP(logP float64) {
	n := len(p.nodes)
	switch {
	case logP <= p.nodes[0].logP:
		p.i1, p.i2, p.frac = 0, 0, 0
	case logP >= p.nodes[n-1].logP:
		p.i1, p.i2, p.frac = n-1, n-1, 0
	default:
		j := sort.Search(n, func(i int) bool { return p.nodes[i].logP >= logP })
		p.i1, p.i2 = j-1, j
		p.frac = (logP - p.nodes[j-1].logP) / (p.nodes[j].logP - p.nodes[j-1].logP)
	}
}

// Rate returns the rate constant at the given temperature and the pressure
// bracket most recently set by UpdateP.
//
// If a node sum is non-positive at the current temperature (possible when
// duplicate entries with negative pre-exponential factors are summed), the
// log-space interpolation is undefined and the rate falls back to linear
// interpolation in k, floored at zero.
func (p *Plog) Rate(logT, recipT float64) float64 {
	k1 := p.nodes[p.i1].sum(logT, recipT)
	if p.i1 == p.i2 {
		return math.Max(k1, 0)
	}
	k2 := p.nodes[p.i2].sum(logT, recipT)
	if k1 > 0 && k2 > 0 {
		return math.Exp(math.Log(k1) + p.frac*(math.Log(k2)-math.Log(k1)))
	}
	return math.Max(k1+p.frac*(k2-k1), 0)
}

// PlogTable batch-evaluates a set of Plog rate expressions, writing each
// result to its destination slot (global reaction index) in the rate
// constant vector.
type PlogTable struct {
	dst   []int
	rates []*Plog
}

// Add appends a Plog expression writing to slot dst and returns its
// position within the table.
func (t *PlogTable) Add(dst int, p *Plog) int {
	t.dst = append(t.dst, dst)
	t.rates = append(t.rates, p)
	return len(t.rates) - 1
}

// Replace swaps the Plog expression at position loc, keeping its
// destination slot.
func (t *PlogTable) Replace(loc int, p *Plog) {
	t.rates[loc] = p
}

// Len returns the number of expressions in the table.
func (t *PlogTable) Len() int { return len(t.rates) }

// UpdateP refreshes the pressure bracket of every expression in the table.
func (t *PlogTable) UpdateP(logP float64) {
	for _, p := range t.rates {
		p.UpdateP(logP)
	}
}

// Update recomputes every rate constant at the given temperature using the
// current pressure brackets.
func (t *PlogTable) Update(logT, recipT float64, kf []float64) {
	for i, p := range t.rates {
		kf[t.dst[i]] = p.Rate(logT, recipT)
	}
}
