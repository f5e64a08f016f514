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

package gaskin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ctessum/sparse"
	"github.com/spatialmodel/gaskin/rates"
)

// RateKind identifies the kinetic rate law of a reaction.
type RateKind int

// Available rate laws.
const (
	// Elementary is a simple mass-action reaction with a modified
	// Arrhenius rate expression.
	Elementary RateKind = iota
	// ThirdBodyRxn is a mass-action reaction whose rate is enhanced by a
	// weighted sum of collision-partner concentrations.
	ThirdBodyRxn
	// FalloffRxn blends low- and high-pressure Arrhenius limits through a
	// broadening function of the reduced pressure.
	FalloffRxn
	// PlogRxn interpolates Arrhenius expressions tabulated at discrete
	// pressures.
	PlogRxn
	// ChebyshevRxn evaluates a 2-D Chebyshev polynomial rate surface.
	ChebyshevRxn
	// BlowersMaselRxn is an Arrhenius expression with an
	// enthalpy-dependent activation-energy correction.
	BlowersMaselRxn
)

func (k RateKind) String() string {
	switch k {
	case Elementary:
		return "elementary"
	case ThirdBodyRxn:
		return "three-body"
	case FalloffRxn:
		return "falloff"
	case PlogRxn:
		return "pressure-dependent-Arrhenius"
	case ChebyshevRxn:
		return "Chebyshev"
	case BlowersMaselRxn:
		return "Blowers-Masel"
	}
	return fmt.Sprintf("RateKind(%d)", int(k))
}

// A Participant is one species taking part in a reaction, with its
// stoichiometric coefficient and, optionally, a reaction order differing
// from the coefficient. A zero Order means the order equals the
// coefficient.
type Participant struct {
	Species string
	Coeff   float64
	Order   float64
}

// ThirdBody is the collision-partner efficiency set of a third-body or
// falloff reaction: a default efficiency applied to every species, plus
// per-species overrides.
type ThirdBody struct {
	// DefaultEfficiency applies to every species without a listed value.
	DefaultEfficiency float64
	// Efficiencies maps species names to dimensionless efficiency
	// multipliers.
	Efficiencies map[string]float64
}

// NewThirdBody creates an efficiency set with the customary default
// efficiency of 1.
func NewThirdBody(eff map[string]float64) *ThirdBody {
	return &ThirdBody{DefaultEfficiency: 1, Efficiencies: eff}
}

// A Reaction describes one reaction of a mechanism in the form accepted by
// (*Kinetics).AddReaction. Exactly the parameter fields matching Kind must
// be set; registration fails loudly otherwise. A Reaction is copied on
// registration and never mutated by the manager.
type Reaction struct {
	// Equation is an optional descriptive label, for example
	// "H + O2 (+M) = HO2 (+M)". If empty, one is synthesized from the
	// participants.
	Equation string

	Kind       RateKind
	Reactants  []Participant
	Products   []Participant
	Reversible bool

	// AllowDuplicate marks an intentional duplicate of another reaction
	// with the same participants, whose rates are meant to sum.
	AllowDuplicate bool

	// Rate is the rate expression of Elementary and ThirdBodyRxn
	// reactions.
	Rate *rates.Arrhenius

	// LowRate and HighRate are the low- and high-pressure limits of
	// FalloffRxn reactions, and Blend the broadening function (nil means
	// Lindemann).
	LowRate, HighRate *rates.Arrhenius
	Blend             rates.Blender

	// ThirdBody holds collision-partner efficiencies for ThirdBodyRxn and
	// FalloffRxn reactions. Nil means all efficiencies are 1.
	ThirdBody *ThirdBody

	Plog         *rates.Plog
	Chebyshev    *rates.Chebyshev
	BlowersMasel *rates.BlowersMasel
}

// String returns the reaction equation, synthesizing one from the
// participants if no label was supplied.
func (r *Reaction) String() string {
	if r.Equation != "" {
		return r.Equation
	}
	arrow := " => "
	if r.Reversible {
		arrow = " = "
	}
	return sideString(r.Reactants, r.Kind) + arrow + sideString(r.Products, r.Kind)
}

func sideString(side []Participant, kind RateKind) string {
	terms := make([]string, len(side))
	for i, p := range side {
		if p.Coeff == 1 {
			terms[i] = p.Species
		} else {
			terms[i] = fmt.Sprintf("%g %s", p.Coeff, p.Species)
		}
	}
	s := strings.Join(terms, " + ")
	switch kind {
	case ThirdBodyRxn:
		s += " + M"
	case FalloffRxn:
		s += " (+M)"
	}
	return s
}

// validate checks the structural invariants that must hold before a
// reaction may be registered.
func (r *Reaction) validate() error {
	if len(r.Reactants) == 0 || len(r.Products) == 0 {
		return fmt.Errorf("gaskin: reaction %q needs at least one reactant and one product", r.String())
	}
	needRate := func(have bool, what string) error {
		if !have {
			return fmt.Errorf("gaskin: %s reaction %q is missing its %s", r.Kind, r.String(), what)
		}
		return nil
	}
	var err error
	switch r.Kind {
	case Elementary, ThirdBodyRxn:
		err = needRate(r.Rate != nil, "rate expression")
	case FalloffRxn:
		err = needRate(r.LowRate != nil && r.HighRate != nil, "low- or high-pressure limit")
	case PlogRxn:
		err = needRate(r.Plog != nil, "pressure table")
	case ChebyshevRxn:
		err = needRate(r.Chebyshev != nil, "coefficient surface")
	case BlowersMaselRxn:
		err = needRate(r.BlowersMasel != nil, "rate expression")
	default:
		err = fmt.Errorf("gaskin: unknown rate law %v", r.Kind)
	}
	if err != nil {
		return err
	}
	if r.ThirdBody != nil && r.Kind != ThirdBodyRxn && r.Kind != FalloffRxn {
		return fmt.Errorf("gaskin: %s reaction %q may not have third-body efficiencies", r.Kind, r.String())
	}
	for _, p := range append(append([]Participant{}, r.Reactants...), r.Products...) {
		if p.Coeff <= 0 {
			return fmt.Errorf("gaskin: reaction %q: stoichiometric coefficient %g for %s is not positive",
				r.String(), p.Coeff, p.Species)
		}
		if p.Order < 0 {
			return fmt.Errorf("gaskin: reaction %q: reaction order %g for %s is negative",
				r.String(), p.Order, p.Species)
		}
	}
	return nil
}

// clone deep-copies the caller-supplied reaction so later mutation of the
// original cannot corrupt the registry.
func (r *Reaction) clone() *Reaction {
	c := *r
	c.Reactants = append([]Participant{}, r.Reactants...)
	c.Products = append([]Participant{}, r.Products...)
	if r.ThirdBody != nil {
		tb := *r.ThirdBody
		tb.Efficiencies = make(map[string]float64, len(r.ThirdBody.Efficiencies))
		for k, v := range r.ThirdBody.Efficiencies {
			tb.Efficiencies[k] = v
		}
		c.ThirdBody = &tb
	}
	return &c
}

// participant is the registered, species-index-resolved form of a
// Participant.
type participant struct {
	index int
	coeff float64
	order float64
}

// reaction is the registered form of a Reaction: species resolved to
// indices, net stoichiometry assembled, and the position of the reaction
// within its rate-law family's batch table recorded.
type reaction struct {
	spec       *Reaction
	kind       RateKind
	reversible bool

	reactants []participant
	products  []participant

	// net holds the net stoichiometric coefficients (products minus
	// reactants) as a sparse vector over species, used to assemble ΔG and
	// ΔH of reaction.
	net *sparse.SparseArray
	// dn is the net change in moles, Σν.
	dn float64

	// loc is the reaction's position within its kind's batch table; for
	// falloff reactions it indexes the low/high-limit tables, the blender
	// table, and the falloff third-body table alike.
	loc int
	// tbLoc is the position within the plain third-body table
	// (ThirdBodyRxn only).
	tbLoc int
}

// signature produces a canonical key for duplicate detection: two reactions
// with equal signatures describe the same process.
func (r *reaction) signature() string {
	canon := func(ps []participant) string {
		sorted := append([]participant{}, ps...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].index < sorted[j].index })
		terms := make([]string, len(sorted))
		for i, p := range sorted {
			terms[i] = fmt.Sprintf("%d:%g", p.index, p.coeff)
		}
		return strings.Join(terms, ",")
	}
	return fmt.Sprintf("%d|%t|%s|%s", r.kind, r.reversible, canon(r.reactants), canon(r.products))
}

// resolve converts a validated Reaction to its registered form using the
// species indices of the thermodynamic-state collaborator.
func resolve(r *Reaction, thermo ThermoState) (*reaction, error) {
	out := &reaction{
		spec:       r.clone(),
		kind:       r.Kind,
		reversible: r.Reversible,
		net:        sparse.ZerosSparse(thermo.NSpecies()),
	}
	resolveSide := func(side []Participant, sign float64) ([]participant, error) {
		ps := make([]participant, len(side))
		for i, p := range side {
			idx := thermo.SpeciesIndex(p.Species)
			if idx < 0 {
				return nil, fmt.Errorf("gaskin: reaction %q: unknown species %q", r.String(), p.Species)
			}
			order := p.Order
			if order == 0 {
				order = p.Coeff
			}
			ps[i] = participant{index: idx, coeff: p.Coeff, order: order}
			out.net.AddVal(sign*p.Coeff, idx)
			out.dn += sign * p.Coeff
		}
		return ps, nil
	}
	var err error
	if out.reactants, err = resolveSide(r.Reactants, -1); err != nil {
		return nil, err
	}
	if out.products, err = resolveSide(r.Products, 1); err != nil {
		return nil, err
	}
	if r.ThirdBody != nil {
		for name := range r.ThirdBody.Efficiencies {
			if thermo.SpeciesIndex(name) < 0 {
				return nil, fmt.Errorf("gaskin: reaction %q: unknown third-body species %q", r.String(), name)
			}
		}
	}
	return out, nil
}

// efficiencyIndices converts a ThirdBody efficiency set to species-index
// form. A nil set means all efficiencies are 1.
func efficiencyIndices(tb *ThirdBody, thermo ThermoState) (defaultEff float64, eff map[int]float64) {
	if tb == nil {
		return 1, nil
	}
	eff = make(map[int]float64, len(tb.Efficiencies))
	for name, e := range tb.Efficiencies {
		eff[thermo.SpeciesIndex(name)] = e
	}
	return tb.DefaultEfficiency, eff
}
