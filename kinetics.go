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
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/spatialmodel/gaskin/rates"
)

// Kinetics is the kinetics manager for elementary gas-phase chemistry. It
// owns the per-rate-law batch tables, the reaction registry, and the cached
// state vectors, and it answers rate queries against the thermodynamic
// state it was created with.
//
// A Kinetics instance belongs to a single simulation loop: it mutates its
// caches in place on every refresh pass and must not be shared between
// goroutines without external synchronization. Independent concurrent
// simulations should each own an independent instance.
type Kinetics struct {
	thermo ThermoState
	rxns   []*reaction
	sigs   map[string]int // duplicate detection: signature → reaction index

	// Per-rate-law batch tables. Elementary, third-body, and the
	// temperature parts of all other laws write into kf by global
	// reaction index; the falloff limit tables write into kfLow/kfHigh by
	// falloff-local index.
	arr      rates.ArrheniusTable
	fallLow  rates.ArrheniusTable
	fallHigh rates.ArrheniusTable
	falloffs rates.FalloffTable
	plogs    rates.PlogTable
	chebs    rates.ChebyshevTable
	bm       rates.BlowersMaselTable

	tb rates.ThirdBodyCalc // plain third-body reactions
	fo rates.ThirdBodyCalc // falloff reactions

	fallIndx []int       // global reaction index of each falloff reaction
	bmRxns   []*reaction // registered Blowers-Masel reactions, table order

	// Cached rate state. The scalar "last seen" values guard the vectors
	// below them: a vector may be read only when its guard matches the
	// collaborator's current state. NaN means never computed.
	lastTemp     float64
	lastLogT     float64
	lastRecipT   float64
	lastPres     float64
	lastVer      int64
	logStandConc float64

	kf           []float64 // forward rate constants (falloff slots hold k∞ limits unblended)
	kfLow        []float64 // falloff low-pressure limits, falloff-local
	kfHigh       []float64 // falloff high-pressure limits, falloff-local
	concm3b      []float64 // third-body concentrations, table order
	concmFalloff []float64 // falloff third-body concentrations, falloff-local
	rkcn         []float64 // reciprocal equilibrium constants (0 for irreversible)
	deltaH       []float64 // enthalpies of reaction for Blowers-Masel entries

	ropf   []float64
	ropr   []float64
	ropnet []float64
	ropOK  bool

	conc []float64 // species concentrations workspace
	grt  []float64 // standard chemical potentials workspace
	hrt  []float64 // standard enthalpies workspace

	needResize bool

	// recompute counters; package tests use these to observe cache
	// behavior.
	tUpdates   int
	cUpdates   int
	ropUpdates int
}

// NewKinetics creates a kinetics manager evaluating rates against the given
// thermodynamic state.
func NewKinetics(thermo ThermoState) *Kinetics {
	k := &Kinetics{
		thermo: thermo,
		sigs:   make(map[string]int),
	}
	k.InvalidateCache()
	return k
}

// NReactions returns the number of registered reactions.
func (k *Kinetics) NReactions() int { return len(k.rxns) }

// Reaction returns the registered description of reaction i. The returned
// value must not be modified; use ModifyReaction to change a reaction.
func (k *Kinetics) Reaction(i int) *Reaction { return k.rxns[i].spec }

// AddReaction registers a reaction, dispatching it into the batch table of
// its rate-law family. If resize is false, internal work vectors are not
// grown until the next rate request (or ResizeReactions call), which avoids
// quadratic behavior when loading a large mechanism.
//
// Registration failures leave the manager and all previously registered
// reactions fully usable, so a mechanism loader can tally errors and keep
// going.
func (k *Kinetics) AddReaction(r *Reaction, resize bool) error {
	if r == nil {
		return fmt.Errorf("gaskin: nil reaction")
	}
	if err := r.validate(); err != nil {
		return err
	}
	rxn, err := resolve(r, k.thermo)
	if err != nil {
		return err
	}
	sig := rxn.signature()
	if j, ok := k.sigs[sig]; ok {
		if !r.AllowDuplicate && !k.rxns[j].spec.AllowDuplicate {
			return fmt.Errorf("gaskin: reaction %q duplicates reaction %d (%q); set AllowDuplicate if intended",
				r.String(), j, k.rxns[j].spec.String())
		}
	}

	i := len(k.rxns)
	switch r.Kind {
	case Elementary:
		rxn.loc = k.arr.Add(i, *r.Rate)
	case ThirdBodyRxn:
		rxn.loc = k.arr.Add(i, *r.Rate)
		defaultEff, eff := efficiencyIndices(r.ThirdBody, k.thermo)
		rxn.tbLoc = k.tb.Add(i, defaultEff, eff)
	case FalloffRxn:
		n := k.falloffs.Len()
		k.fallLow.Add(n, *r.LowRate)
		k.fallHigh.Add(n, *r.HighRate)
		blend := r.Blend
		if blend == nil {
			blend = rates.Lindemann{}
		}
		rxn.loc = k.falloffs.Add(blend)
		defaultEff, eff := efficiencyIndices(r.ThirdBody, k.thermo)
		k.fo.Add(i, defaultEff, eff)
		k.fallIndx = append(k.fallIndx, i)
	case PlogRxn:
		rxn.loc = k.plogs.Add(i, r.Plog)
	case ChebyshevRxn:
		rxn.loc = k.chebs.Add(i, r.Chebyshev)
	case BlowersMaselRxn:
		rxn.loc = k.bm.Add(i, *r.BlowersMasel)
		k.bmRxns = append(k.bmRxns, rxn)
	}
	k.rxns = append(k.rxns, rxn)
	k.sigs[sig] = i

	if resize {
		k.resize()
	} else {
		k.needResize = true
	}
	k.InvalidateCache()
	return nil
}

// ResizeReactions grows the internal work vectors to match the registered
// reactions. It needs to be called only after a bulk load performed with
// AddReaction(..., false); rate requests call it implicitly.
func (k *Kinetics) ResizeReactions() {
	k.resize()
}

// ModifyReaction replaces the parameters of reaction i in place. The new
// description must have the same rate-law kind as the old one; index and
// kind never change. All caches are invalidated, because the batch tables
// hold per-reaction state keyed to the old parameters.
func (k *Kinetics) ModifyReaction(i int, r *Reaction) error {
	if i < 0 || i >= len(k.rxns) {
		return fmt.Errorf("gaskin: reaction index %d out of range [0, %d)", i, len(k.rxns))
	}
	old := k.rxns[i]
	if r == nil {
		return fmt.Errorf("gaskin: nil reaction")
	}
	if r.Kind != old.kind {
		return fmt.Errorf("gaskin: cannot change reaction %d from %s to %s; remove and re-add instead",
			i, old.kind, r.Kind)
	}
	if err := r.validate(); err != nil {
		return err
	}
	rxn, err := resolve(r, k.thermo)
	if err != nil {
		return err
	}
	rxn.loc, rxn.tbLoc = old.loc, old.tbLoc

	switch r.Kind {
	case Elementary:
		k.arr.Replace(rxn.loc, *r.Rate)
	case ThirdBodyRxn:
		k.arr.Replace(rxn.loc, *r.Rate)
		defaultEff, eff := efficiencyIndices(r.ThirdBody, k.thermo)
		k.tb.Replace(rxn.tbLoc, defaultEff, eff)
	case FalloffRxn:
		k.fallLow.Replace(rxn.loc, *r.LowRate)
		k.fallHigh.Replace(rxn.loc, *r.HighRate)
		blend := r.Blend
		if blend == nil {
			blend = rates.Lindemann{}
		}
		k.falloffs.Replace(rxn.loc, blend)
		defaultEff, eff := efficiencyIndices(r.ThirdBody, k.thermo)
		k.fo.Replace(rxn.loc, defaultEff, eff)
	case PlogRxn:
		k.plogs.Replace(rxn.loc, r.Plog)
	case ChebyshevRxn:
		k.chebs.Replace(rxn.loc, r.Chebyshev)
	case BlowersMaselRxn:
		k.bm.Replace(rxn.loc, *r.BlowersMasel)
		for j, b := range k.bmRxns {
			if b == old {
				k.bmRxns[j] = rxn
			}
		}
	}

	delete(k.sigs, old.signature())
	k.sigs[rxn.signature()] = i
	k.rxns[i] = rxn
	k.InvalidateCache()
	return nil
}

// InvalidateCache forces the next rate request to recompute both
// temperature- and concentration-dependent state regardless of the cached
// "last seen" markers. Call it after any structural or reference-state
// change not mediated by AddReaction or ModifyReaction, for example when
// the collaborator's reference pressure changes.
func (k *Kinetics) InvalidateCache() {
	k.lastTemp = math.NaN()
	k.lastLogT = math.NaN()
	k.lastRecipT = math.NaN()
	k.lastPres = math.NaN()
	k.lastVer = -1
	k.ropOK = false
}

func (k *Kinetics) resize() {
	nr := len(k.rxns)
	k.kf = resized(k.kf, nr)
	k.rkcn = resized(k.rkcn, nr)
	k.ropf = resized(k.ropf, nr)
	k.ropr = resized(k.ropr, nr)
	k.ropnet = resized(k.ropnet, nr)

	nf := k.falloffs.Len()
	k.kfLow = resized(k.kfLow, nf)
	k.kfHigh = resized(k.kfHigh, nf)
	k.concmFalloff = resized(k.concmFalloff, nf)

	k.concm3b = resized(k.concm3b, k.tb.Len())
	k.deltaH = resized(k.deltaH, k.bm.Len())

	ns := k.thermo.NSpecies()
	k.conc = resized(k.conc, ns)
	k.grt = resized(k.grt, ns)
	k.hrt = resized(k.hrt, ns)

	k.needResize = false
}

func resized(v []float64, n int) []float64 {
	if len(v) == n {
		return v
	}
	return make([]float64, n)
}

// UpdateRatesT recomputes all temperature-dependent quantities — the batch
// rate-law tables, the falloff limit rates and blender centering factors,
// the Blowers-Masel reaction enthalpies, and the equilibrium constants —
// when the current temperature differs from the cached value. Otherwise it
// is a no-op.
func (k *Kinetics) UpdateRatesT() {
	if k.needResize {
		k.resize()
	}
	T := k.thermo.Temperature()
	k.logStandConc = math.Log(k.thermo.StandardConcentration())
	if T == k.lastTemp {
		return
	}
	logT, recipT := math.Log(T), 1/T

	k.arr.Update(logT, recipT, k.kf)
	if k.falloffs.Len() > 0 {
		k.fallLow.Update(logT, recipT, k.kfLow)
		k.fallHigh.Update(logT, recipT, k.kfHigh)
		k.falloffs.UpdateTemp(T)
	}
	if k.bm.Len() > 0 {
		k.thermo.StandardEnthalpies(k.hrt)
		for n, r := range k.bmRxns {
			var dh float64
			for idx, nu := range r.net.Elements {
				dh += nu * k.hrt[idx]
			}
			k.deltaH[n] = dh
		}
		k.bm.Update(logT, recipT, k.deltaH, k.kf)
	}
	// Plog and Chebyshev keep their pressure selection from the last
	// concentration pass; only the temperature part is refreshed here.
	if k.plogs.Len() > 0 {
		k.plogs.Update(logT, recipT, k.kf)
	}
	if k.chebs.Len() > 0 {
		k.chebs.Update(T, k.kf)
	}

	k.lastTemp, k.lastLogT, k.lastRecipT = T, logT, recipT
	k.updateKc(recipT)
	k.ropOK = false
	k.tUpdates++
}

// UpdateRatesC recomputes all concentration-dependent quantities — enhanced
// third-body concentrations and the pressure-dependent parts of Plog and
// Chebyshev reactions — when the composition or pressure differs from the
// cached state. Otherwise it is a no-op.
//
// Falloff blending needs the temperature-dependent limit rates, so
// UpdateRatesT runs first if it has never run.
func (k *Kinetics) UpdateRatesC() {
	if k.needResize {
		k.resize()
	}
	if math.IsNaN(k.lastTemp) {
		k.UpdateRatesT()
	}
	ver := k.thermo.StateVersion()
	P := k.thermo.Pressure()
	if ver == k.lastVer && P == k.lastPres {
		return
	}

	k.thermo.Concentrations(k.conc)
	ctot := k.thermo.MolarDensity()
	if k.tb.Len() > 0 {
		k.tb.Update(k.conc, ctot, k.concm3b)
	}
	if k.fo.Len() > 0 {
		k.fo.Update(k.conc, ctot, k.concmFalloff)
	}
	if k.plogs.Len() > 0 {
		k.plogs.UpdateP(math.Log(P))
		k.plogs.Update(k.lastLogT, k.lastRecipT, k.kf)
	}
	if k.chebs.Len() > 0 {
		k.chebs.UpdateP(math.Log10(P))
		k.chebs.Update(k.lastTemp, k.kf)
	}

	k.lastVer, k.lastPres = ver, P
	k.ropOK = false
	k.cUpdates++
}

// UpdateROP assembles forward, reverse, and net rates of progress for every
// reaction from the current rate constants and species concentrations. It
// refreshes stale temperature- and concentration-dependent caches first, so
// the results are always internally consistent.
func (k *Kinetics) UpdateROP() {
	k.UpdateRatesT()
	k.UpdateRatesC()
	if k.ropOK {
		return
	}

	copy(k.ropf, k.kf)
	k.processFalloff(k.ropf)
	if k.tb.Len() > 0 {
		k.tb.Multiply(k.ropf, k.concm3b)
	}

	// Reverse rate constants from the forward constants and the
	// reciprocal equilibrium constants; rkcn is zero for irreversible
	// reactions, pinning their reverse rate of progress to exactly zero.
	for i := range k.ropr {
		k.ropr[i] = k.ropf[i] * k.rkcn[i]
	}

	for i, r := range k.rxns {
		k.ropf[i] *= concentrationProduct(k.conc, r.reactants, true)
		if r.reversible {
			k.ropr[i] *= concentrationProduct(k.conc, r.products, false)
		}
	}
	floats.SubTo(k.ropnet, k.ropf, k.ropr)
	k.ropOK = true
	k.ropUpdates++
}

// concentrationProduct returns Π cᵏ over the participants, using the
// reaction orders on the forward side and the stoichiometric coefficients
// on the reverse side.
func concentrationProduct(conc []float64, ps []participant, useOrder bool) float64 {
	prod := 1.0
	for _, p := range ps {
		exp := p.coeff
		if useOrder {
			exp = p.order
		}
		c := conc[p.index]
		switch exp {
		case 1:
			prod *= c
		case 2:
			prod *= c * c
		default:
			prod *= math.Pow(c, exp)
		}
	}
	return prod
}

// processFalloff writes the blended effective rate constant of every
// falloff reaction into its slot of dst, which otherwise holds the
// high-pressure limits. A zero high-pressure limit makes the reduced
// pressure undefined (0/0); such reactions are low-pressure limited by
// policy, k = k₀·[M].
func (k *Kinetics) processFalloff(dst []float64) {
	for n, ri := range k.fallIndx {
		kLow, kHigh, m := k.kfLow[n], k.kfHigh[n], k.concmFalloff[n]
		if kHigh == 0 {
			dst[ri] = kLow * m
			continue
		}
		pr := kLow * m / kHigh
		dst[ri] = kHigh * k.falloffs.Value(n, pr)
	}
}

// updateKc refreshes the reciprocal equilibrium constants used to derive
// reverse rate constants,
//
//	1/Kc = exp(ΔG°/RT - Δn·ln c°),
//
// from the collaborator's standard-state chemical potentials. Irreversible
// reactions get exactly zero.
func (k *Kinetics) updateKc(recipT float64) {
	k.thermo.StandardChemPotentials(k.grt)
	rrt := recipT / rates.GasConstant
	for i, r := range k.rxns {
		if !r.reversible {
			k.rkcn[i] = 0
			continue
		}
		var dg float64
		for idx, nu := range r.net.Elements {
			dg += nu * k.grt[idx]
		}
		k.rkcn[i] = math.Exp(dg*rrt - r.dn*k.logStandConc)
	}
}

// GetEquilibriumConstants fills kc with the equilibrium constant of every
// reaction in concentration units,
//
//	Kc = exp(-ΔG°/RT + Δn·ln c°).
//
// kc must have length NReactions. Equilibrium constants are reported for
// irreversible reactions too, but are never used to compute their reverse
// rates.
func (k *Kinetics) GetEquilibriumConstants(kc []float64) {
	k.checkLen(kc)
	k.UpdateRatesT()
	k.thermo.StandardChemPotentials(k.grt)
	rrt := k.lastRecipT / rates.GasConstant
	for i, r := range k.rxns {
		var dg float64
		for idx, nu := range r.net.Elements {
			dg += nu * k.grt[idx]
		}
		kc[i] = math.Exp(-dg*rrt + r.dn*k.logStandConc)
	}
}

// GetFwdRateConstants fills kfwd with the forward rate constant of every
// reaction, recomputing stale caches first. Falloff reactions report their
// blended effective constant; third-body reactions report the rate constant
// without the third-body concentration factor.
func (k *Kinetics) GetFwdRateConstants(kfwd []float64) {
	k.checkLen(kfwd)
	k.UpdateRatesT()
	k.UpdateRatesC()
	copy(kfwd, k.kf)
	k.processFalloff(kfwd)
}

// GetFwdRatesOfProgress fills out with the forward rate of progress of
// every reaction [mol/m³/s].
func (k *Kinetics) GetFwdRatesOfProgress(out []float64) {
	k.checkLen(out)
	k.UpdateROP()
	copy(out, k.ropf)
}

// GetRevRatesOfProgress fills out with the reverse rate of progress of
// every reaction [mol/m³/s]. Irreversible reactions report exactly zero.
func (k *Kinetics) GetRevRatesOfProgress(out []float64) {
	k.checkLen(out)
	k.UpdateROP()
	copy(out, k.ropr)
}

// GetNetRatesOfProgress fills out with the net (forward minus reverse) rate
// of progress of every reaction [mol/m³/s].
func (k *Kinetics) GetNetRatesOfProgress(out []float64) {
	k.checkLen(out)
	k.UpdateROP()
	copy(out, k.ropnet)
}

// NetProductionRates fills wdot (length NSpecies) with the net chemical
// production rate of every species [mol/m³/s], assembled from the net rates
// of progress and the net stoichiometry.
func (k *Kinetics) NetProductionRates(wdot []float64) {
	if len(wdot) != k.thermo.NSpecies() {
		panic(fmt.Sprintf("gaskin: output length %d does not match %d species", len(wdot), k.thermo.NSpecies()))
	}
	k.UpdateROP()
	for i := range wdot {
		wdot[i] = 0
	}
	for i, r := range k.rxns {
		for idx, nu := range r.net.Elements {
			wdot[idx] += nu * k.ropnet[i]
		}
	}
}

func (k *Kinetics) checkLen(out []float64) {
	if len(out) != len(k.rxns) {
		panic(fmt.Sprintf("gaskin: output length %d does not match %d reactions", len(out), len(k.rxns)))
	}
}
