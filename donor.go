/*
 * donor.go, part of goStru.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goStru is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package stru

import (
	"log/slog"
	"slices"
)

//DetectDonors finds the protein atoms that coordinate M. A candidate must have
//a donor name for its force field, be within the cutoff of o from the metal, and
//not farther from it than the sum of its radius and the metal's, in the radius mode
//of o. The cutoff is only a prefilter: if it is shorter than the largest
//possible sum of radii it is raised, with a warning. The results replace the
//previous DonorAtoms and DonorResidues of M. If o is nil the options of the
//structure are used.
func (M *Metalatom) DetectDonors(o *Options) error {
	S := M.stru
	if S == nil {
		return newError(LookupError, "metal %s is not in a structure", M)
	}
	if o == nil {
		o = S.opts
	}
	o = o.filled()
	t := o.Tables
	el, err := M.Element(t)
	if err != nil {
		return errDecorate(err, "DetectDonors")
	}
	rm, ok := t.Radius(o.Mode, el)
	if !ok {
		return newError(TableError, "no %s radius for the element %s of metal %s", o.Mode, el, M)
	}
	cutoffs := make(map[string]float64, 1) //by force field
	cutoff := func(ff string) float64 {
		if c, ok := cutoffs[ff]; ok {
			return c
		}
		c := o.Cutoff
		if max := rm + t.MaxDonorRadius(o.Mode, ff); max > c {
			S.Report(Warning, "cutoff raised to the largest sum of radii", slog.String("metal", M.String()),
				slog.Float64("cutoff", o.Cutoff), slog.Float64("raised", max))
			c = max
		}
		cutoffs[ff] = c
		return c
	}
	donors := make([]*Atom, 0, 6)
	for _, a := range S.ProteinAtoms() {
		if !t.IsDonor(a.FF, a.Name) {
			continue
		}
		d := M.Distance(a)
		if d > cutoff(a.FF) {
			continue
		}
		ael, err := a.Element(t)
		if err != nil {
			S.Report(Warning, "skipping donor candidate with unknown element", slog.String("atom", a.String()))
			continue
		}
		ra, ok := t.Radius(o.Mode, ael)
		if !ok {
			S.Report(Warning, "skipping donor candidate without radius", slog.String("atom", a.String()),
				slog.String("element", ael), slog.String("mode", o.Mode.String()))
			continue
		}
		if d <= rm+ra {
			donors = append(donors, a)
		}
	}
	for _, R := range M.DonorResidues {
		if slices.Contains(M.DonorAtoms, R.donor) {
			R.donor = nil
		}
	}
	M.DonorAtoms = donors
	M.AssignDonorResidues()
	return nil
}

//AssignDonorResidues sets DonorResidues from DonorAtoms, keeping one entry per
//residue, in the order the atoms appear. A residue with more than one donor atom
//is reported as a warning, and only its first donor atom is kept as its DonorAtom.
func (M *Metalatom) AssignDonorResidues() {
	M.DonorResidues = make([]*Residue, 0, len(M.DonorAtoms))
	seen := make(map[*Residue]*Atom, len(M.DonorAtoms))
	for _, a := range M.DonorAtoms {
		R := a.residue
		if R == nil {
			continue
		}
		if first, ok := seen[R]; ok {
			M.stru.Report(Warning, "residue has more than one donor atom", slog.String("metal", M.String()),
				slog.String("residue", R.Name), slog.Int("resid", R.ID),
				slog.String("first", first.Name), slog.String("other", a.Name))
			continue
		}
		seen[R] = a
		M.DonorResidues = append(M.DonorResidues, R)
		if R.donor == nil {
			R.donor = a
		}
	}
}

//DetectDonors runs the donor detection for every metal center of the
//structure, with options o (nil for the structure's).
func (S *Structure) DetectDonors(o *Options) error {
	for _, m := range S.MetalCenters() {
		if err := m.DetectDonors(o); err != nil {
			return errDecorate(err, "Structure.DetectDonors")
		}
	}
	return nil
}
