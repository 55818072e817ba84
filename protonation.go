/*
 * protonation.go, part of goStru.
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
	"fmt"
	"log/slog"

	"github.com/rmera/gostru/ref"
	"gonum.org/v1/gonum/spatial/r3"
)

//Deprotonate changes the residue to its deprotonated form, for coordination
//through the atom donor, removing the corresponding proton. The form is taken
//from the deprotonation table of t (the structure's tables if t is nil).
//A nil donor selects the first entry of the table for the residue.
//Residues that are not in the table give a TableError. Donors without an entry
//for residues that do have one, and protons that are not present, only give warnings.
func (R *Residue) Deprotonate(donor *Atom, t *ref.Tables) error {
	if t == nil {
		t = R.Structure().Tables()
	}
	name := ""
	if donor != nil {
		if donor.residue != R {
			return newError(LookupError, "donor atom %s is not in residue %s", donor, R)
		}
		name = donor.Name
	}
	d, found, matched := t.Deprotonation(R.Name, name)
	if !found {
		return newError(TableError, "no deprotonated form for residue %s", R)
	}
	S := R.Structure()
	if !matched {
		S.Report(Warning, "no deprotonation entry for this donor, residue left unchanged",
			slog.String("residue", R.Name), slog.Int("resid", R.ID), slog.String("donor", name))
		return nil
	}
	if d.Noop() {
		return nil
	}
	if n := R.RemoveByName(d.Proton); n == 0 {
		S.Report(Warning, "proton to remove not found", slog.String("residue", R.Name),
			slog.Int("resid", R.ID), slog.String("proton", d.Proton))
	}
	R.Name = d.Name
	return nil
}

//RotateProton rotates the protons bonded to the donor atom so the lone pair of
//the donor points toward the given point, normally a metal. The protons are
//rotated rigidly around the bond between the donor and its heavy neighbor E1,
//until the dihedral proton-donor-E1-E2 (E2 a heavy neighbor of E1) differs from
//the dihedral toward-donor-E1-E2 by the lone pair offset in t.
//Donors without protons are left alone. RotateProton panics for residues
//whose protons can't be rotated, such as TRP.
func (R *Residue) RotateProton(donor *Atom, toward r3.Vec, t *ref.Tables) error {
	if t == nil {
		t = R.Structure().Tables()
	}
	if t.Rigid[R.Name] {
		panic(fmt.Sprintf("stru: residue %s coordinates a metal, but the protons of %s can't be rotated", R, R.Name))
	}
	if donor == nil || donor.residue != R {
		return newError(LookupError, "donor atom %v is not in residue %s", donor, R)
	}
	B, err := R.bonds(t)
	if err != nil {
		return errDecorate(err, "RotateProton")
	}
	d := B.index(donor)
	protons, heavy := B.neighbors(d)
	if len(protons) == 0 {
		return nil
	}
	S := R.Structure()
	if len(heavy) == 0 {
		S.Report(Warning, "donor not bonded to any heavy atom, proton not rotated",
			slog.String("residue", R.Name), slog.Int("resid", R.ID), slog.String("donor", donor.Name))
		return nil
	}
	e1 := heavy[0]
	e2 := -1
	_, second := B.neighbors(e1)
	for _, v := range second {
		if v != d {
			e2 = v
			break
		}
	}
	if e2 < 0 {
		S.Report(Warning, "no second heavy atom to define the dihedral, proton not rotated",
			slog.String("residue", R.Name), slog.Int("resid", R.ID), slog.String("donor", donor.Name))
		return nil
	}
	D, E1, E2 := donor.Coord, B.atoms[e1].Coord, B.atoms[e2].Coord
	target := Dihedral(toward, D, E1, E2) + Deg2Rad(t.LonePairOffset(R.Name, donor.Name))
	angle := angleDiff(Dihedral(B.atoms[protons[0]].Coord, D, E1, E2), target)
	coords := make([]r3.Vec, len(protons))
	for i, v := range protons {
		coords[i] = B.atoms[v].Coord
	}
	RotateAbout(coords, D, r3.Sub(E1, D), angle)
	for i, v := range protons {
		B.atoms[v].Coord = coords[i]
	}
	return nil
}
