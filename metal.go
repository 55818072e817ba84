/*
 * metal.go, part of goStru.
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
	"slices"

	"github.com/rmera/gostru/ref"
)

//Metalatom is a metal ion. It belongs directly to the structure and keeps
//the atoms and residues that coordinate it.
type Metalatom struct {
	Atom
	ResName string //residue name in the input, such as ZN or Na+
	ResID   int    //residue number

	DonorAtoms    []*Atom
	DonorResidues []*Residue

	stru *Structure
}

//NewMetalatom returns a metal ion with the name, coordinates and force field
//of A, which is not modified.
func NewMetalatom(A *Atom, resname string, resid int) *Metalatom {
	return &Metalatom{
		Atom:    Atom{Name: A.Name, Coord: A.Coord, FF: A.FF, ID: A.ID},
		ResName: resname,
		ResID:   resid,
	}
}

func (M *Metalatom) String() string {
	return fmt.Sprintf("%s%d/%s", M.ResName, M.ResID, M.Name)
}

func (M *Metalatom) member() {}

//Structure returns the structure containing the metal, or nil.
func (M *Metalatom) Structure() *Structure { return M.stru }

//Element returns the element of the metal, from the metal table. If t is nil
//the tables of the structure are used.
func (M *Metalatom) Element(t *ref.Tables) (string, error) {
	if M.symbol != "" {
		return M.symbol, nil
	}
	if t == nil {
		t = M.stru.Tables()
	}
	s, err := t.MetalElement(M.ResName)
	if err != nil {
		return "", wrapError(TableError, err, "metal %s", M)
	}
	M.symbol = s
	return s, nil
}

//IsCenter reports whether the metal is a metal center, i.e. whether its
//coordination is of interest.
func (M *Metalatom) IsCenter(t *ref.Tables) bool {
	if t == nil {
		t = M.stru.Tables()
	}
	return t.MetalCenters[M.ResName]
}

//donorIn returns the first donor atom of M that belongs to R.
func (M *Metalatom) donorIn(R *Residue) *Atom {
	for _, v := range M.DonorAtoms {
		if v.residue == R {
			return v
		}
	}
	return nil
}

func (M *Metalatom) key() int { return M.ResID }

//AnyChainMetals is the default MetalExtractor. It takes out of every chain the
//residues whose name is in the metal table, and turns each of their atoms into
//a Metalatom. Chains left empty are dropped.
type AnyChainMetals struct{}

func (AnyChainMetals) ExtractMetals(S *Structure, chains []*Chain) ([]*Chain, []*Metalatom, error) {
	t := S.Tables()
	metals := make([]*Metalatom, 0, 2)
	for _, c := range chains {
		var found []*Residue
		//backwards, so removing doesn't move the residues we haven't checked.
		for i := c.Len() - 1; i >= 0; i-- {
			r := c.residues[i]
			if !t.IsMetal(r.Name) {
				continue
			}
			S.Report(Info, "metal found", slog.String("chain", c.ID), slog.String("residue", r.Name), slog.Int("resid", r.ID))
			found = append(found, c.RemoveAt(i))
		}
		slices.Reverse(found)
		for _, r := range found {
			for _, a := range r.atoms {
				metals = append(metals, NewMetalatom(a, r.Name, r.ID))
			}
		}
	}
	chains, _ = removeWhere(chains, func(C *Chain) bool { return C.Len() == 0 })
	return chains, metals, nil
}
