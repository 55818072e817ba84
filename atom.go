/*
 * atom.go, part of goStru.
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

	"github.com/rmera/gostru/ref"
	"gonum.org/v1/gonum/spatial/r3"
)

//Atom contains the information of one atom in a residue.
type Atom struct {
	Name  string
	Coord r3.Vec
	FF    string //naming convention the name follows
	ID    int    //serial number, 0 until assigned by Reindex.

	symbol  string //resolved lazily
	residue *Residue
	mark    bool
}

//NewAtom returns an atom without residue.
func NewAtom(name string, coord r3.Vec, ff string) *Atom {
	return &Atom{Name: name, Coord: coord, FF: ff}
}

//Residue returns the residue containing the atom, or nil.
func (A *Atom) Residue() *Residue { return A.residue }

//Structure returns the structure containing the atom, or nil.
func (A *Atom) Structure() *Structure {
	if A.residue == nil {
		return nil
	}
	return A.residue.Structure()
}

//Element returns the element symbol of the atom, resolved from its name and
//force field the first time it is needed. If t is nil, the tables of the
//structure containing the atom are used.
func (A *Atom) Element(t *ref.Tables) (string, error) {
	if A.symbol != "" {
		return A.symbol, nil
	}
	if t == nil {
		t = A.Structure().Tables()
	}
	s, err := t.Element(A.FF, A.Name)
	if err != nil {
		return "", wrapError(TableError, err, "can't resolve the element of atom %s", A.Name)
	}
	A.symbol = s
	return s, nil
}

//SetElement sets the element symbol of the atom, overriding the resolution from its name.
func (A *Atom) SetElement(symbol string) {
	A.symbol = symbol
}

//Distance returns the distance between A and B, in A.
func (A *Atom) Distance(B *Atom) float64 {
	return r3.Norm(r3.Sub(A.Coord, B.Coord))
}

func (A *Atom) String() string {
	if A.residue != nil {
		return fmt.Sprintf("%s/%s", A.residue, A.Name)
	}
	return A.Name
}

func (A *Atom) key() int       { return A.ID }
func (A *Atom) marked() bool   { return A.mark }
func (A *Atom) setMark(b bool) { A.mark = b }
