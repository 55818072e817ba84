/*
 * residue.go, part of goStru.
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
	"slices"

	"github.com/rmera/gostru/ref"
)

//Residue is a named group of atoms with a residue number.
type Residue struct {
	ID   int //residue number
	Name string

	atoms []*Atom
	chain *Chain
	stru  *Structure //only set for ligands
	donor *Atom
	mark  bool
}

//NewResidue returns a residue without a chain, containing the given atoms.
//It panics if an atom is nil.
func NewResidue(name string, id int, atoms ...*Atom) *Residue {
	R := &Residue{ID: id, Name: name}
	if err := R.add(0, false, atoms); err != nil {
		panic(err.Error())
	}
	return R
}

func (R *Residue) String() string {
	return fmt.Sprintf("%s%d", R.Name, R.ID)
}

//Len returns the number of atoms in the residue.
func (R *Residue) Len() int { return len(R.atoms) }

//Atoms returns a copy of the residue's list of atoms.
func (R *Residue) Atoms() []*Atom { return slices.Clone(R.atoms) }

//Atom returns the i-th atom (0-based) of the residue. It panics if i is out of range.
func (R *Residue) Atom(i int) *Atom { return R.atoms[i] }

//Nth returns the nth atom, counting from 1. It panics if n is out of range.
func (R *Residue) Nth(n int) *Atom { return R.atoms[n-1] }

//AtomsByName returns all the atoms called name, possibly none.
func (R *Residue) AtomsByName(name string) []*Atom {
	ret := make([]*Atom, 0, 1)
	for _, v := range R.atoms {
		if v.Name == name {
			ret = append(ret, v)
		}
	}
	return ret
}

//AtomByName returns the only atom called name. It returns a LookupError if
//there is no such atom or more than one.
func (R *Residue) AtomByName(name string) (*Atom, error) {
	ats := R.AtomsByName(name)
	switch len(ats) {
	case 0:
		return nil, newError(LookupError, "no atom %s in residue %s", name, R)
	case 1:
		return ats[0], nil
	}
	return nil, newError(LookupError, "%d atoms called %s in residue %s", len(ats), name, R)
}

//Chain returns the chain containing the residue, or nil.
func (R *Residue) Chain() *Chain { return R.chain }

//Structure returns the structure containing the residue, directly, if it is a
//ligand, or through its chain. It returns nil for detached residues.
func (R *Residue) Structure() *Structure {
	if R.chain != nil {
		return R.chain.stru
	}
	return R.stru
}

//DonorAtom returns the atom through which the residue coordinates a metal, or nil.
func (R *Residue) DonorAtom() *Atom { return R.donor }

//IsAmbiguous reports whether the protonation state of the residue is ambiguous.
//If t is nil, the tables of the structure are used.
func (R *Residue) IsAmbiguous(t *ref.Tables) bool {
	if t == nil {
		t = R.Structure().Tables()
	}
	return t.IsAmbiguous(R.Name)
}

//Add appends atoms to the residue. Atoms that belong to another residue must be
//removed from it first.
func (R *Residue) Add(atoms ...*Atom) error {
	return errDecorate(R.add(0, false, atoms), "Residue.Add")
}

//AddAs appends atoms to the residue, giving them the identifier id.
func (R *Residue) AddAs(id int, atoms ...*Atom) error {
	return errDecorate(R.add(id, false, atoms), "Residue.AddAs")
}

//Insert adds atoms right after the atom currently identified as id, and
//renumbers the atoms of the residue.
func (R *Residue) Insert(id int, atoms ...*Atom) error {
	if err := R.add(id, id > 0, atoms); err != nil {
		return errDecorate(err, "Residue.Insert")
	}
	R.Reindex()
	return nil
}

//add checks the whole batch before changing anything.
func (R *Residue) add(id int, mark bool, atoms []*Atom) error {
	for i, v := range atoms {
		if v == nil {
			return newError(TypeError, "element %d of the batch is not an atom (nil)", i)
		}
		if v.residue != nil {
			return newError(TypeError, "atom %s already belongs to residue %s", v.Name, v.residue)
		}
		if slices.Contains(atoms[:i], v) {
			return newError(TypeError, "atom %s appears twice in the batch", v.Name)
		}
	}
	for _, v := range atoms {
		v.residue = R
		if id > 0 {
			v.ID = id
		}
		v.mark = mark
		R.atoms = append(R.atoms, v)
	}
	return nil
}

//RemoveAt removes and returns the i-th atom (0-based). It panics if i is out of range.
func (R *Residue) RemoveAt(i int) *Atom {
	var A *Atom
	R.atoms, A = removeAt(R.atoms, i)
	R.release(A)
	return A
}

//RemoveByName removes all the atoms called name, and returns how many were removed.
func (R *Residue) RemoveByName(name string) int {
	var removed []*Atom
	R.atoms, removed = removeWhere(R.atoms, func(A *Atom) bool { return A.Name == name })
	for _, v := range removed {
		R.release(v)
	}
	return len(removed)
}

//Remove removes A from the residue. It returns false if A was not there.
func (R *Residue) Remove(A *Atom) bool {
	var ok bool
	R.atoms, ok = removeItem(R.atoms, A)
	if ok {
		R.release(A)
	}
	return ok
}

func (R *Residue) release(A *Atom) {
	A.residue = nil
	if R.donor == A {
		R.donor = nil
	}
}

//Reindex orders the atoms by identifier, placing inserted atoms, and numbers
//them from 1.
func (R *Residue) Reindex() {
	sortMarked(R.atoms)
	for i, v := range R.atoms {
		v.ID = i + 1
	}
}

func (R *Residue) key() int       { return R.ID }
func (R *Residue) marked() bool   { return R.mark }
func (R *Residue) setMark(b bool) { R.mark = b }

//Ligand is a non-protein residue that belongs directly to a structure.
type Ligand struct {
	Residue
}

//NewLigand turns R into a ligand, moving its atoms. R is left empty.
func NewLigand(R *Residue) *Ligand {
	L := &Ligand{Residue: Residue{ID: R.ID, Name: R.Name}}
	atoms := R.Atoms()
	for _, v := range atoms {
		R.release(v)
	}
	R.atoms = nil
	L.add(0, false, atoms)
	return L
}

func (L *Ligand) member() {}
