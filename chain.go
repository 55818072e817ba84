/*
 * chain.go, part of goStru.
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
	"slices"
	"strings"

	"github.com/rmera/gostru/ref"
)

//chain identifiers, in the order they are assigned.
const chainLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

//MaxChains is the largest number of chains a structure can have.
const MaxChains = len(chainLetters)

//ChainLetter returns the identifier of the i-th chain (0-based): A to Z, then
//a to z, then 0 to 9. It returns a FormatError for i out of that range.
func ChainLetter(i int) (string, error) {
	if i < 0 || i >= MaxChains {
		return "", newError(FormatError, "no chain identifier available for chain number %d (max %d)", i+1, MaxChains)
	}
	return chainLetters[i : i+1], nil
}

//chainKey is the 1-based position of id among the chain identifiers, 0 if id
//is not a valid identifier.
func chainKey(id string) int {
	if len(id) != 1 {
		return 0
	}
	return strings.Index(chainLetters, id) + 1
}

//Chain is a sequence of residues.
type Chain struct {
	ID string

	residues []*Residue
	stru     *Structure
	mark     bool
}

//NewChain returns a chain containing the given residues. It panics if a residue
//is nil or already in a chain.
func NewChain(id string, residues ...*Residue) *Chain {
	C := &Chain{ID: id}
	if err := C.add(0, false, residues); err != nil {
		panic(err.Error())
	}
	return C
}

func (C *Chain) member() {}

//Structure returns the structure containing the chain, or nil.
func (C *Chain) Structure() *Structure { return C.stru }

//Len returns the number of residues in the chain.
func (C *Chain) Len() int { return len(C.residues) }

//Residues returns a copy of the list of residues.
func (C *Chain) Residues() []*Residue { return slices.Clone(C.residues) }

//Residue returns the i-th residue (0-based). It panics if i is out of range.
func (C *Chain) Residue(i int) *Residue { return C.residues[i] }

//Nth returns the nth residue, counting from 1. It panics if n is out of range.
func (C *Chain) Nth(n int) *Residue { return C.residues[n-1] }

//ResiduesByName returns all the residues called name.
func (C *Chain) ResiduesByName(name string) []*Residue {
	ret := make([]*Residue, 0, 1)
	for _, v := range C.residues {
		if v.Name == name {
			ret = append(ret, v)
		}
	}
	return ret
}

//ResidueByID returns the residue with residue number id. It returns a
//LookupError if there is none, or more than one.
func (C *Chain) ResidueByID(id int) (*Residue, error) {
	var ret *Residue
	for _, v := range C.residues {
		if v.ID != id {
			continue
		}
		if ret != nil {
			return nil, newError(LookupError, "more than one residue numbered %d in chain %s", id, C.ID)
		}
		ret = v
	}
	if ret == nil {
		return nil, newError(LookupError, "no residue numbered %d in chain %s", id, C.ID)
	}
	return ret, nil
}

//Atoms returns all the atoms of the chain, in order.
func (C *Chain) Atoms() []*Atom {
	ret := make([]*Atom, 0, len(C.residues)*10)
	for _, v := range C.residues {
		ret = append(ret, v.atoms...)
	}
	return ret
}

//Sequence returns the one-letter sequence of the chain. Residues without
//one-letter code are given as X. If t is nil, the tables of the structure are used.
func (C *Chain) Sequence(t *ref.Tables) string {
	if t == nil {
		t = C.stru.Tables()
	}
	var b strings.Builder
	for _, v := range C.residues {
		if t.Solvent[v.Name] {
			continue
		}
		l, ok := t.OneLetter[v.Name]
		if !ok {
			l = 'X'
		}
		b.WriteByte(l)
	}
	return b.String()
}

//Add appends residues to the chain.
func (C *Chain) Add(residues ...*Residue) error {
	return errDecorate(C.add(0, false, residues), "Chain.Add")
}

//AddAs appends residues to the chain, giving them the residue number id.
func (C *Chain) AddAs(id int, residues ...*Residue) error {
	return errDecorate(C.add(id, false, residues), "Chain.AddAs")
}

//Insert adds residues right after the residue currently numbered id, and
//renumbers the chain.
func (C *Chain) Insert(id int, residues ...*Residue) error {
	if err := C.add(id, id > 0, residues); err != nil {
		return errDecorate(err, "Chain.Insert")
	}
	C.Reindex()
	return nil
}

func (C *Chain) add(id int, mark bool, residues []*Residue) error {
	for i, v := range residues {
		if v == nil {
			return newError(TypeError, "element %d of the batch is not a residue (nil)", i)
		}
		if v.chain != nil || v.stru != nil {
			return newError(TypeError, "residue %s already belongs to another element", v)
		}
		if slices.Contains(residues[:i], v) {
			return newError(TypeError, "residue %s appears twice in the batch", v)
		}
	}
	for _, v := range residues {
		v.chain = C
		if id > 0 {
			v.ID = id
		}
		v.mark = mark
		C.residues = append(C.residues, v)
	}
	return nil
}

//RemoveAt removes and returns the i-th residue (0-based). It panics if i is out of range.
func (C *Chain) RemoveAt(i int) *Residue {
	var R *Residue
	C.residues, R = removeAt(C.residues, i)
	R.chain = nil
	return R
}

//RemoveByName removes all the residues called name, and returns how many were removed.
func (C *Chain) RemoveByName(name string) int {
	var removed []*Residue
	C.residues, removed = removeWhere(C.residues, func(R *Residue) bool { return R.Name == name })
	for _, v := range removed {
		v.chain = nil
	}
	return len(removed)
}

//Remove removes R from the chain. It returns false if R was not there.
func (C *Chain) Remove(R *Residue) bool {
	var ok bool
	C.residues, ok = removeItem(C.residues, R)
	if ok {
		R.chain = nil
	}
	return ok
}

//Reindex orders the residues by residue number, placing inserted residues, and
//numbers residues and atoms of the chain from 1.
func (C *Chain) Reindex() {
	sortMarked(C.residues)
	atid := 1
	for i, v := range C.residues {
		v.ID = i + 1
		sortMarked(v.atoms)
		for _, a := range v.atoms {
			a.ID = atid
			atid++
		}
	}
}

func (C *Chain) key() int       { return chainKey(C.ID) }
func (C *Chain) marked() bool   { return C.mark }
func (C *Chain) setMark(b bool) { C.mark = b }
