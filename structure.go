/*
 * structure.go, part of goStru.
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

	"github.com/rmera/gostru/ref"
)

//Member is an element that can belong directly to a Structure: a *Chain,
//a *Metalatom or a *Ligand.
type Member interface {
	member()
}

//Structure is the root of the hierarchy. It owns chains, metal ions and ligands.
type Structure struct {
	chains  []*Chain
	metals  []*Metalatom
	ligands []*Ligand
	centers []*Metalatom

	opts *Options
	diag diagnostics
}

//NewStructure builds a structure from its parts, with the default options.
//At least one part must be given.
func NewStructure(chains []*Chain, metals []*Metalatom, ligands []*Ligand) (*Structure, error) {
	if len(chains) == 0 && len(metals) == 0 && len(ligands) == 0 {
		return nil, newError(TypeError, "need at least one chain, metal or ligand to build a structure")
	}
	S := &Structure{opts: DefaultOptions()}
	if err := S.setParts(chains, metals, ligands); err != nil {
		return nil, errDecorate(err, "NewStructure")
	}
	return S, nil
}

func (S *Structure) setParts(chains []*Chain, metals []*Metalatom, ligands []*Ligand) error {
	items := make([]Member, 0, len(chains)+len(metals)+len(ligands))
	for _, v := range chains {
		items = append(items, v)
	}
	for _, v := range metals {
		items = append(items, v)
	}
	for _, v := range ligands {
		items = append(items, v)
	}
	return S.add(0, false, items)
}

//Options returns the options of the structure, nil for a nil *Structure.
func (S *Structure) Options() *Options {
	if S == nil {
		return nil
	}
	return S.opts
}

//SetOptions replaces the options of the structure. Zero fields of o are set to
//their default values. A nil o restores the defaults.
func (S *Structure) SetOptions(o *Options) {
	S.opts = o.filled()
}

//Tables returns the reference tables used by the structure. It can be called
//on a nil *Structure, in which case the default tables are returned.
func (S *Structure) Tables() *ref.Tables {
	if S == nil || S.opts == nil || S.opts.Tables == nil {
		return stdTables
	}
	return S.opts.Tables
}

//Len returns the total number of members (chains, metals and ligands).
func (S *Structure) Len() int {
	return len(S.chains) + len(S.metals) + len(S.ligands)
}

//Chains returns a copy of the list of chains.
func (S *Structure) Chains() []*Chain { return slices.Clone(S.chains) }

//Metalatoms returns a copy of the list of metal ions.
func (S *Structure) Metalatoms() []*Metalatom { return slices.Clone(S.metals) }

//Ligands returns a copy of the list of ligands.
func (S *Structure) Ligands() []*Ligand { return slices.Clone(S.ligands) }

//Chain returns the i-th chain (0-based). It panics if i is out of range.
func (S *Structure) Chain(i int) *Chain { return S.chains[i] }

//NthChain returns the nth chain, counting from 1. It panics if n is out of range.
func (S *Structure) NthChain(n int) *Chain { return S.chains[n-1] }

//ChainByName returns the chain with identifier id. It returns a LookupError
//if there is none or more than one.
func (S *Structure) ChainByName(id string) (*Chain, error) {
	var ret *Chain
	for _, v := range S.chains {
		if v.ID != id {
			continue
		}
		if ret != nil {
			return nil, newError(LookupError, "more than one chain %s", id)
		}
		ret = v
	}
	if ret == nil {
		return nil, newError(LookupError, "no chain %s", id)
	}
	return ret, nil
}

//Metalatom returns the i-th metal ion (0-based). It panics if i is out of range.
func (S *Structure) Metalatom(i int) *Metalatom { return S.metals[i] }

//Ligand returns the i-th ligand (0-based). It panics if i is out of range.
func (S *Structure) Ligand(i int) *Ligand { return S.ligands[i] }

//Add appends members to the structure. Members that already belong to a
//structure must be removed from it first.
func (S *Structure) Add(items ...Member) error {
	return errDecorate(S.add(0, false, items), "Structure.Add")
}

//AddAs appends members to the structure with the identifier id: the chain
//number (1 is A) for chains, the residue number for metals and ligands.
func (S *Structure) AddAs(id int, items ...Member) error {
	return errDecorate(S.add(id, false, items), "Structure.AddAs")
}

//Insert adds members right after the member of the same kind currently
//identified as id, and reindexes the whole structure.
func (S *Structure) Insert(id int, items ...Member) error {
	if err := S.add(id, id > 0, items); err != nil {
		return errDecorate(err, "Structure.Insert")
	}
	return errDecorate(S.Reindex(), "Structure.Insert")
}

func isNilMember(m Member) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Chain:
		return v == nil
	case *Metalatom:
		return v == nil
	case *Ligand:
		return v == nil
	}
	return false
}

func (S *Structure) add(id int, mark bool, items []Member) error {
	for i, m := range items {
		if isNilMember(m) {
			return newError(TypeError, "element %d of the batch is nil; a structure only takes chains, metals and ligands", i)
		}
		var owned bool
		switch v := m.(type) {
		case *Chain:
			owned = v.stru != nil
			if id > MaxChains {
				return newError(TypeError, "chain number %d out of range (max %d)", id, MaxChains)
			}
		case *Metalatom:
			owned = v.stru != nil
		case *Ligand:
			owned = v.stru != nil || v.chain != nil
		}
		if owned {
			return newError(TypeError, "element %d of the batch already belongs to a structure", i)
		}
		if slices.Contains(items[:i], m) {
			return newError(TypeError, "element %d of the batch appears twice", i)
		}
	}
	for _, m := range items {
		switch v := m.(type) {
		case *Chain:
			v.stru = S
			if id > 0 {
				v.ID, _ = ChainLetter(id - 1)
			}
			v.mark = mark
			S.chains = append(S.chains, v)
		case *Metalatom:
			v.stru = S
			if id > 0 {
				v.ResID = id
			}
			v.mark = mark
			S.metals = append(S.metals, v)
		case *Ligand:
			v.stru = S
			if id > 0 {
				v.ID = id
			}
			v.mark = mark
			S.ligands = append(S.ligands, v)
		}
	}
	return nil
}

//RemoveChainAt removes and returns the i-th chain (0-based). It panics if i is out of range.
func (S *Structure) RemoveChainAt(i int) *Chain {
	var C *Chain
	S.chains, C = removeAt(S.chains, i)
	C.stru = nil
	return C
}

//RemoveChainsByName removes the chains with identifier id, and returns how many were removed.
func (S *Structure) RemoveChainsByName(id string) int {
	var removed []*Chain
	S.chains, removed = removeWhere(S.chains, func(C *Chain) bool { return C.ID == id })
	for _, v := range removed {
		v.stru = nil
	}
	return len(removed)
}

//RemoveMetalAt removes and returns the i-th metal ion (0-based). It panics if i is out of range.
func (S *Structure) RemoveMetalAt(i int) *Metalatom {
	var M *Metalatom
	S.metals, M = removeAt(S.metals, i)
	S.releaseMetal(M)
	return M
}

//RemoveLigandAt removes and returns the i-th ligand (0-based). It panics if i is out of range.
func (S *Structure) RemoveLigandAt(i int) *Ligand {
	var L *Ligand
	S.ligands, L = removeAt(S.ligands, i)
	L.stru = nil
	return L
}

//Remove removes m from the structure. It returns false if m was not there.
func (S *Structure) Remove(m Member) bool {
	var ok bool
	switch v := m.(type) {
	case *Chain:
		if S.chains, ok = removeItem(S.chains, v); ok {
			v.stru = nil
		}
	case *Metalatom:
		if S.metals, ok = removeItem(S.metals, v); ok {
			S.releaseMetal(v)
		}
	case *Ligand:
		if S.ligands, ok = removeItem(S.ligands, v); ok {
			v.stru = nil
		}
	}
	return ok
}

func (S *Structure) releaseMetal(M *Metalatom) {
	M.stru = nil
	S.centers, _ = removeItem(S.centers, M)
}

//MetalCenters recomputes and returns the metal ions that are metal centers.
func (S *Structure) MetalCenters() []*Metalatom {
	t := S.Tables()
	S.centers = make([]*Metalatom, 0, len(S.metals))
	for _, v := range S.metals {
		if v.IsCenter(t) {
			S.centers = append(S.centers, v)
		}
	}
	return slices.Clone(S.centers)
}

//ProteinAtoms returns the atoms of the amino acid residues in chains.
//Solvent and other non-protein residues left in a chain are excluded.
func (S *Structure) ProteinAtoms() []*Atom {
	t := S.Tables()
	ret := make([]*Atom, 0, 100*len(S.chains))
	for _, c := range S.chains {
		for _, r := range c.residues {
			if !t.IsProtein(r.Name) {
				continue
			}
			ret = append(ret, r.atoms...)
		}
	}
	return ret
}

//NumAtoms returns the total number of atoms in the structure, counting metal ions.
func (S *Structure) NumAtoms() int {
	n := len(S.metals)
	for _, c := range S.chains {
		for _, r := range c.residues {
			n += len(r.atoms)
		}
	}
	for _, l := range S.ligands {
		n += len(l.atoms)
	}
	return n
}

//ArtificialResidues returns the chain residues for which isArtificial returns
//true, in order. How an artificial residue is recognized is left to the caller.
func (S *Structure) ArtificialResidues(isArtificial func(*Residue) bool) []*Residue {
	ret := make([]*Residue, 0)
	for _, c := range S.chains {
		for _, r := range c.residues {
			if isArtificial(r) {
				ret = append(ret, r)
			}
		}
	}
	return ret
}

//Reindex sorts every level of the structure by identifier, placing inserted
//elements after the element they were inserted at, relabels the chains by
//position, and numbers residues and atoms consecutively: first those in chains,
//then the metal ions, then the ligands.
func (S *Structure) Reindex() error {
	if len(S.chains) > MaxChains {
		return newError(FormatError, "%d chains, but at most %d can be labelled", len(S.chains), MaxChains)
	}
	sortMarked(S.chains)
	sortMarked(S.metals)
	sortMarked(S.ligands)
	resid, atid := 1, 1
	for i, c := range S.chains {
		c.ID, _ = ChainLetter(i)
		sortMarked(c.residues)
		for _, r := range c.residues {
			r.ID = resid
			resid++
			atid = numberAtoms(r, atid)
		}
	}
	for _, m := range S.metals {
		m.ResID = resid
		resid++
		m.ID = atid
		atid++
	}
	for _, l := range S.ligands {
		l.ID = resid
		resid++
		atid = numberAtoms(&l.Residue, atid)
	}
	return nil
}

func numberAtoms(R *Residue, first int) int {
	sortMarked(R.atoms)
	for _, a := range R.atoms {
		a.ID = first
		first++
	}
	return first
}
