/*
 * bonds.go, part of goStru.
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
	"sort"

	"github.com/rmera/gostru/ref"
	"gonum.org/v1/gonum/graph/simple"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//bondGraph is the connectivity of the atoms of one residue. Node IDs are
//the indexes of the atoms in the residue.
type bondGraph struct {
	*simple.UndirectedGraph
	atoms    []*Atom
	elements []string
}

//Bonds assigns bonds among the atoms of the residue based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
//Each hydrogen gets only one bond, to the closest heavy atom that satisfies the criterium.
func (R *Residue) bonds(t *ref.Tables) (*bondGraph, error) {
	B := &bondGraph{
		UndirectedGraph: simple.NewUndirectedGraph(),
		atoms:           R.atoms,
		elements:        make([]string, len(R.atoms)),
	}
	cov := make([]float64, len(R.atoms))
	for i, a := range R.atoms {
		el, err := a.Element(t)
		if err != nil {
			return nil, errDecorate(err, "bonds")
		}
		c, ok := t.CovalentRadii[el]
		if !ok {
			return nil, newError(TableError, "couldn't find the covalent radius for %s (atom %s)", el, a)
		}
		B.elements[i] = el
		cov[i] = c
		B.AddNode(simple.Node(i))
	}
	nearest := make(map[int]int) //hydrogen -> closest heavy atom
	for i := range R.atoms {
		for j := i + 1; j < len(R.atoms); j++ {
			d := R.atoms[i].Distance(R.atoms[j])
			if d >= cov[i]+cov[j]+bondtol || d <= tooclose {
				continue
			}
			hi, hj := B.elements[i] == "H", B.elements[j] == "H"
			switch {
			case hi && hj:
			case hi:
				B.closer(nearest, i, j)
			case hj:
				B.closer(nearest, j, i)
			default:
				B.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	for h, heavy := range nearest {
		B.SetEdge(simple.Edge{F: simple.Node(h), T: simple.Node(heavy)})
	}
	return B, nil
}

func (B *bondGraph) closer(nearest map[int]int, h, heavy int) {
	prev, ok := nearest[h]
	if !ok || B.atoms[h].Distance(B.atoms[heavy]) < B.atoms[h].Distance(B.atoms[prev]) {
		nearest[h] = heavy
	}
}

//neighbors returns the indexes of the atoms bonded to atom i, split in
//hydrogens and heavy atoms, each sorted by index.
func (B *bondGraph) neighbors(i int) (hydrogens, heavy []int) {
	it := B.From(int64(i))
	for it.Next() {
		j := int(it.Node().ID())
		if B.elements[j] == "H" {
			hydrogens = append(hydrogens, j)
		} else {
			heavy = append(heavy, j)
		}
	}
	sort.Ints(hydrogens)
	sort.Ints(heavy)
	return hydrogens, heavy
}

//index returns the position of A in the graph, or -1.
func (B *bondGraph) index(A *Atom) int {
	for i, v := range B.atoms {
		if v == A {
			return i
		}
	}
	return -1
}

//BondedTo returns the atoms of the residue bonded to A, using the distance
//criterium described for bonds. If t is nil the structure's tables are used.
func (R *Residue) BondedTo(A *Atom, t *ref.Tables) ([]*Atom, error) {
	if t == nil {
		t = R.Structure().Tables()
	}
	B, err := R.bonds(t)
	if err != nil {
		return nil, errDecorate(err, "BondedTo")
	}
	i := B.index(A)
	if i < 0 {
		return nil, newError(LookupError, "atom %s is not in residue %s", A, R)
	}
	h, heavy := B.neighbors(i)
	idx := append(heavy, h...)
	sort.Ints(idx)
	ret := make([]*Atom, 0, len(idx))
	for _, v := range idx {
		ret = append(ret, B.atoms[v])
	}
	return ret, nil
}
