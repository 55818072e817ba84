/*
 * build.go, part of goStru.
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
	"errors"
	"io"
	"strings"

	"github.com/rmera/gostru/pdbline"
)

//ReadFile reads a PDB file, possibly gzip or zstd compressed, and builds a
//structure from it. A nil o means DefaultOptions().
func ReadFile(name string, o *Options) (*Structure, error) {
	f, err := pdbline.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := Read(f, o)
	if err != nil {
		var E *Error
		if errors.As(err, &E) {
			E.filename = name
		}
		return nil, errDecorate(err, "ReadFile")
	}
	return S, nil
}

//ReadString builds a structure from the text of a PDB file.
func ReadString(text string, o *Options) (*Structure, error) {
	S, err := Read(strings.NewReader(text), o)
	return S, errDecorate(err, "ReadString")
}

//Read builds a structure from PDB text. Chains are delimited by TER records,
//and get the identifiers A, B, C... in order, whatever the chain column says.
//Residues are split when the residue number changes. After the chains are
//built, metals and, if an extractor is set in o, ligands are moved out of them.
func Read(r io.Reader, o *Options) (*Structure, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	o = o.filled()
	segments, err := splitChains(string(b))
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	chains := make([]*Chain, 0, len(segments))
	for i, seg := range segments {
		lines, err := pdbline.ParseLines(seg.text, seg.first)
		if err != nil {
			return nil, wrapError(FormatError, err, "chain segment %d", i+1)
		}
		atoms := make([]*pdbline.Line, 0, len(lines))
		for _, l := range lines {
			if l.IsAtom() {
				atoms = append(atoms, l)
			}
		}
		if len(atoms) == 0 {
			//the last segment is whatever comes after the last TER, normally just END.
			if i == len(segments)-1 {
				break
			}
			return nil, newError(FormatError, "empty chain: no atoms between line %d and the next TER", seg.first)
		}
		id, err := ChainLetter(len(chains))
		if err != nil {
			return nil, errDecorate(err, "Read")
		}
		chains = append(chains, chainFromLines(id, atoms, o.ForceField))
	}
	S := &Structure{opts: o}
	chains, metals, err := o.MetalExtractor.ExtractMetals(S, chains)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	var ligands []*Ligand
	if o.LigandExtractor != nil {
		chains, ligands, err = o.LigandExtractor.ExtractLigands(S, chains)
		if err != nil {
			return nil, errDecorate(err, "Read")
		}
	}
	if err := S.setParts(chains, metals, ligands); err != nil {
		return nil, errDecorate(err, "Read")
	}
	return S, nil
}

type segment struct {
	text  string
	first int //line number of the first line of text
}

//splitChains splits text at the TER records. The TER lines are not included.
func splitChains(text string) ([]segment, error) {
	lines := strings.Split(text, "\n")
	ret := make([]segment, 0, 2)
	start := 0
	for i, l := range lines {
		if pdbline.Record(l) != "TER" {
			continue
		}
		ret = append(ret, segment{strings.Join(lines[start:i], "\n"), start + 1})
		start = i + 1
	}
	if len(ret) == 0 {
		return nil, newError(FormatError, "no chain terminator (TER) found")
	}
	ret = append(ret, segment{strings.Join(lines[start:], "\n"), start + 1})
	return ret, nil
}

//chainFromLines builds a chain from ATOM/HETATM records. A new residue is
//started every time the residue number changes.
func chainFromLines(id string, lines []*pdbline.Line, ff string) *Chain {
	C := &Chain{ID: id}
	var R *Residue
	for _, l := range lines {
		if R == nil || l.ResID != R.ID {
			R = &Residue{ID: l.ResID, Name: l.ResName}
			C.add(0, false, []*Residue{R})
		}
		A := &Atom{Name: l.Name, Coord: l.Coord, FF: ff, ID: l.Serial}
		R.add(0, false, []*Atom{A})
	}
	return C
}
