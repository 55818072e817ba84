/*
 * output.go, part of goStru.
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
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

//Line returns the atom as a PDB ATOM record (HETATM if het is true), with the
//given residue name, residue number and chain identifier. The atom must have
//a serial number, so Reindex needs to be run on the structure first.
func (A *Atom) Line(resName string, resID int, chain string, het bool) (string, error) {
	if A.ID <= 0 {
		return "", newError(LookupError, "atom %s has no serial number, reindex the structure first", A)
	}
	if len(A.Name) > 4 {
		return "", newError(FormatError, "atom name %s is longer than 4 characters", A.Name)
	}
	first := "ATOM"
	if het {
		first = "HETATM"
	}
	if chain == "" {
		chain = " "
	}
	el, err := A.Element(nil)
	if err != nil {
		A.Structure().Report(Warning, "element column left blank", slog.String("atom", A.String()),
			slog.String("error", err.Error()))
	}
	el = strings.ToUpper(el)
	//4-letter names start at column 13, shorter ones at column 14.
	format := "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s"
	if len(A.Name) == 4 {
		format = "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s"
	}
	return fmt.Sprintf(format, first, A.ID, A.Name, resName, chain, resID,
		A.Coord.X, A.Coord.Y, A.Coord.Z, 1.0, 0.0, el), nil
}

//Line returns the metal ion as a PDB HETATM record.
func (M *Metalatom) Line() (string, error) {
	if _, err := M.Element(nil); err != nil {
		return "", errDecorate(err, "Metalatom.Line")
	}
	//The embedded Atom already has the symbol cached, so the element column is right.
	return M.Atom.Line(M.ResName, M.ResID, " ", true)
}

//Lines returns the structure as PDB records: the chains, each followed by a TER
//record, then the metal ions and the ligands as HETATM records, and END.
//Reindex must have been run.
func (S *Structure) Lines() ([]string, error) {
	ret := make([]string, 0, S.NumAtoms()+len(S.chains)+1)
	for _, c := range S.chains {
		for _, r := range c.residues {
			for _, a := range r.atoms {
				l, err := a.Line(r.Name, r.ID, c.ID, false)
				if err != nil {
					return nil, errDecorate(err, "Lines")
				}
				ret = append(ret, l)
			}
		}
		ret = append(ret, "TER")
	}
	for _, m := range S.metals {
		l, err := m.Line()
		if err != nil {
			return nil, errDecorate(err, "Lines")
		}
		ret = append(ret, l)
	}
	for _, lig := range S.ligands {
		for _, a := range lig.atoms {
			l, err := a.Line(lig.Name, lig.ID, " ", true)
			if err != nil {
				return nil, errDecorate(err, "Lines")
			}
			ret = append(ret, l)
		}
	}
	ret = append(ret, "END")
	return ret, nil
}

//WritePDB writes the structure to w in PDB format. Reindex must have been run.
func (S *Structure) WritePDB(w io.Writer) error {
	lines, err := S.Lines()
	if err != nil {
		return errDecorate(err, "WritePDB")
	}
	out := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := out.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return out.Flush()
}
