/*
 * tables.go, part of goStru.
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

//Package ref contains the chemical reference data used by goStru: which residue names
//are metals, which atom names can donate electrons to a metal, atomic radii, and the
//residue deprotonation table. The data is read-only once built; a Tables value can
//be shared by any number of structures.
package ref

import (
	"fmt"
	"sort"
)

//Amber is the force field tag for AMBER-style atom and residue names.
const Amber = "Amber"

//Mode selects the radius convention used in the coordination test.
type Mode int

const (
	Ionic Mode = iota //Shannon ionic radii
	VdW               //van der Waals radii
)

func (m Mode) String() string {
	switch m {
	case Ionic:
		return "INC"
	case VdW:
		return "VDW"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

//ParseMode accepts "INC", "ionic", "VDW" or "vdw".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "INC", "inc", "ionic", "Ionic":
		return Ionic, nil
	case "VDW", "vdw", "VdW":
		return VdW, nil
	}
	return Ionic, fmt.Errorf("ref: unknown radius mode %q", s)
}

//Deprotonation is one entry of the deprotonation table. Donor is the atom name
//the entry applies to; an empty Donor matches any donor atom. An empty Name
//means the residue is already compatible with coordination through Donor,
//so nothing is to be done.
type Deprotonation struct {
	Donor  string
	Name   string
	Proton string
}

//Noop reports whether applying the entry leaves the residue untouched.
func (D Deprotonation) Noop() bool {
	return D.Name == ""
}

//Tables groups all the lookups the structure code needs.
type Tables struct {
	Metals       map[string]string //residue name -> element symbol
	MetalCenters map[string]bool   //residue names that count as metal centers
	Solvent      map[string]bool   //residue names never considered as donors
	Protein      map[string]bool   //amino acid residue names, the only ones that can hold donors

	Donors map[string]map[string]bool //force field -> donor atom names

	IonicRadii    map[string]float64
	VdWRadii      map[string]float64
	CovalentRadii map[string]float64

	Deprotonations map[string][]Deprotonation
	//Dihedral offset, in degrees, between a proton on a donor atom and the
	//lone pair that should face the metal. Keyed by residue, then atom name.
	LonePairs map[string]map[string]float64
	//Residues whose donor protons can't be rotated at all.
	Rigid map[string]bool

	//Element resolvers, by force field.
	Elements map[string]func(name string) (string, error)

	OneLetter map[string]byte
}

//Default returns the standard tables. Each call builds a new value, so callers
//can modify the returned tables freely.
func Default() *Tables {
	t := &Tables{
		Metals:         copyStrMap(metalNames),
		MetalCenters:   copyBoolMap(metalCenters),
		Solvent:        copyBoolMap(solventNames),
		Donors:         map[string]map[string]bool{Amber: copyBoolMap(amberDonors)},
		IonicRadii:     copyFloatMap(symbolIonrad),
		VdWRadii:       copyFloatMap(symbolVdwrad),
		CovalentRadii:  copyFloatMap(symbolCovrad),
		Deprotonations: make(map[string][]Deprotonation, len(amberDeprotonations)),
		LonePairs:      make(map[string]map[string]float64, len(amberLonePairs)),
		Rigid:          map[string]bool{"TRP": true},
		Elements:       map[string]func(string) (string, error){Amber: AmberElement},
		OneLetter:      make(map[string]byte, len(three2OneLetter)),
		Protein:        make(map[string]bool, len(three2OneLetter)),
	}
	for k, v := range amberDeprotonations {
		t.Deprotonations[k] = append([]Deprotonation(nil), v...)
	}
	for k, v := range amberLonePairs {
		t.LonePairs[k] = copyFloatMap(v)
	}
	for k, v := range three2OneLetter {
		t.OneLetter[k] = v
		t.Protein[k] = true
	}
	return t
}

//IsProtein reports whether resname is an amino acid, in any of its
//protonation forms.
func (T *Tables) IsProtein(resname string) bool {
	return T.Protein[resname] && !T.Solvent[resname]
}

//IsMetal reports whether the residue name is a metal ion.
func (T *Tables) IsMetal(resname string) bool {
	_, ok := T.Metals[resname]
	return ok
}

//MetalElement returns the element symbol for a metal residue name.
func (T *Tables) MetalElement(resname string) (string, error) {
	e, ok := T.Metals[resname]
	if !ok {
		return "", fmt.Errorf("ref: %q is not a known metal", resname)
	}
	return e, nil
}

//IsDonor reports whether an atom name, in the given force field, can coordinate a metal.
func (T *Tables) IsDonor(ff, name string) bool {
	return T.Donors[ff][name]
}

//Radius returns the radius of element in the given mode.
func (T *Tables) Radius(mode Mode, element string) (float64, bool) {
	var r float64
	var ok bool
	switch mode {
	case Ionic:
		r, ok = T.IonicRadii[element]
	case VdW:
		r, ok = T.VdWRadii[element]
	}
	return r, ok
}

//MaxDonorRadius returns the largest radius, in the given mode, among the elements
//donor atoms of the force field ff can have. Names whose element can't be
//resolved are ignored.
func (T *Tables) MaxDonorRadius(mode Mode, ff string) float64 {
	var max float64
	for name := range T.Donors[ff] {
		e, err := T.Element(ff, name)
		if err != nil {
			continue
		}
		if r, ok := T.Radius(mode, e); ok && r > max {
			max = r
		}
	}
	return max
}

//Element resolves the element symbol of an atom from its name and force field.
func (T *Tables) Element(ff, name string) (string, error) {
	f, ok := T.Elements[ff]
	if !ok {
		return "", fmt.Errorf("ref: no element table for force field %q", ff)
	}
	return f(name)
}

//Deprotonation returns the table entry to apply to residue resname when it
//coordinates a metal through the atom donor. found is false if the residue is
//not in the table at all. If the residue has donor-specific entries and donor
//matches none of them, found is true and matched is false. An empty donor
//selects the first entry.
func (T *Tables) Deprotonation(resname, donor string) (d Deprotonation, found, matched bool) {
	entries, ok := T.Deprotonations[resname]
	if !ok || len(entries) == 0 {
		return d, false, false
	}
	if donor == "" {
		return entries[0], true, true
	}
	for _, v := range entries {
		if v.Donor == donor {
			return v, true, true
		}
	}
	for _, v := range entries {
		if v.Donor == "" {
			return v, true, true
		}
	}
	return d, true, false
}

//IsAmbiguous reports whether the protonation state of resname is ambiguous,
//i.e. whether it appears in the deprotonation table.
func (T *Tables) IsAmbiguous(resname string) bool {
	_, ok := T.Deprotonations[resname]
	return ok
}

//LonePairOffset returns the dihedral offset, in degrees, between the proton and
//the lone pair of atom in residue resname. 180 is returned for unknown pairs.
func (T *Tables) LonePairOffset(resname, atom string) float64 {
	if v, ok := T.LonePairs[resname][atom]; ok {
		return v
	}
	return 180
}

//MetalNames returns the metal residue names, sorted.
func (T *Tables) MetalNames() []string {
	ret := make([]string, 0, len(T.Metals))
	for k := range T.Metals {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func copyStrMap(m map[string]string) map[string]string {
	ret := make(map[string]string, len(m))
	for k, v := range m {
		ret[k] = v
	}
	return ret
}

func copyBoolMap(m map[string]bool) map[string]bool {
	ret := make(map[string]bool, len(m))
	for k, v := range m {
		ret[k] = v
	}
	return ret
}

func copyFloatMap(m map[string]float64) map[string]float64 {
	ret := make(map[string]float64, len(m))
	for k, v := range m {
		ret[k] = v
	}
	return ret
}
