/*
 * amber.go, part of goStru.
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

package ref

import (
	"fmt"
	"strings"
)

//Residue names that are treated as metal ions, with their element.
var metalNames = map[string]string{
	"ZN":  "Zn",
	"MG":  "Mg",
	"CA":  "Ca",
	"FE":  "Fe",
	"FE2": "Fe",
	"CU":  "Cu",
	"CU1": "Cu",
	"MN":  "Mn",
	"CO":  "Co",
	"NI":  "Ni",
	"CD":  "Cd",
	"HG":  "Hg",
	"NA":  "Na",
	"K":   "K",
	"LI":  "Li",
	"Na+": "Na",
	"K+":  "K",
	"Li+": "Li",
}

//Metals whose coordination sphere matters for protonation. Alkali ions are
//extracted but not fixed.
var metalCenters = map[string]bool{
	"ZN":  true,
	"MG":  true,
	"CA":  true,
	"FE":  true,
	"FE2": true,
	"CU":  true,
	"CU1": true,
	"MN":  true,
	"CO":  true,
	"NI":  true,
	"CD":  true,
	"HG":  true,
}

var solventNames = map[string]bool{
	"HOH":  true,
	"WAT":  true,
	"H2O":  true,
	"DOD":  true,
	"SOL":  true,
	"TIP3": true,
	"TIP":  true,
	"T3P":  true,
	"T4P":  true,
}

//AMBER atom names that can coordinate a metal.
var amberDonors = map[string]bool{
	"O":   true, //backbone carbonyl
	"OXT": true,
	"OD1": true,
	"OD2": true,
	"OE1": true,
	"OE2": true,
	"OG":  true,
	"OG1": true,
	"OH":  true,
	"ND1": true,
	"NE2": true,
	"NE":  true,
	"NH1": true,
	"NH2": true,
	"NZ":  true,
	"SG":  true,
	"SD":  true,
}

//Histidine forms and arginine have donor-specific entries. HIE and HID have a
//no-op entry for the nitrogen that is already unprotonated.
var amberDeprotonations = map[string][]Deprotonation{
	"HIP": {{Donor: "ND1", Name: "HIE", Proton: "HD1"}, {Donor: "NE2", Name: "HID", Proton: "HE2"}},
	"HIE": {{Donor: "ND1"}, {Donor: "NE2", Name: "HID", Proton: "HE2"}},
	"HID": {{Donor: "ND1", Name: "HIE", Proton: "HD1"}, {Donor: "NE2"}},
	"ARG": {{Donor: "NH1", Name: "AR0", Proton: "HH12"}, {Donor: "NH2", Name: "AR0", Proton: "HH22"}},
	"ASH": {{Name: "ASP", Proton: "HD2"}},
	"GLH": {{Name: "GLU", Proton: "HE2"}},
	"CYS": {{Name: "CYM", Proton: "HG"}},
	"LYS": {{Name: "LYN", Proton: "HZ1"}},
	"TYR": {{Name: "TYM", Proton: "HH"}},
}

var amberLonePairs = map[string]map[string]float64{
	"SER": {"OG": 120},
	"THR": {"OG1": 120},
	"CYS": {"SG": 120},
	"TYR": {"OH": 180},
	"ASH": {"OD2": 180},
	"GLH": {"OE2": 180},
	"LYS": {"NZ": 120},
}

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
//AMBER protonation variants map to their parent residue.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"CYM": 'C',
	"CYX": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TYM": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"AR0": 'R',
	"HIS": 'H',
	"HIE": 'H',
	"HID": 'H',
	"HIP": 'H',
	"LYS": 'K',
	"LYN": 'K',
	"ASP": 'D',
	"ASH": 'D',
	"GLU": 'E',
	"GLH": 'E',
}

//AmberElement guesses a chemical element symbol from an AMBER atom name.
//It only deals with some common bio-elements.
func AmberElement(name string) (string, error) {
	n := strings.TrimLeft(strings.TrimSpace(name), "0123456789")
	if n == "" {
		return "", fmt.Errorf("ref: can't guess element from empty atom name %q", name)
	}
	n = strings.ToUpper(n)
	two := n
	if len(two) > 2 {
		two = two[:2]
	}
	switch two {
	case "CL":
		return "Cl", nil
	case "BR":
		return "Br", nil
	case "SE":
		return "Se", nil
	case "ZN":
		return "Zn", nil
	case "FE":
		return "Fe", nil
	}
	switch n[0] {
	case 'H':
		return "H", nil
	case 'C':
		return "C", nil //Ca is not considered here
	case 'N':
		return "N", nil
	case 'O':
		return "O", nil
	case 'S':
		return "S", nil
	case 'P':
		return "P", nil
	case 'F':
		return "F", nil
	case 'I':
		return "I", nil
	}
	return "", fmt.Errorf("ref: can't guess element from atom name %q", name)
}
