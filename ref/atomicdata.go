/*
 * atomicdata.go, part of goStru.
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

//A map for assigning ionic radii to elements, for the usual oxidation state
//of each element in biomolecules. Values from Shannon, 1976 (DOI:10.1107/S0567739476001551)
//six-coordinated, high spin where it applies. Anions for the donor elements.
var symbolIonrad = map[string]float64{
	"Zn": 0.74,
	"Mg": 0.72,
	"Ca": 1.00,
	"Fe": 0.78, //Fe(II), hs
	"Cu": 0.73, //Cu(II)
	"Mn": 0.83, //Mn(II), hs
	"Co": 0.745,
	"Ni": 0.69,
	"Cd": 0.95,
	"Hg": 1.02,
	"Na": 1.02,
	"K":  1.38,
	"Li": 0.76,
	"N":  1.46, //N3-
	"O":  1.40, //O2-
	"S":  1.84, //S2-
	"Se": 1.98,
	"F":  1.33,
	"Cl": 1.81,
	"Br": 1.96,
	"I":  2.20,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Ni": 1.63,
	"Cd": 1.58,
	"Hg": 1.55,
	"Li": 1.82,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31, but H only ever has one bond and extra candidates are discarded later.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Ni": 1.24,
	"Cd": 1.44,
	"Hg": 1.32,
	"Li": 1.28,
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}
