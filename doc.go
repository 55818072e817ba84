/*
 * doc.go, part of goStru.
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

/*Package stru reads protein structures from PDB files into a hierarchy of
chains, residues and atoms, finds the metal ions in them and the protein atoms
that coordinate each metal, and fixes the protonation state of the
coordinating residues so the structure can be used in a simulation.



	**goStru Capabilities**


    Reads PDB files, possibly gzip or zstd compressed. Chains are delimited by
	TER records.

    Takes the metal ions out of the chains, and keeps them as Metalatoms
	directly under the Structure.

    Finds the donor atoms of each metal center from the sum of the ionic or
	van der Waals radii of metal and donor.

    Fixes the protonation of the donor residues: residues with ambiguous
	protonation states (HIP, ASH, CYS...) are deprotonated, and the protons of
	the others are rotated so a lone pair of the donor faces the metal.

    Adds, inserts, removes and looks up elements at every level of the hierarchy,
	and renumbers the whole structure.

    Writes the structure back in PDB format.


All the residue and atom names, radii and deprotonation rules come from the
reference tables of the ref package, so other naming conventions can be
supported by giving different tables in the Options.

*/
package stru
