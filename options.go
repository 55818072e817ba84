/*
 * options.go, part of goStru.
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
	"log/slog"

	"github.com/rmera/gostru/ref"
)

//Default cutoff, in A, for the donor search.
const DefaultCutoff = 4.0

//MetalExtractor pulls the metal ions out of the raw chains of a structure
//being built. It returns the chains left (without empty ones) and the metals found.
type MetalExtractor interface {
	ExtractMetals(S *Structure, chains []*Chain) ([]*Chain, []*Metalatom, error)
}

//LigandExtractor pulls non-protein residues out of the raw chains, after the
//metals have been extracted.
type LigandExtractor interface {
	ExtractLigands(S *Structure, chains []*Chain) ([]*Chain, []*Ligand, error)
}

//PKaFixer assigns the protonation state of the residues that coordinate a metal
//based on their pKa. It backs the PKa strategy.
type PKaFixer interface {
	FixPKa(M *Metalatom) error
}

//Options contains the settings used to build and fix structures.
type Options struct {
	ForceField string  //naming convention of the input, ref.Amber by default
	Mode       ref.Mode //radii used in the donor search
	Cutoff     float64  //distance cutoff for the donor search, in A

	Tables *ref.Tables
	Logger *slog.Logger //nil means slog.Default()

	MetalExtractor  MetalExtractor  //nil means AnyChainMetals
	LigandExtractor LigandExtractor //nil means no ligand extraction
	PKa             PKaFixer        //nil means the PKa strategy is not available
}

//DefaultOptions returns an Options with the default settings.
func DefaultOptions() *Options {
	return &Options{
		ForceField:     ref.Amber,
		Mode:           ref.Ionic,
		Cutoff:         DefaultCutoff,
		Tables:         ref.Default(),
		MetalExtractor: AnyChainMetals{},
	}
}

//filled returns a copy of O with the zero fields set to their defaults.
//A nil O gives DefaultOptions().
func (O *Options) filled() *Options {
	if O == nil {
		return DefaultOptions()
	}
	o := *O
	if o.ForceField == "" {
		o.ForceField = ref.Amber
	}
	if o.Cutoff <= 0 {
		o.Cutoff = DefaultCutoff
	}
	if o.Tables == nil {
		o.Tables = ref.Default()
	}
	if o.MetalExtractor == nil {
		o.MetalExtractor = AnyChainMetals{}
	}
	return &o
}

//tables used by elements not attached to any structure.
var stdTables = ref.Default()
