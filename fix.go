/*
 * fix.go, part of goStru.
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
	"fmt"
	"log/slog"
)

//Strategy is a way of fixing the protonation of the residues that coordinate a metal.
type Strategy int

const (
	//Deprotonate residues with an ambiguous protonation state, and rotate
	//the protons of the rest.
	Deprotonate Strategy = iota + 1
	//Rotate the protons of all the donor residues.
	Rotate
	//Delegate to the PKaFixer in the options.
	PKa
)

func (s Strategy) String() string {
	switch s {
	case Deprotonate:
		return "deprotonate"
	case Rotate:
		return "rotate"
	case PKa:
		return "pka"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

//ParseStrategy returns the strategy with the given name or number, as accepted
//by the command line.
func ParseStrategy(s string) (Strategy, error) {
	for _, v := range []Strategy{Deprotonate, Rotate, PKa} {
		if s == v.String() || s == fmt.Sprint(int(v)) {
			return v, nil
		}
	}
	return 0, newError(Unsupported, "unknown fixing strategy %q", s)
}

//Fix fixes the protonation of the donor residues of M with the strategy s.
//DetectDonors must have been run before. Residues that can't be fixed because
//the tables lack something they need are skipped with a warning. If o is nil the options of the structure are used.
func (M *Metalatom) Fix(s Strategy, o *Options) error {
	if o == nil {
		o = M.stru.Options()
	}
	o = o.filled()
	t := o.Tables
	switch s {
	case Deprotonate, Rotate:
		for _, R := range M.DonorResidues {
			donor := M.donorIn(R)
			var err error
			if s == Deprotonate && R.IsAmbiguous(t) {
				err = R.Deprotonate(donor, t)
			} else {
				err = R.RotateProton(donor, M.Coord, t)
			}
			if IsKind(err, TableError) {
				M.stru.Report(Warning, "donor residue left unchanged", slog.String("metal", M.String()),
					slog.String("residue", R.Name), slog.Int("resid", R.ID), slog.String("error", err.Error()))
				continue
			}
			if err != nil {
				return errDecorate(err, "Fix")
			}
		}
	case PKa:
		if o.PKa == nil {
			return newError(Unsupported, "pKa-based protonation fixing needs a PKaFixer in the options")
		}
		return errDecorate(o.PKa.FixPKa(M), "Fix")
	default:
		return newError(Unsupported, "unknown fixing strategy %d", int(s))
	}
	return nil
}

//FixMetalProtonation finds the metal centers of the structure, detects their
//donors and fixes the protonation of the donor residues with the strategy s.
//It returns false if the structure has no metal centers. If o is nil the
//options of the structure are used.
func (S *Structure) FixMetalProtonation(s Strategy, o *Options) (bool, error) {
	centers := S.MetalCenters()
	if len(centers) == 0 {
		S.Report(Info, "no metal center found")
		return false, nil
	}
	for _, m := range centers {
		if err := m.DetectDonors(o); err != nil {
			return true, errDecorate(err, "FixMetalProtonation")
		}
		S.Report(Info, "fixing donor residues", slog.String("metal", m.String()),
			slog.Int("donors", len(m.DonorResidues)), slog.String("strategy", s.String()))
		if err := m.Fix(s, o); err != nil {
			return true, errDecorate(err, "FixMetalProtonation")
		}
	}
	return true, nil
}
