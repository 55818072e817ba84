/*
 * main.go, part of goStru.
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

//gostru reads a PDB file, finds the residues that coordinate its metal
//centers and fixes their protonation, writing the fixed structure.
//
//Usage:
//
//	gostru [flags] input.pdb[.gz|.zst]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	stru "github.com/rmera/gostru"
	"github.com/rmera/gostru/coordplot"
	"github.com/rmera/gostru/ref"
	"github.com/rmera/gostru/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gostru", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "INC", "radii for the donor search: INC (ionic) or VDW (van der Waals)")
	cutoff := fs.Float64("cutoff", stru.DefaultCutoff, "distance cutoff for the donor search, in A")
	fix := fs.String("fix", "deprotonate", "protonation fixing strategy: deprotonate (1), rotate (2) or pka (3). Empty to only detect donors")
	ff := fs.String("ff", ref.Amber, "naming convention of the input")
	out := fs.String("o", "-", "output PDB file, - for the standard output")
	rep := fs.String("report", "", "write a JSON coordination report to this file")
	plotname := fs.String("plot", "", "plot the donor distances to this file (png, svg, pdf)")
	verbose := fs.Bool("v", false, "print informative messages, not only warnings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("gostru: expected exactly one input file, got %d", fs.NArg())
	}
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	o := stru.DefaultOptions()
	var err error
	if o.Mode, err = ref.ParseMode(*mode); err != nil {
		return err
	}
	o.Cutoff = *cutoff
	o.ForceField = *ff
	o.Logger = logger

	S, err := stru.ReadFile(fs.Arg(0), o)
	if err != nil {
		return err
	}
	if *fix != "" {
		s, err := stru.ParseStrategy(*fix)
		if err != nil {
			return err
		}
		if _, err := S.FixMetalProtonation(s, nil); err != nil {
			return err
		}
	} else if err := S.DetectDonors(nil); err != nil {
		return err
	}
	//the report keeps the residue numbers of the input.
	var R *report.Report
	if *rep != "" || *plotname != "" {
		if R, err = report.New(S, nil); err != nil {
			return err
		}
	}
	if err := S.Reindex(); err != nil {
		return err
	}
	if err := writePDB(S, *out, stdout); err != nil {
		return err
	}
	if R == nil {
		return nil
	}
	if *rep != "" {
		f, err := os.Create(*rep)
		if err != nil {
			return err
		}
		if err := R.WriteJSON(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if *plotname != "" {
		if err := coordplot.Donors(R, *plotname); err != nil {
			logger.Warn("no plot produced", "error", err)
		}
	}
	return nil
}

func writePDB(S *stru.Structure, name string, stdout io.Writer) error {
	if name == "-" {
		return S.WritePDB(stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := S.WritePDB(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
