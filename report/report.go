/*
 * report.go, part of goStru.
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

//Package report summarizes the coordination of the metal centers of a
//structure, and serializes the summary as JSON, so other programs can use it.
package report

import (
	"bufio"
	"encoding/json"
	"io"
	"math"

	stru "github.com/rmera/gostru"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Donor is one atom coordinating a metal center.
type Donor struct {
	Chain     string  `json:"chain"`
	ResID     int     `json:"resid"`
	ResName   string  `json:"resname"`
	Atom      string  `json:"atom"`
	Distance  float64 `json:"distance"`
	RadiusSum float64 `json:"radius_sum"` //0 if a radius is missing from the tables
}

//Center is the coordination summary of one metal center.
type Center struct {
	Name    string     `json:"name"`
	ResName string     `json:"resname"`
	ResID   int        `json:"resid"`
	Element string     `json:"element"`
	Coord   [3]float64 `json:"coord"`
	Donors  []Donor    `json:"donors"`
	//Statistics of the donor distances. All are 0 for centers without donors.
	MinDistance    float64 `json:"min_distance"`
	MeanDistance   float64 `json:"mean_distance"`
	StdDevDistance float64 `json:"stddev_distance"`
}

//Distances returns the donor distances of the center, in order.
func (C *Center) Distances() []float64 {
	ret := make([]float64, len(C.Donors))
	for i, v := range C.Donors {
		ret[i] = v.Distance
	}
	return ret
}

//Report is the coordination summary of a structure.
type Report struct {
	Mode     string     `json:"mode"`
	Centers  []*Center  `json:"centers"`
	Centroid [3]float64 `json:"centroid"` //of the metal centers
	Warnings []string   `json:"warnings"`
}

//New builds the report for the metal centers of S. It uses the donors already
//detected, so DetectDonors or FixMetalProtonation should be run first.
//If o is nil, the structure's options are used.
func New(S *stru.Structure, o *stru.Options) (*Report, error) {
	if o == nil {
		o = S.Options()
	}
	if o == nil {
		o = stru.DefaultOptions()
	}
	t := o.Tables
	if t == nil {
		t = S.Tables()
	}
	R := &Report{Mode: o.Mode.String(), Centers: make([]*Center, 0, 1), Warnings: make([]string, 0)}
	var centroid [3]float64
	for _, m := range S.MetalCenters() {
		el, err := m.Element(t)
		if err != nil {
			return nil, err
		}
		rm, _ := t.Radius(o.Mode, el)
		C := &Center{
			Name:    m.Name,
			ResName: m.ResName,
			ResID:   m.ResID,
			Element: el,
			Coord:   [3]float64{m.Coord.X, m.Coord.Y, m.Coord.Z},
			Donors:  make([]Donor, 0, len(m.DonorAtoms)),
		}
		for _, a := range m.DonorAtoms {
			d := Donor{Atom: a.Name, Distance: m.Distance(a)}
			if r := a.Residue(); r != nil {
				d.ResID = r.ID
				d.ResName = r.Name
				if c := r.Chain(); c != nil {
					d.Chain = c.ID
				}
			}
			if ael, err := a.Element(t); err == nil {
				if ra, ok := t.Radius(o.Mode, ael); ok && rm > 0 {
					d.RadiusSum = rm + ra
				}
			}
			C.Donors = append(C.Donors, d)
		}
		C.stats()
		floats.Add(centroid[:], C.Coord[:])
		R.Centers = append(R.Centers, C)
	}
	if len(R.Centers) > 0 {
		floats.Scale(1/float64(len(R.Centers)), centroid[:])
	}
	R.Centroid = centroid
	for _, v := range S.Warnings() {
		R.Warnings = append(R.Warnings, v.String())
	}
	return R, nil
}

func (C *Center) stats() {
	d := C.Distances()
	if len(d) == 0 {
		return
	}
	C.MinDistance = floats.Min(d)
	if len(d) == 1 {
		C.MeanDistance = d[0]
		return
	}
	C.MeanDistance, C.StdDevDistance = stat.MeanStdDev(d, nil)
	if math.IsNaN(C.StdDevDistance) {
		C.StdDevDistance = 0
	}
}

//WriteJSON writes the report to w as indented JSON.
func (R *Report) WriteJSON(w io.Writer) error {
	out := bufio.NewWriter(w)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(R); err != nil {
		return err
	}
	return out.Flush()
}

//ReadJSON reads a report written by WriteJSON.
func ReadJSON(r io.Reader) (*Report, error) {
	R := new(Report)
	if err := json.NewDecoder(r).Decode(R); err != nil {
		return nil, err
	}
	return R, nil
}
