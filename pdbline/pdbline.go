/*
 * pdbline.go, part of goStru.
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

//Package pdbline tokenizes the lines of a PDB file into typed records.
//Only ATOM and HETATM records are fully parsed; for every other line just the
//record name is kept.
package pdbline

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

//Line is one record of a PDB file.
type Line struct {
	Record    string
	Num       int //line number in the source, starting from 1
	Serial    int
	Name      string
	AltLoc    byte
	ResName   string
	Chain     byte
	ResID     int
	ICode     byte
	Coord     r3.Vec
	Occupancy float64
	BFactor   float64
	Element   string
}

//IsAtom reports whether the line is an ATOM or HETATM record.
func (L *Line) IsAtom() bool {
	return L.Record == "ATOM" || L.Record == "HETATM"
}

//IsTerminator reports whether the line is a chain terminator (TER).
func (L *Line) IsTerminator() bool {
	return L.Record == "TER"
}

//IsEnd reports whether the line is END or ENDMDL.
func (L *Line) IsEnd() bool {
	return L.Record == "END" || L.Record == "ENDMDL"
}

//Error is returned for lines that can't be parsed.
type Error struct {
	Num     int
	Line    string
	Message string
}

func (err *Error) Error() string {
	return fmt.Sprintf("pdbline: line %d: %s", err.Num, err.Message)
}

//Record returns the record name of a line, i.e. its first 6 columns without spaces.
func Record(line string) string {
	if len(line) > 6 {
		line = line[:6]
	}
	return strings.TrimSpace(line)
}

//Parse parses a single line. num is the line number, used only for error
//reporting. ATOM/HETATM lines shorter than 54 columns, or with a residue number
//or coordinates that don't parse, are errors.
func Parse(line string, num int) (*Line, error) {
	line = strings.TrimRight(line, "\r\n")
	L := &Line{Record: Record(line), Num: num}
	if !L.IsAtom() {
		return L, nil
	}
	if len(line) < 54 {
		return nil, &Error{num, line, fmt.Sprintf("%s record too short (%d columns)", L.Record, len(line))}
	}
	var err error
	//Serials over 99999 are written in several non-standard ways, and we
	//assign our own anyway.
	L.Serial, _ = strconv.Atoi(strings.TrimSpace(line[6:11]))
	L.Name = strings.TrimSpace(line[12:16])
	if L.Name == "" {
		return nil, &Error{num, line, "empty atom name"}
	}
	L.AltLoc = line[16]
	L.ResName = strings.TrimSpace(line[17:20])
	//PDB says that pos. 21 is empty, but some programs use it for 4-letter residue names.
	if c := line[20]; c != ' ' {
		L.ResName = strings.TrimSpace(line[17:21])
	}
	L.Chain = line[21]
	L.ResID, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, &Error{num, line, "bad residue number: " + err.Error()}
	}
	L.ICode = line[26]
	floats := [3]float64{}
	for i, v := range [][2]int{{30, 38}, {38, 46}, {46, 54}} {
		floats[i], err = strconv.ParseFloat(strings.TrimSpace(line[v[0]:v[1]]), 64)
		if err != nil {
			return nil, &Error{num, line, fmt.Sprintf("bad coordinate in columns %d-%d: %s", v[0]+1, v[1], err.Error())}
		}
	}
	L.Coord = r3.Vec{X: floats[0], Y: floats[1], Z: floats[2]}
	//The rest of the fields are optional. If something is missing we just omit it.
	L.Occupancy = optFloat(line, 54, 60)
	L.BFactor = optFloat(line, 60, 66)
	if len(line) >= 78 {
		L.Element = strings.TrimSpace(line[76:78])
	}
	return L, nil
}

func optFloat(line string, from, to int) float64 {
	if len(line) < to {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line[from:to]), 64)
	if err != nil {
		return 0
	}
	return f
}

//ParseLines parses every non-empty line of text, in order. Line numbers in
//errors are counted from first, which should be 1 for a whole file.
func ParseLines(text string, first ...int) ([]*Line, error) {
	num := 1
	if len(first) > 0 {
		num = first[0]
	}
	raw := strings.Split(text, "\n")
	ret := make([]*Line, 0, len(raw))
	for i, v := range raw {
		if strings.TrimSpace(v) == "" {
			continue
		}
		L, err := Parse(v, num+i)
		if err != nil {
			return nil, err
		}
		ret = append(ret, L)
	}
	return ret, nil
}
