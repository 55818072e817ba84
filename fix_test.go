/*
 * fix_test.go, part of goStru.
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
	"math"
	"testing"

	"github.com/rmera/gostru/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

//A serine oxygen 2 A from a zinc.
const boundary = `ATOM      1  CB  SER A   1       2.500   1.340   0.000  1.00  0.00           C
ATOM      2  OG  SER A   1       2.000   0.000   0.000  1.00  0.00           O
TER
HETATM    3  ZN   ZN B 101       0.000   0.000   0.000  1.00  0.00          ZN
TER
END
`

//An acetate left in the protein chain, next to a serine, both binding a zinc.
const acetate = `ATOM      1  CB  SER A   1       2.500   1.340   0.000  1.00  0.00           C
ATOM      2  OG  SER A   1       2.000   0.000   0.000  1.00  0.00           O
HETATM    3  C   ACT A   2      -1.000   2.900   0.000  1.00  0.00           C
HETATM    4  O   ACT A   2       0.000   2.000   0.000  1.00  0.00           O
HETATM    5  OXT ACT A   2      -1.900   2.600   0.800  1.00  0.00           O
TER
HETATM    6  ZN   ZN B 101       0.000   0.000   0.000  1.00  0.00          ZN
TER
END
`

//Two zinc ions. The serine bound to the first has an atom of unknown element.
const twoZinc = `ATOM      1  CA  SER A   1       4.000   1.500   0.300  1.00  0.00           C
ATOM      2  CB  SER A   1       2.500   1.340   0.000  1.00  0.00           C
ATOM      3  OG  SER A   1       2.000   0.000   0.000  1.00  0.00           O
ATOM      4  HG  SER A   1       2.153  -0.374   0.871  1.00  0.00           H
ATOM      5  XX1 SER A   1       5.000   3.000   0.000  1.00  0.00
ATOM      6  CB  CYS A   2      23.100   1.300   0.000  1.00  0.00           C
ATOM      7  SG  CYS A   2      22.300   0.000   0.000  1.00  0.00           S
ATOM      8  HG  CYS A   2      22.600  -1.300   0.000  1.00  0.00           H
TER
HETATM    9  ZN   ZN B 101       0.000   0.000   0.000  1.00  0.00          ZN
HETATM   10  ZN   ZN B 102      20.000   0.000   0.000  1.00  0.00          ZN
TER
END
`

//A zinc bound by both oxygens of an aspartate, a histidine and a cysteine.
const mixedSite = `ATOM      1  CB  ASP A   7       3.800   0.000   0.000  1.00  0.00           C
ATOM      2  CG  ASP A   7       2.300   0.000   0.000  1.00  0.00           C
ATOM      3  OD1 ASP A   7       1.600   1.100   0.000  1.00  0.00           O
ATOM      4  OD2 ASP A   7       1.600  -1.100   0.000  1.00  0.00           O
ATOM      5  CB  HIP A   8      -1.167   2.042  -2.527  1.00  0.00           C
ATOM      6  ND1 HIP A   8      -1.000   1.750   0.000  1.00  0.00           N
ATOM      7  CE1 HIP A   8      -1.397   2.444   1.100  1.00  0.00           C
ATOM      8  NE2 HIP A   8      -2.038   3.567   0.680  1.00  0.00           N
ATOM      9  CD2 HIP A   8      -2.038   3.567  -0.680  1.00  0.00           C
ATOM     10  CG  HIP A   8      -1.397   2.444  -1.100  1.00  0.00           C
ATOM     11  HD1 HIP A   8      -1.762   1.087   0.000  1.00  0.00           H
ATOM     12  HE2 HIP A   8      -2.444   4.277   1.274  1.00  0.00           H
ATOM     13  CB  CYS A   9       0.000  -3.100  -1.300  1.00  0.00           C
ATOM     14  SG  CYS A   9       0.000  -2.300   0.000  1.00  0.00           S
ATOM     15  HG  CYS A   9       1.200  -2.600   0.500  1.00  0.00           H
TER
HETATM   16  ZN   ZN B 101       0.000   0.000   0.000  1.00  0.00          ZN
TER
END
`

func zinc(Te *testing.T, o *Options) (*Structure, *Metalatom) {
	S, err := ReadString(zincSite, o)
	require.NoError(Te, err)
	centers := S.MetalCenters()
	require.Len(Te, centers, 1)
	return S, centers[0]
}

func TestDetectDonors(Te *testing.T) {
	S, zn := zinc(Te, nil)
	require.NoError(Te, zn.DetectDonors(nil))
	require.Len(Te, zn.DonorAtoms, 2)
	assert.Equal(Te, "OG", zn.DonorAtoms[0].Name)
	assert.Equal(Te, "ND1", zn.DonorAtoms[1].Name)
	assert.Equal(Te, []string{"SER", "HIP"}, resnames(zn.DonorResidues))
	assert.Same(Te, zn.DonorAtoms[0], zn.DonorResidues[0].DonorAtom())

	//every donor is within the sum of radii, every other donor-named atom is not.
	t := ref.Default()
	rm, _ := t.Radius(ref.Ionic, "Zn")
	for _, a := range S.ProteinAtoms() {
		if !t.IsDonor(a.FF, a.Name) {
			continue
		}
		el, err := a.Element(nil)
		require.NoError(Te, err)
		ra, _ := t.Radius(ref.Ionic, el)
		isDonor := false
		for _, d := range zn.DonorAtoms {
			isDonor = isDonor || d == a
		}
		assert.Equal(Te, zn.Distance(a) <= rm+ra, isDonor, a.String())
	}

	//re-detection replaces the results.
	require.NoError(Te, zn.DetectDonors(nil))
	assert.Len(Te, zn.DonorAtoms, 2)
	assert.Len(Te, zn.DonorResidues, 2)
	assert.Empty(Te, S.Warnings())
}

func TestDetectDonorsCutoff(Te *testing.T) {
	S, zn := zinc(Te, nil)
	o := DefaultOptions()
	o.Cutoff = 0.5
	require.NoError(Te, zn.DetectDonors(o))
	//a short cutoff is raised, so the donors don't change.
	assert.Len(Te, zn.DonorAtoms, 2)
	w := S.Warnings()
	require.Len(Te, w, 1)
	assert.Equal(Te, "cutoff raised to the largest sum of radii", w[0].Message)

	//with van der Waals radii the histidine's NE2 (4.16 A) is still too far.
	o = DefaultOptions()
	o.Mode = ref.VdW
	require.NoError(Te, zn.DetectDonors(o))
	assert.Len(Te, zn.DonorAtoms, 2)
}

func TestDetectDonorsErrors(Te *testing.T) {
	S, zn := zinc(Te, nil)
	o := DefaultOptions()
	delete(o.Tables.IonicRadii, "Zn")
	err := zn.DetectDonors(o)
	assert.True(Te, IsKind(err, TableError), "%v", err)

	o = DefaultOptions()
	delete(o.Tables.IonicRadii, "O")
	require.NoError(Te, zn.DetectDonors(o))
	assert.Equal(Te, []string{"ND1"}, names(zn.DonorAtoms))
	assert.NotEmpty(Te, S.Warnings())

	lone := NewMetalatom(NewAtom("ZN", r3.Vec{}, "Amber"), "ZN", 1)
	assert.True(Te, IsKind(lone.DetectDonors(nil), LookupError))
}

func TestDetectDonorsBoundary(Te *testing.T) {
	o := DefaultOptions()
	o.Tables.IonicRadii["Zn"] = 1.0
	o.Tables.IonicRadii["O"] = 1.0
	S, err := ReadString(boundary, o)
	require.NoError(Te, err)
	zn := S.MetalCenters()[0]
	og, err := S.Chain(0).Nth(1).AtomByName("OG")
	require.NoError(Te, err)
	require.Equal(Te, 2.0, zn.Distance(og))
	//exactly at the sum of radii still counts.
	require.NoError(Te, zn.DetectDonors(nil))
	assert.Equal(Te, []*Atom{og}, zn.DonorAtoms)

	o.Tables.IonicRadii["O"] = 0.99
	require.NoError(Te, zn.DetectDonors(o))
	assert.Empty(Te, zn.DonorAtoms)
}

func TestDetectDonorsProteinOnly(Te *testing.T) {
	S, err := ReadString(acetate, nil)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"CB", "OG"}, names(S.ProteinAtoms()))
	zn := S.MetalCenters()[0]
	require.NoError(Te, zn.DetectDonors(nil))
	//the acetate oxygen is as close as the serine's, but acetate is no amino acid.
	assert.Equal(Te, []string{"SER"}, resnames(zn.DonorResidues))
}

func TestRedetectDonors(Te *testing.T) {
	S, zn := zinc(Te, nil)
	require.NoError(Te, zn.DetectDonors(nil))
	ser := S.Chain(0).Nth(1)
	his := S.Chain(0).Nth(2)
	require.NotNil(Te, ser.DonorAtom())

	//without an oxygen radius the serine is no longer a donor.
	o := DefaultOptions()
	delete(o.Tables.IonicRadii, "O")
	require.NoError(Te, zn.DetectDonors(o))
	assert.Equal(Te, []string{"HIP"}, resnames(zn.DonorResidues))
	assert.Nil(Te, ser.DonorAtom())
	assert.Equal(Te, "ND1", his.DonorAtom().Name)
}

func TestDuplicateDonors(Te *testing.T) {
	S, err := ReadString(bidentate, nil)
	require.NoError(Te, err)
	zn := S.MetalCenters()[0]
	require.NoError(Te, zn.DetectDonors(nil))
	assert.Equal(Te, []string{"OD1", "OD2"}, names(zn.DonorAtoms))
	require.Len(Te, zn.DonorResidues, 1)
	assert.Equal(Te, "OD1", zn.DonorResidues[0].DonorAtom().Name)
	w := S.Warnings()
	require.Len(Te, w, 1)
	v, ok := w[0].Attr("resid")
	require.True(Te, ok)
	assert.Equal(Te, int64(7), v.Int64())
	v, _ = w[0].Attr("other")
	assert.Equal(Te, "OD2", v.String())
}

func serDihedrals(Te *testing.T, R *Residue, metal r3.Vec) (proton, target float64) {
	at := func(name string) r3.Vec {
		A, err := R.AtomByName(name)
		require.NoError(Te, err)
		return A.Coord
	}
	proton = Dihedral(at("HG"), at("OG"), at("CB"), at("CA"))
	target = Dihedral(metal, at("OG"), at("CB"), at("CA")) + Deg2Rad(120)
	return proton, target
}

func TestFixDeprotonate(Te *testing.T) {
	S, zn := zinc(Te, nil)
	fixed, err := S.FixMetalProtonation(Deprotonate, nil)
	require.NoError(Te, err)
	assert.True(Te, fixed)
	C := S.Chain(0)
	his := C.Nth(2)
	assert.Equal(Te, "HIE", his.Name)
	assert.Empty(Te, his.AtomsByName("HD1"))
	assert.Len(Te, his.AtomsByName("HE2"), 1)

	//the serine proton was rotated, not removed.
	ser := C.Nth(1)
	assert.Equal(Te, "SER", ser.Name)
	proton, target := serDihedrals(Te, ser, zn.Coord)
	assert.InDelta(Te, 0, angleDiff(proton, target), 1e-6)
	og, _ := ser.AtomByName("OG")
	hg, _ := ser.AtomByName("HG")
	assert.InDelta(Te, 0.96, og.Distance(hg), 1e-3)
	//the lysine is not a donor and keeps its proton.
	assert.Len(Te, C.Nth(3).AtomsByName("HZ1"), 1)
	assert.Equal(Te, 16, S.NumAtoms())

	//running it again changes nothing: HIE has no proton on ND1.
	_, err = S.FixMetalProtonation(Deprotonate, nil)
	require.NoError(Te, err)
	assert.Equal(Te, "HIE", his.Name)
	assert.Equal(Te, 16, S.NumAtoms())
}

func TestFixRotate(Te *testing.T) {
	S, zn := zinc(Te, nil)
	require.NoError(Te, zn.DetectDonors(nil))
	require.NoError(Te, zn.Fix(Rotate, nil))
	ser := S.Chain(0).Nth(1)
	proton, target := serDihedrals(Te, ser, zn.Coord)
	assert.InDelta(Te, 0, angleDiff(proton, target), 1e-6)
	//nothing is removed or renamed.
	assert.Equal(Te, "HIP", S.Chain(0).Nth(2).Name)
	assert.Equal(Te, 17, S.NumAtoms())
}

func TestFixCustomTables(Te *testing.T) {
	o := DefaultOptions()
	o.Tables.Deprotonations["SER"] = []ref.Deprotonation{{Name: "SEO", Proton: "HG"}}
	S, _ := zinc(Te, o)
	ser := S.Chain(0).Nth(1)
	before := make(map[string]r3.Vec, ser.Len())
	for _, a := range ser.Atoms() {
		before[a.Name] = a.Coord
	}
	_, err := S.FixMetalProtonation(Deprotonate, nil)
	require.NoError(Te, err)
	assert.Equal(Te, "SEO", ser.Name)
	assert.Empty(Te, ser.AtomsByName("HG"))
	//only the proton goes, nothing else moves.
	assert.Equal(Te, []string{"N", "CA", "CB", "OG"}, names(ser.Atoms()))
	for _, a := range ser.Atoms() {
		assert.Equal(Te, before[a.Name], a.Coord, a.Name)
	}
}

func TestFixMixedSite(Te *testing.T) {
	S, err := ReadString(mixedSite, nil)
	require.NoError(Te, err)
	fixed, err := S.FixMetalProtonation(Deprotonate, nil)
	require.NoError(Te, err)
	assert.True(Te, fixed)
	zn := S.MetalCenters()[0]
	assert.Equal(Te, []string{"OD1", "OD2", "ND1", "SG"}, names(zn.DonorAtoms))
	assert.Equal(Te, []string{"ASP", "HIE", "CYM"}, resnames(zn.DonorResidues))
	require.Len(Te, S.Warnings(), 1)
	assert.Equal(Te, "residue has more than one donor atom", S.Warnings()[0].Message)

	//the aspartate with two donors is left as it was, the other residues are fixed.
	C := S.Chain(0)
	assert.Equal(Te, []string{"CB", "CG", "OD1", "OD2"}, names(C.Nth(1).Atoms()))
	assert.Empty(Te, C.Nth(2).AtomsByName("HD1"))
	assert.Equal(Te, []string{"CB", "SG"}, names(C.Nth(3).Atoms()))
}

func TestFixSkipsUnknownElements(Te *testing.T) {
	S, err := ReadString(twoZinc, nil)
	require.NoError(Te, err)
	ser := S.Chain(0).Nth(1)
	hg, err := ser.AtomByName("HG")
	require.NoError(Te, err)
	start := hg.Coord
	_, err = S.FixMetalProtonation(Deprotonate, nil)
	require.NoError(Te, err)

	//the serine can't be rotated, but the second center is still fixed.
	assert.Equal(Te, start, hg.Coord)
	cys := S.Chain(0).Nth(2)
	assert.Equal(Te, "CYM", cys.Name)
	assert.Empty(Te, cys.AtomsByName("HG"))
	w := S.Warnings()
	require.Len(Te, w, 1)
	assert.Equal(Te, "donor residue left unchanged", w[0].Message)
	v, _ := w[0].Attr("residue")
	assert.Equal(Te, "SER", v.String())
}

type countingPKa struct{ calls int }

func (c *countingPKa) FixPKa(M *Metalatom) error {
	c.calls++
	return nil
}

func TestFixPKa(Te *testing.T) {
	S, zn := zinc(Te, nil)
	require.NoError(Te, zn.DetectDonors(nil))
	err := zn.Fix(PKa, nil)
	assert.True(Te, IsKind(err, Unsupported), "%v", err)
	assert.True(Te, IsKind(zn.Fix(Strategy(9), nil), Unsupported))

	p := &countingPKa{}
	o := DefaultOptions()
	o.PKa = p
	S.SetOptions(o)
	_, err = S.FixMetalProtonation(PKa, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 1, p.calls)
}

func TestNoMetalCenter(Te *testing.T) {
	S, err := ReadString("ATOM      1  N   SER A   1       4.600   2.800   0.500  1.00  0.00           N\nTER\n", nil)
	require.NoError(Te, err)
	fixed, err := S.FixMetalProtonation(Deprotonate, nil)
	require.NoError(Te, err)
	assert.False(Te, fixed)
	d := S.Diagnostics()
	require.NotEmpty(Te, d)
	assert.Equal(Te, Info, d[len(d)-1].Severity)
}

func TestDeprotonateSpecialCases(Te *testing.T) {
	S, _ := zinc(Te, nil)
	his := S.Chain(0).Nth(2)
	cb, err := his.AtomByName("CB")
	require.NoError(Te, err)
	//CB has no entry for HIP: nothing happens, but we get a warning.
	require.NoError(Te, his.Deprotonate(cb, nil))
	assert.Equal(Te, "HIP", his.Name)
	require.Len(Te, S.Warnings(), 1)

	ne2, _ := his.AtomByName("NE2")
	require.NoError(Te, his.Deprotonate(ne2, nil))
	assert.Equal(Te, "HID", his.Name)
	assert.Empty(Te, his.AtomsByName("HE2"))
	//HID coordinating through NE2 needs nothing else.
	require.NoError(Te, his.Deprotonate(ne2, nil))
	assert.Equal(Te, "HID", his.Name)

	//no donor means the first entry.
	hip := NewResidue("HIP", 1, NewAtom("HD1", r3.Vec{}, "Amber"), NewAtom("HE2", r3.Vec{}, "Amber"))
	require.NoError(Te, hip.Deprotonate(nil, nil))
	assert.Equal(Te, "HIE", hip.Name)
	assert.Equal(Te, []string{"HE2"}, names(hip.Atoms()))

	//a missing proton is a warning, the residue is renamed anyway.
	cys := NewResidue("CYS", 5, NewAtom("SG", r3.Vec{}, "Amber"))
	require.NoError(Te, cys.Deprotonate(cys.Atom(0), nil))
	assert.Equal(Te, "CYM", cys.Name)

	ser := S.Chain(0).Nth(1)
	assert.True(Te, IsKind(ser.Deprotonate(nil, nil), TableError))
	assert.True(Te, IsKind(ser.Deprotonate(ne2, nil), LookupError))
}

func TestRotateRigid(Te *testing.T) {
	trp := NewResidue("TRP", 3,
		NewAtom("CD1", r3.Vec{X: 1.3}, "Amber"),
		NewAtom("NE1", r3.Vec{}, "Amber"),
		NewAtom("HE1", r3.Vec{Y: 1}, "Amber"),
	)
	assert.Panics(Te, func() {
		trp.RotateProton(trp.Atom(1), r3.Vec{X: -2}, nil)
	})
}

func TestRotateNoFrame(Te *testing.T) {
	//a donor with a proton but no heavy neighbor can't be rotated.
	R := NewResidue("SER", 1,
		NewAtom("OG", r3.Vec{}, "Amber"),
		NewAtom("HG", r3.Vec{X: 0.96}, "Amber"),
	)
	require.NoError(Te, R.RotateProton(R.Atom(0), r3.Vec{Y: 2}, nil))
	assert.Equal(Te, 0.96, R.Atom(1).Coord.X)

	//no protons, nothing to do.
	O := NewResidue("SER", 1, NewAtom("OG", r3.Vec{}, "Amber"), NewAtom("CB", r3.Vec{X: 1.43}, "Amber"))
	require.NoError(Te, O.RotateProton(O.Atom(0), r3.Vec{Y: 2}, nil))

	assert.True(Te, IsKind(R.RotateProton(nil, r3.Vec{}, nil), LookupError))
}

func TestDihedral(Te *testing.T) {
	a := r3.Vec{X: 1}
	b := r3.Vec{}
	c := r3.Vec{Z: 1}
	d := r3.Vec{Y: 1, Z: 1}
	if diff := math.Abs(Dihedral(a, b, c, d) - math.Pi/2); diff > 1e-9 {
		Te.Errorf("expected a dihedral of 90, got %f", Rad2Deg(Dihedral(a, b, c, d)))
	}
	//rotating the first point right-handed around b-c lowers the dihedral.
	p := []r3.Vec{a}
	RotateAbout(p, b, r3.Sub(c, b), Deg2Rad(30))
	if diff := math.Abs(Rad2Deg(Dihedral(p[0], b, c, d)) - 60); diff > 1e-9 {
		Te.Errorf("expected a dihedral of 60, got %f", Rad2Deg(Dihedral(p[0], b, c, d)))
	}
	assert.InDelta(Te, -math.Pi/2, angleDiff(3*math.Pi/2, 0), 1e-12)
}
