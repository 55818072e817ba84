package pdbline

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `REMARK   1 test
ATOM      1  N   SER A   1      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  OG  SER A   1      10.000   5.000  -5.000  1.00 12.50           O
HETATM    3 ZN    ZN A   2      12.500   4.321   1.000  1.00  0.00          ZN
TER
END
`

func TestParse(Te *testing.T) {
	lines, err := ParseLines(sample)
	require.NoError(Te, err)
	require.Len(Te, lines, 6)
	assert.Equal(Te, "REMARK", lines[0].Record)
	assert.False(Te, lines[0].IsAtom())

	a := lines[2]
	assert.True(Te, a.IsAtom())
	assert.Equal(Te, 2, a.Serial)
	assert.Equal(Te, "OG", a.Name)
	assert.Equal(Te, "SER", a.ResName)
	assert.Equal(Te, byte('A'), a.Chain)
	assert.Equal(Te, 1, a.ResID)
	assert.InDelta(Te, 10.0, a.Coord.X, 1e-9)
	assert.InDelta(Te, -5.0, a.Coord.Z, 1e-9)
	assert.InDelta(Te, 12.5, a.BFactor, 1e-9)
	assert.Equal(Te, "O", a.Element)

	h := lines[3]
	assert.Equal(Te, "HETATM", h.Record)
	assert.Equal(Te, "ZN", h.ResName)
	assert.Equal(Te, "ZN", h.Name)
	assert.Equal(Te, 4, h.Num)

	assert.True(Te, lines[4].IsTerminator())
	assert.True(Te, lines[5].IsEnd())
}

func TestParseErrors(Te *testing.T) {
	_, err := Parse("ATOM      1  N   SER A   1      11.104", 7)
	var perr *Error
	require.True(Te, errors.As(err, &perr))
	assert.Equal(Te, 7, perr.Num)

	_, err = Parse("ATOM      1  N   SER A   X      11.104   6.134  -6.504", 1)
	assert.ErrorContains(Te, err, "residue number")

	_, err = Parse("ATOM      1  N   SER A   1      11.104   abcde  -6.504", 1)
	assert.ErrorContains(Te, err, "coordinate")

	//Only the mandatory columns are needed.
	L, err := Parse("ATOM  *****  N   SER A   1      11.104   6.134  -6.504", 1)
	require.NoError(Te, err)
	assert.Zero(Te, L.Serial)
	assert.Zero(Te, L.Occupancy)

	_, err = ParseLines("HEADER\nATOM      1  N   SER A   1      11.104", 10)
	require.True(Te, errors.As(err, &perr))
	assert.Equal(Te, 11, perr.Num)
}

func TestOpenCompressed(Te *testing.T) {
	dir := Te.TempDir()

	plain := filepath.Join(dir, "plain.pdb")
	require.NoError(Te, os.WriteFile(plain, []byte(sample), 0644))

	gzname := filepath.Join(dir, "comp.pdb.gz")
	gf, err := os.Create(gzname)
	require.NoError(Te, err)
	gw := gzip.NewWriter(gf)
	_, err = gw.Write([]byte(sample))
	require.NoError(Te, err)
	require.NoError(Te, gw.Close())
	require.NoError(Te, gf.Close())

	zname := filepath.Join(dir, "comp.pdb.zst")
	zf, err := os.Create(zname)
	require.NoError(Te, err)
	zw, err := zstd.NewWriter(zf)
	require.NoError(Te, err)
	_, err = zw.Write([]byte(sample))
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())
	require.NoError(Te, zf.Close())

	for _, name := range []string{plain, gzname, zname} {
		r, err := Open(name)
		require.NoError(Te, err, name)
		b, err := io.ReadAll(r)
		require.NoError(Te, err, name)
		require.NoError(Te, r.Close(), name)
		assert.Equal(Te, sample, string(b), name)
	}

	_, err = Open(filepath.Join(dir, "nothere.pdb"))
	assert.Error(Te, err)
}
