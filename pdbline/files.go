/*
 * files.go, part of goStru.
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

package pdbline

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//stackCloser closes a decompressor and then the file under it.
type stackCloser struct {
	io.Reader
	closers []io.Closer
}

func (S *stackCloser) Close() error {
	var first error
	for _, c := range S.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//Open opens a PDB file for reading. Files ending in .gz are read through a gzip
//decompressor and files ending in .zst through a zstd one. Closing the returned
//ReadCloser closes the file too.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackCloser{g, []io.Closer{g, f}}, nil
	case ".zst", ".zstd":
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		zr := z.IOReadCloser()
		return &stackCloser{zr, []io.Closer{zr, f}}, nil
	}
	return f, nil
}
