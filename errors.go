/*
 * errors.go, part of goStru.
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
	"errors"
	"fmt"
)

//ErrorKind classifies the errors returned by this package.
type ErrorKind int

const (
	FormatError ErrorKind = iota + 1 //malformed or inconsistent input text
	TypeError                        //wrong kind of element added to a level of the hierarchy
	LookupError                      //name lookup found more, or fewer, elements than expected
	TableError                       //a reference table lacks an entry needed to go on
	Unsupported                      //extension point without an implementation
)

func (k ErrorKind) String() string {
	switch k {
	case FormatError:
		return "format error"
	case TypeError:
		return "type error"
	case LookupError:
		return "lookup error"
	case TableError:
		return "table error"
	case Unsupported:
		return "unsupported"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

//Error is the error type for the package. The Decorate method allows to add and
//retrieve info from the error as it goes up the call stack, without wrapping it.
type Error struct {
	kind     ErrorKind
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	err      error
}

func newError(kind ErrorKind, format string, a ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, a...)}
}

func wrapError(kind ErrorKind, err error, format string, a ...any) *Error {
	E := newError(kind, format, a...)
	E.err = err
	return E
}

func (E *Error) Error() string {
	msg := E.message
	if E.err != nil {
		msg = msg + ": " + E.err.Error()
	}
	if E.filename != "" {
		return fmt.Sprintf("stru: %s in %s: %s", E.kind, E.filename, msg)
	}
	return fmt.Sprintf("stru: %s: %s", E.kind, msg)
}

//Unwrap returns the underlying error, if any.
func (E *Error) Unwrap() error { return E.err }

//Kind returns the class of the error.
func (E *Error) Kind() ErrorKind { return E.kind }

//FileName returns the file associated with the error, or an empty string.
func (E *Error) FileName() string { return E.filename }

//Decorate adds dec to the decoration slice and returns the slice.
//If dec is empty, it just returns the current slice.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

//errDecorate decorates err with caller if err is an *Error, and returns it.
func errDecorate(err error, caller string) error {
	var E *Error
	if errors.As(err, &E) {
		E.Decorate(caller)
	}
	return err
}

//IsKind reports whether err, or any error it wraps, is an *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var E *Error
	return errors.As(err, &E) && E.kind == k
}
