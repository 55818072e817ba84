/*
 * diag.go, part of goStru.
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
	"context"
	"fmt"
	"log/slog"
	"strings"
)

//Severity of a diagnostic. Diagnostics never stop processing; fatal problems
//are errors.
type Severity int

const (
	Info Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "WARNING"
	}
	return "INFO"
}

func (s Severity) level() slog.Level {
	if s == Warning {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

//Diagnostic is a non-fatal observation made while building or fixing a structure.
type Diagnostic struct {
	Severity Severity
	Message  string
	Attrs    []slog.Attr
}

func (D Diagnostic) String() string {
	f := make([]string, 0, len(D.Attrs))
	for _, v := range D.Attrs {
		f = append(f, v.String())
	}
	if len(f) == 0 {
		return fmt.Sprintf("%s %s", D.Severity, D.Message)
	}
	return fmt.Sprintf("%s %s %s", D.Severity, D.Message, strings.Join(f, " "))
}

//Attr returns the value of the attribute with the given key, and whether it was present.
func (D Diagnostic) Attr(key string) (slog.Value, bool) {
	for _, v := range D.Attrs {
		if v.Key == key {
			return v.Value, true
		}
	}
	return slog.Value{}, false
}

type diagnostics struct {
	list []Diagnostic
}

//Report records a diagnostic on the structure and logs it with the structure's
//logger. It can be called on a nil *Structure, in which case the diagnostic
//is only logged, with the default logger.
func (S *Structure) Report(sev Severity, msg string, attrs ...slog.Attr) {
	logger := slog.Default()
	if S != nil {
		S.diag.list = append(S.diag.list, Diagnostic{Severity: sev, Message: msg, Attrs: attrs})
		if S.opts != nil && S.opts.Logger != nil {
			logger = S.opts.Logger
		}
	}
	logger.LogAttrs(context.Background(), sev.level(), msg, attrs...)
}

//Diagnostics returns the diagnostics recorded so far.
func (S *Structure) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), S.diag.list...)
}

//Warnings returns the recorded diagnostics with Warning severity.
func (S *Structure) Warnings() []Diagnostic {
	ret := make([]Diagnostic, 0)
	for _, v := range S.diag.list {
		if v.Severity == Warning {
			ret = append(ret, v)
		}
	}
	return ret
}

//ClearDiagnostics forgets all the recorded diagnostics.
func (S *Structure) ClearDiagnostics() {
	S.diag.list = nil
}
