/*
 * hierarchy.go, part of goStru.
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
	"slices"
	"sort"
)

//indexed is implemented by every element of the hierarchy, so the ordering
//logic can be shared among levels.
type indexed interface {
	key() int //the current identifier, 0 if unassigned
	marked() bool
	setMark(bool)
}

//sortMarked stably sorts s by identifier. Among elements with the same
//identifier, unmarked ones go first, so an element inserted with identifier n
//ends up right after the one currently identified as n. Unmarked elements
//without identifier keep their place after the element before them (or their
//position, if nothing in s has an identifier yet). Marks are cleared.
func sortMarked[T indexed](s []T) {
	if len(s) == 0 {
		return
	}
	anyAssigned := false
	for _, v := range s {
		if !v.marked() && v.key() != 0 {
			anyAssigned = true
			break
		}
	}
	keys := make([]int, len(s))
	prev := 0
	for i, v := range s {
		k := v.key()
		switch {
		case v.marked():
		case k == 0 && !anyAssigned:
			k = i + 1
		case k == 0:
			k = prev
		}
		keys[i] = k
		if !v.marked() {
			prev = k
		}
	}
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if keys[a] != keys[b] {
			return keys[a] < keys[b]
		}
		return !s[a].marked() && s[b].marked()
	})
	sorted := make([]T, len(s))
	for i, v := range idx {
		sorted[i] = s[v]
	}
	for i, v := range sorted {
		v.setMark(false)
		s[i] = v
	}
}

//removeAt removes the i-th element of s. It panics if i is out of range.
func removeAt[T any](s []T, i int) ([]T, T) {
	v := s[i]
	return slices.Delete(s, i, i+1), v
}

//removeItem removes the first occurrence of v from s.
func removeItem[T comparable](s []T, v T) ([]T, bool) {
	i := slices.Index(s, v)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

//removeWhere removes every element of s for which f returns true, and returns
//the new slice and the removed elements, the latter in reverse order.
//We go backwards so the indexes of the elements not yet checked don't change.
func removeWhere[T any](s []T, f func(T) bool) ([]T, []T) {
	var removed []T
	for i := len(s) - 1; i >= 0; i-- {
		if f(s[i]) {
			removed = append(removed, s[i])
			s = slices.Delete(s, i, i+1)
		}
	}
	return s, removed
}
