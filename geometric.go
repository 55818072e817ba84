/*
 * geometric.go, part of goStru.
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

	"gonum.org/v1/gonum/spatial/r3"
)

func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//Dihedral calculate the dihedral between the points a, b, c, d, where the first plane
//is defined by abc and the second by bcd. The result is in radians, in (-Pi, Pi].
func Dihedral(a, b, c, d r3.Vec) float64 {
	//bma=b minus a
	bma := r3.Sub(b, a)
	cmb := r3.Sub(c, b)
	dmc := r3.Sub(d, c)
	bmascaled := r3.Scale(r3.Norm(cmb), bma)
	first := r3.Dot(bmascaled, r3.Cross(cmb, dmc))
	v1 := r3.Cross(bma, cmb)
	v2 := r3.Cross(cmb, dmc)
	second := r3.Dot(v1, v2)
	return math.Atan2(first, second)
}

//RotateAbout rotates the points in place by angle radians, around the axis that
//goes through center with direction axis. The rotation is right-handed, so, for
//a point p, Dihedral(p, center, center+axis, q) decreases by angle for any fixed q.
func RotateAbout(points []r3.Vec, center, axis r3.Vec, angle float64) {
	rot := r3.NewRotation(angle, r3.Unit(axis))
	for i, v := range points {
		points[i] = r3.Add(center, rot.Rotate(r3.Sub(v, center)))
	}
}

//angleDiff returns a-b wrapped to (-Pi, Pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
