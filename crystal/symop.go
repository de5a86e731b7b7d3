// 14 Oct 2026

package crystal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/xtal_iface/pdb/cmmn"
	"github.com/andrew-torda/xtal_iface/pdb/geom"
)

// ParseSymop reads an operator written the way the International Tables
// write general positions, like "-x+y,-x,z+2/3" or "1/2+X,-Y,-Z". The
// result acts on fractional coordinates.
func ParseSymop(s string) (geom.Mat4, error) {
	cmpnt := strings.Split(s, ",")
	if len(cmpnt) != 3 {
		return geom.Mat4{}, fmt.Errorf("%w: %q needs three components", ErrSymop, s)
	}
	var rot [9]float64
	var t [3]float64
	for i, c := range cmpnt {
		row, shift, err := parseCmpnt(c)
		if err != nil {
			return geom.Mat4{}, fmt.Errorf("%w: %q: %v", ErrSymop, s, err)
		}
		copy(rot[3*i:], row[:])
		t[i] = shift
	}
	return geom.NewMat4(rot, cmmn.Xyz{X: t[0], Y: t[1], Z: t[2]}), nil
}

// parseCmpnt does one of the three comma separated parts. It is a tiny
// scanner: optional sign, then either a variable or a number which may
// be a fraction.
func parseCmpnt(s string) (row [3]float64, shift float64, err error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if s == "" {
		return row, 0, Error("empty component")
	}
	nvar := 0
	for i := 0; i < len(s); {
		sign := 1.0
		switch s[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}
		if i == len(s) {
			return row, 0, Error("dangling sign")
		}
		switch c := s[i]; {
		case c >= 'x' && c <= 'z':
			row[c-'x'] += sign
			nvar++
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.' || s[j] == '/') {
				j++
			}
			v, e := parseFrac(s[i:j])
			if e != nil {
				return row, 0, e
			}
			shift += sign * v
			i = j
		default:
			return row, 0, fmt.Errorf("unexpected %q", c)
		}
	}
	if nvar == 0 {
		return row, 0, Error("no x, y or z")
	}
	return row, shift, nil
}

// parseFrac reads "0.5", "1/2" or "3".
func parseFrac(s string) (float64, error) {
	num, den, isFrac := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	if !isFrac {
		return n, nil
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, Error("zero denominator")
	}
	return n / d, nil
}
