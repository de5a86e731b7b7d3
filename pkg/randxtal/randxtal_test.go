// 31 July 2020

package randxtal_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/xtal_iface/pkg/randxtal"
	"github.com/andrew-torda/xtal_iface/xtal"
)

func args(sb *strings.Builder) randxtal.RandXtalArgs {
	opts := xtal.DefaultOptions()
	opts.NumCells = 2
	return randxtal.RandXtalArgs{
		Iseed:  1637,
		Wrtr:   sb,
		SGName: "P 21 21 21",
		Cell:   [6]float64{40, 45, 50, 90, 90, 90},
		NChain: 3,
		Len:    30,
		Cutoff: 5.5,
		Opts:   opts,
	}
}

// body is the report without headers.
func body(s string) (ret []string) {
	for _, l := range strings.Split(strings.TrimSpace(s), "\n") {
		if !strings.HasPrefix(l, "#") {
			ret = append(ret, l)
		}
	}
	return ret
}

func TestSimple(t *testing.T) {
	var sb1, sb2 strings.Builder
	a := args(&sb1)
	if err := randxtal.RandXtalMain(&a); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb1.String(), "#"); n != 3 {
		t.Fatal("count #, got ", n, "expected 3")
	}
	a = args(&sb2)
	a.Opts.Workers = 4
	if err := randxtal.RandXtalMain(&a); err != nil {
		t.Fatal(err)
	}
	if sb1.String() != sb2.String() {
		t.Fatalf("same seed, different reports\n%s\n%s", sb1.String(), sb2.String())
	}
	if len(body(sb1.String())) == 0 {
		t.Error("random crystal with no interfaces, pick a new seed")
	}
}

func TestNotXtal(t *testing.T) {
	var sb strings.Builder
	a := args(&sb)
	a.SGName = ""
	if err := randxtal.RandXtalMain(&a); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "not crystallographic") {
		t.Error("header", sb.String())
	}
	for _, l := range body(sb.String()) {
		if !strings.Contains(l, "[0-(0,0,0)]") {
			t.Error("symmetry copy in a non crystal", l)
		}
	}
}

func TestErrors(t *testing.T) {
	var sb strings.Builder
	a := args(&sb)
	a.SGName = "P 7"
	if err := randxtal.RandXtalMain(&a); err == nil {
		t.Error("bad space group accepted")
	}
	a = args(&sb)
	a.NChain = 0
	if err := randxtal.RandXtalMain(&a); err == nil {
		t.Error("no chains accepted")
	}
	a = args(&sb)
	a.Cutoff = 0
	if err := randxtal.RandXtalMain(&a); err == nil {
		t.Error("zero cutoff accepted")
	}
	if sb.Len() != 0 {
		t.Error("wrote something after an error")
	}
}
