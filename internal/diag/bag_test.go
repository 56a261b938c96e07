package diag

import (
	"testing"

	"hif/internal/source"
)

func TestBagCountBySeverity(t *testing.T) {
	bag := NewBag(10)
	add := func(sev Severity, code Code) {
		d := New(sev, code, source.Span{}, "x")
		bag.Add(&d)
	}
	add(SevError, StdSourceIllTyped)
	add(SevError, CastNoSuitableCast)
	add(SevWarning, ProcNoStyleMatch)
	add(SevInfo, ObsTimings)

	errs, warns, infos := bag.CountBySeverity()
	if errs != 2 || warns != 1 || infos != 1 {
		t.Fatalf("CountBySeverity = (%d, %d, %d), want (2, 1, 1)", errs, warns, infos)
	}
}

func TestBagCapDropsOverflow(t *testing.T) {
	bag := NewBag(1)
	d1 := New(SevWarning, ProcNoStyleMatch, source.Span{}, "first")
	d2 := New(SevWarning, ProcNoStyleMatch, source.Span{}, "second")
	if !bag.Add(&d1) {
		t.Fatal("first Add rejected below the cap")
	}
	if bag.Add(&d2) {
		t.Fatal("Add accepted a diagnostic past the cap")
	}
	if bag.Len() != 1 {
		t.Fatalf("bag holds %d diagnostics, want 1", bag.Len())
	}
}

func TestBagSortPutsFatalFirstAtSamePosition(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("a.hif.xml", []byte("x"))

	bag := NewBag(4)
	warn := New(SevWarning, ProcNoStyleMatch, source.Span{File: file, Start: 0, End: 1}, "w")
	fatal := New(SevError, StdSourceIllTyped, source.Span{File: file, Start: 0, End: 1}, "e")
	bag.Add(&warn)
	bag.Add(&fatal)
	bag.Sort()

	if bag.Items()[0].Severity != SevError {
		t.Fatal("Sort did not order the fatal diagnostic before the warning at the same span")
	}
}
