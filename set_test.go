package harfbuzz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"
)

func newSetOf(cps ...Codepoint) *Set {
	s := NewSet()
	for _, cp := range cps {
		s.Add(cp)
	}
	return s
}

func TestSet(t *testing.T) {
	s := NewSet()
	defer s.Destroy()
	test.That(t, s.IsEmpty())
	_, ok := s.Min()
	test.That(t, !ok)
	_, ok = s.Max()
	test.That(t, !ok)

	s.Add(5)
	s.AddRange(10, 14)
	s.Add(100)
	test.T(t, s.Len(), 7)
	test.That(t, s.Has(5))
	test.That(t, s.Has(12))
	test.That(t, !s.Has(9))
	first, _ := s.Min()
	last, _ := s.Max()
	test.T(t, first, Codepoint(5))
	test.T(t, last, Codepoint(100))
	test.T(t, s.Slice(), []Codepoint{5, 10, 11, 12, 13, 14, 100})

	s.Del(5)
	s.DelRange(11, 12)
	test.T(t, s.Slice(), []Codepoint{10, 13, 14, 100})

	c := s.Copy()
	defer c.Destroy()
	test.That(t, c.IsEqual(s))
	s.Clear()
	test.That(t, s.IsEmpty())
	test.T(t, c.Len(), 4)
}

func TestSetIteration(t *testing.T) {
	s := newSetOf(1, 2, 3, 7, 9, 10)
	defer s.Destroy()

	var cps []Codepoint
	cp := SetValueInvalid
	for s.Previous(&cp) {
		cps = append(cps, cp)
	}
	test.T(t, cps, []Codepoint{10, 9, 7, 3, 2, 1})

	type cpRange struct{ First, Last Codepoint }
	var ranges []cpRange
	first, last := SetValueInvalid, SetValueInvalid
	for s.NextRange(&first, &last) {
		ranges = append(ranges, cpRange{first, last})
	}
	if diff := cmp.Diff([]cpRange{{1, 3}, {7, 7}, {9, 10}}, ranges); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}

	ranges = ranges[:0]
	first, last = SetValueInvalid, SetValueInvalid
	for s.PreviousRange(&first, &last) {
		ranges = append(ranges, cpRange{first, last})
	}
	if diff := cmp.Diff([]cpRange{{9, 10}, {7, 7}, {1, 3}}, ranges); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}

	n := 0
	for cp := range s.All() {
		if cp == 7 {
			break
		}
		n++
	}
	test.T(t, n, 3)
}

func TestSetAlgebra(t *testing.T) {
	var tests = []struct {
		name     string
		op       func(a, b *Set)
		expected []Codepoint
	}{
		{"union", (*Set).Union, []Codepoint{1, 2, 3, 4, 5}},
		{"intersect", (*Set).Intersect, []Codepoint{3}},
		{"subtract", (*Set).Subtract, []Codepoint{1, 2}},
		{"symmetric difference", (*Set).SymmetricDifference, []Codepoint{1, 2, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := newSetOf(1, 2, 3), newSetOf(3, 4, 5)
			defer a.Destroy()
			defer b.Destroy()
			tt.op(a, b)
			test.T(t, a.Slice(), tt.expected)
			test.T(t, b.Slice(), []Codepoint{3, 4, 5})
		})
	}

	a, b := newSetOf(1, 2), newSetOf(1, 2, 3)
	defer a.Destroy()
	defer b.Destroy()
	test.That(t, a.IsSubset(b))
	test.That(t, !b.IsSubset(a))
	test.That(t, !a.IsEqual(b))
}

func TestSetInvert(t *testing.T) {
	if !VersionAtLeast(3, 0, 0) {
		t.Skip("set inversion requires HarfBuzz 3.0")
	}
	s := newSetOf(0, 1)
	defer s.Destroy()
	s.Invert()
	test.That(t, !s.Has(0))
	test.That(t, !s.Has(1))
	test.That(t, s.Has(2))
	first, _ := s.Min()
	test.T(t, first, Codepoint(2))
	s.Invert()
	test.T(t, s.Slice(), []Codepoint{0, 1})
}

func TestSetEmpty(t *testing.T) {
	a, b := EmptySet(), EmptySet()
	defer a.Destroy()
	defer b.Destroy()
	test.T(t, a.Raw(), b.Raw())
	test.That(t, a.IsEmpty())
	a.Add(1)
	test.That(t, !a.Has(1))
	test.That(t, b.IsEmpty())
}
