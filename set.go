package harfbuzz

//#include "shim.h"
import "C"
import (
	"iter"
	"unsafe"
)

// SetValueInvalid is the cursor value that starts and ends iteration over a Set.
const SetValueInvalid Codepoint = 0xFFFFFFFF

// Set is a set of codepoints or glyph indices.
type Set struct {
	h handle[*C.hb_set_t]
}

func destroySet(p *C.hb_set_t) {
	C.hb_set_destroy(p)
}

func newSet(p *C.hb_set_t) *Set {
	return &Set{newHandle(p, destroySet)}
}

// NewSet returns a new empty set. It panics if the set could not be allocated.
func NewSet() *Set {
	s := newSet(C.hb_set_create())
	if !goBool(C.hb_set_allocation_successful(s.h.get())) {
		s.Destroy()
		panic(ErrOutOfMemory)
	}
	return s
}

// EmptySet returns the immutable empty set singleton.
func EmptySet() *Set {
	return newSet(C.hb_set_get_empty())
}

// SetFromRaw takes ownership of one reference to a native hb_set_t.
func SetFromRaw(p unsafe.Pointer) *Set {
	return newSet((*C.hb_set_t)(p))
}

// Raw returns the native hb_set_t without transferring ownership.
func (s *Set) Raw() unsafe.Pointer {
	return unsafe.Pointer(s.h.get())
}

// Release returns the native hb_set_t and transfers its reference to the caller. It panics with
// ErrBorrowed for borrowed handles, call Reference first to obtain an owned one.
func (s *Set) Release() unsafe.Pointer {
	return unsafe.Pointer(s.h.release())
}

// Reference returns a new handle to the same set.
func (s *Set) Reference() *Set {
	return newSet(C.hb_set_reference(s.h.get()))
}

// Destroy releases the reference held by the handle. It is safe to call more than once.
func (s *Set) Destroy() {
	s.h.destroy()
}

// Copy returns a new set with the same elements.
func (s *Set) Copy() *Set {
	c := NewSet()
	c.Union(s)
	return c
}

func (s *Set) Add(cp Codepoint) {
	C.hb_set_add(s.h.get(), C.hb_codepoint_t(cp))
}

// AddRange adds the inclusive range [first,last].
func (s *Set) AddRange(first, last Codepoint) {
	C.hb_set_add_range(s.h.get(), C.hb_codepoint_t(first), C.hb_codepoint_t(last))
}

func (s *Set) Del(cp Codepoint) {
	C.hb_set_del(s.h.get(), C.hb_codepoint_t(cp))
}

// DelRange removes the inclusive range [first,last].
func (s *Set) DelRange(first, last Codepoint) {
	C.hb_set_del_range(s.h.get(), C.hb_codepoint_t(first), C.hb_codepoint_t(last))
}

func (s *Set) Has(cp Codepoint) bool {
	return goBool(C.hb_set_has(s.h.get(), C.hb_codepoint_t(cp)))
}

func (s *Set) Clear() {
	C.hb_set_clear(s.h.get())
}

func (s *Set) IsEmpty() bool {
	return goBool(C.hb_set_is_empty(s.h.get()))
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return int(C.hb_set_get_population(s.h.get()))
}

// Min returns the smallest element, or false if the set is empty.
func (s *Set) Min() (Codepoint, bool) {
	cp := Codepoint(C.hb_set_get_min(s.h.get()))
	return cp, cp != SetValueInvalid
}

// Max returns the largest element, or false if the set is empty.
func (s *Set) Max() (Codepoint, bool) {
	cp := Codepoint(C.hb_set_get_max(s.h.get()))
	return cp, cp != SetValueInvalid
}

func (s *Set) IsEqual(other *Set) bool {
	return goBool(C.hb_set_is_equal(s.h.get(), other.h.get()))
}

// IsSubset returns true if all elements of s are in other.
func (s *Set) IsSubset(other *Set) bool {
	return goBool(C.hb_set_is_subset(s.h.get(), other.h.get()))
}

func (s *Set) Union(other *Set) {
	C.hb_set_union(s.h.get(), other.h.get())
}

func (s *Set) Intersect(other *Set) {
	C.hb_set_intersect(s.h.get(), other.h.get())
}

func (s *Set) Subtract(other *Set) {
	C.hb_set_subtract(s.h.get(), other.h.get())
}

func (s *Set) SymmetricDifference(other *Set) {
	C.hb_set_symmetric_difference(s.h.get(), other.h.get())
}

// Invert complements the set. Library versions before 3.0 ignore the call.
func (s *Set) Invert() {
	C.hb_set_invert(s.h.get())
}

// Next advances cp to the next larger element. Start iteration with cp set to SetValueInvalid; it
// returns false when there are no more elements.
func (s *Set) Next(cp *Codepoint) bool {
	c := C.hb_codepoint_t(*cp)
	ok := goBool(C.hb_set_next(s.h.get(), &c))
	*cp = Codepoint(c)
	return ok
}

// Previous moves cp to the next smaller element. Start iteration with cp set to SetValueInvalid.
func (s *Set) Previous(cp *Codepoint) bool {
	c := C.hb_codepoint_t(*cp)
	ok := goBool(C.hb_set_previous(s.h.get(), &c))
	*cp = Codepoint(c)
	return ok
}

// NextRange advances to the next range of consecutive elements [first,last]. Start iteration with
// last set to SetValueInvalid.
func (s *Set) NextRange(first, last *Codepoint) bool {
	cfirst, clast := C.hb_codepoint_t(*first), C.hb_codepoint_t(*last)
	ok := goBool(C.hb_set_next_range(s.h.get(), &cfirst, &clast))
	*first, *last = Codepoint(cfirst), Codepoint(clast)
	return ok
}

// PreviousRange moves to the previous range of consecutive elements [first,last]. Start iteration
// with first set to SetValueInvalid.
func (s *Set) PreviousRange(first, last *Codepoint) bool {
	cfirst, clast := C.hb_codepoint_t(*first), C.hb_codepoint_t(*last)
	ok := goBool(C.hb_set_previous_range(s.h.get(), &cfirst, &clast))
	*first, *last = Codepoint(cfirst), Codepoint(clast)
	return ok
}

// All iterates over the elements in increasing order.
func (s *Set) All() iter.Seq[Codepoint] {
	return func(yield func(Codepoint) bool) {
		cp := SetValueInvalid
		for s.Next(&cp) {
			if !yield(cp) {
				return
			}
		}
	}
}

// Slice returns the elements in increasing order.
func (s *Set) Slice() []Codepoint {
	cps := make([]Codepoint, 0, s.Len())
	for cp := range s.All() {
		cps = append(cps, cp)
	}
	return cps
}
