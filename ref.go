package harfbuzz

import (
	"runtime/cgo"
	"sync/atomic"
)

// handle owns exactly one native reference to the object at ptr, or none for a borrowed handle. The
// zero pointer marks a destroyed or released handle.
type handle[P comparable] struct {
	ptr  P
	free func(P)
}

// newHandle takes ownership of one reference. A nil pointer means the native allocation failed.
func newHandle[P comparable](ptr P, free func(P)) handle[P] {
	var zero P
	if ptr == zero {
		panic(ErrOutOfMemory)
	}
	return handle[P]{ptr, free}
}

// borrowHandle wraps a pointer without owning a reference; destroy only invalidates the handle.
func borrowHandle[P comparable](ptr P) handle[P] {
	var zero P
	if ptr == zero {
		panic(ErrOutOfMemory)
	}
	return handle[P]{ptr, nil}
}

func (h *handle[P]) get() P {
	var zero P
	if h.ptr == zero {
		panic(ErrDestroyed)
	}
	return h.ptr
}

func (h *handle[P]) valid() bool {
	var zero P
	return h.ptr != zero
}

func (h *handle[P]) owned() bool {
	return h.free != nil
}

// destroy releases the owned reference, it is a no-op when called again.
func (h *handle[P]) destroy() {
	var zero P
	if h.ptr != zero && h.free != nil {
		h.free(h.ptr)
	}
	h.ptr = zero
}

// release relinquishes the pointer without releasing its reference. Borrowed handles have no
// reference to give away.
func (h *handle[P]) release() P {
	ptr := h.get()
	if !h.owned() {
		panic(ErrBorrowed)
	}
	var zero P
	h.ptr = zero
	return ptr
}

////////////////////////////////////////////////////////////////

// releaser is implemented by values stored behind a cgo.Handle that need cleanup when the native
// library drops its user data.
type releaser interface {
	release()
}

// liveUserData counts the handles the native library has not yet released.
var liveUserData atomic.Int64

// newUserData stores v so that it can be passed to the native library as user data. The native
// destroy notification deletes the handle exactly once.
func newUserData(v any) cgo.Handle {
	liveUserData.Add(1)
	return cgo.NewHandle(v)
}

func releaseUserData(h cgo.Handle) {
	if r, ok := h.Value().(releaser); ok {
		r.release()
	}
	h.Delete()
	liveUserData.Add(-1)
}
