package harfbuzz

import (
	"testing"

	"github.com/tdewolff/test"
)

func expectPanic(t *testing.T, expected any, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		test.T(t, recover(), expected)
	}()
	f()
}

func TestHandle(t *testing.T) {
	frees := 0
	v := 5
	h := newHandle(&v, func(p *int) { frees++ })
	test.That(t, h.valid())
	test.That(t, h.owned())
	test.T(t, h.get(), &v)

	h.destroy()
	test.T(t, frees, 1)
	test.That(t, !h.valid())
	h.destroy()
	test.T(t, frees, 1)
	expectPanic(t, ErrDestroyed, func() { h.get() })
}

func TestHandleRelease(t *testing.T) {
	frees := 0
	v := 5
	h := newHandle(&v, func(p *int) { frees++ })
	test.T(t, h.release(), &v)
	test.That(t, !h.valid())
	h.destroy()
	test.T(t, frees, 0)
	expectPanic(t, ErrDestroyed, func() { h.release() })
}

func TestHandleBorrow(t *testing.T) {
	v := 5
	h := borrowHandle(&v)
	test.That(t, h.valid())
	test.That(t, !h.owned())
	expectPanic(t, ErrBorrowed, func() { h.release() })
	test.That(t, h.valid())
	h.destroy()
	test.That(t, !h.valid())
}

func TestHandleNil(t *testing.T) {
	expectPanic(t, ErrOutOfMemory, func() { newHandle[*int](nil, func(*int) {}) })
	expectPanic(t, ErrOutOfMemory, func() { borrowHandle[*int](nil) })
}

type countingReleaser struct {
	n *int
}

func (r countingReleaser) release() {
	*r.n++
}

func TestUserData(t *testing.T) {
	n := 0
	h := newUserData(countingReleaser{&n})
	_, ok := h.Value().(countingReleaser)
	test.That(t, ok)
	releaseUserData(h)
	test.T(t, n, 1)

	live := liveUserData.Load()
	h = newUserData(func() {})
	test.T(t, liveUserData.Load(), live+1)
	releaseUserData(h)
	test.T(t, n, 1)
	test.T(t, liveUserData.Load(), live)
}

// Every wrapper panics on use after Destroy or Release, and Destroy is idempotent.
func TestUseAfterDestroy(t *testing.T) {
	blob := NewBlob([]byte("abc"))
	blob.Destroy()
	blob.Destroy()
	expectPanic(t, ErrDestroyed, func() { blob.Len() })

	buf := NewBuffer()
	raw := buf.Release()
	expectPanic(t, ErrDestroyed, func() { buf.Len() })
	BufferFromRaw(raw).Destroy()

	set := NewSet()
	p := set.Release()
	expectPanic(t, ErrDestroyed, func() { set.Add(1) })
	set = SetFromRaw(p)
	set.Add(1)
	test.That(t, set.Has(1))
	set.Destroy()
}

func TestReleaseBorrowed(t *testing.T) {
	font := goRegularFont(t)
	sub := font.CreateSubFont()
	defer sub.Destroy()

	expectPanic(t, ErrBorrowed, func() { sub.Parent().Release() })
	expectPanic(t, ErrBorrowed, func() { font.Face().Release() })

	p := sub.Parent().Reference().Release()
	test.T(t, p, font.Raw())
	FontFromRaw(p).Destroy()
	test.T(t, font.Face().Upem(), 2048)
}
