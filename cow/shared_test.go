package cow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aberaud/ownkit/trap"
)

// doc is the test payload: an intrusively counted, clonable value whose
// destructions are tallied through the Drop hook.
type doc struct {
	RefCount
	val   int
	drops *int
}

func (d *doc) Clone() *doc { return &doc{val: d.val, drops: d.drops} }
func (d *doc) Drop()       { *d.drops++ }

func TestShared_CopyOnWriteScenario(t *testing.T) {
	drops := 0

	s1 := NewShared(&doc{val: 5, drops: &drops})
	require.Equal(t, 1, s1.NumRef())

	s2 := s1.Share()
	require.Equal(t, 2, s1.NumRef())
	require.Equal(t, 2, s2.NumRef())
	require.Same(t, s1.Get(), s2.Get())

	// Mutable access on a shared payload detaches the mutating owner.
	s1.Mut().val = 6
	require.NotSame(t, s1.Get(), s2.Get())
	require.Equal(t, 1, s1.NumRef())
	require.Equal(t, 1, s2.NumRef())
	require.Equal(t, 6, s1.Get().val)
	require.Equal(t, 5, s2.Get().val, "mutation must not reach the other owner")
	require.Zero(t, drops, "detaching must not destroy the original")

	s1.Drop()
	s2.Drop()
	require.Equal(t, 2, drops, "both payloads destroyed exactly once each")
}

func TestShared_MutUnsharedDoesNotClone(t *testing.T) {
	drops := 0
	s := NewShared(&doc{val: 1, drops: &drops})

	p := s.Get()
	require.Same(t, p, s.Mut(), "sole owner should mutate in place")
	require.Equal(t, 1, s.NumRef())
}

func TestShared_GetNeverClones(t *testing.T) {
	drops := 0
	s1 := NewShared(&doc{val: 1, drops: &drops})
	s2 := s1.Share()

	require.Same(t, s1.Get(), s2.Get())
	require.Equal(t, 2, s1.NumRef(), "const access must not detach")

	s1.Drop()
	s2.Drop()
}

func TestShared_AttachClonesUnownedPayload(t *testing.T) {
	drops := 0
	src := &doc{val: 7, drops: &drops}

	var s Shared[*doc]
	s.Attach(src)

	// src's count is 0, the unowned sentinel: Attach must clone.
	require.NotSame(t, src, s.Get())
	require.Equal(t, 7, s.Get().val)
	require.Equal(t, 1, s.NumRef())
	require.Equal(t, 0, src.NumRef(), "the source stays unowned")
}

func TestShared_AttachAliasesOwnedPayload(t *testing.T) {
	drops := 0
	s1 := NewShared(&doc{val: 7, drops: &drops})

	var s2 Shared[*doc]
	s2.Attach(s1.Get())

	require.Same(t, s1.Get(), s2.Get())
	require.Equal(t, 2, s1.NumRef())
}

func TestShared_AttachReleasesPrevious(t *testing.T) {
	drops := 0
	s := NewShared(&doc{val: 1, drops: &drops})

	other := NewShared(&doc{val: 2, drops: &drops})
	s.Attach(other.Get())

	require.Equal(t, 1, drops, "the previously owned payload is destroyed")
	require.Equal(t, 2, other.NumRef())
}

func TestShared_Assign(t *testing.T) {
	drops := 0
	a := NewShared(&doc{val: 1, drops: &drops})
	b := NewShared(&doc{val: 2, drops: &drops})

	a.Assign(b)
	require.Equal(t, 1, drops, "a's old payload destroyed")
	require.Same(t, a.Get(), b.Get())
	require.Equal(t, 2, a.NumRef())

	// Same payload: no-op, count untouched.
	a.Assign(b)
	require.Equal(t, 2, a.NumRef())

	// Self-assignment guard.
	a.Assign(a)
	require.Equal(t, 2, a.NumRef())

	// Assigning from an empty owner empties the target.
	a.Assign(&Shared[*doc]{})
	require.True(t, a.Empty())
	require.Equal(t, 1, b.NumRef())

	b.Drop()
	require.Equal(t, 2, drops)
}

func TestShared_DropIdempotent(t *testing.T) {
	drops := 0
	s := NewShared(&doc{drops: &drops})

	s.Drop()
	require.Equal(t, 1, drops)
	require.True(t, s.Empty())

	s.Drop()
	require.Equal(t, 1, drops, "second Drop must not destroy again")
}

func TestShared_ShareEmpty(t *testing.T) {
	var s Shared[*doc]
	require.True(t, s.Share().Empty())
}

func TestShared_GetEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		v, ok := r.(*trap.Violation)
		require.True(t, ok, "expected *trap.Violation, got %T", r)
		require.True(t, errors.Is(v, &trap.Violation{Kind: trap.KindEmptyOwner}))
	}()

	var s Shared[*doc]
	s.Get()
}

func TestShared_NewSharedResetsCount(t *testing.T) {
	drops := 0
	p := &doc{drops: &drops}
	p.SetRef(41) // whatever the payload carried, the first owner owns it alone

	s := NewShared(p)
	require.Equal(t, 1, s.NumRef())
	s.Drop()
	require.Equal(t, 1, drops)
}

func TestRefCount(t *testing.T) {
	var r RefCount
	require.Equal(t, 0, r.NumRef())

	r.IncRef()
	r.IncRef()
	require.Equal(t, 2, r.NumRef())
	require.Equal(t, 1, r.DecRef())
	r.SetRef(5)
	require.Equal(t, 5, r.NumRef())
}
