// Package lifetime provides an instrumented element type for verifying
// that containers construct, relocate and destroy elements exactly once.
//
// A Tracker hands out Obj values and implements the container's element
// operations for them. Every live instance carries a serial number, so
// destroying an element twice, or reading one that was never built, is
// recorded rather than silently accepted. A Tracker can also be scripted
// to fail the N-th fallible operation.
package lifetime

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInjected is returned by scripted failures.
var ErrInjected = errors.New("lifetime: injected failure")

// Obj is an instrumented element.
type Obj struct {
	Value  int
	serial uint64
}

// Live reports whether o is a constructed, not yet destroyed instance.
func (o Obj) Live() bool { return o.serial != 0 }

func (o Obj) String() string { return fmt.Sprint(o.Value) }

// Tracker counts element lifetime events. The zero value is not usable;
// call NewTracker.
type Tracker struct {
	Constructed int // values built with New
	Copies      int
	Moves       int
	CopyAssigns int
	MoveAssigns int
	Destroyed   int
	Duplicates  int // destroys of an element that was not live
	Invalid     int // reads from, or assignments to, elements that were not live

	safeMove bool
	failAt   int
	calls    int
	next     uint64
	live     map[uint64]struct{}
}

// NewTracker creates a Tracker whose moves are reported as safe.
func NewTracker() *Tracker {
	return &Tracker{safeMove: true, live: make(map[uint64]struct{})}
}

// SetMoveIsSafe controls what MoveIsSafe reports. Unsafe moves count
// toward scripted failures.
func (t *Tracker) SetMoveIsSafe(safe bool) { t.safeMove = safe }

// FailAfter makes the n-th fallible operation from now on fail. n <= 0
// disables scripted failure.
func (t *Tracker) FailAfter(n int) {
	t.calls = 0
	t.failAt = n
}

// New constructs an instance holding v.
func (t *Tracker) New(v int) Obj {
	t.Constructed++
	return Obj{Value: v, serial: t.mint()}
}

// Values constructs one instance per value.
func (t *Tracker) Values(vs ...int) []Obj {
	out := make([]Obj, len(vs))
	for i, v := range vs {
		out[i] = t.New(v)
	}
	return out
}

// Constructions returns every construction so far, of any kind.
func (t *Tracker) Constructions() int {
	return t.Constructed + t.Copies + t.Moves
}

// Live returns constructions minus destructions.
func (t *Tracker) Live() int {
	return t.Constructions() - t.Destroyed
}

// Release destroys an instance the test owns.
func (t *Tracker) Release(o *Obj) { t.Destroy(o) }

func (t *Tracker) String() string {
	return fmt.Sprintf("Tracker{live: %d, constructed: %d, copies: %d, moves: %d, assigns: %d/%d, destroyed: %d, duplicates: %d, invalid: %d}",
		t.Live(), t.Constructed, t.Copies, t.Moves, t.CopyAssigns, t.MoveAssigns, t.Destroyed, t.Duplicates, t.Invalid)
}

func (t *Tracker) Copy(dst, src *Obj) error {
	if err := t.step(true); err != nil {
		return err
	}
	t.check(src)
	t.Copies++
	*dst = Obj{Value: src.Value, serial: t.mint()}
	return nil
}

func (t *Tracker) Move(dst, src *Obj) error {
	if err := t.step(!t.safeMove); err != nil {
		return err
	}
	t.check(src)
	t.Moves++
	*dst = Obj{Value: src.Value, serial: t.mint()}
	src.Value = 0
	return nil
}

func (t *Tracker) CopyAssign(dst, src *Obj) error {
	if err := t.step(true); err != nil {
		return err
	}
	t.check(src)
	t.check(dst)
	t.CopyAssigns++
	dst.Value = src.Value
	return nil
}

func (t *Tracker) MoveAssign(dst, src *Obj) error {
	if err := t.step(!t.safeMove); err != nil {
		return err
	}
	t.check(src)
	t.check(dst)
	t.MoveAssigns++
	dst.Value = src.Value
	src.Value = 0
	return nil
}

func (t *Tracker) Destroy(p *Obj) {
	if _, ok := t.live[p.serial]; !ok || p.serial == 0 {
		t.Duplicates++
		return
	}
	delete(t.live, p.serial)
	t.Destroyed++
	p.serial = 0
}

func (t *Tracker) MoveIsSafe() bool { return t.safeMove }

func (t *Tracker) mint() uint64 {
	t.next++
	t.live[t.next] = struct{}{}
	return t.next
}

func (t *Tracker) check(o *Obj) {
	if _, ok := t.live[o.serial]; !ok || o.serial == 0 {
		t.Invalid++
	}
}

// step counts a fallible call and fails it if scripted to.
func (t *Tracker) step(fallible bool) error {
	if !fallible || t.failAt <= 0 {
		return nil
	}
	t.calls++
	if t.calls == t.failAt {
		t.failAt = 0
		return errors.Wrapf(ErrInjected, "call %d", t.calls)
	}
	return nil
}
