package manager

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLifecycle(t *testing.T) {
	c := qt.New(t)
	sm := NewStateManager()
	c.Assert(sm.Phase(), qt.Equals, Ready)
	c.Assert(sm.AcceptsInput(), qt.IsFalse)
	c.Assert(sm.End(), qt.IsFalse)

	round := sm.Begin()
	c.Assert(round, qt.Equals, uint64(1))
	c.Assert(sm.Phase(), qt.Equals, Running)
	c.Assert(sm.AcceptsInput(), qt.IsTrue)
	c.Assert(sm.IsCurrent(round), qt.IsTrue)

	c.Assert(sm.End(), qt.IsTrue)
	c.Assert(sm.Phase(), qt.Equals, Over)
	c.Assert(sm.AcceptsInput(), qt.IsFalse)
	c.Assert(sm.IsCurrent(round), qt.IsFalse)
	c.Assert(sm.End(), qt.IsFalse)

	next := sm.Begin()
	c.Assert(next, qt.Equals, uint64(2))
	c.Assert(sm.IsCurrent(round), qt.IsFalse)
	c.Assert(sm.IsCurrent(next), qt.IsTrue)
}

func TestPhaseString(t *testing.T) {
	c := qt.New(t)
	c.Assert(Ready.String(), qt.Equals, "ready")
	c.Assert(Running.String(), qt.Equals, "running")
	c.Assert(Over.String(), qt.Equals, "over")
	c.Assert(Phase(9).String(), qt.Equals, "phase(9)")
}
