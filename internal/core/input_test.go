package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("Fresh frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported")
	}
	if f.Has(ActionDown) {
		t.Error("Unset action reported")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValueSafe(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("Zero-value frame should report nothing")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on a zero-value frame should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionDirection(t *testing.T) {
	cases := []struct {
		action Action
		dir    Direction
	}{
		{ActionUp, DirUp},
		{ActionDown, DirDown},
		{ActionLeft, DirLeft},
		{ActionRight, DirRight},
	}
	for _, tc := range cases {
		d, ok := tc.action.Direction()
		if !ok || d != tc.dir {
			t.Errorf("%v: expected %v, got %v ok=%v", tc.action, tc.dir, d, ok)
		}
	}

	for _, a := range []Action{ActionNone, ActionConfirm, ActionPause, ActionQuit, ActionLevel2} {
		if _, ok := a.Direction(); ok {
			t.Errorf("%v should not map to a direction", a)
		}
	}
}
