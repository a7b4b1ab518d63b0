package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Error("empty frame should not have Jump")
	}

	f.Set(ActionJump)
	f.Held = Keys{Right: true}
	if !f.Has(ActionJump) {
		t.Error("frame should have Jump after Set")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop edge-triggered actions")
	}
	if !f.Held.Right {
		t.Error("Clear should keep held direction state")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Held.Left = true

	c := f.Clone()
	f.Clear()
	f.Held.Left = false

	if !c.Has(ActionPause) || !c.Held.Left {
		t.Errorf("clone should be independent, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
