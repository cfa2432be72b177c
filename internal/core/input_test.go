package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)
	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionRight) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionRight)
	if !zero.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestIntentLatchHoldsForTicks(t *testing.T) {
	l := NewIntentLatch(3)
	l.Press(ActionLeft)

	for i := 0; i < 3; i++ {
		f := NewInputFrame()
		l.Apply(&f)
		if !f.Has(ActionLeft) {
			t.Fatalf("tick %d: expected Left to be held", i)
		}
	}

	f := NewInputFrame()
	l.Apply(&f)
	if f.Has(ActionLeft) {
		t.Error("Left should expire after hold ticks")
	}
}

func TestIntentLatchLastPressWins(t *testing.T) {
	l := NewIntentLatch(5)
	l.Press(ActionLeft)
	l.Press(ActionRight)

	f := NewInputFrame()
	l.Apply(&f)
	if f.Has(ActionLeft) {
		t.Error("opposite press should replace the held direction")
	}
	if !f.Has(ActionRight) {
		t.Error("latest press should be held")
	}
}

func TestIntentLatchIgnoresOtherActions(t *testing.T) {
	l := NewIntentLatch(2)
	l.Press(ActionPause)
	if l.Held() != ActionNone {
		t.Errorf("Held() = %v, expected None", l.Held())
	}

	l.Press(ActionRight)
	l.Release()
	if l.Held() != ActionNone {
		t.Error("Release should drop the held direction")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
