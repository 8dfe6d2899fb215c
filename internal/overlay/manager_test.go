package overlay

import "testing"

func TestVisibleWhileAnyHolderRemains(t *testing.T) {
	m := NewManager()
	if m.Visible() {
		t.Fatal("empty manager visible")
	}

	m.Acquire("cart")
	m.Acquire("account")
	m.Release("cart")
	if !m.Visible() {
		t.Error("overlay hidden while account still holds it")
	}
	m.Release("account")
	if m.Visible() {
		t.Error("overlay visible with no holders")
	}
}

func TestInterleavedAcquireRelease(t *testing.T) {
	// The classic last-writer-wins bug: B releases after A acquires and the
	// overlay vanishes under A. The holder set must prevent exactly this.
	m := NewManager()
	m.Acquire("b")
	m.Acquire("a")
	m.Release("b")
	if !m.Visible() {
		t.Error("release of b hid the overlay held by a")
	}
}

func TestAcquireIdempotent(t *testing.T) {
	m := NewManager()
	m.Acquire("cart")
	m.Acquire("cart")
	if m.Holders() != 1 {
		t.Errorf("holders = %d, want 1", m.Holders())
	}
	m.Release("cart")
	if m.Visible() {
		t.Error("double acquire needed double release")
	}
}

func TestReleaseUnknownIsNoOp(t *testing.T) {
	m := NewManager()
	m.Acquire("cart")
	m.Release("never-acquired")
	if !m.Visible() {
		t.Error("unknown release affected visibility")
	}
}

func TestEmptyNameIgnored(t *testing.T) {
	m := NewManager()
	m.Acquire("")
	if m.Visible() {
		t.Error("empty holder name acquired the overlay")
	}
}

func TestScrollLock(t *testing.T) {
	m := NewManager()
	if m.ScrollLocked() {
		t.Fatal("fresh manager locked")
	}

	m.Acquire("cart")
	if !m.ScrollLocked() {
		t.Error("visible overlay must lock scrolling")
	}
	m.Release("cart")
	if m.ScrollLocked() {
		t.Error("lock held after last release")
	}

	m.SetScrollLock(true)
	if !m.ScrollLocked() {
		t.Error("explicit lock ignored")
	}
	m.SetScrollLock(true) // idempotent
	m.SetScrollLock(false)
	if m.ScrollLocked() {
		t.Error("explicit unlock ignored")
	}
}

func TestForceClear(t *testing.T) {
	m := NewManager()
	m.Acquire("cart")
	m.Acquire("account")
	m.SetScrollLock(true)

	m.ForceClear()
	if m.Visible() || m.ScrollLocked() || m.Holders() != 0 {
		t.Error("ForceClear left residual state")
	}
}
