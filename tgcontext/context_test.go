package tgcontext

import "testing"

func TestSetGet(t *testing.T) {
	t.Parallel()
	c := New()
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected missing key to be absent")
	}
	c.Set("k", 42)
	v, ok := c.Get("k")
	if !ok || v.(int) != 42 {
		t.Fatalf("Get(k) = %v, %v; want 42, true", v, ok)
	}
}

func TestMustGet_PanicsWhenAbsent(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustGet to panic on a missing key")
		}
	}()
	New().MustGet("missing")
}

func TestClone_IsIndependentOfOriginal(t *testing.T) {
	t.Parallel()
	c := New()
	c.Set("k", "v")

	clone := c.Clone()
	clone.Set("k", "changed")
	clone.Set("new", "value")

	if v, _ := c.Get("k"); v != "v" {
		t.Fatalf("original mutated via clone: Get(k) = %v", v)
	}
	if _, ok := c.Get("new"); ok {
		t.Fatalf("original gained a key set only on the clone")
	}
}
