package logging

import "testing"

func TestNew_BuildsAtEachLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error", "bogus"} {
		l := New(lvl)
		if l == nil {
			t.Fatalf("New(%q) returned nil", lvl)
		}
		l.Info("hello")
		l.SetLevel("debug")
	}
}
