package filters

import (
	"regexp"
	"testing"
)

func TestText_Texts_ExactMatch(t *testing.T) {
	f := &Text{Texts: []string{"ping"}}
	u := msgUpdateForFilterTest("ping")

	matched, err := f.Check(nil, u, newTestContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatalf("expected exact text match")
	}
}

func TestText_IgnoreCase_AppliesToRegexPattern(t *testing.T) {
	f := &Text{Regex: regexp.MustCompile("^hello$"), IgnoreCase: true}
	u := msgUpdateForFilterTest("HELLO")

	matched, err := f.Check(nil, u, newTestContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatalf("expected IgnoreCase to apply to a regex pattern just like the other predicates")
	}
}

func TestText_Contains_StartsWith_EndsWith(t *testing.T) {
	f := &Text{Contains: "ell", StartsWith: "he", EndsWith: "lo"}

	for _, text := range []string{"hello", "yellow"} {
		u := msgUpdateForFilterTest(text)
		matched, err := f.Check(nil, u, newTestContext())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !matched {
			t.Fatalf("expected %q to match one of Contains/StartsWith/EndsWith", text)
		}
	}
}

func TestText_NoPredicateSet_NeverMatches(t *testing.T) {
	f := &Text{}
	u := msgUpdateForFilterTest("anything")

	matched, err := f.Check(nil, u, newTestContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Fatalf("a Text filter with no predicates set should never match")
	}
}
