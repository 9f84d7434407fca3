package symbols

import "testing"

func TestAddAndFindShadowing(t *testing.T) {
	tbl := New()
	tbl.Add("x", VAR, 0)
	inner := tbl.Add("x", VAR, 1)

	got := tbl.Find("x")
	if got != inner {
		t.Fatalf("Find(\"x\") = %p, want the innermost declaration %p", got, inner)
	}
}

func TestFindInDepthOnlyMatchesExactDepth(t *testing.T) {
	tbl := New()
	outer := tbl.Add("x", VAR, 0)
	tbl.Add("y", VAR, 1)

	if got := tbl.FindInDepth("x", 1); got != nil {
		t.Fatalf("FindInDepth(\"x\", 1) = %v, want nil (x is at depth 0)", got)
	}
	if got := tbl.FindInDepth("x", 0); got != outer {
		t.Fatalf("FindInDepth(\"x\", 0) = %v, want %v", got, outer)
	}
}

func TestMarkAndDeleteAfterTearsDownScope(t *testing.T) {
	tbl := New()
	tbl.Add("global", VAR, 0)

	marker := tbl.Mark()
	tbl.Add("local1", VAR, 1)
	tbl.Add("local2", VAR, 1)

	if n := len(tbl.All()); n != 3 {
		t.Fatalf("table has %d symbols before teardown, want 3", n)
	}

	tbl.DeleteAfter(marker)

	all := tbl.All()
	if len(all) != 1 {
		t.Fatalf("table has %d symbols after teardown, want 1", len(all))
	}
	if all[0].Name != "global" {
		t.Fatalf("surviving symbol = %q, want %q", all[0].Name, "global")
	}
}

func TestHandlesAtOrBeforeMarkerSurviveDeleteAfter(t *testing.T) {
	tbl := New()
	kept := tbl.Add("f", FUNC, 0)

	marker := tbl.Mark()
	tbl.Add("arg", VAR, 1)
	tbl.DeleteAfter(marker)

	if tbl.Find("f") != kept {
		t.Fatal("handle to a symbol at the marker should remain valid after DeleteAfter")
	}
}

func TestFindMemberScansNewestFirst(t *testing.T) {
	s := &Symbol{Name: "Point", Cls: STRUCT}
	s.Members = append(s.Members,
		&Symbol{Name: "x", Cls: VAR},
		&Symbol{Name: "y", Cls: VAR},
	)

	if got := s.FindMember("y"); got == nil || got.Name != "y" {
		t.Fatalf("FindMember(\"y\") = %v, want the y member", got)
	}
	if got := s.FindMember("z"); got != nil {
		t.Fatalf("FindMember(\"z\") = %v, want nil", got)
	}

	newer := &Symbol{Name: "x", Cls: VAR}
	s.Members = append(s.Members, newer)
	if got := s.FindMember("x"); got != newer {
		t.Fatalf("FindMember(\"x\") = %p, want the newest x member %p", got, newer)
	}
}
