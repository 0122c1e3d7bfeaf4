package sprm

import (
	"testing"
)

func ids(s Sprms) []ID {
	var out []ID
	for _, e := range s.Entries() {
		out = append(out, e.ID)
	}
	return out
}

func TestSetPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   []ID
		first  int
	}{
		{"overwrite", Overwrite, []ID{Bold, Italic}, 2},
		{"append", Append, []ID{Bold, Italic, Bold}, 1},
		{"ignore", Ignore, []ID{Bold, Italic}, 1},
		{"replace at start", ReplaceAtStart, []ID{Bold, Italic}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Sprms
			s.Put(Bold, Int(1))
			s.Put(Italic, Int(1))
			s.Set(Bold, Int(2), tt.policy)

			got := ids(s)
			if tt.policy == ReplaceAtStart {
				if got[0] != Bold || len(got) != 2 {
					t.Fatalf("ids = %v, want Bold first", got)
				}
			} else if len(got) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			if v := s.Find(Bold).Int(); v != tt.first {
				t.Errorf("Find(Bold) = %d, want %d", v, tt.first)
			}
		})
	}
}

func TestCopyOnWrite(t *testing.T) {
	var parent Sprms
	parent.Put(Size, Int(24))
	PutNestedAttribute(&parent, Ind, IndLeft, Int(720))

	child := parent.Clone()
	child.Put(Size, Int(48))
	PutNestedAttribute(&child, Ind, IndLeft, Int(1440))

	if got := parent.Find(Size).Int(); got != 24 {
		t.Errorf("parent Size = %d, want 24", got)
	}
	if got := NestedAttribute(parent, Ind, IndLeft).Int(); got != 720 {
		t.Errorf("parent IndLeft = %d, want 720", got)
	}
	if got := child.Find(Size).Int(); got != 48 {
		t.Errorf("child Size = %d, want 48", got)
	}
	if got := NestedAttribute(child, Ind, IndLeft).Int(); got != 1440 {
		t.Errorf("child IndLeft = %d, want 1440", got)
	}
}

func TestCloneOfEmptyIsIndependent(t *testing.T) {
	var a Sprms
	b := a.Clone()
	b.Put(Bold, Int(1))
	if !a.Empty() {
		t.Errorf("a = %v, want empty", a)
	}
}

func TestEraseAndEraseLast(t *testing.T) {
	var s Sprms
	s.Set(GridCol, Int(1), Append)
	s.Set(GridCol, Int(2), Append)
	s.Set(GridCol, Int(3), Append)

	s.Erase(GridCol)
	if got := s.Find(GridCol).Int(); got != 2 {
		t.Errorf("after Erase first = %d, want 2", got)
	}
	s.EraseLast(GridCol)
	if s.Len() != 1 || s.Find(GridCol).Int() != 2 {
		t.Errorf("after EraseLast = %v, want [GridCol=2]", s)
	}
	if s.Erase(Bold) {
		t.Error("Erase(Bold) = true on missing id")
	}
}

func TestNestedShadingDefaults(t *testing.T) {
	var s Sprms
	PutNestedAttribute(&s, TcShd, ShdVal, Int(1))

	if got := NestedAttribute(s, TcShd, ShdColor).Int(); got != ColorAuto {
		t.Errorf("ShdColor = %d, want auto", got)
	}
	if got := NestedAttribute(s, TcShd, ShdFill).Int(); got != ColorAuto {
		t.Errorf("ShdFill = %d, want auto", got)
	}
}

func TestValueEqual(t *testing.T) {
	var a1, a2 Sprms
	a1.Put(IndLeft, Int(10))
	a2.Put(IndLeft, Int(10))

	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"ints", Int(3), Int(3), true},
		{"different ints", Int(3), Int(4), false},
		{"strings", String("x"), String("x"), true},
		{"props", Props(a1, Sprms{}), Props(a2, Sprms{}), true},
		{"props vs empty", Props(a1, Sprms{}), Props(Sprms{}, Sprms{}), false},
		{"nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIDString(t *testing.T) {
	if got := Bold.String(); got != "Bold" {
		t.Errorf("Bold.String() = %q, want %q", got, "Bold")
	}
	if got := ID(-5).String(); got != "ID(-5)" {
		t.Errorf("ID(-5).String() = %q", got)
	}
}
