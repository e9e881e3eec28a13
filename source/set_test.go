package source

import "testing"

func twoFileSet() (*Set, *File, *File) {
	a := FromString("a.txt", "abc")
	b := FromString("b.txt", "defgh")
	return NewSet(a, b), a, b
}

func TestSetLen(t *testing.T) {
	s, _, _ := twoFileSet()
	if s.Len() != 8 {
		t.Errorf("Len() = %d, want %d", s.Len(), 8)
	}
	if got := NewSet().Len(); got != 0 {
		t.Errorf("empty set Len() = %d, want 0", got)
	}
}

// Appending a file extends the address space without disturbing
// positions computed before the append.
func TestSetAddFileExtends(t *testing.T) {
	a := FromString("a.txt", "abc")
	s := NewSet(a)

	f, local := s.ToLocal(1)
	s.AddFile(FromString("b.txt", "de"))

	if s.Len() != 5 {
		t.Errorf("Len() after AddFile = %d, want 5", s.Len())
	}
	f2, local2 := s.ToLocal(1)
	if f2 != f || local2 != local {
		t.Errorf("ToLocal(1) changed after AddFile: (%q, %d) -> (%q, %d)", f.Name(), local, f2.Name(), local2)
	}
}

func TestSetFileAt(t *testing.T) {
	s, a, b := twoFileSet()
	tests := []struct {
		pos  int
		file *File
		base int
	}{
		{0, a, 0},
		{2, a, 0},
		{3, b, 3}, // boundary positions belong to the later file
		{4, b, 3},
		{7, b, 3},
		{8, b, 3}, // one past the whole set
	}
	for _, tt := range tests {
		f, base := s.FileAt(tt.pos)
		if f != tt.file || base != tt.base {
			t.Errorf("FileAt(%d) = (%q, %d), want (%q, %d)", tt.pos, f.Name(), base, tt.file.Name(), tt.base)
		}
	}
}

func TestSetFileAtOutOfRangePanics(t *testing.T) {
	s, _, _ := twoFileSet()
	for _, pos := range []int{-1, 9} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FileAt(%d) did not panic", pos)
				}
			}()
			s.FileAt(pos)
		}()
	}
}

func TestSetGlobalLocalRoundTrip(t *testing.T) {
	s, a, b := twoFileSet()
	for _, f := range []*File{a, b} {
		for local := 0; local < f.Len(); local++ {
			global := s.ToGlobal(f, local)
			gotFile, gotLocal := s.ToLocal(global)
			if gotFile != f || gotLocal != local {
				t.Errorf("ToLocal(ToGlobal(%q, %d)) = (%q, %d), want identity", f.Name(), local, gotFile.Name(), gotLocal)
			}
		}
	}
	// The one-past-end slot of the last file round-trips too.
	gotFile, gotLocal := s.ToLocal(s.ToGlobal(b, b.Len()))
	if gotFile != b || gotLocal != b.Len() {
		t.Errorf("ToLocal(ToGlobal(%q, %d)) = (%q, %d), want identity", b.Name(), b.Len(), gotFile.Name(), gotLocal)
	}
}

func TestSetToGlobalForeignFilePanics(t *testing.T) {
	s, _, _ := twoFileSet()
	defer func() {
		if recover() == nil {
			t.Error("ToGlobal with a foreign file did not panic")
		}
	}()
	s.ToGlobal(FromString("other.txt", "x"), 0)
}

func TestSetReadByteAt(t *testing.T) {
	s, _, _ := twoFileSet()
	tests := []struct {
		pos  int
		want byte
	}{
		{0, 'a'},
		{2, 'c'},
		{3, 'd'}, // first byte of the second file
		{7, 'h'},
	}
	for _, tt := range tests {
		b, ok := s.ReadByteAt(tt.pos)
		if !ok || b != tt.want {
			t.Errorf("ReadByteAt(%d) = %q, %v, want %q, true", tt.pos, b, ok, tt.want)
		}
	}
	if _, ok := s.ReadByteAt(8); ok {
		t.Error("ReadByteAt(8) = ok, want end of input")
	}
}

func TestSetReadSpan(t *testing.T) {
	s, _, _ := twoFileSet()
	if got := string(s.ReadSpan(3, 6)); got != "def" {
		t.Errorf("ReadSpan(3, 6) = %q, want %q", got, "def")
	}
	if got := s.ReadSpan(2, 2); len(got) != 0 {
		t.Errorf("ReadSpan(2, 2) = %q, want empty", got)
	}
}

func TestSetReadSpanAcrossBoundaryPanics(t *testing.T) {
	s, _, _ := twoFileSet()
	defer func() {
		if recover() == nil {
			t.Error("ReadSpan(2, 4) across the file boundary did not panic")
		}
	}()
	s.ReadSpan(2, 4)
}
