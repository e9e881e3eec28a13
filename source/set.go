package source

import "fmt"

// Set concatenates an ordered list of Files into one virtual address
// space. Global positions are offsets into the concatenation of file
// lengths in list order. Appending a file only extends the space; global
// positions computed earlier stay valid forever.
type Set struct {
	files []*File
	ends  []int // cumulative end offset per file
}

// NewSet builds a Set over the given files, in order.
func NewSet(files ...*File) *Set {
	s := &Set{}
	for _, f := range files {
		s.AddFile(f)
	}
	return s
}

// AddFile appends f, extending the address space by f.Len().
func (s *Set) AddFile(f *File) {
	s.files = append(s.files, f)
	s.ends = append(s.ends, s.Len()+f.Len())
}

// Len returns the total concatenated length.
func (s *Set) Len() int {
	if len(s.ends) == 0 {
		return 0
	}
	return s.ends[len(s.ends)-1]
}

// Files returns the files in address-space order.
func (s *Set) Files() []*File { return s.files }

// Names returns the file names in address-space order.
func (s *Set) Names() []string {
	names := make([]string, len(s.files))
	for i, f := range s.files {
		names[i] = f.Name()
	}
	return names
}

// FileAt returns the file owning the global position along with that
// file's base offset. A boundary position belongs to the later file, so
// global/local translation round-trips exactly; only the final
// one-past-end slot of the whole set resolves to the last file. Positions
// past the total length violate the cursor invariant and panic.
func (s *Set) FileAt(pos int) (f *File, base int) {
	if pos < 0 || pos > s.Len() || len(s.files) == 0 {
		panic(fmt.Sprintf("source: global position %d outside set of length %d", pos, s.Len()))
	}
	base = 0
	for i, end := range s.ends {
		if pos < end {
			return s.files[i], base
		}
		base = end
	}
	base = 0
	if len(s.ends) > 1 {
		base = s.ends[len(s.ends)-2]
	}
	return s.files[len(s.files)-1], base
}

// ToLocal translates a global position into its owning file and the
// position local to that file. It is the exact inverse of ToGlobal.
func (s *Set) ToLocal(pos int) (*File, int) {
	f, base := s.FileAt(pos)
	return f, pos - base
}

// ToGlobal translates a file-local position into the global address
// space. The file must be a member of the set.
func (s *Set) ToGlobal(f *File, local int) int {
	base := 0
	for i, member := range s.files {
		if member == f {
			if local < 0 || local > f.Len() {
				panic(fmt.Sprintf("source: local position %d outside file %q of length %d", local, f.Name(), f.Len()))
			}
			return base + local
		}
		base = s.ends[i]
	}
	panic(fmt.Sprintf("source: file %q is not part of this set", f.Name()))
}

func (s *Set) ReadByteAt(pos int) (byte, bool) {
	if pos < 0 || pos >= s.Len() {
		return 0, false
	}
	f, base := s.FileAt(pos)
	return f.ReadByteAt(pos - base)
}

// ReadSpan reads [from, to) after translating to file-local offsets. The
// files are independent documents: a span crossing a file boundary is an
// invariant violation and panics.
func (s *Set) ReadSpan(from, to int) []byte {
	if from < 0 || to > s.Len() || from > to {
		panic(fmt.Sprintf("source: span [%d,%d) outside set of length %d", from, to, s.Len()))
	}
	if from == to {
		return nil
	}
	f, base := s.FileAt(from)
	if to > base+f.Len() {
		panic(fmt.Sprintf("source: span [%d,%d) crosses the boundary of file %q", from, to, f.Name()))
	}
	return f.ReadSpan(from-base, to-base)
}
