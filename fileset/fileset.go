// Package fileset maintains the ordered, name-deduplicated collection of
// source files a session operates on, together with the state derived from it
// (which operation applies, page count of the leading file).
package fileset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// File is one selected source document. Name is the display name and the
// uniqueness key within a set; ID is the identity used by remove and reorder,
// so two handles that happen to share a name stay distinguishable.
type File struct {
	ID   string
	Name string
	Path string
}

// NewFile builds a File for an on-disk document.
func NewFile(path string) File {
	return File{
		ID:   uuid.New().String(),
		Name: filepath.Base(path),
		Path: path,
	}
}

// Mode is the operation applicable to the current set size.
type Mode int

const (
	ModeEmpty Mode = iota
	ModeSplit
	ModeMerge
)

func (m Mode) String() string {
	switch m {
	case ModeSplit:
		return "split"
	case ModeMerge:
		return "merge"
	default:
		return "empty"
	}
}

// Inspector opens a document far enough to count its pages.
type Inspector interface {
	PageCount(path string) (int, error)
}

// DuplicateFilesError reports an add in which every incoming file was already
// present by name. The set is unchanged.
type DuplicateFilesError struct {
	Names []string
}

func (e *DuplicateFilesError) Error() string {
	return fmt.Sprintf("already added: %s", strings.Join(e.Names, ", "))
}

// InspectionError reports that the leading file could not be opened for a
// page count. The file stays in the set.
type InspectionError struct {
	Name string
	Err  error
}

func (e *InspectionError) Error() string {
	return fmt.Sprintf("could not read page count of %s: %v", e.Name, e.Err)
}

func (e *InspectionError) Unwrap() error { return e.Err }

// Set is the ordered file collection. Insertion order is the merge order.
// Not safe for concurrent use; callers serialize access.
type Set struct {
	inspector Inspector

	files  []File
	byName map[string]string // display name -> file ID

	// Derived state, recomputed after every mutation.
	firstPages  int
	inspectErr  *InspectionError
	inspectedID string // ID of the first file whose page count is known
}

// New returns an empty Set using inspector for leading-file page counts.
func New(inspector Inspector) *Set {
	return &Set{
		inspector: inspector,
		byName:    make(map[string]string),
	}
}

// Add appends the incoming files whose names are not already present,
// preserving their relative order. If every incoming file is a duplicate by
// name, the set is left untouched and a DuplicateFilesError names them.
func (s *Set) Add(files ...File) error {
	var unique []File
	var dupes []string
	for _, f := range files {
		if _, ok := s.byName[f.Name]; ok {
			dupes = append(dupes, f.Name)
			continue
		}
		unique = append(unique, f)
	}

	if len(unique) == 0 && len(files) > 0 {
		return &DuplicateFilesError{Names: dupes}
	}

	for _, f := range unique {
		s.files = append(s.files, f)
		s.byName[f.Name] = f.ID
	}
	s.recompute()
	return nil
}

// Remove drops the entry with the given ID and reports whether it was
// present. Removing the leading file re-inspects whichever file takes its
// place; emptying the set clears all derived state.
func (s *Set) Remove(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	delete(s.byName, s.files[idx].Name)
	s.files = append(s.files[:idx], s.files[idx+1:]...)
	s.recompute()
	return true
}

// Reorder moves the file movedID to the position targetID currently holds,
// keeping every other relative order. Moving a file onto itself, or naming an
// absent file, is a no-op.
func (s *Set) Reorder(movedID, targetID string) {
	if movedID == targetID {
		return
	}
	from := s.indexOf(movedID)
	to := s.indexOf(targetID)
	if from < 0 || to < 0 {
		return
	}

	moved := s.files[from]
	s.files = append(s.files[:from], s.files[from+1:]...)
	if to > len(s.files) {
		to = len(s.files)
	}
	s.files = append(s.files[:to], append([]File{moved}, s.files[to:]...)...)
	s.recompute()
}

// Reset empties the set and all derived state.
func (s *Set) Reset() {
	s.files = nil
	s.byName = make(map[string]string)
	s.recompute()
}

// Files returns a copy of the current ordering.
func (s *Set) Files() []File {
	out := make([]File, len(s.files))
	copy(out, s.files)
	return out
}

// Len returns the number of files in the set.
func (s *Set) Len() int { return len(s.files) }

// First returns the leading file, if any.
func (s *Set) First() (File, bool) {
	if len(s.files) == 0 {
		return File{}, false
	}
	return s.files[0], true
}

// Get returns the file with the given ID, if present.
func (s *Set) Get(id string) (File, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return File{}, false
	}
	return s.files[idx], true
}

// Mode derives the applicable operation from the set size alone.
func (s *Set) Mode() Mode {
	switch {
	case len(s.files) == 0:
		return ModeEmpty
	case len(s.files) == 1:
		return ModeSplit
	default:
		return ModeMerge
	}
}

// FirstPageCount returns the known page count of the leading file, or zero
// when it is unknown (empty set or failed inspection).
func (s *Set) FirstPageCount() int { return s.firstPages }

// InspectionErr returns the soft failure from the last leading-file
// inspection, or nil.
func (s *Set) InspectionErr() error {
	if s.inspectErr == nil {
		return nil
	}
	return s.inspectErr
}

func (s *Set) indexOf(id string) int {
	for i, f := range s.files {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// recompute refreshes everything derived from the ordering. Inspection only
// runs when the leading file changed or has never been counted successfully.
func (s *Set) recompute() {
	if len(s.files) == 0 {
		s.firstPages = 0
		s.inspectErr = nil
		s.inspectedID = ""
		return
	}

	first := s.files[0]
	if first.ID == s.inspectedID {
		return
	}

	n, err := s.inspector.PageCount(first.Path)
	if err != nil {
		s.firstPages = 0
		s.inspectErr = &InspectionError{Name: first.Name, Err: err}
		s.inspectedID = ""
		return
	}
	s.firstPages = n
	s.inspectErr = nil
	s.inspectedID = first.ID
}
