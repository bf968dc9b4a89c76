package fileset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInspector counts pages from a canned map and records which paths were
// inspected, so tests can assert on re-inspection behavior.
type fakeInspector struct {
	pages    map[string]int
	failures map[string]error
	calls    []string
}

func (f *fakeInspector) PageCount(path string) (int, error) {
	f.calls = append(f.calls, path)
	if err, ok := f.failures[path]; ok {
		return 0, err
	}
	return f.pages[path], nil
}

func newTestSet(pages map[string]int) (*Set, *fakeInspector) {
	insp := &fakeInspector{pages: pages, failures: map[string]error{}}
	return New(insp), insp
}

func file(name string) File {
	return NewFile("/tmp/" + name)
}

func names(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestAddRejectsAllDuplicates(t *testing.T) {
	s, _ := newTestSet(map[string]int{"/tmp/a.pdf": 3})
	a := file("a.pdf")
	require.NoError(t, s.Add(a))

	again := file("a.pdf") // distinct handle, same display name
	err := s.Add(again)

	var dup *DuplicateFilesError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"a.pdf"}, dup.Names)
	assert.Equal(t, []string{"a.pdf"}, names(s.Files()), "set must be unchanged")
}

func TestAddKeepsUniqueSubset(t *testing.T) {
	s, _ := newTestSet(map[string]int{"/tmp/a.pdf": 3})
	require.NoError(t, s.Add(file("a.pdf"), file("b.pdf")))

	err := s.Add(file("a.pdf"), file("c.pdf"), file("b.pdf"))
	require.NoError(t, err, "one unique file among duplicates is enough")
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, names(s.Files()))
}

func TestAddPreservesIncomingOrder(t *testing.T) {
	s, _ := newTestSet(map[string]int{})
	require.NoError(t, s.Add(file("c.pdf"), file("a.pdf"), file("b.pdf")))
	assert.Equal(t, []string{"c.pdf", "a.pdf", "b.pdf"}, names(s.Files()))
}

func TestAddInspectsFirstFile(t *testing.T) {
	s, insp := newTestSet(map[string]int{"/tmp/a.pdf": 7})
	require.NoError(t, s.Add(file("a.pdf"), file("b.pdf")))

	assert.Equal(t, 7, s.FirstPageCount())
	assert.NoError(t, s.InspectionErr())
	assert.Equal(t, []string{"/tmp/a.pdf"}, insp.calls, "only the leading file is inspected")
}

func TestAddInspectionFailsSoftly(t *testing.T) {
	s, insp := newTestSet(map[string]int{})
	insp.failures["/tmp/bad.pdf"] = errors.New("not a pdf")

	require.NoError(t, s.Add(file("bad.pdf")))

	assert.Equal(t, 1, s.Len(), "file is kept despite failed inspection")
	assert.Equal(t, 0, s.FirstPageCount())

	var inspErr *InspectionError
	require.ErrorAs(t, s.InspectionErr(), &inspErr)
	assert.Equal(t, "bad.pdf", inspErr.Name)
}

func TestFailedInspectionRetriesOnNextMutation(t *testing.T) {
	s, insp := newTestSet(map[string]int{})
	insp.failures["/tmp/a.pdf"] = errors.New("transient")
	require.NoError(t, s.Add(file("a.pdf")))
	require.Error(t, s.InspectionErr())

	delete(insp.failures, "/tmp/a.pdf")
	insp.pages["/tmp/a.pdf"] = 4
	require.NoError(t, s.Add(file("b.pdf")))

	assert.Equal(t, 4, s.FirstPageCount())
	assert.NoError(t, s.InspectionErr())
}

func TestRemoveFirstReinspectsSuccessor(t *testing.T) {
	s, insp := newTestSet(map[string]int{"/tmp/a.pdf": 2, "/tmp/b.pdf": 9})
	a, b := file("a.pdf"), file("b.pdf")
	require.NoError(t, s.Add(a, b))

	require.True(t, s.Remove(a.ID))

	assert.Equal(t, []string{"b.pdf"}, names(s.Files()))
	assert.Equal(t, 9, s.FirstPageCount())
	assert.Equal(t, []string{"/tmp/a.pdf", "/tmp/b.pdf"}, insp.calls)
}

func TestRemoveNonFirstKeepsPageCount(t *testing.T) {
	s, insp := newTestSet(map[string]int{"/tmp/a.pdf": 2})
	a, b := file("a.pdf"), file("b.pdf")
	require.NoError(t, s.Add(a, b))

	require.True(t, s.Remove(b.ID))

	assert.Equal(t, 2, s.FirstPageCount())
	assert.Equal(t, []string{"/tmp/a.pdf"}, insp.calls, "no re-inspection needed")
}

func TestRemoveLastFileClearsDerivedState(t *testing.T) {
	s, _ := newTestSet(map[string]int{"/tmp/a.pdf": 2})
	a := file("a.pdf")
	require.NoError(t, s.Add(a))

	require.True(t, s.Remove(a.ID))

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, ModeEmpty, s.Mode())
	assert.Equal(t, 0, s.FirstPageCount())
}

func TestRemoveUnknownID(t *testing.T) {
	s, _ := newTestSet(map[string]int{})
	require.NoError(t, s.Add(file("a.pdf")))
	assert.False(t, s.Remove("nope"))
	assert.Equal(t, 1, s.Len())
}

func TestReorder(t *testing.T) {
	s, _ := newTestSet(map[string]int{})
	a, b, c := file("a.pdf"), file("b.pdf"), file("c.pdf")
	require.NoError(t, s.Add(a, b, c))

	s.Reorder(a.ID, c.ID)
	assert.Equal(t, []string{"b.pdf", "c.pdf", "a.pdf"}, names(s.Files()))

	s.Reorder(a.ID, b.ID)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, names(s.Files()))
}

func TestReorderNoops(t *testing.T) {
	s, _ := newTestSet(map[string]int{})
	a, b := file("a.pdf"), file("b.pdf")
	require.NoError(t, s.Add(a, b))

	s.Reorder(a.ID, a.ID)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, names(s.Files()))

	s.Reorder(a.ID, "absent")
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, names(s.Files()))
}

func TestReorderReinspectsNewFirst(t *testing.T) {
	s, _ := newTestSet(map[string]int{"/tmp/a.pdf": 2, "/tmp/b.pdf": 6})
	a, b := file("a.pdf"), file("b.pdf")
	require.NoError(t, s.Add(a, b))
	require.Equal(t, 2, s.FirstPageCount())

	s.Reorder(b.ID, a.ID)
	assert.Equal(t, []string{"b.pdf", "a.pdf"}, names(s.Files()))
	assert.Equal(t, 6, s.FirstPageCount())
}

func TestMode(t *testing.T) {
	s, _ := newTestSet(map[string]int{})
	assert.Equal(t, ModeEmpty, s.Mode())

	a := file("a.pdf")
	require.NoError(t, s.Add(a))
	assert.Equal(t, ModeSplit, s.Mode())

	require.NoError(t, s.Add(file("b.pdf")))
	assert.Equal(t, ModeMerge, s.Mode())

	require.True(t, s.Remove(a.ID))
	assert.Equal(t, ModeSplit, s.Mode())

	s.Reset()
	assert.Equal(t, ModeEmpty, s.Mode())
}

func TestReset(t *testing.T) {
	s, _ := newTestSet(map[string]int{"/tmp/a.pdf": 5})
	require.NoError(t, s.Add(file("a.pdf"), file("b.pdf")))

	s.Reset()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.FirstPageCount())
	assert.NoError(t, s.InspectionErr())
	require.NoError(t, s.Add(file("a.pdf")), "names are reusable after reset")
}
