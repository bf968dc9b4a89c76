// Package session ties a file set to the PDF operations the user can trigger
// on it. One Session corresponds to one curated collection of source files;
// all mutation goes through it, one action at a time.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/pdfdeck/pdfdeck/config"
	"github.com/pdfdeck/pdfdeck/fileset"
	"github.com/pdfdeck/pdfdeck/pagerange"
	"github.com/pdfdeck/pdfdeck/pdfops"
	"github.com/pdfdeck/pdfdeck/util"
)

// ErrEmptySelection reports a page specification that resolved to zero pages.
// Distinct from a malformed specification.
var ErrEmptySelection = errors.New("no pages selected")

// ModeError reports an operation that does not apply to the current set
// size, such as merging a single file.
type ModeError struct {
	msg string
}

func (e *ModeError) Error() string { return e.msg }

// Session owns one file set and the operations on it. The mutex keeps the
// "at most one concurrent mutation" rule intact for callers that are not
// single-threaded, such as the HTTP server.
type Session struct {
	mu  sync.Mutex
	cfg config.Config
	ops *pdfops.Ops
	set *fileset.Set

	// message is the single sticky user-facing error line. Every action
	// replaces it; successful actions clear it.
	message string
}

// New builds a Session from cfg, deriving the PDF load options from it.
func New(cfg config.Config) *Session {
	ops := pdfops.New(pdfops.Options{IgnoreEncryption: cfg.IgnoreEncryption})
	return &Session{
		cfg: cfg,
		ops: ops,
		set: fileset.New(ops),
	}
}

// AddPaths adds the documents at the given paths to the set. Non-PDF names
// and unreadable paths fail without touching the set.
func (s *Session) AddPaths(paths ...string) error {
	files := make([]fileset.File, 0, len(paths))
	for _, p := range paths {
		var err error
		if !util.IsPDF(p) {
			err = fmt.Errorf("%s is not a PDF", filepath.Base(p))
		} else if _, statErr := os.Stat(p); statErr != nil {
			err = errors.Wrapf(statErr, "cannot read %s", p)
		}
		if err != nil {
			s.mu.Lock()
			s.message = err.Error()
			s.mu.Unlock()
			return err
		}
		files = append(files, fileset.NewFile(p))
	}
	return s.AddFiles(files...)
}

// AddFiles adds ready-made file handles, used by surfaces that stage their
// own uploads.
func (s *Session) AddFiles(files ...fileset.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.set.Add(files...); err != nil {
		s.message = err.Error()
		return err
	}
	s.message = ""
	if err := s.set.InspectionErr(); err != nil {
		s.message = err.Error()
	}
	return nil
}

// Remove drops the file with the given ID.
func (s *Session) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set.Remove(id) {
		err := errors.New("no such file")
		s.message = err.Error()
		return err
	}
	s.message = ""
	if err := s.set.InspectionErr(); err != nil {
		s.message = err.Error()
	}
	return nil
}

// Reorder moves one file onto another's position, as in a drag gesture.
func (s *Session) Reorder(movedID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Reorder(movedID, targetID)
}

// Reset clears the file set and every piece of derived state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Reset()
	s.message = ""
}

// Files returns the current ordering.
func (s *Session) Files() []fileset.File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Files()
}

// Mode returns the operation applicable to the current set size.
func (s *Session) Mode() fileset.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Mode()
}

// FirstPageCount returns the known page count of the leading file, zero when
// unknown.
func (s *Session) FirstPageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.FirstPageCount()
}

// Message returns the sticky error line from the last action, empty after a
// successful one.
func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// MergeResult describes a finished merge.
type MergeResult struct {
	OutputPath string
	Merged     []string // display names, in merge order
	Skipped    []string // encrypted inputs left out
}

// Merge concatenates all files in the set, in order, into a new document in
// the output directory. Each input is probed sequentially before the merge;
// encrypted inputs are skipped and reported, and the operation fails only
// when no input is usable.
func (s *Session) Merge() (MergeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.set.Mode() != fileset.ModeMerge {
		return MergeResult{}, s.fail(&ModeError{msg: "add at least two files to merge"})
	}

	var paths, merged, skipped []string
	for _, f := range s.set.Files() {
		// One file is read and checked at a time to keep memory bounded.
		if _, err := s.ops.PageCount(f.Path); err != nil {
			if pdfops.IsEncrypted(err) {
				skipped = append(skipped, f.Name)
				continue
			}
			return MergeResult{}, s.fail(err)
		}
		paths = append(paths, f.Path)
		merged = append(merged, f.Name)
	}

	if len(paths) == 0 {
		return MergeResult{}, s.fail(fmt.Errorf(
			"no mergeable files: password protected: %s", strings.Join(skipped, ", ")))
	}

	outPath, err := s.outputPath(util.MergeName(merged))
	if err != nil {
		return MergeResult{}, s.fail(err)
	}
	if err := s.ops.Merge(paths, outPath); err != nil {
		return MergeResult{}, s.fail(err)
	}

	s.message = ""
	if len(skipped) > 0 {
		s.message = fmt.Sprintf("skipped password protected: %s", strings.Join(skipped, ", "))
	}
	return MergeResult{OutputPath: outPath, Merged: merged, Skipped: skipped}, nil
}

// Split extracts the pages named by spec from the single file in the set into
// a new document in the output directory. The page count is taken fresh at
// operation time, not from the cached inspection, in case the file changed on
// disk in between.
func (s *Session) Split(spec string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.set.Mode() != fileset.ModeSplit {
		return "", s.fail(&ModeError{msg: "split needs exactly one file"})
	}
	src, _ := s.set.First()

	total, err := s.ops.PageCount(src.Path)
	if err != nil {
		return "", s.fail(err)
	}

	pages, err := pagerange.Parse(spec, total)
	if err != nil {
		return "", s.fail(err)
	}
	if len(pages) == 0 {
		return "", s.fail(ErrEmptySelection)
	}

	outPath, err := s.outputPath(util.SplitName(src.Name, pages))
	if err != nil {
		return "", s.fail(err)
	}
	if err := s.ops.ExtractPages(src.Path, outPath, pages); err != nil {
		return "", s.fail(err)
	}

	s.message = ""
	return outPath, nil
}

// FileInfo is one row of a detailed listing.
type FileInfo struct {
	ID    string
	Name  string
	Pages int
	Err   error
}

// InspectAll counts pages of every file in the set. The counts are read-only
// probes, so they may run a few at a time; the set itself is not touched.
func (s *Session) InspectAll() []FileInfo {
	files := s.Files()

	infos := make([]FileInfo, len(files))
	var g errgroup.Group
	g.SetLimit(4)
	for i, f := range files {
		g.Go(func() error {
			n, err := s.ops.PageCount(f.Path)
			infos[i] = FileInfo{ID: f.ID, Name: f.Name, Pages: n, Err: err}
			return nil
		})
	}
	g.Wait()
	return infos
}

// fail records err as the sticky message and returns it. Callers must hold
// the mutex.
func (s *Session) fail(err error) error {
	s.message = err.Error()
	return err
}

// outputPath resolves name inside the configured output directory, creating
// the directory as needed.
func (s *Session) outputPath(name string) (string, error) {
	dir := s.cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "create output directory")
	}
	return filepath.Join(dir, name), nil
}
