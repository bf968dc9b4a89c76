// Package pdfops wraps the pdfcpu API behind the small set of document
// operations the tool needs: page counting, page extraction and merging.
// pdfcpu failure modes are classified into typed errors here so callers never
// have to inspect error text.
package pdfops

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
)

// Options control how documents are loaded.
type Options struct {
	// IgnoreEncryption proceeds with protected documents whenever an
	// empty-password decrypt works. When off, any document carrying an
	// encryption dictionary is rejected with EncryptedError, even one
	// pdfcpu could open without a password. Documents that require a
	// real password fail with EncryptedError in either mode.
	IgnoreEncryption bool
}

// EncryptedError reports a document that could not be opened because it is
// password protected.
type EncryptedError struct {
	Path string
}

func (e *EncryptedError) Error() string {
	return fmt.Sprintf("%s is password protected", filepath.Base(e.Path))
}

// IsEncrypted reports whether err is an encryption failure for some document.
func IsEncrypted(err error) bool {
	var encErr *EncryptedError
	return errors.As(err, &encErr)
}

// Ops performs PDF operations with a fixed set of load options.
type Ops struct {
	opts Options
}

// New returns an Ops using the given load options.
func New(opts Options) *Ops {
	return &Ops{opts: opts}
}

func (o *Ops) conf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// guard rejects documents with an encryption dictionary unless the load
// options allow them. pdfcpu silently opens documents protected by an owner
// password only, so the dictionary has to be checked directly.
func (o *Ops) guard(path string) error {
	if o.opts.IgnoreEncryption {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open document")
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, o.conf())
	if err != nil {
		return o.classify(err, path, "load document")
	}
	if ctx.Encrypt != nil {
		return &EncryptedError{Path: path}
	}
	return nil
}

// PageCount returns the number of pages in the document at path.
func (o *Ops) PageCount(path string) (int, error) {
	if err := o.guard(path); err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open document")
	}
	defer f.Close()

	n, err := api.PageCount(f, o.conf())
	if err != nil {
		return 0, o.classify(err, path, "read page count")
	}
	return n, nil
}

// ExtractPages writes a new document at outPath containing only the given
// 1-based pages of the document at inPath, in ascending page order.
func (o *Ops) ExtractPages(inPath, outPath string, pages []int) error {
	if err := o.guard(inPath); err != nil {
		return err
	}

	selected := make([]string, len(pages))
	for i, page := range pages {
		selected[i] = strconv.Itoa(page)
	}

	if err := api.TrimFile(inPath, outPath, selected, o.conf()); err != nil {
		return o.classify(err, inPath, "extract pages")
	}
	return nil
}

// Merge concatenates the documents at inPaths, in order, into a new document
// at outPath. A single input is just copied through pdfcpu unchanged.
func (o *Ops) Merge(inPaths []string, outPath string) error {
	if len(inPaths) == 0 {
		return errors.New("no input files provided")
	}
	for _, in := range inPaths {
		if err := o.guard(in); err != nil {
			return err
		}
	}

	if err := api.MergeCreateFile(inPaths, outPath, false, o.conf()); err != nil {
		return errors.Wrap(err, "merge documents")
	}
	return nil
}

// classify turns a pdfcpu error into the tool's error taxonomy. pdfcpu does
// not export a sentinel for password failures, so the message inspection the
// rest of the code must never do lives in this one place.
func (o *Ops) classify(err error, path, op string) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "password") || strings.Contains(msg, "encrypt") {
		return &EncryptedError{Path: path}
	}
	return errors.Wrapf(err, "%s for %s", op, filepath.Base(path))
}
